/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tls

import (
	"crypto/x509"
	"sync"

	"github.com/hyperledger/fabric-common-go/pkg/common/logging"
	"github.com/hyperledger/fabric-common-go/pkg/core/config/endpoint"
)

var logger = logging.NewLogger("fabsdk/core")

// CertPool is a thread safe wrapper around the x509 standard library
// cert pool implementation.
// It optionally allows loading the system trust store.
type CertPool struct {
	useSystemCertPool bool
	certs             []*x509.Certificate
	certPool          *x509.CertPool
	certsByName       map[string][]int
	dirty             bool
	lock              sync.RWMutex
}

// NewCertPool returns an empty cert pool
func NewCertPool(useSystemCertPool bool) *CertPool {
	return &CertPool{
		useSystemCertPool: useSystemCertPool,
		certsByName:       make(map[string][]int),
		dirty:             true,
	}
}

// Get returns the x509 pool holding every certificate added so far. The pool
// is rebuilt only after new certificates were added.
func (c *CertPool) Get() (*x509.CertPool, error) {
	c.lock.RLock()
	if !c.dirty {
		defer c.lock.RUnlock()
		return c.certPool, nil
	}
	c.lock.RUnlock()

	certPool, err := c.loadSystemCertPool()
	if err != nil {
		return nil, err
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	for _, cert := range c.certs {
		certPool.AddCert(cert)
	}
	c.certPool = certPool
	c.dirty = false

	return c.certPool, nil
}

// Add adds the certificates that are not in the pool yet
func (c *CertPool) Add(certs ...*x509.Certificate) {
	c.lock.Lock()
	defer c.lock.Unlock()

	for _, newCert := range certs {
		if newCert != nil && !c.containsCert(newCert) {
			c.addCert(newCert)
			c.dirty = true
		}
	}
}

// AddPEM parses and adds the certificates of the given PEM data. It returns
// the number of certificates found.
func (c *CertPool) AddPEM(pemCerts ...[]byte) int {
	certs := endpoint.CertsFromPEM(pemCerts...)
	c.Add(certs...)
	return len(certs)
}

// Len returns the number of certificates added to the pool, excluding the system trust store
func (c *CertPool) Len() int {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return len(c.certs)
}

func (c *CertPool) addCert(newCert *x509.Certificate) {
	n := len(c.certs)
	c.certs = append(c.certs, newCert)
	name := string(newCert.RawSubject)
	c.certsByName[name] = append(c.certsByName[name], n)
}

func (c *CertPool) containsCert(newCert *x509.Certificate) bool {
	for _, p := range c.certsByName[string(newCert.RawSubject)] {
		if c.certs[p].Equal(newCert) {
			return true
		}
	}
	return false
}

func (c *CertPool) loadSystemCertPool() (*x509.CertPool, error) {
	if !c.useSystemCertPool {
		return x509.NewCertPool(), nil
	}
	systemCertPool, err := x509.SystemCertPool()
	if err != nil {
		return nil, err
	}
	logger.Debugf("Loaded system cert pool")

	return systemCertPool, nil
}
