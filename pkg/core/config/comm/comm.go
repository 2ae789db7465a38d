/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package comm

import (
	"crypto/sha256"
	"crypto/tls"

	"github.com/pkg/errors"

	certpool "github.com/hyperledger/fabric-common-go/pkg/core/config/comm/tls"
)

// TLSConfig returns the client TLS config for the given root pool, client
// certificates (for mutual TLS) and server host override.
func TLSConfig(pool *certpool.CertPool, clientCerts []tls.Certificate, serverName string) (*tls.Config, error) {
	if pool == nil {
		return nil, errors.New("TLS CA cert pool is required")
	}

	rootCAs, err := pool.Get()
	if err != nil {
		return nil, errors.WithMessage(err, "failed to load TLS CA cert pool")
	}
	return &tls.Config{RootCAs: rootCAs, Certificates: clientCerts, ServerName: serverName}, nil
}

// TLSCertHash calculates the SHA256 hash of the leaf of the first client
// certificate (for usage in channel headers). It returns nil when no client
// certificate is configured.
func TLSCertHash(certs []tls.Certificate) []byte {
	if len(certs) == 0 {
		return nil
	}

	cert := certs[0]
	if len(cert.Certificate) == 0 {
		return nil
	}

	h := sha256.Sum256(cert.Certificate[0])
	return h[:]
}
