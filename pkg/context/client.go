/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package context provides the client context a channel is created with.
package context

import (
	"crypto/tls"

	"github.com/pkg/errors"

	"github.com/hyperledger/fabric-common-go/pkg/common/metrics"
	metricsCfg "github.com/hyperledger/fabric-common-go/pkg/common/metrics/cfg"
	"github.com/hyperledger/fabric-common-go/pkg/common/providers/core"
	"github.com/hyperledger/fabric-common-go/pkg/core/config/comm"
)

// Client supplies configuration and the TLS client identity to channels.
type Client struct {
	backends        []core.ConfigBackend
	tlsCerts        []tls.Certificate
	tlsCertHash     []byte
	metricsProvider metrics.Provider
}

// ClientOption configures a Client
type ClientOption func(*Client) error

// WithTLSClientCerts sets the certificates presented for mutual TLS. The
// channel header cert hash is computed from the leaf of the first one.
func WithTLSClientCerts(certs ...tls.Certificate) ClientOption {
	return func(c *Client) error {
		c.tlsCerts = certs
		return nil
	}
}

// WithTLSClientKeyPair loads the mutual TLS certificate from PEM encoded cert and key
func WithTLSClientKeyPair(certPEM, keyPEM []byte) ClientOption {
	return func(c *Client) error {
		cert, err := tls.X509KeyPair(certPEM, keyPEM)
		if err != nil {
			return errors.Wrap(err, "failed to load client key pair")
		}
		c.tlsCerts = []tls.Certificate{cert}
		return nil
	}
}

// NewClient creates a client context from the backends of the config provider.
func NewClient(configProvider core.ConfigProvider, opts ...ClientOption) (*Client, error) {
	if configProvider == nil {
		return nil, errors.New("config provider is required")
	}

	backends, err := configProvider()
	if err != nil {
		return nil, errors.WithMessage(err, "failed to load config backends")
	}

	metricConfig, err := metricsCfg.ConfigFromBackend(backends...)
	if err != nil {
		return nil, errors.WithMessage(err, "invalid metrics config")
	}

	c := &Client{
		backends:        backends,
		metricsProvider: metricConfig.NewProvider(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, errors.WithMessage(err, "error in client option")
		}
	}
	c.tlsCertHash = comm.TLSCertHash(c.tlsCerts)

	return c, nil
}

// Lookup returns the value of the first backend that has the key
func (c *Client) Lookup(key string, opts ...core.LookupOption) (interface{}, bool) {
	for _, backend := range c.backends {
		if value, ok := backend.Lookup(key, opts...); ok {
			return value, true
		}
	}
	return nil, false
}

// ClientCertHash returns the SHA-256 hash of the TLS client certificate, or
// nil when none is configured
func (c *Client) ClientCertHash() []byte {
	return c.tlsCertHash
}

// TLSClientCerts returns the certificates presented for mutual TLS
func (c *Client) TLSClientCerts() []tls.Certificate {
	return c.tlsCerts
}

// MetricsProvider returns the metrics provider selected by client.metrics.provider
func (c *Client) MetricsProvider() metrics.Provider {
	return c.metricsProvider
}

// Backends returns the config backends of the client
func (c *Client) Backends() []core.ConfigBackend {
	return c.backends
}
