/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mocks

import (
	"github.com/hyperledger/fabric-common-go/pkg/common/providers/core"
	"github.com/hyperledger/fabric-common-go/pkg/core/config/lookup"
)

// MockClientContext is a fab.ClientContext backed by an in-memory config.
type MockClientContext struct {
	Config   map[string]interface{}
	CertHash []byte
}

// NewMockClientContext returns a client context without configuration
func NewMockClientContext() *MockClientContext {
	return &MockClientContext{Config: make(map[string]interface{})}
}

// SetConfig sets a configuration value
func (c *MockClientContext) SetConfig(key string, value interface{}) *MockClientContext {
	c.Config[key] = value
	return c
}

// Lookup returns the configured value; WithUnmarshalType decodes it into the given type
func (c *MockClientContext) Lookup(key string, opts ...core.LookupOption) (interface{}, bool) {
	value, ok := c.Config[key]
	if !ok {
		return nil, false
	}

	lookupOpts := core.LookupOpts{}
	for _, opt := range opts {
		opt(&lookupOpts)
	}
	if lookupOpts.UnmarshalType == nil {
		return value, true
	}

	if _, err := lookup.New(c).UnmarshalKey(key, lookupOpts.UnmarshalType); err != nil {
		return nil, false
	}
	return lookupOpts.UnmarshalType, true
}

// ClientCertHash returns the mock certificate hash
func (c *MockClientContext) ClientCertHash() []byte {
	return c.CertHash
}
