/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package endpoints keeps the endorsers or committers a channel may address
// and resolves request targets against them.
package endpoints

import (
	"reflect"
	"sync"

	"github.com/hyperledger/fabric-common-go/pkg/common/errors/status"
	"github.com/hyperledger/fabric-common-go/pkg/common/logging"
	"github.com/hyperledger/fabric-common-go/pkg/common/providers/fab"
	"github.com/hyperledger/fabric-common-go/pkg/core/logging/api"
)

var logger = logging.NewLogger("fabsdk/fab")

// Registry maps names to endpoints of a single capability.
// Endpoints are validated when they are added only; an endpoint that
// disconnects afterwards stays registered.
type Registry struct {
	capability fab.Capability
	logger     api.Logger

	mutex     sync.RWMutex
	endpoints map[string]fab.Endpoint
	names     []string
}

// Option configures a Registry
type Option func(*Registry)

// WithLogger sets the diagnostics sink of the registry
func WithLogger(sink api.Logger) Option {
	return func(r *Registry) {
		if sink != nil {
			r.logger = sink
		}
	}
}

// New returns an empty registry for endpoints of the given capability.
func New(capability fab.Capability, opts ...Option) *Registry {
	r := &Registry{
		capability: capability,
		logger:     logger,
		endpoints:  make(map[string]fab.Endpoint),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Capability returns the capability accepted by the registry
func (r *Registry) Capability() fab.Capability {
	return r.capability
}

// Add registers the endpoint under its name. The endpoint must be connected
// and carry the registry's capability. An endpoint already registered under
// the same name is disconnected and replaced when replace is set; otherwise
// a DuplicateEntry error is returned.
func (r *Registry) Add(endpoint fab.Endpoint, replace bool) error {
	if err := r.validate(endpoint); err != nil {
		r.logger.Debugf("add%s - %s", r.capability, err)
		return err
	}

	name := endpoint.Name()

	replaced, err := r.put(name, endpoint, replace)
	if err != nil {
		r.logger.Errorf("add%s - error: %s", r.capability, err)
		return err
	}

	if replaced != nil {
		if err := replaced.Disconnect(); err != nil {
			r.logger.Warnf("add%s - disconnect of replaced %s [%s] failed: %s", r.capability, r.capability, name, err)
		}
	}
	return nil
}

// put stores the endpoint and returns the entry it replaced, which the caller
// disconnects once the lock is released
func (r *Registry) put(name string, endpoint fab.Endpoint, replace bool) (fab.Endpoint, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	existing, ok := r.endpoints[name]
	if ok {
		if !replace {
			return nil, status.Errorf(status.DuplicateEntry, "%s %s already exists", r.capability, name)
		}
		r.logger.Debugf("add%s - removing existing %s --name: %s", r.capability, r.capability, name)
		r.remove(name)
	}

	r.logger.Debugf("add%s - adding a new %s --name: %s", r.capability, r.capability, name)
	r.endpoints[name] = endpoint
	r.names = append(r.names, name)
	return existing, nil
}

func (r *Registry) validate(endpoint fab.Endpoint) error {
	if isNil(endpoint) {
		return status.Errorf(status.InvalidEndpoint, "Missing valid %s instance", r.capability)
	}
	if endpoint.Name() == "" {
		return status.Errorf(status.InvalidEndpoint, "%s does not have a name", r.capability)
	}
	if endpoint.Capability() != r.capability {
		return status.Errorf(status.InvalidEndpoint, "Missing valid %s instance", r.capability)
	}
	if !endpoint.IsConnected() {
		return status.Errorf(status.InvalidEndpoint, "%s must be connected", r.capability)
	}
	return nil
}

// Remove unregisters the endpoint by name and reports whether it was found.
// The endpoint is not disconnected.
func (r *Registry) Remove(endpoint fab.Endpoint) (bool, error) {
	if isNil(endpoint) || endpoint.Capability() != r.capability {
		return false, status.Errorf(status.InvalidEndpoint, "Missing valid %s instance", r.capability)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.remove(endpoint.Name()), nil
}

func (r *Registry) remove(name string) bool {
	if _, ok := r.endpoints[name]; !ok {
		return false
	}
	delete(r.endpoints, name)
	for i, n := range r.names {
		if n == name {
			r.names = append(r.names[:i:i], r.names[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the endpoint registered under name
func (r *Registry) Get(name string) (fab.Endpoint, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	endpoint, ok := r.endpoints[name]
	return endpoint, ok
}

// List returns the registered endpoints in registration order. When mspID is
// not empty only the endpoints of that organization are returned.
func (r *Registry) List(mspID string) []fab.Endpoint {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var results []fab.Endpoint
	for _, name := range r.names {
		endpoint := r.endpoints[name]
		if mspID != "" && endpoint.MSPID() != mspID {
			r.logger.Debugf("list%ss - %s not added %s", r.capability, r.capability, name)
			continue
		}
		results = append(results, endpoint)
	}
	return results
}

// Names returns the names of the registered endpoints in registration order
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Len returns the number of registered endpoints
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.names)
}

// CloseAll disconnects every registered endpoint. A failed disconnect is logged
// and does not stop the traversal. Endpoints stay registered.
func (r *Registry) CloseAll() {
	for _, endpoint := range r.List("") {
		if err := endpoint.Disconnect(); err != nil {
			r.logger.Warnf("close - disconnect of %s [%s] failed: %s", r.capability, endpoint.Name(), err)
		}
	}
}

// isNil reports whether the endpoint is nil or a nil pointer held in the interface
func isNil(endpoint fab.Endpoint) bool {
	if endpoint == nil {
		return true
	}
	v := reflect.ValueOf(endpoint)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
