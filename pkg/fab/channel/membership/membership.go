/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package membership holds the trust anchors (MSP descriptors) of the
// organizations participating in a channel.
package membership

import (
	"sync"

	"github.com/hyperledger/fabric-common-go/pkg/common/errors/status"
	"github.com/hyperledger/fabric-common-go/pkg/common/logging"
	"github.com/hyperledger/fabric-common-go/pkg/core/logging/api"
)

var logger = logging.NewLogger("fabsdk/fab")

// Registry maps MSP ids to descriptors. Listing order is insertion order;
// a replaced descriptor moves to the end.
type Registry struct {
	logger api.Logger

	mutex       sync.RWMutex
	descriptors map[string]*Descriptor
	ids         []string
}

// New returns an empty registry that logs to the given sink.
// A nil sink selects the package logger.
func New(sink api.Logger) *Registry {
	if sink == nil {
		sink = logger
	}
	return &Registry{
		logger:      sink,
		descriptors: make(map[string]*Descriptor),
	}
}

// Add stores the descriptor under its id. An existing entry is replaced only
// when replace is set, otherwise a DuplicateEntry error is returned and the
// registry is left unchanged.
func (r *Registry) Add(d *Descriptor, replace bool) (*Registry, error) {
	if d == nil {
		return r, status.Errorf(status.InvalidArgument, "MSP descriptor is required")
	}
	if d.ID == "" {
		return r, status.Errorf(status.InvalidArgument, "MSP does not have an id")
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.descriptors[d.ID]; ok {
		if !replace {
			err := status.Errorf(status.DuplicateEntry, "MSP %s already exists", d.ID)
			r.logger.Errorf("addMsp - error: %s", err)
			return r, err
		}
		r.logger.Debugf("addMsp - removing existing MSP --name: %s", d.ID)
		r.remove(d.ID)
	}

	r.logger.Debugf("addMsp - adding a new MSP --name: %s", d.ID)
	r.descriptors[d.ID] = d
	r.ids = append(r.ids, d.ID)
	return r, nil
}

// Remove deletes the descriptor with the given id and reports whether it existed.
func (r *Registry) Remove(id string) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.remove(id)
}

func (r *Registry) remove(id string) bool {
	if _, ok := r.descriptors[id]; !ok {
		return false
	}
	delete(r.descriptors, id)
	for i, v := range r.ids {
		if v == id {
			r.ids = append(r.ids[:i:i], r.ids[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the descriptor stored under id.
func (r *Registry) Get(id string) (*Descriptor, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	d, ok := r.descriptors[id]
	return d, ok
}

// IDs returns the ids of all stored descriptors.
func (r *Registry) IDs() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	ids := make([]string, len(r.ids))
	copy(ids, r.ids)
	return ids
}

// Len returns the number of stored descriptors.
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.ids)
}

// TLSCACerts returns the PEM encoded TLS root and intermediate certificates
// of all stored descriptors
func (r *Registry) TLSCACerts() [][]byte {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var certs [][]byte
	for _, id := range r.ids {
		d := r.descriptors[id]
		certs = append(certs, d.TLSRootCerts...)
		certs = append(certs, d.TLSIntermediateCerts...)
	}
	return certs
}
