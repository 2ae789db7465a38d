/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mocks

import (
	"sync"

	"github.com/hyperledger/fabric-common-go/pkg/common/providers/fab"
)

// MockEndpoint is a mock fab.Endpoint.
type MockEndpoint struct {
	RWLock          *sync.RWMutex
	MockName        string
	MockMSP         string
	MockCapability  fab.Capability
	Connected       bool
	DisconnectError error
	DisconnectCalls int
}

// NewMockEndorser creates a connected mock endorser
func NewMockEndorser(name string, mspID string) *MockEndpoint {
	return NewMockEndpoint(name, mspID, fab.EndorserCapability)
}

// NewMockCommitter creates a connected mock committer
func NewMockCommitter(name string, mspID string) *MockEndpoint {
	return NewMockEndpoint(name, mspID, fab.CommitterCapability)
}

// NewMockEndpoint creates a connected mock endpoint with the given capability
func NewMockEndpoint(name string, mspID string, capability fab.Capability) *MockEndpoint {
	return &MockEndpoint{
		RWLock:         &sync.RWMutex{},
		MockName:       name,
		MockMSP:        mspID,
		MockCapability: capability,
		Connected:      true,
	}
}

// Name returns the mock endpoint's mock name
func (e *MockEndpoint) Name() string {
	return e.MockName
}

// MSPID returns the mock endpoint's mspID
func (e *MockEndpoint) MSPID() string {
	return e.MockMSP
}

// Capability returns the mock endpoint's capability
func (e *MockEndpoint) Capability() fab.Capability {
	return e.MockCapability
}

// IsConnected reports the mock connection state
func (e *MockEndpoint) IsConnected() bool {
	e.RWLock.RLock()
	defer e.RWLock.RUnlock()
	return e.Connected
}

// SetConnected sets the mock connection state
func (e *MockEndpoint) SetConnected(connected bool) {
	e.RWLock.Lock()
	defer e.RWLock.Unlock()
	e.Connected = connected
}

// Disconnect records the call and returns DisconnectError. The endpoint
// is marked disconnected even when an error is returned.
func (e *MockEndpoint) Disconnect() error {
	e.RWLock.Lock()
	defer e.RWLock.Unlock()
	e.DisconnectCalls++
	e.Connected = false
	return e.DisconnectError
}

// Disconnects returns the number of Disconnect calls
func (e *MockEndpoint) Disconnects() int {
	e.RWLock.RLock()
	defer e.RWLock.RUnlock()
	return e.DisconnectCalls
}
