/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package fab

// Capability identifies the role an endpoint plays for a channel.
// The set is closed: an endpoint is either an endorser or a committer.
type Capability int

const (
	// UnknownCapability is the zero value and is never accepted by a registry
	UnknownCapability Capability = iota
	// EndorserCapability is carried by peers that simulate and endorse proposals
	EndorserCapability
	// CommitterCapability is carried by nodes that accept ordered transactions for commit
	CommitterCapability
)

func (c Capability) String() string {
	switch c {
	case EndorserCapability:
		return "Endorser"
	case CommitterCapability:
		return "Committer"
	default:
		return "Unknown"
	}
}

// Endpoint is a remote network participant a client may address on a channel.
// Endpoints are created and connected by a transport layer before they are
// handed to a channel; the channel only keeps the reference.
type Endpoint interface {
	// Name is the unique key of the endpoint within its registry.
	Name() string
	// MSPID is the identifier of the organization that owns the endpoint.
	MSPID() string
	// Capability is fixed when the endpoint is created.
	Capability() Capability
	// IsConnected reports the current connection state.
	IsConnected() bool
	// Disconnect tears down the connection.
	Disconnect() error
}
