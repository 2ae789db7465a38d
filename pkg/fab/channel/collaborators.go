/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package channel

import (
	"github.com/hyperledger/fabric-protos-go/common"

	"github.com/hyperledger/fabric-common-go/pkg/common/errors/status"
	"github.com/hyperledger/fabric-common-go/pkg/common/providers/fab"
)

// binding is embedded by the request-sending collaborators of a channel
type binding struct {
	channel *Channel
}

// Channel returns the channel the collaborator is bound to
func (b *binding) Channel() *Channel {
	return b.channel
}

// proposal is shared by the collaborators that send proposals for a chaincode
type proposal struct {
	binding
	chaincode string
}

// Chaincode returns the chaincode the proposals are addressed to
func (p *proposal) Chaincode() string {
	return p.chaincode
}

// Targets resolves endorser names and/or endorsers of the bound channel
func (p *proposal) Targets(targets interface{}) ([]fab.Endpoint, error) {
	return p.channel.TargetEndorsers(targets)
}

// NewChannelHeader builds an endorser transaction header for the chaincode
func (p *proposal) NewChannelHeader(txnID fab.TransactionID) (*common.ChannelHeader, error) {
	return p.channel.BuildChannelHeader(common.HeaderType_ENDORSER_TRANSACTION, p.chaincode, txnID)
}

// Endorsement sends chaincode proposals to endorsers of the channel
type Endorsement struct {
	proposal
}

// Query evaluates chaincode proposals on endorsers of the channel
type Query struct {
	proposal
}

// Commit submits endorsed transactions to committers of the channel
type Commit struct {
	binding
	chaincode string
}

// Chaincode returns the chaincode of the committed transactions
func (c *Commit) Chaincode() string {
	return c.chaincode
}

// Targets resolves committer names and/or committers of the bound channel
func (c *Commit) Targets(targets interface{}) ([]fab.Endpoint, error) {
	return c.channel.TargetCommitters(targets)
}

// NewChannelHeader builds an endorser transaction header for the chaincode
func (c *Commit) NewChannelHeader(txnID fab.TransactionID) (*common.ChannelHeader, error) {
	return c.channel.BuildChannelHeader(common.HeaderType_ENDORSER_TRANSACTION, c.chaincode, txnID)
}

// EventService receives block and chaincode events from endorsers of the channel
type EventService struct {
	binding
	name string
}

// Name returns the event service name
func (s *EventService) Name() string {
	return s.name
}

// Targets resolves endorser names and/or endorsers of the bound channel
func (s *EventService) Targets(targets interface{}) ([]fab.Endpoint, error) {
	return s.channel.TargetEndorsers(targets)
}

// DiscoveryService queries endorsers of the channel for network topology
type DiscoveryService struct {
	binding
	name string
}

// Name returns the discovery service name
func (s *DiscoveryService) Name() string {
	return s.name
}

// Targets resolves endorser names and/or endorsers of the bound channel
func (s *DiscoveryService) Targets(targets interface{}) ([]fab.Endpoint, error) {
	return s.channel.TargetEndorsers(targets)
}

// NewEndorsement returns an endorsement bound to this channel for the given chaincode
func (c *Channel) NewEndorsement(chaincode string) (*Endorsement, error) {
	if chaincode == "" {
		return nil, status.Errorf(status.InvalidArgument, "Missing required parameter 'chaincode'")
	}
	return &Endorsement{proposal{binding{c}, chaincode}}, nil
}

// NewQuery returns a query bound to this channel for the given chaincode
func (c *Channel) NewQuery(chaincode string) (*Query, error) {
	if chaincode == "" {
		return nil, status.Errorf(status.InvalidArgument, "Missing required parameter 'chaincode'")
	}
	return &Query{proposal{binding{c}, chaincode}}, nil
}

// NewCommit returns a commit bound to this channel for the given chaincode
func (c *Channel) NewCommit(chaincode string) (*Commit, error) {
	if chaincode == "" {
		return nil, status.Errorf(status.InvalidArgument, "Missing required parameter 'chaincode'")
	}
	return &Commit{binding{c}, chaincode}, nil
}

// NewEventService returns an event service bound to this channel
func (c *Channel) NewEventService(name string) (*EventService, error) {
	if name == "" {
		return nil, status.Errorf(status.InvalidArgument, "Missing required parameter 'name'")
	}
	return &EventService{binding{c}, name}, nil
}

// NewDiscoveryService returns a discovery service bound to this channel
func (c *Channel) NewDiscoveryService(name string) (*DiscoveryService, error) {
	if name == "" {
		return nil, status.Errorf(status.InvalidArgument, "Missing required parameter 'name'")
	}
	return &DiscoveryService{binding{c}, name}, nil
}
