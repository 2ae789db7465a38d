/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package channel

import (
	"github.com/hyperledger/fabric-common-go/pkg/common/providers/fab"
	"github.com/hyperledger/fabric-common-go/pkg/fab/channel/endpoints"
	"github.com/hyperledger/fabric-common-go/pkg/fab/channel/membership"
)

// AddMSP adds an MSP to the channel. An existing MSP with the same id is
// overwritten when replace is set, otherwise a DuplicateEntry error is returned.
func (c *Channel) AddMSP(d *membership.Descriptor, replace bool) error {
	_, err := c.msps.Add(d, replace)
	return err
}

// RemoveMSP removes the MSP with the given id and reports whether it existed
func (c *Channel) RemoveMSP(id string) bool {
	return c.msps.Remove(id)
}

// MSP returns the MSP with the given id
func (c *Channel) MSP(id string) (*membership.Descriptor, bool) {
	return c.msps.Get(id)
}

// MSPIDs returns the ids of all MSPs in insertion order
func (c *Channel) MSPIDs() []string {
	return c.msps.IDs()
}

// AddEndorser adds a connected endorser to the channel. When replace is set
// an existing endorser with the same name is disconnected and replaced.
func (c *Channel) AddEndorser(endorser fab.Endpoint, replace bool) error {
	return c.addEndpoint(c.endorsers, endorser, replace)
}

// RemoveEndorser removes the endorser with the endpoint's name. The endorser
// is not disconnected.
func (c *Channel) RemoveEndorser(endorser fab.Endpoint) (bool, error) {
	return c.removeEndpoint(c.endorsers, endorser)
}

// Endorser returns the endorser with the given name
func (c *Channel) Endorser(name string) (fab.Endpoint, bool) {
	return c.endorsers.Get(name)
}

// Endorsers returns the endorsers of the given MSP in insertion order, or all
// endorsers when mspID is empty
func (c *Channel) Endorsers(mspID string) []fab.Endpoint {
	return c.endorsers.List(mspID)
}

// AddCommitter adds a connected committer to the channel. When replace is set
// an existing committer with the same name is disconnected and replaced.
func (c *Channel) AddCommitter(committer fab.Endpoint, replace bool) error {
	return c.addEndpoint(c.committers, committer, replace)
}

// RemoveCommitter removes the committer with the endpoint's name. The
// committer is not disconnected.
func (c *Channel) RemoveCommitter(committer fab.Endpoint) (bool, error) {
	return c.removeEndpoint(c.committers, committer)
}

// Committer returns the committer with the given name
func (c *Channel) Committer(name string) (fab.Endpoint, bool) {
	return c.committers.Get(name)
}

// Committers returns the committers of the given MSP in insertion order, or
// all committers when mspID is empty
func (c *Channel) Committers(mspID string) []fab.Endpoint {
	return c.committers.List(mspID)
}

// TargetEndorsers resolves targets into registered endorsers.
// targets is a list of endorser names and/or endorser endpoints.
func (c *Channel) TargetEndorsers(targets interface{}) ([]fab.Endpoint, error) {
	return c.endorsers.Resolve(targets)
}

// TargetCommitters resolves targets into registered committers.
// targets is a list of committer names and/or committer endpoints.
func (c *Channel) TargetCommitters(targets interface{}) ([]fab.Endpoint, error) {
	return c.committers.Resolve(targets)
}

func (c *Channel) addEndpoint(r *endpoints.Registry, endpoint fab.Endpoint, replace bool) error {
	if err := r.Add(endpoint, replace); err != nil {
		return err
	}
	c.updateEndpointsGauge(r)
	return nil
}

func (c *Channel) removeEndpoint(r *endpoints.Registry, endpoint fab.Endpoint) (bool, error) {
	removed, err := r.Remove(endpoint)
	if err != nil {
		return false, err
	}
	c.updateEndpointsGauge(r)
	return removed, nil
}

func (c *Channel) updateEndpointsGauge(r *endpoints.Registry) {
	c.metrics.Endpoints.With("channel", c.name, "capability", r.Capability().String()).Set(float64(r.Len()))
}
