/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package channel provides the client-side context of a Fabric channel: the
// participating organizations, the endorsers and committers a client may
// address, and the channel header that binds each request to the channel.
//
//  Basic Flow:
//  1) Create a channel with New
//  2) Register MSPs, endorsers and committers
//  3) Resolve request targets and build channel headers from collaborators
//  4) Close the channel to disconnect all endpoints
package channel

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hyperledger/fabric-protos-go/common"
	"github.com/pkg/errors"

	"github.com/hyperledger/fabric-common-go/pkg/common/errors/status"
	"github.com/hyperledger/fabric-common-go/pkg/common/logging"
	"github.com/hyperledger/fabric-common-go/pkg/common/metrics"
	"github.com/hyperledger/fabric-common-go/pkg/common/metrics/disabled"
	"github.com/hyperledger/fabric-common-go/pkg/common/providers/fab"
	certpool "github.com/hyperledger/fabric-common-go/pkg/core/config/comm/tls"
	"github.com/hyperledger/fabric-common-go/pkg/core/logging/api"
	"github.com/hyperledger/fabric-common-go/pkg/fab/channel/endpoints"
	"github.com/hyperledger/fabric-common-go/pkg/fab/channel/membership"
	"github.com/hyperledger/fabric-common-go/pkg/fab/txn"
)

var logger = logging.NewLogger("fabsdk/fab")

// Channel captures the settings needed to interact with a fabric network in
// the context of a channel. It is safe for concurrent use.
type Channel struct {
	name    string
	client  fab.ClientContext
	logger  api.Logger
	clock   func() time.Time
	metrics *Metrics

	msps       *membership.Registry
	endorsers  *endpoints.Registry
	committers *endpoints.Registry
}

// Option configures a Channel
type Option func(*Channel)

// WithLogger sets the diagnostics sink. Every record is prefixed with the channel name.
func WithLogger(sink api.Logger) Option {
	return func(c *Channel) {
		if sink != nil {
			c.logger = sink
		}
	}
}

// WithClock sets the time source used for channel header timestamps
func WithClock(clock func() time.Time) Option {
	return func(c *Channel) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithMetrics sets the metrics updated by the channel
func WithMetrics(m *Metrics) Option {
	return func(c *Channel) {
		if m != nil {
			c.metrics = m
		}
	}
}

// New returns a channel with the given name. When the client configures a
// channel name checker the name must match it, otherwise a ConfigurationError
// is returned.
func New(name string, client fab.ClientContext, opts ...Option) (*Channel, error) {
	if name == "" {
		return nil, status.Errorf(status.InvalidArgument, "Missing required parameter 'name'")
	}
	if client == nil {
		return nil, status.Errorf(status.InvalidArgument, "Missing required parameter 'client'")
	}

	c := &Channel{
		name:   name,
		client: client,
		logger: logger,
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.metrics == nil {
		c.metrics = defaultMetrics(client)
	}
	c.logger = logging.WithScope(c.logger, name)

	c.logger.Debugf("constructor - start")
	if err := checkName(name, client); err != nil {
		return nil, err
	}

	c.msps = membership.New(c.logger)
	c.endorsers = endpoints.New(fab.EndorserCapability, endpoints.WithLogger(c.logger))
	c.committers = endpoints.New(fab.CommitterCapability, endpoints.WithLogger(c.logger))

	c.logger.Debugf("Constructed Channel instance: name - %s", name)
	return c, nil
}

type metricsProvider interface {
	MetricsProvider() metrics.Provider
}

func defaultMetrics(client fab.ClientContext) *Metrics {
	if mp, ok := client.(metricsProvider); ok && mp.MetricsProvider() != nil {
		return NewMetrics(mp.MetricsProvider())
	}
	return NewMetrics(&disabled.Provider{})
}

// Name returns the channel name
func (c *Channel) Name() string {
	return c.name
}

// Client returns the client context the channel was created with
func (c *Channel) Client() fab.ClientContext {
	return c.client
}

// Close disconnects all endorsers and committers. They remain registered.
func (c *Channel) Close() {
	c.logger.Debugf("close - closing connections")
	c.endorsers.CloseAll()
	c.committers.CloseAll()
}

// BuildChannelHeader builds the common channel header of a request for the
// given chaincode and transaction. The timestamp has millisecond resolution.
func (c *Channel) BuildChannelHeader(headerType common.HeaderType, chaincodeID string, txnID fab.TransactionID) (*common.ChannelHeader, error) {
	c.logger.Debugf("buildChannelHeader - start - type %s chaincode_id %s tx_id %s", headerType, chaincodeID, txnID)
	if chaincodeID == "" {
		return nil, status.Errorf(status.InvalidArgument, "Missing required parameter 'chaincodeID'")
	}
	if txnID.ID == "" {
		return nil, status.Errorf(status.InvalidArgument, "Missing required parameter 'txnID'")
	}

	channelHeader, err := txn.CreateChannelHeader(headerType, txn.ChannelHeaderOpts{
		ChannelID:   c.name,
		TxnID:       txnID,
		ChaincodeID: chaincodeID,
		Timestamp:   c.clock(),
		TLSCertHash: c.client.ClientCertHash(),
	})
	if err != nil {
		return nil, errors.WithMessage(err, "failed to build channel header")
	}

	c.metrics.HeadersBuilt.With("channel", c.name, "type", headerType.String()).Add(1)
	return channelHeader, nil
}

// TLSCACertPool returns a cert pool holding the TLS root and intermediate
// certificates of the channel's MSPs
func (c *Channel) TLSCACertPool(useSystemCertPool bool) *certpool.CertPool {
	pool := certpool.NewCertPool(useSystemCertPool)
	n := pool.AddPEM(c.msps.TLSCACerts()...)
	c.logger.Debugf("TLSCACertPool - added %d certificates", n)
	return pool
}

type channelState struct {
	Name       string      `json:"name"`
	Committers interface{} `json:"committers"`
	Endorsers  interface{} `json:"endorsers"`
}

// String returns a JSON representation of the channel and its endpoints
func (c *Channel) String() string {
	state := channelState{
		Name:       c.name,
		Committers: endpointStrings(c.Committers("")),
		Endorsers:  endpointStrings(c.Endorsers("")),
	}

	b, err := json.Marshal(state)
	if err != nil {
		return fmt.Sprintf("Channel[%s]", c.name)
	}
	return string(b)
}

func endpointStrings(list []fab.Endpoint) interface{} {
	if len(list) == 0 {
		return "N/A"
	}
	strs := make([]string, 0, len(list))
	for _, e := range list {
		if s, ok := e.(fmt.Stringer); ok {
			strs = append(strs, s.String())
			continue
		}
		strs = append(strs, e.Name())
	}
	return strs
}
