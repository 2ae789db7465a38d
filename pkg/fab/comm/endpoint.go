/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package comm provides a gRPC backed fab.Endpoint.
package comm

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/hyperledger/fabric-common-go/pkg/common/logging"
	"github.com/hyperledger/fabric-common-go/pkg/common/options"
	"github.com/hyperledger/fabric-common-go/pkg/common/providers/fab"
	"github.com/hyperledger/fabric-common-go/pkg/core/config/comm"
	"github.com/hyperledger/fabric-common-go/pkg/core/config/endpoint"
)

var logger = logging.NewLogger("fabsdk/fab")

// Endpoint is a fab.Endpoint backed by a gRPC client connection.
// It reports connected while the connection is ready or idle.
type Endpoint struct {
	name       string
	mspID      string
	capability fab.Capability
	url        string
	conn       *grpc.ClientConn
	done       int32
}

// Dial connects to the endpoint at url and blocks until the connection is
// ready, the connect timeout expires or ctx is done.
func Dial(ctx context.Context, url string, opts ...options.Opt) (*Endpoint, error) {
	if url == "" {
		return nil, errors.New("server URL not specified")
	}

	params := defaultParams()
	options.Apply(params, opts)

	dialOpts, err := newDialOpts(url, params)
	if err != nil {
		return nil, err
	}

	dialCtx, cancel := context.WithTimeout(ctx, params.connectTimeout)
	defer cancel()

	address := endpoint.ToAddress(url)
	conn, err := grpc.DialContext(dialCtx, address, dialOpts...)
	if err != nil {
		return nil, errors.Wrapf(err, "could not connect to %s", url)
	}

	name := params.name
	if name == "" {
		name = address
	}

	logger.Debugf("Connected to %s [%s]", params.capability, name)
	return &Endpoint{
		name:       name,
		mspID:      params.mspID,
		capability: params.capability,
		url:        url,
		conn:       conn,
	}, nil
}

// Name returns the registry name of the endpoint
func (e *Endpoint) Name() string {
	return e.name
}

// MSPID returns the id of the organization that owns the endpoint
func (e *Endpoint) MSPID() string {
	return e.mspID
}

// Capability returns the capability the endpoint was dialed with
func (e *Endpoint) Capability() fab.Capability {
	return e.capability
}

// URL returns the URL the endpoint was dialed with
func (e *Endpoint) URL() string {
	return e.url
}

// Conn returns the underlying client connection
func (e *Endpoint) Conn() *grpc.ClientConn {
	return e.conn
}

// IsConnected reports whether the connection is open and ready (or idle)
func (e *Endpoint) IsConnected() bool {
	if e.closed() {
		return false
	}
	switch e.conn.GetState() {
	case connectivity.Ready, connectivity.Idle:
		return true
	default:
		return false
	}
}

// Disconnect closes the connection. Closing an already closed endpoint is a no-op.
func (e *Endpoint) Disconnect() error {
	if !e.setClosed() {
		logger.Debugf("Already closed")
		return nil
	}

	logger.Debugf("Closing connection to %s [%s]....", e.capability, e.name)
	if err := e.conn.Close(); err != nil {
		return errors.Wrapf(err, "error closing GRPC connection to %s", e.name)
	}
	return nil
}

func (e *Endpoint) closed() bool {
	return atomic.LoadInt32(&e.done) == 1
}

func (e *Endpoint) setClosed() bool {
	return atomic.CompareAndSwapInt32(&e.done, 0, 1)
}

func newDialOpts(url string, params *params) ([]grpc.DialOption, error) {
	dialOpts := []grpc.DialOption{grpc.WithBlock()}

	if params.keepAliveParams.Time > 0 || params.keepAliveParams.Timeout > 0 {
		dialOpts = append(dialOpts, grpc.WithKeepaliveParams(params.keepAliveParams))
	}

	dialOpts = append(dialOpts, grpc.WithDefaultCallOptions(grpc.WaitForReady(!params.failFast)))

	if params.dialer != nil {
		dialOpts = append(dialOpts, grpc.WithContextDialer(params.dialer))
	}

	if endpoint.AttemptSecured(url, params.insecure) {
		tlsConfig, err := comm.TLSConfig(params.certPool, params.clientCerts, params.hostOverride)
		if err != nil {
			return nil, err
		}
		dialOpts = append(dialOpts, grpc.WithTransportCredentials(credentials.NewTLS(tlsConfig)))
		logger.Debugf("Creating a secure connection to [%s] with TLS HostOverride [%s]", url, params.hostOverride)
	} else {
		logger.Debugf("Creating an insecure connection [%s]", url)
		dialOpts = append(dialOpts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	}

	return dialOpts, nil
}
