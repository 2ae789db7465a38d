/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package comm

import (
	"context"
	"crypto/tls"
	"net"
	"time"

	"github.com/spf13/cast"
	"google.golang.org/grpc/keepalive"

	"github.com/hyperledger/fabric-common-go/pkg/common/options"
	"github.com/hyperledger/fabric-common-go/pkg/common/providers/fab"
	certpool "github.com/hyperledger/fabric-common-go/pkg/core/config/comm/tls"
)

// ContextDialer opens the raw connection to the endpoint's address
type ContextDialer func(ctx context.Context, address string) (net.Conn, error)

type params struct {
	name            string
	mspID           string
	capability      fab.Capability
	hostOverride    string
	certPool        *certpool.CertPool
	clientCerts     []tls.Certificate
	keepAliveParams keepalive.ClientParameters
	failFast        bool
	insecure        bool
	connectTimeout  time.Duration
	dialer          ContextDialer
}

func defaultParams() *params {
	return &params{
		capability:     fab.EndorserCapability,
		failFast:       true,
		connectTimeout: 3 * time.Second,
	}
}

// WithName sets the registry name of the endpoint. The address is used when not set.
func WithName(value string) options.Opt {
	return func(p options.Params) {
		if setter, ok := p.(nameSetter); ok {
			setter.SetName(value)
		}
	}
}

// WithMSPID sets the id of the organization that owns the endpoint
func WithMSPID(value string) options.Opt {
	return func(p options.Params) {
		if setter, ok := p.(mspIDSetter); ok {
			setter.SetMSPID(value)
		}
	}
}

// WithCapability sets the capability of the endpoint (Endorser by default)
func WithCapability(value fab.Capability) options.Opt {
	return func(p options.Params) {
		if setter, ok := p.(capabilitySetter); ok {
			setter.SetCapability(value)
		}
	}
}

// WithHostOverride sets the host name that will be used to resolve the TLS certificate
func WithHostOverride(value string) options.Opt {
	return func(p options.Params) {
		if setter, ok := p.(hostOverrideSetter); ok {
			setter.SetHostOverride(value)
		}
	}
}

// WithCertPool sets the pool of TLS root certificates used to verify the server
func WithCertPool(value *certpool.CertPool) options.Opt {
	return func(p options.Params) {
		if setter, ok := p.(certPoolSetter); ok {
			setter.SetCertPool(value)
		}
	}
}

// WithClientCerts sets the certificates presented for mutual TLS
func WithClientCerts(value ...tls.Certificate) options.Opt {
	return func(p options.Params) {
		if setter, ok := p.(clientCertsSetter); ok {
			setter.SetClientCerts(value)
		}
	}
}

// WithKeepAliveParams sets the GRPC keep-alive parameters
func WithKeepAliveParams(value keepalive.ClientParameters) options.Opt {
	return func(p options.Params) {
		if setter, ok := p.(keepAliveParamsSetter); ok {
			setter.SetKeepAliveParams(value)
		}
	}
}

// WithFailFast sets the GRPC fail-fast parameter
func WithFailFast(value bool) options.Opt {
	return func(p options.Params) {
		if setter, ok := p.(failFastSetter); ok {
			setter.SetFailFast(value)
		}
	}
}

// WithConnectTimeout sets the GRPC connection timeout
func WithConnectTimeout(value time.Duration) options.Opt {
	return func(p options.Params) {
		if setter, ok := p.(connectTimeoutSetter); ok {
			setter.SetConnectTimeout(value)
		}
	}
}

// WithInsecure indicates to fall back to an insecure connection if the
// connection URL does not specify a protocol
func WithInsecure() options.Opt {
	return func(p options.Params) {
		if setter, ok := p.(insecureSetter); ok {
			setter.SetInsecure(true)
		}
	}
}

// WithDialer replaces the network dialer, e.g. with an in-memory listener
func WithDialer(value ContextDialer) options.Opt {
	return func(p options.Params) {
		if setter, ok := p.(dialerSetter); ok {
			setter.SetDialer(value)
		}
	}
}

func (p *params) SetName(value string) {
	logger.Debugf("Name: %s", value)
	p.name = value
}

func (p *params) SetMSPID(value string) {
	logger.Debugf("MSPID: %s", value)
	p.mspID = value
}

func (p *params) SetCapability(value fab.Capability) {
	logger.Debugf("Capability: %s", value)
	p.capability = value
}

func (p *params) SetHostOverride(value string) {
	logger.Debugf("HostOverride: %s", value)
	p.hostOverride = value
}

func (p *params) SetCertPool(value *certpool.CertPool) {
	if value != nil {
		logger.Debugf("setting cert pool with %d certificates", value.Len())
	} else {
		logger.Debug("setting nil cert pool")
	}
	p.certPool = value
}

func (p *params) SetClientCerts(value []tls.Certificate) {
	logger.Debugf("ClientCerts: %d", len(value))
	p.clientCerts = value
}

func (p *params) SetKeepAliveParams(value keepalive.ClientParameters) {
	logger.Debugf("KeepAliveParams: %#v", value)
	p.keepAliveParams = value
}

func (p *params) SetFailFast(value bool) {
	logger.Debugf("FailFast: %t", value)
	p.failFast = value
}

func (p *params) SetConnectTimeout(value time.Duration) {
	logger.Debugf("ConnectTimeout: %s", value)
	p.connectTimeout = value
}

func (p *params) SetInsecure(value bool) {
	logger.Debugf("Insecure: %t", value)
	p.insecure = value
}

func (p *params) SetDialer(value ContextDialer) {
	logger.Debugf("Setting custom dialer")
	p.dialer = value
}

type nameSetter interface {
	SetName(value string)
}

type mspIDSetter interface {
	SetMSPID(value string)
}

type capabilitySetter interface {
	SetCapability(value fab.Capability)
}

type hostOverrideSetter interface {
	SetHostOverride(value string)
}

type certPoolSetter interface {
	SetCertPool(value *certpool.CertPool)
}

type clientCertsSetter interface {
	SetClientCerts(value []tls.Certificate)
}

type keepAliveParamsSetter interface {
	SetKeepAliveParams(value keepalive.ClientParameters)
}

type failFastSetter interface {
	SetFailFast(value bool)
}

type insecureSetter interface {
	SetInsecure(value bool)
}

type connectTimeoutSetter interface {
	SetConnectTimeout(value time.Duration)
}

type dialerSetter interface {
	SetDialer(value ContextDialer)
}

// OptsFromGRPCOptions returns a set of connection options from the grpcOptions
// section of an endpoint's configuration
func OptsFromGRPCOptions(grpcOptions map[string]interface{}) []options.Opt {
	opts := []options.Opt{
		WithHostOverride(getServerNameOverride(grpcOptions)),
		WithFailFast(getFailFast(grpcOptions)),
		WithKeepAliveParams(getKeepAliveOptions(grpcOptions)),
	}
	if isInsecureAllowed(grpcOptions) {
		opts = append(opts, WithInsecure())
	}
	return opts
}

func getServerNameOverride(grpcOptions map[string]interface{}) string {
	if str, ok := grpcOptions["ssl-target-name-override"].(string); ok {
		return str
	}
	return ""
}

func getFailFast(grpcOptions map[string]interface{}) bool {
	if ff, ok := grpcOptions["fail-fast"]; ok {
		return cast.ToBool(ff)
	}
	return false
}

func getKeepAliveOptions(grpcOptions map[string]interface{}) keepalive.ClientParameters {
	var kap keepalive.ClientParameters
	if kaTime, ok := grpcOptions["keep-alive-time"]; ok {
		kap.Time = cast.ToDuration(kaTime)
	}
	if kaTimeout, ok := grpcOptions["keep-alive-timeout"]; ok {
		kap.Timeout = cast.ToDuration(kaTimeout)
	}
	if kaPermit, ok := grpcOptions["keep-alive-permit"]; ok {
		kap.PermitWithoutStream = cast.ToBool(kaPermit)
	}
	return kap
}

func isInsecureAllowed(grpcOptions map[string]interface{}) bool {
	return cast.ToBool(grpcOptions["allow-insecure"])
}
