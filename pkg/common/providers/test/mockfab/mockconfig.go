/*
Copyright SecureKey Technologies Inc., Unchain B.V. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mockfab

import (
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"

	"github.com/hyperledger/fabric-common-go/pkg/common/providers/fab"
)

// ErrorMessage is a mock error message
const ErrorMessage = "default error message"

// CertHash is a mock client certificate hash
var CertHash = []byte{0, 1, 2}

// DefaultMockClientContext returns a mock client context without a channel
// name checker and with the mock certificate hash
func DefaultMockClientContext(mockCtrl *gomock.Controller) *MockClientContext {
	ctx := NewMockClientContext(mockCtrl)

	ctx.EXPECT().Lookup(gomock.Any(), gomock.Any()).Return(nil, false).AnyTimes()
	ctx.EXPECT().Lookup(gomock.Any()).Return(nil, false).AnyTimes()
	ctx.EXPECT().ClientCertHash().Return(CertHash).AnyTimes()

	return ctx
}

// DefaultMockEndpoint returns a connected mock endpoint whose Disconnect succeeds
func DefaultMockEndpoint(mockCtrl *gomock.Controller, name, mspID string, capability fab.Capability) *MockEndpoint {
	endpoint := stubEndpoint(mockCtrl, name, mspID, capability)
	endpoint.EXPECT().IsConnected().Return(true).AnyTimes()
	endpoint.EXPECT().Disconnect().Return(nil).AnyTimes()
	return endpoint
}

// BadDisconnectMockEndpoint returns a connected mock endpoint whose Disconnect always fails
func BadDisconnectMockEndpoint(mockCtrl *gomock.Controller, name, mspID string, capability fab.Capability) *MockEndpoint {
	endpoint := stubEndpoint(mockCtrl, name, mspID, capability)
	endpoint.EXPECT().IsConnected().Return(true).AnyTimes()
	endpoint.EXPECT().Disconnect().Return(errors.New(ErrorMessage)).AnyTimes()
	return endpoint
}

func stubEndpoint(mockCtrl *gomock.Controller, name, mspID string, capability fab.Capability) *MockEndpoint {
	endpoint := NewMockEndpoint(mockCtrl)
	endpoint.EXPECT().Name().Return(name).AnyTimes()
	endpoint.EXPECT().MSPID().Return(mspID).AnyTimes()
	endpoint.EXPECT().Capability().Return(capability).AnyTimes()
	return endpoint
}
