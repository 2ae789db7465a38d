/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package endpoints

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperledger/fabric-common-go/pkg/common/errors/status"
	"github.com/hyperledger/fabric-common-go/pkg/common/providers/fab"
	"github.com/hyperledger/fabric-common-go/pkg/common/providers/test/mockfab"
	"github.com/hyperledger/fabric-common-go/pkg/fab/mocks"
)

func TestResolve(t *testing.T) {
	r := New(fab.EndorserCapability)
	e1 := mocks.NewMockEndorser("E1", "Org1MSP")
	require.NoError(t, r.Add(e1, false))

	e2 := mocks.NewMockEndorser("E2", "Org2MSP")

	targets, err := r.Resolve([]interface{}{"E1", e2})
	require.NoError(t, err)
	assert.Equal(t, []fab.Endpoint{e1, e2}, targets)

	targets, err = r.Resolve([]interface{}{"E1", e2, "E1"})
	require.NoError(t, err)
	assert.Equal(t, []fab.Endpoint{e1, e2, e1}, targets, "duplicates should be preserved")

	targets, err = r.Resolve([]string{"E1"})
	require.NoError(t, err)
	assert.Equal(t, []fab.Endpoint{e1}, targets)

	targets, err = r.Resolve([]fab.Endpoint{e2, e1})
	require.NoError(t, err)
	assert.Equal(t, []fab.Endpoint{e2, e1}, targets)

	targets, err = r.Resolve([]interface{}{})
	require.NoError(t, err)
	assert.Empty(t, targets)
}

func TestResolveGoMock(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	committer := mockfab.DefaultMockEndpoint(mockCtrl, "orderer.example.com", "OrdererMSP", fab.CommitterCapability)

	r := New(fab.CommitterCapability)
	require.NoError(t, r.Add(committer, false))

	targets, err := r.Resolve([]string{"orderer.example.com"})
	require.NoError(t, err)
	assert.Equal(t, []fab.Endpoint{committer}, targets)
}

func TestResolveErrors(t *testing.T) {
	r := New(fab.EndorserCapability)
	require.NoError(t, r.Add(mocks.NewMockEndorser("E1", "Org1MSP"), false))

	tests := []struct {
		name    string
		targets interface{}
		code    status.Code
		message string
	}{
		{name: "missing name", targets: []string{"E1", "missing"}, code: status.NotFound, message: "Endorser named missing not found"},
		{name: "wrong capability", targets: []interface{}{"E1", mocks.NewMockCommitter("C1", "Org1MSP")}, code: status.TypeMismatch},
		{name: "bare string", targets: "not-a-list", code: status.TargetsInvalid},
		{name: "nil", targets: nil, code: status.TargetsInvalid},
		{name: "map", targets: map[string]string{"E1": "E1"}, code: status.TargetsInvalid},
		{name: "invalid element", targets: []interface{}{"E1", 42}, code: status.TargetsInvalid},
		{name: "nil element", targets: []interface{}{nil}, code: status.TargetsInvalid},
		{name: "nil endpoint element", targets: []fab.Endpoint{nil}, code: status.TargetsInvalid},
		{name: "nil pointer element", targets: []interface{}{(*mocks.MockEndpoint)(nil)}, code: status.TargetsInvalid},
		{name: "nil pointer endpoint", targets: []fab.Endpoint{(*mocks.MockEndpoint)(nil)}, code: status.TargetsInvalid},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			targets, err := r.Resolve(tc.targets)
			require.Error(t, err)
			assert.Nil(t, targets, "no partial results expected")
			assert.Equal(t, tc.code, status.CodeOf(err), "unexpected error: %v", err)
			if tc.message != "" {
				assert.Contains(t, err.Error(), tc.message)
			}
		})
	}
}
