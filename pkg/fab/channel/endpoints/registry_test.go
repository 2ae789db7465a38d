/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package endpoints

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperledger/fabric-common-go/pkg/common/errors/status"
	"github.com/hyperledger/fabric-common-go/pkg/common/providers/fab"
	"github.com/hyperledger/fabric-common-go/pkg/common/providers/test/mockfab"
	"github.com/hyperledger/fabric-common-go/pkg/fab/mocks"
)

func TestAddAndGet(t *testing.T) {
	r := New(fab.EndorserCapability)
	assert.Equal(t, fab.EndorserCapability, r.Capability())

	e1 := mocks.NewMockEndorser("peer0.org1.example.com", "Org1MSP")
	require.NoError(t, r.Add(e1, false))

	got, ok := r.Get("peer0.org1.example.com")
	require.True(t, ok)
	assert.Equal(t, e1, got)

	_, ok = r.Get("peer1.org1.example.com")
	assert.False(t, ok)
}

func TestAddInvalidEndpoint(t *testing.T) {
	r := New(fab.EndorserCapability)

	tests := []struct {
		name     string
		endpoint fab.Endpoint
	}{
		{name: "nil", endpoint: nil},
		{name: "nil pointer", endpoint: (*mocks.MockEndpoint)(nil)},
		{name: "no name", endpoint: mocks.NewMockEndorser("", "Org1MSP")},
		{name: "wrong capability", endpoint: mocks.NewMockCommitter("orderer.example.com", "OrdererMSP")},
		{name: "not connected", endpoint: disconnected(mocks.NewMockEndorser("peer0.org1.example.com", "Org1MSP"))},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, replace := range []bool{false, true} {
				err := r.Add(tc.endpoint, replace)
				assert.Equal(t, status.InvalidEndpoint, status.CodeOf(err), "replace=%t: %v", replace, err)
			}
		})
	}
	assert.Equal(t, 0, r.Len())
}

func TestAddNotConnectedWithExistingEntry(t *testing.T) {
	r := New(fab.EndorserCapability)

	existing := mocks.NewMockEndorser("peer0.org1.example.com", "Org1MSP")
	require.NoError(t, r.Add(existing, false))

	err := r.Add(disconnected(mocks.NewMockEndorser("peer0.org1.example.com", "Org1MSP")), true)
	assert.True(t, status.Is(err, status.InvalidEndpoint), "unexpected error: %v", err)

	got, _ := r.Get("peer0.org1.example.com")
	assert.Equal(t, existing, got, "failed add must not touch the existing entry")
	assert.Equal(t, 0, existing.Disconnects())
}

func TestAddDuplicate(t *testing.T) {
	r := New(fab.CommitterCapability)

	first := mocks.NewMockCommitter("orderer.example.com", "OrdererMSP")
	second := mocks.NewMockCommitter("orderer.example.com", "OrdererMSP")
	require.NoError(t, r.Add(first, false))

	err := r.Add(second, false)
	require.Error(t, err)
	assert.True(t, status.Is(err, status.DuplicateEntry))
	assert.Contains(t, err.Error(), "Committer orderer.example.com already exists")

	got, _ := r.Get("orderer.example.com")
	assert.Equal(t, first, got)
	assert.Equal(t, 0, first.Disconnects())
}

func TestAddReplace(t *testing.T) {
	r := New(fab.EndorserCapability)

	first := mocks.NewMockEndorser("peer0.org1.example.com", "Org1MSP")
	other := mocks.NewMockEndorser("peer0.org2.example.com", "Org2MSP")
	second := mocks.NewMockEndorser("peer0.org1.example.com", "Org1MSP")
	require.NoError(t, r.Add(first, false))
	require.NoError(t, r.Add(other, false))

	require.NoError(t, r.Add(second, true))
	assert.Equal(t, 1, first.Disconnects(), "replaced endpoint should be disconnected")
	assert.False(t, first.IsConnected())

	got, _ := r.Get("peer0.org1.example.com")
	assert.Equal(t, second, got)
	assert.Equal(t, []string{"peer0.org2.example.com", "peer0.org1.example.com"}, r.Names())
}

func TestAddReplaceDisconnectFailure(t *testing.T) {
	r := New(fab.EndorserCapability)

	first := mocks.NewMockEndorser("peer0.org1.example.com", "Org1MSP")
	first.DisconnectError = errors.New("disconnect failed")
	second := mocks.NewMockEndorser("peer0.org1.example.com", "Org1MSP")
	require.NoError(t, r.Add(first, false))

	require.NoError(t, r.Add(second, true))
	got, _ := r.Get("peer0.org1.example.com")
	assert.Equal(t, second, got)
}

func TestAddReplaceDisconnectsOutsideLock(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	r := New(fab.EndorserCapability)

	first := mockfab.NewMockEndpoint(mockCtrl)
	first.EXPECT().Name().Return("E1").AnyTimes()
	first.EXPECT().MSPID().Return("A").AnyTimes()
	first.EXPECT().Capability().Return(fab.EndorserCapability).AnyTimes()
	first.EXPECT().IsConnected().Return(true).AnyTimes()

	second := mocks.NewMockEndorser("E1", "A")
	first.EXPECT().Disconnect().DoAndReturn(func() error {
		got, ok := r.Get("E1")
		assert.True(t, ok)
		assert.Equal(t, second, got, "replacement should be visible while the old endpoint disconnects")
		return nil
	}).Times(1)

	require.NoError(t, r.Add(first, false))
	require.NoError(t, r.Add(second, true))
}

func TestRemove(t *testing.T) {
	r := New(fab.EndorserCapability)

	e1 := mocks.NewMockEndorser("peer0.org1.example.com", "Org1MSP")
	require.NoError(t, r.Add(e1, false))

	_, err := r.Remove(mocks.NewMockCommitter("peer0.org1.example.com", "Org1MSP"))
	assert.True(t, status.Is(err, status.InvalidEndpoint))
	_, err = r.Remove(nil)
	assert.True(t, status.Is(err, status.InvalidEndpoint))
	_, err = r.Remove((*mocks.MockEndpoint)(nil))
	assert.True(t, status.Is(err, status.InvalidEndpoint))

	removed, err := r.Remove(e1)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 0, e1.Disconnects(), "remove must not disconnect")
	assert.True(t, e1.IsConnected())

	removed, err = r.Remove(e1)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestList(t *testing.T) {
	r := New(fab.EndorserCapability)

	e1 := mocks.NewMockEndorser("E1", "A")
	e2 := mocks.NewMockEndorser("E2", "B")
	e3 := mocks.NewMockEndorser("E3", "A")
	for _, e := range []fab.Endpoint{e1, e2, e3} {
		require.NoError(t, r.Add(e, false))
	}

	assert.Equal(t, []fab.Endpoint{e1, e3}, r.List("A"))
	assert.Equal(t, []fab.Endpoint{e2}, r.List("B"))
	assert.Empty(t, r.List("C"))
	assert.Equal(t, []fab.Endpoint{e1, e2, e3}, r.List(""))
}

func TestCloseAll(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	e1 := mockfab.NewMockEndpoint(mockCtrl)
	e1.EXPECT().Name().Return("E1").AnyTimes()
	e1.EXPECT().MSPID().Return("A").AnyTimes()
	e1.EXPECT().Capability().Return(fab.EndorserCapability).AnyTimes()
	e1.EXPECT().IsConnected().Return(true).AnyTimes()
	e1.EXPECT().Disconnect().Return(errors.New("disconnect failed")).Times(1)

	e2 := mockfab.NewMockEndpoint(mockCtrl)
	e2.EXPECT().Name().Return("E2").AnyTimes()
	e2.EXPECT().MSPID().Return("B").AnyTimes()
	e2.EXPECT().Capability().Return(fab.EndorserCapability).AnyTimes()
	e2.EXPECT().IsConnected().Return(true).AnyTimes()
	e2.EXPECT().Disconnect().Return(nil).Times(1)

	r := New(fab.EndorserCapability)
	require.NoError(t, r.Add(e1, false))
	require.NoError(t, r.Add(e2, false))

	r.CloseAll()

	got, ok := r.Get("E1")
	assert.True(t, ok)
	assert.Equal(t, e1, got)
	got, ok = r.Get("E2")
	assert.True(t, ok)
	assert.Equal(t, e2, got)
}

func disconnected(e *mocks.MockEndpoint) *mocks.MockEndpoint {
	e.SetConnected(false)
	return e
}
