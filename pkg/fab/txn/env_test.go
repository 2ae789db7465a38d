/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package txn

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/google/go-cmp/cmp"
	"github.com/hyperledger/fabric-protos-go/common"
	pb "github.com/hyperledger/fabric-protos-go/peer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/testing/protocmp"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/hyperledger/fabric-common-go/pkg/common/providers/fab"
)

func TestNewID(t *testing.T) {
	creator := []byte("creator")

	txnID, err := NewID(creator)
	require.NoError(t, err)
	assert.Len(t, txnID.Nonce, NonceSize)
	assert.Equal(t, creator, txnID.Creator)

	digest := sha256.Sum256(append(append([]byte{}, txnID.Nonce...), creator...))
	assert.Equal(t, hex.EncodeToString(digest[:]), txnID.ID)
	assert.Equal(t, txnID.ID, txnID.String())

	other, err := NewID(creator)
	require.NoError(t, err)
	assert.NotEqual(t, txnID.ID, other.ID, "ids should differ by nonce")
}

func TestMillisTimestamp(t *testing.T) {
	tests := []struct {
		ms      int64
		seconds int64
		nanos   int32
	}{
		{ms: 0, seconds: 0, nanos: 0},
		{ms: 1500, seconds: 1, nanos: 500000000},
		{ms: 1546300800123, seconds: 1546300800, nanos: 123000000},
		{ms: 999, seconds: 0, nanos: 999000000},
		{ms: -1, seconds: -1, nanos: 999000000},
	}
	for _, tc := range tests {
		ts := MillisTimestamp(tc.ms)
		assert.Equal(t, tc.seconds, ts.Seconds, "seconds for %d", tc.ms)
		assert.Equal(t, tc.nanos, ts.Nanos, "nanos for %d", tc.ms)
	}
}

func TestCreateChannelHeader(t *testing.T) {
	now := time.Unix(1546300800, 123456789)

	header, err := CreateChannelHeader(common.HeaderType_ENDORSER_TRANSACTION, ChannelHeaderOpts{
		ChannelID:   "mychannel",
		TxnID:       fab.TransactionID{ID: "abc123"},
		ChaincodeID: "cc1",
		Timestamp:   now,
		TLSCertHash: []byte("hash"),
	})
	require.NoError(t, err)

	ext, err := proto.Marshal(&pb.ChaincodeHeaderExtension{ChaincodeId: &pb.ChaincodeID{Name: "cc1"}})
	require.NoError(t, err)

	expected := &common.ChannelHeader{
		Type:        int32(common.HeaderType_ENDORSER_TRANSACTION),
		Version:     1,
		ChannelId:   "mychannel",
		TxId:        "abc123",
		Timestamp:   &timestamppb.Timestamp{Seconds: 1546300800, Nanos: 123000000},
		Extension:   ext,
		TlsCertHash: []byte("hash"),
	}
	if diff := cmp.Diff(expected, header, protocmp.Transform()); diff != "" {
		t.Errorf("unexpected channel header (-want +got):\n%s", diff)
	}

	decoded := &pb.ChaincodeHeaderExtension{}
	require.NoError(t, proto.Unmarshal(header.Extension, decoded))
	assert.Equal(t, "cc1", decoded.ChaincodeId.Name)
}

func TestCreateChannelHeaderDefaults(t *testing.T) {
	before := time.Now().Add(-time.Second)

	header, err := CreateChannelHeader(common.HeaderType_CONFIG, ChannelHeaderOpts{ChannelID: "mychannel"})
	require.NoError(t, err)

	assert.Equal(t, int32(1), header.Version)
	assert.Nil(t, header.Extension, "no chaincode extension without a chaincode id")
	assert.Zero(t, header.Timestamp.Nanos%1000000, "timestamp should carry whole milliseconds")
	assert.True(t, header.Timestamp.AsTime().After(before))
}

func TestCreateChannelHeaderFarTimestamps(t *testing.T) {
	for _, ts := range []time.Time{
		time.Date(2300, 1, 2, 3, 4, 5, 678000000, time.UTC),
		time.Date(1600, 1, 2, 3, 4, 5, 678000000, time.UTC),
	} {
		header, err := CreateChannelHeader(common.HeaderType_ENDORSER_TRANSACTION, ChannelHeaderOpts{ChannelID: "mychannel", Timestamp: ts})
		require.NoError(t, err)
		assert.Equal(t, ts.Unix(), header.Timestamp.Seconds)
		assert.Equal(t, int32(678000000), header.Timestamp.Nanos)
	}
}

func TestCreateHeader(t *testing.T) {
	txnID, err := NewID([]byte("creator"))
	require.NoError(t, err)

	ch, err := CreateChannelHeader(common.HeaderType_ENDORSER_TRANSACTION, ChannelHeaderOpts{ChannelID: "mychannel", TxnID: txnID, ChaincodeID: "cc1"})
	require.NoError(t, err)

	header, err := CreateHeader(txnID, ch)
	require.NoError(t, err)

	sh := &common.SignatureHeader{}
	require.NoError(t, proto.Unmarshal(header.SignatureHeader, sh))
	assert.Equal(t, txnID.Creator, sh.Creator)
	assert.Equal(t, txnID.Nonce, sh.Nonce)

	decoded := &common.ChannelHeader{}
	require.NoError(t, proto.Unmarshal(header.ChannelHeader, decoded))
	if diff := cmp.Diff(ch, decoded, protocmp.Transform()); diff != "" {
		t.Errorf("channel header did not round trip (-want +got):\n%s", diff)
	}

	_, err = CreateHeader(txnID, nil)
	assert.Error(t, err)

	payload, err := CreatePayload(txnID, ch, []byte("data"))
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), payload.Data)
	assert.Equal(t, header.ChannelHeader, payload.Header.ChannelHeader)
}
