/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package txn builds the envelope metadata that binds an outgoing request to a
// channel, a transaction and a chaincode.
package txn

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/hyperledger/fabric-protos-go/common"
	pb "github.com/hyperledger/fabric-protos-go/peer"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/hyperledger/fabric-common-go/pkg/common/logging"
	"github.com/hyperledger/fabric-common-go/pkg/common/providers/fab"
)

var logger = logging.NewLogger("fabsdk/fab")

const (
	// NonceSize is the default length of the nonce used to derive transaction ids
	NonceSize = 24

	// ChannelHeaderVersion is the format version stamped on every channel header
	ChannelHeaderVersion int32 = 1
)

// NewID computes a TransactionID for the given serialized creator identity.
// The id is the hex encoded SHA-256 digest of a random nonce followed by the creator.
func NewID(creator []byte) (fab.TransactionID, error) {
	nonce, err := getRandomNonce()
	if err != nil {
		return fab.TransactionID{}, errors.WithMessage(err, "nonce creation failed")
	}

	id, err := computeTxnID(nonce, creator, sha256.New())
	if err != nil {
		return fab.TransactionID{}, errors.WithMessage(err, "txn ID computation failed")
	}

	return fab.TransactionID{
		ID:      id,
		Creator: creator,
		Nonce:   nonce,
	}, nil
}

func getRandomNonce() ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, errors.Wrap(err, "error getting random bytes")
	}
	return nonce, nil
}

func computeTxnID(nonce, creator []byte, h hash.Hash) (string, error) {
	b := make([]byte, 0, len(nonce)+len(creator))
	b = append(b, nonce...)
	b = append(b, creator...)

	_, err := h.Write(b)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// ChannelHeaderOpts holds the parameters to create a ChannelHeader.
type ChannelHeaderOpts struct {
	ChannelID   string
	TxnID       fab.TransactionID
	Epoch       uint64
	ChaincodeID string
	Timestamp   time.Time
	TLSCertHash []byte
}

// MillisTimestamp converts milliseconds since the epoch into a protobuf timestamp.
// The nanos field only ever carries whole milliseconds.
func MillisTimestamp(ms int64) *timestamppb.Timestamp {
	seconds := ms / 1000
	rem := ms % 1000
	if rem < 0 {
		seconds--
		rem += 1000
	}
	return &timestamppb.Timestamp{
		Seconds: seconds,
		Nanos:   int32(rem * int64(time.Millisecond)),
	}
}

// CreateChannelHeader builds a common channel header. A zero Timestamp is
// replaced by the current time; the timestamp is truncated to milliseconds.
func CreateChannelHeader(headerType common.HeaderType, opts ChannelHeaderOpts) (*common.ChannelHeader, error) {
	logger.Debugf("buildChannelHeader - headerType: %s channelID: %s txID: %s epoch: %d chaincodeID: %s timestamp: %v", headerType, opts.ChannelID, opts.TxnID.ID, opts.Epoch, opts.ChaincodeID, opts.Timestamp)

	channelHeader := &common.ChannelHeader{
		Type:        int32(headerType),
		Version:     ChannelHeaderVersion,
		ChannelId:   opts.ChannelID,
		TxId:        opts.TxnID.ID,
		Epoch:       opts.Epoch,
		TlsCertHash: opts.TLSCertHash,
	}

	if opts.Timestamp.IsZero() {
		opts.Timestamp = time.Now()
	}
	channelHeader.Timestamp = MillisTimestamp(opts.Timestamp.UnixMilli())

	if opts.ChaincodeID != "" {
		headerExt := &pb.ChaincodeHeaderExtension{
			ChaincodeId: &pb.ChaincodeID{
				Name: opts.ChaincodeID,
			},
		}
		headerExtBytes, err := proto.Marshal(headerExt)
		if err != nil {
			return nil, errors.Wrap(err, "marshal header extension failed")
		}
		channelHeader.Extension = headerExtBytes
	}
	return channelHeader, nil
}

// CreateHeader creates a Header from a ChannelHeader. The signature header
// carries the creator and nonce of the transaction id.
func CreateHeader(txnID fab.TransactionID, channelHeader *common.ChannelHeader) (*common.Header, error) {
	if channelHeader == nil {
		return nil, errors.New("channel header is required")
	}

	signatureHeader := &common.SignatureHeader{
		Creator: txnID.Creator,
		Nonce:   txnID.Nonce,
	}
	sh, err := proto.Marshal(signatureHeader)
	if err != nil {
		return nil, errors.Wrap(err, "marshal signatureHeader failed")
	}
	ch, err := proto.Marshal(channelHeader)
	if err != nil {
		return nil, errors.Wrap(err, "marshal channelHeader failed")
	}
	return &common.Header{
		SignatureHeader: sh,
		ChannelHeader:   ch,
	}, nil
}

// CreatePayload creates a payload from a ChannelHeader and a data slice.
func CreatePayload(txnID fab.TransactionID, channelHeader *common.ChannelHeader, data []byte) (*common.Payload, error) {
	header, err := CreateHeader(txnID, channelHeader)
	if err != nil {
		return nil, errors.WithMessage(err, "header creation failed")
	}

	return &common.Payload{
		Header: header,
		Data:   data,
	}, nil
}
