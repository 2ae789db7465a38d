/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package fab

// TransactionID contains the ID of a Fabric Transaction Proposal
// together with the creator and nonce it was derived from.
type TransactionID struct {
	ID      string
	Creator []byte
	Nonce   []byte
}

func (t TransactionID) String() string {
	return t.ID
}
