/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package fab

import (
	"github.com/hyperledger/fabric-common-go/pkg/common/providers/core"
)

// ClientContext supplies the client scoped settings consumed by a channel.
type ClientContext interface {
	// Lookup returns the configuration value for the given key.
	Lookup(key string, opts ...core.LookupOption) (interface{}, bool)
	// ClientCertHash returns the hash of the client's TLS certificate, or nil
	// when mutual TLS is not in use.
	ClientCertHash() []byte
}
