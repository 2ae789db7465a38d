/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package comm

import (
	"crypto/sha256"
	"crypto/tls"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	certpool "github.com/hyperledger/fabric-common-go/pkg/core/config/comm/tls"
)

func TestTLSConfig(t *testing.T) {
	_, err := TLSConfig(nil, nil, "")
	assert.Error(t, err)

	clientCerts := []tls.Certificate{{Certificate: [][]byte{{3}, {4}}}}
	config, err := TLSConfig(certpool.NewCertPool(false), clientCerts, "peer0.org1.example.com")
	require.NoError(t, err)
	assert.NotNil(t, config.RootCAs)
	assert.Equal(t, clientCerts, config.Certificates)
	assert.Equal(t, "peer0.org1.example.com", config.ServerName)
}

func TestTLSCertHash(t *testing.T) {
	assert.Nil(t, TLSCertHash(nil))
	assert.Nil(t, TLSCertHash([]tls.Certificate{{}}))

	expected := sha256.Sum256([]byte{3})
	assert.Equal(t, expected[:], TLSCertHash([]tls.Certificate{{Certificate: [][]byte{{3}, {4}}}}))
}
