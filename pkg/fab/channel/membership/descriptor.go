/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package membership

import (
	"github.com/golang/protobuf/proto"
	mb "github.com/hyperledger/fabric-protos-go/msp"
	"github.com/pkg/errors"
)

// fabricMSPType is the provider type of a FabricMSPConfig payload
const fabricMSPType int32 = 0

// Descriptor is the trust anchor of one organization participating in a channel.
// A stored descriptor must not be mutated; replace it through the registry instead.
type Descriptor struct {
	// ID is the unique key of the descriptor, typically the organization's MSP ID
	ID string
	// Name is the display name; it should normally equal ID
	Name string

	OrganizationalUnitIdentifiers []string
	RootCerts                     [][]byte
	IntermediateCerts             [][]byte
	Admins                        [][]byte
	TLSRootCerts                  [][]byte
	TLSIntermediateCerts          [][]byte
}

// FabricMSPConfig converts the descriptor into its wire form.
func (d *Descriptor) FabricMSPConfig() *mb.FabricMSPConfig {
	ous := make([]*mb.FabricOUIdentifier, 0, len(d.OrganizationalUnitIdentifiers))
	for _, ou := range d.OrganizationalUnitIdentifiers {
		ous = append(ous, &mb.FabricOUIdentifier{OrganizationalUnitIdentifier: ou})
	}

	return &mb.FabricMSPConfig{
		Name:                          d.ID,
		RootCerts:                     d.RootCerts,
		IntermediateCerts:             d.IntermediateCerts,
		Admins:                        d.Admins,
		OrganizationalUnitIdentifiers: ous,
		TlsRootCerts:                  d.TLSRootCerts,
		TlsIntermediateCerts:          d.TLSIntermediateCerts,
	}
}

// MSPConfig returns the descriptor wrapped in an MSPConfig of the fabric provider type.
func (d *Descriptor) MSPConfig() (*mb.MSPConfig, error) {
	config, err := proto.Marshal(d.FabricMSPConfig())
	if err != nil {
		return nil, errors.Wrap(err, "marshal FabricMSPConfig failed")
	}
	return &mb.MSPConfig{
		Type:   fabricMSPType,
		Config: config,
	}, nil
}

// FromFabricMSPConfig creates a descriptor from a FabricMSPConfig.
// The display name is taken from the MSP name.
func FromFabricMSPConfig(config *mb.FabricMSPConfig) (*Descriptor, error) {
	if config == nil {
		return nil, errors.New("FabricMSPConfig is required")
	}
	if config.Name == "" {
		return nil, errors.New("MSP Configuration missing name")
	}

	var ous []string
	for _, ou := range config.OrganizationalUnitIdentifiers {
		logger.Debugf("found org unit [%s] for MSP [%s]", ou.OrganizationalUnitIdentifier, config.Name)
		ous = append(ous, ou.OrganizationalUnitIdentifier)
	}

	return &Descriptor{
		ID:                            config.Name,
		Name:                          config.Name,
		OrganizationalUnitIdentifiers: ous,
		RootCerts:                     config.RootCerts,
		IntermediateCerts:             config.IntermediateCerts,
		Admins:                        config.Admins,
		TLSRootCerts:                  config.TlsRootCerts,
		TLSIntermediateCerts:          config.TlsIntermediateCerts,
	}, nil
}

// FromMSPConfig creates a descriptor from an MSPConfig carrying a FabricMSPConfig payload.
func FromMSPConfig(config *mb.MSPConfig) (*Descriptor, error) {
	if config == nil {
		return nil, errors.New("MSPConfig is required")
	}
	if config.Type != fabricMSPType {
		return nil, errors.Errorf("MSP type not supported: %d", config.Type)
	}
	if len(config.Config) == 0 {
		return nil, errors.New("MSP configuration missing the payload in the 'Config' property")
	}

	fabricConfig := &mb.FabricMSPConfig{}
	if err := proto.Unmarshal(config.Config, fabricConfig); err != nil {
		return nil, errors.Wrap(err, "unmarshal FabricMSPConfig from config failed")
	}
	return FromFabricMSPConfig(fabricConfig)
}
