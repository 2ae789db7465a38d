/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cfg

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/hyperledger/fabric-common-go/pkg/common/metrics"
	"github.com/hyperledger/fabric-common-go/pkg/common/metrics/disabled"
	"github.com/hyperledger/fabric-common-go/pkg/common/metrics/prometheus"
	"github.com/hyperledger/fabric-common-go/pkg/common/providers/core"
	"github.com/hyperledger/fabric-common-go/pkg/core/config/lookup"
)

const (
	// ProviderKey selects the metrics provider: prometheus or disabled
	ProviderKey = "client.metrics.provider"

	// PrometheusProvider registers meters with the default prometheus registerer
	PrometheusProvider = "prometheus"
	// DisabledProvider discards all observations
	DisabledProvider = "disabled"
)

// MetricConfig defines the metrics configuration of the client
type MetricConfig struct {
	// Provider : prometheus or disabled
	Provider string
}

// ConfigFromBackend returns the metrics config found in the given backends.
// The provider defaults to disabled.
func ConfigFromBackend(coreBackend ...core.ConfigBackend) (*MetricConfig, error) {
	backend := lookup.New(coreBackend...)

	config := &MetricConfig{
		Provider: strings.ToLower(backend.GetString(ProviderKey)),
	}
	switch config.Provider {
	case "":
		config.Provider = DisabledProvider
	case PrometheusProvider, DisabledProvider:
	default:
		return nil, errors.Errorf("unsupported metrics provider [%s]", config.Provider)
	}
	return config, nil
}

// NewProvider creates the metrics provider named by the config
func (c *MetricConfig) NewProvider() metrics.Provider {
	if c.Provider == PrometheusProvider {
		return &prometheus.Provider{}
	}
	return &disabled.Provider{}
}
