/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperledger/fabric-common-go/pkg/common/metrics/disabled"
	"github.com/hyperledger/fabric-common-go/pkg/common/metrics/prometheus"
	"github.com/hyperledger/fabric-common-go/pkg/core/config"
)

func TestConfigFromBackend(t *testing.T) {
	tests := []struct {
		yaml     string
		provider string
		err      string
	}{
		{yaml: "client:\n  organization: org1\n", provider: DisabledProvider},
		{yaml: "client:\n  metrics:\n    provider: Prometheus\n", provider: PrometheusProvider},
		{yaml: "client:\n  metrics:\n    provider: disabled\n", provider: DisabledProvider},
		{yaml: "client:\n  metrics:\n    provider: statsd\n", err: "unsupported metrics provider [statsd]"},
	}
	for _, tc := range tests {
		backends, err := config.FromRaw([]byte(tc.yaml), "yaml")()
		require.NoError(t, err)

		c, err := ConfigFromBackend(backends...)
		if tc.err != "" {
			assert.EqualError(t, err, tc.err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.provider, c.Provider)
	}
}

func TestNewProvider(t *testing.T) {
	assert.IsType(t, &prometheus.Provider{}, (&MetricConfig{Provider: PrometheusProvider}).NewProvider())
	assert.IsType(t, &disabled.Provider{}, (&MetricConfig{Provider: DisabledProvider}).NewProvider())
}
