/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package channel

import (
	"github.com/hyperledger/fabric-common-go/pkg/common/metrics"
)

var (
	endpointsOpts = metrics.GaugeOpts{
		Namespace:  "channel",
		Name:       "endpoints",
		Help:       "The number of endpoints registered on a channel.",
		LabelNames: []string{"channel", "capability"},
	}
	headersBuiltOpts = metrics.CounterOpts{
		Namespace:  "channel",
		Name:       "headers_built",
		Help:       "The number of channel headers built.",
		LabelNames: []string{"channel", "type"},
	}
)

// Metrics are the metrics maintained by a channel
type Metrics struct {
	Endpoints    metrics.Gauge
	HeadersBuilt metrics.Counter
}

// NewMetrics creates the channel metrics using the given provider
func NewMetrics(p metrics.Provider) *Metrics {
	return &Metrics{
		Endpoints:    p.NewGauge(endpointsOpts),
		HeadersBuilt: p.NewCounter(headersBuiltOpts),
	}
}
