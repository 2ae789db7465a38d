/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	kitmetrics "github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/prometheus"
	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/hyperledger/fabric-common-go/pkg/common/metrics"
)

// Provider creates go-kit meters backed by prometheus collectors. Collectors are
// registered with Registerer, or with the default registerer when it is nil.
type Provider struct {
	Registerer prom.Registerer
}

func (p *Provider) registerer() prom.Registerer {
	if p.Registerer == nil {
		return prom.DefaultRegisterer
	}
	return p.Registerer
}

// register registers c and returns it, or returns the equal collector
// registered earlier so meters with the same options share one vector.
func (p *Provider) register(c prom.Collector) prom.Collector {
	if err := p.registerer().Register(c); err != nil {
		if are, ok := err.(prom.AlreadyRegisteredError); ok {
			return are.ExistingCollector
		}
		panic(err)
	}
	return c
}

// NewCounter creates and registers a counter vector
func (p *Provider) NewCounter(o metrics.CounterOpts) metrics.Counter {
	cv := prom.NewCounterVec(
		prom.CounterOpts{
			Namespace: o.Namespace,
			Subsystem: o.Subsystem,
			Name:      o.Name,
			Help:      o.Help,
		},
		o.LabelNames,
	)
	cv = p.register(cv).(*prom.CounterVec)
	return &Counter{Counter: prometheus.NewCounter(cv)}
}

// NewGauge creates and registers a gauge vector
func (p *Provider) NewGauge(o metrics.GaugeOpts) metrics.Gauge {
	gv := prom.NewGaugeVec(
		prom.GaugeOpts{
			Namespace: o.Namespace,
			Subsystem: o.Subsystem,
			Name:      o.Name,
			Help:      o.Help,
		},
		o.LabelNames,
	)
	gv = p.register(gv).(*prom.GaugeVec)
	return &Gauge{Gauge: prometheus.NewGauge(gv)}
}

// NewHistogram creates and registers a histogram vector
func (p *Provider) NewHistogram(o metrics.HistogramOpts) metrics.Histogram {
	hv := prom.NewHistogramVec(
		prom.HistogramOpts{
			Namespace: o.Namespace,
			Subsystem: o.Subsystem,
			Name:      o.Name,
			Help:      o.Help,
			Buckets:   o.Buckets,
		},
		o.LabelNames,
	)
	hv = p.register(hv).(*prom.HistogramVec)
	return &Histogram{Histogram: prometheus.NewHistogram(hv)}
}

// Counter is a go-kit counter over a prometheus counter vector
type Counter struct{ kitmetrics.Counter }

// With returns the counter for the given label name and value pairs
func (c *Counter) With(labelValues ...string) metrics.Counter {
	return &Counter{Counter: c.Counter.With(labelValues...)}
}

// Gauge is a go-kit gauge over a prometheus gauge vector
type Gauge struct{ kitmetrics.Gauge }

// With returns the gauge for the given label name and value pairs
func (g *Gauge) With(labelValues ...string) metrics.Gauge {
	return &Gauge{Gauge: g.Gauge.With(labelValues...)}
}

// Histogram is a go-kit histogram over a prometheus histogram vector
type Histogram struct{ kitmetrics.Histogram }

// With returns the histogram for the given label name and value pairs
func (h *Histogram) With(labelValues ...string) metrics.Histogram {
	return &Histogram{Histogram: h.Histogram.With(labelValues...)}
}
