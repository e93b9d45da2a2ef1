// Copyright (C) 2026, Emberfall Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package metercacher

import "github.com/prometheus/client_golang/prometheus"

const resultLabel = "result"

var (
	hitLabels  = prometheus.Labels{resultLabel: "hit"}
	missLabels = prometheus.Labels{resultLabel: "miss"}
)

type cacheMetrics struct {
	getCount *prometheus.CounterVec
	getTime  *prometheus.CounterVec
	putCount prometheus.Counter
	putTime  prometheus.Counter
	len      prometheus.Gauge
}

func newMetrics(namespace string, registerer prometheus.Registerer) (*cacheMetrics, error) {
	m := &cacheMetrics{
		getCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "get_count",
				Help:      "number of get calls, labeled by hit or miss",
			},
			[]string{resultLabel},
		),
		getTime: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "get_time",
				Help:      "cumulative nanoseconds spent in get calls",
			},
			[]string{resultLabel},
		),
		putCount: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "put_count",
				Help:      "number of put calls",
			},
		),
		putTime: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "put_time",
				Help:      "cumulative nanoseconds spent in put calls",
			},
		),
		len: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "len",
				Help:      "number of entries currently stored",
			},
		),
	}
	collectors := []prometheus.Collector{
		m.getCount,
		m.getTime,
		m.putCount,
		m.putTime,
		m.len,
	}
	for _, collector := range collectors {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}
	return m, nil
}
