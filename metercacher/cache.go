// Copyright (C) 2026, Emberfall Labs. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metercacher wraps any Cacher with Prometheus metrics.
package metercacher

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/emberfall/collections"
)

var _ collections.Cacher[struct{}, struct{}] = (*Cache[struct{}, struct{}])(nil)

// Cache decorates a Cacher with hit/miss counters, operation timings and a
// size gauge. It adds no behavior of its own; every call is forwarded to
// the wrapped cache.
type Cache[K comparable, V any] struct {
	collections.Cacher[K, V]
	metrics *cacheMetrics
}

// New wraps c, registering its collectors under namespace with registerer.
func New[K comparable, V any](
	namespace string,
	registerer prometheus.Registerer,
	c collections.Cacher[K, V],
) (*Cache[K, V], error) {
	metrics, err := newMetrics(namespace, registerer)
	if err != nil {
		return nil, err
	}
	return &Cache[K, V]{
		Cacher:  c,
		metrics: metrics,
	}, nil
}

func (c *Cache[K, V]) Get(key K) (V, error) {
	start := time.Now()
	value, err := c.Cacher.Get(key)
	getDuration := time.Since(start)

	if err == nil {
		c.metrics.getCount.With(hitLabels).Inc()
		c.metrics.getTime.With(hitLabels).Add(float64(getDuration))
	} else {
		c.metrics.getCount.With(missLabels).Inc()
		c.metrics.getTime.With(missLabels).Add(float64(getDuration))
	}

	return value, err
}

func (c *Cache[K, V]) Put(key K, value V) {
	start := time.Now()
	c.Cacher.Put(key, value)
	putDuration := time.Since(start)

	c.metrics.putCount.Inc()
	c.metrics.putTime.Add(float64(putDuration))
	c.metrics.len.Set(float64(c.Cacher.Len()))
}

func (c *Cache[K, _]) Delete(key K) error {
	err := c.Cacher.Delete(key)
	c.metrics.len.Set(float64(c.Cacher.Len()))
	return err
}

func (c *Cache[_, _]) Flush() {
	c.Cacher.Flush()
	c.metrics.len.Set(float64(c.Cacher.Len()))
}
