package promcollector

import (
	"time"

	"github.com/hupe1980/annostore/core"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "annostore"

// Collector implements annostore.MetricsCollector on Prometheus metrics.
type Collector struct {
	opLatency    *prometheus.HistogramVec
	ops          *prometheus.CounterVec
	queryResults *prometheus.HistogramVec
	subtypeCache *prometheus.CounterVec
	indexBuilds  *prometheus.CounterVec
}

// New creates a Collector and registers its metrics with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_latency_seconds",
			Help:      "Latency of store operations",
			Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 10), // 1µs to ~260ms
		}, []string{"op", "status"}),
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Store operations by kind and status",
		}, []string{"op", "kind", "status"}),
		queryResults: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_results",
			Help:      "Number of ids returned by type queries",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"subtype"}),
		subtypeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "subtype_cache_total",
			Help:      "Subtype cache lookups by result",
		}, []string{"result"}),
		indexBuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "index_builds_total",
			Help:      "Relation index builds by index and status",
		}, []string{"index", "status"}),
	}

	reg.MustRegister(c.opLatency, c.ops, c.queryResults, c.subtypeCache, c.indexBuilds)
	return c
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordAdd implements annostore.MetricsCollector.
func (c *Collector) RecordAdd(kind core.Kind, d time.Duration, err error) {
	st := status(err)
	c.opLatency.WithLabelValues("add", st).Observe(d.Seconds())
	c.ops.WithLabelValues("add", kind.String(), st).Inc()
}

// RecordDelete implements annostore.MetricsCollector.
func (c *Collector) RecordDelete(d time.Duration, err error) {
	st := status(err)
	c.opLatency.WithLabelValues("delete", st).Observe(d.Seconds())
	c.ops.WithLabelValues("delete", "", st).Inc()
}

// RecordQuery implements annostore.MetricsCollector.
func (c *Collector) RecordQuery(subtype bool, results int, d time.Duration) {
	op, label := "query", "false"
	if subtype {
		op, label = "query_subtype", "true"
	}
	c.opLatency.WithLabelValues(op, "success").Observe(d.Seconds())
	c.ops.WithLabelValues(op, "", "success").Inc()
	c.queryResults.WithLabelValues(label).Observe(float64(results))
}

// RecordSubtypeCache implements annostore.MetricsCollector.
func (c *Collector) RecordSubtypeCache(hit bool) {
	if hit {
		c.subtypeCache.WithLabelValues("hit").Inc()
		return
	}
	c.subtypeCache.WithLabelValues("miss").Inc()
}

// RecordIndexBuild implements annostore.MetricsCollector.
func (c *Collector) RecordIndexBuild(index string, d time.Duration, err error) {
	st := status(err)
	c.opLatency.WithLabelValues("build_"+index, st).Observe(d.Seconds())
	c.indexBuilds.WithLabelValues(index, st).Inc()
}
