// Package metric exports unitgo operation metrics to Prometheus.
package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements unitgo.MetricsCollector.
type PrometheusCollector struct {
	opLatency *prometheus.HistogramVec
	ops       *prometheus.CounterVec
	converted *prometheus.CounterVec
}

// NewPrometheusCollector creates the collector and registers its metrics
// with reg. A nil reg uses prometheus.DefaultRegisterer.
func NewPrometheusCollector(reg prometheus.Registerer) (*PrometheusCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &PrometheusCollector{
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "unitgo_operation_latency_seconds",
			Help:    "Latency of parse and convert operations",
			Buckets: prometheus.DefBuckets,
		}, []string{"op", "status"}),
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "unitgo_operations_total",
			Help: "Total parse and convert operations by kind",
		}, []string{"op", "kind", "status"}),
		converted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "unitgo_converted_values_total",
			Help: "Total values converted by kind",
		}, []string{"kind"}),
	}
	for _, col := range []prometheus.Collector{c.opLatency, c.ops, c.converted} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordParse implements unitgo.MetricsCollector.
func (c *PrometheusCollector) RecordParse(kind string, d time.Duration, err error) {
	s := status(err)
	c.opLatency.WithLabelValues("parse", s).Observe(d.Seconds())
	c.ops.WithLabelValues("parse", kind, s).Inc()
}

// RecordConvert implements unitgo.MetricsCollector.
func (c *PrometheusCollector) RecordConvert(kind string, count int, d time.Duration, err error) {
	s := status(err)
	c.opLatency.WithLabelValues("convert", s).Observe(d.Seconds())
	c.ops.WithLabelValues("convert", kind, s).Inc()
	if err == nil {
		c.converted.WithLabelValues(kind).Add(float64(count))
	}
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
