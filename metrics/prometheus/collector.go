// Package prometheus exports newsdata metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	mc, err := newsprom.NewCollector(reg)
//	ds, err := newsdata.Open(ctx, "news.csv", 5, newsdata.WithMetricsCollector(mc))
package prometheus

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/newsdata"
)

const namespace = "newsdata"

// Collector implements newsdata.MetricsCollector with Prometheus metrics.
type Collector struct {
	loads        *prom.CounterVec
	loadDuration prom.Histogram
	rowsLoaded   prom.Counter
	gets         *prom.CounterVec
}

var _ newsdata.MetricsCollector = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics with reg.
// If reg is nil, prometheus.DefaultRegisterer is used.
func NewCollector(reg prom.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prom.DefaultRegisterer
	}

	c := &Collector{
		loads: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "loads_total",
			Help:      "Number of dataset loads by result.",
		}, []string{"result"}),
		loadDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "load_duration_seconds",
			Help:      "Duration of dataset loads.",
			Buckets:   prom.ExponentialBuckets(0.001, 4, 10),
		}),
		rowsLoaded: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "rows_loaded_total",
			Help:      "Number of rows loaded into datasets.",
		}),
		gets: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "gets_total",
			Help:      "Number of sample lookups by result.",
		}, []string{"result"}),
	}

	for _, m := range []prom.Collector{c.loads, c.loadDuration, c.rowsLoaded, c.gets} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// RecordLoad implements newsdata.MetricsCollector.
func (c *Collector) RecordLoad(rows int, duration time.Duration, err error) {
	c.loads.WithLabelValues(result(err)).Inc()
	c.loadDuration.Observe(duration.Seconds())
	if err == nil {
		c.rowsLoaded.Add(float64(rows))
	}
}

// RecordGet implements newsdata.MetricsCollector.
func (c *Collector) RecordGet(err error) {
	c.gets.WithLabelValues(result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
