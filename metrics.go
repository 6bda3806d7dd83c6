package gossdb

import "github.com/prometheus/client_golang/prometheus"

// poolStatsCollector exports the pool accounting counters as prometheus
// gauges. Register it on an application registry when pool visibility is
// wanted, nothing is registered by default.
type poolStatsCollector struct {
	pool *Pool

	created   *prometheus.Desc
	available *prometheus.Desc
	inUse     *prometheus.Desc
}

// NewPoolStatsCollector returns a collector over the pool's Stats.
func NewPoolStatsCollector(pool *Pool) prometheus.Collector {
	return &poolStatsCollector{
		pool: pool,
		created: prometheus.NewDesc(
			"gossdb_pool_connections_created",
			"Number of connections the pool currently accounts for",
			nil, nil,
		),
		available: prometheus.NewDesc(
			"gossdb_pool_connections_available",
			"Number of idle pooled connections",
			nil, nil,
		),
		inUse: prometheus.NewDesc(
			"gossdb_pool_connections_in_use",
			"Number of currently leased connections",
			nil, nil,
		),
	}
}

func (c *poolStatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.created
	ch <- c.available
	ch <- c.inUse
}

func (c *poolStatsCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.pool.Stats()
	ch <- prometheus.MustNewConstMetric(c.created, prometheus.GaugeValue, float64(stats.Created))
	ch <- prometheus.MustNewConstMetric(c.available, prometheus.GaugeValue, float64(stats.Available))
	ch <- prometheus.MustNewConstMetric(c.inUse, prometheus.GaugeValue, float64(stats.InUse))
}
