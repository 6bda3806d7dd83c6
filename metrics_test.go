package gossdb

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestPoolStatsCollector(t *testing.T) {
	srv := newStubServer(t, okHandler)
	p := NewPool(srv.options())
	defer p.DisconnectAll()

	reg := prometheus.NewRegistry()
	assert.Nil(t, reg.Register(NewPoolStatsCollector(p)))

	conn, err := p.Lease()
	assert.Nil(t, err)

	fams, err := reg.Gather()
	assert.Nil(t, err)
	assert.Equal(t, 3, len(fams))

	byName := map[string]float64{}
	for _, f := range fams {
		byName[f.GetName()] = f.GetMetric()[0].GetGauge().GetValue()
	}
	assert.Equal(t, 1.0, byName["gossdb_pool_connections_created"])
	assert.Equal(t, 0.0, byName["gossdb_pool_connections_available"])
	assert.Equal(t, 1.0, byName["gossdb_pool_connections_in_use"])

	p.Release(conn)
	fams, err = reg.Gather()
	assert.Nil(t, err)
	for _, f := range fams {
		if f.GetName() == "gossdb_pool_connections_available" {
			assert.Equal(t, 1.0, f.GetMetric()[0].GetGauge().GetValue())
		}
	}
}
