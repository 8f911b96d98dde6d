package prom

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg, "test")
	require.NoError(t, err)

	c.RecordRun(50*time.Millisecond, 100, 3, 7, nil)
	c.RecordRun(time.Millisecond, 100, 0, 0, errors.New("boom"))
	c.RecordNeighborQuery(time.Microsecond, 5)
	c.RecordExpansion(time.Millisecond, 42)

	assert.Equal(t, float64(1), testutil.ToFloat64(c.runs.WithLabelValues("success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.runs.WithLabelValues("error")))
	// Gauges only track successful runs.
	assert.Equal(t, float64(3), testutil.ToFloat64(c.clusters))
	assert.Equal(t, float64(7), testutil.ToFloat64(c.noise))

	count := testutil.CollectAndCount(c.expansionSize)
	assert.Equal(t, 1, count)
}

func TestCollectorDoubleRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewCollector(reg, "dup")
	require.NoError(t, err)

	_, err = NewCollector(reg, "dup")
	assert.Error(t, err)
}
