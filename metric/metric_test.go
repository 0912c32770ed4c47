package metric

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/unitgo"
)

var _ unitgo.MetricsCollector = (*PrometheusCollector)(nil)

func TestPrometheusCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewPrometheusCollector(reg)
	require.NoError(t, err)

	c.RecordParse("Length", time.Millisecond, nil)
	c.RecordParse("Length", time.Millisecond, nil)
	c.RecordParse("", time.Millisecond, errors.New("bad"))
	c.RecordConvert("Mass", 3, time.Millisecond, nil)
	c.RecordConvert("Mass", 5, time.Millisecond, errors.New("bad"))

	assert.Equal(t, 2.0, testutil.ToFloat64(c.ops.WithLabelValues("parse", "Length", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ops.WithLabelValues("parse", "", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ops.WithLabelValues("convert", "Mass", "error")))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.converted.WithLabelValues("Mass")))
	// one latency series per op and status pair
	assert.Equal(t, 4, testutil.CollectAndCount(c.opLatency))
	assert.Equal(t, 4, testutil.CollectAndCount(c.ops))

	t.Run("duplicate registration", func(t *testing.T) {
		_, err := NewPrometheusCollector(reg)
		assert.Error(t, err)
	})
}

func TestWithConverter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewPrometheusCollector(reg)
	require.NoError(t, err)

	conv := unitgo.New(unitgo.WithMetricsCollector(c))
	ctx := context.Background()
	m, err := conv.Parse(ctx, "12 ft")
	require.NoError(t, err)
	_, err = conv.Convert(ctx, m, "m")
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.ops.WithLabelValues("parse", "Length", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.converted.WithLabelValues("Length")))
}
