package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/DhavalSuthar-24/tourney/pkg/metrics"
)

type counterFunc func(ctx context.Context) (int64, error)

func (f counterFunc) Count(ctx context.Context) (int64, error) { return f(ctx) }

func fixed(n int64) Counter {
	return counterFunc(func(context.Context) (int64, error) { return n, nil })
}

func TestRunSetsGauges(t *testing.T) {
	gauges := metrics.NewStoreGauges("tourney", prometheus.NewRegistry())
	job := NewStatsJob(fixed(4), fixed(11), gauges, zap.NewNop())

	job.Run(context.Background())

	assert.Equal(t, 4.0, testutil.ToFloat64(gauges.Tournaments))
	assert.Equal(t, 11.0, testutil.ToFloat64(gauges.Players))
}

func TestRunKeepsPreviousValueOnError(t *testing.T) {
	gauges := metrics.NewStoreGauges("tourney", prometheus.NewRegistry())
	gauges.Tournaments.Set(2)
	failing := counterFunc(func(context.Context) (int64, error) { return 0, errors.New("connection refused") })

	NewStatsJob(failing, fixed(5), gauges, zap.NewNop()).Run(context.Background())

	assert.Equal(t, 2.0, testutil.ToFloat64(gauges.Tournaments))
	assert.Equal(t, 5.0, testutil.ToFloat64(gauges.Players))
}

func TestStartRunsImmediately(t *testing.T) {
	gauges := metrics.NewStoreGauges("tourney", prometheus.NewRegistry())
	job := NewStatsJob(fixed(3), fixed(6), gauges, zap.NewNop())

	sched, err := job.Start(context.Background(), time.Hour)
	require.NoError(t, err)
	defer func() { _ = sched.Shutdown() }()

	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(gauges.Players) == 6
	}, 2*time.Second, 10*time.Millisecond)
}
