package jobs

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"github.com/DhavalSuthar-24/tourney/pkg/metrics"
)

// Counter is satisfied by the tournament and player repositories.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// StatsJob refreshes the store gauges from row counts.
type StatsJob struct {
	tournaments Counter
	players     Counter
	gauges      *metrics.StoreGauges
	log         *zap.Logger
	timeout     time.Duration
}

func NewStatsJob(tournaments, players Counter, gauges *metrics.StoreGauges, log *zap.Logger) *StatsJob {
	return &StatsJob{
		tournaments: tournaments,
		players:     players,
		gauges:      gauges,
		log:         log,
		timeout:     10 * time.Second,
	}
}

// Run performs one refresh. A failed count leaves the previous gauge value.
func (j *StatsJob) Run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	if n, err := j.tournaments.Count(ctx); err != nil {
		j.log.Warn("counting tournaments failed", zap.Error(err))
	} else {
		j.gauges.Tournaments.Set(float64(n))
	}

	if n, err := j.players.Count(ctx); err != nil {
		j.log.Warn("counting players failed", zap.Error(err))
	} else {
		j.gauges.Players.Set(float64(n))
	}
}

// Start schedules Run every interval, running it once immediately. The
// returned scheduler must be shut down by the caller.
func (j *StatsJob) Start(ctx context.Context, interval time.Duration) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() { j.Run(ctx) }),
		gocron.WithName("store-stats"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = sched.Shutdown()
		return nil, err
	}

	sched.Start()
	j.log.Info("stats job scheduled", zap.Duration("interval", interval))
	return sched, nil
}
