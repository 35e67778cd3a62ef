package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// PresenceSweeper re-evaluates live presence; the fleet hub implements it.
type PresenceSweeper interface {
	Sweep(now time.Time) int
}

// PresenceRecorder counts presence flips.
type PresenceRecorder interface {
	PresenceChanged(n int)
}

// PresenceSweepJob lets live subscribers see couriers going stale even when no
// further ping arrives for them.
type PresenceSweepJob struct {
	sweeper  PresenceSweeper
	recorder PresenceRecorder
	spec     string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewPresenceSweepJob(sweeper PresenceSweeper, recorder PresenceRecorder, spec string, logger *slog.Logger) *PresenceSweepJob {
	return &PresenceSweepJob{
		sweeper:  sweeper,
		recorder: recorder,
		spec:     spec,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "presence_sweep_job"),
	}
}

// Run performs one sweep.
func (j *PresenceSweepJob) Run() {
	flips := j.sweeper.Sweep(time.Now())
	if flips == 0 {
		return
	}
	j.recorder.PresenceChanged(flips)
	j.logger.Debug("Presence changed", "couriers", flips)
}

func (j *PresenceSweepJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Presence sweep job started", "schedule", j.spec)
	return nil
}

func (j *PresenceSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Presence sweep job stopped")
}
