package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// StatusCounter reports how many orders sit in each status.
type StatusCounter interface {
	CountByStatus(ctx context.Context) (map[order.Status]int64, error)
}

// BacklogRecorder receives the per-status counts.
type BacklogRecorder interface {
	SetOrdersByStatus(statuses []string, counts map[string]int64)
}

var trackedStatuses = []order.Status{
	order.Pending,
	order.Assigned,
	order.ReadyForPickup,
	order.PickedUp,
	order.InTransit,
	order.Delivered,
	order.Cancelled,
}

// OrderBacklogJob publishes the order backlog so dashboards can alert on
// orders piling up in pending.
type OrderBacklogJob struct {
	counter  StatusCounter
	recorder BacklogRecorder
	spec     string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOrderBacklogJob(
	counter StatusCounter,
	recorder BacklogRecorder,
	spec string,
	timeout time.Duration,
	logger *slog.Logger,
) *OrderBacklogJob {
	return &OrderBacklogJob{
		counter:  counter,
		recorder: recorder,
		spec:     spec,
		timeout:  timeout,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_backlog_job"),
	}
}

// Run performs one count. Failures are logged and the previous values stay.
func (j *OrderBacklogJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	counts, err := j.counter.CountByStatus(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order backlog count failed", "error", err)
		return
	}

	names := make([]string, 0, len(trackedStatuses))
	byName := make(map[string]int64, len(counts))
	for _, s := range trackedStatuses {
		names = append(names, s.String())
		byName[s.String()] = counts[s]
	}
	j.recorder.SetOrdersByStatus(names, byName)
}

func (j *OrderBacklogJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order backlog job started", "schedule", j.spec)
	return nil
}

func (j *OrderBacklogJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order backlog job stopped")
}
