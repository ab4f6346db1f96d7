package jobs

import (
	"context"
	"log/slog"
	"time"

	"orderflow/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultIntegritySchedule runs the scan at the top of every minute.
const DefaultIntegritySchedule = "0 * * * * *"

// ViolationFinder is the query the integrity job runs.
type ViolationFinder interface {
	Handle(
		ctx context.Context, query queries.FindDefaultTransitionViolationsQuery,
	) ([]queries.FindDefaultTransitionViolationsQueryResponse, error)
}

// ScanRecorder receives the outcome of every scan.
type ScanRecorder interface {
	IntegrityScanned(violations int, took time.Duration)
}

// GraphIntegrityJob periodically looks for steps holding active orders whose number of
// default outgoing transitions is not exactly one. Approvals of those orders would fail,
// so every offending step is logged and the count is exported.
type GraphIntegrityJob struct {
	finder   ViolationFinder
	recorder ScanRecorder
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewGraphIntegrityJob creates the job. schedule is a six-field cron expression (with seconds);
// an empty schedule selects DefaultIntegritySchedule.
func NewGraphIntegrityJob(
	finder ViolationFinder,
	recorder ScanRecorder,
	schedule string,
	logger *slog.Logger,
) *GraphIntegrityJob {
	if schedule == "" {
		schedule = DefaultIntegritySchedule
	}
	return &GraphIntegrityJob{
		finder:   finder,
		recorder: recorder,
		schedule: schedule,
		timeout:  30 * time.Second,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "graph_integrity_job"),
	}
}

// Start registers the scan on the schedule and starts the scheduler.
func (j *GraphIntegrityJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()

		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Graph integrity scan failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Graph integrity job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running scan to finish.
func (j *GraphIntegrityJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Graph integrity job stopped")
}

// Run performs one scan and returns the violations found.
func (j *GraphIntegrityJob) Run(ctx context.Context) ([]queries.FindDefaultTransitionViolationsQueryResponse, error) {
	started := time.Now()

	violations, err := j.finder.Handle(ctx, queries.NewFindDefaultTransitionViolationsQuery())
	if err != nil {
		return nil, err
	}

	j.recorder.IntegrityScanned(len(violations), time.Since(started))

	for _, v := range violations {
		j.logger.WarnContext(ctx, "Step cannot route its orders",
			"screen_id", v.ScreenID,
			"step_id", v.StepID,
			"step", v.StepName,
			"default_transitions", v.DefaultTransitions,
			"active_orders", v.ActiveOrders,
		)
	}
	if len(violations) == 0 {
		j.logger.DebugContext(ctx, "Graph integrity scan found no violations")
	}

	return violations, nil
}
