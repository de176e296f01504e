package jobs

import (
	"context"
	"log/slog"
	"time"

	"pipetgo/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StaleQuoteRequestJob periodically sweeps for orders that have been waiting
// in QUOTE_REQUESTED longer than the configured age and logs them for lab
// follow-up.
type StaleQuoteRequestJob struct {
	handler   queries.GetStaleQuoteOrdersQueryHandler
	olderThan time.Duration
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStaleQuoteRequestJob creates the sweep job. The schedule is a cron
// expression with a seconds field; olderThan is the minimum age of a quote
// request to be reported.
func NewStaleQuoteRequestJob(
	handler queries.GetStaleQuoteOrdersQueryHandler,
	schedule string,
	olderThan time.Duration,
	logger *slog.Logger,
) *StaleQuoteRequestJob {
	return &StaleQuoteRequestJob{
		handler:   handler,
		olderThan: olderThan,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stale_quote_request_job"),
	}
}

// Start schedules the sweep.
func (j *StaleQuoteRequestJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale quote request job started",
		"schedule", j.schedule, "olderThan", j.olderThan)
	return nil
}

// Stop stops the sweep.
func (j *StaleQuoteRequestJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale quote request job stopped")
}

func (j *StaleQuoteRequestJob) sweep() {
	ctx := context.Background()

	query, err := queries.NewGetStaleQuoteOrdersQuery(j.olderThan)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale quote request sweep misconfigured", "error", err)
		return
	}

	stale, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale quote request sweep failed", "error", err)
		return
	}

	for _, o := range stale {
		j.logger.WarnContext(ctx, "Quote request overdue",
			"orderId", o.ID.String(),
			"lab", o.LabName,
			"waitingSince", o.CreatedAt)
	}
}
