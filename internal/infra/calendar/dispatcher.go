package calendar

import (
	"context"
	"log/slog"
	"time"

	sqlc "venuebook/internal/infra/sqlc"
	"venuebook/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	claimBatchSize = 20
	maxJobAttempts = 5
	retryBackoff   = time.Minute
)

// Dispatcher drains the calendar job outbox on a fixed interval. Jobs are
// claimed with SKIP LOCKED so multiple instances can run side by side.
type Dispatcher struct {
	pool     *pgxpool.Pool
	queries  *sqlc.Queries
	notifier Notifier
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

func NewDispatcher(pool *pgxpool.Pool, queries *sqlc.Queries, notifier Notifier, cfg config.CalendarConfig) *Dispatcher {
	return &Dispatcher{
		pool:     pool,
		queries:  queries,
		notifier: notifier,
		interval: cfg.DispatchInterval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (d *Dispatcher) Start() {
	go d.run()
}

func (d *Dispatcher) Stop() {
	close(d.stop)
	<-d.done
}

func (d *Dispatcher) run() {
	defer close(d.done)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-d.stop:
			return
		case <-ticker.C:
			d.drain(context.Background())
		}
	}
}

func (d *Dispatcher) drain(ctx context.Context) {
	jobs, err := d.queries.ClaimDueCalendarJobs(ctx, d.pool, claimBatchSize)
	if err != nil {
		slog.Error("failed to claim calendar jobs", "error", err.Error())
		return
	}

	for _, job := range jobs {
		if err := d.notifier.Notify(ctx, job.Payload); err != nil {
			slog.Warn("calendar notification failed",
				"job_id", job.ID,
				"reservation_id", job.ReservationID,
				"attempts", job.Attempts,
				"error", err.Error())
			d.reschedule(ctx, job.ID)
			continue
		}

		if err := d.queries.CompleteCalendarJob(ctx, d.pool, job.ID); err != nil {
			slog.Error("failed to complete calendar job", "job_id", job.ID, "error", err.Error())
		}
	}
}

func (d *Dispatcher) reschedule(ctx context.Context, jobID uuid.UUID) {
	params := sqlc.FailCalendarJobParams{
		ID:          jobID,
		MaxAttempts: maxJobAttempts,
		RetryAfter: pgtype.Interval{
			Microseconds: int64(retryBackoff / time.Microsecond),
			Valid:        true,
		},
	}
	if err := d.queries.FailCalendarJob(ctx, d.pool, params); err != nil {
		slog.Error("failed to reschedule calendar job", "job_id", jobID, "error", err.Error())
	}
}
