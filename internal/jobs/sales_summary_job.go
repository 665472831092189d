package jobs

import (
	"context"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// SalesSummaryHandler computes the current sales summary.
type SalesSummaryHandler interface {
	Handle(ctx context.Context, query queries.GetSalesSummaryQuery) (queries.SalesSummary, error)
}

// SalesSummaryJob periodically logs the order count and revenue.
type SalesSummaryJob struct {
	handler  SalesSummaryHandler
	schedule string
	cron     *cron.Cron
	logger   *logger.Logger
}

// NewSalesSummaryJob creates the job. schedule is a six field cron
// expression, seconds first.
func NewSalesSummaryJob(handler SalesSummaryHandler, schedule string, log *logger.Logger) *SalesSummaryJob {
	return &SalesSummaryJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   log.With("component", "sales_summary_job"),
	}
}

func (j *SalesSummaryJob) Name() string {
	return "sales summary"
}

// Start schedules the job. An invalid schedule is returned as an error.
func (j *SalesSummaryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("sales summary job started", "schedule", j.schedule)
	return nil
}

// Run executes one iteration.
func (j *SalesSummaryJob) Run(ctx context.Context) {
	summary, err := j.handler.Handle(ctx, queries.NewGetSalesSummaryQuery())
	if err != nil {
		j.logger.Error("sales summary job failed", "error", err)
		return
	}

	j.logger.Info("sales summary",
		"orders", summary.OrderCount,
		"total", summary.Total.StringFixed(2),
	)
}

// Stop stops the scheduler and waits for a running iteration to finish.
func (j *SalesSummaryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("sales summary job stopped")
}
