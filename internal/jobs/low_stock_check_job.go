package jobs

import (
	"context"
	"log/slog"

	"storefront/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// LowStockCheckJob periodically scans inventory for items at or below their
// reorder threshold and logs a warning per item. Runs every minute.
type LowStockCheckJob struct {
	handler queries.GetLowStockQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLowStockCheckJob creates a new job for low stock monitoring.
// Uses GetLowStockQueryHandler to find items needing replenishment.
func NewLowStockCheckJob(handler queries.GetLowStockQueryHandler, logger *slog.Logger) *LowStockCheckJob {
	return &LowStockCheckJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "low_stock_check_job"),
	}
}

// Start begins the low stock check job to run every minute.
func (j *LowStockCheckJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		items, err := j.handler.Handle(ctx, queries.NewGetLowStockQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Low stock check failed", "error", err)
			return
		}

		for _, item := range items {
			j.logger.WarnContext(ctx, "Product needs replenishment",
				"sku", item.SKU,
				"product_name", item.ProductName,
				"available", item.AvailableQuantity,
				"reorder_threshold", item.ReorderThreshold,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock check job started (running every minute)")
	return nil
}

// Stop stops the low stock check job.
func (j *LowStockCheckJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock check job stopped")
}
