package services

import (
	"context"

	"handsup-market/internal/domain"
	"handsup-market/pkg/logger"

	"github.com/robfig/cron/v3"
)

// StatusUpdater periodically reclassifies ended auctions: canceled without
// bids, trading with at least one. Each run is idempotent, so an overlap
// with a previous run or a rerun after a crash is harmless.
type StatusUpdater struct {
	cron     *cron.Cron
	repo     domain.AuctionQueryRepository
	schedule string
	log      logger.Logger
}

func NewStatusUpdater(repo domain.AuctionQueryRepository, schedule string, log logger.Logger) *StatusUpdater {
	return &StatusUpdater{
		cron:     cron.New(cron.WithSeconds()),
		repo:     repo,
		schedule: schedule,
		log:      log,
	}
}

func (u *StatusUpdater) Start(ctx context.Context) error {
	u.log.Info("Starting auction status updater", "schedule", u.schedule)

	_, err := u.cron.AddFunc(u.schedule, func() {
		u.Run(ctx)
	})
	if err != nil {
		return err
	}

	u.cron.Start()
	return nil
}

func (u *StatusUpdater) Stop() error {
	u.log.Info("Stopping auction status updater")
	u.cron.Stop()
	return nil
}

// Run executes one sweep. Errors end the run; the next scheduled run
// starts over from the same predicates.
func (u *StatusUpdater) Run(ctx context.Context) {
	canceled, trading, err := u.repo.UpdateStatusesAfterEndDate(ctx)
	if err != nil {
		u.log.Error("Auction status sweep failed", "error", err)
		return
	}

	u.log.Info("Auction status sweep finished", "canceled", canceled, "trading", trading)
}
