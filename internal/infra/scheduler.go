package infra

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"autotrader/internal/service"
)

// Scheduler drives the two periodic jobs of the dashboard: the feed
// refresh and the position revaluation tick. Stop must be called on
// shutdown so no tick mutates state after teardown.
type Scheduler struct {
	cron         *cron.Cron
	feed         *service.FeedService
	ledger       *service.LedgerService
	refreshEvery time.Duration
	revalueEvery time.Duration
	log          *zap.Logger
}

// NewScheduler creates a new scheduler
func NewScheduler(feed *service.FeedService, ledger *service.LedgerService, refreshEvery, revalueEvery time.Duration, log *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:         cron.New(),
		feed:         feed,
		ledger:       ledger,
		refreshEvery: refreshEvery,
		revalueEvery: revalueEvery,
		log:          log,
	}
}

// Start registers both jobs and fires the first feed refresh
// immediately so the dashboard is populated on startup.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc("@every "+s.refreshEvery.String(), func() {
		s.feed.Refresh(context.Background())
	})
	if err != nil {
		return err
	}

	_, err = s.cron.AddFunc("@every "+s.revalueEvery.String(), func() {
		s.ledger.Revalue(context.Background())
	})
	if err != nil {
		return err
	}

	go s.feed.Refresh(context.Background())

	s.cron.Start()
	s.log.Info("scheduler started",
		zap.Duration("feed_refresh", s.refreshEvery),
		zap.Duration("revalue_tick", s.revalueEvery))

	return nil
}

// Stop stops both timers. A job already running is allowed to finish;
// no new ticks fire afterwards.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("scheduler stopped")
}
