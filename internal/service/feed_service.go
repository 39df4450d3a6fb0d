package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"autotrader/internal/domain"
)

// FeedStatus describes the health of the last refresh
type FeedStatus struct {
	Degraded    bool
	Notice      string
	LastUpdated time.Time
}

// FeedSnapshot is the read side for the entry tables: both signal sets
// plus the status line under them
type FeedSnapshot struct {
	Swing      []domain.Signal
	Positional []domain.Signal
	Status     FeedStatus
}

// FeedService keeps the swing and positional signal sets fresh by
// polling the automation backend, degrading to the built-in sample
// dataset when the backend is unreachable or empty.
type FeedService struct {
	fetcher   domain.EntryFetcher
	watchlist *WatchlistService
	log       *zap.Logger

	mu         sync.Mutex
	inFlight   bool
	swing      []domain.Signal
	positional []domain.Signal
	status     FeedStatus
}

// NewFeedService creates a new FeedService. A nil fetcher means no
// backend is configured and every refresh serves the sample dataset.
func NewFeedService(fetcher domain.EntryFetcher, watchlist *WatchlistService, log *zap.Logger) *FeedService {
	return &FeedService{
		fetcher:   fetcher,
		watchlist: watchlist,
		log:       log,
	}
}

// Refresh fetches the current signal sets and replaces the in-memory
// state. Ticks are serialized: a tick that arrives while a previous
// request is still outstanding is skipped, so a slow response can never
// overwrite a newer one.
func (s *FeedService) Refresh(ctx context.Context) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		s.log.Debug("feed refresh already in flight, skipping tick")
		return
	}
	s.inFlight = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	if s.fetcher == nil {
		s.applyFallback("automation backend is not configured, showing sample data")
		return
	}

	swing, positional, err := s.fetcher.FetchEntry(ctx)
	if err != nil {
		s.log.Warn("entry fetch failed, serving fallback data", zap.Error(err))
		s.applyFallback(fmt.Sprintf("failed to reach the automation backend: %v; showing sample data", err))
		return
	}

	allowlist := s.watchlist.Coins()
	s.mu.Lock()
	s.swing = domain.FilterByCoins(swing, allowlist)
	s.positional = domain.FilterByCoins(positional, allowlist)
	s.status = FeedStatus{LastUpdated: time.Now()}
	s.mu.Unlock()

	s.log.Info("entry feed refreshed",
		zap.Int("swing", len(s.swing)),
		zap.Int("positional", len(s.positional)))
}

// applyFallback installs the sample dataset and records the degraded
// notice. The refresh timestamp is still stamped so the dashboard can
// show when data was last replaced.
func (s *FeedService) applyFallback(notice string) {
	swing, positional := FallbackEntryData()
	allowlist := s.watchlist.Coins()

	s.mu.Lock()
	s.swing = domain.FilterByCoins(swing, allowlist)
	s.positional = domain.FilterByCoins(positional, allowlist)
	s.status = FeedStatus{
		Degraded:    true,
		Notice:      notice,
		LastUpdated: time.Now(),
	}
	s.mu.Unlock()
}

// Snapshot returns copies of both signal sets and the current status
func (s *FeedService) Snapshot() FeedSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := FeedSnapshot{
		Swing:      make([]domain.Signal, len(s.swing)),
		Positional: make([]domain.Signal, len(s.positional)),
		Status:     s.status,
	}
	copy(snap.Swing, s.swing)
	copy(snap.Positional, s.positional)
	return snap
}
