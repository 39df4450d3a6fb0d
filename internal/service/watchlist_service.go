package service

import (
	"sync"

	"autotrader/internal/domain"
)

// WatchlistService owns the coin allowlist shared by the entry feed
// filter and the exit form. The list lives in memory only: the ledger
// and the email settings are the durable state, the watchlist resets to
// its configured default on restart.
type WatchlistService struct {
	mu    sync.RWMutex
	coins []string
}

// NewWatchlistService creates a watchlist seeded with the default coins
func NewWatchlistService(defaults []string) *WatchlistService {
	s := &WatchlistService{}
	s.Replace(defaults)
	return s
}

// Coins returns a copy of the current allowlist in insertion order
func (s *WatchlistService) Coins() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.coins))
	copy(out, s.coins)
	return out
}

// Replace swaps the whole allowlist, normalizing and deduplicating
// while keeping first-occurrence order
func (s *WatchlistService) Replace(coins []string) {
	seen := make(map[string]struct{}, len(coins))
	normalized := make([]string, 0, len(coins))
	for _, coin := range coins {
		c := domain.NormalizePair(coin)
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		normalized = append(normalized, c)
	}

	s.mu.Lock()
	s.coins = normalized
	s.mu.Unlock()
}

// Add appends one coin to the allowlist
func (s *WatchlistService) Add(coin string) error {
	c := domain.NormalizePair(coin)
	if c == "" {
		return domain.NewValidationError("coin", "coin is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.coins {
		if existing == c {
			return domain.NewValidationError("coin", "coin is already on the list")
		}
	}
	s.coins = append(s.coins, c)
	return nil
}

// Remove deletes one coin; removing an absent coin is a no-op
func (s *WatchlistService) Remove(coin string) {
	c := domain.NormalizePair(coin)

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.coins[:0]
	for _, existing := range s.coins {
		if existing != c {
			kept = append(kept, existing)
		}
	}
	s.coins = kept
}
