package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"autotrader/internal/domain"
)

// RandomWalkService simulates price movement for ledger revaluation
// when no market feed is configured. Each tick nudges the price by a
// step proportional to the entry price, so cheap and expensive pairs
// move on a comparable scale.
type RandomWalkService struct {
	volatility float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomWalkService creates a simulated price source. volatility is
// the maximum per-tick step as a fraction of the entry price.
func NewRandomWalkService(volatility float64) *RandomWalkService {
	if volatility <= 0 {
		volatility = 0.004
	}
	return &RandomWalkService{
		volatility: volatility,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NextPrice returns the simulated next price for the position
func (s *RandomWalkService) NextPrice(_ context.Context, position *domain.Position) (float64, error) {
	s.mu.Lock()
	step := s.rng.Float64()*2 - 1 // [-1, 1)
	s.mu.Unlock()

	price := position.CurrentPrice + position.EntryPrice*s.volatility*step
	if price < 0 {
		price = 0
	}
	return price, nil
}
