package service

import (
	"context"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"autotrader/internal/domain"
)

// AddPositionInput carries the exit form fields. Numeric fields arrive
// as strings the way the form submits them; parsing and validation
// happen here so a bad value is rejected before the ledger changes.
type AddPositionInput struct {
	Pair        string
	Side        string
	Mode        string
	EntryPrice  string
	TargetPrice string
	GainPct     string
	Leverage    string
}

// LedgerService owns the exit ledger: manual position entry, the
// periodic revaluation tick, target-hit alerting and removal. All
// mutations are serialized through one mutex (single-writer discipline,
// since revalue-then-persist is not atomic otherwise).
type LedgerService struct {
	repo      domain.PositionRepository
	prices    domain.PriceSource
	notifiers []domain.Notifier
	log       *zap.Logger

	mu        sync.Mutex
	positions []domain.Position
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(repo domain.PositionRepository, prices domain.PriceSource, log *zap.Logger, notifiers ...domain.Notifier) *LedgerService {
	return &LedgerService{
		repo:      repo,
		prices:    prices,
		notifiers: notifiers,
		log:       log,
		positions: []domain.Position{},
	}
}

// Load reads the persisted ledger. A read failure starts the ledger
// empty; it is never fatal.
func (s *LedgerService) Load(ctx context.Context) {
	positions, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Warn("failed to load ledger, starting empty", zap.Error(err))
		positions = []domain.Position{}
	}

	s.mu.Lock()
	s.positions = positions
	s.mu.Unlock()

	s.log.Info("ledger loaded", zap.Int("positions", len(positions)))
}

// List returns a copy of the ledger in display order (newest first)
func (s *LedgerService) List() []domain.Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLocked()
}

// Add validates the form input and prepends a new OPEN position. The
// target is taken verbatim or derived from the expected gain percent.
func (s *LedgerService) Add(ctx context.Context, in AddPositionInput) (domain.Position, error) {
	pair := domain.NormalizePair(in.Pair)
	if pair == "" {
		return domain.Position{}, domain.NewValidationError("pair", "pair is required")
	}

	side := strings.ToUpper(strings.TrimSpace(in.Side))
	if side != domain.SideLong && side != domain.SideShort {
		return domain.Position{}, domain.NewValidationError("side", "side must be LONG or SHORT")
	}

	mode := strings.ToUpper(strings.TrimSpace(in.Mode))
	if mode != domain.ModeSwing && mode != domain.ModePositional {
		return domain.Position{}, domain.NewValidationError("mode", "mode must be SWING or POSITIONAL")
	}

	entry, err := parseDecimal(in.EntryPrice)
	if err != nil || entry <= 0 {
		return domain.Position{}, domain.NewValidationError("entry_price", "entry price must be a positive number")
	}

	leverage, err := parseDecimal(in.Leverage)
	if err != nil || leverage <= 0 {
		return domain.Position{}, domain.NewValidationError("leverage", "leverage must be a positive number")
	}

	var target float64
	switch {
	case strings.TrimSpace(in.TargetPrice) != "":
		target, err = parseDecimal(in.TargetPrice)
		if err != nil {
			return domain.Position{}, domain.NewValidationError("target_price", "target price must be a number")
		}
	case strings.TrimSpace(in.GainPct) != "":
		gain, gerr := parseDecimal(in.GainPct)
		if gerr != nil {
			return domain.Position{}, domain.NewValidationError("gain_pct", "gain percent must be a number")
		}
		target = domain.TargetFromGainPct(side, entry, gain)
	default:
		return domain.Position{}, domain.NewValidationError("target_price", "target price or gain percent is required")
	}

	now := time.Now()
	position := domain.Position{
		ID:           uuid.New(),
		Pair:         pair,
		Side:         side,
		Mode:         mode,
		EntryPrice:   entry,
		TargetPrice:  target,
		Leverage:     leverage,
		CurrentPrice: entry,
		PnLPercent:   0,
		Status:       domain.StatusOpen,
		CreatedDate:  now.Format("2006-01-02"),
		CreatedTime:  now.Format("15:04"),
	}

	s.mu.Lock()
	s.positions = append([]domain.Position{position}, s.positions...)
	snapshot := s.copyLocked()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	return position, nil
}

// Revalue runs one tick over the ledger: every OPEN position gets a new
// current price, a recomputed PnL and a target-hit check. A position
// that crosses its target flips to TARGET_HIT and fires exactly one
// alert; the flipped status keeps later ticks away from it.
func (s *LedgerService) Revalue(ctx context.Context) {
	now := time.Now()

	s.mu.Lock()
	var hits []domain.Position
	changed := false
	for i := range s.positions {
		p := &s.positions[i]
		if !p.IsOpen() {
			continue
		}

		price, err := s.prices.NextPrice(ctx, p)
		if err != nil {
			s.log.Warn("price update failed", zap.String("pair", p.Pair), zap.Error(err))
			continue
		}

		p.CurrentPrice = price
		p.PnLPercent = p.CalculatePnLPercent(price)
		changed = true

		if p.TargetHit(price) {
			p.Status = domain.StatusTargetHit
			hits = append(hits, *p)
		}
	}
	snapshot := s.copyLocked()
	s.mu.Unlock()

	for _, hit := range hits {
		s.log.Info("target hit",
			zap.String("pair", hit.Pair),
			zap.Float64("current", hit.CurrentPrice),
			zap.Float64("target", hit.TargetPrice),
			zap.Float64("pnl_pct", hit.PnLPercent))
		for _, n := range s.notifiers {
			if err := n.NotifyTargetHit(ctx, hit, now); err != nil {
				s.log.Warn("target-hit alert delivery failed", zap.String("pair", hit.Pair), zap.Error(err))
			}
		}
	}

	if changed {
		s.persist(ctx, snapshot)
	}
}

// Close marks a position CLOSED. Closing an absent or already closed
// position is a no-op.
func (s *LedgerService) Close(ctx context.Context, id uuid.UUID) {
	s.mu.Lock()
	changed := false
	for i := range s.positions {
		p := &s.positions[i]
		if p.ID == id && p.Status != domain.StatusClosed {
			p.Status = domain.StatusClosed
			changed = true
		}
	}
	snapshot := s.copyLocked()
	s.mu.Unlock()

	if changed {
		s.persist(ctx, snapshot)
	}
}

// Remove deletes the position with the given id. An absent id is a
// successful no-op, not an error.
func (s *LedgerService) Remove(ctx context.Context, id uuid.UUID) {
	s.mu.Lock()
	kept := s.positions[:0]
	changed := false
	for _, p := range s.positions {
		if p.ID == id {
			changed = true
			continue
		}
		kept = append(kept, p)
	}
	s.positions = kept
	snapshot := s.copyLocked()
	s.mu.Unlock()

	if changed {
		s.persist(ctx, snapshot)
	}
}

func (s *LedgerService) copyLocked() []domain.Position {
	out := make([]domain.Position, len(s.positions))
	copy(out, s.positions)
	return out
}

// persist writes the ledger after a mutation. A write failure keeps the
// in-memory state and is logged; it is never fatal.
func (s *LedgerService) persist(ctx context.Context, positions []domain.Position) {
	if err := s.repo.Save(ctx, positions); err != nil {
		s.log.Error("failed to persist ledger", zap.Error(err))
	}
}

// parseDecimal parses a form number, tolerating the locale decimal
// comma the spreadsheet locale produces
func parseDecimal(raw string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, strconv.ErrRange
	}
	return value, nil
}
