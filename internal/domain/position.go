package domain

import (
	"github.com/google/uuid"
)

// PositionSide constants
const (
	SideLong  = "LONG"
	SideShort = "SHORT"
)

// PositionMode constants (the horizon the operation tracks)
const (
	ModeSwing      = "SWING"
	ModePositional = "POSITIONAL"
)

// PositionStatus constants. Transitions are monotonic:
// OPEN -> TARGET_HIT or OPEN/TARGET_HIT -> CLOSED, never back.
const (
	StatusOpen      = "OPEN"
	StatusTargetHit = "TARGET_HIT"
	StatusClosed    = "CLOSED"
)

// Position is a manually entered trade tracked by the exit ledger
type Position struct {
	ID           uuid.UUID `json:"id"`
	Pair         string    `json:"pair"`
	Side         string    `json:"side"`
	Mode         string    `json:"mode"`
	EntryPrice   float64   `json:"entry_price"`
	TargetPrice  float64   `json:"target_price"`
	Leverage     float64   `json:"leverage"`
	CurrentPrice float64   `json:"current_price"`
	PnLPercent   float64   `json:"pnl_percent"`
	Status       string    `json:"status"`
	CreatedDate  string    `json:"created_date"`
	CreatedTime  string    `json:"created_time"`
}

// IsLong checks if the position is a LONG position
func (p *Position) IsLong() bool {
	return p.Side == SideLong
}

// IsOpen reports whether the position is still revalued by the tick
func (p *Position) IsOpen() bool {
	return p.Status == StatusOpen
}

// CalculatePnLPercent calculates the leveraged PnL percentage for the
// given current price:
//
//	LONG:  (current - entry) / entry * 100 * leverage
//	SHORT: (entry - current) / entry * 100 * leverage
func (p *Position) CalculatePnLPercent(currentPrice float64) float64 {
	if p.EntryPrice == 0 {
		return 0
	}

	leverage := p.Leverage
	if leverage < 1 {
		leverage = 1 // Safety: minimum 1x
	}

	var move float64
	if p.IsLong() {
		move = (currentPrice - p.EntryPrice) / p.EntryPrice
	} else {
		move = (p.EntryPrice - currentPrice) / p.EntryPrice
	}

	return move * 100 * leverage
}

// TargetHit reports whether the price crossed the target in the
// favorable direction
func (p *Position) TargetHit(currentPrice float64) bool {
	if p.IsLong() {
		return currentPrice >= p.TargetPrice
	}
	return currentPrice <= p.TargetPrice
}

// TargetFromGainPct derives a target price from an expected gain
// percentage relative to the entry price
func TargetFromGainPct(side string, entryPrice, gainPct float64) float64 {
	if side == SideShort {
		return entryPrice * (1 - gainPct/100)
	}
	return entryPrice * (1 + gainPct/100)
}
