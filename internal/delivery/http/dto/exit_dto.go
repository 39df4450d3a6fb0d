package dto

import "autotrader/internal/domain"

// AddPositionRequest carries the exit form payload. Numeric fields stay
// strings so locale input ("1,22") reaches the validation layer intact.
type AddPositionRequest struct {
	Pair        string `json:"pair"`
	Side        string `json:"side"`
	Mode        string `json:"mode"`
	EntryPrice  string `json:"entry_price"`
	TargetPrice string `json:"target_price"`
	GainPct     string `json:"gain_pct"`
	Leverage    string `json:"leverage"`
}

// PositionOutput is one ledger row on the wire
type PositionOutput struct {
	ID           string  `json:"id"`
	Pair         string  `json:"pair"`
	Side         string  `json:"side"`
	Mode         string  `json:"mode"`
	EntryPrice   float64 `json:"entry_price"`
	TargetPrice  float64 `json:"target_price"`
	Leverage     float64 `json:"leverage"`
	CurrentPrice float64 `json:"current_price"`
	PnLPercent   float64 `json:"pnl_percent"`
	Status       string  `json:"status"`
	CreatedDate  string  `json:"created_date"`
	CreatedTime  string  `json:"created_time"`
}

// NewPositionOutput maps a domain position onto the wire shape
func NewPositionOutput(p domain.Position) PositionOutput {
	return PositionOutput{
		ID:           p.ID.String(),
		Pair:         p.Pair,
		Side:         p.Side,
		Mode:         p.Mode,
		EntryPrice:   p.EntryPrice,
		TargetPrice:  p.TargetPrice,
		Leverage:     p.Leverage,
		CurrentPrice: p.CurrentPrice,
		PnLPercent:   p.PnLPercent,
		Status:       p.Status,
		CreatedDate:  p.CreatedDate,
		CreatedTime:  p.CreatedTime,
	}
}

// NewPositionOutputs maps the whole ledger, keeping its order
func NewPositionOutputs(positions []domain.Position) []PositionOutput {
	out := make([]PositionOutput, 0, len(positions))
	for _, p := range positions {
		out = append(out, NewPositionOutput(p))
	}
	return out
}
