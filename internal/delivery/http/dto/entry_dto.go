package dto

import (
	"time"

	"autotrader/internal/domain"
	"autotrader/internal/service"
)

// SignalOutput is one entry row as the dashboard renders it
type SignalOutput struct {
	Pair          string  `json:"pair"`
	Direction     string  `json:"direction"`
	Price         float64 `json:"price"`
	Target        float64 `json:"target"`
	GainPct       float64 `json:"gain_pct"`
	ConfidencePct float64 `json:"confidence_pct"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
}

// EntryOutput is the feed snapshot served to the entry tables
type EntryOutput struct {
	Swing       []SignalOutput `json:"swing"`
	Positional  []SignalOutput `json:"positional"`
	Degraded    bool           `json:"degraded"`
	Notice      string         `json:"notice,omitempty"`
	LastUpdated string         `json:"last_updated,omitempty"`
}

// NewEntryOutput maps a feed snapshot onto the wire shape
func NewEntryOutput(snap service.FeedSnapshot) EntryOutput {
	out := EntryOutput{
		Swing:      newSignalOutputs(snap.Swing),
		Positional: newSignalOutputs(snap.Positional),
		Degraded:   snap.Status.Degraded,
		Notice:     snap.Status.Notice,
	}
	if !snap.Status.LastUpdated.IsZero() {
		out.LastUpdated = snap.Status.LastUpdated.Format(time.RFC3339)
	}
	return out
}

func newSignalOutputs(signals []domain.Signal) []SignalOutput {
	out := make([]SignalOutput, 0, len(signals))
	for _, s := range signals {
		out = append(out, SignalOutput{
			Pair:          s.Pair,
			Direction:     s.Direction,
			Price:         s.Price,
			Target:        s.Target,
			GainPct:       s.GainPct,
			ConfidencePct: s.ConfidencePct,
			Date:          s.Date,
			Time:          s.Time,
		})
	}
	return out
}
