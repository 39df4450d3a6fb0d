package domain

import "strings"

// Signal direction constants
const (
	DirectionLong    = "LONG"
	DirectionShort   = "SHORT"
	DirectionNoEntry = "NO-ENTRY"
)

// Signal is one entry suggestion from the automation feed, already
// normalized from the loose wire shape at the boundary.
type Signal struct {
	Pair          string  `json:"pair"`
	Direction     string  `json:"direction"`
	Price         float64 `json:"price"`
	Target        float64 `json:"target"`
	GainPct       float64 `json:"gain_pct"`
	ConfidencePct float64 `json:"confidence_pct"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
}

// NormalizePair returns the canonical form of an instrument symbol
func NormalizePair(pair string) string {
	return strings.ToUpper(strings.TrimSpace(pair))
}

// NormalizeDirection maps a raw feed direction onto the known set.
// Anything that is not LONG or SHORT (the automation emits "NÃO ENTRAR"
// among others) counts as a no-entry signal.
func NormalizeDirection(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case DirectionLong:
		return DirectionLong
	case DirectionShort:
		return DirectionShort
	default:
		return DirectionNoEntry
	}
}

// FilterByCoins keeps only signals whose pair belongs to the allowlist,
// preserving the original relative order. Membership is an exact match
// after normalization; the allowlist order is irrelevant.
func FilterByCoins(signals []Signal, allowlist []string) []Signal {
	allowed := make(map[string]struct{}, len(allowlist))
	for _, coin := range allowlist {
		allowed[NormalizePair(coin)] = struct{}{}
	}

	filtered := make([]Signal, 0, len(signals))
	for _, s := range signals {
		if _, ok := allowed[NormalizePair(s.Pair)]; ok {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
