package service

import "autotrader/internal/domain"

// Built-in sample dataset shown whenever the automation backend is
// unreachable or returns nothing. Mirrors a real snapshot so the tables
// stay meaningful in degraded mode.
var (
	fallbackSwing = []domain.Signal{
		{Pair: "AAVE", Direction: domain.DirectionShort, Price: 33.008, Target: 0, GainPct: 0, ConfidencePct: 59.25, Date: "2025-10-06", Time: "16:22"},
		{Pair: "ADA", Direction: domain.DirectionLong, Price: 3.544, Target: 20.647, GainPct: 2.85, ConfidencePct: 55.64, Date: "2025-10-06", Time: "20:38"},
		{Pair: "ALGO", Direction: domain.DirectionShort, Price: 93.033, Target: 21.066, GainPct: 7.6, ConfidencePct: 63.6, Date: "2025-10-06", Time: "17:36"},
		{Pair: "APE", Direction: domain.DirectionShort, Price: 19.62, Target: 3.381, GainPct: 1.78, ConfidencePct: 58.86, Date: "2025-10-06", Time: "09:43"},
		{Pair: "APT", Direction: domain.DirectionShort, Price: 17.211, Target: 0, GainPct: 0, ConfidencePct: 61.4, Date: "2025-10-06", Time: "18:22"},
		{Pair: "ARB", Direction: domain.DirectionShort, Price: 21.482, Target: 0.323, GainPct: 5.62, ConfidencePct: 59.21, Date: "2025-10-06", Time: "06:47"},
		{Pair: "ATOM", Direction: domain.DirectionShort, Price: 30.328, Target: 30.463, GainPct: 3.51, ConfidencePct: 62.92, Date: "2025-10-06", Time: "06:37"},
		{Pair: "AVAX", Direction: domain.DirectionShort, Price: 82.77, Target: 0, GainPct: 0, ConfidencePct: 60.77, Date: "2025-10-06", Time: "14:21"},
	}

	fallbackPositional = []domain.Signal{
		{Pair: "FTM", Direction: domain.DirectionLong, Price: 35.451, Target: 70.787, GainPct: 2.28, ConfidencePct: 56.65, Date: "2025-10-06", Time: "20:54"},
		{Pair: "GALA", Direction: domain.DirectionShort, Price: 18.374, Target: 43.717, GainPct: 7.52, ConfidencePct: 64.18, Date: "2025-10-06", Time: "17:56"},
		{Pair: "GRT", Direction: domain.DirectionShort, Price: 48.538, Target: 37.555, GainPct: 4.8, ConfidencePct: 62.2, Date: "2025-10-06", Time: "05:19"},
		{Pair: "HBAR", Direction: domain.DirectionShort, Price: 77.298, Target: 19.627, GainPct: 5.47, ConfidencePct: 58.24, Date: "2025-10-06", Time: "14:06"},
	}
)

// FallbackEntryData returns fresh copies of the sample signal sets
func FallbackEntryData() (swing, positional []domain.Signal) {
	swing = make([]domain.Signal, len(fallbackSwing))
	copy(swing, fallbackSwing)
	positional = make([]domain.Signal, len(fallbackPositional))
	copy(positional, fallbackPositional)
	return swing, positional
}
