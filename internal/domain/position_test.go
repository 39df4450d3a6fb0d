package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePnLPercentLong(t *testing.T) {
	p := Position{Side: SideLong, EntryPrice: 100, Leverage: 5}

	assert.InDelta(t, 50.0, p.CalculatePnLPercent(110), 1e-9)
}

func TestCalculatePnLPercentShort(t *testing.T) {
	p := Position{Side: SideShort, EntryPrice: 100, Leverage: 10}

	assert.InDelta(t, 100.0, p.CalculatePnLPercent(90), 1e-9)
}

func TestCalculatePnLPercentZeroEntry(t *testing.T) {
	p := Position{Side: SideLong, EntryPrice: 0, Leverage: 5}

	assert.Zero(t, p.CalculatePnLPercent(123))
}

func TestTargetHitLong(t *testing.T) {
	p := Position{Side: SideLong, EntryPrice: 100, TargetPrice: 120}

	assert.False(t, p.TargetHit(119.99))
	assert.True(t, p.TargetHit(120))
	assert.True(t, p.TargetHit(121))
}

func TestTargetHitShort(t *testing.T) {
	p := Position{Side: SideShort, EntryPrice: 100, TargetPrice: 80}

	assert.False(t, p.TargetHit(80.01))
	assert.True(t, p.TargetHit(80))
	assert.True(t, p.TargetHit(79))
}

func TestTargetFromGainPct(t *testing.T) {
	assert.InDelta(t, 105.0, TargetFromGainPct(SideLong, 100, 5), 1e-9)
	assert.InDelta(t, 95.0, TargetFromGainPct(SideShort, 100, 5), 1e-9)
}
