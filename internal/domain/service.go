package domain

import (
	"context"
	"time"
)

// EntryFetcher fetches the current signal sets from the automation
// backend. Implementations must return an error for non-success
// statuses, malformed bodies and empty combined results so the caller
// can degrade to the fallback dataset.
type EntryFetcher interface {
	FetchEntry(ctx context.Context) (swing, positional []Signal, err error)
}

// PriceSource produces the next observed price for an open position.
// Implementations may consult a real market feed or simulate movement.
type PriceSource interface {
	NextPrice(ctx context.Context, position *Position) (float64, error)
}

// Notifier delivers user-facing alerts. Delivery is best-effort: the
// state transition that triggered the alert is already committed, so a
// failure here is logged and swallowed, never propagated.
type Notifier interface {
	NotifyTargetHit(ctx context.Context, position Position, at time.Time) error
}
