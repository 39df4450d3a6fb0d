package domain

import "context"

// PositionRepository persists the exit ledger as one opaque blob under a
// versioned key. Load must treat missing or unreadable data as an empty
// ledger, never as a fatal error.
type PositionRepository interface {
	// Load reads the full ledger
	Load(ctx context.Context) ([]Position, error)

	// Save writes the full ledger, replacing the previous blob
	Save(ctx context.Context, positions []Position) error
}

// SettingsRepository persists the email notification settings
type SettingsRepository interface {
	// LoadEmailSettings reads the stored settings; missing or unreadable
	// data yields the zero value
	LoadEmailSettings(ctx context.Context) (EmailSettings, error)

	// SaveEmailSettings replaces the stored settings
	SaveEmailSettings(ctx context.Context, settings EmailSettings) error
}
