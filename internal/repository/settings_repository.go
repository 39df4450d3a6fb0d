package repository

import (
	"context"
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"

	"autotrader/internal/domain"
	"autotrader/internal/infra"
)

const emailSettingsKey = "email_settings_v1"

// SettingsRepositoryImpl implements the SettingsRepository interface on
// top of the embedded store
type SettingsRepositoryImpl struct {
	db  *bolt.DB
	log *zap.Logger
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *bolt.DB, log *zap.Logger) domain.SettingsRepository {
	return &SettingsRepositoryImpl{db: db, log: log}
}

// LoadEmailSettings reads the stored settings; missing or unreadable
// data yields the zero value
func (r *SettingsRepositoryImpl) LoadEmailSettings(_ context.Context) (domain.EmailSettings, error) {
	var raw []byte
	err := r.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(infra.Bucket()).Get([]byte(emailSettingsKey)); v != nil {
			raw = append(raw, v...)
		}
		return nil
	})
	if err != nil {
		return domain.EmailSettings{}, fmt.Errorf("failed to read email settings: %w", err)
	}

	if len(raw) == 0 {
		return domain.EmailSettings{}, nil
	}

	var settings domain.EmailSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		r.log.Warn("stored email settings are unreadable, using defaults", zap.Error(err))
		return domain.EmailSettings{}, nil
	}

	return settings, nil
}

// SaveEmailSettings replaces the stored settings
func (r *SettingsRepositoryImpl) SaveEmailSettings(_ context.Context, settings domain.EmailSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode email settings: %w", err)
	}

	err = r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(infra.Bucket()).Put([]byte(emailSettingsKey), raw)
	})
	if err != nil {
		return fmt.Errorf("failed to write email settings: %w", err)
	}

	return nil
}
