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

// positionsKey carries a version suffix so a future schema change can
// move to a new key without migrating old blobs.
const positionsKey = "exit_ops_v1"

// PositionRepositoryImpl implements the PositionRepository interface on
// top of the embedded store
type PositionRepositoryImpl struct {
	db  *bolt.DB
	log *zap.Logger
}

// NewPositionRepository creates a new PositionRepository
func NewPositionRepository(db *bolt.DB, log *zap.Logger) domain.PositionRepository {
	return &PositionRepositoryImpl{db: db, log: log}
}

// Load reads the full ledger. A missing key or an unreadable blob yields
// an empty ledger; the blob is never deleted so a bad deploy can still
// be inspected by hand.
func (r *PositionRepositoryImpl) Load(_ context.Context) ([]domain.Position, error) {
	var raw []byte
	err := r.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(infra.Bucket()).Get([]byte(positionsKey)); v != nil {
			raw = append(raw, v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	if len(raw) == 0 {
		return []domain.Position{}, nil
	}

	var positions []domain.Position
	if err := json.Unmarshal(raw, &positions); err != nil {
		r.log.Warn("stored ledger is unreadable, starting empty", zap.Error(err))
		return []domain.Position{}, nil
	}

	return positions, nil
}

// Save writes the full ledger, replacing the previous blob
func (r *PositionRepositoryImpl) Save(_ context.Context, positions []domain.Position) error {
	raw, err := json.Marshal(positions)
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}

	err = r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(infra.Bucket()).Put([]byte(positionsKey), raw)
	})
	if err != nil {
		return fmt.Errorf("failed to write ledger: %w", err)
	}

	return nil
}
