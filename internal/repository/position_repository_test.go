package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"

	"autotrader/internal/domain"
	"autotrader/internal/infra"
)

func openTestStore(t *testing.T) *bolt.DB {
	t.Helper()
	db, err := infra.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func samplePositions() []domain.Position {
	return []domain.Position{
		{
			ID: uuid.New(), Pair: "BTC", Side: domain.SideShort, Mode: domain.ModeSwing,
			EntryPrice: 1.22, TargetPrice: 1.15, Leverage: 50, CurrentPrice: 1.23,
			PnLPercent: -40.98, Status: domain.StatusOpen,
			CreatedDate: "2025-09-26", CreatedTime: "09:03",
		},
		{
			ID: uuid.New(), Pair: "SOL", Side: domain.SideLong, Mode: domain.ModePositional,
			EntryPrice: 4.202, TargetPrice: 4.50, Leverage: 125, CurrentPrice: 4.15,
			PnLPercent: -154.69, Status: domain.StatusTargetHit,
			CreatedDate: "2025-09-26", CreatedTime: "09:04",
		},
		{
			ID: uuid.New(), Pair: "ETH", Side: domain.SideLong, Mode: domain.ModeSwing,
			EntryPrice: 100, TargetPrice: 120, Leverage: 1, CurrentPrice: 100,
			Status: domain.StatusClosed, CreatedDate: "2025-09-27", CreatedTime: "10:00",
		},
	}
}

func TestLedgerRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTestStore(t)

	first := NewPositionRepository(db, zap.NewNop())
	original := samplePositions()
	require.NoError(t, first.Save(ctx, original))

	// A fresh repository instance over the same store must see the
	// exact same ledger.
	second := NewPositionRepository(db, zap.NewNop())
	reloaded, err := second.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, original, reloaded)
}

func TestLoadMissingKeyIsEmpty(t *testing.T) {
	db := openTestStore(t)
	repo := NewPositionRepository(db, zap.NewNop())

	positions, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, positions)
}

func TestLoadCorruptBlobIsEmpty(t *testing.T) {
	db := openTestStore(t)
	require.NoError(t, db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(infra.Bucket()).Put([]byte(positionsKey), []byte("{not json"))
	}))

	repo := NewPositionRepository(db, zap.NewNop())
	positions, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, positions)
}

func TestEmailSettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTestStore(t)
	repo := NewSettingsRepository(db, zap.NewNop())

	settings := domain.EmailSettings{
		FromEmail:   "bot@example.com",
		AppPassword: "abcd efgh ijkl mnop",
		ToEmail:     "trader@example.com",
	}
	require.NoError(t, repo.SaveEmailSettings(ctx, settings))

	reloaded, err := repo.LoadEmailSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings, reloaded)
	assert.True(t, reloaded.Configured())
}

func TestEmailSettingsMissingIsZero(t *testing.T) {
	db := openTestStore(t)
	repo := NewSettingsRepository(db, zap.NewNop())

	settings, err := repo.LoadEmailSettings(context.Background())
	require.NoError(t, err)
	assert.False(t, settings.Configured())
}
