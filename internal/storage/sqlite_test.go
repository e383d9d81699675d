package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestSQLite(t *testing.T, key string) *SQLiteStorage {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "state.db")
	ss, err := NewSQLiteStorage(dsn, key, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { ss.Close() })
	return ss
}

func TestSQLiteStorageRoundTrip(t *testing.T) {
	ss := newTestSQLite(t, "moneySmartKids")

	require.NoError(t, ss.Save(sampleState()))

	loaded, ok, err := ss.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sampleState(), loaded)
}

func TestSQLiteStorageLoadEmptySlot(t *testing.T) {
	ss := newTestSQLite(t, "moneySmartKids")

	_, ok, err := ss.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteStorageUpsertKeepsSingleSlot(t *testing.T) {
	ss := newTestSQLite(t, "moneySmartKids")

	first := sampleState()
	require.NoError(t, ss.Save(first))

	second := first
	second.Progress.QuizScore = 5
	require.NoError(t, ss.Save(second))

	loaded, ok, err := ss.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 5, loaded.Progress.QuizScore)

	var count int
	require.NoError(t, ss.db.QueryRow(`SELECT COUNT(*) FROM app_state`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestSQLiteStorageSlotsAreIndependent(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "state.db")

	a, err := NewSQLiteStorage(dsn, "slot-a", zap.NewNop())
	require.NoError(t, err)
	defer a.Close()

	b, err := NewSQLiteStorage(dsn, "slot-b", zap.NewNop())
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, a.Save(sampleState()))

	_, ok, err := b.Load()
	require.NoError(t, err)
	assert.False(t, ok, "a save under one key must not leak into another")
}

func TestSQLiteStorageCorruptPayload(t *testing.T) {
	ss := newTestSQLite(t, "moneySmartKids")

	_, err := ss.db.Exec(
		`INSERT INTO app_state (slot_key, payload) VALUES (?, ?)`,
		"moneySmartKids", "{broken",
	)
	require.NoError(t, err)

	_, ok, err := ss.Load()
	require.NoError(t, err, "corruption falls back to absent, not an error")
	assert.False(t, ok)
}
