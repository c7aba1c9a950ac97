package index

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(filepath.Join(t.TempDir(), "captures.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Init())
	return db
}

func TestInitIsIdempotent(t *testing.T) {
	db := newDB(t)
	require.NoError(t, db.Add("text", "alice", time.Now()))
	require.NoError(t, db.Init())

	counts, err := db.CountByKind()
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, 1, counts[0].Count)
}

func TestCountByKind(t *testing.T) {
	db := newDB(t)
	now := time.Now()

	require.NoError(t, db.Add("text", "alice", now))
	require.NoError(t, db.Add("text", "bob", now))
	require.NoError(t, db.Add("voice", "alice", now))

	counts, err := db.CountByKind()
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, KindCount{Kind: "text", Count: 2}, counts[0])
	assert.Equal(t, KindCount{Kind: "voice", Count: 1}, counts[1])
}

func TestCountByKindEmpty(t *testing.T) {
	db := newDB(t)
	counts, err := db.CountByKind()
	require.NoError(t, err)
	assert.Empty(t, counts)
}
