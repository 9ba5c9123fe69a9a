package datastore

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const moviesSchema = `CREATE TABLE IF NOT EXISTS movies (
	id INTEGER PRIMARY KEY,
	title TEXT,
	year INTEGER,
	imdb_code TEXT,
	torrent_count INTEGER,
	qualities TEXT,
	size_bytes INTEGER
)`

func openTestStore(t *testing.T) (*SQLiteStore, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "ytshelf.db")
	store := NewSQLiteStore(dbPath)
	require.NoError(t, store.Connect())
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.CreateTable(moviesSchema))
	return store, dbPath
}

func countRows(t *testing.T, dbPath string) int {
	t.Helper()
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM movies").Scan(&count))
	return count
}

func TestBatchInsertWritesRows(t *testing.T) {
	store, dbPath := openTestStore(t)

	records := []map[string]any{
		{"id": 1, "title": "a", "year": 2001, "imdb_code": "tt1", "torrent_count": 2, "qualities": "1080p-web,720p-bluray", "size_bytes": 1000},
		{"id": 2, "title": "b", "year": 2002, "imdb_code": "tt2", "torrent_count": 1, "qualities": "2160p-web", "size_bytes": 5000},
	}

	require.NoError(t, store.BatchInsert("ytshelf", "movies", records))
	assert.Equal(t, 2, countRows(t, dbPath))
}

func TestBatchInsertIsIdempotentByPrimaryKey(t *testing.T) {
	store, dbPath := openTestStore(t)

	records := []map[string]any{
		{"id": 1, "title": "a", "year": 2001, "imdb_code": "tt1", "torrent_count": 1, "qualities": "1080p-web", "size_bytes": 1000},
	}

	require.NoError(t, store.BatchInsert("ytshelf", "movies", records))
	require.NoError(t, store.BatchInsert("ytshelf", "movies", records))

	assert.Equal(t, 1, countRows(t, dbPath))
}

func TestBatchInsertEmptyIsNoop(t *testing.T) {
	store, _ := openTestStore(t)
	assert.NoError(t, store.BatchInsert("ytshelf", "movies", nil))
}
