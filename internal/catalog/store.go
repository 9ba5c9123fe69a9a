package catalog

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lepinkainen/ytshelf/internal/errors"
)

// SnapshotFilename is the fixed name of the persisted catalog file inside
// the data directory.
const SnapshotFilename = "yts_movies.json"

// Store persists the catalog as a pretty-printed JSON snapshot. Saves are
// write-new-then-rename so a crash or a failed write never leaves a
// truncated snapshot behind.
type Store struct {
	path string
}

// NewStore creates a store rooted at the given data directory.
func NewStore(dataDir string) *Store {
	return &Store{path: filepath.Join(dataDir, SnapshotFilename)}
}

// Path returns the snapshot file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted catalog. An absent snapshot is the first-run
// case and yields an empty catalog; an unreadable or corrupt snapshot is a
// StorageError, never silently treated as empty.
func (s *Store) Load() (*Catalog, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, errors.NewStorageError(s.path, "read", err)
	}

	var movies []Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		return nil, errors.NewStorageError(s.path, "decode", err)
	}

	return FromMovies(movies), nil
}

// Save writes the catalog to a temporary file in the snapshot directory and
// renames it into place. On any failure the previous snapshot is left
// intact.
func (s *Store) Save(c *Catalog) error {
	data, err := json.MarshalIndent(c.Movies(), "", "  ")
	if err != nil {
		return errors.NewStorageError(s.path, "encode", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.NewStorageError(s.path, "mkdir", err)
	}

	tmp, err := os.CreateTemp(dir, SnapshotFilename+".tmp-*")
	if err != nil {
		return errors.NewStorageError(s.path, "create", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.NewStorageError(s.path, "write", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.NewStorageError(s.path, "close", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return errors.NewStorageError(s.path, "rename", err)
	}

	slog.Info("Saved catalog snapshot", "path", s.path, "movies", c.Len())
	return nil
}
