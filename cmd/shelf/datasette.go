package shelf

import (
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/lepinkainen/ytshelf/internal/catalog"
	"github.com/lepinkainen/ytshelf/internal/cmdutil"
	"github.com/lepinkainen/ytshelf/internal/datastore"
)

const moviesTableSchema = `CREATE TABLE IF NOT EXISTS movies (
	id INTEGER PRIMARY KEY,
	title TEXT,
	year INTEGER,
	imdb_code TEXT,
	torrent_count INTEGER,
	qualities TEXT,
	size_bytes INTEGER,
	magnet_url TEXT
)`

type movieRow struct {
	ID           int
	Title        string
	Year         int
	ImdbCode     string
	TorrentCount int
	Qualities    []string
	SizeBytes    uint64
	MagnetURL    string
}

func movieToRow(m catalog.Movie) map[string]any {
	row := movieRow{
		ID:           m.ID,
		Title:        m.Title,
		Year:         m.Year,
		ImdbCode:     m.ImdbCode,
		TorrentCount: len(m.Torrents),
		Qualities:    m.Qualities(),
	}
	if largest, ok := m.LargestTorrent(); ok {
		row.SizeBytes = largest.SizeBytes
		row.MagnetURL = largest.MagnetURL
	}
	return cmdutil.StructToMap(row, cmdutil.StructToMapOptions{JoinStringSlices: true})
}

// mirrorCatalog writes the whole catalog into the configured Datasette
// target. Rows are keyed by movie id so re-mirroring is idempotent.
func mirrorCatalog(cat *catalog.Catalog) error {
	mode := viper.GetString("datasette.mode")

	var store datastore.Store
	switch mode {
	case "local":
		store = datastore.NewSQLiteStore(viper.GetString("datasette.dbfile"))
	case "remote":
		store = datastore.NewDatasetteClient(
			viper.GetString("datasette.remote_url"),
			viper.GetString("datasette.api_token"),
		)
	default:
		return fmt.Errorf("invalid Datasette mode: %s", mode)
	}

	if err := store.Connect(); err != nil {
		return fmt.Errorf("connecting to Datasette store: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.CreateTable(moviesTableSchema); err != nil {
		return err
	}

	movies := cat.Movies()
	records := make([]map[string]any, len(movies))
	for i, m := range movies {
		records[i] = movieToRow(m)
	}

	if err := store.BatchInsert("ytshelf", "movies", records); err != nil {
		return fmt.Errorf("mirroring catalog: %w", err)
	}

	slog.Info("Mirrored catalog to Datasette", "mode", mode, "movies", len(records))
	return nil
}
