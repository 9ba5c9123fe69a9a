package shelf

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/ytshelf/internal/catalog"
	"github.com/lepinkainen/ytshelf/internal/config"
	"github.com/lepinkainen/ytshelf/internal/testutil"
	"github.com/lepinkainen/ytshelf/internal/yts"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything it printed.
func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	runErr := fn()

	os.Stdout = orig
	require.NoError(t, w.Close())

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, runErr)

	return string(out)
}

func sampleMovies() []catalog.Movie {
	return []catalog.Movie{
		{
			ID: 57427, Title: "Night Train", Year: 2025, ImdbCode: "tt21064584",
			Torrents: []catalog.Torrent{
				{Quality: "1080p-web", Hash: "AAA111", MagnetURL: yts.MagnetURL("AAA111", "Night Train"), SizeBytes: 2 * 1024 * 1024 * 1024},
				{Quality: "720p-web", Hash: "BBB222", MagnetURL: yts.MagnetURL("BBB222", "Night Train"), SizeBytes: 1024 * 1024 * 1024},
			},
		},
		{
			ID: 57420, Title: "Quiet Harbor", Year: 2024, ImdbCode: "tt1592504",
			Torrents: []catalog.Torrent{
				{Quality: "1080p-bluray", Hash: "CCC333", MagnetURL: yts.MagnetURL("CCC333", "Quiet Harbor"), SizeBytes: 1536 * 1024 * 1024},
			},
		},
	}
}

func seedSnapshot(t *testing.T, movies []catalog.Movie) {
	t.Helper()
	store := catalog.NewStore(config.DataDir)
	require.NoError(t, store.Save(catalog.FromMovies(movies)))
}

func wireTorrent(quality, torrentType, hash string, sizeBytes uint64) map[string]any {
	return map[string]any{
		"quality":    quality,
		"type":       torrentType,
		"hash":       hash,
		"size_bytes": sizeBytes,
	}
}

func wireMovie(id int, title string, year int, imdbCode string, torrents ...map[string]any) map[string]any {
	return map[string]any{
		"id":                id,
		"title":             title,
		"year":              year,
		"imdb_code":         imdbCode,
		"large_cover_image": "",
		"torrents":          torrents,
	}
}

// newListServer serves a paginated list_movies.json listing over the given
// movies, the way the real endpoint pages through its catalog.
func newListServer(t *testing.T, movies []map[string]any) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 20
		}

		start := (page - 1) * limit
		end := start + limit
		if start > len(movies) {
			start = len(movies)
		}
		if end > len(movies) {
			end = len(movies)
		}

		data := map[string]any{
			"movie_count": len(movies),
			"limit":       limit,
			"page_number": page,
		}
		if start < end {
			data["movies"] = movies[start:end]
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":         "ok",
			"status_message": "Query was successful",
			"data":           data,
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func setupRemote(t *testing.T, movies []map[string]any) *testutil.TestEnv {
	t.Helper()

	env := testutil.NewTestEnv(t)
	testutil.SetTestConfig(t, env)

	srv := newListServer(t, movies)
	testutil.SetViperValue(t, "yts.baseurl", srv.URL)

	return env
}
