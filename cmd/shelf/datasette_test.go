package shelf

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lepinkainen/ytshelf/internal/catalog"
)

func TestMovieToRow(t *testing.T) {
	m := sampleMovies()[0]
	row := movieToRow(m)

	assert.Equal(t, 57427, row["id"])
	assert.Equal(t, "Night Train", row["title"])
	assert.Equal(t, 2025, row["year"])
	assert.Equal(t, "tt21064584", row["imdb_code"])
	assert.Equal(t, 2, row["torrent_count"])
	assert.Equal(t, "1080p-web,720p-web", row["qualities"])
	assert.Equal(t, uint64(2147483648), row["size_bytes"])
	assert.Contains(t, row["magnet_url"], "magnet:?xt=urn:btih:AAA111")
}

func TestMovieToRowWithoutTorrents(t *testing.T) {
	row := movieToRow(catalog.Movie{ID: 9, Title: "Bare", Year: 2020})

	assert.Equal(t, 0, row["torrent_count"])
	assert.Equal(t, uint64(0), row["size_bytes"])
	assert.Equal(t, "", row["magnet_url"])
}
