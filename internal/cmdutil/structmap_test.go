package cmdutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type mirrorRow struct {
	ID           int
	Title        string
	ImdbCode     string
	Qualities    []string
	SizeBytes    uint64
	CoverURL     string
	hidden       string
	TorrentCount int
}

func TestStructToMapSnakeCaseKeys(t *testing.T) {
	row := mirrorRow{
		ID:           1,
		Title:        "a",
		ImdbCode:     "tt1",
		Qualities:    []string{"1080p-web", "720p-bluray"},
		SizeBytes:    42,
		CoverURL:     "https://img.test/1.jpg",
		TorrentCount: 2,
	}

	got := StructToMap(row, StructToMapOptions{JoinStringSlices: true})

	assert.Equal(t, 1, got["id"])
	assert.Equal(t, "tt1", got["imdb_code"])
	assert.Equal(t, "1080p-web,720p-bluray", got["qualities"])
	assert.Equal(t, uint64(42), got["size_bytes"])
	assert.Equal(t, "https://img.test/1.jpg", got["cover_url"])
	assert.Equal(t, 2, got["torrent_count"])
	assert.NotContains(t, got, "hidden")
}

func TestStructToMapOmitAndOverride(t *testing.T) {
	row := mirrorRow{ID: 1, Title: "a"}

	got := StructToMap(row, StructToMapOptions{
		OmitFields:   map[string]bool{"CoverURL": true},
		KeyOverrides: map[string]string{"Title": "name"},
	})

	assert.NotContains(t, got, "cover_url")
	assert.Equal(t, "a", got["name"])
}

func TestStructToMapNilPointer(t *testing.T) {
	var row *mirrorRow
	assert.Empty(t, StructToMap(row, StructToMapOptions{}))
}
