package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func movie(id int, title string, sizes ...uint64) Movie {
	torrents := make([]Torrent, 0, len(sizes))
	for _, size := range sizes {
		torrents = append(torrents, Torrent{Quality: "1080p-web", SizeBytes: size})
	}
	return Movie{ID: id, Title: title, Year: 2020, ImdbCode: "tt0000001", Torrents: torrents}
}

func TestAddRejectsDuplicateIDs(t *testing.T) {
	c := New()

	assert.True(t, c.Add(movie(42, "First")))
	assert.False(t, c.Add(movie(42, "Second")))

	require.Equal(t, 1, c.Len())
	got, ok := c.Lookup(42)
	require.True(t, ok)
	assert.Equal(t, "First", got.Title)
}

func TestFromMoviesKeepsFirstOccurrence(t *testing.T) {
	c := FromMovies([]Movie{
		movie(1, "one"),
		movie(2, "two"),
		movie(1, "one again"),
	})

	require.Equal(t, 2, c.Len())
	got, _ := c.Lookup(1)
	assert.Equal(t, "one", got.Title)
}

func TestMergeIsAdditive(t *testing.T) {
	c := FromMovies([]Movie{movie(5, "five"), movie(3, "three")})

	added := c.Merge([]Movie{movie(7, "seven"), movie(3, "three dup"), movie(6, "six")})

	assert.Equal(t, 2, added)
	require.Equal(t, 4, c.Len())

	// Existing records are untouched.
	got, _ := c.Lookup(3)
	assert.Equal(t, "three", got.Title)

	// Newest first after merge.
	ids := make([]int, 0, 4)
	for _, m := range c.Movies() {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []int{7, 6, 5, 3}, ids)
}

func TestMergeSupersetInvariant(t *testing.T) {
	c := FromMovies([]Movie{movie(1, "a"), movie(2, "b"), movie(3, "c")})
	before := c.IDSet()

	c.Merge([]Movie{movie(9, "z"), movie(2, "b2")})

	for id := range before {
		_, ok := c.Lookup(id)
		assert.True(t, ok, "id %d missing after merge", id)
	}
}

func TestListLimits(t *testing.T) {
	c := FromMovies([]Movie{movie(3, "c"), movie(2, "b"), movie(1, "a")})

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero means all", 0, 3},
		{"negative means all", -1, 3},
		{"limit below length", 2, 2},
		{"limit above length", 5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, c.List(tt.limit), tt.want)
		})
	}
}

func TestIDSetIsACopy(t *testing.T) {
	c := FromMovies([]Movie{movie(1, "a")})

	ids := c.IDSet()
	ids[99] = struct{}{}

	_, ok := c.Lookup(99)
	assert.False(t, ok)
}

func TestLargestTorrent(t *testing.T) {
	m := movie(1, "strict max", 100, 500, 200)
	largest, ok := m.LargestTorrent()
	require.True(t, ok)
	assert.Equal(t, uint64(500), largest.SizeBytes)
}

func TestLargestTorrentTieKeepsFirstListed(t *testing.T) {
	m := Movie{ID: 1, Torrents: []Torrent{
		{Quality: "720p-bluray", SizeBytes: 500},
		{Quality: "1080p-web", SizeBytes: 500},
	}}

	largest, ok := m.LargestTorrent()
	require.True(t, ok)
	assert.Equal(t, "720p-bluray", largest.Quality)
}

func TestLargestTorrentEmpty(t *testing.T) {
	_, ok := Movie{ID: 1}.LargestTorrent()
	assert.False(t, ok)
}
