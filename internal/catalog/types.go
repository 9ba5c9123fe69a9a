// Package catalog holds the local movie catalog: the data model, the
// persisted snapshot store and size statistics derived from it.
package catalog

// Torrent is one downloadable quality variant of a movie. Immutable once
// fetched. Quality carries both the YTS quality and encode type joined with
// a dash, e.g. "1080p-web".
type Torrent struct {
	Quality   string `json:"quality"`
	Hash      string `json:"hash"`
	MagnetURL string `json:"magnet_url"`
	SizeBytes uint64 `json:"size_bytes"`
}

// Movie is a single catalog entry. ID is the identity assigned by the remote
// service and is stable across runs; a record is never mutated after
// ingestion. CoverURL is transient and never persisted.
type Movie struct {
	ID       int       `json:"id"`
	Title    string    `json:"title"`
	Year     int       `json:"year"`
	ImdbCode string    `json:"imdb_code"`
	Torrents []Torrent `json:"torrents"`

	CoverURL string `json:"-"`
}

// LargestTorrent returns the torrent with the strictly largest SizeBytes.
// Ties are broken by first-listed order. ok is false for movies without
// torrents.
func (m Movie) LargestTorrent() (largest Torrent, ok bool) {
	for _, t := range m.Torrents {
		if !ok || t.SizeBytes > largest.SizeBytes {
			largest = t
			ok = true
		}
	}
	return largest, ok
}

// Qualities returns the quality tags of all torrents in listing order.
func (m Movie) Qualities() []string {
	qualities := make([]string, 0, len(m.Torrents))
	for _, t := range m.Torrents {
		qualities = append(qualities, t.Quality)
	}
	return qualities
}
