package catalog

import "fmt"

// TotalSize sums the largest torrent of every movie. Movies without
// torrents contribute 0.
func TotalSize(c *Catalog) uint64 {
	var total uint64
	for _, m := range c.Movies() {
		if largest, ok := m.LargestTorrent(); ok {
			total += largest.SizeBytes
		}
	}
	return total
}

// AverageSize returns TotalSize divided by the number of movies that have at
// least one torrent. Movies without torrents are excluded from the
// denominator so they do not skew the average. An empty catalog, or one with
// no torrent-bearing movies, yields 0.
func AverageSize(c *Catalog) uint64 {
	var total uint64
	withTorrents := 0
	for _, m := range c.Movies() {
		if largest, ok := m.LargestTorrent(); ok {
			total += largest.SizeBytes
			withTorrents++
		}
	}
	if withTorrents == 0 {
		return 0
	}
	return total / uint64(withTorrents)
}

// Summary is the aggregate statistics block shown by the stats command.
type Summary struct {
	Movies         int
	Torrents       int
	AvgTorrents    float64
	MinYear        int
	MaxYear        int
	MinID          int
	MaxID          int
	TotalSizeBytes uint64
	AvgSizeBytes   uint64
}

// Summarize computes the full statistics block for a catalog. All fields are
// zero for an empty catalog.
func Summarize(c *Catalog) Summary {
	s := Summary{Movies: c.Len()}
	if s.Movies == 0 {
		return s
	}

	for i, m := range c.Movies() {
		s.Torrents += len(m.Torrents)
		if i == 0 {
			s.MinYear, s.MaxYear = m.Year, m.Year
			s.MinID, s.MaxID = m.ID, m.ID
			continue
		}
		if m.Year < s.MinYear {
			s.MinYear = m.Year
		}
		if m.Year > s.MaxYear {
			s.MaxYear = m.Year
		}
		if m.ID < s.MinID {
			s.MinID = m.ID
		}
		if m.ID > s.MaxID {
			s.MaxID = m.ID
		}
	}

	s.AvgTorrents = float64(s.Torrents) / float64(s.Movies)
	s.TotalSizeBytes = TotalSize(c)
	s.AvgSizeBytes = AverageSize(c)
	return s
}

// FormatSize renders a byte count as a human-readable magnitude, 1024-based
// with two decimals.
func FormatSize(bytes uint64) string {
	const (
		kb = uint64(1024)
		mb = kb * 1024
		gb = mb * 1024
		tb = gb * 1024
	)

	switch {
	case bytes >= tb:
		return fmt.Sprintf("%.2f TB", float64(bytes)/float64(tb))
	case bytes >= gb:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(gb))
	case bytes >= mb:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(mb))
	case bytes >= kb:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(kb))
	default:
		return fmt.Sprintf("%d bytes", bytes)
	}
}
