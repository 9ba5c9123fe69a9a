package yts

import "strings"

// Trackers announced in generated magnet URIs, in announce order.
var trackers = []string{
	"udp://open.demonii.com:1337/announce",
	"udp://tracker.openbittorrent.com:80",
	"udp://tracker.coppersurfer.tk:6969",
	"udp://glotorrents.pw:6969/announce",
	"udp://tracker.opentrackr.org:1337/announce",
	"udp://torrent.gresille.org:80/announce",
	"udp://p4p.arenabg.com:1337",
	"udp://tracker.leechers-paradise.org:6969",
}

// MagnetURL builds a magnet URI for the given info hash and display title.
func MagnetURL(hash, title string) string {
	var b strings.Builder
	b.WriteString("magnet:?xt=urn:btih:")
	b.WriteString(hash)
	b.WriteString("&dn=")
	b.WriteString(strings.ReplaceAll(title, " ", "+"))
	for _, tracker := range trackers {
		b.WriteString("&tr=")
		b.WriteString(tracker)
	}
	return b.String()
}
