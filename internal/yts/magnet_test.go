package yts

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestMagnetURL(t *testing.T) {
	magnet := MagnetURL("ABCDEF0123456789ABCDEF0123456789ABCDEF01", "The Quiet Earth")

	assert.True(t, strings.HasPrefix(magnet, "magnet:?xt=urn:btih:ABCDEF0123456789ABCDEF0123456789ABCDEF01"))
	assert.Contains(t, magnet, "&dn=The+Quiet+Earth")
	assert.Contains(t, magnet, "&tr=udp://open.demonii.com:1337/announce")
	assert.Equal(t, len(trackers), strings.Count(magnet, "&tr="))
}

func TestMagnetURLTitleWithoutSpaces(t *testing.T) {
	magnet := MagnetURL("FF00", "Heat")
	assert.Contains(t, magnet, "&dn=Heat&tr=")
}
