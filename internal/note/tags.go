package note

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	wsPattern     = regexp.MustCompile(`\s+`)
	hyphenPattern = regexp.MustCompile(`-+`)
)

// NormalizeTag normalizes a tag: strip a leading #, trim whitespace, turn
// inner whitespace into single hyphens and drop special characters. Returns
// an empty string when nothing survives.
func NormalizeTag(tag string) string {
	tag = strings.TrimSpace(tag)
	tag = strings.TrimPrefix(tag, "#")
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ""
	}

	tag = strings.ReplaceAll(tag, "&", "and")
	tag = strings.ReplaceAll(tag, "#", "")
	tag = wsPattern.ReplaceAllString(tag, "-")
	tag = hyphenPattern.ReplaceAllString(tag, "-")
	tag = strings.Trim(tag, "-")

	return tag
}

// TagSet collects tags with automatic normalization and deduplication.
type TagSet struct {
	tags map[string]bool
}

// NewTagSet creates a new TagSet.
func NewTagSet() *TagSet {
	return &TagSet{tags: make(map[string]bool)}
}

// Add adds a tag to the set after normalization. Empty tags and duplicates
// are filtered.
func (ts *TagSet) Add(tag string) {
	normalized := NormalizeTag(tag)
	if normalized != "" {
		ts.tags[normalized] = true
	}
}

// AddFormat adds a formatted tag (like fmt.Sprintf).
func (ts *TagSet) AddFormat(format string, args ...interface{}) {
	ts.Add(fmt.Sprintf(format, args...))
}

// GetSorted returns all tags as a sorted slice.
func (ts *TagSet) GetSorted() []string {
	result := make([]string, 0, len(ts.tags))
	for tag := range ts.tags {
		result = append(result, tag)
	}
	sort.Strings(result)
	return result
}
