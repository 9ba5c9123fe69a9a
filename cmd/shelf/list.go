package shelf

import (
	"fmt"
	"strings"

	"github.com/lepinkainen/ytshelf/internal/catalog"
	"github.com/lepinkainen/ytshelf/internal/config"
)

// List prints up to limit movies from the local catalog, newest first. A
// limit of 0 means no cap. An absent snapshot prints an empty listing; a
// corrupt one is an error.
func List(limit int) error {
	store := catalog.NewStore(config.DataDir)
	cat, err := store.Load()
	if err != nil {
		return err
	}

	if cat.Len() == 0 {
		fmt.Println("No movies in the catalog. Run 'fetch' first.")
		return nil
	}

	movies := cat.List(limit)
	fmt.Printf("Showing %d of %d movies:\n\n", len(movies), cat.Len())

	for _, m := range movies {
		fmt.Printf("%-8d %s (%d) [%s]\n", m.ID, m.Title, m.Year, m.ImdbCode)
		if len(m.Torrents) == 0 {
			fmt.Println("         no torrents")
			continue
		}
		parts := make([]string, 0, len(m.Torrents))
		for _, t := range m.Torrents {
			parts = append(parts, fmt.Sprintf("%s %s", t.Quality, catalog.FormatSize(t.SizeBytes)))
		}
		fmt.Printf("         %s\n", strings.Join(parts, ", "))
	}

	return nil
}
