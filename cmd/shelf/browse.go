package shelf

import (
	"fmt"

	"github.com/lepinkainen/ytshelf/internal/catalog"
	"github.com/lepinkainen/ytshelf/internal/config"
	"github.com/lepinkainen/ytshelf/internal/tui"
)

// Browse opens the interactive catalog browser and prints the magnet URL of
// the largest torrent for whatever movie the user selects.
func Browse() error {
	store := catalog.NewStore(config.DataDir)
	cat, err := store.Load()
	if err != nil {
		return err
	}

	if cat.Len() == 0 {
		fmt.Println("No movies in the catalog. Run 'fetch' first.")
		return nil
	}

	result, err := tui.BrowseCatalog(cat.Movies())
	if err != nil {
		return err
	}

	if result.Action != tui.ActionSelected || result.Selection == nil {
		return nil
	}

	m := result.Selection
	fmt.Printf("%s (%d) [%s]\n", m.Title, m.Year, m.ImdbCode)
	if largest, ok := m.LargestTorrent(); ok {
		fmt.Printf("%s %s\n", largest.Quality, catalog.FormatSize(largest.SizeBytes))
		fmt.Println(largest.MagnetURL)
	} else {
		fmt.Println("no torrents available")
	}

	return nil
}
