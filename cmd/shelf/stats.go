package shelf

import (
	"fmt"

	"github.com/lepinkainen/ytshelf/internal/catalog"
	"github.com/lepinkainen/ytshelf/internal/config"
)

// Stats prints the aggregate statistics block for the local catalog.
func Stats() error {
	store := catalog.NewStore(config.DataDir)
	cat, err := store.Load()
	if err != nil {
		return err
	}

	if cat.Len() == 0 {
		fmt.Println("No movies in the catalog. Run 'fetch' first.")
		return nil
	}

	s := catalog.Summarize(cat)

	fmt.Println("Catalog statistics")
	fmt.Println()
	fmt.Printf("Movies:             %d\n", s.Movies)
	fmt.Printf("Torrents:           %d\n", s.Torrents)
	fmt.Printf("Avg torrents/movie: %.1f\n", s.AvgTorrents)
	fmt.Printf("Year range:         %d - %d\n", s.MinYear, s.MaxYear)
	fmt.Printf("Movie IDs:          %d to %d\n", s.MinID, s.MaxID)
	fmt.Printf("Total size:         %s\n", catalog.FormatSize(s.TotalSizeBytes))
	fmt.Printf("Average size:       %s\n", catalog.FormatSize(s.AvgSizeBytes))

	return nil
}
