package shelf

import (
	"fmt"

	"github.com/lepinkainen/ytshelf/internal/catalog"
	"github.com/lepinkainen/ytshelf/internal/config"
)

// Size prints the total and average storage size of the catalog, counting
// the largest torrent per movie. Movies without torrents contribute nothing
// to either figure.
func Size() error {
	store := catalog.NewStore(config.DataDir)
	cat, err := store.Load()
	if err != nil {
		return err
	}

	fmt.Printf("Movies:                 %d\n", cat.Len())
	fmt.Printf("Total size:             %s\n", catalog.FormatSize(catalog.TotalSize(cat)))
	fmt.Printf("Average size per movie: %s\n", catalog.FormatSize(catalog.AverageSize(cat)))

	return nil
}
