package shelf

import (
	"context"
	"fmt"
	"time"

	"github.com/lepinkainen/ytshelf/internal/catalog"
	"github.com/lepinkainen/ytshelf/internal/config"
	"github.com/lepinkainen/ytshelf/internal/progress"
	"github.com/lepinkainen/ytshelf/internal/syncer"
)

// Count traverses the full remote listing without persisting anything and
// prints the known and new movie counts. New IDs are not predictably
// positioned in the listing, so every page is visited.
func Count() error {
	ctx := context.Background()

	store := catalog.NewStore(config.DataDir)
	engine := syncer.New(newRemoteClient(), store,
		syncer.WithReporter(progress.NewLog(0)),
		syncer.WithPageSize(pageSize(0)),
	)

	result, err := engine.Count(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Known movies: %d\n", result.Known)
	fmt.Printf("New movies:   %d (of %d listed remotely, checked in %s)\n",
		len(result.Added), result.Total, result.Elapsed.Round(time.Millisecond))

	return nil
}
