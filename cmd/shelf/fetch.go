// Package shelf implements the ytshelf commands on top of the catalog,
// yts and syncer packages.
package shelf

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/lepinkainen/ytshelf/internal/catalog"
	"github.com/lepinkainen/ytshelf/internal/config"
	"github.com/lepinkainen/ytshelf/internal/progress"
	"github.com/lepinkainen/ytshelf/internal/ratelimit"
	"github.com/lepinkainen/ytshelf/internal/syncer"
	"github.com/lepinkainen/ytshelf/internal/yts"
)

// FetchOptions holds the fetch command flags.
type FetchOptions struct {
	PageSize int
	Covers   bool
}

// Fetch runs a full sync against the remote listing and persists the merged
// catalog. New movies optionally get their cover images downloaded, and the
// catalog is mirrored to Datasette when enabled.
func Fetch(opts FetchOptions) error {
	ctx := context.Background()

	store := catalog.NewStore(config.DataDir)
	client := newRemoteClient()

	bar := progress.NewBar(os.Stdout)
	engine := syncer.New(client, store,
		syncer.WithReporter(bar),
		syncer.WithPageSize(pageSize(opts.PageSize)),
	)

	result, err := engine.Sync(ctx)
	bar.Finish()
	if err != nil {
		return err
	}

	fmt.Printf("Fetched %d new movies (%d known, %d listed remotely) in %s\n",
		len(result.Added), result.Known, result.Total, result.Elapsed.Round(time.Millisecond))

	if opts.Covers || viper.GetBool("covers.enabled") {
		downloadCovers(ctx, result.Added)
	}

	if viper.GetBool("datasette.enabled") {
		cat, err := store.Load()
		if err != nil {
			return err
		}
		if err := mirrorCatalog(cat); err != nil {
			return err
		}
	}

	return nil
}

func newRemoteClient() *yts.Client {
	opts := []yts.Option{
		yts.WithBaseURL(viper.GetString("yts.baseurl")),
	}
	if rps := viper.GetInt("yts.ratelimit"); rps > 0 {
		opts = append(opts, yts.WithRateLimiter(ratelimit.New("YTS", rps)))
	}
	return yts.NewClient(opts...)
}

func pageSize(flag int) int {
	if flag > 0 {
		return flag
	}
	if configured := viper.GetInt("yts.pagesize"); configured > 0 {
		return configured
	}
	return syncer.DefaultPageSize
}
