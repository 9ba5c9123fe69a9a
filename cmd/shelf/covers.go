package shelf

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/lepinkainen/ytshelf/internal/catalog"
	"github.com/lepinkainen/ytshelf/internal/config"
	"github.com/lepinkainen/ytshelf/internal/fileutil"
)

// downloadCovers fetches cover images for newly added movies. Cover
// failures are warnings, never sync failures: the snapshot is already
// durable by the time covers run.
func downloadCovers(ctx context.Context, movies []catalog.Movie) {
	coversDir := filepath.Join(config.DataDir, "covers")
	downloaded := 0

	for _, m := range movies {
		if ctx.Err() != nil {
			return
		}
		if m.CoverURL == "" {
			continue
		}

		result, err := fileutil.DownloadCover(fileutil.CoverDownloadOptions{
			URL:          m.CoverURL,
			OutputDir:    coversDir,
			Filename:     fmt.Sprintf("%d.jpg", m.ID),
			UpdateCovers: config.UpdateCovers,
		})
		if err != nil {
			slog.Warn("Cover download failed", "movie", m.Title, "error", err)
			continue
		}
		if result != nil && result.Downloaded {
			downloaded++
		}
	}

	if downloaded > 0 {
		slog.Info("Downloaded covers", "count", downloaded, "dir", coversDir)
	}
}
