package fileutil

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
)

const coverMaxWidth = 342

// CoverDownloadOptions holds options for downloading cover images.
type CoverDownloadOptions struct {
	// URL is the source URL of the cover image
	URL string
	// OutputDir is the directory where covers are stored
	OutputDir string
	// Filename is the name of the cover file (e.g., "57427.jpg")
	Filename string
	// UpdateCovers forces re-downloading even if the cover exists
	UpdateCovers bool
	// HTTPClient overrides the default client, mainly for tests
	HTTPClient *http.Client
}

// CoverDownloadResult holds the result of a cover download operation.
type CoverDownloadResult struct {
	// Downloaded indicates if a new file was downloaded
	Downloaded bool
	// LocalPath is the full path to the cover file
	LocalPath string
}

// DownloadCover downloads a cover image into the covers directory, resizing
// it down to a poster width. An existing cover is kept unless UpdateCovers
// is set.
func DownloadCover(opts CoverDownloadOptions) (*CoverDownloadResult, error) {
	if opts.URL == "" {
		return nil, nil
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create covers directory: %w", err)
	}

	localPath := filepath.Join(opts.OutputDir, opts.Filename)
	result := &CoverDownloadResult{LocalPath: localPath}

	if FileExists(localPath) && !opts.UpdateCovers {
		return result, nil
	}

	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	resp, err := client.Get(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download cover: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d downloading cover from %s", resp.StatusCode, opts.URL)
	}

	img, err := imaging.Decode(resp.Body, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode cover image: %w", err)
	}

	if img.Bounds().Dx() > coverMaxWidth {
		img = imaging.Resize(img, coverMaxWidth, 0, imaging.Lanczos)
	}

	if err := imaging.Save(img, localPath, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("failed to save cover file: %w", err)
	}

	result.Downloaded = true
	return result, nil
}
