// Package syncer reconciles the remote YTS listing against the local
// catalog snapshot.
package syncer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lepinkainen/ytshelf/internal/catalog"
)

// DefaultPageSize matches the remote service's listing page size.
const DefaultPageSize = 50

// Remote is the paginated remote listing source.
type Remote interface {
	TotalCount(ctx context.Context) (int, error)
	FetchPage(ctx context.Context, offset, pageSize int) ([]catalog.Movie, error)
}

// Store loads and persists the local catalog snapshot.
type Store interface {
	Load() (*catalog.Catalog, error)
	Save(c *catalog.Catalog) error
}

// Reporter receives one progress event per fetched page.
type Reporter interface {
	Report(processed, total int, elapsed time.Duration)
}

// NopReporter discards progress events.
type NopReporter struct{}

// Report implements Reporter.
func (NopReporter) Report(int, int, time.Duration) {}

// Result describes one completed traversal of the remote listing.
type Result struct {
	// Added holds the movies not previously in the catalog, in the order
	// they were first seen.
	Added []catalog.Movie
	// Known is the catalog size before the run.
	Known int
	// Total is the remote listing size reported at the start of the run.
	Total int
	// Elapsed is the wall-clock duration of the traversal.
	Elapsed time.Duration
}

// Engine runs sync and count traversals. Pages are fetched sequentially in
// increasing offset order; within a run the first occurrence of an ID wins,
// whether it came from the snapshot or from an earlier page.
type Engine struct {
	remote   Remote
	store    Store
	reporter Reporter
	pageSize int
}

// New creates an engine over the given remote source and snapshot store.
func New(remote Remote, store Store, opts ...Option) *Engine {
	e := &Engine{
		remote:   remote,
		store:    store,
		reporter: NopReporter{},
		pageSize: DefaultPageSize,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Option is a functional option for configuring the Engine.
type Option func(*Engine)

// WithReporter sets the progress sink.
func WithReporter(r Reporter) Option {
	return func(e *Engine) {
		if r != nil {
			e.reporter = r
		}
	}
}

// WithPageSize sets the page size used for remote fetches.
func WithPageSize(size int) Option {
	return func(e *Engine) {
		if size > 0 {
			e.pageSize = size
		}
	}
}

// Sync runs a full sync: traverse the remote listing, merge unseen movies
// into the catalog and persist it. Any remote or storage failure aborts the
// run without persisting, leaving the previous snapshot as the durable
// state.
func (e *Engine) Sync(ctx context.Context) (*Result, error) {
	cat, result, err := e.traverse(ctx)
	if err != nil {
		return nil, err
	}

	if len(result.Added) > 0 {
		cat.Merge(result.Added)
		if err := e.store.Save(cat); err != nil {
			return nil, fmt.Errorf("persisting catalog: %w", err)
		}
	} else {
		slog.Info("Catalog is up to date", "movies", cat.Len())
	}

	return result, nil
}

// Count runs the same traversal as Sync but never persists. The full
// listing is paginated either way: new IDs are not predictably positioned,
// so there is no shortcut.
func (e *Engine) Count(ctx context.Context) (*Result, error) {
	_, result, err := e.traverse(ctx)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (e *Engine) traverse(ctx context.Context) (*catalog.Catalog, *Result, error) {
	cat, err := e.store.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading catalog: %w", err)
	}

	total, err := e.remote.TotalCount(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("querying remote count: %w", err)
	}

	slog.Info("Starting listing traversal", "known", cat.Len(), "remote", total)

	start := time.Now()
	seen := cat.IDSet()
	var pending []catalog.Movie

	for offset := 0; offset < total; offset += e.pageSize {
		page, err := e.remote.FetchPage(ctx, offset, e.pageSize)
		if err != nil {
			return nil, nil, fmt.Errorf("fetching page at offset %d: %w", offset, err)
		}

		for _, m := range page {
			if _, ok := seen[m.ID]; ok {
				continue
			}
			seen[m.ID] = struct{}{}
			pending = append(pending, m)
		}

		e.reporter.Report(offset+len(page), total, time.Since(start))

		// A short page means the listing ended early; trust it over the
		// total reported at the start of the run.
		if len(page) < e.pageSize {
			break
		}
	}

	return cat, &Result{
		Added:   pending,
		Known:   cat.Len(),
		Total:   total,
		Elapsed: time.Since(start),
	}, nil
}
