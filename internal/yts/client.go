// Package yts provides a client for the YTS list_movies API.
package yts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/lepinkainen/ytshelf/internal/catalog"
	"github.com/lepinkainen/ytshelf/internal/errors"
	"github.com/lepinkainen/ytshelf/internal/ratelimit"
)

const (
	// DefaultBaseURL is the YTS list_movies endpoint.
	DefaultBaseURL = "https://yts.bz/api/v2/list_movies.json"

	defaultRatePerSecond = 2
	defaultHTTPTimeout   = 30 * time.Second
)

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is a YTS API client. Pages are requested newest first
// (sort_by=date_added, order_by=desc) so new releases appear at offset 0.
type Client struct {
	baseURL     string
	httpClient  HTTPDoer
	rateLimiter *ratelimit.Limiter
}

// NewClient creates a new YTS API client.
func NewClient(opts ...Option) *Client {
	client := &Client{
		baseURL:     DefaultBaseURL,
		httpClient:  &http.Client{Timeout: defaultHTTPTimeout},
		rateLimiter: ratelimit.New("YTS", defaultRatePerSecond),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithBaseURL sets a custom list_movies endpoint.
func WithBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.baseURL = base
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c HTTPDoer) Option {
	return func(client *Client) {
		if c != nil {
			client.httpClient = c
		}
	}
}

// WithRateLimiter sets a custom rate limiter for the client.
func WithRateLimiter(limiter *ratelimit.Limiter) Option {
	return func(client *Client) {
		if limiter != nil {
			client.rateLimiter = limiter
		}
	}
}

// TotalCount returns the number of movies in the remote listing.
func (c *Client) TotalCount(ctx context.Context) (int, error) {
	resp, err := c.getPage(ctx, 1, 1)
	if err != nil {
		return 0, err
	}
	return resp.Data.MovieCount, nil
}

// FetchPage returns one page of the listing in remote order. The offset is
// translated to a YTS page number, so it must be a multiple of pageSize.
// A missing movies array means the offset is past the end of the listing
// and yields an empty page.
func (c *Client) FetchPage(ctx context.Context, offset, pageSize int) ([]catalog.Movie, error) {
	page := offset/pageSize + 1
	resp, err := c.getPage(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	movies := make([]catalog.Movie, 0, len(resp.Data.Movies))
	for _, wm := range resp.Data.Movies {
		movies = append(movies, convertMovie(wm))
	}
	return movies, nil
}

func (c *Client) getPage(ctx context.Context, page, limit int) (*listResponse, error) {
	endpoint := c.pageURL(page, limit)

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, errors.NewTransportError(endpoint, 0, "rate limit wait interrupted", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.NewTransportError(endpoint, 0, "building request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewTransportError(endpoint, 0, "request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.NewTransportError(endpoint, resp.StatusCode, "unexpected status", nil)
	}

	var list listResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, errors.NewParseError(fmt.Sprintf("list_movies page %d", page), "decoding response", err)
	}

	if list.Status != "ok" {
		return nil, errors.NewTransportError(endpoint, resp.StatusCode, fmt.Sprintf("API status %q: %s", list.Status, list.StatusMessage), nil)
	}

	return &list, nil
}

func (c *Client) pageURL(page, limit int) string {
	params := url.Values{}
	params.Set("limit", fmt.Sprintf("%d", limit))
	params.Set("page", fmt.Sprintf("%d", page))
	params.Set("sort_by", "date_added")
	params.Set("order_by", "desc")
	return c.baseURL + "?" + params.Encode()
}

func convertMovie(wm wireMovie) catalog.Movie {
	torrents := make([]catalog.Torrent, 0, len(wm.Torrents))
	for _, wt := range wm.Torrents {
		torrents = append(torrents, catalog.Torrent{
			Quality:   wt.Quality + "-" + wt.Type,
			Hash:      wt.Hash,
			MagnetURL: MagnetURL(wt.Hash, wm.Title),
			SizeBytes: wt.SizeBytes,
		})
	}

	return catalog.Movie{
		ID:       wm.ID,
		Title:    wm.Title,
		Year:     wm.Year,
		ImdbCode: wm.ImdbCode,
		Torrents: torrents,
		CoverURL: wm.LargeCoverImage,
	}
}
