package fetch

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

// Default fetcher settings.
const (
	// DefaultTimeout bounds each page fetch. The original flow had no
	// timeout at all, which risks indefinite hangs; 30 seconds is generous
	// for a public site while still failing in bounded time.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies pokefetch in HTTP requests so site
	// operators can recognize the traffic in their logs.
	DefaultUserAgent = "pokefetch/1.0 (+https://github.com/pokefetch/pokefetch)"
)

// Fetcher fetches pages over HTTP and parses them into goquery documents.
//
// Design decision: We build on go-resty rather than a bare http.Client
// because it folds timeout, header, and context plumbing into one client
// value, keeping the fetch path down to a single request call.
type Fetcher struct {
	// client is the configured HTTP client.
	client *resty.Client

	// logger for structured logging.
	logger *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.client.SetTimeout(d)
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.client.SetHeader("User-Agent", ua)
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// New creates a Fetcher with default timeout and User-Agent.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client: resty.New().
			SetTimeout(DefaultTimeout).
			SetHeader("User-Agent", DefaultUserAgent),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch performs a blocking GET of url, reads the full response body, and
// parses it into a queryable document. url must be absolute.
//
// It returns a *FetchError on transport failure or a non-2xx status, and a
// *ParseError if the body cannot be tokenized as markup. There are no
// retries: the caller decides whether a failure aborts the run.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	f.logger.Debug("fetching page", "url", url)

	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	if resp.IsError() {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("unexpected status code %d", resp.StatusCode())}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, &ParseError{URL: url, Err: err}
	}

	return doc, nil
}
