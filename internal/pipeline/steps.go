package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/pokefetch/pokefetch/internal/database"
	"github.com/pokefetch/pokefetch/internal/dataset"
	"github.com/pokefetch/pokefetch/internal/fetch"
	"github.com/pokefetch/pokefetch/internal/scrape"
)

// ListingStep fetches the catalog root page and extracts the entity links.
// It runs exactly once, before any detail page is touched.
type ListingStep struct {
	fetcher    *fetch.Fetcher
	catalogURL string
	logger     *slog.Logger
}

// ListingStepOption configures a ListingStep.
type ListingStepOption func(*ListingStep)

// WithListingLogger sets a custom logger for the listing step.
func WithListingLogger(logger *slog.Logger) ListingStepOption {
	return func(s *ListingStep) {
		s.logger = logger
	}
}

// NewListingStep creates a ListingStep for the given catalog URL.
func NewListingStep(fetcher *fetch.Fetcher, catalogURL string, opts ...ListingStepOption) *ListingStep {
	s := &ListingStep{
		fetcher:    fetcher,
		catalogURL: catalogURL,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *ListingStep) Name() string { return "listing" }

// Do fetches the listing page and stores the extracted links on run.
// A listing with zero links is not an error here; the entities step simply
// has nothing to do and the persist step will refuse the empty table.
func (s *ListingStep) Do(ctx context.Context, run *Run) error {
	s.logger.Info("fetching entity link suffixes", "url", s.catalogURL)

	doc, err := s.fetcher.Fetch(ctx, s.catalogURL)
	if err != nil {
		return err
	}

	run.Links = scrape.ExtractEntityLinks(doc)
	s.logger.Info("listing extracted", "entities", len(run.Links))
	return nil
}

// EntitiesStep fetches every entity detail page, extracts its attributes,
// and appends one row per entity to the run's table.
//
// With workers > 1 the fetches overlap in a bounded pool; extraction results
// are collected per listing index and appended in listing order afterwards,
// so the final table is identical to a sequential run. The first failure
// cancels outstanding fetches and aborts the run.
type EntitiesStep struct {
	fetcher    *fetch.Fetcher
	baseOrigin string
	workers    int
	logger     *slog.Logger
}

// EntitiesStepOption configures an EntitiesStep.
type EntitiesStepOption func(*EntitiesStep)

// WithWorkers sets the number of concurrent detail-page fetches.
// Values below 1 are treated as 1 (sequential).
func WithWorkers(n int) EntitiesStepOption {
	return func(s *EntitiesStep) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithEntitiesLogger sets a custom logger for the entities step.
func WithEntitiesLogger(logger *slog.Logger) EntitiesStepOption {
	return func(s *EntitiesStep) {
		s.logger = logger
	}
}

// NewEntitiesStep creates an EntitiesStep. baseOrigin is concatenated with
// each link suffix as-is, so it must not end with a path separator.
func NewEntitiesStep(fetcher *fetch.Fetcher, baseOrigin string, opts ...EntitiesStepOption) *EntitiesStep {
	s := &EntitiesStep{
		fetcher:    fetcher,
		baseOrigin: baseOrigin,
		workers:    1,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *EntitiesStep) Name() string { return "entities" }

// Do processes every link on run, appending rows in listing order.
func (s *EntitiesStep) Do(ctx context.Context, run *Run) error {
	rows := make([]*dataset.AttributeMap, len(run.Links))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, link := range run.Links {
		g.Go(func() error {
			attrs, err := s.scrapeEntity(gctx, link)
			if err != nil {
				return err
			}
			rows[i] = attrs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	// Append in listing order so the table (and its column-union order) is
	// deterministic regardless of fetch completion order.
	for _, row := range rows {
		run.Table.Append(row)
	}
	return nil
}

// scrapeEntity fetches one detail page and extracts its attribute map.
// The absolute URL is built by plain concatenation: link suffixes from the
// listing already start with "/".
func (s *EntitiesStep) scrapeEntity(ctx context.Context, link string) (*dataset.AttributeMap, error) {
	url := s.baseOrigin + link

	doc, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	attrs, err := scrape.ExtractAttributes(doc)
	if err != nil {
		return nil, fmt.Errorf("entity %s: %w", url, err)
	}

	name, _ := attrs.Get(dataset.NameColumn)
	s.logger.Info("collected entity", "name", name, "attributes", attrs.Len())
	return attrs, nil
}

// PersistStep writes the accumulated table to the relational destination.
// It is the terminal step and runs exactly once.
type PersistStep struct {
	sink   *database.Sink
	spec   database.ConnectionSpec
	logger *slog.Logger
}

// PersistStepOption configures a PersistStep.
type PersistStepOption func(*PersistStep)

// WithPersistLogger sets a custom logger for the persist step.
func WithPersistLogger(logger *slog.Logger) PersistStepOption {
	return func(s *PersistStep) {
		s.logger = logger
	}
}

// NewPersistStep creates a PersistStep targeting spec.
func NewPersistStep(sink *database.Sink, spec database.ConnectionSpec, opts ...PersistStepOption) *PersistStep {
	s := &PersistStep{
		sink:   sink,
		spec:   spec,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *PersistStep) Name() string { return "persist" }

// Do saves the run's table. An empty table is refused by the sink before any
// connection is opened.
func (s *PersistStep) Do(ctx context.Context, run *Run) error {
	s.logger.Info("persisting table",
		"rows", run.Table.Len(),
		"destination", s.spec.Redacted(),
	)
	return s.sink.Save(ctx, run.Table, s.spec)
}
