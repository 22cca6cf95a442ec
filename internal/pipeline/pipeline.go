package pipeline

import (
	"context"
	"fmt"
	"log/slog"
)

// Step is one phase of a run. Steps are executed in sequence, each reading
// and extending the shared Run.
//
// Design decision: We use an interface rather than function values because
// steps carry configuration state (fetcher, origin, sink) and a Name() for
// logging.
type Step interface {
	// Do executes the step, mutating run. A returned error aborts the
	// whole pipeline.
	Do(ctx context.Context, run *Run) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline executes steps in order, stopping at the first failure.
type Pipeline struct {
	steps  []Step
	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a Pipeline with the given steps.
func New(steps []Step, opts ...Option) *Pipeline {
	p := &Pipeline{
		steps:  steps,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Execute runs all steps in sequence against run.
//
// Cancellation is checked between steps; within a step the fetches carry the
// context themselves. The first step error is returned wrapped with the
// step's name, leaving run in whatever state the failed step reached.
// Nothing is persisted unless the persist step itself completed.
func (p *Pipeline) Execute(ctx context.Context, run *Run) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("run cancelled", "step", step.Name(), "reason", ctx.Err())
			return ctx.Err()
		default:
		}

		p.logger.Debug("executing step", "step", step.Name())

		if err := step.Do(ctx, run); err != nil {
			p.logger.Error("step failed", "step", step.Name(), "error", err)
			return fmt.Errorf("%s: %w", step.Name(), err)
		}
	}
	return nil
}
