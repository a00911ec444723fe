package graph

import (
	"context"
	"errors"
	"io"
	"log/slog"
)

// Sentinel errors returned by graph operations.
var (
	// ErrNilGraph indicates that a nil *Digraph was passed to an algorithm.
	ErrNilGraph = errors.New("graph: graph is nil")

	// ErrVertexNotFound indicates a vertex that is not in the graph.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrNegativeWeight indicates an edge weight below zero, which Dijkstra
	// cannot handle.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrCycleDetected indicates that the graph has a directed cycle.
	ErrCycleDetected = errors.New("graph: cycle detected")
)

// Options configures the algorithms of this package.
type Options struct {
	Ctx        context.Context // checked between heap pops
	Logger     *slog.Logger    // Debug-level tracing
	ReturnPath bool            // Dijkstra returns predecessors
}

// Option is a functional option for the algorithms.
type Option func(*Options)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// DefaultOptions returns the defaults: background context, silent logger,
// no predecessor map.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Logger: discard}
}

// WithContext sets the cancellation context. A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes Debug tracing to l. A nil l has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithReturnPath makes Dijkstra return the predecessor map.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

func gather(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
