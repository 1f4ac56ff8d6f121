// Copyright 2026 Tensoralg. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package sdd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/tensoralg/sdd/internal/parallel"
)

// Defaults for the decomposition parameters.
const (
	// DefaultMaxTerms is the default number of rank-one terms to extract.
	DefaultMaxTerms = 10

	// DefaultTolerance is the default relative-improvement threshold at
	// which per-term refinement stops.
	DefaultTolerance = 0.01

	// DefaultMaxInnerIterations is the default cap on refinement passes
	// per term.
	DefaultMaxInnerIterations = 10

	// DefaultResidualFloor is the default residual-norm floor below which
	// extraction stops early. Zero means extraction only stops at the
	// term limit.
	DefaultResidualFloor = 0.0
)

type options struct {
	kmax     int
	alphamin float64
	lmax     int
	rhomin   float64
	parallel parallel.Config
	logger   *slog.Logger
}

// Option configures Decompose behavior.
type Option func(*options)

// WithMaxTerms sets the maximum number of rank-one terms to extract.
// Fewer terms may be committed if the residual floor is reached first.
// Must be positive.
func WithMaxTerms(kmax int) Option {
	return func(o *options) {
		o.kmax = kmax
	}
}

// WithTolerance sets the relative-improvement threshold for per-term
// refinement: a pass that improves the term quality score by this
// fraction or less ends refinement. Must be non-negative.
func WithTolerance(alphamin float64) Option {
	return func(o *options) {
		o.alphamin = alphamin
	}
}

// WithMaxInnerIterations caps the number of refinement passes per term.
// Must be positive.
func WithMaxInnerIterations(lmax int) Option {
	return func(o *options) {
		o.lmax = lmax
	}
}

// WithResidualFloor sets the residual Frobenius norm below which
// extraction stops early. The value is squared internally before it is
// compared against the squared-norm estimate. Must be non-negative.
func WithResidualFloor(rhomin float64) Option {
	return func(o *options) {
		o.rhomin = rhomin
	}
}

// WithParallel configures parallel contraction of independent tensor
// slices. Parallel and sequential runs produce identical results; this
// only trades goroutines for wall time.
func WithParallel(cfg parallel.Config) Option {
	return func(o *options) {
		o.parallel = cfg
	}
}

// WithLogger sets a structured logger for per-term diagnostics, emitted
// at Debug level. Logging never changes the decomposition output. If l
// is nil, logging stays disabled.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func defaultOptions() *options {
	return &options{
		kmax:     DefaultMaxTerms,
		alphamin: DefaultTolerance,
		lmax:     DefaultMaxInnerIterations,
		rhomin:   DefaultResidualFloor,
		parallel: parallel.DefaultConfig(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (o *options) validate() error {
	if o.kmax < 1 {
		return fmt.Errorf("%w: max terms %d, must be positive", ErrInvalidArgument, o.kmax)
	}
	if o.lmax < 1 {
		return fmt.Errorf("%w: max inner iterations %d, must be positive", ErrInvalidArgument, o.lmax)
	}
	if o.alphamin < 0 {
		return fmt.Errorf("%w: tolerance %g, must be non-negative", ErrInvalidArgument, o.alphamin)
	}
	if o.rhomin < 0 {
		return fmt.Errorf("%w: residual floor %g, must be non-negative", ErrInvalidArgument, o.rhomin)
	}
	return nil
}
