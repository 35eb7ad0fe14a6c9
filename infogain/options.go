// SPDX-License-Identifier: MIT

// Package infogain: functional configuration.
//
// Every public operation accepts `...Option`. Options are resolved over the
// documented Default* constants; an invalid value is recorded and surfaced as
// ErrOptionViolation when the operation runs, never as a panic.
package infogain

import (
	"fmt"
	"io"
	"log/slog"
	"math"
)

// RoundingMode selects how information gain is rounded to Precision places.
type RoundingMode int

const (
	// RoundHalfEven rounds ties to the even neighbour (banker's rounding).
	RoundHalfEven RoundingMode = iota

	// RoundHalfAwayFromZero rounds ties away from zero.
	RoundHalfAwayFromZero
)

// String implements fmt.Stringer.
func (m RoundingMode) String() string {
	switch m {
	case RoundHalfEven:
		return "half-even"
	case RoundHalfAwayFromZero:
		return "half-away-from-zero"
	default:
		return fmt.Sprintf("RoundingMode(%d)", int(m))
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is added to every probability before log2 so that
	// log2(0) can never be evaluated.
	DefaultEpsilon = 1e-10

	// DefaultPrecision is the number of decimal places gains are rounded to.
	DefaultPrecision = 4

	// MaxPrecision bounds WithPrecision; float64 carries ~15-17 significant digits.
	MaxPrecision = 15

	// DefaultRounding is the tie-breaking rule used when rounding gains.
	DefaultRounding = RoundHalfEven

	// DefaultParallelism computes per-attribute gains sequentially.
	DefaultParallelism = 1
)

// discardLogger keeps the library silent unless WithLogger is supplied.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Option configures an operation via functional arguments.
type Option func(*Options)

// Options holds the resolved configuration of one call.
type Options struct {
	// Epsilon is the additive guard inside log2(p + Epsilon).
	Epsilon float64

	// Precision is the number of decimal places of InformationGain results.
	Precision int

	// Rounding selects the tie-breaking rule used with Precision.
	Rounding RoundingMode

	// Logger receives debug records for computed gains and selections.
	Logger *slog.Logger

	// Parallelism bounds the goroutines SelectBestAttribute fans out to.
	// Values ≤ 1 keep the computation on the calling goroutine.
	Parallelism int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the documented defaults.
func DefaultOptions() Options {
	return Options{
		Epsilon:     DefaultEpsilon,
		Precision:   DefaultPrecision,
		Rounding:    DefaultRounding,
		Logger:      discardLogger,
		Parallelism: DefaultParallelism,
	}
}

// WithEpsilon sets the log guard. eps must be finite and ≥ 0; eps == 0
// evaluates the textbook formula exactly.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
			o.err = fmt.Errorf("%w: epsilon must be finite and non-negative (%g)", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithPrecision sets the number of decimal places gains are rounded to.
//
//	0 ≤ places ≤ MaxPrecision: valid
//	otherwise: ErrOptionViolation
func WithPrecision(places int) Option {
	return func(o *Options) {
		if places < 0 || places > MaxPrecision {
			o.err = fmt.Errorf("%w: precision must be in [0,%d] (%d)", ErrOptionViolation, MaxPrecision, places)
			return
		}
		o.Precision = places
	}
}

// WithRounding selects the rounding rule for gains.
func WithRounding(mode RoundingMode) Option {
	return func(o *Options) {
		switch mode {
		case RoundHalfEven, RoundHalfAwayFromZero:
			o.Rounding = mode
		default:
			o.err = fmt.Errorf("%w: unknown rounding mode %v", ErrOptionViolation, mode)
		}
	}
}

// WithLogger routes debug records to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithParallelism lets SelectBestAttribute compute up to n attribute gains
// concurrently. n == 0 or 1 means sequential; n < 0 is a violation.
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: parallelism cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		if n == 0 {
			n = DefaultParallelism
		}
		o.Parallelism = n
	}
}

// resolveOptions applies opts over DefaultOptions and reports the first
// recorded violation.
func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
		if o.err != nil {
			return o, o.err
		}
	}

	return o, nil
}
