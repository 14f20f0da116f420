// SPDX-License-Identifier: MIT

// This file defines BP's functional configuration: Option/Options mirror
// the teacher's matrix.Option pattern (gatherOptions/defaultOptions over
// WithX constructors that validate and panic only on programmer error),
// generalized from numeric-policy flags to the five configuration keys
// spec §6 lists (updates, tol, maxiter, verbose, logdomain) plus a
// zap.Logger collaborator and a random source for SEQRND.
package bp

import (
	"math/rand"

	"go.uber.org/zap"
)

// UpdateType selects the message-passing schedule BP.Run uses, matching
// spec §5's four schedules.
type UpdateType int

const (
	// PARALL computes every edge's new message from the current message
	// set, then commits all of them at once (synchronous update).
	PARALL UpdateType = iota
	// SEQFIX visits edges in a fixed order (variable index, then neighbour
	// ordinal) and commits each immediately.
	SEQFIX
	// SEQRND is SEQFIX but the edge order is shuffled uniformly at random
	// each sweep.
	SEQRND
	// SEQMAX (residual BP) always commits the edge with the largest
	// residual (linear-infinity distance between proposed and committed
	// message) first; ties break in scan order.
	SEQMAX
)

// String renders the schedule's property-store name.
func (u UpdateType) String() string {
	switch u {
	case PARALL:
		return "PARALL"
	case SEQFIX:
		return "SEQFIX"
	case SEQRND:
		return "SEQRND"
	case SEQMAX:
		return "SEQMAX"
	default:
		return "UNKNOWN"
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTol is the convergence threshold on the maximum recent belief
	// change.
	DefaultTol = 1e-9

	// DefaultMaxIter is the hard sweep cap.
	DefaultMaxIter = 1000

	// DefaultVerbose is the diagnostic verbosity level; 0 emits nothing.
	DefaultVerbose = 0

	// DefaultLogDomain controls whether messages are stored as
	// log-probabilities. false keeps the linear-domain representation the
	// reference implementation defaults to.
	DefaultLogDomain = false

	// DefaultUpdates is the message schedule used when WithUpdates is not
	// supplied.
	DefaultUpdates = PARALL
)

const (
	panicTolInvalid     = "bp: WithTol: tol must be > 0"
	panicMaxIterInvalid = "bp: WithMaxIter: maxIter must be > 0"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error); runtime-dependent failures surface from New
// or Init instead.
type Option func(*Options)

// Options stores the effective configuration after applying Option
// setters. Unexported: callers configure BP only through ...Option.
type Options struct {
	updates   UpdateType
	tol       float64
	maxIter   int
	verbose   int
	logDomain bool
	logger    *zap.Logger
	rnd       *rand.Rand
}

func defaultOptions() Options {
	return Options{
		updates:   DefaultUpdates,
		tol:       DefaultTol,
		maxIter:   DefaultMaxIter,
		verbose:   DefaultVerbose,
		logDomain: DefaultLogDomain,
		logger:    zap.NewNop(),
		rnd:       rand.New(rand.NewSource(1)),
	}
}

// gatherOptions applies user-supplied Option values over defaultOptions
// and finalizes cross-field invariants.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}
	finalizeOptions(&o)

	return o
}

// finalizeOptions normalizes the collaborators Options carries: a nil
// logger is replaced by a no-op sink rather than checked on every log
// call, and a nil random source by one seeded with 1.
func finalizeOptions(o *Options) {
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.rnd == nil {
		o.rnd = rand.New(rand.NewSource(1))
	}
}

// ---------- Constructors (WithX) ----------

// WithUpdates selects the message-passing schedule.
func WithUpdates(u UpdateType) Option {
	return func(o *Options) { o.updates = u }
}

// WithTol sets the convergence threshold on the maximum recent belief
// change. Panics if tol is not positive.
func WithTol(tol float64) Option {
	if tol <= 0 {
		panic(panicTolInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIter sets the hard sweep cap. Panics if maxIter is not positive.
func WithMaxIter(maxIter int) Option {
	if maxIter <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = maxIter }
}

// WithVerbose sets the diagnostic verbosity level forwarded to the logger.
func WithVerbose(level int) Option {
	return func(o *Options) { o.verbose = level }
}

// WithLogDomain toggles whether messages are stored and combined as
// log-probabilities rather than linear-domain values.
func WithLogDomain(logDomain bool) Option {
	return func(o *Options) { o.logDomain = logDomain }
}

// WithLogger installs a *zap.Logger BP uses for sweep/convergence
// diagnostics, gated by the verbosity level (see internal/xlog). A nil
// logger is silently normalized to a no-op sink.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithRandSource installs the random source SEQRND uses to shuffle edge
// order each sweep, making SEQRND deterministic given a fixed seed (spec
// §7's determinism guarantee).
func WithRandSource(rnd *rand.Rand) Option {
	return func(o *Options) { o.rnd = rnd }
}
