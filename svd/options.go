// Package svd: functional configuration for the decomposition engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Public APIs consume ...Option; Options fields stay unexported.

package svd

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultMaxIter is the QR-step budget per singular value. Zero means
	// unbounded, which is the faithful reference behavior: the classic
	// algorithm carries no iteration ceiling ("a test for too many
	// iterations would go here") and relies on the loop invariant that every
	// case transition shrinks the active problem. A pathological input could
	// in principle iterate indefinitely; set a positive cap to trade that
	// open risk for an ErrNoConvergence outcome.
	DefaultMaxIter = 0
)

// Internal panic messages (no magic strings).
const (
	panicMaxIterInvalid = "svd: WithMaxIter: limit must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally opaque: public entry points accept `...Option` and
// internally resolve them via gatherOptions.
type Options struct {
	maxIter int // 0 ⇒ unbounded; >0 ⇒ QR-step cap per singular value
}

// WithMaxIter caps the number of implicit-shift QR steps spent on any single
// singular value before Decompose gives up with ErrNoConvergence.
//
// Implementation:
//   - Stage 1: validate limit ≥ 0 (panic otherwise).
//   - Stage 2: return a setter that writes the cap into Options.
//
// Inputs:
//   - limit: 0 restores the unbounded reference behavior; a positive value
//     bounds each value's QR-step budget (the counter resets on every
//     converged value, mirroring the reference diagnostic counter).
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when limit < 0.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Well-conditioned inputs converge in a handful of sweeps; 30–100 is a
//     generous production cap for matrices up to a few hundred rows.
func WithMaxIter(limit int) Option {
	if limit < 0 {
		panic(panicMaxIterInvalid)
	}

	// Assign validated cap
	return func(o *Options) { o.maxIter = limit }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins semantics; stable for a given sequence of setters.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		maxIter: DefaultMaxIter,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
