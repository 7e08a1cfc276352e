package rans

import "github.com/cockroachdb/errors"

// Sentinel errors raised directly by the coder. Distribution
// construction and lookup errors (ErrUnsupportedSymbol,
// ErrInvalidDistribution) live in the distributions package, which the
// coder never needs to import for error handling since it only
// propagates what the distribution returns.
//
// Callers should test against these with errors.Is; call sites wrap
// them with additional context (offending symbol, buffer state) via
// errors.Wrapf.
var (
	// ErrUnderflow is returned by PopSymbol when a renormalize-in step
	// needs to refill the state from an empty buffer. It indicates a
	// decoder/encoder mismatch or a truncated stream.
	ErrUnderflow = errors.New("rans: buffer underflow during pop_symbol")

	// ErrNotFullyConsumed is returned by FinishDecoding when the coder
	// still holds buffered words or a non-initial state.
	ErrNotFullyConsumed = errors.New("rans: finish_decoding called with residual state")
)
