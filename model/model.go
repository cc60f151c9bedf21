// Package model provides the frequency models consumed by the arithmetic coder.
//
// A model partitions the cumulative frequency space [0, Total) into one
// half-open range per symbol. The coder narrows its working interval by the
// range of each coded symbol, so the single correctness requirement on a model
// is that Range and Find describe the same partition for the same table state,
// and that adaptive updates mutate the table identically on the encode and
// decode side.
//
// Three implementations are provided:
//
//   - UniformModel: every symbol owns an equal range (static).
//   - StaticModel: ranges derived from a caller-supplied frequency table (static).
//   - AdaptiveModel: counts incremented after every coded symbol, halved when
//     the total crosses a rescale threshold (adaptive).
//
// Static models are immutable after construction and safe to share across
// concurrent coding sessions. An AdaptiveModel mutates on every Update call
// and must be owned by exactly one session.
package model

// Model defines the interface for probability models used by the arithmetic
// coder.
type Model interface {
	// AlphabetSize returns the number of symbols in the model's alphabet.
	// It is always at least 2.
	AlphabetSize() int

	// Total returns the sum of all symbol frequencies. It is always positive.
	Total() uint64

	// Range returns the cumulative frequency range [low, high) owned by the
	// given symbol, relative to Total.
	//
	// Returns errs.ErrSymbolOutOfRange if symbol is outside the alphabet and
	// errs.ErrZeroFrequency if the symbol owns an empty range.
	Range(symbol int) (low, high uint64, err error)

	// Find returns the symbol whose cumulative range contains scaled.
	// The result is always consistent with Range for the same table state:
	// Find(x) == s implies Range(s) == (low, high) with low <= x < high.
	//
	// The caller must guarantee scaled < Total; the coder derives scaled from
	// its working interval, which satisfies this by construction. Find panics
	// if the precondition is violated.
	Find(scaled uint64) int

	// Update informs the model that a symbol has been coded. Static models
	// ignore it; the AdaptiveModel increments the symbol's count and rescales
	// when the total crosses its threshold.
	//
	// Encoder and decoder must call Update at the same point of every coding
	// step, otherwise their tables diverge and the stream becomes garbage.
	Update(symbol int)
}
