package model

import (
	"github.com/arloliu/entro/errs"
)

// DefaultRescaleThreshold is the rescale threshold used when a caller passes 0
// to NewAdaptiveModel. It keeps the total within the precision headroom of
// every supported coder precision (total <= quarter holds down to 15-bit
// state), while leaving enough resolution for skewed distributions to pay off.
const DefaultRescaleThreshold = 1 << 13

// AdaptiveModel implements a model whose frequency table tracks the symbols
// actually coded.
//
// Every count starts at 1, reserving probability mass so no symbol is ever
// unencodable. Update increments the coded symbol's count by 1; once the total
// exceeds the rescale threshold, every count is halved with rounding up, which
// both preserves the count >= 1 invariant and keeps the total within the
// coder's precision headroom.
//
// The rescale must happen at the identical point on the encode and decode side
// or the two tables diverge irrecoverably. Both sides call Update through the
// same code path, so this holds as long as the decoder is configured with the
// same alphabet size and threshold as the encoder.
//
// An AdaptiveModel is exclusively owned by one coding session and must not be
// shared across concurrent sessions.
type AdaptiveModel struct {
	counts    []uint64
	total     uint64
	threshold uint64
}

var _ Model = (*AdaptiveModel)(nil)

// NewAdaptiveModel creates an adaptive model over the given alphabet size.
//
// Parameters:
//   - alphabetSize: Number of symbols, at least 2
//   - rescaleThreshold: Total count that triggers halving; 0 selects
//     DefaultRescaleThreshold
//
// Returns:
//   - *AdaptiveModel: Model with all counts initialized to 1
//   - error: errs.ErrAlphabetTooSmall, or errs.ErrInvalidRescaleThreshold if
//     the threshold leaves no room above the initial total
func NewAdaptiveModel(alphabetSize int, rescaleThreshold uint64) (*AdaptiveModel, error) {
	if alphabetSize < 2 {
		return nil, errs.ErrAlphabetTooSmall
	}

	if rescaleThreshold == 0 {
		rescaleThreshold = DefaultRescaleThreshold
	}
	// Below 2x the initial total the table rescales back to its initial state
	// on nearly every update and never accumulates statistics.
	if rescaleThreshold < 2*uint64(alphabetSize) {
		return nil, errs.ErrInvalidRescaleThreshold
	}

	counts := make([]uint64, alphabetSize)
	for i := range counts {
		counts[i] = 1
	}

	return &AdaptiveModel{
		counts:    counts,
		total:     uint64(alphabetSize),
		threshold: rescaleThreshold,
	}, nil
}

// AlphabetSize returns the number of symbols in the alphabet.
func (m *AdaptiveModel) AlphabetSize() int {
	return len(m.counts)
}

// Total returns the current sum of all symbol counts.
func (m *AdaptiveModel) Total() uint64 {
	return m.total
}

// RescaleThreshold returns the total count that triggers halving.
func (m *AdaptiveModel) RescaleThreshold() uint64 {
	return m.threshold
}

// Range returns the cumulative frequency range [low, high) of the symbol
// against the current table state.
func (m *AdaptiveModel) Range(symbol int) (uint64, uint64, error) {
	if symbol < 0 || symbol >= len(m.counts) {
		return 0, 0, errs.ErrSymbolOutOfRange
	}

	var low uint64
	for _, count := range m.counts[:symbol] {
		low += count
	}

	return low, low + m.counts[symbol], nil
}

// Find returns the symbol whose cumulative range contains scaled.
//
// Linear accumulation: adaptive counts shift on every update, so there is no
// cumulative array to search, and the scan costs the same as the prefix sum
// Range already pays.
func (m *AdaptiveModel) Find(scaled uint64) int {
	var high uint64
	for symbol, count := range m.counts {
		high += count
		if scaled < high {
			return symbol
		}
	}

	panic("model: scaled value out of range")
}

// Update increments the coded symbol's count and rescales the table once the
// total exceeds the threshold.
//
// Halving uses (count+1)/2, so counts never drop below 1 and every symbol
// stays encodable.
func (m *AdaptiveModel) Update(symbol int) {
	if symbol < 0 || symbol >= len(m.counts) {
		return
	}

	m.counts[symbol]++
	m.total++

	if m.total > m.threshold {
		m.total = 0
		for i, count := range m.counts {
			count = (count + 1) >> 1
			m.counts[i] = count
			m.total += count
		}
	}
}
