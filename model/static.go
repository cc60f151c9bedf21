package model

import (
	"github.com/arloliu/entro/errs"
)

// UniformModel implements a static model where all symbols own an equal range.
//
// It allocates nothing: symbol s owns [s, s+1) against a total equal to the
// alphabet size. The model is immutable and safe for concurrent use.
type UniformModel struct {
	alphabetSize int
}

var _ Model = (*UniformModel)(nil)

// NewUniformModel creates a uniform model over the given alphabet size.
//
// Returns errs.ErrAlphabetTooSmall if alphabetSize is less than 2; a
// single-symbol alphabet carries no information to code.
func NewUniformModel(alphabetSize int) (*UniformModel, error) {
	if alphabetSize < 2 {
		return nil, errs.ErrAlphabetTooSmall
	}

	return &UniformModel{alphabetSize: alphabetSize}, nil
}

// AlphabetSize returns the number of symbols in the alphabet.
func (m *UniformModel) AlphabetSize() int {
	return m.alphabetSize
}

// Total returns the total frequency, which equals the alphabet size.
func (m *UniformModel) Total() uint64 {
	return uint64(m.alphabetSize)
}

// Range returns [symbol, symbol+1) for the given symbol.
func (m *UniformModel) Range(symbol int) (uint64, uint64, error) {
	if symbol < 0 || symbol >= m.alphabetSize {
		return 0, 0, errs.ErrSymbolOutOfRange
	}

	return uint64(symbol), uint64(symbol) + 1, nil
}

// Find returns the symbol owning the given cumulative frequency.
func (m *UniformModel) Find(scaled uint64) int {
	if scaled >= uint64(m.alphabetSize) {
		panic("model: scaled value out of range")
	}

	return int(scaled)
}

// Update is a no-op for static models.
func (m *UniformModel) Update(int) {}

// StaticModel implements a model with fixed caller-supplied symbol frequencies.
//
// The cumulative array is computed once at construction; Range is O(1) and
// Find is a binary search. The model is immutable and safe for concurrent use,
// so a single instance may back many encode sessions.
//
// Individual counts of zero are permitted so corpus-derived tables can cover a
// full byte alphabet even when some values never occur. Encoding a
// zero-frequency symbol fails with errs.ErrZeroFrequency, and Find never
// returns one.
type StaticModel struct {
	cum   []uint64 // cum[s] = sum of counts[0..s), len = alphabet size + 1
	total uint64
}

var _ Model = (*StaticModel)(nil)

// NewStaticModel creates a model from the given frequency table.
//
// The table maps symbol index to count. It must contain at least two entries
// (errs.ErrAlphabetTooSmall) and at least one positive count
// (errs.ErrInvalidFreqTable).
//
// Parameters:
//   - counts: Frequency of each symbol, indexed by symbol
//
// Returns:
//   - *StaticModel: Immutable model over the table
//   - error: errs.ErrAlphabetTooSmall or errs.ErrInvalidFreqTable
func NewStaticModel(counts []uint64) (*StaticModel, error) {
	if len(counts) < 2 {
		return nil, errs.ErrAlphabetTooSmall
	}

	cum := make([]uint64, len(counts)+1)
	var total uint64
	for i, count := range counts {
		total += count
		cum[i+1] = total
	}

	if total == 0 {
		return nil, errs.ErrInvalidFreqTable
	}

	return &StaticModel{cum: cum, total: total}, nil
}

// AlphabetSize returns the number of symbols in the alphabet.
func (m *StaticModel) AlphabetSize() int {
	return len(m.cum) - 1
}

// Total returns the sum of all symbol frequencies.
func (m *StaticModel) Total() uint64 {
	return m.total
}

// Counts returns a copy of the model's frequency table, indexed by symbol.
// The container uses it to serialize static tables into the stream.
func (m *StaticModel) Counts() []uint64 {
	counts := make([]uint64, m.AlphabetSize())
	for i := range counts {
		counts[i] = m.cum[i+1] - m.cum[i]
	}

	return counts
}

// Range returns the cumulative frequency range [low, high) of the symbol.
func (m *StaticModel) Range(symbol int) (uint64, uint64, error) {
	if symbol < 0 || symbol >= m.AlphabetSize() {
		return 0, 0, errs.ErrSymbolOutOfRange
	}

	low, high := m.cum[symbol], m.cum[symbol+1]
	if low == high {
		return 0, 0, errs.ErrZeroFrequency
	}

	return low, high, nil
}

// Find returns the symbol whose cumulative range contains scaled.
//
// Binary search for the largest symbol s with cum[s] <= scaled; zero-width
// symbols share their boundary with the next non-empty symbol and are skipped
// naturally.
func (m *StaticModel) Find(scaled uint64) int {
	if scaled >= m.total {
		panic("model: scaled value out of range")
	}

	left, right := 0, len(m.cum)-1
	for left < right-1 {
		mid := (left + right) / 2
		if m.cum[mid] <= scaled {
			left = mid
		} else {
			right = mid
		}
	}

	return left
}

// Update is a no-op for static models.
func (m *StaticModel) Update(int) {}
