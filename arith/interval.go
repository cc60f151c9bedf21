package arith

// interval is the W-bit working state shared by the encoder and decoder.
//
// Both sides narrow and renormalize through the exact same code path; the
// only asymmetry is what a left shift means at the stream level (emit one bit
// vs consume one bit), which stays in the Encoder and Decoder loops. Keeping
// the state transitions in one place is what guarantees the two machines
// cannot drift.
type interval struct {
	low  uint64
	high uint64

	top     uint64 // 2^W - 1
	half    uint64 // 2^(W-1)
	quarter uint64 // 2^(W-2)
}

func newInterval(precisionBits int) interval {
	top := (uint64(1) << uint(precisionBits)) - 1

	return interval{
		low:     0,
		high:    top,
		top:     top,
		half:    (top + 1) >> 1,
		quarter: (top + 1) >> 2,
	}
}

// narrow shrinks the interval to the sub-range owned by a symbol with
// cumulative range [symLow, symHigh) against total.
//
// The caller guarantees total <= quarter, which keeps the interval width
// at least 1: after renormalization high-low+1 > quarter >= total, so every
// symbol's scaled sub-range is non-empty.
func (iv *interval) narrow(symLow, symHigh, total uint64) {
	rng := iv.high - iv.low + 1
	iv.high = iv.low + (rng*symHigh)/total - 1
	iv.low = iv.low + (rng*symLow)/total
}

// renormCase classifies the interval against the renormalization predicates.
type renormCase int

const (
	renormDone  renormCase = iota // interval spans the midpoint widely enough
	renormLower                   // high < half: leading bit settled to 0
	renormUpper                   // low >= half: leading bit settled to 1
	renormInner                   // straddles the midpoint inside the middle half: underflow
)

func (iv *interval) renormCase() renormCase {
	switch {
	case iv.high < iv.half:
		return renormLower
	case iv.low >= iv.half:
		return renormUpper
	case iv.low >= iv.quarter && iv.high < 3*iv.quarter:
		return renormInner
	default:
		return renormDone
	}
}

// shift rescales the interval left by one bit after subtracting offset from
// both bounds. high shifts in a 1 so the bound stays inclusive.
func (iv *interval) shift(offset uint64) {
	iv.low = ((iv.low - offset) << 1) & iv.top
	iv.high = (((iv.high - offset) << 1) & iv.top) | 1
}
