package arith

import (
	"fmt"

	"github.com/arloliu/entro/errs"
	"github.com/arloliu/entro/model"
)

// Decoder reconstructs a symbol sequence from an arithmetic-coded bitstream.
//
// The decoder mirrors the encoder's state machine: it carries the same W-bit
// interval plus a code window of the next W input bits, and applies the same
// narrowing and renormalization transitions, consuming one bit per left shift
// where the encoder emitted one. No pending counter is needed; the deferred
// bits fall out of the mirrored shifts naturally.
//
// A Decoder is single-use and not safe for concurrent access.
type Decoder struct {
	m             model.Model
	input         *bitReader
	iv            interval
	code          uint64
	precisionBits int
}

// NewDecoder creates a decoding session over the bitstream and model.
//
// The model must be in the identical initial state the encoder started from.
//
// Parameters:
//   - data: Packed bitstream produced by an Encoder with the same config
//   - m: Frequency model; adaptive models become owned by this session
//   - opts: Optional session configuration (precision)
//
// Returns:
//   - *Decoder: Session primed with the first W input bits
//   - error: errs.ErrInvalidPrecision, errs.ErrTotalTooLarge, or
//     errs.ErrInvalidRescaleThreshold
func NewDecoder(data []byte, m model.Model, opts ...CoderOption) (*Decoder, error) {
	cfg, err := newCoderConfig(opts...)
	if err != nil {
		return nil, err
	}

	iv := newInterval(cfg.precisionBits)
	if err := checkHeadroom(m, iv.quarter); err != nil {
		return nil, err
	}

	input := newBitReader(data)
	var code uint64
	for i := 0; i < cfg.precisionBits; i++ {
		code = (code << 1) | uint64(input.ReadBit())
	}

	return &Decoder{
		m:             m,
		input:         input,
		iv:            iv,
		code:          code,
		precisionBits: cfg.precisionBits,
	}, nil
}

// DecodeSymbol decodes and returns the next symbol, updating the model.
//
// Returns errs.ErrTruncatedStream when the input has been exhausted beyond
// the slack a valid stream can require. The flush construction bounds a valid
// decode to at most W-2 zero-filled bits past the end of input (the flush
// always lands at least one full byte, so even the priming window overdraws
// at most W-8), so reaching W means the stream was cut short; a shorter
// truncation is indistinguishable from a different sequence and surfaces as
// differing output instead.
func (d *Decoder) DecodeSymbol() (int, error) {
	total := d.m.Total()
	if total > d.iv.quarter {
		return 0, fmt.Errorf("%w: total %d > quarter %d", errs.ErrTotalTooLarge, total, d.iv.quarter)
	}

	rng := d.iv.high - d.iv.low + 1
	scaled := ((d.code-d.iv.low+1)*total - 1) / rng

	symbol := d.m.Find(scaled)
	symLow, symHigh, err := d.m.Range(symbol)
	if err != nil {
		return 0, fmt.Errorf("decode symbol %d: %w", symbol, err)
	}

	d.iv.narrow(symLow, symHigh, total)

	for {
		var offset uint64
		switch d.iv.renormCase() {
		case renormLower:
			offset = 0
		case renormUpper:
			offset = d.iv.half
		case renormInner:
			offset = d.iv.quarter
		default:
			d.m.Update(symbol)

			if d.input.Overdrawn() >= d.precisionBits {
				return 0, errs.ErrTruncatedStream
			}

			return symbol, nil
		}

		d.code = (((d.code - offset) << 1) & d.iv.top) | uint64(d.input.ReadBit())
		d.iv.shift(offset)
	}
}

// DecodeSlice decodes exactly symbolCount symbols.
func (d *Decoder) DecodeSlice(symbolCount int) ([]int, error) {
	symbols := make([]int, 0, symbolCount)
	for i := 0; i < symbolCount; i++ {
		symbol, err := d.DecodeSymbol()
		if err != nil {
			return nil, err
		}
		symbols = append(symbols, symbol)
	}

	return symbols, nil
}
