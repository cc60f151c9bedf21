package arith

import (
	"fmt"

	"github.com/arloliu/entro/errs"
	"github.com/arloliu/entro/internal/pool"
	"github.com/arloliu/entro/model"
)

// Encoder compresses a symbol sequence into an arithmetic-coded bitstream.
//
// The encoder narrows its W-bit interval by each symbol's cumulative range,
// emitting leading bits as they settle and deferring undecided bits through
// the pending counter. Finish emits exactly pending+2 flush bits that pin a
// value inside the final interval, then returns the packed bytes.
//
// An Encoder is single-use and not safe for concurrent access.
type Encoder struct {
	m       model.Model
	buf     *pool.ByteBuffer
	output  *bitWriter
	iv      interval
	pending int
}

// rescaler is implemented by adaptive models that expose their rescale
// threshold, letting the coder validate precision headroom up front instead
// of failing mid-stream.
type rescaler interface {
	RescaleThreshold() uint64
}

// NewEncoder creates an encoding session over the given model.
//
// Parameters:
//   - m: Frequency model; adaptive models become owned by this session
//   - opts: Optional session configuration (precision)
//
// Returns:
//   - *Encoder: Session in the initial full-interval state
//   - error: errs.ErrInvalidPrecision, errs.ErrTotalTooLarge, or
//     errs.ErrInvalidRescaleThreshold if the model's headroom does not fit
//     the chosen precision
func NewEncoder(m model.Model, opts ...CoderOption) (*Encoder, error) {
	cfg, err := newCoderConfig(opts...)
	if err != nil {
		return nil, err
	}

	iv := newInterval(cfg.precisionBits)
	if err := checkHeadroom(m, iv.quarter); err != nil {
		return nil, err
	}

	buf := pool.GetStreamBuffer()

	return &Encoder{
		m:      m,
		buf:    buf,
		output: newBitWriter(buf),
		iv:     iv,
	}, nil
}

// checkHeadroom verifies that the model's total frequency can never exceed
// one quarter of the state range, the precision constraint that keeps
// interval narrowing lossless.
func checkHeadroom(m model.Model, quarter uint64) error {
	if m.Total() > quarter {
		return fmt.Errorf("%w: total %d > quarter %d", errs.ErrTotalTooLarge, m.Total(), quarter)
	}

	if r, ok := m.(rescaler); ok && r.RescaleThreshold() > quarter {
		return fmt.Errorf("%w: threshold %d > quarter %d",
			errs.ErrInvalidRescaleThreshold, r.RescaleThreshold(), quarter)
	}

	return nil
}

// EncodeSymbol codes one symbol and updates the model.
//
// Returns errs.ErrSymbolOutOfRange or errs.ErrZeroFrequency for symbols the
// model cannot encode, errs.ErrTotalTooLarge if the model outgrew the
// precision headroom, and errs.ErrEncoderFinished after Finish.
func (e *Encoder) EncodeSymbol(symbol int) error {
	if e.buf == nil {
		return errs.ErrEncoderFinished
	}

	symLow, symHigh, err := e.m.Range(symbol)
	if err != nil {
		return fmt.Errorf("encode symbol %d: %w", symbol, err)
	}

	total := e.m.Total()
	if total > e.iv.quarter {
		return fmt.Errorf("%w: total %d > quarter %d", errs.ErrTotalTooLarge, total, e.iv.quarter)
	}

	e.iv.narrow(symLow, symHigh, total)

	for {
		switch e.iv.renormCase() {
		case renormLower:
			e.output.WriteBit(0)
			e.output.WriteBits(1, e.pending)
			e.pending = 0
			e.iv.shift(0)
		case renormUpper:
			e.output.WriteBit(1)
			e.output.WriteBits(0, e.pending)
			e.pending = 0
			e.iv.shift(e.iv.half)
		case renormInner:
			e.pending++
			e.iv.shift(e.iv.quarter)
		default:
			e.m.Update(symbol)
			return nil
		}
	}
}

// EncodeSlice codes a slice of symbols in order.
func (e *Encoder) EncodeSlice(symbols []int) error {
	for _, symbol := range symbols {
		if err := e.EncodeSymbol(symbol); err != nil {
			return err
		}
	}

	return nil
}

// Finish flushes the final interval and returns the packed bitstream.
//
// The flush emits pending+2 bits: a 01 run when the final interval contains
// the quarter point, a 10 run when it contains the three-quarter point, with
// any deferred underflow bits folded into the run. A zero-symbol session
// therefore still produces one byte of output.
//
// The encoder cannot be used after Finish; further calls return
// errs.ErrEncoderFinished.
func (e *Encoder) Finish() ([]byte, error) {
	if e.buf == nil {
		return nil, errs.ErrEncoderFinished
	}

	e.pending++
	if e.iv.low < e.iv.quarter {
		e.output.WriteBit(0)
		e.output.WriteBits(1, e.pending)
	} else {
		e.output.WriteBit(1)
		e.output.WriteBits(0, e.pending)
	}
	e.pending = 0
	e.output.Flush()

	data := make([]byte, e.buf.Len())
	copy(data, e.buf.Bytes())

	pool.PutStreamBuffer(e.buf)
	e.buf = nil
	e.output = nil

	return data, nil
}
