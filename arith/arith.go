// Package arith implements the arithmetic entropy-coding core: an interval
// coder that compresses a symbol sequence into a minimal-length bitstream
// given a frequency model, and reconstructs the sequence exactly from that
// bitstream.
//
// The coder maintains a sub-interval of the state range using fixed-width
// unsigned integers, renormalizing with the quarter/half rules and deferring
// undecided bits through a pending counter, so encoder and decoder traverse
// identical state transitions bit for bit. No floating point is involved
// anywhere; floating rounding would break the encode/decode symmetry.
//
// The output of this package is headerless: callers are responsible for
// recording the symbol count and the model configuration needed to decode.
// The blob package provides a thin container that does exactly that.
//
// # Basic Usage
//
//	m, _ := model.NewStaticModel([]uint64{1, 1, 2})
//	data, _ := arith.Encode([]int{0, 1, 2, 2}, m)
//	symbols, _ := arith.Decode(data, 4, m)
//
// Session types are available for streaming use:
//
//	enc, _ := arith.NewEncoder(m)
//	for _, s := range symbols {
//	    if err := enc.EncodeSymbol(s); err != nil { ... }
//	}
//	data, _ := enc.Finish()
//
// # Model Ownership
//
// Static models are read-only during coding and may back any number of
// concurrent sessions. An adaptive model mutates on every coded symbol and
// must be owned by exactly one session; the decode side must be given a fresh
// model with the identical initial configuration, or the two tables diverge
// and the output is garbage.
package arith

import (
	"fmt"

	"github.com/arloliu/entro/errs"
	"github.com/arloliu/entro/internal/options"
	"github.com/arloliu/entro/model"
)

const (
	// DefaultPrecisionBits is the state width used when no option overrides it.
	DefaultPrecisionBits = 32

	// MinPrecisionBits is the smallest supported state width. Below 9 bits the
	// quarter bound leaves fewer than 128 frequency steps, too coarse for any
	// non-trivial model.
	MinPrecisionBits = 9

	// MaxPrecisionBits is the largest supported state width. At 32 bits the
	// interval narrowing product range*total stays within uint64.
	MaxPrecisionBits = 32
)

// coderConfig holds the session configuration shared by Encoder and Decoder.
type coderConfig struct {
	precisionBits int
}

// CoderOption represents a functional option for configuring a coding session.
type CoderOption = options.Option[*coderConfig]

// WithPrecisionBits sets the state width W of the coding interval, in bits.
//
// The same precision must be used on the encode and decode side; it is part
// of the model configuration contract and is not recoverable from the
// bitstream alone.
func WithPrecisionBits(bits int) CoderOption {
	return options.New(func(c *coderConfig) error {
		if bits < MinPrecisionBits || bits > MaxPrecisionBits {
			return fmt.Errorf("%w: %d (valid range %d..%d)",
				errs.ErrInvalidPrecision, bits, MinPrecisionBits, MaxPrecisionBits)
		}
		c.precisionBits = bits

		return nil
	})
}

func newCoderConfig(opts ...CoderOption) (*coderConfig, error) {
	cfg := &coderConfig{precisionBits: DefaultPrecisionBits}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Encode compresses the symbol sequence with the given model and returns the
// packed bitstream, flush bits included.
//
// The caller must separately record len(symbols) and the model configuration;
// both are required to decode.
//
// Parameters:
//   - symbols: Symbol sequence over the model's alphabet
//   - m: Frequency model; adaptive models are mutated by this call
//   - opts: Optional session configuration (precision)
//
// Returns:
//   - []byte: Packed bitstream
//   - error: Model or configuration error
func Encode(symbols []int, m model.Model, opts ...CoderOption) ([]byte, error) {
	enc, err := NewEncoder(m, opts...)
	if err != nil {
		return nil, err
	}

	for _, symbol := range symbols {
		if err := enc.EncodeSymbol(symbol); err != nil {
			return nil, err
		}
	}

	return enc.Finish()
}

// Decode reconstructs symbolCount symbols from a bitstream produced by Encode.
//
// The model must match the one used at encode time: same mode, same initial
// table, same precision, same rescale threshold. This equality is a hard
// precondition that cannot be verified from the bitstream; a mismatch
// surfaces as garbage output or a downstream model/truncation error.
//
// Parameters:
//   - data: Packed bitstream from Encode
//   - symbolCount: Number of symbols the encoder wrote
//   - m: Frequency model in its initial state
//   - opts: Optional session configuration (precision)
//
// Returns:
//   - []int: Decoded symbol sequence of length symbolCount
//   - error: errs.ErrTruncatedStream if the input is exhausted early, or a
//     model/configuration error
func Decode(data []byte, symbolCount int, m model.Model, opts ...CoderOption) ([]int, error) {
	dec, err := NewDecoder(data, m, opts...)
	if err != nil {
		return nil, err
	}

	symbols := make([]int, 0, symbolCount)
	for i := 0; i < symbolCount; i++ {
		symbol, err := dec.DecodeSymbol()
		if err != nil {
			return nil, err
		}
		symbols = append(symbols, symbol)
	}

	return symbols, nil
}
