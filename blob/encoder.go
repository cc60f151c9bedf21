package blob

import (
	"fmt"

	"github.com/arloliu/entro/arith"
	"github.com/arloliu/entro/compress"
	"github.com/arloliu/entro/encoding"
	"github.com/arloliu/entro/errs"
	"github.com/arloliu/entro/format"
	"github.com/arloliu/entro/internal/hash"
	"github.com/arloliu/entro/section"
)

// Encoder produces a self-describing coded stream: a fixed header carrying
// the model configuration and symbol count, an optional frequency table
// section, and the arithmetic payload.
//
// The encoder owns its model and coder session; it is single-use and not safe
// for concurrent access.
type Encoder struct {
	cfg         *EncoderConfig
	coder       *arith.Encoder
	symbolCount uint64
	finished    bool
}

// NewEncoder creates a stream encoder over the given alphabet size.
//
// By default it codes against a static uniform model with
// arith.DefaultPrecisionBits of state and no table compression; use the
// functional options to select a static table or adaptive model, precision,
// table compression, and byte order.
//
// Parameters:
//   - alphabetSize: Number of symbols in the coding alphabet, at least 2
//   - opts: Functional options
//
// Returns:
//   - *Encoder: Encoder ready to accept symbols
//   - error: Configuration or model construction error
func NewEncoder(alphabetSize int, opts ...EncoderOption) (*Encoder, error) {
	cfg, err := newEncoderConfig(alphabetSize, opts...)
	if err != nil {
		return nil, err
	}

	m, err := cfg.buildModel()
	if err != nil {
		return nil, err
	}

	coder, err := arith.NewEncoder(m, arith.WithPrecisionBits(cfg.precisionBits))
	if err != nil {
		return nil, err
	}

	return &Encoder{cfg: cfg, coder: coder}, nil
}

// WriteSymbol codes one symbol into the stream.
func (e *Encoder) WriteSymbol(symbol int) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}

	if err := e.coder.EncodeSymbol(symbol); err != nil {
		return err
	}
	e.symbolCount++

	return nil
}

// WriteSlice codes a slice of symbols in order.
func (e *Encoder) WriteSlice(symbols []int) error {
	for _, symbol := range symbols {
		if err := e.WriteSymbol(symbol); err != nil {
			return err
		}
	}

	return nil
}

// SymbolCount returns the number of symbols written so far.
func (e *Encoder) SymbolCount() uint64 {
	return e.symbolCount
}

// Finish flushes the coder, assembles header, table section and payload, and
// returns the complete stream bytes.
//
// The encoder cannot be used after Finish.
func (e *Encoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}
	e.finished = true

	payload, err := e.coder.Finish()
	if err != nil {
		return nil, err
	}

	var table []byte
	if e.cfg.modelType == format.ModelStaticTable {
		enc := encoding.NewFreqTableEncoder()
		enc.WriteSlice(e.cfg.counts)

		codec, err := compress.GetCodec(e.cfg.tableCompression)
		if err != nil {
			return nil, err
		}

		table, err = codec.Compress(enc.Finish())
		if err != nil {
			return nil, fmt.Errorf("compress table section: %w", err)
		}
	}

	header := section.NewStreamHeader()
	header.Flag.SetModelType(e.cfg.modelType)
	header.Flag.SetCompressionType(e.cfg.tableCompression)
	if e.cfg.bigEndian {
		header.Flag.WithBigEndian()
	}

	header.AlphabetSize = uint32(e.cfg.alphabetSize)         //nolint:gosec
	header.RescaleThreshold = uint32(e.cfg.rescaleThreshold) //nolint:gosec
	header.TableSize = uint32(len(table))                    //nolint:gosec
	header.PrecisionBits = uint8(e.cfg.precisionBits)        //nolint:gosec
	header.SymbolCount = e.symbolCount

	sections := make([]byte, 0, len(table)+len(payload))
	sections = append(sections, table...)
	sections = append(sections, payload...)
	header.Checksum = hash.Checksum(sections)

	out := make([]byte, 0, section.HeaderSize+len(sections))
	out = append(out, header.Bytes()...)
	out = append(out, sections...)

	return out, nil
}
