package blob

import (
	"fmt"

	"github.com/arloliu/entro/arith"
	"github.com/arloliu/entro/compress"
	"github.com/arloliu/entro/encoding"
	"github.com/arloliu/entro/errs"
	"github.com/arloliu/entro/format"
	"github.com/arloliu/entro/internal/hash"
	"github.com/arloliu/entro/model"
	"github.com/arloliu/entro/section"
)

// Decoder parses a coded stream, verifies its checksum, rebuilds the model
// the encoder was configured with, and reconstructs the symbol sequence.
//
// A Decoder is single-use and not safe for concurrent access.
type Decoder struct {
	header *section.StreamHeader
	coder  *arith.Decoder
}

// NewDecoder creates a stream decoder over the given bytes.
//
// The header is parsed and validated eagerly, including the checksum over the
// table section and payload, so corruption is detected before any symbol is
// decoded.
//
// Returns:
//   - *Decoder: Decoder primed to produce symbols
//   - error: errs.ErrInvalidHeaderSize, errs.ErrInvalidMagicNumber,
//     errs.ErrInvalidHeaderFlags, errs.ErrChecksumMismatch,
//     errs.ErrTruncatedStream, or a model/table reconstruction error
func NewDecoder(data []byte) (*Decoder, error) {
	if len(data) < section.HeaderSize {
		return nil, errs.ErrInvalidHeaderSize
	}

	header := &section.StreamHeader{}
	if err := header.Parse(data[:section.HeaderSize]); err != nil {
		return nil, err
	}

	sections := data[section.HeaderSize:]
	if header.Checksum != hash.Checksum(sections) {
		return nil, errs.ErrChecksumMismatch
	}

	if uint64(header.TableSize) > uint64(len(sections)) {
		return nil, errs.ErrTruncatedStream
	}
	table := sections[:header.TableSize]
	payload := sections[header.TableSize:]

	m, err := buildModel(header, table)
	if err != nil {
		return nil, err
	}

	coder, err := arith.NewDecoder(payload, m, arith.WithPrecisionBits(int(header.PrecisionBits)))
	if err != nil {
		return nil, err
	}

	return &Decoder{header: header, coder: coder}, nil
}

// buildModel reconstructs the encoder's frequency model from the header and
// the (possibly compressed) table section.
func buildModel(header *section.StreamHeader, table []byte) (model.Model, error) {
	switch header.Flag.GetModelType() {
	case format.ModelStaticUniform:
		return model.NewUniformModel(int(header.AlphabetSize))
	case format.ModelStaticTable:
		codec, err := compress.GetCodec(header.Flag.GetCompressionType())
		if err != nil {
			return nil, err
		}

		raw, err := codec.Decompress(table)
		if err != nil {
			return nil, fmt.Errorf("decompress table section: %w", err)
		}

		counts, err := encoding.DecodeFreqTable(raw, int(header.AlphabetSize))
		if err != nil {
			return nil, err
		}

		return model.NewStaticModel(counts)
	case format.ModelAdaptive:
		return model.NewAdaptiveModel(int(header.AlphabetSize), uint64(header.RescaleThreshold))
	default:
		return nil, errs.ErrInvalidHeaderFlags
	}
}

// ModelType returns the frequency model type recorded in the header.
func (d *Decoder) ModelType() format.ModelType {
	return d.header.Flag.GetModelType()
}

// AlphabetSize returns the alphabet size recorded in the header.
func (d *Decoder) AlphabetSize() int {
	return int(d.header.AlphabetSize)
}

// SymbolCount returns the number of symbols recorded in the header.
func (d *Decoder) SymbolCount() uint64 {
	return d.header.SymbolCount
}

// PrecisionBits returns the coder state width recorded in the header.
func (d *Decoder) PrecisionBits() int {
	return int(d.header.PrecisionBits)
}

// Decode reconstructs the full symbol sequence.
func (d *Decoder) Decode() ([]int, error) {
	symbols := make([]int, 0, d.header.SymbolCount)
	for i := uint64(0); i < d.header.SymbolCount; i++ {
		symbol, err := d.coder.DecodeSymbol()
		if err != nil {
			return nil, err
		}
		symbols = append(symbols, symbol)
	}

	return symbols, nil
}
