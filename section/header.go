package section

import (
	"github.com/arloliu/entro/errs"
)

// StreamHeader represents the fixed-size header section at the start of a
// coded stream.
//
// The header carries everything the decoder needs to rebuild the encoder's
// model configuration, plus a checksum over the sections that follow. Layout:
//
//	offset 0-1   Flag.Options (packed magic + endianness, always little-endian)
//	offset 2     Flag.ModelType
//	offset 3     Flag.CompressionType
//	offset 4-7   AlphabetSize
//	offset 8-11  RescaleThreshold (adaptive model only, 0 otherwise)
//	offset 12-15 TableSize (static table section length in bytes, 0 otherwise)
//	offset 16    PrecisionBits
//	offset 17-23 reserved, must be zero
//	offset 24-31 SymbolCount
//	offset 32-39 Checksum (xxHash64 over table section + payload)
type StreamHeader struct {
	// AlphabetSize is the number of symbols in the coding alphabet, at least 2.
	AlphabetSize uint32
	// RescaleThreshold is the adaptive model's rescale trigger; zero for
	// static models.
	RescaleThreshold uint32
	// TableSize is the byte length of the (possibly compressed) frequency
	// table section between header and payload; zero when no table is stored.
	TableSize uint32
	// PrecisionBits is the coder state width W used to produce the payload.
	PrecisionBits uint8
	// SymbolCount is the number of symbols coded into the payload.
	SymbolCount uint64
	// Checksum is the xxHash64 of all bytes following the header.
	Checksum uint64

	// Flag is the packed field for format flags and the magic number.
	Flag StreamFlag
}

// NewStreamHeader creates a new StreamHeader with default flags.
// Model configuration and section sizes are filled in when the encoder
// finishes.
func NewStreamHeader() *StreamHeader {
	return &StreamHeader{
		Flag: NewStreamFlag(),
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly HeaderSize bytes)
//
// Returns:
//   - error: errs.ErrInvalidHeaderSize if data is not HeaderSize bytes,
//     magic/flag validation errors, or errs.ErrInvalidHeaderFlags for
//     non-zero reserved bytes
func (h *StreamHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// Parse the flag first to determine endianness; the Options field itself
	// is always little-endian.
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.ModelType = data[2]
	h.Flag.CompressionType = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()

	h.AlphabetSize = engine.Uint32(data[4:8])
	h.RescaleThreshold = engine.Uint32(data[8:12])
	h.TableSize = engine.Uint32(data[12:16])
	h.PrecisionBits = data[16]

	for _, b := range data[17:24] {
		if b != 0 {
			return errs.ErrInvalidHeaderFlags
		}
	}

	h.SymbolCount = engine.Uint64(data[24:32])
	h.Checksum = engine.Uint64(data[32:40])

	return nil
}

// Bytes serializes the StreamHeader into a HeaderSize byte slice.
func (h *StreamHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := h.Flag.GetEndianEngine()

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.ModelType
	b[3] = h.Flag.CompressionType

	engine.PutUint32(b[4:8], h.AlphabetSize)
	engine.PutUint32(b[8:12], h.RescaleThreshold)
	engine.PutUint32(b[12:16], h.TableSize)
	b[16] = h.PrecisionBits

	engine.PutUint64(b[24:32], h.SymbolCount)
	engine.PutUint64(b[32:40], h.Checksum)

	return b
}
