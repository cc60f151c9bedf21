package section

import (
	"github.com/arloliu/entro/endian"
	"github.com/arloliu/entro/errs"
	"github.com/arloliu/entro/format"
)

// StreamFlag represents the packed flag field of the stream header.
type StreamFlag struct {
	// Options is a packed field for various options.
	// Bit 0 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 1-3 are reserved for future use, must be set to 0.
	// Bits 4-15 are the magic number identifying the stream format:
	//   - 0xAC10 (0b1010_1100_0001_0000): Coded stream format v1
	Options uint16

	// ModelType is an enum indicating the frequency model that produced this stream.
	ModelType uint8
	// CompressionType is an enum indicating the compression applied to the
	// frequency table section.
	CompressionType uint8
}

var (
	validModelTypes = map[uint8]struct{}{
		uint8(format.ModelStaticUniform): {},
		uint8(format.ModelStaticTable):   {},
		uint8(format.ModelAdaptive):      {},
	}

	validCompressions = map[uint8]struct{}{
		uint8(format.CompressionNone): {},
		uint8(format.CompressionZstd): {},
		uint8(format.CompressionS2):   {},
		uint8(format.CompressionLZ4):  {},
	}
)

// NewStreamFlag creates a new StreamFlag with default settings.
func NewStreamFlag() StreamFlag {
	flag := StreamFlag{
		Options:         MagicStreamV1Opt,
		ModelType:       uint8(format.ModelStaticUniform),
		CompressionType: uint8(format.CompressionNone),
	}
	flag.WithLittleEndian()

	return flag
}

// IsLittleEndian returns whether the stream fields are little-endian.
func (f StreamFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the stream fields are big-endian.
func (f StreamFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *StreamFlag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *StreamFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f StreamFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// GetEndianEngine returns the endian engine matching the endianness flag.
func (f StreamFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// GetModelType returns the model type as a format enum.
func (f StreamFlag) GetModelType() format.ModelType {
	return format.ModelType(f.ModelType)
}

// SetModelType records the model type in the flag.
func (f *StreamFlag) SetModelType(m format.ModelType) {
	f.ModelType = uint8(m)
}

// GetCompressionType returns the table compression as a format enum.
func (f StreamFlag) GetCompressionType() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompressionType records the table compression in the flag.
func (f *StreamFlag) SetCompressionType(c format.CompressionType) {
	f.CompressionType = uint8(c)
}

// Validate checks the magic number, reserved bits and enum fields.
func (f StreamFlag) Validate() error {
	if f.GetMagicNumber() != MagicStreamV1Opt {
		return errs.ErrInvalidMagicNumber
	}

	if f.Options&ReservedBitsMask != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if _, ok := validModelTypes[f.ModelType]; !ok {
		return errs.ErrInvalidHeaderFlags
	}

	if _, ok := validCompressions[f.CompressionType]; !ok {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}
