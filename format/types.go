// Package format defines the shared enum types used across the entro packages.
package format

type (
	ModelType       uint8
	CompressionType uint8
)

const (
	ModelStaticUniform ModelType = 0x1 // ModelStaticUniform represents a fixed uniform distribution.
	ModelStaticTable   ModelType = 0x2 // ModelStaticTable represents a fixed caller-supplied frequency table.
	ModelAdaptive      ModelType = 0x3 // ModelAdaptive represents a table updated after every coded symbol.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (m ModelType) String() string {
	switch m {
	case ModelStaticUniform:
		return "StaticUniform"
	case ModelStaticTable:
		return "StaticTable"
	case ModelAdaptive:
		return "Adaptive"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
