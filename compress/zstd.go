package compress

// ZstdCompressor provides Zstandard compression for table sections.
//
// Zstd yields the best ratio of the supported algorithms and is the right
// choice for large corpus-derived tables that are stored or transmitted many
// times. Two implementations back this type: a cgo binding when cgo is
// available, and a pure-Go fallback otherwise (see zstd_cgo.go and
// zstd_pure.go).
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
