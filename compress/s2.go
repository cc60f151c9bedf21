package compress

import "github.com/klauspost/compress/s2"

// S2Compressor compresses table sections with S2, the Snappy-compatible
// format tuned for throughput. It trades a little ratio against Zstd for
// much cheaper encode cost, a good fit for streams whose tables are built
// and shipped frequently.
//
// The block API needs no internal state, so the type is an empty struct and
// safe to share.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses the input data as a single S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress restores an S2 block produced by Compress.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
