// Package compress provides the compression codecs for entro stream sections.
//
// Compression applies to the serialized frequency table section of a stream,
// not to the arithmetic payload: the payload is at entropy by construction
// and a second compression pass cannot shrink it. Static tables over large
// alphabets, on the other hand, are runs of small varints that compress well.
//
// Four algorithms are supported, selected via format.CompressionType:
//
//   - None: no compression (default; right for small tables)
//   - Zstd: best ratio, moderate speed (cgo binding when available,
//     pure-Go fallback otherwise)
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression, moderate ratio
//
// All codecs implement the Codec interface and are safe for concurrent use:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	compressed, err := codec.Compress(tableSection)
//	original, err := codec.Decompress(compressed)
package compress
