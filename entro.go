// Package entro provides an arithmetic entropy-coding engine: it compresses a
// finite symbol sequence into a minimal-length bitstream given a symbol
// probability model, and reconstructs the sequence exactly from that
// bitstream.
//
// # Core Features
//
//   - Fixed-precision integer interval coder (9 to 32 bits of state), no
//     floating point anywhere in the coding path
//   - Static uniform, static table-driven, and adaptive frequency models
//   - Self-describing container format with model configuration, symbol
//     count, and xxHash64 payload checksum
//   - Optional compression (Zstd, S2, LZ4) for stored frequency tables
//   - Entropy and codeword-length analysis utilities
//
// # Basic Usage
//
// One-shot encoding with the container format:
//
//	symbols := []int{0, 1, 2, 2, 1, 0}
//	stream, err := entro.Encode(symbols, 3, entro.WithAdaptiveModel(0))
//	if err != nil {
//	    return err
//	}
//
//	decoded, err := entro.Decode(stream)
//	if err != nil {
//	    return err
//	}
//	// decoded == symbols
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the blob
// package, covering the most common use cases. For fine-grained control use
// the underlying packages directly:
//
//   - blob: container encoder/decoder sessions with functional options
//   - arith: the headerless coding core (caller manages symbol count and
//     model configuration)
//   - model: frequency models consumed by the coder
//   - stats: entropy and codeword-length analysis
//
// The arith package is the right entry point when the symbol count and model
// configuration travel out of band, for example inside an existing container
// format; everything else should go through blob or these wrappers.
package entro

import (
	"github.com/arloliu/entro/blob"
)

// EncoderOption represents a functional option for configuring a stream
// encoder.
type EncoderOption = blob.EncoderOption

// Option aliases, re-exported so common configurations need only this package.
var (
	// WithUniformModel selects the static uniform model (the default).
	WithUniformModel = blob.WithUniformModel

	// WithStaticTable selects a static model over a caller-supplied frequency
	// table, serialized into the stream.
	WithStaticTable = blob.WithStaticTable

	// WithAdaptiveModel selects the adaptive model; pass 0 for the default
	// rescale threshold.
	WithAdaptiveModel = blob.WithAdaptiveModel

	// WithPrecisionBits sets the coder state width W.
	WithPrecisionBits = blob.WithPrecisionBits

	// WithTableCompression sets the compression for stored frequency tables.
	WithTableCompression = blob.WithTableCompression
)

// NewEncoder creates a stream encoder over the given alphabet size.
//
// Parameters:
//   - alphabetSize: Number of symbols in the coding alphabet, at least 2
//   - opts: Functional options (model, precision, table compression)
//
// Returns:
//   - *blob.Encoder: Encoder ready to accept symbols
//   - error: Configuration or model construction error
//
// Example:
//
//	enc, err := entro.NewEncoder(256, entro.WithAdaptiveModel(0))
//	if err != nil {
//	    return err
//	}
//	if err := enc.WriteSlice(symbols); err != nil {
//	    return err
//	}
//	stream, err := enc.Finish()
func NewEncoder(alphabetSize int, opts ...blob.EncoderOption) (*blob.Encoder, error) {
	return blob.NewEncoder(alphabetSize, opts...)
}

// NewDecoder creates a stream decoder over container bytes produced by an
// Encoder. The header is validated eagerly, including the payload checksum.
func NewDecoder(data []byte) (*blob.Decoder, error) {
	return blob.NewDecoder(data)
}

// Encode compresses the symbol sequence into a self-describing stream.
//
// Parameters:
//   - symbols: Symbol sequence over [0, alphabetSize)
//   - alphabetSize: Number of symbols in the coding alphabet, at least 2
//   - opts: Functional options (model, precision, table compression)
//
// Returns:
//   - []byte: Complete stream (header, table section, payload)
//   - error: Configuration or model error
func Encode(symbols []int, alphabetSize int, opts ...blob.EncoderOption) ([]byte, error) {
	enc, err := blob.NewEncoder(alphabetSize, opts...)
	if err != nil {
		return nil, err
	}

	if err := enc.WriteSlice(symbols); err != nil {
		return nil, err
	}

	return enc.Finish()
}

// Decode reconstructs the symbol sequence from a stream produced by Encode.
//
// Returns:
//   - []int: Decoded symbol sequence
//   - error: Header validation, checksum, model, or truncation error
func Decode(data []byte) ([]int, error) {
	dec, err := blob.NewDecoder(data)
	if err != nil {
		return nil, err
	}

	return dec.Decode()
}
