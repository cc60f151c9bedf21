// Package errs defines the sentinel errors shared across the entro packages.
//
// All errors are plain sentinel values so that callers can match them with
// errors.Is even when they are wrapped with additional context.
package errs

import "errors"

// Model errors. These indicate caller bugs in how a frequency model is
// constructed or queried; none of them are recoverable by retrying.
var (
	// ErrAlphabetTooSmall is returned when a model is created with fewer than
	// two symbols. A single-symbol alphabet carries no information to code.
	ErrAlphabetTooSmall = errors.New("alphabet must contain at least two symbols")

	// ErrSymbolOutOfRange is returned when a symbol index lies outside the
	// model's alphabet.
	ErrSymbolOutOfRange = errors.New("symbol out of alphabet range")

	// ErrZeroFrequency is returned when a symbol with a zero count is
	// requested. Zero-probability symbols are unencodable.
	ErrZeroFrequency = errors.New("symbol has zero frequency")

	// ErrInvalidFreqTable is returned when a static frequency table is empty,
	// sums to zero, fails to deserialize, or does not match the configured
	// alphabet size.
	ErrInvalidFreqTable = errors.New("invalid frequency table")
)

// Coder errors.
var (
	// ErrInvalidPrecision is returned when the requested precision is outside
	// the supported [MinPrecisionBits, MaxPrecisionBits] range of the coder.
	ErrInvalidPrecision = errors.New("invalid coder precision bits")

	// ErrInvalidRescaleThreshold is returned when an adaptive rescale
	// threshold is too small to accumulate statistics or exceeds the
	// precision headroom of the coder.
	ErrInvalidRescaleThreshold = errors.New("invalid rescale threshold")

	// ErrTotalTooLarge is returned when the model's total frequency exceeds
	// one quarter of the coder's state range, which would lose resolution
	// during interval narrowing.
	ErrTotalTooLarge = errors.New("model total exceeds coder precision headroom")

	// ErrTruncatedStream is returned when the decoder exhausts its input
	// before producing the requested number of symbols. Arithmetic-coded
	// streams carry no redundancy, so this is fatal.
	ErrTruncatedStream = errors.New("compressed stream truncated")

	// ErrEncoderFinished is returned when symbols are written to an encoder
	// after Finish has been called.
	ErrEncoderFinished = errors.New("encoder already finished")
)

// Container errors, surfaced by the blob and section packages.
var (
	// ErrInvalidHeaderSize is returned when the stream header is not exactly
	// section.HeaderSize bytes.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrInvalidMagicNumber is returned when the header magic number does not
	// identify an entro stream.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidHeaderFlags is returned when the header carries an unknown
	// model type, compression type, or reserved flag bits.
	ErrInvalidHeaderFlags = errors.New("invalid header flags")

	// ErrChecksumMismatch is returned when the payload checksum recorded in
	// the header does not match the decoded payload bytes.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")

	// ErrSymbolCountMismatch is returned when a static table section does not
	// contain exactly the alphabet size recorded in the header.
	ErrSymbolCountMismatch = errors.New("symbol count mismatch")
)
