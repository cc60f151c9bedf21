// Package blob implements the thin container around the arithmetic coding
// core: a self-describing stream that records the model configuration and
// symbol count the headerless core leaves to the caller.
//
// A stream consists of a fixed header (see the section package), an optional
// compressed frequency table section for static-table models, and the
// arithmetic payload. The header carries an xxHash64 checksum over everything
// after it, so payload corruption is reported as errs.ErrChecksumMismatch
// instead of silently decoding garbage.
//
// Encoding:
//
//	enc, _ := blob.NewEncoder(256, blob.WithAdaptiveModel(0))
//	_ = enc.WriteSlice(symbols)
//	stream, _ := enc.Finish()
//
// Decoding:
//
//	dec, _ := blob.NewDecoder(stream)
//	symbols, _ := dec.Decode()
//
// The container cannot detect a caller that decodes with a different library
// version producing different model semantics; the header pins mode, table,
// precision and threshold, which covers every configuration knob this module
// exposes.
package blob
