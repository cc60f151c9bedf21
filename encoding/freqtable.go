// Package encoding provides the section codecs used by the entro container.
//
// The only section with internal structure is the static frequency table,
// serialized as one unsigned varint per symbol in symbol order. Varints keep
// tables over byte alphabets compact (most corpus counts are small) and the
// encoding is byte-order free.
package encoding

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/entro/errs"
	"github.com/arloliu/entro/internal/pool"
)

// FreqTableEncoder serializes a static frequency table into the container's
// table section.
//
// Each count is appended as an unsigned varint; the number of entries is not
// part of the section because the header already records the alphabet size.
type FreqTableEncoder struct {
	buf   *pool.ByteBuffer
	count int
}

// NewFreqTableEncoder creates a new frequency table encoder backed by a
// pooled byte buffer.
func NewFreqTableEncoder() *FreqTableEncoder {
	return &FreqTableEncoder{buf: pool.GetStreamBuffer()}
}

// WriteSlice appends every count in symbol order.
func (e *FreqTableEncoder) WriteSlice(counts []uint64) {
	// Worst case 10 bytes per varint; Grow once for the whole slice.
	e.buf.Grow(len(counts) * binary.MaxVarintLen64)

	for _, count := range counts {
		e.buf.B = binary.AppendUvarint(e.buf.B, count)
	}
	e.count += len(counts)
}

// Count returns the number of counts written so far.
func (e *FreqTableEncoder) Count() int {
	return e.count
}

// Finish returns the serialized section and releases the internal buffer back
// to the pool. The encoder cannot be reused afterwards.
func (e *FreqTableEncoder) Finish() []byte {
	data := make([]byte, e.buf.Len())
	copy(data, e.buf.Bytes())

	pool.PutStreamBuffer(e.buf)
	e.buf = nil

	return data
}

// DecodeFreqTable parses a table section into exactly alphabetSize counts.
//
// Returns errs.ErrSymbolCountMismatch when the section holds fewer or more
// entries than the header's alphabet size, and errs.ErrInvalidFreqTable when
// a varint is malformed.
func DecodeFreqTable(data []byte, alphabetSize int) ([]uint64, error) {
	counts := make([]uint64, 0, alphabetSize)

	for len(data) > 0 {
		if len(counts) == alphabetSize {
			return nil, fmt.Errorf("%w: trailing bytes after %d counts", errs.ErrSymbolCountMismatch, alphabetSize)
		}

		count, n := binary.Uvarint(data)
		if n <= 0 {
			return nil, fmt.Errorf("%w: malformed varint at entry %d", errs.ErrInvalidFreqTable, len(counts))
		}

		counts = append(counts, count)
		data = data[n:]
	}

	if len(counts) != alphabetSize {
		return nil, fmt.Errorf("%w: got %d counts, want %d", errs.ErrSymbolCountMismatch, len(counts), alphabetSize)
	}

	return counts, nil
}
