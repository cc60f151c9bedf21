package arith

import (
	"github.com/arloliu/entro/internal/pool"
)

// bitWriter accumulates individual bits and packs them MSB-first into a
// pooled byte buffer.
//
// The packing order is the single convention shared with bitReader; encode
// and decode must agree on it or every stream is garbage.
type bitWriter struct {
	buf   *pool.ByteBuffer
	accum byte
	nbits int
}

func newBitWriter(buf *pool.ByteBuffer) *bitWriter {
	return &bitWriter{buf: buf}
}

// WriteBit appends a single bit.
func (bw *bitWriter) WriteBit(bit byte) {
	bw.accum = (bw.accum << 1) | (bit & 1)
	bw.nbits++

	if bw.nbits == 8 {
		bw.buf.MustWrite([]byte{bw.accum})
		bw.accum = 0
		bw.nbits = 0
	}
}

// WriteBits appends n copies of bit. Used for the pending-bit flush, where a
// settled leading bit is followed by a run of its complement.
func (bw *bitWriter) WriteBits(bit byte, n int) {
	for i := 0; i < n; i++ {
		bw.WriteBit(bit)
	}
}

// Flush pads the final partial byte with zero bits and writes it out.
func (bw *bitWriter) Flush() {
	if bw.nbits > 0 {
		bw.accum <<= uint(8 - bw.nbits)
		bw.buf.MustWrite([]byte{bw.accum})
		bw.accum = 0
		bw.nbits = 0
	}
}
