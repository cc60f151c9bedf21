package arith

// bitReader consumes individual bits MSB-first from a byte slice.
//
// Reads past the end of the slice return zero bits instead of failing: the
// decoder's W-bit window legitimately reaches up to W-2 bits beyond the
// encoder's final flushed bit, and the flush construction guarantees those
// phantom bits are never load-bearing. The reader counts every overdrawn bit
// so the decoder can tell a legitimate tail read from a truncated stream.
type bitReader struct {
	data      []byte
	pos       int // index of the next byte to load
	accum     byte
	nbits     int // valid bits remaining in accum
	overdrawn int // zero-filled bits returned past the end of data
}

func newBitReader(data []byte) *bitReader {
	return &bitReader{data: data}
}

// ReadBit returns the next bit, zero-filling past the end of the input.
func (br *bitReader) ReadBit() byte {
	if br.nbits == 0 {
		if br.pos >= len(br.data) {
			br.overdrawn++
			return 0
		}
		br.accum = br.data[br.pos]
		br.pos++
		br.nbits = 8
	}

	br.nbits--

	return (br.accum >> uint(br.nbits)) & 1
}

// Overdrawn returns the number of zero-filled bits handed out so far.
func (br *bitReader) Overdrawn() int {
	return br.overdrawn
}
