package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBufferBasics(t *testing.T) {
	bb := NewByteBuffer(64)
	require.Zero(t, bb.Len())
	require.Equal(t, 64, bb.Cap())

	bb.MustWrite([]byte{1, 2, 3})
	require.Equal(t, 3, bb.Len())
	require.Equal(t, []byte{1, 2, 3}, bb.Bytes())

	require.NoError(t, bb.WriteByte(4))
	require.Equal(t, []byte{1, 2, 3, 4}, bb.Bytes())

	bb.Reset()
	require.Zero(t, bb.Len())
	require.Equal(t, 64, bb.Cap())
}

func TestByteBufferWrite(t *testing.T) {
	bb := NewByteBuffer(8)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)

	var sink bytes.Buffer
	written, err := bb.WriteTo(&sink)
	require.NoError(t, err)
	require.Equal(t, int64(5), written)
	require.Equal(t, "hello", sink.String())
}

func TestByteBufferGrow(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte{1, 2, 3})

	bb.Grow(1024)
	require.GreaterOrEqual(t, bb.Cap()-bb.Len(), 1024)
	require.Equal(t, []byte{1, 2, 3}, bb.Bytes())

	// Sufficient capacity leaves the buffer untouched.
	capBefore := bb.Cap()
	bb.Grow(1)
	require.Equal(t, capBefore, bb.Cap())
}

func TestByteBufferPool(t *testing.T) {
	p := NewByteBufferPool(128, 1024)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("payload"))
	p.Put(bb)

	// Reused buffers come back empty.
	bb = p.Get()
	require.Zero(t, bb.Len())

	// Nil put is a no-op.
	p.Put(nil)

	// Oversized buffers are discarded instead of pooled.
	big := NewByteBuffer(4096)
	big.MustWrite(make([]byte, 2048))
	p.Put(big)
}

func TestStreamBufferPool(t *testing.T) {
	bb := GetStreamBuffer()
	require.NotNil(t, bb)
	require.Zero(t, bb.Len())

	bb.MustWrite([]byte{0xAA})
	PutStreamBuffer(bb)

	bb = GetStreamBuffer()
	require.Zero(t, bb.Len())
	PutStreamBuffer(bb)
}
