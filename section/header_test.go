package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/entro/errs"
	"github.com/arloliu/entro/format"
)

func TestStreamHeaderRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		bigEndian bool
	}{
		{name: "little endian"},
		{name: "big endian", bigEndian: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewStreamHeader()
			if tt.bigEndian {
				h.Flag.WithBigEndian()
			}
			h.Flag.SetModelType(format.ModelStaticTable)
			h.Flag.SetCompressionType(format.CompressionS2)
			h.AlphabetSize = 256
			h.TableSize = 137
			h.PrecisionBits = 16
			h.SymbolCount = 1 << 40
			h.Checksum = 0xDEADBEEFCAFEF00D

			data := h.Bytes()
			require.Len(t, data, HeaderSize)

			var parsed StreamHeader
			require.NoError(t, parsed.Parse(data))
			require.Equal(t, *h, parsed)
			require.Equal(t, tt.bigEndian, parsed.Flag.IsBigEndian())
		})
	}
}

func TestStreamHeaderAdaptiveFields(t *testing.T) {
	h := NewStreamHeader()
	h.Flag.SetModelType(format.ModelAdaptive)
	h.AlphabetSize = 8
	h.RescaleThreshold = 8192
	h.PrecisionBits = 32
	h.SymbolCount = 42

	var parsed StreamHeader
	require.NoError(t, parsed.Parse(h.Bytes()))
	require.Equal(t, format.ModelAdaptive, parsed.Flag.GetModelType())
	require.Equal(t, uint32(8192), parsed.RescaleThreshold)
	require.Zero(t, parsed.TableSize)
}

func TestStreamHeaderParseErrors(t *testing.T) {
	valid := func() []byte {
		h := NewStreamHeader()
		h.AlphabetSize = 4
		h.PrecisionBits = 32
		h.SymbolCount = 10

		return h.Bytes()
	}

	t.Run("wrong size", func(t *testing.T) {
		var h StreamHeader
		require.ErrorIs(t, h.Parse(valid()[:HeaderSize-1]), errs.ErrInvalidHeaderSize)
		require.ErrorIs(t, h.Parse(append(valid(), 0)), errs.ErrInvalidHeaderSize)
		require.ErrorIs(t, h.Parse(nil), errs.ErrInvalidHeaderSize)
	})

	t.Run("bad magic", func(t *testing.T) {
		data := valid()
		data[1] ^= 0x80

		var h StreamHeader
		require.ErrorIs(t, h.Parse(data), errs.ErrInvalidMagicNumber)
	})

	t.Run("reserved option bits", func(t *testing.T) {
		data := valid()
		data[0] |= 0x02

		var h StreamHeader
		require.ErrorIs(t, h.Parse(data), errs.ErrInvalidHeaderFlags)
	})

	t.Run("unknown model type", func(t *testing.T) {
		data := valid()
		data[2] = 0x7F

		var h StreamHeader
		require.ErrorIs(t, h.Parse(data), errs.ErrInvalidHeaderFlags)
	})

	t.Run("unknown compression type", func(t *testing.T) {
		data := valid()
		data[3] = 0x7F

		var h StreamHeader
		require.ErrorIs(t, h.Parse(data), errs.ErrInvalidHeaderFlags)
	})

	t.Run("non-zero reserved bytes", func(t *testing.T) {
		for offset := 17; offset < 24; offset++ {
			data := valid()
			data[offset] = 1

			var h StreamHeader
			require.ErrorIs(t, h.Parse(data), errs.ErrInvalidHeaderFlags, "offset %d", offset)
		}
	})
}

func TestStreamFlagDefaults(t *testing.T) {
	flag := NewStreamFlag()

	require.True(t, flag.IsLittleEndian())
	require.False(t, flag.IsBigEndian())
	require.Equal(t, uint16(MagicStreamV1Opt), flag.GetMagicNumber())
	require.Equal(t, format.ModelStaticUniform, flag.GetModelType())
	require.Equal(t, format.CompressionNone, flag.GetCompressionType())
	require.NoError(t, flag.Validate())
}

func TestStreamFlagEndiannessToggle(t *testing.T) {
	flag := NewStreamFlag()

	flag.WithBigEndian()
	require.True(t, flag.IsBigEndian())
	require.Equal(t, uint16(MagicStreamV1Opt), flag.GetMagicNumber())

	flag.WithLittleEndian()
	require.True(t, flag.IsLittleEndian())
	require.NoError(t, flag.Validate())
}
