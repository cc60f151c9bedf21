package entro_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/entro"
	"github.com/arloliu/entro/format"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	symbols := make([]int, 1000)
	for i := range symbols {
		symbols[i] = rng.Intn(26)
	}

	tests := []struct {
		name string
		opts []entro.EncoderOption
	}{
		{name: "default uniform"},
		{name: "explicit uniform", opts: []entro.EncoderOption{entro.WithUniformModel()}},
		{name: "adaptive", opts: []entro.EncoderOption{entro.WithAdaptiveModel(0)}},
		{name: "low precision", opts: []entro.EncoderOption{entro.WithPrecisionBits(9)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream, err := entro.Encode(symbols, 26, tt.opts...)
			require.NoError(t, err)

			decoded, err := entro.Decode(stream)
			require.NoError(t, err)
			require.Equal(t, symbols, decoded)
		})
	}
}

func TestEncodeDecodeStaticTable(t *testing.T) {
	counts := []uint64{60, 25, 10, 5}
	symbols := []int{0, 0, 0, 1, 0, 2, 1, 0, 0, 3, 1, 0}

	stream, err := entro.Encode(symbols, 4,
		entro.WithStaticTable(counts),
		entro.WithTableCompression(format.CompressionZstd),
	)
	require.NoError(t, err)

	decoded, err := entro.Decode(stream)
	require.NoError(t, err)
	require.Equal(t, symbols, decoded)
}

func TestEncoderSession(t *testing.T) {
	enc, err := entro.NewEncoder(4, entro.WithAdaptiveModel(0))
	require.NoError(t, err)

	symbols := []int{0, 1, 2, 3, 2, 1, 0, 0}
	require.NoError(t, enc.WriteSlice(symbols))

	stream, err := enc.Finish()
	require.NoError(t, err)

	dec, err := entro.NewDecoder(stream)
	require.NoError(t, err)
	require.Equal(t, format.ModelAdaptive, dec.ModelType())
	require.Equal(t, uint64(len(symbols)), dec.SymbolCount())

	decoded, err := dec.Decode()
	require.NoError(t, err)
	require.Equal(t, symbols, decoded)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := entro.Decode([]byte("definitely not a coded stream, not even close"))
	require.Error(t, err)
}
