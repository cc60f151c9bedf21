package arith

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/entro/errs"
	"github.com/arloliu/entro/model"
)

func randomSymbols(rng *rand.Rand, count, alphabetSize int) []int {
	symbols := make([]int, count)
	for i := range symbols {
		symbols[i] = rng.Intn(alphabetSize)
	}

	return symbols
}

// skewedSymbols draws from an alphabet where symbol 0 carries most of the
// probability mass, the workload adaptive models exist for.
func skewedSymbols(rng *rand.Rand, count, alphabetSize int) []int {
	symbols := make([]int, count)
	for i := range symbols {
		if rng.Float64() < 0.9 {
			symbols[i] = 0
		} else {
			symbols[i] = 1 + rng.Intn(alphabetSize-1)
		}
	}

	return symbols
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	counts := []uint64{3, 1, 4, 1, 5}
	symbols := randomSymbols(rng, 500, len(counts))

	for _, bits := range []int{9, 12, 16, 24, 32} {
		t.Run(fmt.Sprintf("precision_%d", bits), func(t *testing.T) {
			m, err := model.NewStaticModel(counts)
			require.NoError(t, err)

			data, err := Encode(symbols, m, WithPrecisionBits(bits))
			require.NoError(t, err)
			require.NotEmpty(t, data)

			decoded, err := Decode(data, len(symbols), m, WithPrecisionBits(bits))
			require.NoError(t, err)
			require.Equal(t, symbols, decoded)
		})
	}
}

func TestEncodeDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	m, err := model.NewStaticModel([]uint64{10, 20, 30, 40})
	require.NoError(t, err)

	symbols := randomSymbols(rng, 300, m.AlphabetSize())

	first, err := Encode(symbols, m)
	require.NoError(t, err)
	second, err := Encode(symbols, m)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestEncodeDecodeSkewedTable(t *testing.T) {
	m, err := model.NewStaticModel([]uint64{1, 1, 2})
	require.NoError(t, err)

	symbols := []int{0, 1, 2, 2}

	data, err := Encode(symbols, m, WithPrecisionBits(16))
	require.NoError(t, err)

	decoded, err := Decode(data, len(symbols), m, WithPrecisionBits(16))
	require.NoError(t, err)
	require.Equal(t, symbols, decoded)
}

func TestEncodeEmptySequence(t *testing.T) {
	m, err := model.NewUniformModel(4)
	require.NoError(t, err)

	data, err := Encode(nil, m)
	require.NoError(t, err)
	// The flush alone still emits two bits, packed into one byte.
	require.Len(t, data, 1)

	decoded, err := Decode(data, 0, m)
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func TestDecodeTruncatedStream(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	m, err := model.NewUniformModel(256)
	require.NoError(t, err)

	symbols := randomSymbols(rng, 1000, 256)

	data, err := Encode(symbols, m)
	require.NoError(t, err)
	require.Greater(t, len(data), 100)

	dec, err := NewDecoder(data[:10], m)
	require.NoError(t, err)

	_, err = dec.DecodeSlice(len(symbols))
	require.ErrorIs(t, err, errs.ErrTruncatedStream)
}

func TestDecodeEmptyInput(t *testing.T) {
	// Even a zero-symbol session flushes at least one byte, so empty input
	// can never be a valid stream when symbols are expected. The priming
	// window must not pass its all-phantom bits off as data.
	m, err := model.NewStaticModel([]uint64{3, 1})
	require.NoError(t, err)

	_, err = Decode(nil, 1, m)
	require.ErrorIs(t, err, errs.ErrTruncatedStream)

	_, err = Decode([]byte{}, 5, m)
	require.ErrorIs(t, err, errs.ErrTruncatedStream)

	// Requesting zero symbols from empty input reads nothing and is fine.
	decoded, err := Decode(nil, 0, m)
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func TestAdaptiveRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	symbols := skewedSymbols(rng, 2000, 8)

	encModel, err := model.NewAdaptiveModel(8, 0)
	require.NoError(t, err)

	data, err := Encode(symbols, encModel)
	require.NoError(t, err)

	decModel, err := model.NewAdaptiveModel(8, 0)
	require.NoError(t, err)

	decoded, err := Decode(data, len(symbols), decModel)
	require.NoError(t, err)
	require.Equal(t, symbols, decoded)
}

func TestAdaptiveBeatsUniformOnSkewedInput(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	symbols := skewedSymbols(rng, 4000, 16)

	adaptive, err := model.NewAdaptiveModel(16, 0)
	require.NoError(t, err)
	adaptiveData, err := Encode(symbols, adaptive)
	require.NoError(t, err)

	uniform, err := model.NewUniformModel(16)
	require.NoError(t, err)
	uniformData, err := Encode(symbols, uniform)
	require.NoError(t, err)

	require.Less(t, len(adaptiveData), len(uniformData))
}

func TestStaticOutputNearEntropy(t *testing.T) {
	counts := []uint64{900, 100}
	m, err := model.NewStaticModel(counts)
	require.NoError(t, err)

	symbols := make([]int, 1000)
	for i := range symbols {
		if i%10 == 0 {
			symbols[i] = 1
		}
	}

	data, err := Encode(symbols, m)
	require.NoError(t, err)

	// Optimal cost of the sequence against its own frequency table, plus a
	// constant number of flush and padding bits.
	total := float64(1000)
	optimalBits := 900*math.Log2(total/900) + 100*math.Log2(total/100)
	require.LessOrEqual(t, float64(len(data)*8), optimalBits+64)

	decoded, err := Decode(data, len(symbols), m)
	require.NoError(t, err)
	require.Equal(t, symbols, decoded)
}

func TestDecodeCorruptedLeadingByte(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	m, err := model.NewUniformModel(256)
	require.NoError(t, err)

	symbols := randomSymbols(rng, 64, 256)

	data, err := Encode(symbols, m)
	require.NoError(t, err)

	// The first decoded symbol is driven by the leading bits of the stream,
	// so flipping any of them must change the output or surface an error.
	for bit := 0; bit < 8; bit++ {
		corrupted := make([]byte, len(data))
		copy(corrupted, data)
		corrupted[0] ^= 1 << uint(7-bit)

		decoded, err := Decode(corrupted, len(symbols), m)
		if err == nil {
			require.NotEqual(t, symbols, decoded, "flipped bit %d went unnoticed", bit)
		}
	}
}

func TestNewEncoderValidation(t *testing.T) {
	t.Run("precision out of range", func(t *testing.T) {
		m, err := model.NewUniformModel(4)
		require.NoError(t, err)

		_, err = NewEncoder(m, WithPrecisionBits(8))
		require.ErrorIs(t, err, errs.ErrInvalidPrecision)

		_, err = NewEncoder(m, WithPrecisionBits(33))
		require.ErrorIs(t, err, errs.ErrInvalidPrecision)
	})

	t.Run("total exceeds headroom", func(t *testing.T) {
		// quarter is 128 at 9-bit state, far below a 256-symbol total.
		m, err := model.NewUniformModel(256)
		require.NoError(t, err)

		_, err = NewEncoder(m, WithPrecisionBits(9))
		require.ErrorIs(t, err, errs.ErrTotalTooLarge)
	})

	t.Run("rescale threshold exceeds headroom", func(t *testing.T) {
		m, err := model.NewAdaptiveModel(4, 0)
		require.NoError(t, err)

		_, err = NewEncoder(m, WithPrecisionBits(9))
		require.ErrorIs(t, err, errs.ErrInvalidRescaleThreshold)
	})
}

func TestAdaptiveLowPrecision(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	symbols := skewedSymbols(rng, 500, 4)

	// A threshold within the 9-bit quarter bound keeps the adaptive model
	// usable at the lowest supported precision.
	encModel, err := model.NewAdaptiveModel(4, 100)
	require.NoError(t, err)

	data, err := Encode(symbols, encModel, WithPrecisionBits(9))
	require.NoError(t, err)

	decModel, err := model.NewAdaptiveModel(4, 100)
	require.NoError(t, err)

	decoded, err := Decode(data, len(symbols), decModel, WithPrecisionBits(9))
	require.NoError(t, err)
	require.Equal(t, symbols, decoded)
}

func TestEncoderFinished(t *testing.T) {
	m, err := model.NewUniformModel(4)
	require.NoError(t, err)

	enc, err := NewEncoder(m)
	require.NoError(t, err)
	require.NoError(t, enc.EncodeSlice([]int{0, 1, 2, 3}))

	_, err = enc.Finish()
	require.NoError(t, err)

	require.ErrorIs(t, enc.EncodeSymbol(0), errs.ErrEncoderFinished)

	_, err = enc.Finish()
	require.ErrorIs(t, err, errs.ErrEncoderFinished)
}

func BenchmarkEncodeStatic(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	m, err := model.NewStaticModel([]uint64{900, 50, 25, 15, 10})
	if err != nil {
		b.Fatal(err)
	}
	symbols := randomSymbols(rng, 10000, m.AlphabetSize())

	for i := 0; i < b.N; i++ {
		if _, err := Encode(symbols, m); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeStatic(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	m, err := model.NewStaticModel([]uint64{900, 50, 25, 15, 10})
	if err != nil {
		b.Fatal(err)
	}
	symbols := randomSymbols(rng, 10000, m.AlphabetSize())

	data, err := Encode(symbols, m)
	if err != nil {
		b.Fatal(err)
	}

	for i := 0; i < b.N; i++ {
		if _, err := Decode(data, len(symbols), m); err != nil {
			b.Fatal(err)
		}
	}
}

func TestEncodeSymbolOutOfRange(t *testing.T) {
	m, err := model.NewStaticModel([]uint64{1, 2, 3})
	require.NoError(t, err)

	enc, err := NewEncoder(m)
	require.NoError(t, err)

	require.ErrorIs(t, enc.EncodeSymbol(-1), errs.ErrSymbolOutOfRange)
	require.ErrorIs(t, enc.EncodeSymbol(3), errs.ErrSymbolOutOfRange)
}

func TestEncodeZeroFrequencySymbol(t *testing.T) {
	m, err := model.NewStaticModel([]uint64{5, 0, 5})
	require.NoError(t, err)

	enc, err := NewEncoder(m)
	require.NoError(t, err)

	require.NoError(t, enc.EncodeSymbol(0))
	require.ErrorIs(t, enc.EncodeSymbol(1), errs.ErrZeroFrequency)
}
