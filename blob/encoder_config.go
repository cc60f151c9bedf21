package blob

import (
	"fmt"
	"math"

	"github.com/arloliu/entro/arith"
	"github.com/arloliu/entro/errs"
	"github.com/arloliu/entro/format"
	"github.com/arloliu/entro/internal/options"
	"github.com/arloliu/entro/model"
)

// EncoderConfig handles the stream encoder configuration assembled from
// functional options before the model and coder session are built.
type EncoderConfig struct {
	alphabetSize     int
	modelType        format.ModelType
	counts           []uint64
	rescaleThreshold uint64
	precisionBits    int
	tableCompression format.CompressionType
	bigEndian        bool
}

// EncoderOption represents a functional option for configuring the EncoderConfig.
// This is a type alias for the generic Option interface specialized for EncoderConfig.
type EncoderOption = options.Option[*EncoderConfig]

// WithUniformModel selects the static uniform model. This is the default.
func WithUniformModel() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.modelType = format.ModelStaticUniform
		c.counts = nil
	})
}

// WithStaticTable selects a static model over the given frequency table.
// The table length must equal the encoder's alphabet size; the table is
// serialized into the stream so decoders rebuild the identical model.
func WithStaticTable(counts []uint64) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if len(counts) == 0 {
			return errs.ErrInvalidFreqTable
		}
		c.modelType = format.ModelStaticTable
		c.counts = counts

		return nil
	})
}

// WithAdaptiveModel selects the adaptive model with the given rescale
// threshold; 0 selects model.DefaultRescaleThreshold. The threshold is part
// of the coding contract and is recorded in the stream header.
func WithAdaptiveModel(rescaleThreshold uint64) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if rescaleThreshold > math.MaxUint32 {
			return errs.ErrInvalidRescaleThreshold
		}
		c.modelType = format.ModelAdaptive
		c.rescaleThreshold = rescaleThreshold

		return nil
	})
}

// WithPrecisionBits sets the coder state width W. The default is
// arith.DefaultPrecisionBits.
func WithPrecisionBits(bits int) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if bits < arith.MinPrecisionBits || bits > arith.MaxPrecisionBits {
			return fmt.Errorf("%w: %d", errs.ErrInvalidPrecision, bits)
		}
		c.precisionBits = bits

		return nil
	})
}

// WithTableCompression sets the compression applied to the frequency table
// section. It only affects streams using a static table.
func WithTableCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		switch comp {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			c.tableCompression = comp
			return nil
		default:
			return fmt.Errorf("invalid table compression: %s", comp)
		}
	})
}

// WithLittleEndian sets little-endian byte order for header fields.
// This is the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.bigEndian = false
	})
}

// WithBigEndian sets big-endian byte order for header fields.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.bigEndian = true
	})
}

func newEncoderConfig(alphabetSize int, opts ...EncoderOption) (*EncoderConfig, error) {
	cfg := &EncoderConfig{
		alphabetSize:     alphabetSize,
		modelType:        format.ModelStaticUniform,
		precisionBits:    arith.DefaultPrecisionBits,
		tableCompression: format.CompressionNone,
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if cfg.modelType == format.ModelStaticTable && len(cfg.counts) != alphabetSize {
		return nil, fmt.Errorf("%w: table has %d entries, alphabet size is %d",
			errs.ErrInvalidFreqTable, len(cfg.counts), alphabetSize)
	}

	return cfg, nil
}

// buildModel constructs the frequency model described by the configuration.
func (c *EncoderConfig) buildModel() (model.Model, error) {
	switch c.modelType {
	case format.ModelStaticUniform:
		return model.NewUniformModel(c.alphabetSize)
	case format.ModelStaticTable:
		return model.NewStaticModel(c.counts)
	case format.ModelAdaptive:
		if c.rescaleThreshold == 0 {
			c.rescaleThreshold = model.DefaultRescaleThreshold
		}

		return model.NewAdaptiveModel(c.alphabetSize, c.rescaleThreshold)
	default:
		return nil, errs.ErrInvalidHeaderFlags
	}
}
