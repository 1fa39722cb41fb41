package bundle

import (
	"fmt"

	"github.com/dcdunkan/tgfileid/compress"
	"github.com/dcdunkan/tgfileid/format"
	"github.com/dcdunkan/tgfileid/internal/options"
)

const (
	// DefaultCompression is the payload compression used when none is configured.
	DefaultCompression = format.CompressionZstd

	// averageEntrySize is the typical size of a payload entry, used to presize the
	// payload buffer from the entry capacity hint.
	averageEntrySize = 72
)

// EncoderConfig holds the configuration of an Encoder.
type EncoderConfig struct {
	header        *Header
	codec         compress.Codec
	entryCapacity int
}

// NewEncoderConfig creates a configuration with the default compression.
func NewEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		header: NewHeader(DefaultCompression),
	}
}

// setCompression sets the payload compression type.
func (c *EncoderConfig) setCompression(comp format.CompressionType) error {
	if _, ok := validCompressions[comp]; !ok {
		return fmt.Errorf("invalid bundle compression: %v", comp)
	}
	c.header.Compression = uint8(comp)

	return nil
}

// setCodec initializes the payload codec from the header configuration.
func (c *EncoderConfig) setCodec() error {
	codec, err := compress.CreateCodec(c.header.GetCompression(), "payload")
	if err != nil {
		return fmt.Errorf("failed to create payload codec: %w", err)
	}
	c.codec = codec

	return nil
}

// Compression returns the configured payload compression.
func (c *EncoderConfig) Compression() format.CompressionType {
	return c.header.GetCompression()
}

// EncoderOption is a functional option for configuring Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithCompression configures the payload compression.
// Available compression types: format.CompressionZstd, format.CompressionS2,
// format.CompressionLZ4, format.CompressionZeroRLE, format.CompressionNone.
// Default is format.CompressionZstd.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(cfg *EncoderConfig) error {
		return cfg.setCompression(comp)
	})
}

// WithEntryCapacity presizes the encoder for about n entries.
func WithEntryCapacity(n int) EncoderOption {
	return options.NoError(func(cfg *EncoderConfig) {
		if n > 0 {
			cfg.entryCapacity = n
		}
	})
}
