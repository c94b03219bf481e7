package trace

import (
	"fmt"

	"github.com/arloliu/hilbert/compress"
	"github.com/arloliu/hilbert/endian"
	"github.com/arloliu/hilbert/format"
	"github.com/arloliu/hilbert/internal/options"
)

// EncoderConfig holds the header under construction and the collaborators it selects.
type EncoderConfig struct {
	header *Header
	codec  compress.Codec
	engine endian.EndianEngine
}

func newEncoderConfig(dims, bits int) *EncoderConfig {
	header := NewHeader(dims, bits)
	codec, _ := compress.GetCodec(header.Flag.Compression())

	return &EncoderConfig{
		header: header,
		codec:  codec,
		engine: header.Flag.Engine(),
	}
}

func (c *EncoderConfig) setCompression(compression format.CompressionType) error {
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return fmt.Errorf("invalid payload compression: %w", err)
	}
	c.header.Flag.SetCompression(compression)
	c.codec = codec

	return nil
}

func (c *EncoderConfig) setEndian(bigEndian bool) {
	if bigEndian {
		c.header.Flag.WithBigEndian()
	} else {
		c.header.Flag.WithLittleEndian()
	}
	c.engine = c.header.Flag.Engine()
}

// EncoderOption represents a functional option for configuring a trace Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithCompression sets the payload compression. The default is format.CompressionNone.
func WithCompression(compression format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setCompression(compression)
	})
}

// WithLittleEndian writes multi-byte fields little-endian. This is the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setEndian(false)
	})
}

// WithBigEndian writes multi-byte fields big-endian.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setEndian(true)
	})
}
