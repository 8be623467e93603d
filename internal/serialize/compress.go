package serialize

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// maxDecodedSize bounds a decompressed ticket.
const maxDecodedSize = 64 << 20

// Compressor wraps a ZStandard encoder. EncodeAll is goroutine-safe, so
// one Compressor serves every request. Close it when done.
type Compressor struct {
	encoder *zstd.Encoder
}

// NewCompressor creates a Compressor at the default zstd level.
func NewCompressor() (*Compressor, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	return &Compressor{encoder: encoder}, nil
}

// Compress returns data as a single zstd frame. Empty input yields empty output.
func (c *Compressor) Compress(data []byte) []byte {
	if len(data) == 0 {
		return []byte{}
	}
	return c.encoder.EncodeAll(data, make([]byte, 0, len(data)/2))
}

// Close releases the encoder.
func (c *Compressor) Close() error {
	return c.encoder.Close()
}

// Decompressor wraps a ZStandard decoder. DecodeAll is goroutine-safe.
type Decompressor struct {
	decoder *zstd.Decoder
}

// NewDecompressor creates a Decompressor that refuses frames decoding past 64 MiB.
func NewDecompressor() (*Decompressor, error) {
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxDecodedSize))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &Decompressor{decoder: decoder}, nil
}

// Decompress decodes data produced by Compressor.Compress.
func (d *Decompressor) Decompress(compressed []byte) ([]byte, error) {
	if len(compressed) == 0 {
		return []byte{}, nil
	}
	out, err := d.decoder.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}
	return out, nil
}

// Close releases the decoder.
func (d *Decompressor) Close() {
	d.decoder.Close()
}
