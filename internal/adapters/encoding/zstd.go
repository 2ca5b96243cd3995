package encoding

import (
	"github.com/klauspost/compress/zstd"
)

// Shared codecs; EncodeAll and DecodeAll are safe for concurrent use
var (
	zstdEncoder, _ = zstd.NewWriter(nil)
	zstdDecoder, _ = zstd.NewReader(nil)
)

// ZstdEncoderDecoder implements the EncoderAndDecoder interface using Zstandard.
type ZstdEncoderDecoder struct{}

// Encode compresses the input data using Zstandard.
func (z ZstdEncoderDecoder) Encode(data []byte) ([]byte, error) {
	return zstdEncoder.EncodeAll(data, make([]byte, 0, len(data))), nil
}

// Decode decompresses the input data using Zstandard.
func (z ZstdEncoderDecoder) Decode(data []byte) ([]byte, error) {
	return zstdDecoder.DecodeAll(data, nil)
}
