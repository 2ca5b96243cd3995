// Package encoding compresses response bodies according to Accept-Encoding
package encoding

import (
	"fmt"
	"strconv"
	"strings"
)

// Encoder compresses a complete body
type Encoder interface {
	Encode([]byte) ([]byte, error)
}

// Decoder reverses an Encoder
type Decoder interface {
	Decode([]byte) ([]byte, error)
}

// EncoderAndDecoder is implemented by every codec in this package
type EncoderAndDecoder interface {
	Encoder
	Decoder
}

// Preferred lists supported encodings, best first
var Preferred = []string{"br", "zstd", "gzip", "deflate"}

// ForName returns the codec for a Content-Encoding token
func ForName(name string) (EncoderAndDecoder, error) {
	switch name {
	case "gzip":
		return GzipEncoderDecoder{}, nil
	case "br":
		return BrotliEncoderDecoder{}, nil
	case "deflate":
		return DeflateEncoderDecoder{}, nil
	case "zstd":
		return ZstdEncoderDecoder{}, nil
	default:
		return nil, fmt.Errorf("unknown encoding: %s", name)
	}
}

// Negotiate picks the best supported encoding the client accepts.
// Returns "" when identity should be used.
func Negotiate(acceptEncoding string) string {
	accepted := parseAcceptEncoding(acceptEncoding)
	if len(accepted) == 0 {
		return ""
	}

	for _, name := range Preferred {
		q, ok := accepted[name]
		if !ok {
			q, ok = accepted["*"]
		}
		if ok && q > 0 {
			return name
		}
	}
	return ""
}

// EncodeBest compresses data with the negotiated encoding, but only when
// that actually shrinks it. Returns the body to send and its encoding ("" = identity).
func EncodeBest(data []byte, acceptEncoding string) ([]byte, string, error) {
	name := Negotiate(acceptEncoding)
	if name == "" {
		return data, "", nil
	}

	codec, err := ForName(name)
	if err != nil {
		return nil, "", err
	}

	encoded, err := codec.Encode(data)
	if err != nil {
		return nil, "", fmt.Errorf("encode %s: %w", name, err)
	}
	if len(encoded) >= len(data) {
		return data, "", nil
	}
	return encoded, name, nil
}

// parseAcceptEncoding maps each coding to its q-value
func parseAcceptEncoding(header string) map[string]float64 {
	accepted := make(map[string]float64)
	for _, chunk := range strings.Split(header, ",") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}

		name, params, _ := strings.Cut(chunk, ";")
		name = strings.ToLower(strings.TrimSpace(name))
		q := 1.0

		params = strings.TrimSpace(params)
		if value, ok := strings.CutPrefix(params, "q="); ok {
			if parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
				q = parsed
			}
		}
		accepted[name] = q
	}
	return accepted
}
