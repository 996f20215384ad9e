package frame

import (
	"fmt"
)

// NewDecoder returns the Decoder for f. Formats without a decoder return an
// error wrapping ErrUnsupportedFormat.
func NewDecoder(f Format) (Decoder, error) {
	var decoder decoderFunc

	switch f {
	case FormatI420:
		decoder = decodeI420
	case FormatYV12:
		decoder = decodeYV12
	case FormatNV12:
		decoder = decodeNV12
	case FormatNV21:
		decoder = decodeNV21
	case FormatI444:
		decoder = decodeI444
	case FormatRGB24:
		decoder = decodeRGB24
	default:
		return nil, fmt.Errorf("%w: %s is not supported", ErrUnsupportedFormat, f)
	}

	return decoder, nil
}
