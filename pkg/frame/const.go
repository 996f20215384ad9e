package frame

import (
	"fmt"
	"strings"
)

// Format is the name of a raw frame layout, usually its fourcc.
type Format string

const (
	// YUV 4:2:0 Formats

	// FormatI420 https://www.fourcc.org/pixel-format/yuv-i420/
	FormatI420 Format = "I420"
	// FormatYV12 https://www.fourcc.org/pixel-format/yuv-yv12/
	FormatYV12 Format = "YV12"
	// FormatNV12 https://www.fourcc.org/pixel-format/yuv-nv12/
	FormatNV12 Format = "NV12"
	// FormatNV21 https://www.fourcc.org/pixel-format/yuv-nv21/
	FormatNV21 Format = "NV21"

	// FormatI444 is a YUV format without sub-sampling. Each channel is a full
	// width*height plane, stored Y, U, V.
	FormatI444 Format = "I444"

	// RGB Formats

	// FormatRGB24 is packed R, G, B with 3 bytes per pixel
	FormatRGB24 Format = "RGB24"
)

// YUV aliases

// FormatYU12 is an alias of FormatI420
const FormatYU12 = FormatI420

// numbered follows the codes the yuv dump tool has always accepted on its
// command line.
var numbered = map[string]Format{
	"1": FormatYU12,
	"2": FormatYV12,
	"3": FormatNV12,
	"4": FormatNV21,
}

// ParseFormat resolves a format name, case-insensitively. Numeric codes 1 to 4
// map to YU12, YV12, NV12 and NV21.
func ParseFormat(s string) (Format, error) {
	if f, ok := numbered[s]; ok {
		return f, nil
	}

	switch f := Format(strings.ToUpper(s)); f {
	case FormatI420, FormatYV12, FormatNV12, FormatNV21, FormatI444, FormatRGB24:
		return f, nil
	case "YU12":
		return FormatYU12, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// ChromaOrder tells which chroma channel comes first in memory.
type ChromaOrder int

const (
	// OrderNone is used by formats without chroma samples
	OrderNone ChromaOrder = iota
	// OrderUV stores U before V, as planes or within every pair
	OrderUV
	// OrderVU stores V before U
	OrderVU
)

// ChromaLayout describes how a format stores its chroma samples.
type ChromaLayout struct {
	Order ChromaOrder
	// SemiPlanar is true when U and V share one interleaved plane.
	SemiPlanar bool
	// SubsampleX and SubsampleY are the luma samples per chroma sample in
	// each direction.
	SubsampleX, SubsampleY int
}

// Chroma returns f's chroma layout. ok is false when f carries no YUV chroma
// that this package knows how to address.
func (f Format) Chroma() (c ChromaLayout, ok bool) {
	switch f {
	case FormatI420:
		return ChromaLayout{Order: OrderUV, SubsampleX: 2, SubsampleY: 2}, true
	case FormatYV12:
		return ChromaLayout{Order: OrderVU, SubsampleX: 2, SubsampleY: 2}, true
	case FormatNV12:
		return ChromaLayout{Order: OrderUV, SemiPlanar: true, SubsampleX: 2, SubsampleY: 2}, true
	case FormatNV21:
		return ChromaLayout{Order: OrderVU, SemiPlanar: true, SubsampleX: 2, SubsampleY: 2}, true
	case FormatI444:
		return ChromaLayout{Order: OrderUV, SubsampleX: 1, SubsampleY: 1}, true
	}
	return ChromaLayout{}, false
}

// Is420 reports whether f is one of the four 4:2:0 layouts.
func (f Format) Is420() bool {
	c, ok := f.Chroma()
	return ok && c.SubsampleX == 2 && c.SubsampleY == 2
}
