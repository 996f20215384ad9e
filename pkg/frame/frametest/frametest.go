// Package frametest provides deterministic raw frames for tests and fixtures.
package frametest

import (
	"github.com/pion/yuvlayout/pkg/frame"
)

// Fill writes a ramp into the first width*height bytes of b: the sample at
// (row, col) is (row*width+col)/divisor, truncated to a byte. A divisor of 0
// is treated as 1.
func Fill(b []byte, width, height, divisor int) {
	if divisor == 0 {
		divisor = 1
	}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			i := row*width + col
			b[i] = byte(i / divisor)
		}
	}
}

// GenerateI444 returns three full-size ramps laid out Y, U, V.
func GenerateI444(width, height int) []byte {
	yi := width * height
	b := make([]byte, 3*yi)
	Fill(b[:yi], width, height, 1)
	Fill(b[yi:2*yi], width, height, 1)
	Fill(b[2*yi:], width, height, 1)
	return b
}

// GeneratePlanar returns a 4:2:0 planar frame: a full-size luma ramp followed
// by two quarter-size chroma ramps. It reads as I420 or YV12.
func GeneratePlanar(width, height int) []byte {
	yi := width * height
	cw, ch := width/2, height/2
	ci := cw * ch
	b := make([]byte, yi+2*ci)
	Fill(b[:yi], width, height, 1)
	Fill(b[yi:yi+ci], cw, ch, 1)
	Fill(b[yi+ci:], cw, ch, 1)
	return b
}

// GenerateSemiPlanar returns a 4:2:0 semi-planar frame: a full-size luma ramp
// followed by one width x height/2 interleaved chroma ramp divided by
// divisor. It reads as NV12 or NV21.
func GenerateSemiPlanar(width, height, divisor int) []byte {
	yi := width * height
	ci := width * (height / 2)
	b := make([]byte, yi+ci)
	Fill(b[:yi], width, height, 1)
	Fill(b[yi:], width, height/2, divisor)
	return b
}

// Generate returns the ramp frame matching l's format. Planar chroma uses
// divisor 1; semi-planar chroma uses divisor.
func Generate(l frame.Layout, divisor int) ([]byte, error) {
	switch l.Format {
	case frame.FormatI420, frame.FormatYV12:
		return GeneratePlanar(l.Width, l.Height), nil
	case frame.FormatNV12, frame.FormatNV21:
		return GenerateSemiPlanar(l.Width, l.Height, divisor), nil
	case frame.FormatI444:
		return GenerateI444(l.Width, l.Height), nil
	}
	return nil, l.ChromaSupported()
}
