package frame

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var formats420 = []Format{FormatI420, FormatYV12, FormatNV12, FormatNV21}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"i420":  FormatI420,
		"YU12":  FormatI420,
		"yv12":  FormatYV12,
		"NV12":  FormatNV12,
		"nv21":  FormatNV21,
		"I444":  FormatI444,
		"rgb24": FormatRGB24,
		"1":     FormatYU12,
		"2":     FormatYV12,
		"3":     FormatNV12,
		"4":     FormatNV21,
	}
	for in, expected := range cases {
		f, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, expected, f, in)
	}

	_, err := ParseFormat("0")
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestNewLayout(t *testing.T) {
	_, err := NewLayout(FormatNV12, 7, 8)
	assert.True(t, errors.Is(err, ErrPreconditionViolation))

	_, err = NewLayout(FormatI420, 0, 8)
	assert.True(t, errors.Is(err, ErrPreconditionViolation))

	// no subsampling, odd dimensions are fine
	l, err := NewLayout(FormatI444, 3, 5)
	require.NoError(t, err)
	assert.Equal(t, 45, l.Size())
}

func TestLayoutSize(t *testing.T) {
	cases := map[Format]int{
		FormatI420:  96,
		FormatYV12:  96,
		FormatNV12:  96,
		FormatNV21:  96,
		FormatI444:  192,
		FormatRGB24: 192,
		"GREY":      64,
	}
	for f, expected := range cases {
		assert.Equal(t, expected, Layout{Format: f, Width: 8, Height: 8}.Size(), string(f))
	}
}

func TestLayoutPlanes(t *testing.T) {
	const w, h = 8, 6
	luma := w * h

	t.Run("I420", func(t *testing.T) {
		planes := Layout{FormatI420, w, h}.Planes()
		require.Len(t, planes, 3)
		assert.Equal(t, Plane{ChannelU, luma, w / 2, h / 2}, planes[1])
		assert.Equal(t, Plane{ChannelV, luma + (w/2)*(h/2), w / 2, h / 2}, planes[2])
	})
	t.Run("YV12", func(t *testing.T) {
		planes := Layout{FormatYV12, w, h}.Planes()
		require.Len(t, planes, 3)
		assert.Equal(t, Plane{ChannelV, luma, w / 2, h / 2}, planes[1])
		assert.Equal(t, Plane{ChannelU, luma + (w/2)*(h/2), w / 2, h / 2}, planes[2])
	})
	for _, f := range []Format{FormatNV12, FormatNV21} {
		f := f
		t.Run(string(f), func(t *testing.T) {
			planes := Layout{f, w, h}.Planes()
			require.Len(t, planes, 2)
			assert.Equal(t, luma, planes[1].Offset)
			assert.Equal(t, luma/2, planes[1].Size())
		})
	}
	t.Run("RGB24", func(t *testing.T) {
		l := Layout{FormatRGB24, w, h}
		planes := l.Planes()
		assert.Equal(t, []Plane{{ChannelUnknown, 0, 3 * w, h}}, planes)
		assert.Equal(t, l.Size(), planes[0].Size())
	})
	t.Run("Unknown", func(t *testing.T) {
		planes := Layout{"GREY", w, h}.Planes()
		assert.Equal(t, []Plane{{ChannelY, 0, w, h}}, planes)
	})
}

func TestLocate(t *testing.T) {
	const w, h = 8, 8
	cases := map[string]struct {
		format   Format
		row, col int
		expected Address
	}{
		"I420Origin": {FormatI420, 0, 0, Address{Y: 0, U: 64, V: 80, Chroma: true}},
		"I420Last":   {FormatI420, 7, 7, Address{Y: 63, U: 79, V: 95, Chroma: true}},
		"YV12Origin": {FormatYV12, 0, 0, Address{Y: 0, U: 80, V: 64, Chroma: true}},
		"YV12Middle": {FormatYV12, 5, 2, Address{Y: 42, U: 80 + 9, V: 64 + 9, Chroma: true}},
		"NV12":       {FormatNV12, 2, 3, Address{Y: 19, U: 64 + 10, V: 64 + 11, Chroma: true}},
		"NV12Odd":    {FormatNV12, 3, 2, Address{Y: 26, U: 64 + 10, V: 64 + 11, Chroma: true}},
		"NV21":       {FormatNV21, 2, 3, Address{Y: 19, U: 64 + 11, V: 64 + 10, Chroma: true}},
		"NV21Last":   {FormatNV21, 7, 7, Address{Y: 63, U: 64 + 31, V: 64 + 30, Chroma: true}},
		"I444":       {FormatI444, 1, 1, Address{Y: 9, U: 73, V: 137, Chroma: true}},
		"Unknown":    {"GREY", 1, 1, Address{Y: 9}},
	}
	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			addr, err := Layout{c.format, w, h}.Locate(c.row, c.col)
			require.NoError(t, err)
			assert.Equal(t, c.expected, addr)
		})
	}
}

func TestLocateOutOfBounds(t *testing.T) {
	const w, h = 8, 6
	for _, f := range append(formats420, FormatI444, "GREY") {
		l := Layout{f, w, h}
		for _, p := range [][2]int{{h, 0}, {0, w}, {h, w}, {-1, 0}, {0, -1}} {
			_, err := l.Locate(p[0], p[1])
			var oob *OutOfBoundsError
			require.True(t, errors.As(err, &oob), "%s (%d,%d)", f, p[0], p[1])
			assert.True(t, errors.Is(err, ErrPreconditionViolation))
		}
	}
}

func TestLocateChromaSharing(t *testing.T) {
	const w, h = 16, 12
	for _, f := range formats420 {
		l := Layout{f, w, h}
		for row := 0; row < h; row += 2 {
			for col := 0; col < w; col += 2 {
				base, err := l.Locate(row, col)
				require.NoError(t, err)
				for _, d := range [][2]int{{0, 1}, {1, 0}, {1, 1}} {
					addr, err := l.Locate(row+d[0], col+d[1])
					require.NoError(t, err)
					assert.Equal(t, base.U, addr.U, "%s (%d,%d)", f, row+d[0], col+d[1])
					assert.Equal(t, base.V, addr.V, "%s (%d,%d)", f, row+d[0], col+d[1])
				}
			}
		}
	}
}

func TestLocateStaysInsideChromaPlanes(t *testing.T) {
	const w, h = 10, 6
	for _, f := range formats420 {
		l := Layout{f, w, h}
		planes := l.Planes()
		seen := map[int]bool{}
		for row := 0; row < h; row++ {
			for col := 0; col < w; col++ {
				addr, err := l.Locate(row, col)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, addr.U, planes[1].Offset)
				assert.Less(t, addr.V, l.Size())
				seen[addr.U] = true
				seen[addr.V] = true
			}
		}
		// every chroma byte is reachable from exactly one block
		assert.Len(t, seen, l.Size()-w*h, string(f))
	}
}

func TestLayoutAt(t *testing.T) {
	l := Layout{FormatNV21, 4, 2}
	buf := []byte{
		0, 1, 2, 3,
		4, 5, 6, 7,
		0xA0, 0xB0, 0xA1, 0xB1, // V U V U
	}
	s, err := l.At(buf, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, Sample{Y: 7, U: 0xB1, V: 0xA1}, s)

	_, err = l.At(buf[:10], 0, 0)
	var ibe *InsufficientBufferError
	require.True(t, errors.As(err, &ibe))
	assert.Equal(t, 12, ibe.RequiredSize)

	grey := Layout{"GREY", 4, 2}
	s, err = grey.At(buf, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, Sample{Y: 4, U: 128, V: 128}, s)
	assert.True(t, errors.Is(grey.ChromaSupported(), ErrUnsupportedFormat))
	assert.NoError(t, l.ChromaSupported())
}
