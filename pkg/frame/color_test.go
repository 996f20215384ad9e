package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestRGBToYUV(t *testing.T) {
	cases := map[string]struct {
		rgb [3]uint8
		yuv [3]uint8
	}{
		"Black":   {[3]uint8{0, 0, 0}, [3]uint8{16, 128, 128}},
		"White":   {[3]uint8{255, 255, 255}, [3]uint8{235, 128, 128}},
		"MidGray": {[3]uint8{128, 128, 128}, [3]uint8{126, 128, 128}},
		"Red":     {[3]uint8{255, 0, 0}, [3]uint8{82, 90, 240}},
		"Green":   {[3]uint8{0, 255, 0}, [3]uint8{144, 54, 34}},
		"Blue":    {[3]uint8{0, 0, 255}, [3]uint8{41, 240, 110}},
	}
	for name, c := range cases {
		y, u, v := RGBToYUV(c.rgb[0], c.rgb[1], c.rgb[2])
		assert.Equal(t, c.yuv, [3]uint8{y, u, v}, name)
	}
}

func TestYUVToRGBClips(t *testing.T) {
	r, g, b := YUVToRGB(255, 255, 255)
	assert.Equal(t, [3]uint8{255, 125, 255}, [3]uint8{r, g, b})

	r, g, b = YUVToRGB(0, 0, 0)
	assert.Equal(t, [3]uint8{0, 135, 0}, [3]uint8{r, g, b})
}

func TestMidGrayRoundTrip(t *testing.T) {
	y, u, v := RGBToYUV(128, 128, 128)
	assert.Equal(t, [3]uint8{126, 128, 128}, [3]uint8{y, u, v})

	r, g, b := YUVToRGB(y, u, v)
	assert.LessOrEqual(t, absDiff(r, 128), 2)
	assert.LessOrEqual(t, absDiff(g, 128), 2)
	assert.LessOrEqual(t, absDiff(b, 128), 2)
}

func TestRoundTripGrayAxis(t *testing.T) {
	for i := 0; i < 256; i++ {
		c := uint8(i)
		r, g, b := YUVToRGB(RGBToYUV(c, c, c))
		if absDiff(r, c) > 2 || absDiff(g, c) > 2 || absDiff(b, c) > 2 {
			t.Errorf("gray %d came back as (%d, %d, %d)", c, r, g, b)
		}
	}
}

func TestRoundTripLattice(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				rr, gg, bb := YUVToRGB(RGBToYUV(uint8(r), uint8(g), uint8(b)))
				if absDiff(rr, uint8(r)) > 2 || absDiff(gg, uint8(g)) > 2 || absDiff(bb, uint8(b)) > 2 {
					t.Errorf("(%d, %d, %d) came back as (%d, %d, %d)", r, g, b, rr, gg, bb)
				}
			}
		}
	}
}

func TestRoundTripCube(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive")
	}
	// a handful of saturated blues lose 3 levels, e.g. (0, 4, 230)
	const tolerance = 3
	for r := 0; r < 256; r++ {
		for g := 0; g < 256; g++ {
			for b := 0; b < 256; b++ {
				rr, gg, bb := YUVToRGB(RGBToYUV(uint8(r), uint8(g), uint8(b)))
				if absDiff(rr, uint8(r)) > tolerance || absDiff(gg, uint8(g)) > tolerance || absDiff(bb, uint8(b)) > tolerance {
					t.Fatalf("(%d, %d, %d) came back as (%d, %d, %d)", r, g, b, rr, gg, bb)
				}
			}
		}
	}
}
