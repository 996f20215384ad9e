package frame

// BT.601 studio swing, fixed point with 8 fractional bits. Intermediates are
// signed so that >> 8 is an arithmetic shift.

// RGBToYUV converts an 8-bit RGB triple to YUV.
func RGBToYUV(r, g, b uint8) (y, u, v uint8) {
	ri, gi, bi := int32(r), int32(g), int32(b)
	y = uint8(((66*ri + 129*gi + 25*bi + 128) >> 8) + 16)
	u = uint8(((-38*ri - 74*gi + 112*bi + 128) >> 8) + 128)
	v = uint8(((112*ri - 94*gi - 18*bi + 128) >> 8) + 128)
	return
}

// YUVToRGB converts a YUV triple to 8-bit RGB, saturating out of gamut values.
func YUVToRGB(y, u, v uint8) (r, g, b uint8) {
	c := 298 * (int32(y) - 16)
	d := int32(u) - 128
	e := int32(v) - 128
	r = clip((c + 409*e + 128) >> 8)
	g = clip((c - 100*d - 208*e + 128) >> 8)
	b = clip((c + 516*d + 128) >> 8)
	return
}

func clip(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
