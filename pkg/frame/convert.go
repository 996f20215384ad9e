package frame

import "fmt"

func checkBytesPerPixel(bytesPerPixel int) error {
	if bytesPerPixel < 3 {
		return fmt.Errorf("%w: bytes per pixel must be at least 3, got %d", ErrPreconditionViolation, bytesPerPixel)
	}
	return nil
}

// ToRGB converts the YUV frame in src into packed, row-major R, G, B pixels in
// dst. Each pixel takes bytesPerPixel bytes in dst; bytes past the third are
// left untouched. Frames whose format has no chroma layout convert as gray.
func ToRGB(dst, src []byte, l Layout, bytesPerPixel int) error {
	if err := checkBytesPerPixel(bytesPerPixel); err != nil {
		return err
	}
	if err := l.Validate(src); err != nil {
		return err
	}
	if need := l.Width * l.Height * bytesPerPixel; len(dst) < need {
		return &InsufficientBufferError{RequiredSize: need, ActualSize: len(dst)}
	}

	i := 0
	for row := 0; row < l.Height; row++ {
		for col := 0; col < l.Width; col++ {
			addr, _ := l.Locate(row, col)
			u, v := uint8(neutralChroma), uint8(neutralChroma)
			if addr.Chroma {
				u, v = src[addr.U], src[addr.V]
			}
			dst[i+0], dst[i+1], dst[i+2] = YUVToRGB(src[addr.Y], u, v)
			i += bytesPerPixel
		}
	}
	return nil
}

// FromRGB converts packed R, G, B pixels in src into a YUV frame in dst. The
// chroma of a subsampled block is taken from its top-left pixel. Only the luma
// plane is written for formats without a chroma layout.
func FromRGB(dst, src []byte, l Layout, bytesPerPixel int) error {
	if err := checkBytesPerPixel(bytesPerPixel); err != nil {
		return err
	}
	if err := l.Validate(dst); err != nil {
		return err
	}
	if need := l.Width * l.Height * bytesPerPixel; len(src) < need {
		return &InsufficientBufferError{RequiredSize: need, ActualSize: len(src)}
	}

	sx, sy := 1, 1
	if c, ok := l.Format.Chroma(); ok {
		sx, sy = c.SubsampleX, c.SubsampleY
	}

	i := 0
	for row := 0; row < l.Height; row++ {
		for col := 0; col < l.Width; col++ {
			addr, _ := l.Locate(row, col)
			y, u, v := RGBToYUV(src[i+0], src[i+1], src[i+2])
			dst[addr.Y] = y
			if addr.Chroma && row%sy == 0 && col%sx == 0 {
				dst[addr.U] = u
				dst[addr.V] = v
			}
			i += bytesPerPixel
		}
	}
	return nil
}
