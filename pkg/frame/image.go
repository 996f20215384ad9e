package frame

import (
	"fmt"
	"image"
	"image/color"
)

// Encode converts img into a newly allocated raw frame with layout l. img must
// have the same dimensions as l.
func Encode(img image.Image, l Layout) ([]byte, error) {
	dst := make([]byte, l.Size())
	if err := EncodeTo(dst, img, l); err != nil {
		return nil, err
	}
	return dst, nil
}

// EncodeTo converts img into the raw frame dst with layout l.
func EncodeTo(dst []byte, img image.Image, l Layout) error {
	b := img.Bounds()
	if b.Dx() != l.Width || b.Dy() != l.Height {
		return fmt.Errorf("%w: image %dx%d does not match %s", ErrPreconditionViolation, b.Dx(), b.Dy(), l)
	}

	src, ok := img.(*RGB24Img)
	if !ok || src.Rect.Min != (image.Point{}) || src.Stride != 3*l.Width {
		src = NewRGB24(image.Rect(0, 0, l.Width, l.Height))
		for y := 0; y < l.Height; y++ {
			for x := 0; x < l.Width; x++ {
				c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
				i := src.PixOffset(x, y)
				src.Pix[i+0], src.Pix[i+1], src.Pix[i+2] = c.R, c.G, c.B
			}
		}
	}

	return FromRGB(dst, src.Pix, l, 3)
}

// Decode converts the raw frame src with layout l into an RGB image using the
// package's fixed-point conversion.
func Decode(src []byte, l Layout) (*RGB24Img, error) {
	img := NewRGB24(image.Rect(0, 0, l.Width, l.Height))
	if err := ToRGB(img.Pix, src, l, 3); err != nil {
		return nil, err
	}
	return img, nil
}
