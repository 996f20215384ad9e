package video

import (
	"image"

	"github.com/pion/yuvlayout/pkg/frame"
)

// ycbcrToRGB converts src with the BT.601 studio swing conversion of package
// frame. set receives every pixel in row-major order.
func ycbcrToRGB(src *image.YCbCr, set func(i int, r, g, b uint8)) {
	bounds := src.Bounds()
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			yi := src.YOffset(x, y)
			ci := src.COffset(x, y)
			r, g, b := frame.YUVToRGB(src.Y[yi], src.Cb[ci], src.Cr[ci])
			set(i, r, g, b)
			i++
		}
	}
}

// imageToRGBA converts src to *image.RGBA and store it to dst
func imageToRGBA(dst *image.RGBA, src image.Image) {
	if dst == nil {
		panic("dst can't be nil")
	}

	if srcRGBA, ok := src.(*image.RGBA); ok {
		*dst = *srcRGBA
		return
	}

	bounds := src.Bounds()
	dy := bounds.Dy()
	dx := bounds.Dx()

	if len(dst.Pix) < 4*dx*dy {
		dst.Pix = make([]uint8, 4*dx*dy)
	}
	dst.Pix = dst.Pix[:4*dx*dy]
	dst.Stride = 4 * dx
	dst.Rect = image.Rect(0, 0, dx, dy)

	if srcYCbCr, ok := src.(*image.YCbCr); ok {
		ycbcrToRGB(srcYCbCr, func(i int, r, g, b uint8) {
			dst.Pix[4*i+0] = r
			dst.Pix[4*i+1] = g
			dst.Pix[4*i+2] = b
			dst.Pix[4*i+3] = 0xFF
		})
		return
	}

	i := 0
	for yi := bounds.Min.Y; yi < bounds.Max.Y; yi++ {
		for xi := bounds.Min.X; xi < bounds.Max.X; xi++ {
			r, g, b, a := src.At(xi, yi).RGBA()
			dst.Pix[i+0] = uint8(r / 0x100)
			dst.Pix[i+1] = uint8(g / 0x100)
			dst.Pix[i+2] = uint8(b / 0x100)
			dst.Pix[i+3] = uint8(a / 0x100)
			i += 4
		}
	}
}

// imageToRGB24 converts src to *frame.RGB24Img and store it to dst. Alpha is
// dropped.
func imageToRGB24(dst *frame.RGB24Img, src image.Image) {
	if dst == nil {
		panic("dst can't be nil")
	}

	if srcRGB24, ok := src.(*frame.RGB24Img); ok {
		*dst = *srcRGB24
		return
	}

	bounds := src.Bounds()
	dy := bounds.Dy()
	dx := bounds.Dx()

	if len(dst.Pix) < 3*dx*dy {
		dst.Pix = make([]uint8, 3*dx*dy)
	}
	dst.Pix = dst.Pix[:3*dx*dy]
	dst.Stride = 3 * dx
	dst.Rect = image.Rect(0, 0, dx, dy)

	if srcYCbCr, ok := src.(*image.YCbCr); ok {
		ycbcrToRGB(srcYCbCr, func(i int, r, g, b uint8) {
			dst.Pix[3*i+0] = r
			dst.Pix[3*i+1] = g
			dst.Pix[3*i+2] = b
		})
		return
	}

	i := 0
	for yi := bounds.Min.Y; yi < bounds.Max.Y; yi++ {
		for xi := bounds.Min.X; xi < bounds.Max.X; xi++ {
			r, g, b, _ := src.At(xi, yi).RGBA()
			dst.Pix[i+0] = uint8(r / 0x100)
			dst.Pix[i+1] = uint8(g / 0x100)
			dst.Pix[i+2] = uint8(b / 0x100)
			i += 3
		}
	}
}

// ToRGBA converts r to a new reader that will output images in RGBA format
func ToRGBA(r Reader) Reader {
	var dst image.RGBA
	return ReaderFunc(func() (image.Image, func(), error) {
		img, release, err := r.Read()
		if err != nil {
			return nil, func() {}, err
		}

		imageToRGBA(&dst, img)
		return &dst, release, nil
	})
}

// ToRGB24 converts r to a new reader that will output images in RGB24 format
func ToRGB24(r Reader) Reader {
	var dst frame.RGB24Img
	return ReaderFunc(func() (image.Image, func(), error) {
		img, release, err := r.Read()
		if err != nil {
			return nil, func() {}, err
		}

		imageToRGB24(&dst, img)
		return &dst, release, nil
	})
}
