package video

import (
	"errors"
	"fmt"
	"image"

	"github.com/pion/yuvlayout/pkg/frame"
)

// Op is a lossless pixel-domain geometry transform.
type Op int

const (
	OpNone Op = iota
	OpHFlip
	OpVFlip
	OpTranspose
	OpTransverse
	OpRot90
	OpRot180
	OpRot270
)

var errEmptyCrop = errors.New("crop: region doesn't intersect the image")

func (op Op) String() string {
	switch op {
	case OpHFlip:
		return "hflip"
	case OpVFlip:
		return "vflip"
	case OpTranspose:
		return "transpose"
	case OpTransverse:
		return "transverse"
	case OpRot90:
		return "rot90"
	case OpRot180:
		return "rot180"
	case OpRot270:
		return "rot270"
	}
	return "none"
}

// swapsAxes reports whether the op turns a WxH image into HxW.
func (op Op) swapsAxes() bool {
	switch op {
	case OpTranspose, OpTransverse, OpRot90, OpRot270:
		return true
	}
	return false
}

// source maps a destination pixel to the source pixel it is copied from, for
// a w x h source image. Rotations are clockwise.
func (op Op) source(x, y, w, h int) (int, int) {
	switch op {
	case OpHFlip:
		return w - 1 - x, y
	case OpVFlip:
		return x, h - 1 - y
	case OpTranspose:
		return y, x
	case OpTransverse:
		return w - 1 - y, h - 1 - x
	case OpRot90:
		return y, h - 1 - x
	case OpRot180:
		return w - 1 - x, h - 1 - y
	case OpRot270:
		return w - 1 - y, x
	}
	return x, y
}

// Transform returns a transform applying op to every frame. The output is
// always *image.RGBA.
func Transform(op Op) TransformFunc {
	if op == OpNone {
		return nil
	}

	var src image.RGBA
	return imageFunc(func(img image.Image) (image.Image, error) {
		imageToRGBA(&src, img)
		w, h := src.Rect.Dx(), src.Rect.Dy()
		dw, dh := w, h
		if op.swapsAxes() {
			dw, dh = h, w
		}

		dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
		for y := 0; y < dh; y++ {
			for x := 0; x < dw; x++ {
				sx, sy := op.source(x, y, w, h)
				si := src.PixOffset(src.Rect.Min.X+sx, src.Rect.Min.Y+sy)
				di := dst.PixOffset(x, y)
				copy(dst.Pix[di:di+4], src.Pix[si:si+4])
			}
		}
		return dst, nil
	})
}

// ParseCrop parses a "WxH+X+Y" crop region.
func ParseCrop(s string) (image.Rectangle, error) {
	var w, h, x, y int
	if _, err := fmt.Sscanf(s, "%dx%d+%d+%d", &w, &h, &x, &y); err != nil {
		return image.Rectangle{}, fmt.Errorf("crop: invalid region %q: %w", s, err)
	}
	if x < 0 || y < 0 || w < 1 || h < 1 {
		return image.Rectangle{}, fmt.Errorf("crop: invalid region %q", s)
	}
	return image.Rect(x, y, x+w, y+h), nil
}

// Crop returns a transform keeping the part of every frame inside rect,
// relative to the frame's origin. The output is always *image.RGBA anchored
// at (0, 0).
func Crop(rect image.Rectangle) TransformFunc {
	var src image.RGBA
	return imageFunc(func(img image.Image) (image.Image, error) {
		imageToRGBA(&src, img)
		r := rect.Add(src.Rect.Min).Intersect(src.Rect)
		if r.Empty() {
			return nil, fmt.Errorf("%w: %v", errEmptyCrop, rect)
		}

		dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
		for y := 0; y < r.Dy(); y++ {
			si := src.PixOffset(r.Min.X, r.Min.Y+y)
			di := dst.PixOffset(0, y)
			copy(dst.Pix[di:di+4*r.Dx()], src.Pix[si:si+4*r.Dx()])
		}
		return dst, nil
	})
}

// Grayscale returns a transform that keeps only the BT.601 luma of every
// frame, expanded back to full range.
func Grayscale() TransformFunc {
	var src image.RGBA
	return imageFunc(func(img image.Image) (image.Image, error) {
		imageToRGBA(&src, img)
		w, h := src.Rect.Dx(), src.Rect.Dy()
		dst := image.NewGray(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				si := src.PixOffset(src.Rect.Min.X+x, src.Rect.Min.Y+y)
				p := src.Pix[si : si+3 : si+3]
				luma, _, _ := frame.RGBToYUV(p[0], p[1], p[2])
				dst.Pix[y*dst.Stride+x], _, _ = frame.YUVToRGB(luma, 128, 128)
			}
		}
		return dst, nil
	})
}
