package video

import (
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"

	"golang.org/x/image/draw"
)

// Scaler represents scaling algorithm
type Scaler draw.Scaler

// List of scaling algorithms
var (
	ScalerNearestNeighbor = Scaler(draw.NearestNeighbor)
	ScalerApproxBiLinear  = Scaler(draw.ApproxBiLinear)
	ScalerBiLinear        = Scaler(draw.BiLinear)
	ScalerCatmullRom      = Scaler(draw.CatmullRom)
)

var errInvalidScalingFactor = errors.New("scaling: invalid scaling factor")

// ScalingFactor is a num/denom ratio applied to both dimensions.
type ScalingFactor struct {
	Num, Denom int
}

// ParseScalingFactor parses "M/N", e.g. "1/2".
func ParseScalingFactor(s string) (ScalingFactor, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return ScalingFactor{}, fmt.Errorf("%w: %q", errInvalidScalingFactor, s)
	}
	num, err := strconv.Atoi(parts[0])
	if err != nil {
		return ScalingFactor{}, fmt.Errorf("%w: %q", errInvalidScalingFactor, s)
	}
	denom, err := strconv.Atoi(parts[1])
	if err != nil {
		return ScalingFactor{}, fmt.Errorf("%w: %q", errInvalidScalingFactor, s)
	}
	if num <= 0 || denom <= 0 {
		return ScalingFactor{}, fmt.Errorf("%w: %q", errInvalidScalingFactor, s)
	}
	return ScalingFactor{Num: num, Denom: denom}, nil
}

// Apply returns the scaled size of a dimension, rounded up.
func (f ScalingFactor) Apply(dimension int) int {
	return (dimension*f.Num + f.Denom - 1) / f.Denom
}

// Scale returns video scaling transform.
// Setting scaler=nil to use default scaler. (ScalerNearestNeighbor)
// Negative width or height value will keep the aspect ratio of incoming image.
// The output is always *image.RGBA.
func Scale(width, height int, scaler Scaler) TransformFunc {
	if scaler == nil {
		scaler = ScalerNearestNeighbor
	}
	if width <= 0 && height <= 0 {
		panic("Both width and height are negative!")
	}

	var src image.RGBA
	return imageFunc(func(img image.Image) (image.Image, error) {
		bounds := img.Bounds()
		w, h := width, height
		if h <= 0 {
			h = bounds.Dy() * w / bounds.Dx()
		} else if w <= 0 {
			w = bounds.Dx() * h / bounds.Dy()
		}

		imageToRGBA(&src, img)
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		scaler.Scale(dst, dst.Bounds(), &src, src.Bounds(), draw.Src, nil)
		return dst, nil
	})
}

// ScaleBy returns a scaling transform that multiplies both dimensions by f.
func ScaleBy(f ScalingFactor, scaler Scaler) TransformFunc {
	if scaler == nil {
		scaler = ScalerNearestNeighbor
	}

	var src image.RGBA
	return imageFunc(func(img image.Image) (image.Image, error) {
		if f.Num <= 0 || f.Denom <= 0 {
			return nil, fmt.Errorf("%w: %d/%d", errInvalidScalingFactor, f.Num, f.Denom)
		}
		bounds := img.Bounds()
		imageToRGBA(&src, img)
		dst := image.NewRGBA(image.Rect(0, 0, f.Apply(bounds.Dx()), f.Apply(bounds.Dy())))
		scaler.Scale(dst, dst.Bounds(), &src, src.Bounds(), draw.Src, nil)
		return dst, nil
	})
}
