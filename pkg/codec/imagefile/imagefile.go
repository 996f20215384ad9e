// Package imagefile loads and saves compressed images, picking the codec from
// the file extension.
package imagefile

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/pion/yuvlayout/internal/logging"
	"github.com/spf13/afero"
	"golang.org/x/image/bmp"
)

var logger = logging.NewLogger("yuvlayout/imagefile")

// Kind is a supported image file type.
type Kind string

const (
	KindBMP  Kind = "bmp"
	KindJPEG Kind = "jpeg"
	KindPNG  Kind = "png"
)

// DefaultQuality is the JPEG quality used when Options.Quality is 0.
const DefaultQuality = 95

var (
	errUnknownExtension = errors.New("imagefile: unknown file extension")
	errInvalidQuality   = errors.New("imagefile: quality must be within 1..100")
)

// Options controls encoding.
type Options struct {
	// Quality is the JPEG quality, 1 to 100. Ignored by other kinds.
	Quality int
}

// KindFromPath returns the kind matching path's extension.
func KindFromPath(path string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return KindBMP, nil
	case ".jpg", ".jpeg":
		return KindJPEG, nil
	case ".png":
		return KindPNG, nil
	}
	return "", fmt.Errorf("%w: %q", errUnknownExtension, path)
}

// DecodeFrom decodes an image of the given kind from r.
func DecodeFrom(r io.Reader, kind Kind) (image.Image, error) {
	switch kind {
	case KindBMP:
		return bmp.Decode(r)
	case KindJPEG:
		return jpeg.Decode(r)
	case KindPNG:
		return png.Decode(r)
	}
	return nil, fmt.Errorf("%w: %q", errUnknownExtension, kind)
}

// EncodeTo encodes img as kind into w.
func EncodeTo(w io.Writer, kind Kind, img image.Image, opts Options) error {
	switch kind {
	case KindBMP:
		return bmp.Encode(w, img)
	case KindJPEG:
		quality := opts.Quality
		if quality == 0 {
			quality = DefaultQuality
		}
		if quality < 1 || quality > 100 {
			return fmt.Errorf("%w: %d", errInvalidQuality, quality)
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case KindPNG:
		return png.Encode(w, img)
	}
	return fmt.Errorf("%w: %q", errUnknownExtension, kind)
}

// Decode reads the image stored at path on fs.
func Decode(fs afero.Fs, path string) (image.Image, error) {
	kind, err := KindFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()

	img, err := DecodeFrom(f, kind)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	b := img.Bounds()
	logger.Infof("Input Image: %d x %d pixels (%s)", b.Dx(), b.Dy(), kind)
	return img, nil
}

// Encode writes img to path on fs.
func Encode(fs afero.Fs, path string, img image.Image, opts Options) error {
	kind, err := KindFromPath(path)
	if err != nil {
		return err
	}

	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("opening output file: %w", err)
	}

	if err := EncodeTo(f, kind, img, opts); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	b := img.Bounds()
	logger.Infof("Output Image (%s): %d x %d pixels", kind, b.Dx(), b.Dy())
	return f.Close()
}
