package video

import (
	"fmt"
	"image"
	"io"

	"github.com/pion/yuvlayout/pkg/frame"
)

// NewRawReader returns a Reader that decodes consecutive raw frames of layout
// l from src. Read returns io.EOF after the last complete frame and
// io.ErrUnexpectedEOF when src ends in the middle of a frame. Every frame is
// read into the same buffer.
func NewRawReader(src io.Reader, l frame.Layout) (Reader, error) {
	decoder, err := frame.NewDecoder(l.Format)
	if err != nil {
		return nil, err
	}
	if l.Width <= 0 || l.Height <= 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", frame.ErrPreconditionViolation, l.Width, l.Height)
	}

	buf := make([]byte, l.Size())
	return ReaderFunc(func() (image.Image, func(), error) {
		if _, err := io.ReadFull(src, buf); err != nil {
			return nil, func() {}, err
		}
		return decoder.Decode(buf, l.Width, l.Height)
	}), nil
}

// Collect reads up to n frames from r, or every frame until io.EOF when n is
// negative. Each image is copied, so the result stays valid after r moves on.
func Collect(r Reader, n int) ([]image.Image, error) {
	var imgs []image.Image
	for n < 0 || len(imgs) < n {
		img, release, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return imgs, err
		}

		buffer := NewFrameBuffer(0)
		buffer.StoreCopy(img)
		release()
		imgs = append(imgs, buffer.Load())
	}
	return imgs, nil
}
