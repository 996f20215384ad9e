package video

import (
	"image"
)

// Reader produces frames. The returned image may share memory with the
// reader and is only valid until the next Read, unless copied.
type Reader interface {
	Read() (img image.Image, release func(), err error)
}

type ReaderFunc func() (img image.Image, release func(), err error)

func (rf ReaderFunc) Read() (img image.Image, release func(), err error) {
	img, release, err = rf()
	return
}

// TransformFunc produces a new Reader that will produces a transformed video
type TransformFunc func(r Reader) Reader

// Merge merges transforms and produces a new TransformFunc that will execute
// transforms in order
func Merge(transforms ...TransformFunc) TransformFunc {
	return func(r Reader) Reader {
		for _, transform := range transforms {
			if transform == nil {
				continue
			}

			r = transform(r)
		}

		return r
	}
}

// imageFunc adapts a per-image function into a TransformFunc.
func imageFunc(fn func(image.Image) (image.Image, error)) TransformFunc {
	return func(r Reader) Reader {
		return ReaderFunc(func() (image.Image, func(), error) {
			img, release, err := r.Read()
			if err != nil {
				return nil, func() {}, err
			}

			out, err := fn(img)
			if err != nil {
				release()
				return nil, func() {}, err
			}
			return out, release, nil
		})
	}
}
