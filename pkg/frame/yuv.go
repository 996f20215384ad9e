package frame

import (
	"fmt"
	"image"
)

// The planar decoders return images that share memory with frame.

func decodeI420(frame []byte, width, height int) (image.Image, func(), error) {
	yi := width * height
	cbi := yi + (width/2)*(height/2)
	cri := cbi + (width/2)*(height/2)

	if cri > len(frame) {
		return nil, func() {}, fmt.Errorf("frame length (%d) less than expected (%d)", len(frame), cri)
	}

	return &image.YCbCr{
		Y:              frame[:yi:yi],
		YStride:        width,
		Cb:             frame[yi:cbi:cbi],
		Cr:             frame[cbi:cri:cri],
		CStride:        width / 2,
		SubsampleRatio: image.YCbCrSubsampleRatio420,
		Rect:           image.Rect(0, 0, width, height),
	}, func() {}, nil
}

func decodeYV12(frame []byte, width, height int) (image.Image, func(), error) {
	yi := width * height
	cri := yi + (width/2)*(height/2)
	cbi := cri + (width/2)*(height/2)

	if cbi > len(frame) {
		return nil, func() {}, fmt.Errorf("frame length (%d) less than expected (%d)", len(frame), cbi)
	}

	return &image.YCbCr{
		Y:              frame[:yi:yi],
		YStride:        width,
		Cb:             frame[cri:cbi:cbi],
		Cr:             frame[yi:cri:cri],
		CStride:        width / 2,
		SubsampleRatio: image.YCbCrSubsampleRatio420,
		Rect:           image.Rect(0, 0, width, height),
	}, func() {}, nil
}

// deinterleave splits a semi-planar chroma plane. first receives the even
// bytes, second the odd ones.
func deinterleave(plane []byte) (first, second []byte) {
	n := len(plane) / 2
	first = make([]byte, n)
	second = make([]byte, n)
	for i := 0; i < n; i++ {
		first[i] = plane[2*i]
		second[i] = plane[2*i+1]
	}
	return
}

func decodeNV12(frame []byte, width, height int) (image.Image, func(), error) {
	yi := width * height
	ci := yi + width*(height/2)

	if ci > len(frame) {
		return nil, func() {}, fmt.Errorf("frame length (%d) less than expected (%d)", len(frame), ci)
	}

	cb, cr := deinterleave(frame[yi:ci])

	return &image.YCbCr{
		Y:              frame[:yi:yi],
		YStride:        width,
		Cb:             cb,
		Cr:             cr,
		CStride:        width / 2,
		SubsampleRatio: image.YCbCrSubsampleRatio420,
		Rect:           image.Rect(0, 0, width, height),
	}, func() {}, nil
}

func decodeNV21(frame []byte, width, height int) (image.Image, func(), error) {
	yi := width * height
	ci := yi + width*(height/2)

	if ci > len(frame) {
		return nil, func() {}, fmt.Errorf("frame length (%d) less than expected (%d)", len(frame), ci)
	}

	cr, cb := deinterleave(frame[yi:ci])

	return &image.YCbCr{
		Y:              frame[:yi:yi],
		YStride:        width,
		Cb:             cb,
		Cr:             cr,
		CStride:        width / 2,
		SubsampleRatio: image.YCbCrSubsampleRatio420,
		Rect:           image.Rect(0, 0, width, height),
	}, func() {}, nil
}

func decodeI444(frame []byte, width, height int) (image.Image, func(), error) {
	yi := width * height
	cbi := 2 * yi
	cri := 3 * yi

	if cri > len(frame) {
		return nil, func() {}, fmt.Errorf("frame length (%d) less than expected (%d)", len(frame), cri)
	}

	return &image.YCbCr{
		Y:              frame[:yi:yi],
		YStride:        width,
		Cb:             frame[yi:cbi:cbi],
		Cr:             frame[cbi:cri:cri],
		CStride:        width,
		SubsampleRatio: image.YCbCrSubsampleRatio444,
		Rect:           image.Rect(0, 0, width, height),
	}, func() {}, nil
}
