package frame

// Return a function to get the number of bytes a frame will occupy in the given format
var FrameSizeMap = map[Format]frameSizeFunc{
	FormatI420:  frameSizeI420,
	FormatYV12:  frameSizeI420, // YV12 only swaps the chroma planes of I420
	FormatNV12:  frameSizeNV12,
	FormatNV21:  frameSizeNV12, // NV12 and NV21 have the same frame size
	FormatI444:  frameSizeI444,
	FormatRGB24: frameSizeI444, // 3 bytes per pixel as well
}

type frameSizeFunc func(width, height int) int

func frameSizeI420(width, height int) int {
	yi := width * height
	cbi := yi + (width/2)*(height/2)
	cri := cbi + (width/2)*(height/2)
	return cri
}

func frameSizeNV12(width, height int) int {
	yi := width * height
	ci := yi + width*(height/2)
	return ci
}

func frameSizeI444(width, height int) int {
	return 3 * width * height
}
