package frame

import "fmt"

// Channel names the samples a plane holds.
type Channel int

const (
	ChannelUnknown Channel = iota
	ChannelY
	ChannelU
	ChannelV
	// ChannelUV is an interleaved plane where U comes first in every pair
	ChannelUV
	// ChannelVU is an interleaved plane where V comes first in every pair
	ChannelVU
)

func (c Channel) String() string {
	switch c {
	case ChannelY:
		return "Y"
	case ChannelU:
		return "U"
	case ChannelV:
		return "V"
	case ChannelUV:
		return "UV"
	case ChannelVU:
		return "VU"
	}
	return "N"
}

// Plane is a contiguous region of a frame buffer. Width is counted in bytes,
// so an interleaved chroma plane of a w-wide frame is w bytes wide.
type Plane struct {
	Channel Channel
	Offset  int
	Width   int
	Height  int
}

// Size returns the number of bytes the plane occupies.
func (p Plane) Size() int {
	return p.Width * p.Height
}

// Layout describes a raw frame: its format and its dimensions. A Layout never
// holds the buffer itself, the caller keeps ownership of it.
type Layout struct {
	Format        Format
	Width, Height int
}

// NewLayout validates the dimensions and returns a Layout. 4:2:0 formats need
// even dimensions.
func NewLayout(f Format, width, height int) (Layout, error) {
	l := Layout{Format: f, Width: width, Height: height}
	if width <= 0 || height <= 0 {
		return Layout{}, fmt.Errorf("%w: invalid dimensions %dx%d", ErrPreconditionViolation, width, height)
	}
	if f.Is420() && (width%2 != 0 || height%2 != 0) {
		return Layout{}, fmt.Errorf("%w: %s needs even dimensions, got %dx%d", ErrPreconditionViolation, f, width, height)
	}
	return l, nil
}

func (l Layout) String() string {
	return fmt.Sprintf("%s %dx%d", l.Format, l.Width, l.Height)
}

// Size returns the number of bytes a frame with this layout occupies. Formats
// without a known chroma layout only count their luma plane.
func (l Layout) Size() int {
	if size, ok := FrameSizeMap[l.Format]; ok {
		return size(l.Width, l.Height)
	}
	return l.Width * l.Height
}

// Validate checks that buf is large enough to hold a frame of this layout.
func (l Layout) Validate(buf []byte) error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: invalid dimensions %dx%d", ErrPreconditionViolation, l.Width, l.Height)
	}
	if size := l.Size(); len(buf) < size {
		return &InsufficientBufferError{RequiredSize: size, ActualSize: len(buf)}
	}
	return nil
}

// ChromaSupported returns ErrUnsupportedFormat when Locate can only resolve
// luma for this layout.
func (l Layout) ChromaSupported() error {
	if _, ok := l.Format.Chroma(); !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, l.Format)
	}
	return nil
}

// Planes lists the planes of the layout in memory order. RGB24 is one packed
// plane of untagged bytes, 3*width wide.
func (l Layout) Planes() []Plane {
	luma := Plane{Channel: ChannelY, Width: l.Width, Height: l.Height}
	base := luma.Size()
	cw, ch := l.Width/2, l.Height/2

	switch l.Format {
	case FormatI420:
		return []Plane{
			luma,
			{Channel: ChannelU, Offset: base, Width: cw, Height: ch},
			{Channel: ChannelV, Offset: base + cw*ch, Width: cw, Height: ch},
		}
	case FormatYV12:
		return []Plane{
			luma,
			{Channel: ChannelV, Offset: base, Width: cw, Height: ch},
			{Channel: ChannelU, Offset: base + cw*ch, Width: cw, Height: ch},
		}
	case FormatNV12:
		return []Plane{
			luma,
			{Channel: ChannelUV, Offset: base, Width: l.Width, Height: ch},
		}
	case FormatNV21:
		return []Plane{
			luma,
			{Channel: ChannelVU, Offset: base, Width: l.Width, Height: ch},
		}
	case FormatI444:
		return []Plane{
			luma,
			{Channel: ChannelU, Offset: base, Width: l.Width, Height: l.Height},
			{Channel: ChannelV, Offset: 2 * base, Width: l.Width, Height: l.Height},
		}
	case FormatRGB24:
		return []Plane{
			{Channel: ChannelUnknown, Width: 3 * l.Width, Height: l.Height},
		}
	}
	return []Plane{luma}
}

// Address holds the byte offsets of one pixel's samples within a frame
// buffer. U and V are only meaningful when Chroma is true.
type Address struct {
	Y, U, V int
	Chroma  bool
}

// Locate returns the offsets of the Y, U and V samples of the pixel at
// (row, col). Every pixel of a 2x2 block shares the same chroma offsets in
// the 4:2:0 layouts. For a format without a known chroma layout only the luma
// offset is resolved.
func (l Layout) Locate(row, col int) (Address, error) {
	if row < 0 || col < 0 || row >= l.Height || col >= l.Width {
		return Address{}, &OutOfBoundsError{Row: row, Col: col, Width: l.Width, Height: l.Height}
	}

	luma := l.Width * l.Height
	addr := Address{Y: row*l.Width + col}

	switch l.Format {
	case FormatI420, FormatYV12:
		quarter := (l.Width / 2) * (l.Height / 2)
		ci := (row/2)*(l.Width/2) + col/2
		first, second := luma+ci, luma+quarter+ci
		if l.Format == FormatI420 {
			addr.U, addr.V = first, second
		} else {
			addr.V, addr.U = first, second
		}
	case FormatNV12, FormatNV21:
		even := luma + (row/2)*l.Width + (col - col%2)
		if l.Format == FormatNV12 {
			addr.U, addr.V = even, even+1
		} else {
			addr.V, addr.U = even, even+1
		}
	case FormatI444:
		addr.U, addr.V = luma+addr.Y, 2*luma+addr.Y
	default:
		return addr, nil
	}

	addr.Chroma = true
	return addr, nil
}

// Sample is one pixel's luma and chroma values.
type Sample struct {
	Y, U, V uint8
}

// neutralChroma is the chroma value of a gray pixel.
const neutralChroma = 128

// At reads the sample of the pixel at (row, col) from buf. Formats without a
// known chroma layout report neutral chroma.
func (l Layout) At(buf []byte, row, col int) (Sample, error) {
	if err := l.Validate(buf); err != nil {
		return Sample{}, err
	}
	addr, err := l.Locate(row, col)
	if err != nil {
		return Sample{}, err
	}
	if !addr.Chroma {
		return Sample{Y: buf[addr.Y], U: neutralChroma, V: neutralChroma}, nil
	}
	return Sample{Y: buf[addr.Y], U: buf[addr.U], V: buf[addr.V]}, nil
}
