// Package visual renders raw frames as grids of hex samples, tagged with the
// channel each byte belongs to.
//
// A rendered frame starts with a header line, then prints every plane in
// memory order, one text line per plane row:
//
//	fmt:NV12 4x2
//	Y00 Y01 Y02 Y03
//	Y04 Y05 Y06 Y07
//	U80 V80 U81 V81
package visual

import (
	"fmt"
	"io"
	"strings"

	"github.com/pion/yuvlayout/pkg/frame"
)

const (
	ansiRed   = "\033[31m"
	ansiGreen = "\033[32m"
	ansiBlue  = "\033[34m"
	ansiReset = "\033[0m"
)

type options struct {
	color bool
}

// Option configures Render.
type Option func(*options)

// WithColor wraps every sample in an ANSI color: Y red, U green, V blue.
func WithColor(enabled bool) Option {
	return func(o *options) {
		o.color = enabled
	}
}

// Glyph returns the one letter tag of a sample channel.
func Glyph(c frame.Channel) byte {
	switch c {
	case frame.ChannelY:
		return 'Y'
	case frame.ChannelU:
		return 'U'
	case frame.ChannelV:
		return 'V'
	}
	return 'N'
}

// Sample formats one byte with its channel tag, followed by a space.
func Sample(c frame.Channel, b byte, color bool) string {
	s := fmt.Sprintf("%c%02X ", Glyph(c), b)
	if !color {
		return s
	}
	switch c {
	case frame.ChannelY:
		return ansiRed + s + ansiReset
	case frame.ChannelU:
		return ansiGreen + s + ansiReset
	case frame.ChannelV:
		return ansiBlue + s + ansiReset
	}
	return ansiReset + s
}

// sampleChannel resolves the channel of the byte at col within a plane row.
func sampleChannel(p frame.Plane, col int) frame.Channel {
	switch p.Channel {
	case frame.ChannelUV:
		if col%2 == 0 {
			return frame.ChannelU
		}
		return frame.ChannelV
	case frame.ChannelVU:
		if col%2 == 0 {
			return frame.ChannelV
		}
		return frame.ChannelU
	}
	return p.Channel
}

// Write renders buf, a frame with layout l, to w.
func Write(w io.Writer, buf []byte, l frame.Layout, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if err := l.Validate(buf); err != nil {
		return err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "fmt:%s %dx%d\n", l.Format, l.Width, l.Height)
	for _, p := range l.Planes() {
		for row := 0; row < p.Height; row++ {
			line := buf[p.Offset+row*p.Width : p.Offset+(row+1)*p.Width]
			for col, b := range line {
				sb.WriteString(Sample(sampleChannel(p, col), b, o.color))
			}
			sb.WriteByte('\n')
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// Render returns the text Write would produce.
func Render(buf []byte, l frame.Layout, opts ...Option) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, buf, l, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}
