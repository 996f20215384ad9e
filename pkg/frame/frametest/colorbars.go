package frametest

import (
	"math/rand"

	"github.com/pion/yuvlayout/pkg/frame"
)

// 75% bars in YUV: white, yellow, cyan, green, magenta, red, blue
var colors = [][3]byte{
	{235, 128, 128},
	{210, 16, 146},
	{170, 166, 16},
	{145, 54, 34},
	{107, 202, 222},
	{82, 90, 240},
	{41, 240, 110},
}

// ColorBars renders a color bar test pattern into a new frame with layout l.
// The top three quarters hold the bars, the bottom quarter a gray gradation
// followed by seeded noise, so the output is identical on every call.
func ColorBars(l frame.Layout) ([]byte, error) {
	if err := l.ChromaSupported(); err != nil {
		return nil, err
	}
	b := make([]byte, l.Size())
	hColorBarEnd := l.Height * 3 / 4
	wGradationEnd := l.Width * 5 / 7
	random := rand.New(rand.NewSource(0))

	for row := 0; row < l.Height; row++ {
		for col := 0; col < l.Width; col++ {
			addr, err := l.Locate(row, col)
			if err != nil {
				return nil, err
			}

			var yy, cb, cr byte
			switch {
			case row < hColorBarEnd:
				c := colors[col*len(colors)/l.Width]
				yy, cb, cr = byte(uint16(c[0])*75/100), c[1], c[2]
			case col < wGradationEnd:
				// Gray gradation
				yy, cb, cr = byte(col*255/wGradationEnd), 128, 128
			default:
				// Noise area
				yy, cb, cr = byte(random.Int31n(2)*255), 128, 128
			}

			b[addr.Y] = yy
			b[addr.U] = cb
			b[addr.V] = cr
		}
	}
	return b, nil
}
