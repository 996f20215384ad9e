// Command yuvtool generates, inspects and converts raw YUV frames.
//
//	yuvtool gen -format NV12 -w 8 -h 8 -o nv12_008x008.yuv
//	yuvtool dump nv12_008x008.yuv NV12 8 8
//	yuvtool torgb -format NV12 -w 8 -h 8 nv12_008x008.yuv out.png
//	yuvtool fromrgb -format I420 in.jpg out.yuv
//	yuvtool convert -rot90 -scale 1/2 -q 80 in.png out.jpg
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pion/yuvlayout/internal/logging"
	"github.com/spf13/afero"
	"golang.org/x/term"
)

var logger = logging.NewLogger("yuvlayout/yuvtool")

var errUsage = errors.New("invalid arguments")

const usage = `usage: yuvtool <command> [flags] [args]

commands:
  gen      write a synthetic ramp or color bar frame
  dump     print a raw frame as tagged hex samples
  torgb    convert a raw frame to a BMP, JPEG or PNG image
  fromrgb  convert a BMP, JPEG or PNG image to a raw frame
  convert  flip, rotate, crop, scale or gray out an image file

Run "yuvtool <command> -help" for the flags of a command.
`

// env is everything a command touches outside of its arguments.
type env struct {
	fs         afero.Fs
	stdout     io.Writer
	stderr     io.Writer
	isTerminal func() bool
}

type command func(e *env, args []string) error

var commands = map[string]command{
	"gen":     runGen,
	"dump":    runDump,
	"torgb":   runToRGB,
	"fromrgb": runFromRGB,
	"convert": runConvert,
}

func run(e *env, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
	return cmd(e, args[1:])
}

func main() {
	e := &env{
		fs:     afero.NewOsFs(),
		stdout: os.Stdout,
		stderr: os.Stderr,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
	}

	if err := run(e, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
		}
		logger.Error(err.Error())
		os.Exit(1)
	}
}
