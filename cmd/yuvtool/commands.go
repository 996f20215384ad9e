package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"strconv"

	"github.com/pion/yuvlayout/pkg/codec/imagefile"
	"github.com/pion/yuvlayout/pkg/fixture"
	"github.com/pion/yuvlayout/pkg/frame"
	"github.com/pion/yuvlayout/pkg/frame/frametest"
	"github.com/pion/yuvlayout/pkg/frame/visual"
	"github.com/pion/yuvlayout/pkg/io/video"
)

func newFlagSet(e *env, name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	return fs
}

// parse wraps flag errors, except -help, into errUsage and checks the number
// of positional arguments.
func parse(fs *flag.FlagSet, args []string, nArgs int) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() != nArgs {
		return fmt.Errorf("%w: %s expects %d arguments, got %d", errUsage, fs.Name(), nArgs, fs.NArg())
	}
	return nil
}

func parseLayout(format string, width, height int) (frame.Layout, error) {
	f, err := frame.ParseFormat(format)
	if err != nil {
		return frame.Layout{}, fmt.Errorf("%w: %v", errUsage, err)
	}
	l, err := frame.NewLayout(f, width, height)
	if err != nil {
		return frame.Layout{}, fmt.Errorf("%w: %v", errUsage, err)
	}
	return l, nil
}

func runGen(e *env, args []string) error {
	fs := newFlagSet(e, "gen")
	format := fs.String("format", string(frame.FormatI420), "frame format")
	width := fs.Int("w", 8, "frame width")
	height := fs.Int("h", 8, "frame height")
	divisor := fs.Int("divisor", 1, "semi-planar chroma ramp divisor")
	pattern := fs.String("pattern", "ramp", "ramp or bars")
	output := fs.String("o", "", "output file, defaults to the fixture name")
	appendFrame := fs.Bool("append", false, "append to the output instead of replacing it")
	if err := parse(fs, args, 0); err != nil {
		return err
	}

	l, err := parseLayout(*format, *width, *height)
	if err != nil {
		return err
	}

	var data []byte
	switch *pattern {
	case "ramp":
		data, err = frametest.Generate(l, *divisor)
	case "bars":
		data, err = frametest.ColorBars(l)
	default:
		return fmt.Errorf("%w: unknown pattern %q", errUsage, *pattern)
	}
	if err != nil {
		return err
	}

	name := *output
	if name == "" {
		name = fixture.Name("", l)
	}

	store := fixture.NewStore(e.fs)
	if *appendFrame {
		err = store.Append(name, data)
	} else {
		err = store.Save(name, data)
	}
	if err != nil {
		return err
	}

	logger.Infof("%s frame written to %s", l, name)
	return nil
}

func runDump(e *env, args []string) error {
	fs := newFlagSet(e, "dump")
	colorMode := fs.String("color", "auto", "auto, always or never")
	if err := parse(fs, args, 4); err != nil {
		return err
	}

	var color bool
	switch *colorMode {
	case "auto":
		color = e.isTerminal()
	case "always":
		color = true
	case "never":
	default:
		return fmt.Errorf("%w: unknown color mode %q", errUsage, *colorMode)
	}

	width, err := strconv.Atoi(fs.Arg(2))
	if err != nil {
		return fmt.Errorf("%w: width: %v", errUsage, err)
	}
	height, err := strconv.Atoi(fs.Arg(3))
	if err != nil {
		return fmt.Errorf("%w: height: %v", errUsage, err)
	}

	// Unknown formats are still dumped, as luma only.
	f, err := frame.ParseFormat(fs.Arg(1))
	if err != nil {
		logger.Warnf("%v, showing luma only", err)
		f = frame.Format(fs.Arg(1))
	}
	l, err := frame.NewLayout(f, width, height)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	buf, err := fixture.NewStore(e.fs).LoadFrame(fs.Arg(0), l)
	if err != nil {
		return err
	}
	return visual.Write(e.stdout, buf, l, visual.WithColor(color))
}

func runToRGB(e *env, args []string) error {
	fs := newFlagSet(e, "torgb")
	format := fs.String("format", string(frame.FormatI420), "frame format")
	width := fs.Int("w", 0, "frame width")
	height := fs.Int("h", 0, "frame height")
	index := fs.Int("frame", 0, "index of the frame to convert")
	quality := fs.Int("q", imagefile.DefaultQuality, "JPEG quality")
	if err := parse(fs, args, 2); err != nil {
		return err
	}
	if *index < 0 {
		return fmt.Errorf("%w: negative frame index %d", errUsage, *index)
	}

	l, err := parseLayout(*format, *width, *height)
	if err != nil {
		return err
	}

	f, err := e.fs.Open(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()

	r, err := video.NewRawReader(f, l)
	if err != nil {
		return err
	}
	imgs, err := video.Collect(video.ToRGB24(r), *index+1)
	if err != nil {
		return fmt.Errorf("reading %s as %s: %w", fs.Arg(0), l, err)
	}
	if len(imgs) <= *index {
		return fmt.Errorf("%s holds %d frames of %s", fs.Arg(0), len(imgs), l)
	}

	return imagefile.Encode(e.fs, fs.Arg(1), imgs[*index], imagefile.Options{Quality: *quality})
}

func runFromRGB(e *env, args []string) error {
	fs := newFlagSet(e, "fromrgb")
	format := fs.String("format", string(frame.FormatI420), "frame format")
	appendFrame := fs.Bool("append", false, "append to the output instead of replacing it")
	if err := parse(fs, args, 2); err != nil {
		return err
	}

	img, err := imagefile.Decode(e.fs, fs.Arg(0))
	if err != nil {
		return err
	}
	b := img.Bounds()
	l, err := parseLayout(*format, b.Dx(), b.Dy())
	if err != nil {
		return err
	}

	data, err := frame.Encode(img, l)
	if err != nil {
		return err
	}

	store := fixture.NewStore(e.fs)
	if *appendFrame {
		return store.Append(fs.Arg(1), data)
	}
	return store.Save(fs.Arg(1), data)
}

// convertOps maps the convert flags to their transforms, in flag order.
var convertOps = []video.Op{
	video.OpHFlip,
	video.OpVFlip,
	video.OpTranspose,
	video.OpTransverse,
	video.OpRot90,
	video.OpRot180,
	video.OpRot270,
}

func runConvert(e *env, args []string) error {
	fs := newFlagSet(e, "convert")
	scale := fs.String("scale", "", "scaling factor M/N")
	crop := fs.String("crop", "", "crop region WxH+X+Y, applied after the transform")
	grayscale := fs.Bool("grayscale", false, "keep luma only")
	quality := fs.Int("q", imagefile.DefaultQuality, "JPEG quality")
	ops := make([]*bool, len(convertOps))
	for i, op := range convertOps {
		ops[i] = fs.Bool(op.String(), false, op.String()+" transform")
	}
	if err := parse(fs, args, 2); err != nil {
		return err
	}

	op := video.OpNone
	for i, set := range ops {
		if !*set {
			continue
		}
		if op != video.OpNone {
			return fmt.Errorf("%w: -%s and -%s are exclusive", errUsage, op, convertOps[i])
		}
		op = convertOps[i]
	}

	transforms := []video.TransformFunc{video.Transform(op)}
	if *crop != "" {
		rect, err := video.ParseCrop(*crop)
		if err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		transforms = append(transforms, video.Crop(rect))
	}
	if *scale != "" {
		factor, err := video.ParseScalingFactor(*scale)
		if err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		transforms = append(transforms, video.ScaleBy(factor, video.ScalerCatmullRom))
	}
	if *grayscale {
		transforms = append(transforms, video.Grayscale())
	}

	src, err := imagefile.Decode(e.fs, fs.Arg(0))
	if err != nil {
		return err
	}

	r := video.Merge(transforms...)(video.ReaderFunc(func() (image.Image, func(), error) {
		return src, func() {}, nil
	}))
	dst, release, err := r.Read()
	if err != nil {
		return err
	}
	defer release()

	return imagefile.Encode(e.fs, fs.Arg(1), dst, imagefile.Options{Quality: *quality})
}
