package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	yiv "github.com/Yaznbook/yiv-lib"
	"github.com/Yaznbook/yiv-lib/codec"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags before flag parsing
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("yiv %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	in := flag.String("in", "", "input image file (required)")
	out := flag.String("out", "", "output image file; format inferred from extension")
	rotate := flag.String("rotate", "", "rotate 90 degrees: cw or ccw")
	scale := flag.Float64("scale", 0, "nearest-neighbor scale factor (> 0)")
	filter := flag.String("filter", "", "filter: grayscale, invert, brightness, contrast")
	thumb := flag.String("thumb", "", "thumbnail bounds as WxH, e.g. 128x128")
	blurRadius := flag.Float64("blur", 0, "Gaussian blur radius")
	sharpen := flag.Bool("sharpen", false, "apply sharpening")
	flip := flag.String("flip", "", "mirror image: h or v")
	info := flag.Bool("info", false, "print image info and exit")
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	if *info {
		data, err := os.ReadFile(*in)
		if err != nil {
			log.Fatalf("Read failed: %v", err)
		}
		meta, err := codec.DecodeInfo(data)
		if err != nil {
			log.Fatalf("Inspect failed: %v", err)
		}
		fmt.Printf("%s: %dx%d %s, %d channels, alpha=%v\n",
			*in, meta.Width, meta.Height, meta.Format, meta.Channels, meta.HasAlpha)
		return
	}

	img := yiv.New()
	if err := img.LoadFile(*in); err != nil {
		log.Fatalf("Load failed: %v", err)
	}

	switch *rotate {
	case "":
	case "cw":
		img.RotateClockwise()
	case "ccw":
		img.RotateCounterClockwise()
	default:
		log.Fatalf("Unknown rotation %q (want cw or ccw)", *rotate)
	}

	if *scale > 0 {
		img.Scale(*scale)
	}

	switch *filter {
	case "":
	case "grayscale":
		img.ApplyFilter(yiv.FilterGrayscale)
	case "invert":
		img.ApplyFilter(yiv.FilterInvert)
	case "brightness":
		img.ApplyFilter(yiv.FilterBrightness)
	case "contrast":
		img.ApplyFilter(yiv.FilterContrast)
	default:
		log.Fatalf("Unknown filter %q", *filter)
	}

	if *blurRadius > 0 {
		img.Blur(*blurRadius)
	}
	if *sharpen {
		img.Sharpen()
	}

	switch *flip {
	case "":
	case "h":
		img.FlipHorizontal()
	case "v":
		img.FlipVertical()
	default:
		log.Fatalf("Unknown flip %q (want h or v)", *flip)
	}

	if *thumb != "" {
		var w, h int
		if _, err := fmt.Sscanf(strings.ToLower(*thumb), "%dx%d", &w, &h); err != nil {
			log.Fatalf("Bad thumbnail bounds %q: %v", *thumb, err)
		}
		img = img.Thumbnail(w, h)
	}

	if *out == "" {
		fmt.Printf("%dx%d, %d channels\n", img.Width(), img.Height(), img.Channels())
		return
	}

	format, err := codec.FormatFromExtension(*out)
	if err != nil {
		log.Fatalf("Cannot infer format for %q: %v", *out, err)
	}
	if err := img.SaveAs(*out, format); err != nil {
		log.Fatalf("Save failed: %v", err)
	}
}
