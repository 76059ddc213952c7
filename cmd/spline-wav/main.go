// Command spline-wav upsamples WAV audio through a quartic Bezier spline.
//
// Usage:
//
//	spline-wav -res 4 input.wav output.wav
//	spline-wav -res 8 -verbose input.wav output.wav
//
// Every channel is fitted with a piecewise quartic Bezier spline and
// evaluated at -res points per segment, so the output sample rate is the
// input rate multiplied by the resolution. Channels are processed in
// parallel. Note that a curve of N samples carries N-Degree segments, so
// the output is (N-Degree)*res frames long.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	bezier "github.com/tphakala/go-bezier-spline"
)

const (
	defaultResolution = 4
	minRequiredArgs   = 2
)

func main() {
	resolution := flag.Int("res", defaultResolution, "evaluation points per spline segment")
	verbose := flag.Bool("verbose", false, "print processing details")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < minRequiredArgs {
		flag.Usage()
		os.Exit(1)
	}
	if *resolution <= 0 {
		log.Fatalf("resolution must be positive, got %d", *resolution)
	}
	inputPath, outputPath := flag.Arg(0), flag.Arg(1)

	channels, rate, bitDepth, err := decodeWAV(inputPath)
	if err != nil {
		log.Fatalf("reading %s: %v", inputPath, err)
	}
	if *verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit, %d frames",
			rate, len(channels), bitDepth, len(channels[0]))
	}

	start := time.Now()
	output, err := interpolateChannels(channels, *resolution)
	if err != nil {
		log.Fatalf("interpolating: %v", err)
	}
	if *verbose {
		log.Printf("Fitted %d segments per channel in %v",
			len(channels[0])-bezier.Degree, time.Since(start))
	}

	outRate := rate * *resolution
	if err := encodeWAV(outputPath, output, outRate, bitDepth); err != nil {
		log.Fatalf("writing %s: %v", outputPath, err)
	}
	if *verbose {
		log.Printf("Output format: %d Hz, %d frames", outRate, len(output[0]))
	}
}
