package main

import (
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	bezier "github.com/tphakala/go-bezier-spline"
)

// Normalization constants per PCM bit depth.
const (
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0
)

// pcmScale returns the full-scale value for a PCM bit depth.
func pcmScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case 16:
		return maxInt16, nil
	case 24:
		return maxInt24, nil
	case 32:
		return maxInt32, nil
	default:
		return 0, fmt.Errorf("unsupported bit depth: %d", bitDepth)
	}
}

// decodeWAV reads the whole file into per-channel float64 slices
// normalized to [-1, 1].
func decodeWAV(path string) (channels [][]float64, rate, bitDepth int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, 0, 0, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to decode PCM data: %w", err)
	}

	bitDepth = int(decoder.BitDepth)
	scale, err := pcmScale(bitDepth)
	if err != nil {
		return nil, 0, 0, err
	}

	numChannels := buf.Format.NumChannels
	frames := len(buf.Data) / numChannels
	channels = make([][]float64, numChannels)
	for ch := range channels {
		channels[ch] = make([]float64, frames)
	}
	for i := range frames {
		for ch := range numChannels {
			channels[ch][i] = float64(buf.Data[i*numChannels+ch]) / scale
		}
	}
	return channels, buf.Format.SampleRate, bitDepth, nil
}

// encodeWAV interleaves the per-channel samples, converts them back to
// PCM at the given bit depth with clamping, and writes the output file.
func encodeWAV(path string, channels [][]float64, rate, bitDepth int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = f.Close() }()

	scale, err := pcmScale(bitDepth)
	if err != nil {
		return err
	}

	numChannels := len(channels)
	frames := len(channels[0])
	data := make([]int, frames*numChannels)
	for i := range frames {
		for ch := range numChannels {
			v := math.Round(channels[ch][i] * scale)
			v = math.Max(-scale-1, math.Min(scale, v))
			data[i*numChannels+ch] = int(v)
		}
	}

	enc := wav.NewEncoder(f, rate, bitDepth, numChannels, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numChannels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}

// interpolateChannels runs the spline interpolation on every channel
// concurrently. Channels are independent, so the goroutines share no
// mutable state.
func interpolateChannels(channels [][]float64, resolution int) ([][]float64, error) {
	output := make([][]float64, len(channels))
	errs := make([]error, len(channels))

	var wg sync.WaitGroup
	for ch := range channels {
		wg.Add(1)
		go func(ch int) {
			defer wg.Done()
			out, err := bezier.Interpolate(channels[ch], resolution)
			if err != nil {
				errs[ch] = fmt.Errorf("channel %d: %w", ch, err)
				return
			}
			output[ch] = out
		}(ch)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return output, nil
}
