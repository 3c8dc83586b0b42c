// SPDX-License-Identifier: EPL-2.0

package wav2c

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/ik5/wav2c/audio"
	"github.com/ik5/wav2c/formats/cheader"
	"github.com/ik5/wav2c/formats/wav"
)

// Result describes a finished conversion.
type Result struct {
	// Samples is the quantized table as written to OutputPath.
	Samples    []uint8
	OutputPath string

	SourceRate int
	Channels   int
	Width      int
	Duration   time.Duration
}

// Process downmixes, resamples and quantizes a decoded waveform according to
// cfg. Only the sample settings of cfg are used.
func Process(wf *audio.Waveform, cfg Config) ([]uint8, error) {
	if cfg.TargetRate < 1 {
		return nil, fmt.Errorf("%w: target rate %d", audio.ErrInvalidRate, cfg.TargetRate)
	}
	if cfg.TargetBits != 8 {
		return nil, fmt.Errorf("%w: got %d", ErrUnsupportedBitDepth, cfg.TargetBits)
	}

	rs, err := cfg.resampler()
	if err != nil {
		return nil, err
	}

	mono := audio.Downmix(wf.Samples(), wf.Channels())
	slog.Debug("downmixed", "channels", wf.Channels(), "frames", len(mono))

	resampled, err := audio.Resample(rs, mono, wf.SampleRate(), cfg.TargetRate)
	if err != nil {
		return nil, err
	}
	slog.Debug("resampled",
		"resampler", cfg.Resampler,
		"quality", cfg.Quality,
		"from", wf.SampleRate(),
		"to", cfg.TargetRate,
		"samples", len(resampled),
	)

	return audio.Quantize(resampled), nil
}

// Convert runs the whole pipeline: it decodes cfg.InputPath, processes it
// and writes the header to cfg.OutputPath. Nothing is written when decoding
// or processing fails.
func Convert(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	wf, err := wav.DecodeFile(cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", cfg.InputPath, err)
	}
	format := wf.Format()
	slog.Debug("decoded",
		"path", cfg.InputPath,
		"channels", format.NumChannels,
		"rate", format.SampleRate,
		"bits", wf.BitDepth(),
		"frames", wf.Frames(),
	)

	samples, err := Process(wf, cfg)
	if err != nil {
		return nil, err
	}

	opts := cfg.headerOptions(filepath.Base(cfg.InputPath))
	if err := cheader.WriteFile(cfg.OutputPath, samples, opts); err != nil {
		return nil, fmt.Errorf("write %s: %w", cfg.OutputPath, err)
	}
	slog.Debug("header written", "path", cfg.OutputPath, "samples", len(samples))

	if cfg.PreviewPath != "" {
		if err := wav.WritePreviewFile(cfg.PreviewPath, cfg.TargetRate, samples); err != nil {
			return nil, fmt.Errorf("write preview %s: %w", cfg.PreviewPath, err)
		}
		slog.Debug("preview written", "path", cfg.PreviewPath)
	}

	return &Result{
		Samples:    samples,
		OutputPath: cfg.OutputPath,
		SourceRate: format.SampleRate,
		Channels:   format.NumChannels,
		Width:      wf.Width(),
		Duration:   wf.Duration(),
	}, nil
}
