// SPDX-License-Identifier: EPL-2.0

package wav2c

import (
	"errors"
	"fmt"

	"github.com/ik5/wav2c/audio"
	"github.com/ik5/wav2c/formats/cheader"
)

var (
	// ErrUnsupportedFormat is returned for input that is not 8-bit or
	// 16-bit PCM. It is the same value as audio.ErrUnsupportedFormat.
	ErrUnsupportedFormat = audio.ErrUnsupportedFormat

	ErrUnsupportedBitDepth = errors.New("only 8-bit output is supported")
	ErrMissingPath         = errors.New("path is required")
)

const (
	DefaultTargetRate = 22050
	DefaultTargetBits = 8
	DefaultResampler  = "polyphase"
	DefaultOutputPath = "sample_data.h"
)

// Config holds the parameters of one conversion.
type Config struct {
	InputPath  string `yaml:"input"`
	OutputPath string `yaml:"output"`

	// TargetRate is the sample rate of the generated table in Hz.
	TargetRate int `yaml:"target_rate"`
	// TargetBits must be 8.
	TargetBits int `yaml:"target_bits"`

	// Resampler names an entry of audio.DefaultRegistry.
	Resampler string        `yaml:"resampler"`
	Quality   audio.Quality `yaml:"quality"`

	ArrayName  string `yaml:"array_name"`
	LengthName string `yaml:"length_name"`
	PerLine    int    `yaml:"per_line"`

	// PreviewPath, when set, also writes the output as an 8-bit WAV.
	PreviewPath string `yaml:"preview"`
}

// DefaultConfig returns a Config with every field but InputPath set.
func DefaultConfig() Config {
	return Config{
		OutputPath: DefaultOutputPath,
		TargetRate: DefaultTargetRate,
		TargetBits: DefaultTargetBits,
		Resampler:  DefaultResampler,
		Quality:    audio.QualityHigh,
		ArrayName:  cheader.DefaultArrayName,
		LengthName: cheader.DefaultLengthName,
		PerLine:    cheader.DefaultPerLine,
	}
}

// Validate reports the first problem that would stop a conversion.
func (c Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("input %w", ErrMissingPath)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output %w", ErrMissingPath)
	}
	if c.TargetRate < 1 {
		return fmt.Errorf("%w: target rate %d", audio.ErrInvalidRate, c.TargetRate)
	}
	if c.TargetBits != 8 {
		return fmt.Errorf("%w: got %d", ErrUnsupportedBitDepth, c.TargetBits)
	}

	if _, err := c.resampler(); err != nil {
		return err
	}

	return c.headerOptions("").Validate()
}

func (c Config) resampler() (audio.Resampler, error) {
	return audio.DefaultRegistry().New(c.Resampler, c.Quality)
}

func (c Config) headerOptions(source string) cheader.Options {
	return cheader.Options{
		Source:     source,
		ArrayName:  c.ArrayName,
		LengthName: c.LengthName,
		PerLine:    c.PerLine,
	}
}
