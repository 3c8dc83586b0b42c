// SPDX-License-Identifier: EPL-2.0

// Package config loads conversion settings from YAML files.
//
// A file holds any subset of the wav2c.Config keys:
//
//	input: kick.wav
//	output: kick.h
//	target_rate: 16000
//	resampler: soxr
//	quality: veryhigh
//	array_name: kick
//	length_name: KICK_LEN
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/ik5/wav2c"
)

// Load reads the YAML file at path over base. Keys missing from the file
// keep their base value and unknown keys are an error. An empty path
// returns base as is.
func Load(path string, base wav2c.Config) (wav2c.Config, error) {
	if path == "" {
		return base, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read %s: %w", path, err)
	}

	cfg := base
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.DisallowUnknownField()); err != nil {
		return base, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}
