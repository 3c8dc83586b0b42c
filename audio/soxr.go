// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	resampling "github.com/tphakala/go-audio-resampling"
)

var soxrQuality = map[Quality]resampling.QualitySpec{
	QualityQuick:    {Preset: resampling.QualityQuick},
	QualityLow:      {Preset: resampling.QualityLow},
	QualityMedium:   {Preset: resampling.QualityMedium},
	QualityHigh:     {Preset: resampling.QualityHigh},
	QualityVeryHigh: {Preset: resampling.QualityVeryHigh},
}

// soxrMinPad is the least number of edge samples added on either side of
// the input, enough to absorb the filter delay and its start-up transient.
const soxrMinPad = 4096

// Soxr resamples with a pure Go port of libsoxr. Its stopband is shallow
// just above the target Nyquist limit, so some out-of-band content folds
// back when downsampling; Polyphase does not have this problem.
//
// The library delays its output by an amount that depends on the ratio and
// the preset. Resample measures that delay with an impulse through an
// identically configured filter and cuts the output accordingly, so output
// sample m still lines up with input time m*src/dst.
type Soxr struct {
	quality resampling.QualitySpec
}

// NewSoxr returns a Soxr resampler. An empty quality selects QualityHigh.
func NewSoxr(q Quality) (*Soxr, error) {
	if q == "" {
		q = QualityHigh
	}

	preset, ok := soxrQuality[q]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuality, q)
	}

	return &Soxr{quality: preset}, nil
}

func (s *Soxr) Resample(samples []float64, srcRate, dstRate int) ([]float64, error) {
	if srcRate < 1 || dstRate < 1 {
		return nil, fmt.Errorf("%w: %d -> %d", ErrInvalidRate, srcRate, dstRate)
	}

	n := OutputLength(len(samples), srcRate, dstRate)
	if len(samples) == 0 {
		return make([]float64, 0), nil
	}

	// a pad that is a multiple of step maps onto a whole output sample
	step := srcRate / gcd(srcRate, dstRate)
	pad := (max(soxrMinPad, srcRate/8) + step - 1) / step * step

	padded := make([]float64, pad+len(samples)+pad)
	for i := range padded {
		padded[i] = samples[max(0, min(i-pad, len(samples)-1))]
	}

	out, err := s.run(padded, srcRate, dstRate)
	if err != nil {
		return nil, err
	}

	impulse := make([]float64, len(padded))
	impulse[pad] = 1

	response, err := s.run(impulse, srcRate, dstRate)
	if err != nil {
		return nil, err
	}

	start := min(peakIndex(response), len(out))

	return fitLength(out[start:], n), nil
}

// run feeds samples through a fresh filter and flushes it.
func (s *Soxr) run(samples []float64, srcRate, dstRate int) ([]float64, error) {
	rs, err := resampling.New(&resampling.Config{
		InputRate:  float64(srcRate),
		OutputRate: float64(dstRate),
		Channels:   1,
		Quality:    s.quality,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create resampler: %w", err)
	}

	out, err := rs.Process(samples)
	if err != nil {
		return nil, fmt.Errorf("resample error: %w", err)
	}

	tail, err := rs.Flush()
	if err != nil {
		return nil, fmt.Errorf("flush error: %w", err)
	}

	return append(out, tail...), nil
}

// peakIndex returns the index of the largest absolute value in s.
func peakIndex(s []float64) int {
	peak, best := 0, -1.0
	for i, v := range s {
		if v < 0 {
			v = -v
		}
		if v > best {
			peak, best = i, v
		}
	}

	return peak
}
