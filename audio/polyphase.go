// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

// polyphasePreset describes the anti-aliasing filter of one quality preset.
// passband is the fraction of the lower Nyquist limit kept flat; the
// stopband always starts at that Nyquist limit.
type polyphasePreset struct {
	passband    float64
	attenuation float64 // stopband attenuation in dB
}

var polyphaseQuality = map[Quality]polyphasePreset{
	QualityQuick:    {passband: 0.80, attenuation: 60},
	QualityLow:      {passband: 0.85, attenuation: 80},
	QualityMedium:   {passband: 0.90, attenuation: 96},
	QualityHigh:     {passband: 0.92, attenuation: 110},
	QualityVeryHigh: {passband: 0.95, attenuation: 140},
}

// Polyphase is a rational resampler built on a Kaiser-windowed sinc
// low-pass. Rates are converted by the exact ratio dst/src reduced by their
// gcd. The filter is applied centred on every output sample, so output
// sample m lines up with input time m*src/dst and the signal is not
// delayed. Before the first and after the last input sample the edge value
// is repeated, which keeps constant input constant up to both ends.
type Polyphase struct {
	preset polyphasePreset
}

// NewPolyphase returns a Polyphase resampler. An empty quality selects
// QualityHigh.
func NewPolyphase(q Quality) (*Polyphase, error) {
	if q == "" {
		q = QualityHigh
	}

	preset, ok := polyphaseQuality[q]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuality, q)
	}

	return &Polyphase{preset: preset}, nil
}

func (p *Polyphase) Resample(samples []float64, srcRate, dstRate int) ([]float64, error) {
	if srcRate < 1 || dstRate < 1 {
		return nil, fmt.Errorf("%w: %d -> %d", ErrInvalidRate, srcRate, dstRate)
	}

	n := OutputLength(len(samples), srcRate, dstRate)
	out := make([]float64, n)
	if len(samples) == 0 {
		return out, nil
	}

	g := gcd(srcRate, dstRate)
	up, down := dstRate/g, srcRate/g
	f := designPolyphase(up, down, p.preset)

	last := len(samples) - 1
	for m := range out {
		// position of output m on the upsampled grid, shifted by the
		// filter centre
		c := m*down + f.centre
		i := c / up
		j := c - i*up

		acc := 0.0
		for ; j < len(f.taps); j, i = j+up, i-1 {
			acc += f.taps[j] * samples[max(0, min(i, last))]
		}
		out[m] = acc
	}

	return out, nil
}

type polyphaseFilter struct {
	taps   []float64
	centre int
}

// designPolyphase builds the prototype low-pass on the grid upsampled by
// up. Taps are grouped by their index modulo up and every group sums to
// one, so each output sample has unity gain at DC.
func designPolyphase(up, down int, preset polyphasePreset) polyphaseFilter {
	// normalised to the upsampled rate
	nyquist := 0.5 / float64(max(up, down))
	cutoff := nyquist * (1 + preset.passband) / 2
	transition := nyquist * (1 - preset.passband)

	beta := kaiserBeta(preset.attenuation)
	size := int(math.Ceil((preset.attenuation - 7.95) / (2.285 * 2 * math.Pi * transition)))
	size = max(size, 2*up)
	if size%2 == 0 {
		size++
	}
	centre := (size - 1) / 2

	taps := make([]float64, size)
	norm := besselI0(beta)
	for n := range taps {
		t := float64(n - centre)
		taps[n] = 2 * cutoff * sinc(2*cutoff*t) * kaiserWindow(n, size, beta, norm)
	}

	sums := make([]float64, up)
	for n, h := range taps {
		sums[n%up] += h
	}
	for n := range taps {
		if s := sums[n%up]; s != 0 {
			taps[n] /= s
		}
	}

	return polyphaseFilter{taps: taps, centre: centre}
}

// kaiserBeta is Kaiser's empirical window parameter for a stopband
// attenuation of a dB.
func kaiserBeta(a float64) float64 {
	switch {
	case a > 50:
		return 0.1102 * (a - 8.7)
	case a >= 21:
		return 0.5842*math.Pow(a-21, 0.4) + 0.07886*(a-21)
	default:
		return 0
	}
}

// kaiserWindow is tap i of an n tap Kaiser window. norm is besselI0(beta).
func kaiserWindow(i, n int, beta, norm float64) float64 {
	if n <= 1 || beta == 0 {
		return 1
	}

	t := 2*float64(i)/float64(n-1) - 1
	a := math.Sqrt(math.Max(0, 1-t*t))

	return besselI0(beta*a) / norm
}

// besselI0 is the zeroth order modified Bessel function of the first kind,
// summed as a power series.
func besselI0(x float64) float64 {
	sum := 1.0
	term := 1.0

	x2 := (x * x) / 4
	for k := 1; k < 128; k++ {
		term *= x2 / float64(k*k)

		sum += term
		if term < 1e-16*sum {
			break
		}
	}

	return sum
}

func sinc(x float64) float64 {
	if math.Abs(x) < 1e-12 {
		return 1
	}

	pix := math.Pi * x

	return math.Sin(pix) / pix
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
