// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/ik5/wav2c/utils"
)

// Cubic resamples with Catmull-Rom interpolation between neighbouring
// samples. When downsampling, a one-pole low-pass runs over the input first.
// It is cheap, but it only attenuates aliasing; Soxr removes it.
type Cubic struct{}

// cubicFilterAlpha is the coefficient of the downsampling pre-filter:
// y[n] = alpha*x[n] + (1-alpha)*y[n-1].
const cubicFilterAlpha = 0.5

func (Cubic) Resample(samples []float64, srcRate, dstRate int) ([]float64, error) {
	if srcRate < 1 || dstRate < 1 {
		return nil, fmt.Errorf("%w: %d -> %d", ErrInvalidRate, srcRate, dstRate)
	}

	n := OutputLength(len(samples), srcRate, dstRate)
	out := make([]float64, n)
	if len(samples) == 0 {
		return out, nil
	}

	in := samples
	if srcRate > dstRate {
		in = lowPass(samples, cubicFilterAlpha)
	}

	// ratio is how many source samples we advance per output sample
	ratio := float64(srcRate) / float64(dstRate)
	last := len(in) - 1
	at := func(i int) float64 {
		// edge samples are duplicated past either end
		return in[max(0, min(i, last))]
	}

	for i := range n {
		pos := float64(i) * ratio
		idx := int(pos)
		frac := pos - float64(idx)

		out[i] = utils.CubicInterpolate(at(idx-1), at(idx), at(idx+1), at(idx+2), frac)
	}

	return out, nil
}

func lowPass(samples []float64, alpha float64) []float64 {
	out := make([]float64, len(samples))

	// seed with the first sample to avoid a warm-up transient
	state := samples[0]
	for i, x := range samples {
		state = alpha*x + (1-alpha)*state
		out[i] = state
	}

	return out
}
