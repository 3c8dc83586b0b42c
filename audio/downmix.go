// SPDX-License-Identifier: EPL-2.0

package audio

// Downmix averages interleaved frames of the given channel count into a
// single channel. Mono input is copied. Frames with more than two channels
// are averaged across all of them. A trailing partial frame is dropped.
func Downmix(samples []float64, channels int) []float64 {
	if channels <= 1 {
		out := make([]float64, len(samples))
		copy(out, samples)
		return out
	}

	frames := len(samples) / channels
	out := make([]float64, frames)

	switch channels {
	case 2:
		for f := range frames {
			idx := f << 1
			out[f] = (samples[idx] + samples[idx+1]) * 0.5
		}
	default:
		inv := 1.0 / float64(channels)
		for f := range frames {
			sum := 0.0
			base := f * channels
			for c := range channels {
				sum += samples[base+c]
			}
			out[f] = sum * inv
		}
	}

	return out
}
