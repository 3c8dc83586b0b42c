// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ik5/wav2c/utils"

// Quantize clips every sample to [-1, 1] and maps it onto unsigned 8-bit
// PCM with round((x+1) * 127.5), ties to even.
func Quantize(samples []float64) []uint8 {
	out := make([]uint8, len(samples))
	for i, x := range samples {
		out[i] = utils.Float64ToUint8(x)
	}

	return out
}
