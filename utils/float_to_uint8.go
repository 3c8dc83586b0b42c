// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float64ToUint8 maps an amplitude in [-1, 1] onto unsigned 8-bit PCM,
// where 0 is full negative, 255 is full positive and 127/128 is silence.
// Values outside the range are clipped and NaN is treated as silence.
// Ties round to even.
func Float64ToUint8(x float64) uint8 {
	switch {
	case math.IsNaN(x):
		x = 0
	case x > 1:
		x = 1
	case x < -1:
		x = -1
	}

	return uint8(math.RoundToEven((x + 1) * 127.5))
}
