// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrUnsupportedFormat is returned for sample data that is not
	// 8-bit unsigned or 16-bit signed PCM.
	ErrUnsupportedFormat = errors.New("unsupported format")

	ErrInvalidChannels  = errors.New("channel count must be positive")
	ErrInvalidRate      = errors.New("sample rate must be positive")
	ErrUnknownResampler = errors.New("unknown resampler")
	ErrUnknownQuality   = errors.New("unknown resampler quality")
)
