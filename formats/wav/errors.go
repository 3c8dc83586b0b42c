package wav

import "errors"

var (
	ErrNotWavFile  = errors.New("not a WAV file")
	ErrMissingData = errors.New("WAV data chunk not found")
)
