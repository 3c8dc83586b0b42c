// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"fmt"
	"time"

	goaudio "github.com/go-audio/audio"
)

// Waveform is decoded PCM data as found in the container: interleaved
// frames of Width-byte samples. It is not modified after construction.
type Waveform struct {
	data       []byte
	channels   int
	width      int
	sampleRate int
	frames     int
}

// NewWaveform wraps raw interleaved PCM bytes. width is the sample width in
// bytes and must be 1 (unsigned, offset 128) or 2 (signed little-endian).
// Trailing bytes that do not form a whole frame are not counted.
func NewWaveform(data []byte, channels, width, sampleRate int) (*Waveform, error) {
	if width != 1 && width != 2 {
		return nil, fmt.Errorf("%w: %d-byte samples", ErrUnsupportedFormat, width)
	}
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}
	if sampleRate < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRate, sampleRate)
	}

	return &Waveform{
		data:       data,
		channels:   channels,
		width:      width,
		sampleRate: sampleRate,
		frames:     len(data) / (channels * width),
	}, nil
}

func (w *Waveform) Channels() int   { return w.channels }
func (w *Waveform) Width() int      { return w.width }
func (w *Waveform) SampleRate() int { return w.sampleRate }
func (w *Waveform) Frames() int     { return w.frames }

// BitDepth is the sample width in bits.
func (w *Waveform) BitDepth() int { return w.width * 8 }

// Bytes returns the raw frame data. Callers must not modify it.
func (w *Waveform) Bytes() []byte {
	return w.data[:w.frames*w.channels*w.width]
}

// Format describes the waveform in go-audio terms.
func (w *Waveform) Format() *goaudio.Format {
	return &goaudio.Format{
		NumChannels: w.channels,
		SampleRate:  w.sampleRate,
	}
}

// Duration is the playing time of the waveform.
func (w *Waveform) Duration() time.Duration {
	return time.Duration(w.frames) * time.Second / time.Duration(w.sampleRate)
}

// Samples decodes the frames into interleaved amplitudes. 16-bit samples
// are divided by 32768 and 8-bit samples are re-centred on 128 and divided
// by 128, so values land in [-1, 1). Nothing is clipped.
func (w *Waveform) Samples() []float64 {
	n := w.frames * w.channels
	out := make([]float64, n)

	switch w.width {
	case 1:
		for i := range n {
			out[i] = (float64(w.data[i]) - 128.0) / 128.0
		}
	case 2:
		for i := range n {
			v := int16(binary.LittleEndian.Uint16(w.data[2*i : 2*i+2]))
			out[i] = float64(v) / 32768.0
		}
	}

	return out
}
