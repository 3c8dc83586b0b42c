// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ik5/wav2c/audio"
	"github.com/ik5/wav2c/formats/wav"
	"github.com/ik5/wav2c/internal/audiotest"
)

// Example_decoding demonstrates decoding a WAV file.
func Example_decoding() {
	data := audiotest.WAV(44100, 2, 16, audiotest.PCM16(100, 200, 300, 400))

	wf, err := wav.Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	fmt.Printf("Sample rate: %d Hz\n", wf.SampleRate())
	fmt.Printf("Channels: %d\n", wf.Channels())
	fmt.Printf("Bit depth: %d\n", wf.BitDepth())
	fmt.Printf("Frames: %d\n", wf.Frames())
	// Output:
	// Sample rate: 44100 Hz
	// Channels: 2
	// Bit depth: 16
	// Frames: 2
}

// Example_unsupportedWidth shows the rejection of 24-bit input.
func Example_unsupportedWidth() {
	data := audiotest.WAV(48000, 1, 24, make([]byte, 9))

	_, err := wav.Decoder{}.Decode(bytes.NewReader(data))
	fmt.Println(errors.Is(err, audio.ErrUnsupportedFormat))
	// Output:
	// true
}
