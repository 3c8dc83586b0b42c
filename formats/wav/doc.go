// SPDX-License-Identifier: EPL-2.0

// Package wav reads PCM WAV samples and writes 8-bit previews.
//
// Container parsing is done by github.com/go-audio/wav; this package takes
// the raw frames from the data chunk and hands them over as an
// audio.Waveform.
//
// # Supported Formats
//
//   - PCM 8-bit unsigned (offset 128)
//   - PCM 16-bit signed little-endian
//   - Any channel count and sample rate
//
// Any other sample width is rejected with audio.ErrUnsupportedFormat before
// the sample data is read.
//
// # Decoding
//
//	wf, err := wav.DecodeFile("909_oh.wav")
//	if errors.Is(err, audio.ErrUnsupportedFormat) {
//	    // 24/32-bit or float input
//	}
//
// Decoder.Decode accepts any io.Reader; readers that cannot seek are
// buffered in memory first.
//
// # Previews
//
// WritePreview stores a quantized table as a mono 8-bit WAV, byte for byte
// what the device will play:
//
//	f, _ := os.Create("preview.wav")
//	err := wav.WritePreview(f, 22050, pcm8)
package wav
