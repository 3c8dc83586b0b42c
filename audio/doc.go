// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample-level stages of the conversion pipeline.
//
// This package contains:
//   - Waveform, the raw PCM frames produced by a decoder
//   - Downmix for channel mixing
//   - Resampler implementations for sample rate conversion
//   - Quantize for 8-bit unsigned output
//   - A registry to select a resampler by name
//
// # Waveform
//
// A Waveform holds interleaved 8-bit unsigned or 16-bit signed frames.
// Samples decodes them into float64 amplitudes:
//
//	wf, _ := audio.NewWaveform(data, 2, 2, 44100)
//	interleaved := wf.Samples()
//
// # Channel Mixing
//
// Downmix averages every frame into one value:
//
//	mono := audio.Downmix(interleaved, wf.Channels())
//
// # Resampling
//
// Three resamplers are available:
//   - Polyphase: Kaiser-windowed sinc at the exact rate ratio, the default
//   - Soxr: the libsoxr port from github.com/tphakala/go-audio-resampling
//   - Cubic: Catmull-Rom interpolation, cheap and approximate
//
// All of them produce exactly OutputLength(n, src, dst) samples, aligned so
// that output sample m sits at input time m*src/dst:
//
//	rs, _ := audio.DefaultRegistry().New("polyphase", audio.QualityHigh)
//	out, _ := audio.Resample(rs, mono, 44100, 22050)
//
// # Quantization
//
// Quantize clips to [-1, 1] and maps to [0, 255] with 127/128 as silence:
//
//	pcm8 := audio.Quantize(out)
//
// # Sample Format
//
// Audio samples are represented as float64, nominally in [-1.0, 1.0].
// Resampling may overshoot that range slightly; Quantize clips it.
package audio
