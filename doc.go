// SPDX-License-Identifier: EPL-2.0

// Package wav2c converts PCM WAV samples into C lookup tables.
//
// The conversion runs five stages:
//
//	decode -> downmix -> resample -> quantize -> emit
//
// A WAV file with 8-bit or 16-bit samples is reduced to one channel,
// converted to the target rate (22050 Hz by default), mapped onto unsigned
// 8-bit values and written as a header that firmware can #include:
//
//	// Converted from kick.wav
//	const uint8_t sampleData[] = {
//	  128,131,140,...,
//	};
//	const int SAMPLE_LEN = 4410;
//
// # Quick Start
//
//	cfg := wav2c.DefaultConfig()
//	cfg.InputPath = "kick.wav"
//	cfg.OutputPath = "sample_data.h"
//
//	res, err := wav2c.Convert(cfg)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(len(res.Samples), "samples")
//
// # Stages
//
// Each stage is available on its own:
//   - formats/wav decodes the input into an audio.Waveform
//   - audio.Downmix, audio.Resample and audio.Quantize do the sample work
//   - formats/cheader writes the header
//
// Process runs the middle three stages on a decoded waveform without
// touching the filesystem.
//
// # Errors
//
// Inputs that are not 8-bit or 16-bit PCM fail with ErrUnsupportedFormat
// before any output file is created.
package wav2c
