package audio_test

import (
	"fmt"

	"github.com/ik5/wav2c/audio"
)

// Example_pipeline shows the stages between a decoded waveform and 8-bit
// output.
func Example_pipeline() {
	// two stereo 16-bit frames: (16384, 16384) and (-32768, 0)
	wf, err := audio.NewWaveform([]byte{0x00, 0x40, 0x00, 0x40, 0x00, 0x80, 0x00, 0x00}, 2, 2, 22050)
	if err != nil {
		fmt.Println(err)
		return
	}

	mono := audio.Downmix(wf.Samples(), wf.Channels())
	fmt.Println(mono)

	rs, _ := audio.DefaultRegistry().New("cubic", audio.QualityHigh)
	out, _ := audio.Resample(rs, mono, wf.SampleRate(), 22050)

	fmt.Println(audio.Quantize(out))
	// Output:
	// [0.5 -0.5]
	// [191 64]
}

func ExampleOutputLength() {
	fmt.Println(audio.OutputLength(44100, 44100, 22050))
	fmt.Println(audio.OutputLength(3, 48000, 22050))
	// Output:
	// 22050
	// 2
}
