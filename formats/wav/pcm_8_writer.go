// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// WritePreview writes a mono 8-bit unsigned PCM WAV at sampleRate holding
// exactly the bytes in samples, so the converted table can be listened to.
func WritePreview(w io.WriteSeeker, sampleRate int, samples []uint8) error {
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, len(samples)),
		SourceBitDepth: 8,
	}
	for i, s := range samples {
		buf.Data[i] = int(s)
	}

	enc := gowav.NewEncoder(w, sampleRate, 8, 1, formatPCM)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// WritePreviewFile is WritePreview to a new file at path. A partially
// written file is removed.
func WritePreviewFile(path string, sampleRate int, samples []uint8) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("%w", cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	return WritePreview(f, sampleRate, samples)
}
