package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/wav2c/audio"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

type Decoder struct{}

// Decode reads a PCM WAV container into memory. Only 8-bit unsigned and
// 16-bit signed samples are accepted; anything else is
// audio.ErrUnsupportedFormat.
func (Decoder) Decode(r io.Reader) (*audio.Waveform, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	if dec.NumChans == 0 {
		return nil, ErrNotWavFile
	}

	if dec.BitDepth != 8 && dec.BitDepth != 16 {
		return nil, fmt.Errorf("%w: %d-bit samples", audio.ErrUnsupportedFormat, dec.BitDepth)
	}
	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, fmt.Errorf("%w: audio format tag %d", audio.ErrUnsupportedFormat, dec.WavAudioFormat)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingData, err)
	}
	if dec.PCMChunk == nil {
		return nil, ErrMissingData
	}

	size, err := declaredDataSize(rs, dec.PCMSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingData, err)
	}

	data := make([]byte, size)
	n, err := io.ReadFull(dec.PCMChunk, data)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	return audio.NewWaveform(data[:n], int(dec.NumChans), int(dec.BitDepth)/8, int(dec.SampleRate))
}

// declaredDataSize re-reads the size field of the data chunk header, which
// rs is positioned right after. The riff parser rounds chunk sizes up to
// an even number, which would turn the pad byte of an odd-length 8-bit
// stream into a sample.
func declaredDataSize(rs io.ReadSeeker, padded int) (int, error) {
	if _, err := rs.Seek(-4, io.SeekCurrent); err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	var size uint32
	if err := binary.Read(rs, binary.LittleEndian, &size); err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	return int(min(size, uint32(padded))), nil
}

// DecodeFile opens path, decodes it, and closes it again on every path.
func DecodeFile(path string) (*audio.Waveform, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	wf, err := Decoder{}.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return wf, nil
}
