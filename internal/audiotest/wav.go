// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds WAV fixtures for tests.
package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// WAV returns a canonical 44-byte-header PCM WAV file around data.
// bitsPerSample is written as-is, so unsupported widths can be produced.
func WAV(sampleRate, channels, bitsPerSample int, data []byte) []byte {
	return WAVWithFormat(1, sampleRate, channels, bitsPerSample, data)
}

// WAVWithFormat is WAV with an explicit audio format tag (1 = PCM).
func WAVWithFormat(format uint16, sampleRate, channels, bitsPerSample int, data []byte) []byte {
	buf := new(bytes.Buffer)

	blockAlign := uint16(channels * bitsPerSample / 8)
	byteRate := uint32(sampleRate) * uint32(blockAlign)
	dataSize := uint32(len(data))

	// RIFF header
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, 36+dataSize+dataSize%2)
	buf.WriteString("WAVE")

	// fmt chunk
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, format)
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))

	// data chunk, padded to an even size
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	buf.Write(data)
	if dataSize%2 == 1 {
		buf.WriteByte(0)
	}

	return buf.Bytes()
}

// PCM16 encodes interleaved samples as signed 16-bit little-endian bytes.
func PCM16(samples ...int16) []byte {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}

	return out
}

// Repeat returns n copies of the frame, interleaved.
func Repeat(n int, frame ...int16) []int16 {
	out := make([]int16, 0, n*len(frame))
	for range n {
		out = append(out, frame...)
	}

	return out
}

// Sine16 generates n mono samples of a sine at freq Hz and the given
// amplitude (0..1).
func Sine16(sampleRate, n int, freq, amplitude float64) []int16 {
	out := make([]int16, n)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		out[i] = int16(math.Round(amplitude * 32767 * math.Sin(2*math.Pi*freq*t)))
	}

	return out
}

// WriteFile stores data under the test's temp dir and returns its path.
func WriteFile(tb testing.TB, name string, data []byte) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		tb.Fatalf("write fixture %s: %v", path, err)
	}

	return path
}
