package audio

import (
	"errors"
	"math"
	"testing"
)

func sine(rate, n int, freq, amp float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amp * math.Sin(2*math.Pi*freq*float64(i)/float64(rate))
	}
	return out
}

func rms(s []float64) float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(s)))
}

func TestNewSoxr_Quality(t *testing.T) {
	t.Parallel()

	for _, q := range []Quality{"", QualityQuick, QualityLow, QualityMedium, QualityHigh, QualityVeryHigh} {
		if _, err := NewSoxr(q); err != nil {
			t.Errorf("NewSoxr(%q) error = %v", q, err)
		}
	}

	if _, err := NewSoxr("best"); !errors.Is(err, ErrUnknownQuality) {
		t.Errorf("NewSoxr(\"best\") error = %v, want ErrUnknownQuality", err)
	}
}

func TestSoxr_Length(t *testing.T) {
	t.Parallel()

	rs, err := NewSoxr(QualityHigh)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		n, src, dst int
	}{
		{n: 44100, src: 44100, dst: 22050},
		{n: 4800, src: 48000, dst: 22050},
		{n: 3, src: 44100, dst: 22050},
		{n: 800, src: 8000, dst: 22050},
		{n: 0, src: 44100, dst: 22050},
	}

	for _, tt := range tests {
		out, err := rs.Resample(make([]float64, tt.n), tt.src, tt.dst)
		if err != nil {
			t.Fatalf("Resample(%d, %d -> %d) error = %v", tt.n, tt.src, tt.dst, err)
		}
		if want := OutputLength(tt.n, tt.src, tt.dst); len(out) != want {
			t.Errorf("len(Resample(%d, %d -> %d)) = %d, want %d", tt.n, tt.src, tt.dst, len(out), want)
		}
	}
}

func TestSoxr_PreservesInBandTone(t *testing.T) {
	t.Parallel()

	rs, err := NewSoxr(QualityHigh)
	if err != nil {
		t.Fatal(err)
	}

	// one second of a full-scale 440 Hz tone, RMS 1/sqrt(2)
	out, err := rs.Resample(sine(44100, 44100, 440, 1), 44100, 22050)
	if err != nil {
		t.Fatal(err)
	}

	mid := out[len(out)/4 : 3*len(out)/4]
	if got := rms(mid); got < 0.6 || got > 0.8 {
		t.Errorf("RMS of resampled tone = %.3f, want within [0.6, 0.8]", got)
	}
}

func TestSoxr_NoDelay(t *testing.T) {
	t.Parallel()

	rs, err := NewSoxr(QualityHigh)
	if err != nil {
		t.Fatal(err)
	}

	checkAlignment(t, rs, 4800, 2400, 48000, 22050, 2)
	checkAlignment(t, rs, 4410, 2205, 44100, 22050, 2)
	checkAlignment(t, rs, 2000, 1000, 11025, 22050, 2)
}

func TestSoxr_KeepsAttack(t *testing.T) {
	t.Parallel()

	rs, err := NewSoxr(QualityHigh)
	if err != nil {
		t.Fatal(err)
	}

	// a click 2 ms into the sample
	in := make([]float64, 4800)
	in[100] = 1

	out, err := rs.Resample(in, 48000, 22050)
	if err != nil {
		t.Fatal(err)
	}

	peak := argmaxAbs(out)
	if math.Abs(out[peak]) < 0.3 {
		t.Errorf("peak |out| = %.4f, want the click preserved", math.Abs(out[peak]))
	}
	if want := 100.0 * 22050 / 48000; math.Abs(float64(peak)-want) > 2 {
		t.Errorf("click at output %d, want ≈%.1f", peak, want)
	}
}

func TestSoxr_ConstantToTheLastSample(t *testing.T) {
	t.Parallel()

	rs, err := NewSoxr(QualityHigh)
	if err != nil {
		t.Fatal(err)
	}

	for _, rates := range [][2]int{{48000, 22050}, {44100, 22050}} {
		out, err := rs.Resample(constant(4800, 0.5), rates[0], rates[1])
		if err != nil {
			t.Fatal(err)
		}
		for i, v := range out {
			if math.Abs(v-0.5) > 0.01 {
				t.Fatalf("%d -> %d: out[%d] of %d = %v, want ≈0.5", rates[0], rates[1], i, len(out), v)
			}
		}
	}
}
