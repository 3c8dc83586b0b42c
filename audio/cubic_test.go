package audio

import (
	"math"
	"testing"
)

func TestCubic_Length(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n, src, dst int
	}{
		{n: 44100, src: 44100, dst: 22050},
		{n: 4801, src: 48000, dst: 22050},
		{n: 800, src: 8000, dst: 22050},
		{n: 1, src: 44100, dst: 22050},
		{n: 0, src: 44100, dst: 22050},
	}

	for _, tt := range tests {
		out, err := Cubic{}.Resample(make([]float64, tt.n), tt.src, tt.dst)
		if err != nil {
			t.Fatalf("Resample() error = %v", err)
		}
		if want := OutputLength(tt.n, tt.src, tt.dst); len(out) != want {
			t.Errorf("len(Resample(%d, %d -> %d)) = %d, want %d", tt.n, tt.src, tt.dst, len(out), want)
		}
	}
}

func TestCubic_ConstantPreserved(t *testing.T) {
	t.Parallel()

	for _, rates := range [][2]int{{44100, 22050}, {8000, 22050}, {48000, 22050}} {
		in := make([]float64, 1000)
		for i := range in {
			in[i] = 0.25
		}

		out, err := Cubic{}.Resample(in, rates[0], rates[1])
		if err != nil {
			t.Fatal(err)
		}
		for i, v := range out {
			if math.Abs(v-0.25) > 1e-12 {
				t.Fatalf("%d -> %d: out[%d] = %v, want 0.25", rates[0], rates[1], i, v)
			}
		}
	}
}

func TestCubic_UpsampleHitsSourcePoints(t *testing.T) {
	t.Parallel()

	in := []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7}
	out, err := Cubic{}.Resample(in, 11025, 22050)
	if err != nil {
		t.Fatal(err)
	}

	for i := range in {
		if math.Abs(out[2*i]-in[i]) > 1e-12 {
			t.Errorf("out[%d] = %v, want %v", 2*i, out[2*i], in[i])
		}
	}

	// a ramp stays a ramp away from the edges
	for i := 2; i < len(in)-2; i++ {
		want := (in[i] + in[i+1]) / 2
		if math.Abs(out[2*i+1]-want) > 1e-12 {
			t.Errorf("out[%d] = %v, want %v", 2*i+1, out[2*i+1], want)
		}
	}
}

func TestCubic_InvalidRate(t *testing.T) {
	t.Parallel()

	if _, err := (Cubic{}).Resample([]float64{0}, 0, 22050); err == nil {
		t.Error("Resample() error = nil, want error for zero rate")
	}
}

func BenchmarkCubic_Downsample(b *testing.B) {
	in := make([]float64, 44100)
	for i := range in {
		in[i] = math.Sin(2 * math.Pi * 440 * float64(i) / 44100)
	}

	b.ReportAllocs()
	for b.Loop() {
		_, _ = Cubic{}.Resample(in, 44100, 22050)
	}
}
