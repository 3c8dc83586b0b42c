package audio

import (
	"math"
	"testing"
)

func TestDownmix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		samples  []float64
		channels int
		want     []float64
	}{
		{
			name:     "mono passthrough",
			samples:  []float64{0.1, -0.2, 0.3},
			channels: 1,
			want:     []float64{0.1, -0.2, 0.3},
		},
		{
			name:     "stereo average",
			samples:  []float64{1, 0, 0.5, 0.5, -1, 1},
			channels: 2,
			want:     []float64{0.5, 0.5, 0},
		},
		{
			name:     "four channels",
			samples:  []float64{1, 1, 0, 0, -1, -1, -1, -1},
			channels: 4,
			want:     []float64{0.5, -1},
		},
		{
			name:     "trailing partial frame",
			samples:  []float64{0.2, 0.4, 0.9},
			channels: 2,
			want:     []float64{0.3},
		},
		{
			name:     "empty",
			samples:  nil,
			channels: 2,
			want:     []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Downmix(tt.samples, tt.channels)
			if len(got) != len(tt.want) {
				t.Fatalf("len(Downmix()) = %d, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Errorf("Downmix()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDownmix_OppositeFullScale(t *testing.T) {
	t.Parallel()

	// L = 32767, R = -32768 cancels to about zero
	in := []float64{32767.0 / 32768.0, -1}
	got := Downmix(in, 2)

	if math.Abs(got[0]) > 1.0/32768.0 {
		t.Errorf("Downmix() = %v, want ≈0", got[0])
	}
}

func TestDownmix_MonoCopies(t *testing.T) {
	t.Parallel()

	in := []float64{0.5}
	out := Downmix(in, 1)
	out[0] = 0

	if in[0] != 0.5 {
		t.Error("Downmix() returned a slice sharing the input")
	}
}
