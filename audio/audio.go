// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"slices"
	"sync"
)

// Resampler converts a mono sequence from one sample rate to another.
// Implementations return a new slice of OutputLength(len(samples), ...)
// values and leave the input untouched.
type Resampler interface {
	Resample(samples []float64, srcRate, dstRate int) ([]float64, error)
}

// Quality selects the filter quality of resamplers that offer a choice.
type Quality string

const (
	QualityQuick    Quality = "quick"
	QualityLow      Quality = "low"
	QualityMedium   Quality = "medium"
	QualityHigh     Quality = "high"
	QualityVeryHigh Quality = "veryhigh"
)

// Validate accepts the presets above and the empty string, which lets the
// resampler pick its default.
func (q Quality) Validate() error {
	switch q {
	case "", QualityQuick, QualityLow, QualityMedium, QualityHigh, QualityVeryHigh:
		return nil
	}

	return fmt.Errorf("%w: %q", ErrUnknownQuality, q)
}

// Factory builds a Resampler for the requested quality.
type Factory func(q Quality) (Resampler, error)

// Registry for resamplers by name (e.g., "polyphase", "soxr", "cubic").
type Registry struct {
	factories map[string]Factory

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		mtx:       &sync.Mutex{},
	}
}

// DefaultRegistry holds the resamplers shipped with this package.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("polyphase", func(q Quality) (Resampler, error) {
		p, err := NewPolyphase(q)
		if err != nil {
			return nil, err
		}
		return p, nil
	})
	r.Register("soxr", func(q Quality) (Resampler, error) {
		s, err := NewSoxr(q)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
	r.Register("cubic", func(Quality) (Resampler, error) { return Cubic{}, nil })

	return r
}

func (r *Registry) Register(name string, f Factory) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.factories[name] = f
}

func (r *Registry) Get(name string) (Factory, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	f, ok := r.factories[name]
	return f, ok
}

// Names lists the registered resamplers in sorted order.
func (r *Registry) Names() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// New builds the named resampler. The quality is checked even for
// resamplers that have a single setting.
func (r *Registry) New(name string, q Quality) (Resampler, error) {
	f, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownResampler, name)
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}

	return f(q)
}

// Resample converts samples from srcRate to dstRate with rs. Equal rates
// return a copy of the input without touching rs.
func Resample(rs Resampler, samples []float64, srcRate, dstRate int) ([]float64, error) {
	if srcRate < 1 || dstRate < 1 {
		return nil, fmt.Errorf("%w: %d -> %d", ErrInvalidRate, srcRate, dstRate)
	}

	if srcRate == dstRate || len(samples) == 0 {
		out := make([]float64, len(samples))
		copy(out, samples)
		return out, nil
	}

	out, err := rs.Resample(samples, srcRate, dstRate)
	if err != nil {
		return nil, fmt.Errorf("resample %d -> %d: %w", srcRate, dstRate, err)
	}

	return out, nil
}

// OutputLength is the number of samples produced when n samples at srcRate
// are converted to dstRate: ceil(n * dstRate / srcRate).
func OutputLength(n, srcRate, dstRate int) int {
	num := int64(n) * int64(dstRate)
	den := int64(srcRate)

	return int((num + den - 1) / den)
}

// fitLength trims or zero-pads s to exactly n samples.
func fitLength(s []float64, n int) []float64 {
	if len(s) >= n {
		return s[:n:n]
	}

	out := make([]float64, n)
	copy(out, s)

	return out
}
