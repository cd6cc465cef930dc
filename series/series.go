// Package series provides concentration time series data structures and validation.
package series

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Validation errors returned by New and FromSamples.
var (
	// ErrLengthMismatch indicates the time and concentration sequences
	// differ in length.
	ErrLengthMismatch = errors.New("time and concentration sequences differ in length")

	// ErrInsufficientData indicates fewer than two samples were provided.
	// Least-squares regression is undefined on fewer than two points.
	ErrInsufficientData = errors.New("at least 2 samples are required")

	// ErrInvalidConcentration indicates a concentration value that is zero
	// or negative. The logarithmic and reciprocal rate-law transforms are
	// undefined for such values.
	ErrInvalidConcentration = errors.New("concentration must be strictly positive")
)

// Sample is a single measurement: elapsed time in seconds and concentration
// in mol/L.
type Sample struct {
	Time float64
	Conc float64
}

// Series is a validated, ordered sequence of concentration measurements.
// Samples are ordered by the caller, ascending time by convention; the
// ordering is preserved as given. A Series is immutable after construction:
// accessors return copies of the underlying data.
type Series struct {
	times []float64
	concs []float64
	name  string
}

// New creates a Series from parallel time and concentration slices.
// The input slices are copied; the caller retains ownership of its data.
//
// Validation is performed in order: length mismatch, insufficient data,
// invalid concentration. A Series is never constructed from partially
// valid input.
func New(times, concs []float64) (*Series, error) {
	if len(times) != len(concs) {
		return nil, fmt.Errorf("%w: %d time values vs %d concentration values",
			ErrLengthMismatch, len(times), len(concs))
	}
	if len(times) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientData, len(times))
	}
	for i, c := range concs {
		if c <= 0 {
			return nil, fmt.Errorf("%w: sample %d has concentration %g mol/L",
				ErrInvalidConcentration, i, c)
		}
	}

	t := make([]float64, len(times))
	copy(t, times)
	c := make([]float64, len(concs))
	copy(c, concs)

	return &Series{times: t, concs: c}, nil
}

// FromSamples creates a Series from a slice of samples.
func FromSamples(samples []Sample) (*Series, error) {
	times := make([]float64, len(samples))
	concs := make([]float64, len(samples))
	for i, s := range samples {
		times[i] = s.Time
		concs[i] = s.Conc
	}
	return New(times, concs)
}

// Len returns the number of samples in the series.
func (s *Series) Len() int {
	return len(s.times)
}

// At returns the i-th sample.
func (s *Series) At(i int) Sample {
	return Sample{Time: s.times[i], Conc: s.concs[i]}
}

// Times returns a copy of the time values in seconds.
func (s *Series) Times() []float64 {
	out := make([]float64, len(s.times))
	copy(out, s.times)
	return out
}

// Concentrations returns a copy of the concentration values in mol/L.
func (s *Series) Concentrations() []float64 {
	out := make([]float64, len(s.concs))
	copy(out, s.concs)
	return out
}

// Name returns the series name, if any.
func (s *Series) Name() string {
	return s.name
}

// WithName returns a copy of the series carrying the given name.
func (s *Series) WithName(name string) *Series {
	return &Series{times: s.times, concs: s.concs, name: name}
}

// Span returns the elapsed time between the first and last sample in seconds.
func (s *Series) Span() float64 {
	return s.times[len(s.times)-1] - s.times[0]
}

// MeanConc calculates the arithmetic mean concentration.
func (s *Series) MeanConc() float64 {
	sum := 0.0
	for _, c := range s.concs {
		sum += c
	}
	return sum / float64(len(s.concs))
}

// MinConc returns the minimum concentration in the series.
func (s *Series) MinConc() float64 {
	min := s.concs[0]
	for _, c := range s.concs[1:] {
		if c < min {
			min = c
		}
	}
	return min
}

// MaxConc returns the maximum concentration in the series.
func (s *Series) MaxConc() float64 {
	max := s.concs[0]
	for _, c := range s.concs[1:] {
		if c > max {
			max = c
		}
	}
	return max
}

// ParseValues parses whitespace-separated numeric tokens. Decimal commas are
// accepted ("3,14" parses as 3.14) since lab instruments in many locales
// export values that way.
func ParseValues(input string) ([]float64, error) {
	fields := strings.Fields(input)
	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.ReplaceAll(f, ",", "."), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", f, err)
		}
		values = append(values, v)
	}
	return values, nil
}
