package statistics

import (
	"fmt"
	"math"
	"sort"
)

// Sample accumulates observations of a real-valued variable
type Sample struct {
	N     int
	Sum   float64
	SumSq float64 // Sum of squares for variance calculation
	Min   float64
	Max   float64

	// Values is only filled when KeepValues is set, for median/percentiles
	Values     []float64
	KeepValues bool
}

// Add incorporates a new observation
func (s *Sample) Add(x float64) {
	if s.N == 0 || x < s.Min {
		s.Min = x
	}
	if s.N == 0 || x > s.Max {
		s.Max = x
	}
	s.N++
	s.Sum += x
	s.SumSq += x * x
	if s.KeepValues {
		s.Values = append(s.Values, x)
	}
}

// Merge folds other into s, as if every observation had been added to s
func (s *Sample) Merge(other *Sample) {
	if other.N == 0 {
		return
	}
	if s.N == 0 || other.Min < s.Min {
		s.Min = other.Min
	}
	if s.N == 0 || other.Max > s.Max {
		s.Max = other.Max
	}
	s.N += other.N
	s.Sum += other.Sum
	s.SumSq += other.SumSq
	if s.KeepValues {
		s.Values = append(s.Values, other.Values...)
	}
}

// Mean returns the arithmetic mean of all observations
func (s *Sample) Mean() float64 {
	if s.N == 0 {
		return 0
	}
	return s.Sum / float64(s.N)
}

// Variance returns the sample variance of all observations
func (s *Sample) Variance() float64 {
	if s.N < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumSq - float64(s.N)*mean*mean) / float64(s.N-1)
}

// StdDev returns the sample standard deviation
func (s *Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Sample) StdError() float64 {
	if s.N == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.N))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Sample) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median of the kept values
func (s *Sample) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0) of the
// kept values, interpolating linearly between neighbours
func (s *Sample) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks the accumulator is internally consistent
func (s *Sample) Validate() error {
	if s.N < 0 {
		return fmt.Errorf("negative observation count: %d", s.N)
	}
	if s.KeepValues && len(s.Values) != s.N {
		return fmt.Errorf("kept %d values for %d observations", len(s.Values), s.N)
	}
	if s.N > 0 && s.Min > s.Max {
		return fmt.Errorf("min %.6f exceeds max %.6f", s.Min, s.Max)
	}
	if math.IsNaN(s.Sum) || math.IsInf(s.Sum, 0) {
		return fmt.Errorf("sum is not finite: %v", s.Sum)
	}
	return nil
}
