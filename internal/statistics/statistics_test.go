package statistics

import (
	"math"
	"testing"
)

func TestSample_Empty(t *testing.T) {
	s := &Sample{}

	if s.Mean() != 0 {
		t.Errorf("Expected mean of 0 for empty sample, got %f", s.Mean())
	}
	if s.Variance() != 0 {
		t.Errorf("Expected variance of 0 for empty sample, got %f", s.Variance())
	}
	if s.StdDev() != 0 {
		t.Errorf("Expected stddev of 0 for empty sample, got %f", s.StdDev())
	}
	if s.StdError() != 0 {
		t.Errorf("Expected stderr of 0 for empty sample, got %f", s.StdError())
	}
	if s.Median() != 0 {
		t.Errorf("Expected median of 0 for empty sample, got %f", s.Median())
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Expected empty sample to validate, got %v", err)
	}
}

func TestSample_SingleValue(t *testing.T) {
	s := &Sample{KeepValues: true}
	s.Add(2.5)

	if s.N != 1 {
		t.Errorf("Expected 1 observation, got %d", s.N)
	}
	if s.Mean() != 2.5 {
		t.Errorf("Expected mean of 2.5, got %f", s.Mean())
	}
	if s.Variance() != 0 {
		t.Errorf("Expected variance of 0 for single value, got %f", s.Variance())
	}
	if s.Min != 2.5 || s.Max != 2.5 {
		t.Errorf("Expected min=max=2.5, got %f/%f", s.Min, s.Max)
	}
	if s.Median() != 2.5 {
		t.Errorf("Expected median of 2.5, got %f", s.Median())
	}
}

func TestSample_MultipleValues(t *testing.T) {
	s := &Sample{KeepValues: true}
	for _, x := range []float64{1, -2, 3, 0, -1} {
		s.Add(x)
	}

	if s.Mean() != 0.2 {
		t.Errorf("Expected mean of 0.2, got %f", s.Mean())
	}

	// Sum of squares 15, n*mean^2 = 0.2, (15-0.2)/4 = 3.7
	if math.Abs(s.Variance()-3.7) > 1e-12 {
		t.Errorf("Expected variance of 3.7, got %f", s.Variance())
	}
	if s.Min != -2 || s.Max != 3 {
		t.Errorf("Expected min -2 and max 3, got %f/%f", s.Min, s.Max)
	}
	if s.Median() != 0 {
		t.Errorf("Expected median of 0, got %f", s.Median())
	}
	if s.Percentile(0) != -2 || s.Percentile(1) != 3 {
		t.Errorf("Expected extreme percentiles -2 and 3, got %f/%f", s.Percentile(0), s.Percentile(1))
	}
	if p := s.Percentile(0.25); p != -1 {
		t.Errorf("Expected 25th percentile of -1, got %f", p)
	}

	low, high := s.ConfidenceInterval95()
	if low >= s.Mean() || high <= s.Mean() {
		t.Errorf("Confidence interval [%f, %f] does not contain the mean", low, high)
	}
}

func TestSample_Merge(t *testing.T) {
	a := &Sample{KeepValues: true}
	b := &Sample{KeepValues: true}
	all := &Sample{KeepValues: true}

	for i, x := range []float64{4, 8, 15, 16, 23, 42} {
		all.Add(x)
		if i%2 == 0 {
			a.Add(x)
		} else {
			b.Add(x)
		}
	}
	a.Merge(b)

	if a.N != all.N {
		t.Fatalf("Expected %d observations after merge, got %d", all.N, a.N)
	}
	if math.Abs(a.Mean()-all.Mean()) > 1e-12 {
		t.Errorf("Merged mean %f differs from %f", a.Mean(), all.Mean())
	}
	if math.Abs(a.Variance()-all.Variance()) > 1e-9 {
		t.Errorf("Merged variance %f differs from %f", a.Variance(), all.Variance())
	}
	if a.Min != 4 || a.Max != 42 {
		t.Errorf("Expected min 4 and max 42, got %f/%f", a.Min, a.Max)
	}
	if err := a.Validate(); err != nil {
		t.Errorf("Merged sample failed validation: %v", err)
	}
}

func TestSample_MergeIntoEmpty(t *testing.T) {
	a := &Sample{}
	b := &Sample{}
	b.Add(-5)
	b.Add(-3)
	a.Merge(b)

	if a.Min != -5 || a.Max != -3 {
		t.Errorf("Expected min -5 and max -3, got %f/%f", a.Min, a.Max)
	}
}

func TestSample_ValidateDetectsMismatch(t *testing.T) {
	s := &Sample{KeepValues: true}
	s.Add(1)
	s.Values = nil

	if err := s.Validate(); err == nil {
		t.Error("Expected validation to fail when values are missing")
	}
}
