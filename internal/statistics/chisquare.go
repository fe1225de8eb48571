package statistics

import (
	"errors"
	"fmt"
	"math"
)

// ErrEmptyHistogram is returned when a goodness-of-fit test has no data
var ErrEmptyHistogram = errors.New("histogram has no observations")

// Upper-tail standard normal quantiles for the supported significance levels
var normalQuantiles = map[float64]float64{
	0.1:   1.2816,
	0.05:  1.6449,
	0.01:  2.3263,
	0.001: 3.0902,
}

// ChiSquareResult is the outcome of a goodness-of-fit test against the
// uniform distribution
type ChiSquareResult struct {
	Statistic float64
	DF        int
	Critical  float64
	Alpha     float64
}

// Passed reports whether uniformity is not rejected at Alpha
func (r ChiSquareResult) Passed() bool {
	return r.Statistic <= r.Critical
}

// ChiSquareUniform tests whether the bucket counts are consistent with every
// bucket being equally likely
func ChiSquareUniform(counts []int, alpha float64) (ChiSquareResult, error) {
	if len(counts) < 2 {
		return ChiSquareResult{}, fmt.Errorf("need at least 2 buckets, got %d", len(counts))
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return ChiSquareResult{}, ErrEmptyHistogram
	}

	expected := float64(total) / float64(len(counts))
	stat := 0.0
	for _, c := range counts {
		d := float64(c) - expected
		stat += d * d / expected
	}

	df := len(counts) - 1
	critical, err := ChiSquareCritical(df, alpha)
	if err != nil {
		return ChiSquareResult{}, err
	}

	return ChiSquareResult{
		Statistic: stat,
		DF:        df,
		Critical:  critical,
		Alpha:     alpha,
	}, nil
}

// ChiSquareCritical returns the upper critical value of the chi-square
// distribution with df degrees of freedom at significance alpha, using the
// Wilson–Hilferty approximation, which is least accurate for df = 1.
func ChiSquareCritical(df int, alpha float64) (float64, error) {
	if df < 1 {
		return 0, fmt.Errorf("degrees of freedom must be positive, got %d", df)
	}
	z, ok := normalQuantiles[alpha]
	if !ok {
		return 0, fmt.Errorf("unsupported significance level: %v", alpha)
	}

	k := float64(df)
	h := 2 / (9 * k)
	return k * math.Pow(1-h+z*math.Sqrt(h), 3), nil
}
