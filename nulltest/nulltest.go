// Package nulltest compares an observed network statistic against the same
// statistic measured on null-model replicates.
//
// Reported quantities:
//
//	p_MC    = (1 + #{|null| ≥ |obs|}) / (M + 1)       two-sided Monte Carlo p-value
//	Cliff δ = (#{null > obs} - #{null < obs}) / M     robust effect size in [-1,1]
//	Δ       = obs - mean(null)
//
// plus the null mean, population standard deviation and the 2.5/97.5
// percentiles of the null distribution.
package nulltest

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ErrNoNulls indicates an empty (or all-NaN) null distribution.
var ErrNoNulls = errors.New("nulltest: no null values")

// Summary is the outcome of Summarize. Field tags match the JSON report
// written by the CLI.
type Summary struct {
	Observed    float64 `json:"observed"`
	NullMean    float64 `json:"null_mean"`
	NullStd     float64 `json:"null_std"`
	Delta       float64 `json:"delta"`
	PValue      float64 `json:"p_mc"`
	CliffsDelta float64 `json:"cliffs_delta"`
	CILower     float64 `json:"ci_lower"`
	CIUpper     float64 `json:"ci_upper"`
	M           int     `json:"n_nulls"`
	Dropped     int     `json:"n_dropped"`
}

// MonteCarloP returns (1 + #{|null| ≥ |observed|}) / (M + 1). With no
// nulls it is 1.
func MonteCarloP(observed float64, nulls []float64) float64 {
	ref := math.Abs(observed)
	extreme := 0
	for _, v := range nulls {
		if math.Abs(v) >= ref {
			extreme++
		}
	}

	return float64(1+extreme) / float64(len(nulls)+1)
}

// CliffsDelta returns (#{null > observed} - #{null < observed}) / M, or
// NaN when nulls is empty.
//
// Rough reading: |δ| < 0.147 negligible, < 0.33 small, < 0.474 medium,
// otherwise large.
func CliffsDelta(observed float64, nulls []float64) float64 {
	if len(nulls) == 0 {
		return math.NaN()
	}
	greater, less := 0, 0
	for _, v := range nulls {
		switch {
		case v > observed:
			greater++
		case v < observed:
			less++
		}
	}

	return float64(greater-less) / float64(len(nulls))
}

// Summarize computes every statistic of Summary. NaN entries of nulls (failed
// replicates) are dropped and counted in Dropped.
//
// Percentiles use gonum's LinInterp empirical quantile on the sorted nulls.
func Summarize(observed float64, nulls []float64) (Summary, error) {
	clean := make([]float64, 0, len(nulls))
	for _, v := range nulls {
		if !math.IsNaN(v) {
			clean = append(clean, v)
		}
	}
	s := Summary{Observed: observed, M: len(clean), Dropped: len(nulls) - len(clean)}
	if len(clean) == 0 {
		return s, fmt.Errorf("Summarize(M=%d, dropped=%d): %w", len(nulls), s.Dropped, ErrNoNulls)
	}

	mean, variance := stat.PopMeanVariance(clean, nil)
	s.NullMean = mean
	s.NullStd = math.Sqrt(variance)
	s.Delta = observed - mean
	s.PValue = MonteCarloP(observed, clean)
	s.CliffsDelta = CliffsDelta(observed, clean)

	sort.Float64s(clean)
	s.CILower = stat.Quantile(0.025, stat.LinInterp, clean, nil)
	s.CIUpper = stat.Quantile(0.975, stat.LinInterp, clean, nil)

	return s, nil
}
