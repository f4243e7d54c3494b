// Package statistics summarises values observed across hand shapes, either
// weighted by each shape's probability or as a plain population.
package statistics

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Distribution collects values together with the probability of the hand
// that produced them.
type Distribution struct {
	Values  []float64
	Weights []float64
	total   float64
}

// Add records value observed with probability weight.
func (d *Distribution) Add(value, weight float64) {
	d.Values = append(d.Values, value)
	d.Weights = append(d.Weights, weight)
	d.total += weight
}

// Len returns the number of observations.
func (d *Distribution) Len() int {
	return len(d.Values)
}

// TotalWeight returns the summed weight of all observations, which is the
// probability covered by the distribution.
func (d *Distribution) TotalWeight() float64 {
	return d.total
}

// Mean returns the weighted mean, normalised by the total weight.
func (d *Distribution) Mean() float64 {
	if d.total <= 0 {
		return 0
	}
	return stat.Mean(d.Values, d.Weights)
}

// Expected returns the sum of value × weight without normalising.
func (d *Distribution) Expected() float64 {
	total := 0.0
	for i, v := range d.Values {
		total += v * d.Weights[i]
	}
	return total
}

// Variance returns the weighted population variance.
func (d *Distribution) Variance() float64 {
	if d.total <= 0 {
		return 0
	}
	_, variance := stat.PopMeanVariance(d.Values, d.Weights)
	return variance
}

// StdDev returns the weighted population standard deviation.
func (d *Distribution) StdDev() float64 {
	if d.total <= 0 {
		return 0
	}
	_, std := stat.PopMeanStdDev(d.Values, d.Weights)
	return std
}

// Percentile returns the weighted empirical quantile at p (0.0 to 1.0)
func (d *Distribution) Percentile(p float64) float64 {
	if d.total <= 0 {
		return 0
	}
	p = math.Max(0, math.Min(1, p))

	order := make([]int, len(d.Values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return d.Values[order[a]] < d.Values[order[b]]
	})

	x := make([]float64, len(order))
	w := make([]float64, len(order))
	for i, idx := range order {
		x[i] = d.Values[idx]
		w[i] = d.Weights[idx]
	}
	return stat.Quantile(p, stat.Empirical, x, w)
}

// Median returns the weighted median.
func (d *Distribution) Median() float64 {
	return d.Percentile(0.5)
}

// Validate checks the distribution is a usable set of observations.
func (d *Distribution) Validate() error {
	if len(d.Values) != len(d.Weights) {
		return fmt.Errorf("values (%d) and weights (%d) differ in length", len(d.Values), len(d.Weights))
	}
	for i, w := range d.Weights {
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("weight %d is invalid: %f", i, w)
		}
	}
	if d.total > 1+1e-9 {
		return fmt.Errorf("total weight %.12f exceeds 1", d.total)
	}
	return nil
}

// StdDev returns the unweighted population standard deviation of selector
// over items. An empty slice has a deviation of zero.
func StdDev[T any](items []T, selector func(T) float64) float64 {
	if len(items) == 0 {
		return 0
	}
	x := make([]float64, len(items))
	for i, item := range items {
		x[i] = selector(item)
	}
	_, std := stat.PopMeanStdDev(x, nil)
	return std
}
