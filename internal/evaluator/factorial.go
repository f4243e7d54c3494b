// Package evaluator computes exact hypergeometric probabilities for hand
// shapes drawn from a partitioned deck.
package evaluator

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is returned when deck, hand or group sizes are
	// inconsistent with each other.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrInconsistent is returned when a hand shape refers to a group the
	// evaluator was not given.
	ErrInconsistent = errors.New("internal consistency error")
	// ErrNumericRange is returned for factorials outside the lookup table.
	ErrNumericRange = errors.New("numeric range error")
)

// MaxFactorial is the largest n whose factorial is held in the lookup table.
// 171! overflows a float64.
const MaxFactorial = 170

// factorials[n] = n!
var factorials = func() [MaxFactorial + 1]float64 {
	var table [MaxFactorial + 1]float64
	f := 1.0
	for i := range table {
		table[i] = f
		f *= float64(i + 1)
	}
	return table
}()

// Factorial returns n! from the lookup table.
func Factorial(n int) (float64, error) {
	if n < 0 || n > MaxFactorial {
		return 0, fmt.Errorf("%w: factorial of %d outside [0, %d]", ErrNumericRange, n, MaxFactorial)
	}
	return factorials[n], nil
}

// Choose returns the binomial coefficient C(n, k). Drawing fewer than zero or
// more than n cards has no ways, so those return 0.
func Choose(n, k int) (float64, error) {
	top, err := Factorial(n)
	if err != nil {
		return 0, err
	}
	if k < 0 || k > n {
		return 0, nil
	}
	return top / (factorials[k] * factorials[n-k]), nil
}
