// File: errors.go
// Role: sentinel errors for fixture construction.
package graphs

import "errors"

var (
	// ErrTooFewVertices indicates n is below the minimum a constructor
	// requires, or that RandomRegular's d lies outside [0,n).
	ErrTooFewVertices = errors.New("graphs: parameter too small")

	// ErrInvalidProbability indicates p lies outside [0,1].
	ErrInvalidProbability = errors.New("graphs: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor was called with a nil *rand.Rand.
	ErrNeedRandSource = errors.New("graphs: rng is required")

	// ErrConstructFailed indicates RandomRegular could not realize a simple
	// d-regular graph within its bounded retry budget, or that (n,d) cannot
	// produce one (odd n*d).
	ErrConstructFailed = errors.New("graphs: construction failed")
)
