// Package floats holds the tolerance comparison used for cost
// bookkeeping.
package floats

import "math"

// DefaultEpsilon is the default tolerance for g-cost equality.
const DefaultEpsilon = 1e-9

// Equal reports whether a and b differ by no more than eps, absorbing
// accumulated floating-point drift in path costs.
func Equal(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
