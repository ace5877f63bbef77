package neuronet

import "math"

// Squash is the logistic sigmoid, mapping all of the reals onto (0, 1).
func Squash(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Unsquash is the inverse of Squash. It is only finite for activations strictly inside (0, 1);
// callers keep activations there by clamping values before they are squashed.
func Unsquash(a float64) float64 {
	return math.Log(a / (1 - a))
}

// SquashDerivative returns the derivative of Squash, given the activation it produced.
func SquashDerivative(a float64) float64 {
	return a * (1 - a)
}

// BZero and WOne are the bias and weight with which a Neuron reproduces the value of a single
// source: BZero + WOne*Squash(v) == v for v in {-1, 0, 1}, and approximately so in between.
var (
	BZero = 1 / (1 - 2*Squash(1))
	WOne  = -2 * BZero
)

// clamp bounds v to [-max, max]
func clamp(v, max float64) float64 {
	if v > max {
		return max
	} else if v < -max {
		return -max
	}

	return v
}
