package neuronet

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// TrainUntil returns a function that satisfies LearnArgs.RunCondition, stopping after maxEpochs.
func TrainUntil(maxEpochs int) func(int, float64) bool {
	return func(epoch int, rms float64) bool {
		return epoch < maxEpochs
	}
}

// UntilRMS returns a function that satisfies LearnArgs.RunCondition, stopping once the RMS error
// is at most target, or after maxEpochs, whichever is first.
func UntilRMS(target float64, maxEpochs int) func(int, float64) bool {
	return func(epoch int, rms float64) bool {
		return rms > target && epoch < maxEpochs
	}
}

// returns a function that satisfies LearnArgs.SendStatus
// 'frequency' is in units of epochs; below 1, no status is ever sent
func Every(frequency int) func(int) bool {
	return func(epoch int) bool {
		return frequency > 0 && epoch%frequency == 0
	}
}

// CorrectSign returns whether every output has the same sign as its target. A zero target
// accepts any output. Assumes len(outs) == len(targets).
func CorrectSign(outs, targets []float64) bool {
	for i := range outs {
		if targets[i] != 0 && math.Signbit(outs[i]) != math.Signbit(targets[i]) {
			return false
		}
	}

	return true
}

// CorrectWithin returns a function that satisfies LearnArgs.IsCorrect, accepting outputs that are
// all within tol of their targets.
func CorrectWithin(tol float64) func([]float64, []float64) bool {
	return func(outs, targets []float64) bool {
		return floats.EqualApprox(outs, targets, tol)
	}
}

// RMS returns the root-mean-square difference between outs and targets. Assumes
// len(outs) == len(targets) > 0.
func RMS(outs, targets []float64) float64 {
	return floats.Distance(outs, targets, 2) / math.Sqrt(float64(len(outs)))
}
