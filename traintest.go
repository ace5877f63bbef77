package neuronet

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Result is a wrapper for sending back the progress of training.
type Result struct {
	// the number of complete passes over the data before the Result was taken
	Epoch int

	// root-mean-square of the residuals over every output of every Datum
	RMS float64

	// the fraction correct, as per IsCorrect from LearnArgs
	// 0 → 1
	Correct float64
}

// LearnArgs are the arguments to Learn. Only Data and RunCondition are required.
type LearnArgs struct {
	Data []Datum

	// Mju is the divisor used for training. If zero, Sensitivity() is used.
	Mju float64

	// RunCondition is called before every epoch with the number of epochs so far and the RMS error
	// of the network on Data. Training stops when it returns false.
	RunCondition func(epoch int, rms float64) bool

	// SendStatus indicates whether or not to send a Result through Update before the given epoch.
	// SendStatus can be left nil to represent an unconditional false.
	SendStatus func(epoch int) bool

	// IsCorrect returns whether or not the outputs are correct, given the targets. The length of
	// both provided slices is guaranteed to be equal. If nil, nothing is counted as correct.
	IsCorrect func(outs, targets []float64) bool

	// Update is how status updates are returned. It can be nil if SendStatus is.
	Update func(Result)
}

// Learn trains the network with Pairs, one epoch at a time, until args.RunCondition returns false.
// The network is tested on args.Data before every epoch, and once more at the end.
func (ff *FeedForward) Learn(args LearnArgs) error {
	// handle error cases and set defaults
	{
		if len(args.Data) == 0 {
			return ErrNoData
		} else if args.RunCondition == nil {
			return errors.Errorf("RunCondition is nil")
		}

		if args.SendStatus == nil {
			args.SendStatus = func(int) bool { return false }
		} else if args.Update == nil {
			return errors.Errorf("SendStatus is given but Update is nil")
		}

		if args.IsCorrect == nil {
			args.IsCorrect = func(_, _ []float64) bool { return false }
		}

		if args.Mju == 0 {
			args.Mju = ff.Sensitivity()
		}
	}

	log := ff.cfg.logger().With("id", ff.id)

	for epoch := 0; ; epoch++ {
		rms, correct, err := ff.Test(args.Data, args.IsCorrect)
		if err != nil {
			return errors.Wrapf(err, "Testing before epoch %d failed", epoch)
		}

		log.Debug("epoch", "epoch", epoch, "rms", rms, "correct", correct)

		if args.SendStatus(epoch) {
			args.Update(Result{Epoch: epoch, RMS: rms, Correct: correct})
		}

		if !args.RunCondition(epoch, rms) {
			return nil
		}

		if err = ff.PairsWith(args.Data, args.Mju); err != nil {
			return errors.Wrapf(err, "Training on epoch %d failed", epoch)
		}
	}
}

// Test runs the network on every Datum without training, returning the root-mean-square of the
// residuals over all outputs, and the fraction of Data for which isCorrect returned true. If
// isCorrect is nil, the fraction correct is zero.
func (ff *FeedForward) Test(data []Datum, isCorrect func(outs, targets []float64) bool) (rms, correct float64, err error) {
	if len(data) == 0 {
		return 0, 0, ErrNoData
	}

	var sumSq float64
	var count int
	for i, d := range data {
		if !d.Fits(ff) {
			return 0, 0, errors.Errorf("Test sample %d does not fit network dimensions", i)
		}

		outs, err := ff.Apply(d.Inputs)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "Failed to get network outputs with test sample %d", i)
		}

		dist := floats.Distance(outs, d.Targets, 2)
		sumSq += dist * dist
		count += len(outs)

		if isCorrect != nil && isCorrect(outs, d.Targets) {
			correct++
		}
	}

	return math.Sqrt(sumSq / float64(count)), correct / float64(len(data)), nil
}
