package neuronet

import (
	"github.com/pkg/errors"
)

// Distribution maps "real world" values into the range a network works well in, and back. The
// same mapping is used for inputs and outputs. Package scales provides implementations.
type Distribution interface {
	// Set fits the Distribution to the given values, keeping any parameters that are already
	// fitted (or were fixed in advance).
	Set([]float64) error

	// Reset discards all fitted parameters and fits the Distribution to the given values.
	Reset([]float64) error

	// Mapped returns the given values mapped into network space. It does not modify its argument.
	Mapped([]float64) []float64

	// Unmapped is the inverse of Mapped.
	Unmapped([]float64) []float64
}

// ScaledNetwork wraps a FeedForward so that its inputs, outputs, and targets are given in real
// world units and passed through a Distribution.
type ScaledNetwork struct {
	ff   *FeedForward
	dist Distribution

	// whether the Distribution is refitted to every set of inputs
	reset bool
}

// NewScaledNetwork wraps ff with the given Distribution. If reset is true, the Distribution is
// refitted to every set of inputs given to Set; otherwise it is fitted once, to the first.
func NewScaledNetwork(ff *FeedForward, dist Distribution, reset bool) (*ScaledNetwork, error) {
	if ff == nil {
		return nil, NilArgError{"FeedForward"}
	} else if dist == nil {
		return nil, NilArgError{"Distribution"}
	}

	return &ScaledNetwork{ff: ff, dist: dist, reset: reset}, nil
}

// Network returns the wrapped FeedForward.
func (sn *ScaledNetwork) Network() *FeedForward {
	return sn.ff
}

// Distribution returns the Distribution the network was made with.
func (sn *ScaledNetwork) Distribution() Distribution {
	return sn.dist
}

// Set fits the Distribution to the inputs (see NewScaledNetwork) and sets the network's inputs to
// their mapped values.
func (sn *ScaledNetwork) Set(inputs []float64) error {
	var err error
	if sn.reset {
		err = sn.dist.Reset(inputs)
	} else {
		err = sn.dist.Set(inputs)
	}

	if err != nil {
		return errors.Wrapf(err, "Failed to fit distribution to inputs")
	}

	return sn.ff.Set(sn.dist.Mapped(inputs))
}

// Update updates the wrapped network.
func (sn *ScaledNetwork) Update() {
	sn.ff.Update()
}

// Input returns the current inputs, unmapped.
func (sn *ScaledNetwork) Input() []float64 {
	return sn.dist.Unmapped(sn.ff.Input())
}

// Output returns the current outputs, unmapped.
func (sn *ScaledNetwork) Output() []float64 {
	return sn.dist.Unmapped(sn.ff.Output())
}

// Apply sets the inputs, updates the network, and returns the unmapped outputs.
func (sn *ScaledNetwork) Apply(inputs []float64) ([]float64, error) {
	if err := sn.Set(inputs); err != nil {
		return nil, err
	}

	sn.ff.Update()
	return sn.Output(), nil
}

// Train trains the wrapped network towards the mapped targets.
func (sn *ScaledNetwork) Train(targets []float64) error {
	return sn.ff.Train(sn.dist.Mapped(targets))
}

// Exemplar sets the inputs, updates the network, and trains it towards the targets.
func (sn *ScaledNetwork) Exemplar(inputs, targets []float64) error {
	if err := sn.Set(inputs); err != nil {
		return err
	}

	sn.ff.Update()
	return sn.Train(targets)
}

// Pairs runs Exemplar on every Datum, in an order shuffled with the network's random source.
func (sn *ScaledNetwork) Pairs(data []Datum) error {
	ds, err := sn.ff.shuffled(data)
	if err != nil {
		return err
	}

	for _, d := range ds {
		if err = sn.Exemplar(d.Inputs, d.Targets); err != nil {
			return err
		}
	}

	return nil
}
