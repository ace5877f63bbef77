package neuronet

import (
	"math"

	"github.com/pkg/errors"
)

// Datum is a single training or testing sample for a network.
type Datum struct {
	// Inputs must have the same size as the network's input layer.
	Inputs []float64

	// Targets is the expected output of the network, given the inputs. It must have the same size
	// as the output layer.
	Targets []float64
}

// Fits indicates whether or not the Datum's dimensions match those of the network.
func (d Datum) Fits(ff *FeedForward) bool {
	return len(d.Inputs) == ff.input.Len() && len(d.Targets) == ff.Salida().Len()
}

// Set sets the values of the input layer. If the number of inputs does not equal the size of the
// input layer, type SizeMismatchError is returned.
func (ff *FeedForward) Set(inputs []float64) error {
	return ff.input.Set(inputs)
}

// Update recomputes every Layer in order, from the first hidden layer to the output.
func (ff *FeedForward) Update() {
	for _, l := range ff.layers {
		l.Partial()
	}
}

// Input returns the current values of the input layer.
func (ff *FeedForward) Input() []float64 {
	return ff.input.Values()
}

// Output returns the current values of the output layer.
func (ff *FeedForward) Output() []float64 {
	return ff.Salida().Values()
}

// Apply sets the inputs, updates the network, and returns the outputs.
func (ff *FeedForward) Apply(inputs []float64) ([]float64, error) {
	if err := ff.Set(inputs); err != nil {
		return nil, err
	}

	ff.Update()
	return ff.Output(), nil
}

// Train backpropagates the difference between the targets and the current outputs, divided by
// Sensitivity(). It does not update the network first; see Exemplar.
func (ff *FeedForward) Train(targets []float64) error {
	return ff.TrainWith(targets, ff.Sensitivity())
}

// TrainWith is Train with a given divisor in place of Sensitivity(). Smaller values of mju make
// larger corrections.
func (ff *FeedForward) TrainWith(targets []float64, mju float64) error {
	return ff.Salida().train(targets, mju, ff.nextPass())
}

// Exemplar sets the inputs, updates the network, and trains it towards the targets with
// Sensitivity() as the divisor.
func (ff *FeedForward) Exemplar(inputs, targets []float64) error {
	return ff.ExemplarWith(inputs, targets, ff.Sensitivity())
}

// ExemplarWith is Exemplar with a given divisor.
func (ff *FeedForward) ExemplarWith(inputs, targets []float64, mju float64) error {
	if err := ff.Set(inputs); err != nil {
		return err
	}

	ff.Update()
	return ff.TrainWith(targets, mju)
}

// shuffled checks that every Datum fits and returns a copy of data in random order
func (ff *FeedForward) shuffled(data []Datum) ([]Datum, error) {
	if len(data) == 0 {
		return nil, ErrNoData
	}

	for i, d := range data {
		if !d.Fits(ff) {
			return nil, errors.Errorf("Datum %d does not fit network (%d inputs, %d targets)",
				i, len(d.Inputs), len(d.Targets))
		}
	}

	ds := make([]Datum, len(data))
	copy(ds, data)
	ff.rng.Shuffle(len(ds), func(i, j int) {
		ds[i], ds[j] = ds[j], ds[i]
	})

	return ds, nil
}

// Pairs runs Exemplar on every Datum, in an order shuffled with the network's random source. The
// given slice is not modified. If any Datum does not fit the network, an error is returned before
// any training is done.
func (ff *FeedForward) Pairs(data []Datum) error {
	return ff.PairsWith(data, ff.Sensitivity())
}

// PairsWith is Pairs with a given divisor.
func (ff *FeedForward) PairsWith(data []Datum, mju float64) error {
	ds, err := ff.shuffled(data)
	if err != nil {
		return err
	}

	for _, d := range ds {
		if err = ff.ExemplarWith(d.Inputs, d.Targets, mju); err != nil {
			return err
		}
	}

	return nil
}

// residuals applies the inputs and returns targets minus outputs
func (ff *FeedForward) residuals(inputs, targets []float64) ([]float64, error) {
	if len(targets) != ff.Salida().Len() {
		return nil, SizeMismatchError{ff.Salida().Len(), len(targets), "targets"}
	}

	outs, err := ff.Apply(inputs)
	if err != nil {
		return nil, err
	}

	for i := range outs {
		outs[i] = targets[i] - outs[i]
	}

	return outs, nil
}

// trainOne backpropagates err/nju from a single output Neuron. If nju <= 0, the Neuron's own Nju
// scaled by NjuMultiplier is used.
func (ff *FeedForward) trainOne(index int, err, nju float64) error {
	n := ff.Salida().neurons[index]
	if nju <= 0 {
		nju = ff.cfg.NjuMultiplier * math.Abs(n.Nju())
	}

	if nju == 0 {
		return errors.Errorf("Can't train output %d, nju is zero", index)
	}

	n.backpropagate(err/nju, ff.nextPass())
	return nil
}

// TrainPivot applies the inputs and backpropagates from only the output Neuron with the largest
// absolute residual (the first of them, if there is a tie). If nju <= 0, the divisor is that
// Neuron's Nju, scaled by the Config's NjuMultiplier.
func (ff *FeedForward) TrainPivot(inputs, targets []float64, nju float64) error {
	res, err := ff.residuals(inputs, targets)
	if err != nil {
		return err
	}

	var index int
	for i, r := range res {
		if math.Abs(r) > math.Abs(res[index]) {
			index = i
		}
	}

	return ff.trainOne(index, res[index], nju)
}

// PairsPivot runs TrainPivot on every Datum, in shuffled order.
func (ff *FeedForward) PairsPivot(data []Datum, nju float64) error {
	ds, err := ff.shuffled(data)
	if err != nil {
		return err
	}

	for _, d := range ds {
		if err = ff.TrainPivot(d.Inputs, d.Targets, nju); err != nil {
			return err
		}
	}

	return nil
}

// TrainRandom applies the inputs and backpropagates from one output Neuron, chosen with the
// network's random source. The divisor is chosen as in TrainPivot.
func (ff *FeedForward) TrainRandom(inputs, targets []float64, nju float64) error {
	res, err := ff.residuals(inputs, targets)
	if err != nil {
		return err
	}

	index := ff.rng.Intn(len(res))
	return ff.trainOne(index, res[index], nju)
}

// PairsRandom runs TrainRandom on every Datum, in shuffled order.
func (ff *FeedForward) PairsRandom(data []Datum, nju float64) error {
	ds, err := ff.shuffled(data)
	if err != nil {
		return err
	}

	for _, d := range ds {
		if err = ff.TrainRandom(d.Inputs, d.Targets, nju); err != nil {
			return err
		}
	}

	return nil
}
