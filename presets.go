package neuronet

import (
	"github.com/pkg/errors"
)

// Presets give a freshly connected Layer an interpretable starting function of its first Source.
// Each sets the bias of every Neuron it touches and the weights of some of its Connections to the
// first Source, leaving all other Connections as they were. None of them are randomized.
//
// Presets that need a particular ratio between the size of the Layer and its Source return type
// SizeMismatchError rather than truncating. A Layer with no Source gives ErrNotConnected.

// firstSource returns the first Source of the Layer, checking that its size is 'ratio' times the
// size of the Layer, where ratio is given as num/den.
func (l *Layer) firstSource(num, den int, preset string) (Source, error) {
	if len(l.sources) == 0 {
		return nil, errors.Wrapf(ErrNotConnected, "Can't apply %s", preset)
	}

	src := l.sources[0]
	if src.Len()*den != len(l.neurons)*num {
		return nil, errors.Wrapf(SizeMismatchError{src.Len() * den / num, len(l.neurons), "layer"},
			"Can't apply %s to layer with source of size %d", preset, src.Len())
	}

	return src, nil
}

// Mirror sets each Neuron to reproduce the value of the Node at the same index in the first
// Source, multiplied by sign (for values in {-1, 0, 1}; others approximately). The Layer must be
// the same size as its first Source.
func (l *Layer) Mirror(sign float64) error {
	if _, err := l.firstSource(1, 1, "mirror"); err != nil {
		return err
	}

	for i, n := range l.neurons {
		n.bias = sign * BZero
		n.connections[i].weight = sign * WOne
	}

	return nil
}

// Redux splits each Node of the first Source into a mirrored and an anti-mirrored copy: Neurons
// 2i and 2i+1 mirror source i with signs +1 and -1, respectively. The Layer must be twice the size
// of its first Source.
func (l *Layer) Redux() error {
	if _, err := l.firstSource(1, 2, "redux"); err != nil {
		return err
	}

	sign := 1.0
	for i, n := range l.neurons {
		n.bias = sign * BZero
		n.connections[i/2].weight = sign * WOne
		sign = -sign
	}

	return nil
}

// Antithesis makes every even-indexed Neuron mirror, and every odd-indexed Neuron anti-mirror, the
// Node at the same index in the first Source. The Layer must be the same size as its first Source.
func (l *Layer) Antithesis() error {
	if _, err := l.firstSource(1, 1, "antithesis"); err != nil {
		return err
	}

	sign := 1.0
	for i, n := range l.neurons {
		n.bias = sign * BZero
		n.connections[i].weight = sign * WOne
		sign = -sign
	}

	return nil
}

// Synthesis makes each Neuron i sum source nodes 2i and 2i+1 at half weight each, so that it starts
// as sign times their pairwise average. The Layer must be half the size of its first Source.
func (l *Layer) Synthesis(sign float64) error {
	if _, err := l.firstSource(2, 1, "synthesis"); err != nil {
		return err
	}

	semi := sign * WOne / 2
	for i, n := range l.neurons {
		n.bias = sign * BZero
		n.connections[2*i].weight = semi
		n.connections[2*i+1].weight = semi
	}

	return nil
}

// Average sets every Connection of every Neuron to sign*WOne divided by the number of Connections
// the Neuron has, so that each Neuron starts as sign times the mean of everything it reads from.
// Unlike the other presets, Average covers the Connections to every Source, not just the first.
func (l *Layer) Average(sign float64) error {
	if len(l.sources) == 0 {
		return errors.Wrapf(ErrNotConnected, "Can't apply average")
	}

	for _, n := range l.neurons {
		n.bias = sign * BZero
		w := sign * WOne / float64(len(n.connections))
		for _, c := range n.connections {
			c.weight = w
		}
	}

	return nil
}

// LocalAverage makes each Neuron i sum source nodes i-1, i, and i+1 (those that exist) at a third
// of WOne each. Only the first min(l.Len(), source.Len()) Neurons are set; the sizes need not
// match.
func (l *Layer) LocalAverage(sign float64) error {
	if len(l.sources) == 0 {
		return errors.Wrapf(ErrNotConnected, "Can't apply local average")
	}

	size := l.sources[0].Len()
	w := sign * WOne / 3
	for i := 0; i < len(l.neurons) && i < size; i++ {
		n := l.neurons[i]
		n.bias = sign * BZero
		for k := i - 1; k <= i+1; k++ {
			if k >= 0 && k < size {
				n.connections[k].weight = w
			}
		}
	}

	return nil
}

// mirrorLeading mirrors as many Neurons as the Layer and its first Source have in common. It is
// the lenient form of Mirror used by the network presets.
func (l *Layer) mirrorLeading(sign float64) error {
	if len(l.sources) == 0 {
		return errors.Wrapf(ErrNotConnected, "Can't apply mirror")
	}

	size := l.sources[0].Len()
	for i := 0; i < len(l.neurons) && i < size; i++ {
		l.neurons[i].bias = sign * BZero
		l.neurons[i].connections[i].weight = sign * WOne
	}

	return nil
}
