package neuronet

import (
	"strings"

	"github.com/carlosjhr64/neuronet/utils"
	"github.com/pkg/errors"
)

// the number of Neurons each goroutine takes at a time in a parallel Partial
const neuronsPerThread int = 4

// NewInputLayer returns an InputLayer of the given size, with every Terminal set to zero. If cfg is
// nil, DefaultConfig() is used. NewInputLayer will panic if size < 1.
func NewInputLayer(size int, cfg *Config) *InputLayer {
	if size < 1 {
		panic(errors.Errorf("Layer must have size >= 1 (%d)", size))
	}

	cfg = mustConfig(cfg)
	l := &InputLayer{terminals: make([]*Terminal, size)}
	for i := range l.terminals {
		l.terminals[i] = NewTerminal(0, cfg)
	}

	return l
}

// Len returns the number of Terminals in the InputLayer.
func (l *InputLayer) Len() int {
	return len(l.terminals)
}

// Node returns the Terminal at the given index as a Node.
func (l *InputLayer) Node(index int) Node {
	return l.terminals[index]
}

// Terminal returns the Terminal at the given index.
func (l *InputLayer) Terminal(index int) *Terminal {
	return l.terminals[index]
}

// Set sets the value of each Terminal to the corresponding input. If the number of inputs does not
// equal the size of the layer, type SizeMismatchError is returned and nothing is changed.
func (l *InputLayer) Set(inputs []float64) error {
	if len(inputs) != len(l.terminals) {
		return SizeMismatchError{len(l.terminals), len(inputs), "inputs"}
	}

	for i, t := range l.terminals {
		t.SetValue(inputs[i])
	}

	return nil
}

// Values returns the values of the Terminals.
func (l *InputLayer) Values() []float64 {
	vs := make([]float64, len(l.terminals))
	for i, t := range l.terminals {
		vs[i] = t.Value()
	}

	return vs
}

func (l *InputLayer) String() string {
	strs := make([]string, len(l.terminals))
	for i, t := range l.terminals {
		strs[i] = t.String()
	}

	return strings.Join(strs, ",")
}

// NewLayer returns an unconnected Layer of the given size. If cfg is nil, DefaultConfig() is used.
// NewLayer will panic if size < 1.
func NewLayer(size int, cfg *Config) *Layer {
	if size < 1 {
		panic(errors.Errorf("Layer must have size >= 1 (%d)", size))
	}

	cfg = mustConfig(cfg)
	l := &Layer{neurons: make([]*Neuron, size), cfg: cfg}
	for i := range l.neurons {
		l.neurons[i] = NewNeuron(cfg)
	}

	return l
}

// Len returns the number of Neurons in the Layer.
func (l *Layer) Len() int {
	return len(l.neurons)
}

// Node returns the Neuron at the given index as a Node.
func (l *Layer) Node(index int) Node {
	return l.neurons[index]
}

// Neuron returns the Neuron at the given index.
func (l *Layer) Neuron(index int) *Neuron {
	return l.neurons[index]
}

// Sources returns the Sources the Layer has been connected to, in order. The returned slice is a
// copy.
func (l *Layer) Sources() []Source {
	ss := make([]Source, len(l.sources))
	copy(ss, l.sources)
	return ss
}

// Connect gives every Neuron in the Layer one Connection to every Node in src, in index order. If
// weights are given, there must be exactly l.Len()*src.Len() of them; the weight of the
// Connection from Neuron j to Node k is weights[j*src.Len()+k]. Otherwise all weights are zero.
//
// Connect may be called more than once, with different Sources, to add skip connections. The
// Connections to each Source follow those of the Sources before it. A Layer can't be connected to
// itself, or to any Layer that already takes input from it.
func (l *Layer) Connect(src Source, weights ...float64) error {
	if src == nil {
		return NilArgError{"Source"}
	} else if dependsOn(src, l) {
		return errors.Errorf("Can't connect layer to a source that depends on it")
	}

	size := src.Len()
	if len(weights) != 0 && len(weights) != len(l.neurons)*size {
		return errors.Wrapf(SizeMismatchError{len(l.neurons) * size, len(weights), "weights"},
			"Can't connect layer")
	}

	for j, n := range l.neurons {
		for k := 0; k < size; k++ {
			var w float64
			if len(weights) != 0 {
				w = weights[j*size+k]
			}

			n.Connect(src.Node(k), w)
		}
	}

	l.sources = append(l.sources, src)
	l.cfg.logger().Debug("connected layer", "neurons", len(l.neurons), "sources", size)
	return nil
}

// dependsOn returns whether src is l, or takes input from l through any chain of Layers
func dependsOn(src Source, l *Layer) bool {
	sl, ok := src.(*Layer)
	if !ok {
		return false
	} else if sl == l {
		return true
	}

	for _, s := range sl.sources {
		if dependsOn(s, l) {
			return true
		}
	}

	return false
}

// Partial recomputes every Neuron from the current activations of its sources. If the Config has
// more than one Worker, the Neurons are split among that many goroutines; Neurons within a Layer
// never read from each other, so the order does not matter.
func (l *Layer) Partial() {
	utils.MultiThread(0, len(l.neurons), func(i int) {
		l.neurons[i].Partial()
	}, neuronsPerThread, l.cfg.Workers)
}

// Update recomputes every Neuron, recursively updating all of their sources first.
func (l *Layer) Update() {
	for _, n := range l.neurons {
		n.Update()
	}
}

// Values returns the values of the Neurons.
func (l *Layer) Values() []float64 {
	vs := make([]float64, len(l.neurons))
	for i, n := range l.neurons {
		vs[i] = n.Value()
	}

	return vs
}

// Train backpropagates, from each Neuron, the difference between its target and its value,
// divided by mju. If the number of targets does not equal the size of the Layer, type
// SizeMismatchError is returned and nothing is changed.
//
// Train is always serial: Neurons in the same Layer share sources, and backpropagation through a
// shared source is not safe to run concurrently.
func (l *Layer) Train(targets []float64, mju float64) error {
	return l.train(targets, mju, 0)
}

func (l *Layer) train(targets []float64, mju float64, pass uint64) error {
	if len(targets) != len(l.neurons) {
		return SizeMismatchError{len(l.neurons), len(targets), "targets"}
	} else if mju == 0 {
		return errors.Errorf("Can't train layer with mju == 0")
	}

	for i, n := range l.neurons {
		n.backpropagate((targets[i]-n.Value())/mju, pass)
	}

	return nil
}

func (l *Layer) String() string {
	strs := make([]string, len(l.neurons))
	for i, n := range l.neurons {
		strs[i] = n.String()
	}

	return strings.Join(strs, ",")
}
