package neuronet

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// NewFeedForward builds a network with an InputLayer of size sizes[0], followed by a Layer for
// each of the remaining sizes, each densely connected to the one before it with zero weights.
//
// If cfg is nil, DefaultConfig() is used. The Config is validated (filling in defaults) and then
// copied; the network and its Nodes share the copy, so one Config may build any number of
// networks. A Noise registered under its TypeString is rebuilt from a random source of the
// network's own, seeded with cfg.Seed. Any other Noise is used as given. NewFeedForward returns
// ErrTooFewLayers if fewer than two sizes are given.
func NewFeedForward(sizes []int, cfg *Config) (*FeedForward, error) {
	if len(sizes) < 2 {
		return nil, ErrTooFewLayers
	}

	for i, s := range sizes {
		if s < 1 {
			return nil, errors.Errorf("Layer %d must have size >= 1 (%d)", i, s)
		}
	}

	if cfg == nil {
		cfg = DefaultConfig()
	} else if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "Can't make network")
	}

	own := *cfg
	n, err := NewNoise(own.Noise.TypeString(), rand.New(rand.NewSource(own.Seed)))
	if err == nil {
		own.Noise = n
	} else if errors.Cause(err) != ErrUnknownNoise {
		return nil, errors.Wrapf(err, "Can't make network")
	}

	cfg = &own
	ff := &FeedForward{
		id:     uuid.New(),
		input:  NewInputLayer(sizes[0], cfg),
		layers: make([]*Layer, len(sizes)-1),
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
	}

	var prev Source = ff.input
	for i, s := range sizes[1:] {
		l := NewLayer(s, cfg)
		if err := l.Connect(prev); err != nil {
			return nil, errors.Wrapf(err, "Failed to connect layer %d", i+1)
		}

		ff.layers[i] = l
		prev = l
	}

	cfg.logger().Debug("built network", "id", ff.id, "sizes", sizes)
	return ff, nil
}

// ID returns the random identifier of the network. It is only used as a label.
func (ff *FeedForward) ID() uuid.UUID {
	return ff.id
}

// Config returns the network's own copy of the Config it was built with, shared by all of its
// Nodes.
func (ff *FeedForward) Config() *Config {
	return ff.cfg
}

// Sizes returns the size of every layer, starting with the input.
func (ff *FeedForward) Sizes() []int {
	sizes := make([]int, 1+len(ff.layers))
	sizes[0] = ff.input.Len()
	for i, l := range ff.layers {
		sizes[i+1] = l.Len()
	}

	return sizes
}

// Len returns the number of layers in the network, including the input.
func (ff *FeedForward) Len() int {
	return 1 + len(ff.layers)
}

// Entrada returns the input layer.
func (ff *FeedForward) Entrada() *InputLayer {
	return ff.input
}

// Layer returns the non-input Layer at the given index, where index 1 is the first Layer after the
// input. Index 0 is not a *Layer; use Entrada instead. Layer allows index-out-of-bounds panics.
func (ff *FeedForward) Layer(index int) *Layer {
	if index == 0 {
		panic(errors.Errorf("Layer 0 is the input layer"))
	}

	return ff.layers[index-1]
}

// Layers returns every non-input Layer, from the first hidden layer to the output. The returned
// slice is a copy.
func (ff *FeedForward) Layers() []*Layer {
	ls := make([]*Layer, len(ff.layers))
	copy(ls, ff.layers)
	return ls
}

// Salida returns the output layer.
func (ff *FeedForward) Salida() *Layer {
	return ff.layers[len(ff.layers)-1]
}

// Yin returns the first hidden layer. If the network has no hidden layer, ErrNoHiddenLayer is
// returned.
func (ff *FeedForward) Yin() (*Layer, error) {
	if len(ff.layers) < 2 {
		return nil, ErrNoHiddenLayer
	}

	return ff.layers[0], nil
}

// Yang returns the last hidden layer. If the network has no hidden layer, ErrNoHiddenLayer is
// returned.
func (ff *FeedForward) Yang() (*Layer, error) {
	if len(ff.layers) < 2 {
		return nil, ErrNoHiddenLayer
	}

	return ff.layers[len(ff.layers)-2], nil
}

// SetNoise replaces the Noise used by every Neuron in the network. Other networks built from the
// same Config are not affected.
func (ff *FeedForward) SetNoise(n Noise) error {
	if n == nil {
		return NilArgError{"Noise"}
	}

	ff.cfg.Noise = n
	return nil
}

// nextPass returns the identifier for a new training pass, or zero if revisits are not guarded
func (ff *FeedForward) nextPass() uint64 {
	if !ff.cfg.GuardRevisits {
		return 0
	}

	ff.pass++
	return ff.pass
}

// String gives the values of every layer, one layer per line, starting with the input. Neurons are
// shown as value|bias.
func (ff *FeedForward) String() string {
	strs := make([]string, 1+len(ff.layers))
	strs[0] = ff.input.String()
	for i, l := range ff.layers {
		strs[i+1] = l.String()
	}

	return strings.Join(strs, "\n")
}
