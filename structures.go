package neuronet

import (
	"math/rand"

	"github.com/google/uuid"
)

// Node is anything a Connection can read an activation from. There are exactly two kinds of Node:
// *Terminal, used for the input layer, and *Neuron. The interface is closed; it cannot be
// implemented outside of this package.
type Node interface {
	// Activation returns the cached squashed state of the Node, in (0, 1).
	Activation() float64

	// Value returns the unsquashed, "real world" value of the Node.
	Value() float64

	// SetValue clamps the given value and stores its squashed form as the activation.
	SetValue(float64)

	// Update recomputes the Node and everything it reads from, returning the new activation.
	Update() float64

	// Partial recomputes the Node assuming everything it reads from is already current.
	Partial() float64

	// Backpropagate adjusts the Node (and, recursively, its sources) by the given error.
	Backpropagate(float64)

	// backpropagate is Backpropagate with the identifier of the current training pass. A pass of
	// zero is never guarded.
	backpropagate(float64, uint64)
}

// Terminal is a Node with no connections. Its value is only changed by SetValue, and it is where
// backpropagation stops.
type Terminal struct {
	activation float64

	cfg *Config
}

// Neuron is a Node with a bias and an ordered list of Connections to the Nodes that feed it.
type Neuron struct {
	activation float64
	bias       float64

	// mu is 1 plus the sum of the source activations as of the most recent Update or Partial. It
	// is zero until first computed.
	mu float64

	connections []*Connection

	// the training pass during which this Neuron last backpropagated; only used if
	// cfg.GuardRevisits is set
	pass uint64

	cfg *Config
}

// Connection is a weighted edge from the Neuron that owns it to the Node it reads from. The
// Connection does not own its source; many Connections may share one.
type Connection struct {
	source Node
	weight float64

	cfg *Config
}

// Source is an ordered, index-addressable set of Nodes that a Layer can be connected to. Both
// *InputLayer and *Layer are Sources.
type Source interface {
	Len() int
	Node(int) Node
}

// InputLayer is the ordered set of Terminals at the bottom of a network.
type InputLayer struct {
	terminals []*Terminal
}

// Layer is an ordered set of Neurons of the same rank. Neurons within a Layer are never connected
// to each other.
type Layer struct {
	neurons []*Neuron

	// every Source this Layer has been connected to, in the order of the calls to Connect. The
	// connections of each Neuron are laid out in the same order.
	sources []Source

	cfg *Config
}

// FeedForward is a layered network: an InputLayer followed by Layers, each densely connected to the
// one before it.
type FeedForward struct {
	id uuid.UUID

	input  *InputLayer
	layers []*Layer

	cfg *Config

	// used for shuffling training data and for picking output neurons in PairsRandom
	rng *rand.Rand

	// the identifier of the most recent guarded training pass
	pass uint64

	// cached by Sensitivity(); zero until computed
	sensitivity float64
}
