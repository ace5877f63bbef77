package neuronet

import (
	"fmt"
	"strconv"
)

// mustConfig returns cfg, validated, or a default Config if cfg is nil. Constructors that can't
// return an error panic on an invalid Config.
func mustConfig(cfg *Config) *Config {
	if cfg == nil {
		return DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	return cfg
}

// NewTerminal returns a Terminal set to the given value. If cfg is nil, DefaultConfig() is used.
func NewTerminal(value float64, cfg *Config) *Terminal {
	t := &Terminal{cfg: mustConfig(cfg)}
	t.SetValue(value)
	return t
}

// Activation returns the squashed value of the Terminal.
func (t *Terminal) Activation() float64 {
	return t.activation
}

// Value returns the unsquashed activation of the Terminal.
func (t *Terminal) Value() float64 {
	return Unsquash(t.activation)
}

// SetValue clamps v to the Config's ValueClamp and sets the activation to its squashed value.
func (t *Terminal) SetValue(v float64) {
	t.activation = Squash(clamp(v, t.cfg.ValueClamp))
}

// Update returns the activation; a Terminal has nothing to recompute.
func (t *Terminal) Update() float64 {
	return t.activation
}

// Partial returns the activation; a Terminal has nothing to recompute.
func (t *Terminal) Partial() float64 {
	return t.activation
}

// Backpropagate does nothing. Terminals are where backpropagation ends.
func (t *Terminal) Backpropagate(float64) {}

func (t *Terminal) backpropagate(float64, uint64) {}

func (t *Terminal) String() string {
	return strconv.FormatFloat(t.Value(), 'g', 14, 64)
}

// NewNeuron returns a Neuron with zero bias, no connections, and an activation of 0.5. If cfg is
// nil, DefaultConfig() is used.
func NewNeuron(cfg *Config) *Neuron {
	n := &Neuron{cfg: mustConfig(cfg)}
	n.activation = Squash(0)
	return n
}

// Activation returns the activation as of the most recent Update, Partial, or SetValue.
func (n *Neuron) Activation() float64 {
	return n.activation
}

// Value returns the unsquashed activation of the Neuron.
func (n *Neuron) Value() float64 {
	return Unsquash(n.activation)
}

// SetValue clamps v to the Config's ValueClamp and sets the activation to its squashed value. The
// activation will be overwritten by the next Update or Partial.
func (n *Neuron) SetValue(v float64) {
	n.activation = Squash(clamp(v, n.cfg.ValueClamp))
}

// Bias returns the bias of the Neuron.
func (n *Neuron) Bias() float64 {
	return n.bias
}

// SetBias sets the bias of the Neuron. It is not clamped.
func (n *Neuron) SetBias(b float64) {
	n.bias = b
}

// Connections returns the Neuron's Connections. The returned slice is a copy, but the Connections
// are not.
func (n *Neuron) Connections() []*Connection {
	cs := make([]*Connection, len(n.connections))
	copy(cs, n.connections)
	return cs
}

// Connection returns the Connection at the given index, allowing index-out-of-bounds panics.
func (n *Neuron) Connection(index int) *Connection {
	return n.connections[index]
}

// NumConnections returns the number of Connections the Neuron has.
func (n *Neuron) NumConnections() int {
	return len(n.connections)
}

// IsTerminal returns whether or not the Neuron has no Connections yet. An unconnected Neuron
// still learns its bias.
func (n *Neuron) IsTerminal() bool {
	return len(n.connections) == 0
}

// Connect appends a Connection to node with the given weight. Connections can't be removed. The
// Neuron is returned to allow chaining. If node is nil, Connect will panic with type NilArgError.
func (n *Neuron) Connect(node Node, weight float64) *Neuron {
	if node == nil {
		panic(NilArgError{"Node"})
	}

	n.connections = append(n.connections, &Connection{source: node, weight: weight, cfg: n.cfg})
	return n
}

// resetMu recomputes mu from the current activations of the sources
func (n *Neuron) resetMu() {
	n.mu = 1
	for _, c := range n.connections {
		n.mu += c.source.Activation()
	}
}

// Update recursively updates every source, then recomputes the Neuron from its bias and the
// weighted source activations. It returns the new activation.
func (n *Neuron) Update() float64 {
	sum := n.bias
	for _, c := range n.connections {
		sum += c.Update()
	}

	n.resetMu()
	n.SetValue(sum)
	return n.activation
}

// Partial recomputes the Neuron from its bias and the current activations of its sources, without
// updating them first. It returns the new activation.
func (n *Neuron) Partial() float64 {
	sum := n.bias
	for _, c := range n.connections {
		sum += c.WeightedActivation()
	}

	n.resetMu()
	n.SetValue(sum)
	return n.activation
}

// Backpropagate adjusts the bias by the error divided by Mu(), then has each Connection adjust its
// weight and pass the error on to its source. Each contributor's share of the error is
// proportional to its share of the Neuron's pre-activation sum.
func (n *Neuron) Backpropagate(err float64) {
	n.backpropagate(err, 0)
}

func (n *Neuron) backpropagate(err float64, pass uint64) {
	if pass != 0 {
		if n.pass == pass {
			return
		}
		n.pass = pass
	}

	if n.mu == 0 {
		n.resetMu()
	}

	n.bias = clamp(n.bias+n.cfg.Noise.Apply(err/n.mu), n.cfg.BiasClamp)
	for _, c := range n.connections {
		c.backpropagate(err, n.mu, pass)
	}
}

// Mu returns 1 plus the sum of the source activations, as of the most recent Update or Partial.
// Mu is the divisor that splits an error among the bias and the Connections.
func (n *Neuron) Mu() float64 {
	if n.mu == 0 {
		n.resetMu()
	}

	return n.mu
}

// Nju estimates how much an error injected at this Neuron is amplified through the subgraph below
// it:
//	nju = mu + Σ weight * a(1-a) * nju'
// over the Connections, where a and nju' belong to each source. Terminals contribute nothing, as
// do saturated sources.
func (n *Neuron) Nju() float64 {
	if len(n.connections) == 0 {
		return 0
	}

	nju := n.Mu()
	for _, c := range n.connections {
		src, ok := c.source.(*Neuron)
		if !ok {
			continue
		}

		a := src.activation
		if a >= 1 {
			continue
		}

		if sub := src.Nju(); sub != 0 {
			nju += c.weight * SquashDerivative(a) * sub
		}
	}

	return nju
}

// DownstreamParams returns the number of biases and weights that backpropagation from this Neuron
// reaches: its own bias, one weight per Connection, and recursively the same for each source that
// is a connected Neuron. Sources reachable through several paths are counted once per path.
func (n *Neuron) DownstreamParams() int {
	if len(n.connections) == 0 {
		return 0
	}

	tally := 1 + len(n.connections)
	for _, c := range n.connections {
		if src, ok := c.source.(*Neuron); ok {
			tally += src.DownstreamParams()
		}
	}

	return tally
}

func (n *Neuron) String() string {
	return fmt.Sprintf("%s|%s", strconv.FormatFloat(n.Value(), 'g', 14, 64),
		strconv.FormatFloat(n.bias, 'g', 14, 64))
}
