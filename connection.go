package neuronet

import "strconv"

// Source returns the Node that the Connection reads from.
func (c *Connection) Source() Node {
	return c.source
}

// Weight returns the weight of the Connection.
func (c *Connection) Weight() float64 {
	return c.weight
}

// SetWeight sets the weight of the Connection. It is not clamped.
func (c *Connection) SetWeight(w float64) {
	c.weight = w
}

// WeightedActivation returns the current activation of the source, multiplied by the weight.
func (c *Connection) WeightedActivation() float64 {
	return c.source.Activation() * c.weight
}

// Update updates the source (recursively) and returns its new activation multiplied by the weight.
// It should be used in place of WeightedActivation whenever the inputs have changed since the last
// update.
func (c *Connection) Update() float64 {
	return c.source.Update() * c.weight
}

// Backpropagate adjusts the weight in proportion to the source activation and err/mu, clamps it,
// and passes err, unchanged, on to the source.
func (c *Connection) Backpropagate(err, mu float64) {
	c.backpropagate(err, mu, 0)
}

func (c *Connection) backpropagate(err, mu float64, pass uint64) {
	c.weight = clamp(c.weight+c.source.Activation()*c.cfg.Noise.Apply(err/mu), c.cfg.WeightClamp)
	c.source.backpropagate(err, pass)
}

func (c *Connection) String() string {
	return strconv.FormatFloat(c.weight, 'g', 14, 64)
}
