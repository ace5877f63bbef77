package neuronet

import "math"

// Sensitivity returns the expected amplification of an error injected at the output layer, as
// estimated from the topology alone. It is the default divisor for Train, Exemplar, and Pairs.
//
// Going from the layer below the output down to the input, each layer of size s adds
//	mult * (1 + s/2)
// where mult starts at 1 and is multiplied by sqrt(s)/4 after each layer. The result is cached;
// it does not depend on weights, so it never needs to be recomputed.
func (ff *FeedForward) Sensitivity() float64 {
	if ff.sensitivity != 0 {
		return ff.sensitivity
	}

	sizes := ff.Sizes()

	var nju float64
	mult := 1.0
	for i := len(sizes) - 2; i >= 0; i-- {
		s := float64(sizes[i])
		nju += mult * (1 + 0.5*s)
		mult *= 0.25 * math.Sqrt(s)
	}

	ff.sensitivity = nju
	return nju
}

// Njus returns the Nju of each output Neuron, under the current activations.
func (ff *FeedForward) Njus() []float64 {
	out := ff.Salida()
	njus := make([]float64, out.Len())
	for i, n := range out.neurons {
		njus[i] = n.Nju()
	}

	return njus
}
