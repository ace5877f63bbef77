// Package neuronet provides a small feed-forward neural network library that works at the level of
// individual neurons. There is no matrix library and no automatic differentiation: every bias,
// weight, Neuron, Connection, and Layer is a plain value that can be inspected and changed.
//
// Creating Networks
//
// The center of everything is the FeedForward, made from a list of layer sizes:
//
//		ff, err := neuronet.NewFeedForward([]int{3, 3, 3}, nil)
//		if err != nil {
//			return err
//		}
//
// The first size is the input layer, made of Terminals; each size after it is a Layer of Neurons,
// densely connected to the layer before. All weights start at zero. Passing a nil *Config uses
// DefaultConfig(); otherwise the Config is filled in with defaults and the network keeps its own
// copy, with its own Noise.
//
// A network can be given an interpretable starting point with presets. Build makes a network and
// applies them in order:
//
//		ff, err := neuronet.Build([]int{3, 3, 3}, nil, neuronet.Tao, neuronet.Yin, neuronet.Yang)
//
// Here the output starts out mirroring the input, with a direct connection from output to input
// for training to make use of. Individual Layers have their own presets (Mirror, Redux,
// Antithesis, Synthesis, Average, LocalAverage).
//
// Values and Activations
//
// Every Node has an activation in (0, 1), which is the Squash of its value. Inputs and outputs
// are given as values. Values are clamped before they are squashed, and weights and biases are
// clamped after every training step, so that activations never saturate to exactly 0 or 1.
//
// Training
//
// Training is done one sample at a time. The error at each output Neuron is (target - value)/mju,
// which is then passed down through every path to the input. At each Neuron it is split among the
// bias and the Connections in proportion to the activations they carry. By default mju is given
// by Sensitivity(), which depends only on the sizes of the layers:
//
//		err := ff.Exemplar(inputs, targets)
//
// For whole datasets there is Pairs, which shuffles the data with the network's seeded random
// source, and Learn, which repeats Pairs until a caller-given condition is met:
//
//		err := ff.Learn(neuronet.LearnArgs{
//			Data:         data,
//			RunCondition: neuronet.UntilRMS(0.01, 1000),
//		})
//
// Every bias and weight update passes through the Config's Noise. The default, "uniform2",
// multiplies each update by a random factor with a mean of 1.
//
// Saving and Loading
//
// Networks are written as plain text with Export and ExportFile, and read back into a network of
// the same shape with Import and ImportFile. Nothing is changed unless the whole input is valid.
package neuronet
