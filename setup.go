package neuronet

import (
	"github.com/pkg/errors"
)

// Preset names a way of initializing part of a FeedForward, applied with Bless or Build.
type Preset string

// The presets. Those that act on the first or last hidden layer need the network to have one, and
// return ErrNoHiddenLayer otherwise.
const (
	// Tao connects the output layer directly to the input layer, in addition to the last hidden
	// layer. The new Connections start at zero.
	Tao Preset = "tao"

	// Yin makes the first hidden layer mirror the input, for as many Neurons as they share.
	Yin Preset = "yin"

	// Yang makes the output mirror the last hidden layer, for as many Neurons as they share.
	Yang Preset = "yang"

	// Neo makes the last hidden layer mirror the layer below it. It requires at least two hidden
	// layers.
	Neo Preset = "neo"

	// Brahma makes the first hidden layer a redux of the input.
	Brahma Preset = "brahma"

	// Shiva makes the output a redux of the last hidden layer.
	Shiva Preset = "shiva"

	// Vishnu makes the last hidden layer average the layer below it.
	Vishnu Preset = "vishnu"

	// Summa makes the first hidden layer a synthesis of the input.
	Summa Preset = "summa"

	// Sintezo makes the last hidden layer a synthesis of the layer below it.
	Sintezo Preset = "sintezo"

	// Synthesis makes the output a synthesis of the last hidden layer.
	Synthesis Preset = "synthesis"

	// Promedio makes the first hidden layer a local average of the input.
	Promedio Preset = "promedio"

	// Mediocris makes the last hidden layer a local average of the layer below it.
	Mediocris Preset = "mediocris"

	// Average makes the output a local average of the last hidden layer.
	Average Preset = "average"
)

// which layer a preset acts on
type target int8

const (
	yinLayer target = iota
	yangLayer
	outputLayer
)

type presetFunc struct {
	layer target
	apply func(*Layer) error

	// the number of layers required, including input and output
	minLayers int
}

var presets = map[Preset]presetFunc{
	Yin:       {yinLayer, func(l *Layer) error { return l.mirrorLeading(1) }, 3},
	Yang:      {outputLayer, func(l *Layer) error { return l.mirrorLeading(1) }, 3},
	Neo:       {yangLayer, func(l *Layer) error { return l.mirrorLeading(1) }, 4},
	Brahma:    {yinLayer, (*Layer).Redux, 3},
	Shiva:     {outputLayer, (*Layer).Redux, 3},
	Vishnu:    {yangLayer, func(l *Layer) error { return l.Average(1) }, 3},
	Summa:     {yinLayer, func(l *Layer) error { return l.Synthesis(1) }, 3},
	Sintezo:   {yangLayer, func(l *Layer) error { return l.Synthesis(1) }, 3},
	Synthesis: {outputLayer, func(l *Layer) error { return l.Synthesis(1) }, 3},
	Promedio:  {yinLayer, func(l *Layer) error { return l.LocalAverage(1) }, 3},
	Mediocris: {yangLayer, func(l *Layer) error { return l.LocalAverage(1) }, 3},
	Average:   {outputLayer, func(l *Layer) error { return l.LocalAverage(1) }, 3},
}

// Build constructs a network with NewFeedForward and applies the given presets to it, in order.
func Build(sizes []int, cfg *Config, ps ...Preset) (*FeedForward, error) {
	ff, err := NewFeedForward(sizes, cfg)
	if err != nil {
		return nil, err
	}

	if err = ff.Bless(ps...); err != nil {
		return nil, err
	}

	return ff, nil
}

// Bless applies the given presets to the network, in order. Bless stops at the first preset that
// fails, leaving the earlier ones applied.
func (ff *FeedForward) Bless(ps ...Preset) error {
	for _, p := range ps {
		if err := ff.bless(p); err != nil {
			return errors.Wrapf(err, "Can't apply preset %q", p)
		}
	}

	return nil
}

func (ff *FeedForward) bless(p Preset) error {
	if p == Tao {
		if ff.Len() < 3 {
			return ErrNoHiddenLayer
		}

		return ff.Salida().Connect(ff.input)
	}

	pf, ok := presets[p]
	if !ok {
		return ErrUnknownPreset
	} else if ff.Len() < pf.minLayers {
		return ErrNoHiddenLayer
	}

	var l *Layer
	switch pf.layer {
	case yinLayer:
		l = ff.layers[0]
	case yangLayer:
		l = ff.layers[len(ff.layers)-2]
	case outputLayer:
		l = ff.Salida()
	}

	return pf.apply(l)
}
