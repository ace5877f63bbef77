package neuronet

import (
	"testing"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

func TestBuildTaoYinYang(t *testing.T) {
	ff, err := Build([]int{3, 3, 3}, identityConfig(), Tao, Yin, Yang)
	if err != nil {
		t.Fatal(err)
	}

	if n := ff.Salida().Neuron(0).NumConnections(); n != 6 {
		t.Errorf("output neuron has %d connections, want 6", n)
	}

	for _, in := range [][]float64{{-1, 0, 1}, {1, 1, -1}, {0, 0, 0}} {
		outs, err := ff.Apply(in)
		if err != nil {
			t.Fatal(err)
		}

		if !floats.EqualApprox(outs, in, 1e-9) {
			t.Errorf("Tao/Yin/Yang network maps %v to %v", in, outs)
		}
	}
}

func TestBuildPresets(t *testing.T) {
	// the edge neurons of a local average only see two of three ones
	edge := BZero + WOne*Squash(BZero+2*WOne/3*Squash(1))

	tests := []struct {
		name    string
		sizes   []int
		presets []Preset
		inputs  []float64
		want    []float64
	}{
		{"brahma", []int{2, 4, 4}, []Preset{Brahma, Yang}, []float64{1, -1}, []float64{1, -1, -1, 1}},
		{"shiva", []int{2, 2, 4}, []Preset{Yin, Shiva}, []float64{1, 0}, []float64{1, -1, 0, 0}},
		{"summa", []int{4, 2, 2}, []Preset{Summa, Yang}, []float64{1, -1, 1, 1}, []float64{0, 1}},
		{"sintezo", []int{2, 2, 1, 1}, []Preset{Yin, Sintezo, Yang}, []float64{1, 1}, []float64{1}},
		{"synthesis", []int{2, 2, 1}, []Preset{Yin, Synthesis}, []float64{-1, 1}, []float64{0}},
		{"vishnu", []int{3, 3, 1, 1}, []Preset{Yin, Vishnu, Yang}, []float64{-1, 0, 1}, []float64{0}},
		{"neo", []int{2, 2, 2, 2}, []Preset{Yin, Neo, Yang}, []float64{-1, 1}, []float64{-1, 1}},
		{"promedio", []int{3, 3, 3}, []Preset{Promedio, Yang}, []float64{1, 1, 1}, []float64{edge, 1, edge}},
	}

	for _, test := range tests {
		ff, err := Build(test.sizes, identityConfig(), test.presets...)
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}

		outs, err := ff.Apply(test.inputs)
		if err != nil {
			t.Fatal(err)
		}

		if !floats.EqualApprox(outs, test.want, 1e-9) {
			t.Errorf("%s: %v maps to %v, want %v", test.name, test.inputs, outs, test.want)
		}
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		sizes  []int
		preset Preset
		cause  error
	}{
		{[]int{2, 2}, Tao, ErrNoHiddenLayer},
		{[]int{2, 2}, Yin, ErrNoHiddenLayer},
		{[]int{2, 2, 2}, Neo, ErrNoHiddenLayer},
		{[]int{2, 2, 2}, Preset("nirvana"), ErrUnknownPreset},
	}

	for _, test := range tests {
		if _, err := Build(test.sizes, nil, test.preset); errors.Cause(err) != test.cause {
			t.Errorf("%q on %v gave %v, want %v", test.preset, test.sizes, err, test.cause)
		}
	}

	// size mismatches are errors, not truncations
	if _, err := Build([]int{3, 3, 3}, nil, Brahma); err == nil {
		t.Errorf("Brahma on same-size layers gave no error")
	}

	if _, err := Build([]int{3, 3, 3}, nil, Synthesis); err == nil {
		t.Errorf("Synthesis on same-size layers gave no error")
	}

	// the lenient mirrors cover what they can
	if _, err := Build([]int{3, 2, 4}, nil, Yin, Yang); err != nil {
		t.Errorf("Yin, Yang on mismatched sizes gave %v", err)
	}
}
