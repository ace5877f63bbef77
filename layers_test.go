package neuronet

import (
	"testing"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// connected returns an InputLayer set to inputs, and a new Layer of the given size connected to it
func connected(t *testing.T, inputs []float64, size int) (*InputLayer, *Layer) {
	cfg := identityConfig()
	in := NewInputLayer(len(inputs), cfg)
	if err := in.Set(inputs); err != nil {
		t.Fatal(err)
	}

	l := NewLayer(size, cfg)
	if err := l.Connect(in); err != nil {
		t.Fatal(err)
	}

	return in, l
}

func TestInputLayerSet(t *testing.T) {
	in := NewInputLayer(3, nil)
	if err := in.Set([]float64{1, 2, 3}); err != nil {
		t.Fatal(err)
	}

	if vs := in.Values(); !floats.EqualApprox(vs, []float64{1, 2, 3}, 1e-12) {
		t.Errorf("Values() = %v", vs)
	}

	err := in.Set([]float64{1, 2})
	if sm, ok := err.(SizeMismatchError); !ok || sm.Expected != 3 || sm.Got != 2 {
		t.Errorf("Set with too few inputs gave %v", err)
	}
}

func TestLayerConnect(t *testing.T) {
	cfg := identityConfig()
	in := NewInputLayer(2, cfg)
	l := NewLayer(3, cfg)

	if err := l.Connect(in, 1, 2, 3, 4, 5, 6); err != nil {
		t.Fatal(err)
	}

	for j := 0; j < 3; j++ {
		n := l.Neuron(j)
		if n.NumConnections() != 2 {
			t.Fatalf("Neuron %d has %d connections", j, n.NumConnections())
		}

		for k := 0; k < 2; k++ {
			c := n.Connection(k)
			if c.Weight() != float64(j*2+k+1) {
				t.Errorf("weight [%d][%d] = %v", j, k, c.Weight())
			}

			if c.Source() != in.Node(k) {
				t.Errorf("source [%d][%d] is wrong", j, k)
			}
		}
	}

	err := NewLayer(3, cfg).Connect(in, 1, 2)
	if _, ok := errors.Cause(err).(SizeMismatchError); !ok {
		t.Errorf("Connect with wrong number of weights gave %v", err)
	}

	if err = l.Connect(nil); err == nil {
		t.Errorf("Connect(nil) gave no error")
	}

	if len(l.Sources()) != 1 {
		t.Errorf("Layer has %d sources, want 1", len(l.Sources()))
	}
}

func TestLayerConnectCycle(t *testing.T) {
	cfg := identityConfig()
	in := NewInputLayer(2, cfg)
	a, b, c := NewLayer(2, cfg), NewLayer(2, cfg), NewLayer(2, cfg)
	for _, pair := range [][2]*Layer{{a, nil}, {b, a}, {c, b}} {
		var src Source = in
		if pair[1] != nil {
			src = pair[1]
		}

		if err := pair[0].Connect(src); err != nil {
			t.Fatal(err)
		}
	}

	for _, src := range []*Layer{a, b, c} {
		if err := a.Connect(src); err == nil {
			t.Errorf("connecting a layer to one that depends on it gave no error")
		}
	}

	if a.Neuron(0).NumConnections() != 2 || len(a.Sources()) != 1 {
		t.Errorf("failed Connect changed the layer")
	}

	// skipping forward is fine
	if err := c.Connect(a); err != nil {
		t.Errorf("skip connection gave %v", err)
	}
}

func TestLayerPartialWorkers(t *testing.T) {
	inputs := []float64{-1, 0, 1, 0.5, -0.5}
	weights := make([]float64, 40*len(inputs))
	for i := range weights {
		weights[i] = float64(i%7-3) / 3
	}

	var results [][]float64
	for _, workers := range []int{0, 4} {
		cfg := &Config{Noise: IdentityNoise(), Workers: workers}
		in := NewInputLayer(len(inputs), cfg)
		in.Set(inputs)

		l := NewLayer(40, cfg)
		if err := l.Connect(in, weights...); err != nil {
			t.Fatal(err)
		}

		l.Partial()
		results = append(results, l.Values())
	}

	if !floats.Equal(results[0], results[1]) {
		t.Errorf("parallel Partial gave %v, serial %v", results[1], results[0])
	}
}

func TestLayerTrain(t *testing.T) {
	_, l := connected(t, []float64{1, -1}, 2)
	l.Partial()

	if err := l.Train([]float64{1}, 1); err == nil {
		t.Errorf("Train with wrong number of targets gave no error")
	}

	before := l.Values()
	if err := l.Train([]float64{1, -1}, 4); err != nil {
		t.Fatal(err)
	}

	l.Partial()
	after := l.Values()
	if !(after[0] > before[0]) || !(after[1] < before[1]) {
		t.Errorf("training moved values from %v to %v", before, after)
	}
}

func TestMirror(t *testing.T) {
	inputs := []float64{-1, 0, 1}
	_, l := connected(t, inputs, 3)
	if err := l.Mirror(1); err != nil {
		t.Fatal(err)
	}

	l.Partial()
	if vs := l.Values(); !floats.EqualApprox(vs, inputs, 1e-9) {
		t.Errorf("Mirror gave %v, want %v", vs, inputs)
	}

	if err := l.Mirror(-1); err != nil {
		t.Fatal(err)
	}

	l.Partial()
	if vs := l.Values(); !floats.EqualApprox(vs, []float64{1, 0, -1}, 1e-9) {
		t.Errorf("Mirror(-1) gave %v", vs)
	}
}

func TestRedux(t *testing.T) {
	_, l := connected(t, []float64{1, -1}, 4)
	if err := l.Redux(); err != nil {
		t.Fatal(err)
	}

	l.Partial()
	if vs := l.Values(); !floats.EqualApprox(vs, []float64{1, -1, -1, 1}, 1e-9) {
		t.Errorf("Redux gave %v", vs)
	}
}

func TestAntithesis(t *testing.T) {
	_, l := connected(t, []float64{1, 1, -1}, 3)
	if err := l.Antithesis(); err != nil {
		t.Fatal(err)
	}

	l.Partial()
	if vs := l.Values(); !floats.EqualApprox(vs, []float64{1, -1, -1}, 1e-9) {
		t.Errorf("Antithesis gave %v", vs)
	}
}

func TestSynthesis(t *testing.T) {
	_, l := connected(t, []float64{1, -1, 1, 1}, 2)
	if err := l.Synthesis(1); err != nil {
		t.Fatal(err)
	}

	l.Partial()
	if vs := l.Values(); !floats.EqualApprox(vs, []float64{0, 1}, 1e-9) {
		t.Errorf("Synthesis gave %v", vs)
	}
}

func TestAverage(t *testing.T) {
	tests := []struct {
		inputs []float64
		want   float64
	}{
		{[]float64{1, 1, 1}, 1},
		{[]float64{-1, 0, 1}, 0},
		{[]float64{-1, -1, -1}, -1},
	}

	for _, test := range tests {
		_, l := connected(t, test.inputs, 1)
		if err := l.Average(1); err != nil {
			t.Fatal(err)
		}

		l.Partial()
		if v := l.Values()[0]; !scalar.EqualWithinAbs(v, test.want, 1e-9) {
			t.Errorf("Average of %v gave %v, want %v", test.inputs, v, test.want)
		}
	}
}

func TestLocalAverage(t *testing.T) {
	_, l := connected(t, []float64{1, 1, 1, 1}, 4)
	if err := l.LocalAverage(1); err != nil {
		t.Fatal(err)
	}

	// interior neurons see three ones; edge neurons see only two
	for j, n := range l.neurons {
		var count int
		for _, c := range n.connections {
			if c.weight != 0 {
				count++
			}
		}

		want := 3
		if j == 0 || j == 3 {
			want = 2
		}

		if count != want {
			t.Errorf("Neuron %d has %d weighted connections, want %d", j, count, want)
		}
	}

	l.Partial()
	if v := l.Values()[1]; !scalar.EqualWithinAbs(v, 1, 1e-9) {
		t.Errorf("interior local average = %v, want 1", v)
	}
}

func TestPresetErrors(t *testing.T) {
	tests := []struct {
		name         string
		inputs, size int
		apply        func(*Layer) error
	}{
		{"mirror", 3, 2, func(l *Layer) error { return l.Mirror(1) }},
		{"redux", 3, 3, (*Layer).Redux},
		{"antithesis", 2, 4, (*Layer).Antithesis},
		{"synthesis", 3, 2, func(l *Layer) error { return l.Synthesis(1) }},
	}

	for _, test := range tests {
		_, l := connected(t, make([]float64, test.inputs), test.size)
		err := test.apply(l)
		if _, ok := errors.Cause(err).(SizeMismatchError); !ok {
			t.Errorf("%s on %d -> %d gave %v, want SizeMismatchError", test.name, test.inputs,
				test.size, err)
		}

		for _, n := range l.neurons {
			if n.bias != 0 {
				t.Errorf("%s changed a bias despite failing", test.name)
			}
		}
	}

	unconnected := NewLayer(2, nil)
	for _, err := range []error{unconnected.Mirror(1), unconnected.Average(1), unconnected.LocalAverage(1)} {
		if errors.Cause(err) != ErrNotConnected {
			t.Errorf("preset on unconnected layer gave %v, want ErrNotConnected", err)
		}
	}
}
