package scales

import (
	"math"
	"testing"

	"github.com/carlosjhr64/neuronet"
	"gonum.org/v1/gonum/floats"
)

var _ neuronet.Distribution = MinMax(1)

func TestMinMax(t *testing.T) {
	s := MinMax(1)
	if err := s.Set([]float64{2, 10, 6}); err != nil {
		t.Fatal(err)
	}

	if c, _ := s.Center(); c != 6 {
		t.Errorf("center = %v, want 6", c)
	}

	if sp, _ := s.Spread(); sp != 4 {
		t.Errorf("spread = %v, want 4", sp)
	}

	if m := s.Mapped([]float64{2, 6, 10}); !floats.Equal(m, []float64{-1, 0, 1}) {
		t.Errorf("Mapped = %v", m)
	}

	// Set again keeps the fit
	if err := s.Set([]float64{100, 200}); err != nil {
		t.Fatal(err)
	}

	if c, _ := s.Center(); c != 6 {
		t.Errorf("Set changed center to %v", c)
	}

	if err := s.Reset([]float64{100, 200}); err != nil {
		t.Fatal(err)
	}

	if c, _ := s.Center(); c != 150 {
		t.Errorf("Reset gave center %v, want 150", c)
	}
}

func TestFactor(t *testing.T) {
	s := MinMax(2)
	if err := s.Set([]float64{-1, 1}); err != nil {
		t.Fatal(err)
	}

	if m := s.Mapped([]float64{1}); m[0] != 0.5 {
		t.Errorf("Mapped with factor 2 = %v, want 0.5", m[0])
	}
}

func TestGaussian(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	s := Gaussian(1)
	if err := s.Set(values); err != nil {
		t.Fatal(err)
	}

	// sample standard deviation
	want := math.Sqrt(32.0 / 7)
	if c, _ := s.Center(); c != 5 {
		t.Errorf("center = %v, want 5", c)
	}

	if sp, _ := s.Spread(); math.Abs(sp-want) > 1e-12 {
		t.Errorf("spread = %v, want %v", sp, want)
	}

	if err := Gaussian(1).Set([]float64{3}); err == nil {
		t.Errorf("Gaussian fitted to one value")
	}
}

func TestLogNormal(t *testing.T) {
	s := LogNormal(1)
	if err := s.Set([]float64{math.E, math.Exp(3)}); err != nil {
		t.Fatal(err)
	}

	if c, _ := s.Center(); math.Abs(c-2) > 1e-12 {
		t.Errorf("center = %v, want 2", c)
	}

	if m := s.Mapped([]float64{math.Exp(2)}); math.Abs(m[0]) > 1e-12 {
		t.Errorf("Mapped(e^2) = %v, want 0", m[0])
	}

	if err := LogNormal(1).Set([]float64{1, -1}); err == nil {
		t.Errorf("LogNormal fitted to a negative value")
	}
}

func TestRoundTrip(t *testing.T) {
	values := []float64{0.5, 3, 7.25, 12, 40}

	for _, s := range []*Scale{MinMax(1), Gaussian(1), LogNormal(1), Gaussian(3).WithCenter(1)} {
		if err := s.Set(values); err != nil {
			t.Fatal(err)
		}

		if back := s.Unmapped(s.Mapped(values)); !floats.EqualApprox(back, values, 1e-12) {
			t.Errorf("%s: round trip gave %v", s.TypeString(), back)
		}
	}
}

func TestSetErrors(t *testing.T) {
	if err := MinMax(1).Set(nil); err == nil {
		t.Errorf("fitted to no values")
	}

	s := MinMax(1)
	if err := s.Set([]float64{4, 4}); err == nil {
		t.Errorf("fitted to zero spread")
	}

	if _, ok := s.Center(); ok {
		t.Errorf("failed Set left a center")
	}

	// fixed parameters need no values
	if err := MinMax(1).WithCenter(0).WithSpread(1).Set(nil); err != nil {
		t.Errorf("fully fixed Set gave %v", err)
	}
}
