// Package scales provides the Distributions used by neuronet.ScaledNetwork to map real world values
// to and from the range a network works well in.
//
// All of the Distributions here are a *Scale, differing only in how they are fitted:
//
//		scales.MinMax(1)     // center and spread from the midpoint and half-range
//		scales.Gaussian(1)   // center and spread from the mean and sample standard deviation
//		scales.LogNormal(1)  // Gaussian, in log space
//
// A value v is mapped to (v - center) / (factor * spread).
package scales

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Scale is a linear mapping, fitted to a set of values. A Scale is fitted once by Set and keeps its
// parameters until Reset.
type Scale struct {
	factor float64

	center, spread       float64
	hasCenter, hasSpread bool

	// returns the center and spread of the (already transformed) values
	fit func([]float64) (float64, float64, error)

	// whether values are mapped in log space
	log bool

	typ string
}

func newScale(typ string, factor float64, fit func([]float64) (float64, float64, error)) *Scale {
	if factor == 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		panic(errors.Errorf("Scale factor must be finite and non-zero (%v)", factor))
	}

	return &Scale{factor: factor, fit: fit, typ: typ}
}

// MinMax returns a Scale that maps the midpoint of the values it is fitted to to zero, and their
// extremes to ±1/factor. MinMax will panic if factor is zero or not finite.
func MinMax(factor float64) *Scale {
	return newScale("min-max", factor, minMax)
}

// Gaussian returns a Scale that maps the mean of the values it is fitted to to zero, and one
// sample standard deviation to 1/factor. Gaussian will panic if factor is zero or not finite.
func Gaussian(factor float64) *Scale {
	return newScale("gaussian", factor, gaussian)
}

// LogNormal returns a Gaussian Scale that works on the logarithms of the values. Values given to a
// LogNormal Scale must be positive. LogNormal will panic if factor is zero or not finite.
func LogNormal(factor float64) *Scale {
	s := newScale("log-normal", factor, gaussian)
	s.log = true
	return s
}

func minMax(values []float64) (float64, float64, error) {
	min, max := floats.Min(values), floats.Max(values)
	return (max + min) / 2, (max - min) / 2, nil
}

func gaussian(values []float64) (float64, float64, error) {
	if len(values) < 2 {
		return 0, 0, errors.Errorf("Need at least 2 values for a standard deviation (%d)", len(values))
	}

	return stat.Mean(values, nil), stat.StdDev(values, nil), nil
}

// WithCenter fixes the center of the Scale, so that it is not fitted by Set. It is cleared by
// Reset. The Scale is returned to allow chaining.
func (s *Scale) WithCenter(center float64) *Scale {
	s.center, s.hasCenter = center, true
	return s
}

// WithSpread fixes the spread of the Scale, so that it is not fitted by Set. It is cleared by
// Reset. The Scale is returned to allow chaining.
func (s *Scale) WithSpread(spread float64) *Scale {
	s.spread, s.hasSpread = spread, true
	return s
}

// TypeString returns the kind of Scale: "min-max", "gaussian", or "log-normal".
func (s *Scale) TypeString() string {
	return s.typ
}

// Center returns the center of the Scale, and whether it has been set.
func (s *Scale) Center() (float64, bool) {
	return s.center, s.hasCenter
}

// Spread returns the spread of the Scale, and whether it has been set.
func (s *Scale) Spread() (float64, bool) {
	return s.spread, s.hasSpread
}

// Set fits whichever of the center and spread are not already set to the given values. If there
// are no values, or fitting would give a spread of zero, nothing is changed and an error is
// returned.
func (s *Scale) Set(values []float64) error {
	if s.hasCenter && s.hasSpread {
		return nil
	} else if len(values) == 0 {
		return errors.Errorf("Can't fit %s scale to no values", s.typ)
	}

	if s.log {
		vs := make([]float64, len(values))
		for i, v := range values {
			if v <= 0 {
				return errors.Errorf("Can't fit %s scale to non-positive value %v (index %d)", s.typ, v, i)
			}
			vs[i] = math.Log(v)
		}
		values = vs
	}

	center, spread, err := s.fit(values)
	if err != nil {
		return errors.Wrapf(err, "Can't fit %s scale", s.typ)
	}

	if s.hasSpread {
		spread = s.spread
	}

	if spread == 0 || math.IsNaN(spread) {
		return errors.Errorf("Can't fit %s scale, spread would be %v", s.typ, spread)
	}

	if !s.hasCenter {
		s.center, s.hasCenter = center, true
	}

	s.spread, s.hasSpread = spread, true
	return nil
}

// Reset clears the center and spread, including any that were fixed, and fits both to the given
// values.
func (s *Scale) Reset(values []float64) error {
	s.hasCenter, s.hasSpread = false, false
	return s.Set(values)
}

// Mapped returns (v - center) / (factor * spread) for each value v, taking the logarithm of v
// first for a LogNormal Scale. The Scale must have been set.
func (s *Scale) Mapped(values []float64) []float64 {
	out := make([]float64, len(values))
	if s.log {
		for i, v := range values {
			out[i] = math.Log(v)
		}
	} else {
		copy(out, values)
	}

	floats.AddConst(-s.center, out)
	floats.Scale(1/(s.factor*s.spread), out)
	return out
}

// Unmapped is the inverse of Mapped.
func (s *Scale) Unmapped(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)

	floats.Scale(s.factor*s.spread, out)
	floats.AddConst(s.center, out)
	if s.log {
		for i, v := range out {
			out[i] = math.Exp(v)
		}
	}

	return out
}
