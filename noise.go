package neuronet

import (
	"math/rand"
	"sync"

	"github.com/pkg/errors"
)

// Noise perturbs the error a Neuron or Connection is about to apply to itself. Noise is what lets
// otherwise identical Neurons, starting from the same zeroed state, differentiate from each other
// during training.
type Noise interface {
	// TypeString returns the name the Noise is registered under.
	TypeString() string

	// Apply returns the perturbed error.
	Apply(float64) float64
}

type identity struct{}

// IdentityNoise returns the Noise that leaves errors unchanged.
func IdentityNoise() Noise {
	return identity{}
}

func (identity) TypeString() string {
	return "identity"
}

func (identity) Apply(e float64) float64 {
	return e
}

type uniform2 struct {
	rng *rand.Rand
}

// UniformNoise returns the Noise that multiplies errors by the sum of two independent uniform(0,1)
// draws from rng, giving a bell-shaped multiplier with a mean of 1. If rng is nil, UniformNoise
// will panic with type NilArgError.
func UniformNoise(rng *rand.Rand) Noise {
	if rng == nil {
		panic(NilArgError{"*rand.Rand"})
	}

	return uniform2{rng}
}

func (u uniform2) TypeString() string {
	return "uniform2"
}

func (u uniform2) Apply(e float64) float64 {
	return e * (u.rng.Float64() + u.rng.Float64())
}

var (
	noiseMux   sync.Mutex
	noiseTypes = map[string]func(*rand.Rand) Noise{}
)

func init() {
	list := []func(*rand.Rand) Noise{
		func(*rand.Rand) Noise { return IdentityNoise() },
		func(rng *rand.Rand) Noise { return UniformNoise(rng) },
	}

	for _, f := range list {
		if err := RegisterNoise(f(rand.New(rand.NewSource(0))).TypeString(), f); err != nil {
			panic(err)
		}
	}
}

// RegisterNoise makes a Noise constructor available by name, for use in configuration files. The
// constructor is given the random source of the network being configured. Registering the same
// name twice returns ErrRegisterDuplicate.
func RegisterNoise(name string, f func(*rand.Rand) Noise) error {
	if f == nil {
		return NilArgError{"Noise constructor"}
	}

	noiseMux.Lock()
	defer noiseMux.Unlock()

	if _, ok := noiseTypes[name]; ok {
		return errors.Wrapf(ErrRegisterDuplicate, "Can't register noise %q", name)
	}

	noiseTypes[name] = f
	return nil
}

// NewNoise returns the registered Noise with the given name, constructed with rng. If no such
// Noise has been registered, the returned error will wrap ErrUnknownNoise.
func NewNoise(name string, rng *rand.Rand) (Noise, error) {
	noiseMux.Lock()
	f, ok := noiseTypes[name]
	noiseMux.Unlock()

	if !ok {
		return nil, errors.Wrapf(ErrUnknownNoise, "Can't make noise %q", name)
	}

	n := f(rng)
	if n == nil {
		return nil, errors.Wrapf(ErrRegisterNilReturn, "Can't make noise %q", name)
	}

	return n, nil
}
