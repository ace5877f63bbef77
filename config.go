package neuronet

import (
	"encoding/json"
	"log/slog"
	"math"
	"math/rand"
	"os"

	"github.com/pkg/errors"
)

// Default values for Config.
const (
	DefaultWeightClamp   float64 = 9
	DefaultBiasClamp     float64 = 18
	DefaultValueClamp    float64 = 36
	DefaultNjuMultiplier float64 = 2
	DefaultNoise         string  = "uniform2"
)

// Config holds everything about a network that is not its topology. NewFeedForward copies the
// Config it is given, so changing a Config after building a network has no effect on it. Layers
// and Nodes made directly with NewLayer or NewNeuron share the Config they are given.
type Config struct {
	// Bounds on the magnitude of weights, biases, and values given to SetValue. The defaults keep
	// squash saturation well below floating-point noise at the extremes.
	WeightClamp float64
	BiasClamp   float64
	ValueClamp  float64

	// Noise perturbs every bias and weight update. If nil, it is set by Validate to the default
	// "uniform2" Noise, drawing from a source seeded with Seed.
	Noise Noise

	// Seed seeds the network's random source, used for shuffling training data.
	Seed int64

	// Workers is the number of goroutines a Layer may use for Partial. Values below 2 mean
	// Partial runs serially.
	Workers int

	// GuardRevisits makes a Neuron reachable through more than one path backpropagate only once
	// per training pass. By default every path contributes its own additive update.
	GuardRevisits bool

	// NjuMultiplier scales a neuron's Nju into the divisor used by TrainPivot and TrainRandom when
	// none is given.
	NjuMultiplier float64

	// Logger receives training progress at debug level. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultConfig returns a new Config with every field set to its default.
func DefaultConfig() *Config {
	c := new(Config)
	if err := c.Validate(); err != nil {
		// the zero Config always validates
		panic(err)
	}

	return c
}

// Validate fills in any unset fields of the Config with their defaults, and returns an error if any
// of the set fields are invalid.
func (c *Config) Validate() error {
	for _, f := range []struct {
		v   *float64
		def float64
		str string
	}{
		{&c.WeightClamp, DefaultWeightClamp, "WeightClamp"},
		{&c.BiasClamp, DefaultBiasClamp, "BiasClamp"},
		{&c.ValueClamp, DefaultValueClamp, "ValueClamp"},
		{&c.NjuMultiplier, DefaultNjuMultiplier, "NjuMultiplier"},
	} {
		if *f.v == 0 {
			*f.v = f.def
		} else if *f.v < 0 || math.IsNaN(*f.v) || math.IsInf(*f.v, 0) {
			return errors.Errorf("Config %s is invalid (%v)", f.str, *f.v)
		}
	}

	if c.Workers < 0 {
		return errors.Errorf("Config Workers must be >= 0 (%d)", c.Workers)
	}

	if c.Noise == nil {
		n, err := NewNoise(DefaultNoise, rand.New(rand.NewSource(c.Seed)))
		if err != nil {
			return err
		}
		c.Noise = n
	}

	if c.Logger == nil {
		c.Logger = slog.Default()
	}

	return nil
}

func (c *Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}

	return c.Logger
}

// configFile is the on-disk form of Config
type configFile struct {
	WeightClamp   float64 `json:"weight-clamp"`
	BiasClamp     float64 `json:"bias-clamp"`
	ValueClamp    float64 `json:"value-clamp"`
	Noise         string  `json:"noise"`
	Seed          int64   `json:"seed"`
	Workers       int     `json:"workers"`
	GuardRevisits bool    `json:"guard-revisits"`
	NjuMultiplier float64 `json:"nju-multiplier"`
}

// LoadConfig reads a JSON-encoded Config from the file at path. Missing fields take their default
// values. The "noise" field names a registered Noise (see RegisterNoise), constructed with a
// random source seeded by "seed".
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to open config file %q", path)
	}

	defer f.Close()

	var cf configFile
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err = dec.Decode(&cf); err != nil {
		return nil, errors.Wrapf(err, "Failed to decode JSON from config file %q", path)
	}

	c := &Config{
		WeightClamp:   cf.WeightClamp,
		BiasClamp:     cf.BiasClamp,
		ValueClamp:    cf.ValueClamp,
		Seed:          cf.Seed,
		Workers:       cf.Workers,
		GuardRevisits: cf.GuardRevisits,
		NjuMultiplier: cf.NjuMultiplier,
	}

	if cf.Noise != "" {
		if c.Noise, err = NewNoise(cf.Noise, rand.New(rand.NewSource(cf.Seed))); err != nil {
			return nil, errors.Wrapf(err, "Bad config file %q", path)
		}
	}

	if err = c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "Bad config file %q", path)
	}

	return c, nil
}
