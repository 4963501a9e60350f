package ml

import (
	"fmt"
	"math"
)

const (
	// DefaultEta is the learning rate used when none is configured.
	DefaultEta        = 0.5
	// DefaultIterations is a single pass, e.g. the plain Hebb training rule.
	DefaultIterations = 1
)

// Config defines the hyper-parameters of the hebbian classifier.
// Eta is the learning rate and must be within (0.0, 1.0]
// NIter is the number of passes over the training set.
// Anything above 1 re-applies the self-reinforcing rule and can make the weights grow without bound.
type Config struct {
	Eta   float64 `json:"eta"`
	NIter int     `json:"n_iter"`
}

// DefaultConfig returns the canonical single pass configuration.
func DefaultConfig() Config {
	return Config{
		Eta:   DefaultEta,
		NIter: DefaultIterations,
	}
}

// WithEta returns a copy of the config with the given learning rate.
func (c Config) WithEta(eta float64) Config {
	c.Eta = eta
	return c
}

// WithIterations returns a copy of the config with the given number of epochs.
func (c Config) WithIterations(n int) Config {
	c.NIter = n
	return c
}

// Validate checks the config values.
func (c Config) Validate() error {
	if math.IsNaN(c.Eta) || c.Eta <= 0 || c.Eta > 1 {
		return fmt.Errorf("%w: eta must be within (0.0, 1.0] but was %v", ErrInvalidConfig, c.Eta)
	}
	if c.NIter < 1 {
		return fmt.Errorf("%w: n_iter must be at least 1 but was %d", ErrInvalidConfig, c.NIter)
	}
	return nil
}
