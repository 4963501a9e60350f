// Package ml implements a single layer hebbian classifier.
//
// The weights are adjusted by the Hebb rule, e.g. weight change = learning rate * input * output,
// where the output is the unit's own prediction and not the target label.
// The labels given to Fit are validated for length but never read by the update.
package ml

import (
	"fmt"
	"time"

	"github.com/drakos74/go-ex-machina/xmath"
	"github.com/drakos74/hebbian/internal/metrics"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
)

const (
	// Threshold is the net input at or above which the unit fires.
	Threshold = 80.0
	modelName = "hebbian"
)

// Option adjusts the non numeric properties of the classifier.
type Option func(h *Hebbian)

// WithLogger routes the training diagnostics to the given logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(h *Hebbian) {
		h.logger = logger
	}
}

// Hebbian is a linear unit with a step activation trained by the Hebb rule.
// w[0] holds the bias and w[1:] the feature weights.
// Fit must not be called concurrently, inference is safe for concurrent use as long as no Fit is running.
type Hebbian struct {
	id      string
	cfg     Config
	w       xmath.Vector
	history []int
	logger  zerolog.Logger
}

// NewHebbian creates a new untrained classifier.
func NewHebbian(cfg Config, opts ...Option) (*Hebbian, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("could not create hebbian classifier: %w", err)
	}
	h := &Hebbian{
		id:     uuid.New().String(),
		cfg:    cfg,
		logger: log.Logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// MustHebbian creates a new classifier and panics if the config is invalid.
func MustHebbian(cfg Config, opts ...Option) *Hebbian {
	h, err := NewHebbian(cfg, opts...)
	if err != nil {
		panic(err.Error())
	}
	return h
}

// Fit trains the classifier on the given samples.
// The weights and the error history are reset on every call
// and replaced only once all epochs have completed.
// Samples are visited in the given order on every epoch.
// NOTE : y is not used by the update, the rule reinforces the unit's own output.
func (h *Hebbian) Fit(x xmath.Matrix, y xmath.Vector) (*Hebbian, error) {
	n, err := features(x)
	if err == nil && len(y) != len(x) {
		err = fmt.Errorf("%w: %d labels for %d samples", ErrShapeMismatch, len(y), len(x))
	}
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("id", h.id).
			Int("samples", len(x)).
			Int("labels", len(y)).
			Msg("could not fit hebbian classifier")
		return nil, fmt.Errorf("could not fit: %w", err)
	}

	w := xmath.Vec(n + 1)
	history := make([]int, 0, h.cfg.NIter)
	for epoch := 0; epoch < h.cfg.NIter; epoch++ {
		updates := 0
		for _, xi := range x {
			delta := h.cfg.Eta * float64(step(netInput(w, xi)))
			copy(w[1:], w[1:].Add(xi.Mult(delta)))
			w[0] += delta
			if delta != 0.0 {
				updates++
			}
		}
		history = append(history, updates)
		metrics.Observer.Epoch(modelName, updates)
		h.logger.Debug().
			Str("id", h.id).
			Int("epoch", epoch).
			Int("errors", updates).
			Msg("epoch completed")
	}

	h.w = w
	h.history = history
	metrics.Observer.Fit(modelName)

	h.logger.Info().
		Str("id", h.id).
		Int("epochs", len(history)).
		Ints("errors", history).
		Float64("norm", floats.Norm(w[1:], 2)).
		Msg(h.Report(time.Now()))
	return h, nil
}

// NetInput returns the affine combination of the sample with the weights, including the bias.
func (h *Hebbian) NetInput(x xmath.Vector) (float64, error) {
	if err := h.check(x); err != nil {
		return 0, err
	}
	return netInput(h.w, x), nil
}

// NetInputs returns the net input for each row of the batch.
func (h *Hebbian) NetInputs(x xmath.Matrix) (xmath.Vector, error) {
	if !h.Trained() {
		return nil, ErrUntrained
	}
	for i := range x {
		if err := h.check(x[i]); err != nil {
			return nil, fmt.Errorf("invalid sample at %d: %w", i, err)
		}
	}
	return x.Prod(h.w[1:]).Op(xmath.Add(h.w[0])), nil
}

// Predict returns the class label of the sample, e.g. 1 or -1.
func (h *Hebbian) Predict(x xmath.Vector) (int, error) {
	net, err := h.NetInput(x)
	if err != nil {
		return 0, err
	}
	return step(net), nil
}

// PredictAll returns the class label for each row of the batch.
func (h *Hebbian) PredictAll(x xmath.Matrix) ([]int, error) {
	net, err := h.NetInputs(x)
	if err != nil {
		return nil, err
	}
	labels := make([]int, len(net))
	for i, v := range net {
		labels[i] = step(v)
	}
	return labels, nil
}

func (h *Hebbian) ID() string {
	return h.id
}

func (h *Hebbian) Config() Config {
	return h.cfg
}

// Trained returns true once Fit has completed at least once.
func (h *Hebbian) Trained() bool {
	return h.w != nil
}

// Weights returns a copy of the weights with the bias at index 0.
// It is nil for an untrained classifier.
func (h *Hebbian) Weights() xmath.Vector {
	if !h.Trained() {
		return nil
	}
	return h.w.Copy()
}

// Bias returns the bias term of the weights.
func (h *Hebbian) Bias() float64 {
	if !h.Trained() {
		return 0
	}
	return h.w[0]
}

// Errors returns the number of non-zero updates for each epoch of the last Fit.
func (h *Hebbian) Errors() []int {
	errs := make([]int, len(h.history))
	copy(errs, h.history)
	return errs
}

func (h *Hebbian) check(x xmath.Vector) error {
	if !h.Trained() {
		return ErrUntrained
	}
	if len(x) != len(h.w)-1 {
		return fmt.Errorf("%w: sample has %d features but model has %d", ErrShapeMismatch, len(x), len(h.w)-1)
	}
	return nil
}

// features returns the common number of features of all samples.
func features(x xmath.Matrix) (int, error) {
	if len(x) == 0 {
		return 0, fmt.Errorf("%w: no samples", ErrShapeMismatch)
	}
	n := len(x[0])
	if n == 0 {
		return 0, fmt.Errorf("%w: samples have no features", ErrShapeMismatch)
	}
	for i, xi := range x {
		if len(xi) != n {
			return 0, fmt.Errorf("%w: sample at %d has %d features instead of %d", ErrShapeMismatch, i, len(xi), n)
		}
	}
	return n, nil
}

func netInput(w, x xmath.Vector) float64 {
	return x.Dot(w[1:]) + w[0]
}

func step(net float64) int {
	if net >= Threshold {
		return 1
	}
	return -1
}
