package ml

import "errors"

// ErrShapeMismatch is returned when the dimensions of the input do not line up,
// either between the rows of a training set, with the labels or with the trained weights.
var ErrShapeMismatch = errors.New("shape mismatch")

// ErrUntrained is returned when inference is requested before any call to Fit.
var ErrUntrained = errors.New("model is not trained")

var ErrInvalidConfig = errors.New("invalid config")
