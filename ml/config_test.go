package ml

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {

	type test struct {
		cfg   Config
		valid bool
	}

	tests := map[string]test{
		"default": {
			cfg:   DefaultConfig(),
			valid: true,
		},
		"max-eta": {
			cfg:   DefaultConfig().WithEta(1.0),
			valid: true,
		},
		"small-eta": {
			cfg:   DefaultConfig().WithEta(1e-9),
			valid: true,
		},
		"many-iterations": {
			cfg:   DefaultConfig().WithIterations(1000),
			valid: true,
		},
		"zero-eta": {
			cfg: DefaultConfig().WithEta(0),
		},
		"negative-eta": {
			cfg: DefaultConfig().WithEta(-0.5),
		},
		"large-eta": {
			cfg: DefaultConfig().WithEta(1.01),
		},
		"nan-eta": {
			cfg: DefaultConfig().WithEta(math.NaN()),
		},
		"inf-eta": {
			cfg: DefaultConfig().WithEta(math.Inf(1)),
		},
		"zero-iterations": {
			cfg: DefaultConfig().WithIterations(0),
		},
		"negative-iterations": {
			cfg: DefaultConfig().WithIterations(-1),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, ErrInvalidConfig), "unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Builders(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, Config{Eta: 0.5, NIter: 1}, cfg)

	other := cfg.WithEta(0.1).WithIterations(5)
	assert.Equal(t, Config{Eta: 0.1, NIter: 5}, other)
	// the original is left untouched
	assert.Equal(t, Config{Eta: 0.5, NIter: 1}, cfg)
}

func TestConfig_Json(t *testing.T) {
	var cfg Config
	err := json.Unmarshal([]byte(`{"eta":0.25,"n_iter":3}`), &cfg)
	require.NoError(t, err)
	assert.Equal(t, Config{Eta: 0.25, NIter: 3}, cfg)
	assert.NoError(t, cfg.Validate())
}
