package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducanhdangcode/visualize-pylint/internal/config"
	"github.com/ducanhdangcode/visualize-pylint/internal/pylint"
)

func TestNewRootCmd_Flags(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"output", "format", "concurrency", "open", "pylint-bin"} {
		assert.NotNil(t, root.Flags().Lookup(name), "flag %q should be registered", name)
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.Equal(t, Version, root.Version)
}

func TestNewRootCmd_ArgLimits(t *testing.T) {
	root := newRootCmd()
	assert.NoError(t, root.Args(root, nil))
	assert.NoError(t, root.Args(root, []string{"./proj"}))
	assert.Error(t, root.Args(root, []string{"a", "b"}))
}

func TestScoreConfig_FromConfiguredWeights(t *testing.T) {
	sc := scoreConfig(config.ScoringConfig{Weights: map[string]float64{
		"fatal": 80,
		"error": 40,
	}})

	assert.Equal(t, 80.0, sc.Weights[pylint.KindFatal])
	assert.Equal(t, 40.0, sc.Weights[pylint.KindError])
}

func TestScoreConfig_EmptyFallsBackToDefaults(t *testing.T) {
	sc := scoreConfig(config.ScoringConfig{})

	require.NotEmpty(t, sc.Weights)
	assert.Equal(t, 50.0, sc.Weights[pylint.KindFatal])
	assert.Equal(t, 1.0, sc.Weights[pylint.KindConvention])
}
