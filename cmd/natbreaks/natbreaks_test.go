package main

import (
	"testing"

	"github.com/mongodb/grip"
	"github.com/mongodb/grip/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildApp(t *testing.T) {
	app := buildApp()
	require.NotNil(t, app)

	names := map[string]bool{}
	for _, cmd := range app.Commands {
		names[cmd.Name] = true
	}
	for _, want := range []string{"breaks", "generate", "bench"} {
		assert.True(t, names[want], want)
	}
}

func TestLoggingSetup(t *testing.T) {
	require.NoError(t, loggingSetup("natbreaks-test", "debug"))
	assert.Equal(t, "natbreaks-test", grip.GetSender().Name())
	assert.Equal(t, level.Debug, grip.GetSender().Level().Threshold)

	require.NoError(t, loggingSetup("natbreaks-test", "warning"))
	assert.Equal(t, level.Warning, grip.GetSender().Level().Threshold)

	// an unknown name leaves the previous threshold in place
	assert.Error(t, loggingSetup("natbreaks-test", "verbose"))
	assert.Equal(t, level.Warning, grip.GetSender().Level().Threshold)
}
