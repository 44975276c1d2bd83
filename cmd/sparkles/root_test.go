package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootRejectsUnknownDisplay(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--display", "projector"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "projector")
}

func TestRootRejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}

func TestRootFlagDefaults(t *testing.T) {
	cmd := newRootCmd()
	for name, want := range map[string]string{
		"display":     "window",
		"scale":       "32",
		"seed":        "0",
		"frame-delay": "50ms",
		"min-delay":   "50ms",
		"max-delay":   "1s",
	} {
		f := cmd.Flags().Lookup(name)
		require.NotNilf(t, f, "flag --%s", name)
		assert.Equalf(t, want, f.DefValue, "flag --%s", name)
	}
}
