//go:build (linux || freebsd) && (amd64 || arm64)

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	assert.True(t, names["list-devices"], "list-devices should be registered")
	assert.True(t, names["debug-events"], "debug-events should be registered")
}

func TestPersistentFlagDefaults(t *testing.T) {
	seat := rootCmd.PersistentFlags().Lookup("seat")
	require.NotNil(t, seat)
	assert.Equal(t, "seat0", seat.DefValue)

	verbose := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "false", verbose.DefValue)
}
