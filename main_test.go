package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOptionsDefaults(t *testing.T) {
	opts, err := newOptions(nil)
	require.NoError(t, err)

	assert.Equal(t, "pointer.log", opts.logFile)
	assert.Equal(t, slog.LevelInfo, opts.logLevel)
}

func TestNewOptionsParsesLevel(t *testing.T) {
	opts, err := newOptions([]string{"-log-level", "DEBUG", "-log-file", "/tmp/p.log"})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/p.log", opts.logFile)
	assert.Equal(t, slog.LevelDebug, opts.logLevel)
}

func TestNewOptionsInvalid(t *testing.T) {
	_, err := newOptions([]string{"-log-level", "loud"})
	assert.ErrorAs(t, err, &invalidArgErr{})

	_, err = newOptions([]string{"-log-file", ""})
	assert.ErrorAs(t, err, &invalidArgErr{})
}
