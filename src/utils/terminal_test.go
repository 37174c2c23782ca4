package utils

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))

	r, w, err := os.Pipe()
	require.Nil(t, err)
	defer r.Close()
	defer w.Close()
	assert.False(t, IsTerminal(w))
}

func TestNoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.False(t, NoColorEnv())
	t.Setenv("NO_COLOR", "1")
	assert.True(t, NoColorEnv())
}

func TestColorSupported(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.False(t, ColorSupported(&bytes.Buffer{}))
	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorSupported(os.Stdout))
}
