package detector_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cdb/internal/adapters/detector"
)

func TestDetectEnvironment(t *testing.T) {
	tests := []struct {
		name    string
		ciValue string
	}{
		{name: "CI=true forces pipe mode", ciValue: "true"},
		{name: "CI=1 forces pipe mode", ciValue: "1"},
		{name: "CI=false", ciValue: "false"},
		{name: "No CI env var", ciValue: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CI", tt.ciValue)

			// A buffer is never a terminal.
			assert.Equal(t, detector.ModePipe, detector.DetectEnvironment(&bytes.Buffer{}))
		})
	}
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name         string
		autoDetected detector.TerminalMode
		userFlag     string
		expected     detector.TerminalMode
	}{
		{
			name:         "auto respects auto-detection (PTY)",
			autoDetected: detector.ModePTY,
			userFlag:     "auto",
			expected:     detector.ModePTY,
		},
		{
			name:         "auto respects auto-detection (pipe)",
			autoDetected: detector.ModePipe,
			userFlag:     "auto",
			expected:     detector.ModePipe,
		},
		{
			name:         "empty flag respects auto-detection",
			autoDetected: detector.ModePTY,
			userFlag:     "",
			expected:     detector.ModePTY,
		},
		{
			name:         "pty overrides auto-detection",
			autoDetected: detector.ModePipe,
			userFlag:     "pty",
			expected:     detector.ModePTY,
		},
		{
			name:         "tty is alias for pty",
			autoDetected: detector.ModePipe,
			userFlag:     "tty",
			expected:     detector.ModePTY,
		},
		{
			name:         "pipe overrides auto-detection",
			autoDetected: detector.ModePTY,
			userFlag:     "pipe",
			expected:     detector.ModePipe,
		},
		{
			name:         "invalid flag respects auto-detection",
			autoDetected: detector.ModePipe,
			userFlag:     "invalid",
			expected:     detector.ModePipe,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detector.ResolveMode(tt.autoDetected, tt.userFlag))
		})
	}
}

func TestResolve_EnvOverride(t *testing.T) {
	t.Setenv(detector.EnvTerminalMode, "pty")
	assert.Equal(t, detector.ModePTY, detector.Resolve(&bytes.Buffer{}))

	t.Setenv(detector.EnvTerminalMode, "")
	assert.Equal(t, detector.ModePipe, detector.Resolve(&bytes.Buffer{}))
}

func TestTerminalMode_String(t *testing.T) {
	assert.Equal(t, "auto", detector.ModeAuto.String())
	assert.Equal(t, "pty", detector.ModePTY.String())
	assert.Equal(t, "pipe", detector.ModePipe.String())
}
