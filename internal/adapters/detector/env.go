// Package detector decides how the intercepted build is attached to the terminal.
package detector

import (
	"io"
	"os"

	"golang.org/x/term"
)

// EnvTerminalMode overrides DetectEnvironment. Accepted values are "auto", "pty" and "pipe".
const EnvTerminalMode = "CDB_PTY"

// TerminalMode represents how the build's output is connected.
type TerminalMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto TerminalMode = iota
	// ModePTY runs the build under a pseudo terminal so it keeps colors and progress output.
	ModePTY
	// ModePipe connects the build's stdout and stderr directly to the given writers.
	ModePipe
)

func (m TerminalMode) String() string {
	switch m {
	case ModePTY:
		return "pty"
	case ModePipe:
		return "pipe"
	default:
		return "auto"
	}
}

// DetectEnvironment returns the recommended mode for a build writing to w.
// A pseudo terminal is only used when w is a terminal and no CI environment is detected.
func DetectEnvironment(w io.Writer) TerminalMode {
	f, ok := w.(*os.File)
	isTTY := ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModePipe
	}
	return ModePTY
}

// ResolveMode applies the user override to auto-detection.
// userFlag should be one of: "auto", "pty", "tty", "pipe", or empty.
func ResolveMode(autoDetected TerminalMode, userFlag string) TerminalMode {
	switch userFlag {
	case "pty", "tty":
		return ModePTY
	case "pipe":
		return ModePipe
	default:
		return autoDetected
	}
}

// Resolve detects the mode for w and applies the EnvTerminalMode override.
func Resolve(w io.Writer) TerminalMode {
	return ResolveMode(DetectEnvironment(w), os.Getenv(EnvTerminalMode))
}
