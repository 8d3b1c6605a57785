// Package style provides the colors and icons shared by the CLI output.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Accent = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Muted  = lipgloss.Color("#98A2B3")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
)

var (
	recordedStyle = lipgloss.NewStyle().Foreground(Green).Bold(true)
	droppedStyle  = lipgloss.NewStyle().Foreground(Slate)
	keyStyle      = lipgloss.NewStyle().Foreground(Accent)
)

// Verdict renders the classification of an invocation, such as "✓ compile".
func Verdict(phase string, recorded bool) string {
	if recorded {
		return recordedStyle.Render(Check + " " + phase)
	}
	return droppedStyle.Render(Cross + " " + phase)
}

// Field renders a "key: value" line with a highlighted key.
func Field(key, value string) string {
	return keyStyle.Render(key+":") + " " + value
}
