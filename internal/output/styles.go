package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: module paths, artifact names.
	ColorCyan = lipgloss.Color("14")

	// ColorYellow is used for lint warnings.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for lint errors (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (module paths, artifact names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Lint severity constants.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// SeverityStyle returns the lipgloss style for a lint severity.
// Unknown severities return an unstyled default.
func SeverityStyle(severity string) lipgloss.Style {
	switch severity {
	case SeverityError:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	case SeverityWarning:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	default:
		return lipgloss.NewStyle()
	}
}

// minModuleColumnWidth is the minimum width for the module path column
// before the status suffix. This ensures status words align consistently.
const minModuleColumnWidth = 40

// FormatModuleLine renders a module path with a right-aligned status suffix.
//
// Format: m:<path>  <status>
//
// The "m:" prefix is dim, the path is cyan.
func FormatModuleLine(path, status string) string {
	padding := minModuleColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	prefix := StyleDim.Render("m:")
	styledPath := StyleNoun.Render(path)

	return prefix + styledPath + strings.Repeat(" ", padding) + status
}

// FormatIssueLine renders a lint issue with a color-coded severity prefix.
//
// Format: <severity>: <path>:<line>: <message>
func FormatIssueLine(severity, path string, line int, message string) string {
	prefix := SeverityStyle(severity).Render(severity)
	location := StyleNoun.Render(fmt.Sprintf("%s:%d", path, line))
	return fmt.Sprintf("%s: %s: %s", prefix, location, message)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
