package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles holds the terminal styles used for console output. When the
// output writer is not a terminal all methods pass text through unstyled.
type Styles struct {
	enabled      bool
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	successStyle lipgloss.Style
	hintStyle    lipgloss.Style
	pathStyle    lipgloss.Style
	dimStyle     lipgloss.Style
}

// StylesFor builds the style set for the given writer
func StylesFor(w io.Writer) Styles {
	return Styles{
		enabled:      writerIsTerminal(w),
		warningStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		errorStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		successStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		hintStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		pathStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		dimStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Warning styles warning text
func (s Styles) Warning(text string) string {
	if !s.enabled {
		return text
	}
	return s.warningStyle.Render(text)
}

// Error styles error text
func (s Styles) Error(text string) string {
	if !s.enabled {
		return text
	}
	return s.errorStyle.Render(text)
}

// Success styles success text
func (s Styles) Success(text string) string {
	if !s.enabled {
		return text
	}
	return s.successStyle.Render(text)
}

// Hint styles hint text
func (s Styles) Hint(text string) string {
	if !s.enabled {
		return text
	}
	return s.hintStyle.Render(text)
}

// Path styles a filesystem path or identifier
func (s Styles) Path(text string) string {
	if !s.enabled {
		return text
	}
	return s.pathStyle.Render(text)
}

// Dim styles de-emphasized text
func (s Styles) Dim(text string) string {
	if !s.enabled {
		return text
	}
	return s.dimStyle.Render(text)
}
