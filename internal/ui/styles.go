package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	enabled bool

	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style

	Header    lipgloss.Style
	Subheader lipgloss.Style
	Path      lipgloss.Style
	Name      lipgloss.Style
	Value     lipgloss.Style
	Separator lipgloss.Style

	// Icons degrade to ASCII when output is not a terminal.
	IconError   string
	IconWarning string
	IconInfo    string
	IconSuccess string
}

// NewStyles returns colored styles when enabled, and pass-through styles
// otherwise.
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		s.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		s.Info = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
		s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
		s.Subheader = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Path = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Name = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		s.Value = lipgloss.NewStyle().Bold(true)
		s.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

		s.IconError = "✗"
		s.IconWarning = "⚠"
		s.IconInfo = "ℹ"
		s.IconSuccess = "✓"
	} else {
		s.Error = lipgloss.NewStyle()
		s.Warning = lipgloss.NewStyle()
		s.Info = lipgloss.NewStyle()
		s.Success = lipgloss.NewStyle()

		s.Header = lipgloss.NewStyle()
		s.Subheader = lipgloss.NewStyle()
		s.Path = lipgloss.NewStyle()
		s.Name = lipgloss.NewStyle()
		s.Value = lipgloss.NewStyle()
		s.Separator = lipgloss.NewStyle()

		s.IconError = "ERROR:"
		s.IconWarning = "WARN:"
		s.IconInfo = "INFO:"
		s.IconSuccess = "OK:"
	}

	return s
}

func (s *Styles) Enabled() bool {
	return s.enabled
}
