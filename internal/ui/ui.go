package ui

import (
	"io"
	"os"

	"golang.org/x/term"
)

type OutputMode int

const (
	// OutputModeInteractive enables colors and unicode icons.
	OutputModeInteractive OutputMode = iota
	// OutputModePlain is used when stdout is piped.
	OutputModePlain
	// OutputModeJSON writes machine-readable JSON only.
	OutputModeJSON
)

type UI struct {
	Mode      OutputMode
	Writer    io.Writer
	ErrWriter io.Writer
	Styles    *Styles
}

// New detects the output mode from the format flag and whether w is a TTY.
func New(w, errW io.Writer, format string) *UI {
	mode := detectMode(w, format)
	return &UI{
		Mode:      mode,
		Writer:    w,
		ErrWriter: errW,
		Styles:    NewStyles(mode == OutputModeInteractive),
	}
}

func detectMode(w io.Writer, format string) OutputMode {
	if format == "json" {
		return OutputModeJSON
	}
	if f, ok := w.(*os.File); ok {
		if term.IsTerminal(int(f.Fd())) {
			return OutputModeInteractive
		}
	}
	return OutputModePlain
}

func (u *UI) IsInteractive() bool {
	return u.Mode == OutputModeInteractive
}

func (u *UI) IsJSON() bool {
	return u.Mode == OutputModeJSON
}

// Width returns the terminal width of the output, or fallback when unknown.
func (u *UI) Width(fallback int) int {
	if f, ok := u.Writer.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}
