package cliutil

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Palette colors diagnostic output. The zero value prints plain text.
type Palette struct {
	enabled bool
}

// NewPalette returns a Palette that colors output written to w when w is
// a terminal and noColor is false.
func NewPalette(w io.Writer, noColor bool) Palette {
	if noColor || color.NoColor {
		return Palette{}
	}
	f, ok := w.(*os.File)
	if !ok {
		return Palette{}
	}
	return Palette{enabled: isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())}
}

// Enabled reports whether the palette emits color escapes.
func (p Palette) Enabled() bool { return p.enabled }

func (p Palette) paint(attr color.Attribute, format string, args ...any) string {
	c := color.New(attr)
	if p.enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprintf(format, args...)
}

// Added formats an addition.
func (p Palette) Added(format string, args ...any) string {
	return p.paint(color.FgGreen, format, args...)
}

// Removed formats a removal.
func (p Palette) Removed(format string, args ...any) string {
	return p.paint(color.FgRed, format, args...)
}

// Name formats a component or path name.
func (p Palette) Name(format string, args ...any) string {
	return p.paint(color.FgCyan, format, args...)
}

// Warn formats a warning.
func (p Palette) Warn(format string, args ...any) string {
	return p.paint(color.FgYellow, format, args...)
}
