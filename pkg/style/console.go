// Package style implements the terminal console sink with pterm styling.
package style

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/scriptinit/pkg/types"
)

// Styles for the three severity-tagged writers
var (
	InfoStyle      = pterm.NewStyle(pterm.FgDefault)
	SuccessStyle   = pterm.NewStyle(pterm.FgGreen)
	HighlightStyle = pterm.NewStyle(pterm.FgYellow)
)

// Console writes styled status lines to a terminal. It implements
// types.Console.
type Console struct {
	out   io.Writer
	color bool
}

// NewConsole creates a console writing to stdout, with color disabled
// when NO_COLOR is set or stdout is not a terminal.
func NewConsole() *Console {
	color := os.Getenv("NO_COLOR") == "" && isatty.IsTerminal(os.Stdout.Fd())
	return &Console{out: os.Stdout, color: color}
}

// NewConsoleWriter creates a console writing to w without color. Used in
// tests to capture output.
func NewConsoleWriter(w io.Writer) *Console {
	return &Console{out: w, color: false}
}

var _ types.Console = (*Console)(nil)

// Info writes a normal status line.
func (c *Console) Info(msg string) {
	c.write(InfoStyle, msg)
}

// Success writes a success status line.
func (c *Console) Success(msg string) {
	c.write(SuccessStyle, msg)
}

// Highlight writes a highlighted status line, used for soft skips.
func (c *Console) Highlight(msg string) {
	c.write(HighlightStyle, msg)
}

// Raw writes a line with no styling.
func (c *Console) Raw(msg string) {
	fmt.Fprintln(c.out, msg)
}

func (c *Console) write(s *pterm.Style, msg string) {
	if c.color {
		fmt.Fprintln(c.out, s.Sprint(msg))
		return
	}
	fmt.Fprintln(c.out, msg)
}
