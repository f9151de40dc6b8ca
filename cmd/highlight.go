package cmd

import (
	"io"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const syntaxTheme = "dracula"

// writeHighlighted writes code to w, syntax highlighted when w is a color terminal.
func writeHighlighted(w io.Writer, code []byte, language string) error {
	if !isColorTerminal(w) {
		_, err := w.Write(code)
		return err
	}
	if err := quick.Highlight(w, string(code), language, "terminal256", syntaxTheme); err != nil {
		_, err = w.Write(code)
		return err
	}
	return nil
}

func isColorTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
