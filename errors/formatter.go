package errors

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/term"
)

const (
	// DefaultMaxLineLength is the default maximum line length before wrapping.
	DefaultMaxLineLength = 80

	newline = "\n"
)

// FormatterConfig controls error formatting behavior.
type FormatterConfig struct {
	// Verbose adds context details and the full error chain.
	Verbose bool

	// Color is "auto", "always", or "never".
	Color string

	// MaxLineLength is the maximum length before wrapping.
	MaxLineLength int
}

// DefaultFormatterConfig returns default formatting configuration.
func DefaultFormatterConfig() FormatterConfig {
	return FormatterConfig{
		Color:         "auto",
		MaxLineLength: DefaultMaxLineLength,
	}
}

// Format renders an error with its hints for terminal display.
func Format(err error, config FormatterConfig) string {
	if err == nil {
		return ""
	}

	errorStyle := color.New(color.FgRed)
	hintStyle := color.New(color.FgCyan)
	detailStyle := color.New(color.Faint)
	for _, c := range []*color.Color{errorStyle, hintStyle, detailStyle} {
		applyColorMode(c, config.Color)
	}

	var output strings.Builder

	mainMsg := err.Error()
	if len(mainMsg) > config.MaxLineLength && !config.Verbose {
		mainMsg = wrapText(mainMsg, config.MaxLineLength)
	}
	output.WriteString(errorStyle.Sprint(mainMsg))

	hints := errors.GetAllHints(err)
	if len(hints) > 0 {
		output.WriteString(newline)
		for _, hint := range hints {
			output.WriteString("    " + hintStyle.Sprint("hint: "+hint))
			output.WriteString(newline)
		}
	}

	if config.Verbose {
		for _, detail := range errors.GetAllDetails(err) {
			output.WriteString(newline)
			output.WriteString(detail)
		}
		if ctx := formatContext(err); ctx != "" {
			output.WriteString(newline)
			output.WriteString(detailStyle.Sprint(ctx))
		}
		output.WriteString(newline)
		output.WriteString(detailStyle.Sprint(fmt.Sprintf("%+v", err)))
	}

	return output.String()
}

func applyColorMode(c *color.Color, mode string) {
	switch mode {
	case "always":
		c.EnableColor()
	case "never":
		c.DisableColor()
	default:
		if term.IsTerminal(int(os.Stderr.Fd())) {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// formatContext renders "key=value" safe details one pair per line.
func formatContext(err error) string {
	var lines []string
	for _, payload := range errors.GetAllSafeDetails(err) {
		for _, detail := range payload.SafeDetails {
			for _, pair := range strings.Fields(detail) {
				if k, v, ok := strings.Cut(pair, "="); ok {
					lines = append(lines, fmt.Sprintf("  %s: %s", k, v))
				}
			}
		}
	}
	return strings.Join(lines, newline)
}

// wrapText wraps text to the specified width.
func wrapText(text string, width int) string {
	if width <= 0 {
		width = DefaultMaxLineLength
	}
	return wordwrap.WrapString(strings.Join(strings.Fields(text), " "), uint(width))
}
