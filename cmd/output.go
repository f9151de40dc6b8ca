package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/mdlint/mdlint/pkg/validate"
)

var (
	warningLabel = color.New(color.FgYellow, color.Bold)
	successLabel = color.New(color.FgGreen)
)

func printWarnings(w io.Writer, warnings []validate.Warning) {
	for _, warning := range warnings {
		warningLabel.Fprint(w, "warning")
		fmt.Fprintf(w, ": %s\n", warning.Message)
	}
}

func printSuccess(w io.Writer, format string, args ...any) {
	successLabel.Fprintf(w, format+"\n", args...)
}
