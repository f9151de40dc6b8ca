package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/mdlint/mdlint/pkg/config"
)

// Version is set at build time with -ldflags "-X github.com/mdlint/mdlint/cmd.Version=...".
var Version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s on %s/%s\n", config.ToolName, Version, runtime.GOOS, runtime.GOARCH)
		},
	}
}
