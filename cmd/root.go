package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	errUtils "github.com/mdlint/mdlint/errors"
	"github.com/mdlint/mdlint/pkg/config"
	log "github.com/mdlint/mdlint/pkg/logger"
	"github.com/mdlint/mdlint/pkg/registry"
)

// app carries what every subcommand needs: the rule registry and the
// flag/env view of the global options.
type app struct {
	registry *registry.Registry
	v        *viper.Viper
}

// NewRootCmd builds the command tree around reg.
func NewRootCmd(reg *registry.Registry) *cobra.Command {
	a := &app{registry: reg, v: viper.New()}

	root := &cobra.Command{
		Use:   config.ToolName,
		Short: "Markdown linter configuration tools",
		Long:  `mdlint resolves its configuration from defaults, the user config, pyproject.toml, the project config and command-line flags.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Usage is noise for config errors; help still prints it.
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return a.configureLogging(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	registerGlobalFlags(root.PersistentFlags())
	if err := bindGlobalFlags(a.v, root.PersistentFlags()); err != nil {
		panic(err)
	}

	root.AddCommand(
		a.newConfigCmd(),
		a.newInitCmd(),
		a.newRuleCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the CLI with the built-in rules.
func Execute() error {
	return NewRootCmd(registry.Default()).Execute()
}

func (a *app) configureLogging(cmd *cobra.Command) error {
	level, err := log.ParseLogLevel(a.v.GetString(flagLogLevel))
	if err != nil {
		return errUtils.Build(err).
			WithHint("Set --log-level or MDLINT_LOG_LEVEL to Trace, Debug, Info, Warning or Off").
			Err()
	}
	logger := log.Default()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetReportTimestamp(false)
	logger.Configure(level)
	return nil
}
