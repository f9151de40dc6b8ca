package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	errUtils "github.com/mdlint/mdlint/errors"
	"github.com/mdlint/mdlint/pkg/config"
	"github.com/mdlint/mdlint/pkg/validate"
)

func (a *app) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(a.newConfigShowCmd(), a.newConfigValidateCmd(), a.newConfigFileCmd())
	return cmd
}

func (a *app) newConfigShowCmd() *cobra.Command {
	var (
		format  string
		sources bool
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the merged configuration",
		Example: `  mdlint config show
  mdlint config show --format yaml
  mdlint config show --sources`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			validated, warnings, err := a.resolve(cmd)
			if err != nil {
				return err
			}
			printWarnings(cmd.ErrOrStderr(), warnings)

			if sources {
				return printSources(cmd.OutOrStdout(), validated.Sourced().Describe())
			}
			out, err := validated.Configuration().Export(format)
			if err != nil {
				return errUtils.Build(err).WithHint("Use --format toml, yaml or json").Err()
			}
			return writeHighlighted(cmd.OutOrStdout(), out, exportLanguage(format))
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", config.FormatTOML, "Output format: toml, yaml or json")
	cmd.Flags().BoolVar(&sources, "sources", false, "Show which source set each value")
	return cmd
}

func (a *app) newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration for unknown rules, options and type mismatches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			validated, warnings, err := a.resolve(cmd)
			if err != nil {
				return err
			}
			printWarnings(cmd.ErrOrStderr(), warnings)
			if len(warnings) > 0 {
				err := errors.Newf("configuration has %d warning(s)", len(warnings))
				return errUtils.WithExitCode(err, errUtils.ExitCodeFindings)
			}

			files := validated.Sourced().LoadedFiles
			if len(files) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No configuration files; built-in defaults are valid")
				return nil
			}
			for _, f := range files {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", validate.DisplayPath(f))
			}
			return nil
		},
	}
}

func (a *app) newConfigFileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "file",
		Short: "List the config files that were loaded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.loadOptions(cmd.Flags())
			loaded, err := config.Load(opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			files := loaded.Sourced().LoadedFiles
			switch {
			case opts.Isolated:
				fmt.Fprintln(out, "Running without config files (--no-config)")
			case len(files) == 0:
				fmt.Fprintln(out, "No configuration file found")
			}
			for _, f := range files {
				fmt.Fprintln(out, validate.DisplayPath(f))
			}
			return nil
		},
	}
}

// resolve loads every source and validates the result, CLI rule names first.
func (a *app) resolve(cmd *cobra.Command) (*config.ValidatedConfig, []validate.Warning, error) {
	opts := a.loadOptions(cmd.Flags())
	loaded, err := config.Load(opts)
	if err != nil {
		return nil, nil, err
	}
	validated, err := loaded.Validate(a.registry)
	if err != nil {
		return nil, nil, err
	}
	warnings := append(validate.CLIRuleNames(opts.CLI.Flags()), validated.Warnings()...)
	return validated, warnings, nil
}

var sourcesHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

// printSources renders one row per resolved value with the source that set it.
func printSources(w io.Writer, entries []config.Entry) error {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Section, e.Key, fmt.Sprint(e.Value), e.Source})
	}

	t := table.New().
		Headers("SECTION", "KEY", "VALUE", "SOURCE").
		Rows(rows...).
		BorderHeader(true).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderRow(false).
		BorderColumn(false).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return sourcesHeaderStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// exportLanguage names the chroma lexer for an export format.
func exportLanguage(format string) string {
	if f := strings.ToLower(format); f != "" {
		return f
	}
	return config.FormatTOML
}
