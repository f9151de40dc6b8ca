package cmd

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	errUtils "github.com/mdlint/mdlint/errors"
	"github.com/mdlint/mdlint/pkg/config"
)

func (a *app) newInitCmd() *cobra.Command {
	var (
		preset    string
		pyproject bool
		output    string
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file from a preset",
		Example: `  mdlint init
  mdlint init --preset google
  mdlint init --pyproject`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := output
			if path == "" {
				path = ".mdlint.toml"
				if pyproject {
					path = config.PyprojectFileName
				}
			}

			var err error
			if pyproject {
				err = config.AppendPyprojectPreset(preset, path)
			} else {
				err = config.CreatePresetConfig(preset, path)
			}
			if err != nil {
				return withInitHints(err)
			}
			printSuccess(cmd.OutOrStdout(), "Created %s using the %s preset", path, preset)
			return nil
		},
	}
	cmd.Flags().StringVarP(&preset, "preset", "p", "default", "Preset: "+strings.Join(config.PresetNames, ", "))
	cmd.Flags().BoolVar(&pyproject, "pyproject", false, "Add the configuration to pyproject.toml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "File to write (default .mdlint.toml, or pyproject.toml with --pyproject)")
	return cmd
}

func withInitHints(err error) error {
	b := errUtils.Build(err)
	switch {
	case errors.Is(err, errUtils.ErrConfigFileExists):
		b = b.WithHint("Remove the file or choose another path with --output")
	case errors.Is(err, errUtils.ErrUnknownPreset):
		b = b.WithHintf("Available presets: %s", strings.Join(config.PresetNames, ", "))
	}
	return b.Err()
}
