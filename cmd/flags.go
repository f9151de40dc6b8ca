package cmd

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mdlint/mdlint/pkg/config"
)

const (
	flagConfig        = "config"
	flagNoConfig      = "no-config"
	flagEnable        = "enable"
	flagDisable       = "disable"
	flagExtendEnable  = "extend-enable"
	flagExtendDisable = "extend-disable"
	flagFixable       = "fixable"
	flagUnfixable     = "unfixable"
	flagLineLength    = "line-length"
	flagFlavor        = "flavor"
	flagOutputFormat  = "output-format"
	flagCacheDir      = "cache-dir"
	flagNoCache       = "no-cache"
	flagLogLevel      = "log-level"
)

// envVars maps flags to the environment variables that can set them.
var envVars = map[string]string{
	flagConfig:       "MDLINT_CONFIG",
	flagCacheDir:     "MDLINT_CACHE_DIR",
	flagLogLevel:     "MDLINT_LOG_LEVEL",
	flagOutputFormat: "MDLINT_OUTPUT_FORMAT",
}

func registerGlobalFlags(fs *pflag.FlagSet) {
	fs.StringP(flagConfig, "c", "", "Path to a config file; disables discovery and the user config")
	fs.Bool(flagNoConfig, false, "Ignore all config files")
	fs.String(flagEnable, "", "Comma-separated rules to enable exclusively")
	fs.String(flagDisable, "", "Comma-separated rules to disable")
	fs.String(flagExtendEnable, "", "Comma-separated rules to enable in addition to the configured set")
	fs.String(flagExtendDisable, "", "Comma-separated rules to disable in addition to the configured set")
	fs.String(flagFixable, "", "Comma-separated rules whose fixes may be applied")
	fs.String(flagUnfixable, "", "Comma-separated rules whose fixes must not be applied")
	fs.Int64(flagLineLength, config.DefaultLineLength, "Default maximum line length")
	fs.String(flagFlavor, "", "Markdown flavor: standard, mkdocs, mdx, quarto, obsidian or kramdown")
	fs.String(flagOutputFormat, "", "Output format for lint results")
	fs.String(flagCacheDir, "", "Directory for the lint cache")
	fs.Bool(flagNoCache, false, "Disable the lint cache")
	fs.String(flagLogLevel, "Warning", "Log level: Trace, Debug, Info, Warning or Off")
}

// bindGlobalFlags makes flags readable through v with flag > env > default precedence.
func bindGlobalFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		if err = v.BindPFlag(f.Name, f); err != nil {
			return
		}
		if env, ok := envVars[f.Name]; ok {
			err = v.BindEnv(f.Name, env)
		}
	})
	return err
}

// loadOptions turns the global flags into config.Options. Values that were
// never set stay empty so they do not override config files.
func (a *app) loadOptions(fs *pflag.FlagSet) config.Options {
	opts := config.Options{
		ConfigPath: a.v.GetString(flagConfig),
		Isolated:   a.v.GetBool(flagNoConfig),
		CLI: config.CLIOverrides{
			Enable:        a.v.GetString(flagEnable),
			Disable:       a.v.GetString(flagDisable),
			ExtendEnable:  a.v.GetString(flagExtendEnable),
			ExtendDisable: a.v.GetString(flagExtendDisable),
			Fixable:       a.v.GetString(flagFixable),
			Unfixable:     a.v.GetString(flagUnfixable),
			Flavor:        a.v.GetString(flagFlavor),
			OutputFormat:  a.v.GetString(flagOutputFormat),
			CacheDir:      a.v.GetString(flagCacheDir),
			NoCache:       a.v.GetBool(flagNoCache),
		},
	}
	if fs.Changed(flagLineLength) {
		n := a.v.GetInt64(flagLineLength)
		opts.CLI.LineLength = &n
	}
	return opts
}
