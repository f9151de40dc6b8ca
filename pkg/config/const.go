package config

const (
	// ToolName names the tool in config file names and the pyproject table.
	ToolName = "mdlint"

	PyprojectFileName = "pyproject.toml"
	UserConfigFile    = "mdlint.toml"

	// MaxExtendsDepth bounds how many extends hops a chain may follow.
	MaxExtendsDepth = 10

	// DefaultLineLength is the global line-length when no source sets it.
	DefaultLineLength int64 = 80

	globalSection    = "[global]"
	pyprojectSection = "[tool.mdlint]"
)

// ProjectConfigFiles are the project config names checked in each directory, in order.
var ProjectConfigFiles = []string{".mdlint.toml", "mdlint.toml", ".config/mdlint.toml"}

// ruleListKeys are the global keys holding rule names.
var ruleListKeys = []string{"enable", "disable", "extend-enable", "extend-disable", "fixable", "unfixable"}
