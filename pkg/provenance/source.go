package provenance

import "fmt"

// Source identifies where a configuration value came from.
// Sources form a total order; a higher rank overrides a lower one.
type Source int

const (
	// SourceDefault is the built-in default.
	SourceDefault Source = iota
	// SourceUserConfig is the user-level config file in the XDG config directory.
	SourceUserConfig
	// SourcePyproject is the [tool.mdlint] section of a pyproject.toml.
	SourcePyproject
	// SourceProjectConfig is a project-level .mdlint.toml or mdlint.toml, including its extends chain.
	SourceProjectConfig
	// SourceCLI is a command-line flag.
	SourceCLI
)

// Rank returns the precedence of the source.
func (s Source) Rank() int {
	return int(s)
}

// Outranks reports whether s may override a value currently held by other.
// Equal ranks override so that the last write at a given level wins.
func (s Source) Outranks(other Source) bool {
	return s.Rank() >= other.Rank()
}

func (s Source) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourceUserConfig:
		return "user config"
	case SourcePyproject:
		return "pyproject.toml"
	case SourceProjectConfig:
		return "project config"
	case SourceCLI:
		return "cli"
	default:
		return fmt.Sprintf("source(%d)", int(s))
	}
}

// Sources returns every source kind in ascending precedence order.
func Sources() []Source {
	return []Source{SourceDefault, SourceUserConfig, SourcePyproject, SourceProjectConfig, SourceCLI}
}
