package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/samber/lo"

	"github.com/mdlint/mdlint/pkg/flavor"
	log "github.com/mdlint/mdlint/pkg/logger"
	"github.com/mdlint/mdlint/pkg/provenance"
	"github.com/mdlint/mdlint/pkg/registry"
	"github.com/mdlint/mdlint/pkg/validate"
)

// Options controls where Load looks for configuration.
type Options struct {
	// ConfigPath names one config file and disables discovery and the user config.
	ConfigPath string
	// Isolated ignores every config file; only defaults and CLI overrides apply.
	Isolated bool
	// StartDir is where discovery begins. Defaults to the working directory.
	StartDir string
	// UserConfigDir overrides the XDG config home used for the user config.
	UserConfigDir string
	CLI           CLIOverrides
}

// CLIOverrides are settings given as command-line flags. Rule lists are comma separated.
type CLIOverrides struct {
	Enable        string
	Disable       string
	ExtendEnable  string
	ExtendDisable string
	Fixable       string
	Unfixable     string
	LineLength    *int64
	Flavor        string
	OutputFormat  string
	CacheDir      string
	NoCache       bool
}

// Flags returns the rule lists for validate.CLIRuleNames.
func (o CLIOverrides) Flags() validate.CLIFlags {
	return validate.CLIFlags{
		Enable:        o.Enable,
		Disable:       o.Disable,
		ExtendEnable:  o.ExtendEnable,
		ExtendDisable: o.ExtendDisable,
		Fixable:       o.Fixable,
		Unfixable:     o.Unfixable,
	}
}

// Fragment converts the overrides into a SourceCLI fragment.
func (o CLIOverrides) Fragment() (*Fragment, error) {
	f := NewFragment(provenance.SourceCLI, "")
	g := &f.Global
	src := provenance.SourceCLI
	none := provenance.Origin{}

	lists := map[string]string{
		"enable":         o.Enable,
		"disable":        o.Disable,
		"extend-enable":  o.ExtendEnable,
		"extend-disable": o.ExtendDisable,
		"fixable":        o.Fixable,
		"unfixable":      o.Unfixable,
	}
	for _, lf := range listFields {
		raw, ok := lists[lf.key]
		if !ok {
			continue
		}
		if names := cliRuleNames(raw); len(names) > 0 {
			lf.get(g).MergeReplace(names, src, none)
		}
	}

	if o.LineLength != nil {
		g.LineLength.MergeReplace(*o.LineLength, src, none)
	}
	if o.Flavor != "" {
		fl, err := flavor.Parse(o.Flavor)
		if err != nil {
			return nil, err
		}
		g.Flavor.MergeReplace(fl, src, none)
	}
	if o.OutputFormat != "" {
		g.OutputFormat.MergeReplace(o.OutputFormat, src, none)
	}
	if o.CacheDir != "" {
		g.CacheDir.MergeReplace(o.CacheDir, src, none)
	}
	if o.NoCache {
		g.Cache.MergeReplace(false, src, none)
	}
	return f, nil
}

// cliRuleNames splits a comma list and resolves known names. Unknown names
// are dropped; validate.CLIRuleNames reports them.
func cliRuleNames(raw string) []string {
	parts := lo.FilterMap(strings.Split(raw, ","), func(s string, _ int) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != "" && registry.IsValidRuleName(s)
	})
	return lo.Uniq(canonicalRuleNames(parts))
}

// Load folds every applicable source, lowest precedence first: defaults,
// user config, pyproject.toml, project config, then CLI overrides.
func Load(opts Options) (*LoadedConfig, error) {
	cfg := NewLoadedConfig()

	switch {
	case opts.Isolated:
		log.Debug("Running without config files")
	case opts.ConfigPath != "":
		if err := cfg.loadExplicit(opts.ConfigPath); err != nil {
			return nil, err
		}
	default:
		if err := cfg.loadDiscovered(opts); err != nil {
			return nil, err
		}
	}

	cli, err := opts.CLI.Fragment()
	if err != nil {
		return nil, err
	}
	if err := cfg.Merge(cli); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *LoadedConfig) loadExplicit(path string) error {
	src := provenance.SourceProjectConfig
	if isPyproject(path) {
		src = provenance.SourcePyproject
	}
	frag, found, err := LoadFile(path, src)
	if err != nil {
		return err
	}
	c.s.ProjectRoot = projectRootFor(path)
	if !found {
		log.Debug("No [tool.mdlint] table", "path", path)
		c.s.LoadedFiles = append(c.s.LoadedFiles, path)
		return nil
	}
	return c.Merge(frag)
}

func (c *LoadedConfig) loadDiscovered(opts Options) error {
	if path := UserConfigPath(opts.UserConfigDir); path != "" {
		if err := c.mergeFile(path, provenance.SourceUserConfig); err != nil {
			return err
		}
	}

	start := opts.StartDir
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		start = wd
	}

	pyproject, project := DiscoverProjectConfig(start)
	if pyproject != "" {
		if err := c.mergeFile(pyproject, provenance.SourcePyproject); err != nil {
			return err
		}
		c.s.ProjectRoot = projectRootFor(pyproject)
	}
	if project != "" {
		if err := c.mergeFile(project, provenance.SourceProjectConfig); err != nil {
			return err
		}
		c.s.ProjectRoot = projectRootFor(project)
	}
	return nil
}

func (c *LoadedConfig) mergeFile(path string, src provenance.Source) error {
	frag, found, err := LoadFile(path, src)
	if err != nil || !found {
		return err
	}
	return c.Merge(frag)
}

// UserConfigPath returns the user config file under dir (or the XDG config
// home when dir is empty), or "" when none exists.
func UserConfigPath(dir string) string {
	if dir == "" {
		dir = xdg.ConfigHome
	}
	for _, name := range []string{UserConfigFile, "." + UserConfigFile} {
		path := filepath.Join(dir, ToolName, name)
		if isFile(path) {
			return path
		}
	}
	return ""
}

// DiscoverProjectConfig walks up from start and returns the pyproject.toml
// (only if it has a [tool.mdlint] table) and the project config file found in
// the nearest directory holding either. The walk stops at a directory
// containing .git.
func DiscoverProjectConfig(start string) (pyproject, project string) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", ""
	}
	for {
		if path := filepath.Join(dir, PyprojectFileName); isFile(path) && hasToolTable(path) {
			pyproject = path
		}
		for _, name := range ProjectConfigFiles {
			if path := filepath.Join(dir, filepath.FromSlash(name)); isFile(path) {
				project = path
				break
			}
		}
		if pyproject != "" || project != "" {
			log.Debug("Discovered config", "dir", dir, "pyproject", pyproject, "project", project)
			return pyproject, project
		}
		if exists(filepath.Join(dir, ".git")) {
			return "", ""
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ""
		}
		dir = parent
	}
}

// hasToolTable reports whether a pyproject.toml configures mdlint. Files that
// fail to parse count as configured so loading reports the error.
func hasToolTable(path string) bool {
	var doc struct {
		Tool map[string]toml.Primitive `toml:"tool"`
	}
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return true
	}
	_, ok := doc.Tool[ToolName]
	return ok
}

// projectRootFor is the directory a config file configures.
func projectRootFor(path string) string {
	dir := filepath.Dir(path)
	if filepath.Base(dir) == ".config" {
		dir = filepath.Dir(dir)
	}
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return dir
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
