package config

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	errUtils "github.com/mdlint/mdlint/errors"
	"github.com/mdlint/mdlint/pkg/flavor"
)

// Export formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Export renders the configuration in format. Rule sections use the name the
// config file used for them when it was an alias.
func (c *Configuration) Export(format string) ([]byte, error) {
	doc := c.document()

	switch strings.ToLower(format) {
	case FormatTOML, "":
		delete(doc, "per-file-flavor")
		out, err := toml.Marshal(doc)
		if err != nil {
			return nil, errors.Wrap(err, "encoding TOML")
		}
		flavors, err := c.flavorTableTOML()
		if err != nil {
			return nil, err
		}
		return append(out, flavors...), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, errors.Wrap(err, "encoding YAML")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, "encoding YAML")
		}
		return buf.Bytes(), nil
	case FormatJSON:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "encoding JSON")
		}
		return append(out, '\n'), nil
	}
	return nil, errors.Wrapf(errUtils.ErrInvalidOutputFormat, "unsupported export format %q (expected toml, yaml or json)", format)
}

// globalDocument is GlobalConfig as written by Export. enable is present only
// when some source set it; writing the default empty list would read back as
// an explicit empty enable and turn every rule off.
type globalDocument struct {
	Enable           *[]string     `toml:"enable,omitempty" yaml:"enable,omitempty" json:"enable,omitempty"`
	Disable          []string      `toml:"disable" yaml:"disable" json:"disable"`
	ExtendEnable     []string      `toml:"extend-enable" yaml:"extend-enable" json:"extend-enable"`
	ExtendDisable    []string      `toml:"extend-disable" yaml:"extend-disable" json:"extend-disable"`
	Include          []string      `toml:"include" yaml:"include" json:"include"`
	Exclude          []string      `toml:"exclude" yaml:"exclude" json:"exclude"`
	RespectGitignore bool          `toml:"respect-gitignore" yaml:"respect-gitignore" json:"respect-gitignore"`
	LineLength       int64         `toml:"line-length" yaml:"line-length" json:"line-length"`
	OutputFormat     string        `toml:"output-format,omitempty" yaml:"output-format,omitempty" json:"output-format,omitempty"`
	Fixable          []string      `toml:"fixable" yaml:"fixable" json:"fixable"`
	Unfixable        []string      `toml:"unfixable" yaml:"unfixable" json:"unfixable"`
	Flavor           flavor.Flavor `toml:"flavor" yaml:"flavor" json:"flavor"`
	CacheDir         string        `toml:"cache-dir,omitempty" yaml:"cache-dir,omitempty" json:"cache-dir,omitempty"`
	Cache            bool          `toml:"cache" yaml:"cache" json:"cache"`
}

func newGlobalDocument(g GlobalConfig) globalDocument {
	doc := globalDocument{
		Disable:          g.Disable,
		ExtendEnable:     g.ExtendEnable,
		ExtendDisable:    g.ExtendDisable,
		Include:          g.Include,
		Exclude:          g.Exclude,
		RespectGitignore: g.RespectGitignore,
		LineLength:       g.LineLength,
		OutputFormat:     g.OutputFormat,
		Fixable:          g.Fixable,
		Unfixable:        g.Unfixable,
		Flavor:           g.Flavor,
		CacheDir:         g.CacheDir,
		Cache:            g.Cache,
	}
	if g.EnableIsExplicit {
		enable := clone(g.Enable)
		doc.Enable = &enable
	}
	return doc
}

func (c *Configuration) document() map[string]any {
	doc := map[string]any{"global": newGlobalDocument(c.Global)}
	if len(c.PerFileIgnores) > 0 {
		doc["per-file-ignores"] = c.PerFileIgnores
	}
	if len(c.PerFileFlavor) > 0 {
		doc["per-file-flavor"] = c.PerFileFlavor
	}
	if cbt := c.CodeBlockTools; cbt.Enabled || len(cbt.Languages) > 0 || len(cbt.Tools) > 0 || len(cbt.LanguageAliases) > 0 {
		doc["code-block-tools"] = cbt
	}
	for id, rc := range c.Rules {
		section := make(map[string]any, len(rc.Values)+1)
		for k, v := range rc.Values {
			section[k] = v
		}
		if rc.Severity != "" {
			section["severity"] = string(rc.Severity)
		}
		name := id
		if display, ok := c.DisplayNames[id]; ok {
			name = display
		}
		doc[name] = section
	}
	return doc
}

// flavorTableTOML writes per-file-flavor by hand so pattern order survives.
func (c *Configuration) flavorTableTOML() ([]byte, error) {
	if len(c.PerFileFlavor) == 0 {
		return nil, nil
	}
	var buf bytes.Buffer
	buf.WriteString("\n[per-file-flavor]\n")
	for _, fp := range c.PerFileFlavor {
		line, err := toml.Marshal(map[string]string{fp.Pattern: fp.Flavor.String()})
		if err != nil {
			return nil, errors.Wrap(err, "encoding per-file-flavor")
		}
		buf.Write(line)
	}
	return buf.Bytes(), nil
}
