package config

import (
	"sort"

	"github.com/samber/lo"

	errUtils "github.com/mdlint/mdlint/errors"
	log "github.com/mdlint/mdlint/pkg/logger"
	"github.com/mdlint/mdlint/pkg/registry"
	"github.com/mdlint/mdlint/pkg/validate"
)

// Sourced is the merged configuration with full provenance.
type Sourced struct {
	Global GlobalSettings
	fileTables
	Rules        map[string]*RuleSettings
	LoadedFiles  []string
	UnknownKeys  []validate.UnknownKey
	DisplayNames map[string]string
	// ProjectRoot is the directory of the project config, if any.
	ProjectRoot string
}

// LoadedConfig accumulates fragments. It can only become a Configuration by
// way of Validate.
type LoadedConfig struct {
	s *Sourced
}

// NewLoadedConfig returns a config holding only the built-in defaults.
func NewLoadedConfig() *LoadedConfig {
	return &LoadedConfig{s: &Sourced{
		Global:       DefaultGlobalSettings(),
		fileTables:   defaultFileTables(),
		Rules:        make(map[string]*RuleSettings),
		DisplayNames: make(map[string]string),
	}}
}

// Sourced returns a copy of the merged state for inspection. It is nil once
// validated.
func (c *LoadedConfig) Sourced() *Sourced {
	if c.s == nil {
		return nil
	}
	return c.s.clone()
}

// Merge folds f in. Fragments should arrive in ascending precedence; a
// lower-ranked write never displaces a higher one either way. enable
// replaces, the other rule and path lists union, scalars and tables replace,
// and rule options replace per key.
func (c *LoadedConfig) Merge(f *Fragment) error {
	if c.s == nil {
		return errUtils.ErrLoadedConfigConsumed
	}
	if f == nil {
		return nil
	}
	s := c.s

	mergeGlobal(&s.Global, &f.Global, func(lf listField) bool { return lf.union })
	mergeTables(&s.fileTables, &f.fileTables)
	mergeRules(s.Rules, f.Rules)

	s.UnknownKeys = append(s.UnknownKeys, f.UnknownKeys...)
	for id, name := range f.DisplayNames {
		s.DisplayNames[id] = name
	}
	s.LoadedFiles = append(s.LoadedFiles, f.files...)
	return nil
}

// Validate checks the configuration against reg and moves it to the
// validated phase. The LoadedConfig cannot be used afterwards, and the state
// that was checked is reachable only through the returned ValidatedConfig.
func (c *LoadedConfig) Validate(reg *registry.Registry) (*ValidatedConfig, error) {
	if c.s == nil {
		return nil, errUtils.ErrLoadedConfigConsumed
	}
	s := c.s
	c.s = nil

	warnings := validate.Config(s.validationInput(), reg)
	log.Debug("Validated configuration", "files", len(s.LoadedFiles), "warnings", len(warnings))
	return &ValidatedConfig{s: s, warnings: warnings}, nil
}

func (s *Sourced) validationInput() validate.Input {
	in := validate.Input{
		Rules:       make(map[string]map[string]any, len(s.Rules)),
		UnknownKeys: s.UnknownKeys,
	}
	for id, rs := range s.Rules {
		opts := make(map[string]any, len(rs.Options))
		for key, v := range rs.Options {
			opts[key] = v.Get()
		}
		in.Rules[id] = opts
	}
	for _, lf := range listFields {
		if !lo.Contains(ruleListKeys, lf.key) {
			continue
		}
		in.RuleLists = append(in.RuleLists, validate.RuleList{Field: lf.key, Names: lf.get(&s.Global).Get()})
	}
	return in
}

// RuleIDs returns the configured rule sections in sorted order.
func (s *Sourced) RuleIDs() []string {
	ids := lo.Keys(s.Rules)
	sort.Strings(ids)
	return ids
}

// ValidatedConfig is a configuration that has been checked against a registry.
type ValidatedConfig struct {
	s        *Sourced
	warnings []validate.Warning
}

// Warnings returns the validation findings.
func (v *ValidatedConfig) Warnings() []validate.Warning {
	return append([]validate.Warning(nil), v.warnings...)
}

// Sourced returns a copy of the validated state with provenance. Changing it
// does not affect Configuration.
func (v *ValidatedConfig) Sourced() *Sourced {
	if v.s == nil {
		return nil
	}
	return v.s.clone()
}

// Configuration builds the immutable configuration used while linting. It
// returns nil for a ValidatedConfig that did not come from Validate.
func (v *ValidatedConfig) Configuration() *Configuration {
	if v.s == nil {
		return nil
	}
	return newConfiguration(v.s)
}

func (s *Sourced) clone() *Sourced {
	out := &Sourced{
		Global:       s.Global.clone(),
		fileTables:   s.fileTables.clone(),
		Rules:        make(map[string]*RuleSettings, len(s.Rules)),
		LoadedFiles:  clone(s.LoadedFiles),
		UnknownKeys:  append([]validate.UnknownKey(nil), s.UnknownKeys...),
		DisplayNames: lo.Assign(s.DisplayNames),
		ProjectRoot:  s.ProjectRoot,
	}
	for id, rs := range s.Rules {
		out.Rules[id] = rs.clone()
	}
	return out
}
