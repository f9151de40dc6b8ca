package config

import (
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/mdlint/mdlint/pkg/codeblock"
	"github.com/mdlint/mdlint/pkg/filematch"
	"github.com/mdlint/mdlint/pkg/flavor"
	"github.com/mdlint/mdlint/pkg/provenance"
	"github.com/mdlint/mdlint/pkg/registry"
	"github.com/mdlint/mdlint/pkg/rules"
)

// GlobalConfig is the resolved [global] section.
type GlobalConfig struct {
	Enable           []string      `toml:"enable" yaml:"enable" json:"enable"`
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
	// EnableIsExplicit is true when some source wrote enable, even as an empty list.
	EnableIsExplicit bool `toml:"-" yaml:"-" json:"-"`
}

// RuleConfig is one resolved rule section.
type RuleConfig struct {
	Severity rules.Severity
	Values   map[string]any
}

// Configuration is the final, read-only configuration. It is safe for
// concurrent use; the per-file caches are built on first use.
type Configuration struct {
	Global         GlobalConfig
	PerFileIgnores map[string][]string
	PerFileFlavor  []FlavorPattern
	CodeBlockTools codeblock.Config
	Rules          map[string]RuleConfig
	DisplayNames   map[string]string
	ProjectRoot    string

	ignoreOnce sync.Once
	ignore     *ignoreCache
	flavorOnce sync.Once
	flavors    *flavorCache
}

func newConfiguration(s *Sourced) *Configuration {
	g := &s.Global
	enable := lo.Uniq(g.Enable.Get())
	enabled := lo.SliceToMap(enable, func(n string) (string, bool) { return n, true })

	cfg := &Configuration{
		Global: GlobalConfig{
			Enable: enable,
			// Enable wins over disable when both name a rule.
			Disable:          lo.Filter(g.Disable.Get(), func(n string, _ int) bool { return !enabled[n] }),
			ExtendEnable:     clone(g.ExtendEnable.Get()),
			ExtendDisable:    clone(g.ExtendDisable.Get()),
			Include:          clone(g.Include.Get()),
			Exclude:          clone(g.Exclude.Get()),
			RespectGitignore: g.RespectGitignore.Get(),
			LineLength:       g.LineLength.Get(),
			OutputFormat:     g.OutputFormat.Get(),
			Fixable:          clone(g.Fixable.Get()),
			Unfixable:        clone(g.Unfixable.Get()),
			Flavor:           g.Flavor.Get(),
			CacheDir:         g.CacheDir.Get(),
			Cache:            g.Cache.Get(),
			EnableIsExplicit: g.Enable.Source() != provenance.SourceDefault,
		},
		PerFileIgnores: cloneIgnores(s.PerFileIgnores.Get()),
		PerFileFlavor:  slices.Clone(s.PerFileFlavor.Get()),
		CodeBlockTools: s.CodeBlockTools.Get().Clone(),
		Rules:          make(map[string]RuleConfig, len(s.Rules)),
		DisplayNames:   lo.Assign(s.DisplayNames),
		ProjectRoot:    s.ProjectRoot,
	}

	for id, rs := range s.Rules {
		rc := RuleConfig{Severity: rs.Severity.Get(), Values: make(map[string]any, len(rs.Options))}
		for key, v := range rs.Options {
			rc.Values[key] = v.Get()
		}
		cfg.Rules[id] = rc
	}

	// A global line-length set by any config applies to MD013 unless MD013 sets its own.
	if g.LineLength.Source() != provenance.SourceDefault {
		rc, ok := cfg.Rules["MD013"]
		if !ok {
			rc = RuleConfig{Values: map[string]any{}}
		}
		if _, set := rc.Values["line-length"]; !set {
			rc.Values["line-length"] = g.LineLength.Get()
			cfg.Rules["MD013"] = rc
		}
	}
	return cfg
}

func clone(s []string) []string {
	return append([]string{}, s...)
}

// RuleOption looks up an option of rule, accepting the key as written, fully
// normalized, or with hyphens and underscores swapped.
func (c *Configuration) RuleOption(rule, key string) (any, bool) {
	rc, ok := c.Rules[strings.ToUpper(rule)]
	if !ok {
		return nil, false
	}
	for _, k := range []string{
		key,
		registry.NormalizeKey(key),
		strings.ReplaceAll(key, "-", "_"),
		strings.ReplaceAll(key, "_", "-"),
	} {
		if v, ok := rc.Values[k]; ok {
			return v, true
		}
	}
	return nil, false
}

// RuleSeverity returns the severity override for rule, if any.
func (c *Configuration) RuleSeverity(rule string) (rules.Severity, bool) {
	rc, ok := c.Rules[strings.ToUpper(rule)]
	if !ok || rc.Severity == "" {
		return "", false
	}
	return rc.Severity, true
}

// WithRuleOverrides returns a copy with option values merged in, as from
// inline configuration comments. Option keys are stored in kebab-case and nil
// values are skipped.
func (c *Configuration) WithRuleOverrides(overrides map[string]map[string]any) *Configuration {
	out := c.clone()
	for rule, opts := range overrides {
		id := registry.ResolveRuleNameOrNormalize(rule)
		rc, ok := out.Rules[id]
		if !ok {
			rc = RuleConfig{Values: map[string]any{}}
		}
		for key, v := range opts {
			if v == nil {
				continue
			}
			rc.Values[strings.ReplaceAll(key, "_", "-")] = v
		}
		out.Rules[id] = rc
	}
	return out
}

func (c *Configuration) clone() *Configuration {
	out := &Configuration{
		Global:         c.Global,
		PerFileIgnores: c.PerFileIgnores,
		PerFileFlavor:  c.PerFileFlavor,
		CodeBlockTools: c.CodeBlockTools,
		Rules:          make(map[string]RuleConfig, len(c.Rules)),
		DisplayNames:   c.DisplayNames,
		ProjectRoot:    c.ProjectRoot,
	}
	for id, rc := range c.Rules {
		out.Rules[id] = RuleConfig{Severity: rc.Severity, Values: lo.Assign(rc.Values)}
	}
	return out
}

// EnabledRules selects the rules to run out of available, keeping their order.
//
// With no enable list every rule runs except opt-in rules, which need
// extend-enable. An explicit enable list (even empty) restricts the set to its
// members plus extend-enable. "all" in enable or extend-enable selects every
// rule including opt-in ones. disable and extend-disable then remove rules,
// except that disable = ["all"] yields only what enable names.
func (c *Configuration) EnabledRules(available []string) []string {
	g := c.Global
	optIn := rules.OptIn()
	disabled := lo.SliceToMap(g.Disable, func(n string) (string, bool) { return n, true })
	extendDisabled := lo.SliceToMap(g.ExtendDisable, func(n string) (string, bool) { return n, true })
	extendEnabled := lo.SliceToMap(g.ExtendEnable, func(n string) (string, bool) { return n, true })
	extendEnableAll := containsAll(g.ExtendEnable)
	extendDisableAll := containsAll(g.ExtendDisable)

	isDisabled := func(name string) bool {
		return disabled[name] || extendDisableAll || extendDisabled[name]
	}

	if containsAll(g.Disable) {
		if containsAll(g.Enable) {
			return clone(available)
		}
		enabled := lo.SliceToMap(g.Enable, func(n string) (string, bool) { return n, true })
		return lo.Filter(available, func(n string, _ int) bool { return enabled[n] })
	}

	if len(g.Enable) > 0 || g.EnableIsExplicit {
		if containsAll(g.Enable) || extendEnableAll {
			return lo.Reject(available, func(n string, _ int) bool { return isDisabled(n) })
		}
		enabled := lo.SliceToMap(g.Enable, func(n string) (string, bool) { return n, true })
		return lo.Filter(available, func(n string, _ int) bool {
			return (enabled[n] || extendEnabled[n]) && !isDisabled(n)
		})
	}

	if extendEnableAll {
		return lo.Reject(available, func(n string, _ int) bool { return isDisabled(n) })
	}

	return lo.Filter(available, func(n string, _ int) bool {
		_, opt := optIn[n]
		return (!opt || extendEnabled[n]) && !isDisabled(n)
	})
}

func containsAll(list []string) bool {
	return lo.ContainsBy(list, func(s string) bool { return strings.EqualFold(s, "all") })
}

// IsFixable reports whether fixes for rule may be applied. unfixable wins;
// an empty fixable list allows every rule.
func (c *Configuration) IsFixable(rule string) bool {
	if lo.Contains(c.Global.Unfixable, rule) || containsAll(c.Global.Unfixable) {
		return false
	}
	return len(c.Global.Fixable) == 0 || lo.Contains(c.Global.Fixable, rule) || containsAll(c.Global.Fixable)
}

// IsExcluded reports whether path matches an exclude pattern.
func (c *Configuration) IsExcluded(path string) bool {
	return filematch.MatchAny(c.Global.Exclude, c.relativize(path))
}

// IsIncluded reports whether path passes the include list. An empty list includes everything.
func (c *Configuration) IsIncluded(path string) bool {
	return len(c.Global.Include) == 0 || filematch.MatchAny(c.Global.Include, c.relativize(path))
}

func (c *Configuration) relativize(path string) string {
	return filematch.NewRelativizer(c.ProjectRoot).Rel(path)
}

// RuleIDs returns the configured rule sections in sorted order.
func (c *Configuration) RuleIDs() []string {
	ids := lo.Keys(c.Rules)
	sort.Strings(ids)
	return ids
}
