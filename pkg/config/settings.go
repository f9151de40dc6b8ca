package config

import (
	"slices"

	"github.com/mdlint/mdlint/pkg/codeblock"
	"github.com/mdlint/mdlint/pkg/flavor"
	"github.com/mdlint/mdlint/pkg/provenance"
	"github.com/mdlint/mdlint/pkg/rules"
)

// GlobalSettings holds the [global] options with their provenance.
type GlobalSettings struct {
	Enable           provenance.Value[[]string]
	Disable          provenance.Value[[]string]
	Include          provenance.Value[[]string]
	Exclude          provenance.Value[[]string]
	RespectGitignore provenance.Value[bool]
	LineLength       provenance.Value[int64]
	OutputFormat     provenance.Value[string]
	Fixable          provenance.Value[[]string]
	Unfixable        provenance.Value[[]string]
	Flavor           provenance.Value[flavor.Flavor]
	// ForceExclude is accepted for compatibility and has no effect.
	ForceExclude  provenance.Value[bool]
	CacheDir      provenance.Value[string]
	Cache         provenance.Value[bool]
	ExtendEnable  provenance.Value[[]string]
	ExtendDisable provenance.Value[[]string]
}

// DefaultGlobalSettings returns the built-in defaults, all at SourceDefault.
// OutputFormat and CacheDir stay unset.
func DefaultGlobalSettings() GlobalSettings {
	src := provenance.SourceDefault
	return GlobalSettings{
		Enable:           provenance.New([]string{}, src),
		Disable:          provenance.New([]string{}, src),
		Include:          provenance.New([]string{}, src),
		Exclude:          provenance.New([]string{}, src),
		RespectGitignore: provenance.New(true, src),
		LineLength:       provenance.New(DefaultLineLength, src),
		Fixable:          provenance.New([]string{}, src),
		Unfixable:        provenance.New([]string{}, src),
		Flavor:           provenance.New(flavor.Standard, src),
		ForceExclude:     provenance.New(false, src),
		Cache:            provenance.New(true, src),
		ExtendEnable:     provenance.New([]string{}, src),
		ExtendDisable:    provenance.New([]string{}, src),
	}
}

// listField pairs a list setting with its key name and merge style.
type listField struct {
	key   string
	union bool
	get   func(*GlobalSettings) *provenance.Value[[]string]
}

var listFields = []listField{
	{"enable", false, func(g *GlobalSettings) *provenance.Value[[]string] { return &g.Enable }},
	{"disable", true, func(g *GlobalSettings) *provenance.Value[[]string] { return &g.Disable }},
	{"include", true, func(g *GlobalSettings) *provenance.Value[[]string] { return &g.Include }},
	{"exclude", true, func(g *GlobalSettings) *provenance.Value[[]string] { return &g.Exclude }},
	{"fixable", true, func(g *GlobalSettings) *provenance.Value[[]string] { return &g.Fixable }},
	{"unfixable", true, func(g *GlobalSettings) *provenance.Value[[]string] { return &g.Unfixable }},
	{"extend-enable", true, func(g *GlobalSettings) *provenance.Value[[]string] { return &g.ExtendEnable }},
	{"extend-disable", true, func(g *GlobalSettings) *provenance.Value[[]string] { return &g.ExtendDisable }},
}

// RuleSettings holds one rule section: an optional severity and option values
// keyed by normalized option name.
type RuleSettings struct {
	Severity provenance.Value[rules.Severity]
	Options  map[string]*provenance.Value[any]
}

func (g *GlobalSettings) clone() GlobalSettings {
	out := GlobalSettings{
		RespectGitignore: g.RespectGitignore.Clone(nil),
		LineLength:       g.LineLength.Clone(nil),
		OutputFormat:     g.OutputFormat.Clone(nil),
		Flavor:           g.Flavor.Clone(nil),
		ForceExclude:     g.ForceExclude.Clone(nil),
		CacheDir:         g.CacheDir.Clone(nil),
		Cache:            g.Cache.Clone(nil),
	}
	for _, lf := range listFields {
		*lf.get(&out) = lf.get(g).Clone(cloneList)
	}
	return out
}

// cloneList copies a list, keeping nil as nil.
func cloneList(s []string) []string {
	if s == nil {
		return nil
	}
	return clone(s)
}

func newRuleSettings() *RuleSettings {
	return &RuleSettings{Options: make(map[string]*provenance.Value[any])}
}

func (r *RuleSettings) setOption(key string, v any, src provenance.Source, origin provenance.Origin) {
	pv, ok := r.Options[key]
	if !ok {
		pv = &provenance.Value[any]{}
		r.Options[key] = pv
	}
	pv.MergeReplace(v, src, origin)
}

func (r *RuleSettings) clone() *RuleSettings {
	out := &RuleSettings{
		Severity: r.Severity.Clone(nil),
		Options:  make(map[string]*provenance.Value[any], len(r.Options)),
	}
	for key, v := range r.Options {
		c := v.Clone(nil)
		out.Options[key] = &c
	}
	return out
}

// FlavorPattern maps a path pattern to a dialect. Order matters: first match wins.
type FlavorPattern struct {
	Pattern string        `toml:"pattern" yaml:"pattern" json:"pattern"`
	Flavor  flavor.Flavor `toml:"flavor" yaml:"flavor" json:"flavor"`
}

// fileTables are the per-file and code-block tables shared by fragments and the loaded config.
type fileTables struct {
	PerFileIgnores provenance.Value[map[string][]string]
	PerFileFlavor  provenance.Value[[]FlavorPattern]
	CodeBlockTools provenance.Value[codeblock.Config]
}

func defaultFileTables() fileTables {
	src := provenance.SourceDefault
	return fileTables{
		PerFileIgnores: provenance.New(map[string][]string{}, src),
		PerFileFlavor:  provenance.New([]FlavorPattern{}, src),
		CodeBlockTools: provenance.New(codeblock.Default(), src),
	}
}

func (t *fileTables) clone() fileTables {
	return fileTables{
		PerFileIgnores: t.PerFileIgnores.Clone(cloneIgnores),
		PerFileFlavor:  t.PerFileFlavor.Clone(func(p []FlavorPattern) []FlavorPattern { return slices.Clone(p) }),
		CodeBlockTools: t.CodeBlockTools.Clone(codeblock.Config.Clone),
	}
}

func cloneIgnores(m map[string][]string) map[string][]string {
	if m == nil {
		return nil
	}
	out := make(map[string][]string, len(m))
	for pattern, ids := range m {
		out[pattern] = clone(ids)
	}
	return out
}
