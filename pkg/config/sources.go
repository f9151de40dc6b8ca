package config

import (
	"sort"

	"github.com/samber/lo"

	"github.com/mdlint/mdlint/pkg/provenance"
	"github.com/mdlint/mdlint/pkg/validate"
)

// Entry is one setting with the source that decided it, as shown by
// `config show --sources`.
type Entry struct {
	Section string
	Key     string
	Value   any
	Source  string
}

// Describe lists every setting in display order: global keys, the per-file
// tables, then rule options by rule id.
func (s *Sourced) Describe() []Entry {
	g := &s.Global
	out := []Entry{
		describe(globalSection, "enable", g.Enable),
		describe(globalSection, "disable", g.Disable),
		describe(globalSection, "extend-enable", g.ExtendEnable),
		describe(globalSection, "extend-disable", g.ExtendDisable),
		describe(globalSection, "include", g.Include),
		describe(globalSection, "exclude", g.Exclude),
		describe(globalSection, "respect-gitignore", g.RespectGitignore),
		describe(globalSection, "line-length", g.LineLength),
		describe(globalSection, "fixable", g.Fixable),
		describe(globalSection, "unfixable", g.Unfixable),
		describe(globalSection, "flavor", g.Flavor),
		describe(globalSection, "cache", g.Cache),
	}
	if g.OutputFormat.IsSet() {
		out = append(out, describe(globalSection, "output-format", g.OutputFormat))
	}
	if g.CacheDir.IsSet() {
		out = append(out, describe(globalSection, "cache-dir", g.CacheDir))
	}
	out = append(out,
		describe("[per-file-ignores]", "", s.PerFileIgnores),
		describe("[per-file-flavor]", "", s.PerFileFlavor),
		describe("[code-block-tools]", "", s.CodeBlockTools),
	)

	for _, id := range s.RuleIDs() {
		rs := s.Rules[id]
		section := "[" + id + "]"
		if rs.Severity.IsSet() {
			out = append(out, describe(section, "severity", rs.Severity))
		}
		for _, key := range sortedKeys(rs.Options) {
			out = append(out, describe(section, key, *rs.Options[key]))
		}
	}
	return out
}

func describe[T any](section, key string, pv provenance.Value[T]) Entry {
	return Entry{Section: section, Key: key, Value: pv.Get(), Source: sourceOf(pv)}
}

func sourceOf[T any](pv provenance.Value[T]) string {
	last, ok := pv.Last()
	if !ok {
		return provenance.SourceDefault.String()
	}
	if last.File != "" {
		return last.Source.String() + " (" + validate.DisplayPath(last.File) + ")"
	}
	return last.Source.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}
