package config

import (
	"strings"

	"github.com/mdlint/mdlint/pkg/provenance"
	"github.com/mdlint/mdlint/pkg/validate"
)

// Fragment is what one source contributes. Only fields the source actually
// wrote are set; everything else is the zero provenance.Value.
type Fragment struct {
	// Extends points at a parent config. It is consumed while loading.
	Extends string
	Source  provenance.Source
	File    string

	Global GlobalSettings
	fileTables
	Rules map[string]*RuleSettings

	UnknownKeys []validate.UnknownKey
	// DisplayNames maps canonical ids to the name the source used for the section.
	DisplayNames map[string]string

	files []string
}

// NewFragment returns an empty fragment for src.
func NewFragment(src provenance.Source, file string) *Fragment {
	f := &Fragment{
		Source:       src,
		File:         file,
		Rules:        make(map[string]*RuleSettings),
		DisplayNames: make(map[string]string),
	}
	if file != "" {
		f.files = []string{file}
	}
	return f
}

// Files lists the config files read to build the fragment.
func (f *Fragment) Files() []string {
	return append([]string(nil), f.files...)
}

func (f *Fragment) rule(id string) *RuleSettings {
	rs, ok := f.Rules[id]
	if !ok {
		rs = newRuleSettings()
		f.Rules[id] = rs
	}
	return rs
}

func (f *Fragment) origin() provenance.Origin {
	return provenance.Origin{File: f.File}
}

// overlay applies child on top of f, as when child extends f. Settings the
// child writes replace the parent's, except extend-enable and extend-disable
// which accumulate. Rule options overlay per key.
func (f *Fragment) overlay(child *Fragment) {
	mergeGlobal(&f.Global, &child.Global, func(lf listField) bool {
		return strings.HasPrefix(lf.key, "extend-")
	})
	mergeTables(&f.fileTables, &child.fileTables)
	mergeRules(f.Rules, child.Rules)

	f.UnknownKeys = append(f.UnknownKeys, child.UnknownKeys...)
	for id, name := range child.DisplayNames {
		f.DisplayNames[id] = name
	}
	f.files = append(append([]string(nil), child.files...), f.files...)
	f.File = child.File
	f.Extends = ""
}

func originOf[T any](o provenance.Override[T]) provenance.Origin {
	return provenance.Origin{File: o.File, Line: o.Line}
}

// replaceFrom merges the current value of src into dst when src was written.
func replaceFrom[T any](dst, src *provenance.Value[T]) {
	last, ok := src.Last()
	if !ok {
		return
	}
	dst.MergeReplace(src.Get(), last.Source, originOf(last))
}

func unionFrom(dst, src *provenance.Value[[]string]) {
	last, ok := src.Last()
	if !ok {
		return
	}
	provenance.MergeUnion(dst, src.Get(), last.Source, originOf(last))
}

// mergeGlobal merges every written field of src into dst. union decides
// which list fields combine instead of replacing.
func mergeGlobal(dst, src *GlobalSettings, union func(listField) bool) {
	for _, lf := range listFields {
		if union(lf) {
			unionFrom(lf.get(dst), lf.get(src))
		} else {
			replaceFrom(lf.get(dst), lf.get(src))
		}
	}
	replaceFrom(&dst.RespectGitignore, &src.RespectGitignore)
	replaceFrom(&dst.LineLength, &src.LineLength)
	replaceFrom(&dst.OutputFormat, &src.OutputFormat)
	replaceFrom(&dst.Flavor, &src.Flavor)
	replaceFrom(&dst.ForceExclude, &src.ForceExclude)
	replaceFrom(&dst.CacheDir, &src.CacheDir)
	replaceFrom(&dst.Cache, &src.Cache)
}

func mergeTables(dst, src *fileTables) {
	replaceFrom(&dst.PerFileIgnores, &src.PerFileIgnores)
	replaceFrom(&dst.PerFileFlavor, &src.PerFileFlavor)
	replaceFrom(&dst.CodeBlockTools, &src.CodeBlockTools)
}

func mergeRules(dst, src map[string]*RuleSettings) {
	for id, in := range src {
		out, ok := dst[id]
		if !ok {
			out = newRuleSettings()
			dst[id] = out
		}
		replaceFrom(&out.Severity, &in.Severity)
		for key, v := range in.Options {
			pv, ok := out.Options[key]
			if !ok {
				pv = &provenance.Value[any]{}
				out.Options[key] = pv
			}
			replaceFrom(pv, v)
		}
	}
}
