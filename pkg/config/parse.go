package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/samber/lo"

	errUtils "github.com/mdlint/mdlint/errors"
	"github.com/mdlint/mdlint/pkg/codeblock"
	"github.com/mdlint/mdlint/pkg/filematch"
	"github.com/mdlint/mdlint/pkg/flavor"
	log "github.com/mdlint/mdlint/pkg/logger"
	"github.com/mdlint/mdlint/pkg/provenance"
	"github.com/mdlint/mdlint/pkg/registry"
	"github.com/mdlint/mdlint/pkg/rules"
	"github.com/mdlint/mdlint/pkg/validate"
)

// ParseFile reads path and parses it as a pyproject.toml or a plain mdlint
// TOML file depending on its name. The bool is false for a pyproject.toml
// without a [tool.mdlint] table.
func ParseFile(path string, src provenance.Source) (*Fragment, bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, false, &errUtils.IOError{Path: path, Err: err}
	}
	if isPyproject(path) {
		return ParsePyproject(string(content), path, src)
	}
	frag, err := ParseTOML(string(content), path, src)
	return frag, err == nil, err
}

func isPyproject(path string) bool {
	return filepath.Base(path) == PyprojectFileName
}

// ParseTOML parses an mdlint TOML document.
func ParseTOML(content, path string, src provenance.Source) (*Fragment, error) {
	var raw map[string]any
	md, err := toml.Decode(content, &raw)
	if err != nil {
		return nil, &errUtils.ParseError{Path: path, Message: err.Error()}
	}
	p := newParser(md, path, src)
	if err := p.parseRoot(raw, nil, globalSection); err != nil {
		return nil, err
	}
	return p.frag, nil
}

// ParsePyproject parses the [tool.mdlint] table of a pyproject.toml.
func ParsePyproject(content, path string, src provenance.Source) (*Fragment, bool, error) {
	var raw map[string]any
	md, err := toml.Decode(content, &raw)
	if err != nil {
		return nil, false, &errUtils.ParseError{Path: path, Message: err.Error()}
	}
	tool, ok := raw["tool"].(map[string]any)
	if !ok {
		return nil, false, nil
	}
	table, ok := tool[ToolName].(map[string]any)
	if !ok {
		return nil, false, nil
	}
	p := newParser(md, path, src)
	if err := p.parseRoot(table, []string{"tool", ToolName}, pyprojectSection); err != nil {
		return nil, false, err
	}
	return p.frag, true, nil
}

type parser struct {
	md   toml.MetaData
	path string
	src  provenance.Source
	frag *Fragment
}

func newParser(md toml.MetaData, path string, src provenance.Source) *parser {
	return &parser{md: md, path: path, src: src, frag: NewFragment(src, path)}
}

// orderedKeys returns the keys of table, found at prefix, in document order.
// Duplicate spellings of one setting therefore resolve last-write-wins.
func (p *parser) orderedKeys(prefix []string, table map[string]any) []string {
	seen := make(map[string]bool, len(table))
	out := make([]string, 0, len(table))
	for _, k := range p.md.Keys() {
		if len(k) != len(prefix)+1 || !equalPrefix(k, prefix) {
			continue
		}
		name := k[len(prefix)]
		if _, ok := table[name]; ok && !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	rest := lo.Filter(lo.Keys(table), func(k string, _ int) bool { return !seen[k] })
	sort.Strings(rest)
	return append(out, rest...)
}

func equalPrefix(k toml.Key, prefix []string) bool {
	for i, part := range prefix {
		if k[i] != part {
			return false
		}
	}
	return true
}

func child(prefix []string, key string) []string {
	out := make([]string, len(prefix), len(prefix)+1)
	copy(out, prefix)
	return append(out, key)
}

func (p *parser) parseRoot(root map[string]any, prefix []string, section string) error {
	for _, key := range p.orderedKeys(prefix, root) {
		val := root[key]
		path := child(prefix, key)

		var err error
		switch registry.NormalizeKey(key) {
		case "extends":
			s, ok := val.(string)
			if !ok {
				return p.typeError(key, "string", val)
			}
			p.frag.Extends = s
		case "global":
			table, ok := val.(map[string]any)
			if !ok {
				return p.typeError(key, "table", val)
			}
			err = p.parseGlobal(table, path, section)
		case "per-file-ignores":
			err = p.parsePerFileIgnores(key, val)
		case "per-file-flavor":
			err = p.parsePerFileFlavor(key, val, path)
		case "code-block-tools":
			err = p.parseCodeBlockTools(key, val)
		default:
			if table, ok := val.(map[string]any); ok {
				p.parseRuleSection(key, table, path)
			} else {
				err = p.parseGlobalKey(key, val, section)
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) parseGlobal(table map[string]any, prefix []string, section string) error {
	for _, key := range p.orderedKeys(prefix, table) {
		if err := p.parseGlobalKey(key, table[key], section); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) parseGlobalKey(key string, val any, section string) error {
	g := &p.frag.Global
	origin := p.frag.origin()
	norm := registry.NormalizeKey(key)

	if lf, ok := lo.Find(listFields, func(lf listField) bool { return lf.key == norm }); ok {
		list, ok := stringList(val)
		if !ok {
			return p.typeError(key, "array of strings", val)
		}
		if lo.Contains(ruleListKeys, norm) {
			list = canonicalRuleNames(list)
		}
		lf.get(g).MergeReplace(list, p.src, origin)
		return nil
	}

	switch norm {
	case "respect-gitignore", "force-exclude", "cache":
		b, ok := val.(bool)
		if !ok {
			return p.typeError(key, "boolean", val)
		}
		switch norm {
		case "respect-gitignore":
			g.RespectGitignore.MergeReplace(b, p.src, origin)
		case "force-exclude":
			log.Warn("force-exclude is deprecated and has no effect; exclude patterns always apply", "file", p.path)
			g.ForceExclude.MergeReplace(b, p.src, origin)
		default:
			g.Cache.MergeReplace(b, p.src, origin)
		}
	case "line-length":
		n, ok := val.(int64)
		if !ok || n < 0 {
			return p.typeError(key, "non-negative integer", val)
		}
		g.LineLength.MergeReplace(n, p.src, origin)
	case "output-format", "cache-dir":
		s, ok := val.(string)
		if !ok {
			return p.typeError(key, "string", val)
		}
		if norm == "output-format" {
			g.OutputFormat.MergeReplace(s, p.src, origin)
		} else {
			g.CacheDir.MergeReplace(s, p.src, origin)
		}
	case "flavor":
		s, ok := val.(string)
		if !ok {
			return p.typeError(key, "string", val)
		}
		fl, err := flavor.Parse(s)
		if err != nil {
			return &errUtils.ParseError{Path: p.path, Message: err.Error()}
		}
		g.Flavor.MergeReplace(fl, p.src, origin)
	default:
		p.frag.UnknownKeys = append(p.frag.UnknownKeys, validate.UnknownKey{Section: section, Key: key, File: p.path})
	}
	return nil
}

func (p *parser) parseRuleSection(name string, table map[string]any, prefix []string) {
	id, ok := registry.ResolveRuleNameAlias(name)
	if !ok {
		p.frag.UnknownKeys = append(p.frag.UnknownKeys, validate.UnknownKey{Section: "[" + name + "]", File: p.path})
		return
	}
	if registry.NormalizeKey(name) != id {
		p.frag.DisplayNames[id] = name
	}

	rs := p.frag.rule(id)
	for _, key := range p.orderedKeys(prefix, table) {
		val := table[key]
		// Nested tables inside a rule section are not supported.
		if _, nested := val.(map[string]any); nested {
			continue
		}
		norm := registry.NormalizeKey(key)
		if norm == "severity" {
			s, _ := val.(string)
			sev, err := rules.ParseSeverity(s)
			if err != nil {
				log.Warn("Ignoring invalid severity", "rule", id, "value", val, "file", p.path)
				continue
			}
			rs.Severity.MergeReplace(sev, p.src, p.frag.origin())
			continue
		}
		rs.setOption(norm, val, p.src, p.frag.origin())
	}
}

func (p *parser) parsePerFileIgnores(key string, val any) error {
	table, ok := val.(map[string]any)
	if !ok {
		return p.typeError(key, "table", val)
	}
	out := make(map[string][]string, len(table))
	for pattern, v := range table {
		list, ok := stringList(v)
		if !ok {
			if s, isString := v.(string); isString {
				list = []string{s}
			} else {
				return p.typeError(key+"."+pattern, "array of strings", v)
			}
		}
		warnCommaPattern(key, pattern, p.path)
		out[pattern] = list
	}
	p.frag.PerFileIgnores.MergeReplace(out, p.src, p.frag.origin())
	return nil
}

func (p *parser) parsePerFileFlavor(key string, val any, prefix []string) error {
	table, ok := val.(map[string]any)
	if !ok {
		return p.typeError(key, "table", val)
	}
	out := make([]FlavorPattern, 0, len(table))
	for _, pattern := range p.orderedKeys(prefix, table) {
		s, ok := table[pattern].(string)
		if !ok {
			return p.typeError(key+"."+pattern, "string", table[pattern])
		}
		fl, err := flavor.Parse(s)
		if err != nil {
			return &errUtils.ParseError{Path: p.path, Message: err.Error()}
		}
		warnCommaPattern(key, pattern, p.path)
		out = append(out, FlavorPattern{Pattern: pattern, Flavor: fl})
	}
	p.frag.PerFileFlavor.MergeReplace(out, p.src, p.frag.origin())
	return nil
}

func (p *parser) parseCodeBlockTools(key string, val any) error {
	table, ok := val.(map[string]any)
	if !ok {
		return p.typeError(key, "table", val)
	}
	cfg, err := codeblock.Decode(table)
	if err != nil {
		return &errUtils.ParseError{Path: p.path, Message: err.Error()}
	}
	p.frag.CodeBlockTools.MergeReplace(cfg, p.src, p.frag.origin())
	return nil
}

func (p *parser) typeError(key, want string, got any) error {
	return &errUtils.ParseError{
		Path:    p.path,
		Message: fmt.Sprintf("invalid type for %s: expected %s, got %s", key, want, tomlTypeName(got)),
	}
}

func warnCommaPattern(table, pattern, file string) {
	if filematch.HasCommaWithoutBrace(pattern) {
		log.Warn("Pattern contains a comma but no braces; use brace expansion to match several files",
			"table", table, "pattern", pattern, "suggestion", "{"+pattern+"}", "file", file)
	}
}

func stringList(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// canonicalRuleNames maps known rule names and aliases to canonical ids. The
// "all" keyword and unknown names are kept as written so validation can report them.
func canonicalRuleNames(names []string) []string {
	return lo.Map(names, func(name string, _ int) string {
		name = strings.TrimSpace(name)
		if strings.EqualFold(name, "all") {
			return name
		}
		if id, ok := registry.ResolveRuleNameAlias(name); ok {
			return id
		}
		return name
	})
}

func tomlTypeName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case int64:
		return "integer"
	case float64:
		return "float"
	case bool:
		return "boolean"
	case time.Time:
		return "datetime"
	case []any, []map[string]any:
		return "array"
	case map[string]any:
		return "table"
	default:
		return fmt.Sprintf("%T", v)
	}
}
