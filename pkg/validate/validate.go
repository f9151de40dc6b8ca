// Package validate checks merged configuration against the rule registry and
// reports advisory warnings. It never fails.
package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/mdlint/mdlint/pkg/registry"
)

// Warning is an advisory finding. Rule and Key are empty when not applicable.
type Warning struct {
	Message string
	Rule    string
	Key     string
}

func (w Warning) String() string {
	return w.Message
}

// UnknownKey is a key the parser did not recognize.
// An empty Key means the whole Section was unrecognized.
type UnknownKey struct {
	Section string
	Key     string
	File    string
}

// RuleList is one rule-name list setting, e.g. Field "enable".
type RuleList struct {
	Field string
	Names []string
}

// Input is the merged configuration in the shape the validator needs.
type Input struct {
	// Rules maps each rule section, already alias-resolved, to its option values.
	Rules       map[string]map[string]any
	UnknownKeys []UnknownKey
	RuleLists   []RuleList
}

// KnownGlobalKeys are the keys accepted in the global section.
var KnownGlobalKeys = []string{
	"enable",
	"disable",
	"extend-enable",
	"extend-disable",
	"include",
	"exclude",
	"respect-gitignore",
	"line-length",
	"fixable",
	"unfixable",
	"flavor",
	"force-exclude",
	"output-format",
	"cache-dir",
	"cache",
}

// Config validates in and returns warnings in a stable order: unknown rules,
// unknown options and type mismatches, unknown global keys, then rule lists.
func Config(in Input, reg *registry.Registry) []Warning {
	allNames := registry.AllRuleNames()
	var warnings []Warning

	sections := lo.Keys(in.Rules)
	sort.Strings(sections)

	for _, rule := range sections {
		if reg.HasRule(rule) {
			continue
		}
		msg := "Unknown rule in config: " + rule
		if s, ok := suggestRuleName(rule, allNames); ok {
			msg += fmt.Sprintf(" (did you mean: %s?)", s)
		}
		warnings = append(warnings, Warning{Message: msg, Rule: rule})
	}

	for _, rule := range sections {
		validKeys, ok := reg.ConfigKeysFor(rule)
		if !ok {
			continue
		}
		options := in.Rules[rule]
		keys := lo.Keys(options)
		sort.Strings(keys)

		for _, key := range keys {
			if !lo.Contains(validKeys, key) {
				msg := fmt.Sprintf("Unknown option for rule %s: %s", rule, key)
				if s, ok := SuggestSimilar(key, validKeys); ok {
					msg += fmt.Sprintf(" (did you mean: %s?)", s)
				}
				warnings = append(warnings, Warning{Message: msg, Rule: rule, Key: key})
				continue
			}

			expected, ok := reg.ExpectedValueFor(rule, key)
			if !ok {
				continue
			}
			if actual := options[key]; !typeMatches(expected, actual) {
				warnings = append(warnings, Warning{
					Message: fmt.Sprintf("Type mismatch for %s.%s: expected %s, got %s",
						rule, key, typeName(expected), typeName(actual)),
					Rule: rule,
					Key:  key,
				})
			}
		}
	}

	for _, uk := range in.UnknownKeys {
		if w, ok := unknownKeyWarning(uk, allNames); ok {
			warnings = append(warnings, w)
		}
	}

	for _, list := range in.RuleLists {
		warnings = append(warnings, ruleNameWarnings(list.Names, "global."+list.Field, allNames)...)
	}

	return warnings
}

func unknownKeyWarning(uk UnknownKey, allNames []string) (Warning, bool) {
	where := ""
	if uk.File != "" {
		where = " in " + DisplayPath(uk.File)
	}

	if isGlobalSection(uk.Section) {
		msg := fmt.Sprintf("Unknown global option%s: %s", where, uk.Key)
		if s, ok := SuggestSimilar(uk.Key, KnownGlobalKeys); ok {
			msg += fmt.Sprintf(" (did you mean: %s?)", s)
		}
		return Warning{Message: msg, Key: uk.Key}, true
	}

	// Unknown keys inside an unknown section are covered by the section warning.
	if uk.Key != "" {
		return Warning{}, false
	}

	rule := strings.Trim(uk.Section, "[]")
	if where == "" {
		where = " config"
	} else {
		where = strings.TrimPrefix(where, " in")
	}
	msg := fmt.Sprintf("Unknown rule in%s: %s", where, rule)
	if s, ok := suggestRuleName(rule, allNames); ok {
		msg += fmt.Sprintf(" (did you mean: %s?)", s)
	}
	return Warning{Message: msg}, true
}

func isGlobalSection(section string) bool {
	return strings.Contains(section, "[global]") || strings.Contains(section, "[tool.mdlint]")
}

func ruleNameWarnings(names []string, where string, allNames []string) []Warning {
	var warnings []Warning
	for _, name := range names {
		if registry.IsValidRuleName(name) {
			continue
		}
		msg := fmt.Sprintf("Unknown rule in %s: %s", where, name)
		if s, ok := suggestRuleName(name, allNames); ok {
			msg += fmt.Sprintf(" (did you mean: %s?)", s)
		}
		warnings = append(warnings, Warning{Message: msg, Rule: name})
	}
	return warnings
}

// CLIFlags holds raw comma-separated rule lists from command-line flags.
type CLIFlags struct {
	Enable        string
	Disable       string
	ExtendEnable  string
	ExtendDisable string
	Fixable       string
	Unfixable     string
}

// CLIRuleNames validates rule names given on the command line.
func CLIRuleNames(flags CLIFlags) []Warning {
	allNames := registry.AllRuleNames()
	var warnings []Warning
	for _, f := range []struct {
		flag  string
		value string
	}{
		{"--enable", flags.Enable},
		{"--disable", flags.Disable},
		{"--extend-enable", flags.ExtendEnable},
		{"--extend-disable", flags.ExtendDisable},
		{"--fixable", flags.Fixable},
		{"--unfixable", flags.Unfixable},
	} {
		names := lo.FilterMap(strings.Split(f.value, ","), func(s string, _ int) (string, bool) {
			s = strings.TrimSpace(s)
			return s, s != ""
		})
		warnings = append(warnings, ruleNameWarnings(names, f.flag, allNames)...)
	}
	return warnings
}

// DisplayPath shortens path to be relative to the working directory when it
// lies beneath it. Symlinks are resolved first; otherwise path is returned unchanged.
func DisplayPath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	if canonicalFile, err := canonicalize(path); err == nil {
		if canonicalCwd, err := canonicalize(cwd); err == nil {
			if rel, ok := relativeBelow(canonicalCwd, canonicalFile); ok {
				return rel
			}
		}
	}

	if rel, ok := relativeBelow(cwd, path); ok {
		return rel
	}
	return path
}

func relativeBelow(base, path string) (string, bool) {
	if !filepath.IsAbs(path) {
		return "", false
	}
	rel, err := filepath.Rel(base, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return rel, true
}

func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
