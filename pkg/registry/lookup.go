package registry

import (
	"strings"

	"github.com/samber/lo"
)

var aliasIndex = func() map[string]string {
	m := make(map[string]string, len(aliasTable))
	for _, e := range aliasTable {
		m[e.name] = e.id
	}
	return m
}()

// ResolveRuleNameAlias resolves a canonical id or alias, in any case and with
// either separator, to the canonical id. It does not depend on which rules are loaded.
func ResolveRuleNameAlias(name string) (string, bool) {
	id, ok := aliasIndex[strings.ReplaceAll(strings.ToUpper(name), "_", "-")]
	return id, ok
}

// ResolveRuleNameOrNormalize resolves name to its canonical id, falling back
// to NormalizeKey for names the alias table does not know.
func ResolveRuleNameOrNormalize(name string) string {
	if id, ok := ResolveRuleNameAlias(name); ok {
		return id
	}
	return NormalizeKey(name)
}

// ResolveRuleNames resolves a comma-separated list such as
// "MD001,line-length". Blank entries are dropped and duplicates removed.
func ResolveRuleNames(input string) []string {
	parts := lo.FilterMap(strings.Split(input, ","), func(s string, _ int) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	})
	return lo.Uniq(lo.Map(parts, func(s string, _ int) string {
		return ResolveRuleNameOrNormalize(s)
	}))
}

// IsValidRuleName reports whether name is "all" (any case) or resolves through the alias table.
func IsValidRuleName(name string) bool {
	if strings.EqualFold(name, "all") {
		return true
	}
	_, ok := ResolveRuleNameAlias(name)
	return ok
}

// AllRuleNames returns every name in the alias table, in table order.
func AllRuleNames() []string {
	return lo.Map(aliasTable[:], func(e aliasEntry, _ int) string { return e.name })
}
