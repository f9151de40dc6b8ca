// Package registry holds the option schema of every rule and resolves rule
// names and aliases to canonical ids.
package registry

import (
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/mdlint/mdlint/pkg/rules"
)

// Registry maps canonical rule ids to their option schemas. It is read-only
// after construction and safe for concurrent use.
type Registry struct {
	schemas map[string]map[string]any
	aliases map[string]map[string]string
}

// New builds a Registry from a set of rules.
func New(rs []rules.Rule) *Registry {
	r := &Registry{
		schemas: make(map[string]map[string]any, len(rs)),
		aliases: make(map[string]map[string]string),
	}
	for _, rule := range rs {
		id := NormalizeKey(rule.Name())
		schema := rule.DefaultOptions()
		if schema == nil {
			schema = map[string]any{}
		}
		r.schemas[id] = schema
		if a := rule.OptionAliases(); len(a) > 0 {
			r.aliases[id] = a
		}
	}
	return r
}

// Default returns the registry for the built-in rule catalog, built on first use.
var Default = sync.OnceValue(func() *Registry {
	return New(rules.All())
})

// RuleNames returns the canonical ids in sorted order.
func (r *Registry) RuleNames() []string {
	names := make([]string, 0, len(r.schemas))
	for id := range r.schemas {
		names = append(names, id)
	}
	sort.Strings(names)
	return names
}

// HasRule reports whether id is a canonical id in this registry.
func (r *Registry) HasRule(id string) bool {
	_, ok := r.schemas[id]
	return ok
}

// ConfigKeysFor returns every accepted option key for rule, sorted. It always
// includes "severity" and each key and alias in all its spellings. The second
// result is false when rule is unknown.
func (r *Registry) ConfigKeysFor(rule string) ([]string, bool) {
	schema, ok := r.schemas[rule]
	if !ok {
		return nil, false
	}

	keys := map[string]struct{}{"severity": {}}
	for key := range schema {
		for _, v := range keyVariants(key) {
			keys[v] = struct{}{}
		}
	}
	for alias := range r.aliases[rule] {
		for _, v := range keyVariants(alias) {
			keys[v] = struct{}{}
		}
	}

	out := make([]string, 0, len(keys))
	for k := range keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out, true
}

// ExpectedValueFor returns the example value that defines the type of
// rule.key. Aliases are checked first in all their spellings, then the key,
// then its spellings. It returns false when the key is unknown or the option
// accepts any type.
func (r *Registry) ExpectedValueFor(rule, key string) (any, bool) {
	schema, ok := r.schemas[rule]
	if !ok {
		return nil, false
	}

	if canonical, ok := r.aliasTarget(rule, key); ok {
		for _, variant := range keyVariants(canonical) {
			if v, ok := schema[variant]; ok {
				return typed(v)
			}
		}
	}
	for _, variant := range keyVariants(key) {
		if v, ok := schema[variant]; ok {
			return typed(v)
		}
	}
	return nil, false
}

// aliasTarget returns the option an alias of rule points at when key is any
// spelling of that alias.
func (r *Registry) aliasTarget(rule, key string) (string, bool) {
	norm := NormalizeKey(key)
	for alias, canonical := range r.aliases[rule] {
		if lo.Contains(keyVariants(alias), key) || NormalizeKey(alias) == norm {
			return canonical, true
		}
	}
	return "", false
}

func typed(v any) (any, bool) {
	if rules.IsUnset(v) {
		return nil, false
	}
	return v, true
}

// ResolveRuleName resolves name to a canonical id, preferring ids present in
// this registry and falling back to the static alias table.
func (r *Registry) ResolveRuleName(name string) (string, bool) {
	if id := NormalizeKey(name); r.HasRule(id) {
		return id, true
	}
	return ResolveRuleNameAlias(name)
}
