// Package rules describes the lint rules mdlint ships, as far as
// configuration is concerned: their ids, option schemas and option aliases.
package rules

// Rule is the capability the configuration engine needs from a rule.
type Rule interface {
	// Name returns the canonical id, e.g. "MD013".
	Name() string
	// DefaultOptions returns option name to example value. Values are used
	// only to infer the expected type. Nil means the rule has no options.
	DefaultOptions() map[string]any
	// OptionAliases maps alternative option names to canonical ones.
	OptionAliases() map[string]string
}

type unset struct{}

// Unset marks an optional option whose default is absent. Keys holding
// Unset are valid but accept a value of any type.
var Unset any = unset{}

// IsUnset reports whether v is the Unset marker.
func IsUnset(v any) bool {
	_, ok := v.(unset)
	return ok
}

// Descriptor is a static Rule implementation.
type Descriptor struct {
	ID          string
	Alias       string
	Description string
	// OptIn rules only run when named by enable or extend-enable, or via "all".
	OptIn   bool
	Options map[string]any
	Aliases map[string]string
}

func (d Descriptor) Name() string { return d.ID }

func (d Descriptor) DefaultOptions() map[string]any {
	if d.Options == nil {
		return nil
	}
	out := make(map[string]any, len(d.Options))
	for k, v := range d.Options {
		out[k] = v
	}
	return out
}

func (d Descriptor) OptionAliases() map[string]string {
	return d.Aliases
}
