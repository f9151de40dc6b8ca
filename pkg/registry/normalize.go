package registry

import "strings"

// NormalizeKey normalizes a rule id or option key. A five-character
// "mdNNN" id is uppercased; anything else becomes lowercase kebab-case.
func NormalizeKey(key string) string {
	if isRuleID(key) {
		return strings.ToUpper(key)
	}
	return strings.ToLower(strings.ReplaceAll(key, "_", "-"))
}

func isRuleID(key string) bool {
	if len(key) != 5 || !strings.EqualFold(key[:2], "md") {
		return false
	}
	for _, c := range key[2:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// keyVariants returns key, its kebab-case and snake_case spellings and its normalized form.
func keyVariants(key string) []string {
	return []string{
		key,
		strings.ReplaceAll(key, "_", "-"),
		strings.ReplaceAll(key, "-", "_"),
		NormalizeKey(key),
	}
}
