package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdlint/mdlint/pkg/rules"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"md013", "MD013"},
		{"Md001", "MD001"},
		{"MD013", "MD013"},
		{"line_length", "line-length"},
		{"Line-Length", "line-length"},
		{"md01", "md01"},
		{"mdabc", "mdabc"},
		{"MD0133", "md0133"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeKey(tt.input))
		})
	}
}

func TestResolveRuleNameAlias(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"line-length", "MD013", true},
		{"LINE_LENGTH", "MD013", true},
		{"Line_Length", "MD013", true},
		{"md013", "MD013", true},
		{"single-h1", "MD025", true},
		{"first-line-h1", "MD041", true},
		{"table-cell-alignment", "MD060", true},
		{"MD002", "", false},
		{"not-a-rule", "", false},
		{"all", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ResolveRuleNameAlias(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveRuleNameOrNormalize(t *testing.T) {
	assert.Equal(t, "MD001", ResolveRuleNameOrNormalize("heading-increment"))
	assert.Equal(t, "MD001", ResolveRuleNameOrNormalize("HEADING_INCREMENT"))
	assert.Equal(t, "MD999", ResolveRuleNameOrNormalize("md999"))
	assert.Equal(t, "custom-rule", ResolveRuleNameOrNormalize("Custom_Rule"))
}

func TestResolveRuleNames(t *testing.T) {
	got := ResolveRuleNames("MD001, line-length,,heading-increment , ")
	assert.ElementsMatch(t, []string{"MD001", "MD013"}, got)
	assert.Empty(t, ResolveRuleNames(" , "))
}

func TestIsValidRuleName(t *testing.T) {
	for _, name := range []string{"all", "ALL", "All", "MD013", "line-length", "no_bare_urls"} {
		assert.True(t, IsValidRuleName(name), name)
	}
	for _, name := range []string{"MD999", "line-lenght", ""} {
		assert.False(t, IsValidRuleName(name), name)
	}
}

func TestAliasTableCoversCatalog(t *testing.T) {
	for _, rule := range rules.All() {
		d := rule.(rules.Descriptor)
		id, ok := ResolveRuleNameAlias(d.ID)
		require.True(t, ok, d.ID)
		assert.Equal(t, d.ID, id)

		id, ok = ResolveRuleNameAlias(d.Alias)
		require.True(t, ok, d.Alias)
		assert.Equal(t, d.ID, id, d.Alias)
	}
	assert.Len(t, AllRuleNames(), len(aliasTable))
}

func TestRegistry_ConfigKeysFor(t *testing.T) {
	reg := Default()

	keys, ok := reg.ConfigKeysFor("MD013")
	require.True(t, ok)
	assert.Contains(t, keys, "severity")
	assert.Contains(t, keys, "line-length")
	assert.Contains(t, keys, "line_length")
	assert.Contains(t, keys, "enable_reflow")
	assert.Contains(t, keys, "enable-reflow")
	assert.IsIncreasing(t, keys)

	keys, ok = reg.ConfigKeysFor("MD001")
	require.True(t, ok)
	assert.Equal(t, []string{"severity"}, keys)

	_, ok = reg.ConfigKeysFor("MD999")
	assert.False(t, ok)
}

func TestRegistry_ExpectedValueFor(t *testing.T) {
	reg := Default()

	tests := []struct {
		name   string
		rule   string
		key    string
		want   any
		wantOK bool
	}{
		{"canonical key", "MD013", "line-length", int64(80), true},
		{"snake case", "MD013", "line_length", int64(80), true},
		{"upper case", "MD013", "LINE_LENGTH", int64(80), true},
		{"alias", "MD013", "enable_reflow", false, true},
		{"alias kebab", "MD013", "enable-reflow", false, true},
		{"alias upper case", "MD013", "ENABLE_REFLOW", false, true},
		{"nullable sentinel", "MD013", "heading-line-length", nil, false},
		{"unknown key", "MD013", "nope", nil, false},
		{"unknown rule", "MD999", "line-length", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := reg.ExpectedValueFor(tt.rule, tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

type stubRule struct {
	name    string
	options map[string]any
	aliases map[string]string
}

func (s stubRule) Name() string                     { return s.name }
func (s stubRule) DefaultOptions() map[string]any   { return s.options }
func (s stubRule) OptionAliases() map[string]string { return s.aliases }

func TestNew_NormalizesIDs(t *testing.T) {
	reg := New([]rules.Rule{
		stubRule{name: "md100", options: map[string]any{"max": int64(3)}},
		stubRule{name: "Custom_Rule"},
	})

	assert.Equal(t, []string{"MD100", "custom-rule"}, reg.RuleNames())
	assert.True(t, reg.HasRule("MD100"))

	id, ok := reg.ResolveRuleName("md100")
	require.True(t, ok)
	assert.Equal(t, "MD100", id)

	id, ok = reg.ResolveRuleName("line-length")
	require.True(t, ok)
	assert.Equal(t, "MD013", id, "static table still resolves rules missing from the registry")
}

func TestDefault_ConcurrentInit(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]*Registry, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Default()
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Same(t, results[0], r)
	}
	assert.Len(t, results[0].RuleNames(), 71)
}
