package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdlint/mdlint/pkg/rules"
)

func TestEnabledRules(t *testing.T) {
	available := []string{"MD001", "MD003", "MD013", "MD060"}

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"defaults skip opt-in rules", "", []string{"MD001", "MD003", "MD013"}},
		{"disable", "[global]\ndisable = [\"MD013\"]\n", []string{"MD001", "MD003"}},
		{"enable restricts", "[global]\nenable = [\"MD001\"]\n", []string{"MD001"}},
		{"explicit empty enable", "[global]\nenable = []\n", []string{}},
		{"enable plus extend-enable", "[global]\nenable = [\"MD001\"]\nextend-enable = [\"MD060\"]\n", []string{"MD001", "MD060"}},
		{"extend-enable opts in", "[global]\nextend-enable = [\"table-format\"]\n", available},
		{"enable ALL", "[global]\nenable = [\"ALL\"]\n", available},
		{"extend-enable all", "[global]\nextend-enable = [\"all\"]\n", available},
		{"disable all", "[global]\ndisable = [\"all\"]\n", []string{}},
		{"disable all keeps enable", "[global]\nenable = [\"MD003\"]\ndisable = [\"all\"]\n", []string{"MD003"}},
		{"extend-disable", "[global]\nextend-disable = [\"MD003\"]\n", []string{"MD001", "MD013"}},
		{"extend-disable all", "[global]\nextend-disable = [\"all\"]\n", []string{}},
		{"enable wins over disable", "[global]\nenable = [\"MD001\", \"MD013\"]\ndisable = [\"MD013\"]\n", []string{"MD001", "MD013"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _ := resolve(t, tt.content)
			assert.Equal(t, tt.want, cfg.EnabledRules(available))
		})
	}
}

func TestEnableDisableConflict(t *testing.T) {
	cfg, _ := resolve(t, "[global]\nenable = [\"MD001\", \"MD001\"]\ndisable = [\"MD001\", \"MD003\"]\n")

	assert.Equal(t, []string{"MD001"}, cfg.Global.Enable)
	assert.Equal(t, []string{"MD003"}, cfg.Global.Disable)
	assert.True(t, cfg.Global.EnableIsExplicit)
}

func TestLineLengthPropagation(t *testing.T) {
	t.Run("global applies to MD013", func(t *testing.T) {
		cfg, _ := resolve(t, "[global]\nline-length = 120\n")
		v, ok := cfg.RuleOption("MD013", "line-length")
		require.True(t, ok)
		assert.Equal(t, int64(120), v)
	})

	t.Run("rule setting wins", func(t *testing.T) {
		cfg, _ := resolve(t, "[global]\nline-length = 120\n\n[MD013]\nline-length = 100\n")
		v, _ := cfg.RuleOption("MD013", "line-length")
		assert.Equal(t, int64(100), v)
	})

	t.Run("default is not propagated", func(t *testing.T) {
		cfg, _ := resolve(t, "")
		_, ok := cfg.RuleOption("MD013", "line-length")
		assert.False(t, ok)
	})
}

func TestRuleOption(t *testing.T) {
	cfg, _ := resolve(t, "[MD013]\nline_length = 100\ncode-blocks = false\n")

	tests := []struct {
		rule, key string
		want      any
		ok        bool
	}{
		{"MD013", "line-length", int64(100), true},
		{"md013", "line_length", int64(100), true},
		{"MD013", "LINE_LENGTH", int64(100), true},
		{"MD013", "code_blocks", false, true},
		{"MD013", "tables", nil, false},
		{"MD999", "line-length", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.rule+"."+tt.key, func(t *testing.T) {
			v, ok := cfg.RuleOption(tt.rule, tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestRuleSeverity(t *testing.T) {
	cfg, _ := resolve(t, "[MD013]\nseverity = \"info\"\n\n[MD001]\nlevel = 1\n")

	sev, ok := cfg.RuleSeverity("md013")
	require.True(t, ok)
	assert.Equal(t, rules.SeverityInfo, sev)

	_, ok = cfg.RuleSeverity("MD001")
	assert.False(t, ok)
}

func TestWithRuleOverrides(t *testing.T) {
	cfg, _ := resolve(t, "[MD013]\nline-length = 100\ntables = true\n")

	out := cfg.WithRuleOverrides(map[string]map[string]any{
		"line-length":    {"line_length": int64(120), "tables": nil},
		"no-inline-html": {"allowed_elements": []any{"br"}},
	})

	assert.Equal(t, int64(120), out.Rules["MD013"].Values["line-length"])
	assert.Equal(t, true, out.Rules["MD013"].Values["tables"])
	assert.Equal(t, []any{"br"}, out.Rules["MD033"].Values["allowed-elements"])

	assert.Equal(t, int64(100), cfg.Rules["MD013"].Values["line-length"], "the original is unchanged")
	assert.NotContains(t, cfg.Rules, "MD033")
}

func TestIsFixable(t *testing.T) {
	cfg, _ := resolve(t, "[global]\nfixable = [\"MD001\", \"MD013\"]\nunfixable = [\"line-length\"]\n")
	assert.True(t, cfg.IsFixable("MD001"))
	assert.False(t, cfg.IsFixable("MD013"))
	assert.False(t, cfg.IsFixable("MD003"))

	open, _ := resolve(t, "")
	assert.True(t, open.IsFixable("MD003"))

	none, _ := resolve(t, "[global]\nunfixable = [\"ALL\"]\n")
	assert.False(t, none.IsFixable("MD001"))
}

func TestIncludeExclude(t *testing.T) {
	cfg, _ := resolve(t, "[global]\nexclude = [\"vendor\", \"*.tmp.md\"]\ninclude = [\"docs/**/*.md\", \"README.md\"]\n")

	assert.True(t, cfg.IsExcluded("vendor/lib/README.md"))
	assert.True(t, cfg.IsExcluded("notes.tmp.md"))
	assert.False(t, cfg.IsExcluded("docs/guide.md"))

	assert.True(t, cfg.IsIncluded("docs/a/b.md"))
	assert.True(t, cfg.IsIncluded("README.md"))
	assert.False(t, cfg.IsIncluded("src/notes.md"))

	all, _ := resolve(t, "")
	assert.True(t, all.IsIncluded("anything.md"))
	assert.False(t, all.IsExcluded("anything.md"))
}

func TestConfigurationRuleIDs(t *testing.T) {
	cfg, _ := resolve(t, "[MD013]\ntables = true\n\n[MD001]\n")
	assert.Equal(t, []string{"MD001", "MD013"}, cfg.RuleIDs())
}
