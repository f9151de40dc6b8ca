package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	errUtils "github.com/mdlint/mdlint/errors"
	"github.com/mdlint/mdlint/pkg/flavor"
	"github.com/mdlint/mdlint/pkg/provenance"
	"github.com/mdlint/mdlint/pkg/registry"
)

const exportSource = `
[global]
disable = ["MD041"]
line-length = 100
flavor = "mkdocs"

[ul-style]
style = "dash"

[MD007]
indent = 4
severity = "warning"

[per-file-ignores]
"docs/**" = ["MD013"]

[per-file-flavor]
"docs/**/*.md" = "mkdocs"
"**/*.md" = "quarto"
`

func TestExportTOMLRoundTrip(t *testing.T) {
	cfg, _ := resolve(t, exportSource)

	out, err := cfg.Export("toml")
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "[ul-style]", "display names are kept")
	assert.NotContains(t, text, "[MD004]")
	assert.NotContains(t, text, "code-block-tools")

	frag, err := ParseTOML(text, "exported.toml", provenance.SourceProjectConfig)
	require.NoError(t, err)
	assert.Equal(t, []string{"MD041"}, frag.Global.Disable.Get())
	assert.Equal(t, int64(100), frag.Global.LineLength.Get())
	assert.Equal(t, flavor.MkDocs, frag.Global.Flavor.Get())
	assert.Equal(t, "dash", frag.Rules["MD004"].Options["style"].Get())
	assert.Equal(t, int64(4), frag.Rules["MD007"].Options["indent"].Get())
	assert.Equal(t, "warning", string(frag.Rules["MD007"].Severity.Get()))
	assert.Equal(t, map[string][]string{"docs/**": {"MD013"}}, frag.PerFileIgnores.Get())
	assert.Equal(t, []FlavorPattern{
		{Pattern: "docs/**/*.md", Flavor: flavor.MkDocs},
		{Pattern: "**/*.md", Flavor: flavor.Quarto},
	}, frag.PerFileFlavor.Get(), "pattern order survives")
}

func TestExportReloadKeepsEnabledRules(t *testing.T) {
	available := registry.Default().RuleNames()

	tests := []struct {
		name   string
		source string
	}{
		{"no enable", "[global]\ndisable = [\"MD041\"]\n"},
		{"explicit enable", "[global]\nenable = [\"MD001\", \"MD013\"]\n"},
		{"explicit empty enable", "[global]\nenable = []\nextend-enable = [\"MD013\"]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, _ := resolve(t, tt.source)
			want := before.EnabledRules(available)
			require.NotEmpty(t, want)

			out, err := before.Export(FormatTOML)
			require.NoError(t, err)
			after, _ := resolve(t, string(out))
			assert.Equal(t, want, after.EnabledRules(available))
			assert.Equal(t, before.Global.EnableIsExplicit, after.Global.EnableIsExplicit)
		})
	}
}

func TestExportOmitsDefaultEnable(t *testing.T) {
	cfg, _ := resolve(t, "[global]\ndisable = [\"MD041\"]\n")

	for _, format := range []string{FormatYAML, FormatJSON} {
		out, err := cfg.Export(format)
		require.NoError(t, err)

		var doc map[string]any
		require.NoError(t, yaml.Unmarshal(out, &doc), format)
		global := doc["global"].(map[string]any)
		assert.NotContains(t, global, "enable", format)
		assert.Contains(t, global, "disable", format)
	}

	explicit, _ := resolve(t, "[global]\nenable = []\n")
	out, err := explicit.Export(FormatTOML)
	require.NoError(t, err)
	assert.Contains(t, string(out), "enable = []")
}

func TestExportYAML(t *testing.T) {
	cfg, _ := resolve(t, exportSource)

	out, err := cfg.Export("YAML")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(out, &doc))
	global, ok := doc["global"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 100, global["line-length"])
	assert.Equal(t, "mkdocs", global["flavor"])
	assert.Contains(t, doc, "ul-style")
}

func TestExportJSON(t *testing.T) {
	cfg, _ := resolve(t, exportSource)

	out, err := cfg.Export("json")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	global := doc["global"].(map[string]any)
	assert.Equal(t, float64(100), global["line-length"])
	assert.Equal(t, "mkdocs", global["flavor"])
	assert.Equal(t, map[string]any{"indent": float64(4), "severity": "warning"}, doc["MD007"])
}

func TestExportIncludesCustomCodeBlockTools(t *testing.T) {
	cfg, _ := resolve(t, "[code-block-tools]\nenabled = true\n")
	out, err := cfg.Export("toml")
	require.NoError(t, err)
	assert.Contains(t, string(out), "[code-block-tools]")
}

func TestExportUnknownFormat(t *testing.T) {
	cfg, _ := resolve(t, "")
	_, err := cfg.Export("xml")
	assert.ErrorIs(t, err, errUtils.ErrInvalidOutputFormat)
}
