package config

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdlint/mdlint/pkg/flavor"
	"github.com/mdlint/mdlint/pkg/registry"
)

func TestIgnoredRulesForFile(t *testing.T) {
	cfg, _ := resolve(t, `
[per-file-ignores]
"docs/**" = ["line-length"]
"README.md" = ["MD033", "MD041"]
"*.md" = ["MD041", "md013"]
`)

	tests := []struct {
		path string
		want []string
	}{
		{"docs/guide/intro.md", []string{"MD013", "MD041"}},
		{"README.md", []string{"MD013", "MD033", "MD041"}},
		{"src/lib.rs", nil},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.IgnoredRulesForFile(tt.path))
		})
	}
}

func TestIgnoredRulesForFileEmptyTable(t *testing.T) {
	cfg, _ := resolve(t, "")
	assert.Nil(t, cfg.IgnoredRulesForFile("README.md"))
}

func TestIgnoredRulesForFileInvalidPattern(t *testing.T) {
	cfg, _ := resolve(t, "[per-file-ignores]\n\"[\" = [\"MD013\"]\n\"*.md\" = [\"MD033\"]\n")
	assert.Equal(t, []string{"MD033"}, cfg.IgnoredRulesForFile("a.md"))
}

func TestIgnoredRulesForFileAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".mdlint.toml", "[per-file-ignores]\n\"docs/**\" = [\"MD013\"]\n")
	doc := writeFile(t, dir, "docs/page.md", "# Page\n")

	loaded, err := Load(Options{ConfigPath: path})
	require.NoError(t, err)
	validated, err := loaded.Validate(registry.Default())
	require.NoError(t, err)
	cfg := validated.Configuration()

	assert.Equal(t, []string{"MD013"}, cfg.IgnoredRulesForFile(doc))
	assert.Equal(t, []string{"MD013"}, cfg.IgnoredRulesForFile(filepath.Join("docs", "page.md")))
}

func TestFlavorForFile(t *testing.T) {
	cfg, _ := resolve(t, `
[per-file-flavor]
"docs/**/*.md" = "mkdocs"
"**/*.md" = "quarto"
`)

	assert.Equal(t, flavor.MkDocs, cfg.FlavorForFile("docs/api/index.md"), "first match wins")
	assert.Equal(t, flavor.Quarto, cfg.FlavorForFile("notes/todo.md"))
	assert.Equal(t, flavor.MDX, cfg.FlavorForFile("components/button.mdx"), "falls back to the extension")
}

func TestFlavorForFileFallbacks(t *testing.T) {
	t.Run("global flavor", func(t *testing.T) {
		cfg, _ := resolve(t, "[global]\nflavor = \"obsidian\"\n")
		assert.Equal(t, flavor.Obsidian, cfg.FlavorForFile("page.mdx"))
	})

	t.Run("extension", func(t *testing.T) {
		cfg, _ := resolve(t, "")
		assert.Equal(t, flavor.Quarto, cfg.FlavorForFile("report.qmd"))
		assert.Equal(t, flavor.Standard, cfg.FlavorForFile("README.md"))
	})
}

func TestPerFileCachesConcurrent(t *testing.T) {
	cfg, _ := resolve(t, "[per-file-ignores]\n\"*.md\" = [\"MD013\"]\n\n[per-file-flavor]\n\"*.md\" = \"mkdocs\"\n")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, []string{"MD013"}, cfg.IgnoredRulesForFile("a.md"))
			assert.Equal(t, flavor.MkDocs, cfg.FlavorForFile("a.md"))
		}()
	}
	wg.Wait()
}
