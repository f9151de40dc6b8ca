package config

import (
	"os"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	errUtils "github.com/mdlint/mdlint/errors"
	"github.com/mdlint/mdlint/pkg/filesystem"
)

// PresetNames lists the presets accepted by CreatePresetConfig.
var PresetNames = []string{"default", "google", "relaxed"}

const defaultPreset = `# mdlint configuration file

# Inherit settings from another config file (relative to this file's directory)
# extends = "../base.mdlint.toml"

[global]
# Rules to disable
# disable = ["MD013", "MD033"]

# Rules to enable exclusively (replaces the default set)
# enable = ["MD001", "MD003", "MD004"]

# Rules to add on top of the defaults, e.g. opt-in rules MD060, MD063, MD072, MD073, MD074
# extend-enable = ["MD060", "MD063"]

# Rules to add to the disable list
# extend-disable = ["MD041"]

# Only lint files matching these patterns
# include = ["docs/*.md", "src/**/*.md", "README.md"]

exclude = [
    ".git",
    ".github",
    "node_modules",
    "vendor",
    "dist",
    "build",
    "CHANGELOG.md",
    "LICENSE.md",
]

respect-gitignore = true

# Markdown flavor: standard (default), gfm, commonmark, mkdocs, mdx, quarto, obsidian, kramdown
# flavor = "mkdocs"

# [MD003]
# style = "atx"

# [MD004]
# style = "asterisk"

# [MD007]
# indent = 4

# [MD013]
# line-length = 100
# code-blocks = false
# tables = false
# headings = true

# [MD044]
# names = ["mdlint", "Markdown", "GitHub"]
# code-blocks = false
`

const googlePreset = `# mdlint configuration - Google developer documentation style
# https://google.github.io/styleguide/docguide/style.html

[global]
exclude = [
    ".git",
    ".github",
    "node_modules",
    "vendor",
    "dist",
    "build",
    "CHANGELOG.md",
    "LICENSE.md",
]
respect-gitignore = true

# ATX headings
[MD003]
style = "atx"

[MD004]
style = "dash"

[MD007]
indent = 4

# No trailing spaces; use a backslash for hard breaks
[MD009]
strict = true

[MD013]
line-length = 80
code-blocks = false
tables = false

[MD026]
punctuation = ".,;:!。，；：！"

# Fenced code blocks only
[MD046]
style = "fenced"

[MD049]
style = "underscore"

[MD050]
style = "asterisk"
`

const relaxedPreset = `# mdlint configuration - relaxed preset
# Lenient settings for adopting mdlint on an existing project.

[global]
exclude = [
    ".git",
    ".github",
    "node_modules",
    "vendor",
    "dist",
    "build",
    "CHANGELOG.md",
    "LICENSE.md",
]
respect-gitignore = true

disable = [
    "MD013",  # line length
    "MD033",  # inline HTML
    "MD041",  # first line heading
]

[MD003]
style = "consistent"

[MD004]
style = "consistent"

[MD049]
style = "consistent"

[MD050]
style = "consistent"
`

// PresetContent returns the TOML text of a preset.
func PresetContent(name string) (string, error) {
	switch name {
	case "default":
		return defaultPreset, nil
	case "google":
		return googlePreset, nil
	case "relaxed":
		return relaxedPreset, nil
	}
	return "", &errUtils.UnknownPresetError{Name: name}
}

// CreateDefaultConfig writes the default preset to path.
func CreateDefaultConfig(path string) error {
	return CreatePresetConfig("default", path)
}

// CreatePresetConfig writes a preset to path. It refuses to overwrite an existing file.
func CreatePresetConfig(preset, path string) error {
	if _, err := os.Stat(path); err == nil {
		return &errUtils.FileExistsError{Path: path}
	}
	content, err := PresetContent(preset)
	if err != nil {
		return err
	}
	if err := filesystem.WriteFileAtomic(path, []byte(content), 0o644); err != nil {
		return &errUtils.IOError{Path: path, Err: err}
	}
	return nil
}

// AppendPyprojectPreset adds a preset as a [tool.mdlint] table to the
// pyproject.toml at path, creating the file if needed. A pyproject.toml that
// already configures mdlint is left alone.
func AppendPyprojectPreset(preset, path string) error {
	content, err := GeneratePyprojectPreset(preset)
	if err != nil {
		return err
	}

	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if hasToolTable(path) {
			return &errUtils.FileExistsError{Path: path}
		}
		content = "\n" + content
		if len(existing) > 0 && existing[len(existing)-1] != '\n' {
			content = "\n" + content
		}
	case !os.IsNotExist(err):
		return &errUtils.IOError{Path: path, Err: err}
	}

	if err := filesystem.AppendFileAtomic(path, existing, []byte(content), 0o644); err != nil {
		return &errUtils.IOError{Path: path, Err: err}
	}
	return nil
}

var sectionHeader = regexp.MustCompile(`^(#\s*)?\[([A-Za-z0-9_-]+)\]`)

// GeneratePyprojectPreset rewrites a preset for pyproject.toml: [global]
// becomes [tool.mdlint] and rule sections move under it.
func GeneratePyprojectPreset(preset string) (string, error) {
	content, err := PresetContent(preset)
	if err != nil {
		return "", err
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		m := sectionHeader.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		section := "tool." + ToolName
		if m[2] != "global" {
			section += "." + m[2]
		}
		lines[i] = m[1] + "[" + section + "]" + line[len(m[0]):]
	}
	out := strings.Join(lines, "\n")

	var check map[string]any
	if err := toml.Unmarshal([]byte(out), &check); err != nil {
		return "", errors.Wrap(err, "generated pyproject preset is not valid TOML")
	}
	return out, nil
}
