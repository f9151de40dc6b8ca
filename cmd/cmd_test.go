package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/mdlint/mdlint/errors"
	log "github.com/mdlint/mdlint/pkg/logger"
	"github.com/mdlint/mdlint/pkg/registry"
)

// execute runs the CLI in an empty project with no user config.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(func() {
		xdg.Reload()
		log.Default().SetOutput(os.Stderr)
		log.Default().Configure(log.LogLevelWarning)
	})

	root := NewRootCmd(registry.Default())
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// project creates a repository with one config file and makes it the working directory.
func project(t *testing.T, config string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	if config != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".mdlint.toml"), []byte(config), 0o644))
	}
	t.Chdir(dir)
	return dir
}

func TestConfigShow(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		out, _, err := execute(t, "config", "show", "--no-config")
		require.NoError(t, err)
		assert.Contains(t, out, "[global]")
		assert.Contains(t, out, "line-length = 80")
	})

	t.Run("discovered project config", func(t *testing.T) {
		project(t, "[global]\nline-length = 100\n\n[ul-style]\nstyle = \"dash\"\n")
		out, _, err := execute(t, "config", "show")
		require.NoError(t, err)
		assert.Contains(t, out, "line-length = 100")
		assert.Contains(t, out, "[ul-style]")
	})

	t.Run("json", func(t *testing.T) {
		out, _, err := execute(t, "config", "show", "--no-config", "--format", "json", "--line-length", "120")
		require.NoError(t, err)

		var doc map[string]map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &doc))
		assert.Equal(t, float64(120), doc["global"]["line-length"])
		assert.Equal(t, float64(120), doc["MD013"]["line-length"])
	})

	t.Run("bad format", func(t *testing.T) {
		_, _, err := execute(t, "config", "show", "--no-config", "--format", "xml")
		assert.ErrorIs(t, err, errUtils.ErrInvalidOutputFormat)
	})

	t.Run("sources", func(t *testing.T) {
		out, _, err := execute(t, "config", "show", "--no-config", "--sources", "--line-length", "120")
		require.NoError(t, err)
		assert.Regexp(t, `SECTION\s+KEY\s+VALUE\s+SOURCE`, out)
		assert.Regexp(t, `\[global\]\s+line-length\s+120\s+cli`, out)
		assert.Regexp(t, `\[global\]\s+respect-gitignore\s+true\s+default`, out)
	})

	t.Run("warnings go to stderr", func(t *testing.T) {
		_, stderr, err := execute(t, "config", "show", "--no-config", "--disable", "bogus")
		require.NoError(t, err)
		assert.Contains(t, stderr, "Unknown rule in --disable: bogus")
	})
}

func TestConfigFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	envCfg := filepath.Join(dir, "env.toml")
	flagCfg := filepath.Join(dir, "flag.toml")
	require.NoError(t, os.WriteFile(envCfg, []byte("[global]\nline-length = 101\n"), 0o644))
	require.NoError(t, os.WriteFile(flagCfg, []byte("[global]\nline-length = 102\n"), 0o644))
	t.Setenv("MDLINT_CONFIG", envCfg)

	out, _, err := execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "line-length = 101")

	out, _, err = execute(t, "config", "show", "--config", flagCfg)
	require.NoError(t, err)
	assert.Contains(t, out, "line-length = 102", "the flag beats the environment")
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		project(t, "[MD013]\nline-length = 100\n")
		out, _, err := execute(t, "config", "validate")
		require.NoError(t, err)
		assert.Contains(t, out, ".mdlint.toml is valid")
	})

	t.Run("warnings fail with findings exit code", func(t *testing.T) {
		project(t, "[MD013]\nline-lenght = 100\n")
		_, stderr, err := execute(t, "config", "validate")
		require.Error(t, err)
		assert.Equal(t, errUtils.ExitCodeFindings, errUtils.GetExitCode(err))
		assert.Contains(t, stderr, "Unknown option for rule MD013: line-lenght")
	})

	t.Run("parse error", func(t *testing.T) {
		project(t, "[global\n")
		_, _, err := execute(t, "config", "validate")
		assert.ErrorIs(t, err, errUtils.ErrConfigParse)
		assert.Equal(t, errUtils.ExitCodeToolError, errUtils.GetExitCode(err))
	})

	t.Run("no config", func(t *testing.T) {
		out, _, err := execute(t, "config", "validate", "--no-config")
		require.NoError(t, err)
		assert.Contains(t, out, "built-in defaults are valid")
	})
}

func TestConfigFile(t *testing.T) {
	project(t, "[global]\n")
	out, _, err := execute(t, "config", "file")
	require.NoError(t, err)
	assert.Equal(t, ".mdlint.toml\n", out)

	out, _, err = execute(t, "config", "file", "--no-config")
	require.NoError(t, err)
	assert.Contains(t, out, "without config files")

	project(t, "")
	out, _, err = execute(t, "config", "file")
	require.NoError(t, err)
	assert.Contains(t, out, "No configuration file found")
}

func TestInit(t *testing.T) {
	dir := project(t, "")

	out, _, err := execute(t, "init", "--preset", "google")
	require.NoError(t, err)
	assert.Contains(t, out, "Created .mdlint.toml using the google preset")
	assert.FileExists(t, filepath.Join(dir, ".mdlint.toml"))

	_, _, err = execute(t, "init")
	assert.ErrorIs(t, err, errUtils.ErrConfigFileExists)

	_, _, err = execute(t, "init", "--preset", "strict", "--output", "other.toml")
	assert.ErrorIs(t, err, errUtils.ErrUnknownPreset)
	assert.NoFileExists(t, filepath.Join(dir, "other.toml"))

	_, _, err = execute(t, "init", "--pyproject", "--preset", "relaxed")
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, "pyproject.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "[tool.mdlint]")
}

func TestRule(t *testing.T) {
	out, _, err := execute(t, "rule", "line_length")
	require.NoError(t, err)
	assert.Contains(t, out, "MD013 (line-length)")
	assert.Contains(t, out, "line-length = 80")
	assert.Contains(t, out, "heading-line-length (unset)")

	out, _, err = execute(t, "rule", "MD060")
	require.NoError(t, err)
	assert.Contains(t, out, "Opt-in")

	_, _, err = execute(t, "rule", "MD999")
	assert.ErrorIs(t, err, errUtils.ErrUnknownRule)

	_, _, err = execute(t, "rule")
	assert.Error(t, err)
}

func TestLogLevel(t *testing.T) {
	_, _, err := execute(t, "version", "--log-level", "loud")
	assert.ErrorIs(t, err, errUtils.ErrInvalidLogLevel)

	t.Setenv("MDLINT_LOG_LEVEL", "Debug")
	_, _, err = execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "debug", log.Default().GetLevelString())
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "mdlint "+Version)
}
