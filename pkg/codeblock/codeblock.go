// Package codeblock defines the code-block-tools settings: which external
// tools lint or format fenced code blocks of each language. Running the tools
// is out of scope here.
package codeblock

import (
	"fmt"
	"maps"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/go-viper/mapstructure/v2"

	errUtils "github.com/mdlint/mdlint/errors"
)

// DefaultTimeout is the per-invocation tool timeout in milliseconds.
const DefaultTimeout uint64 = 30_000

// NormalizeLanguage controls how fence info strings map to languages.
type NormalizeLanguage string

const (
	NormalizeLinguist NormalizeLanguage = "linguist"
	NormalizeExact    NormalizeLanguage = "exact"
)

func (n *NormalizeLanguage) UnmarshalText(text []byte) error {
	return parseEnum(n, string(text), "normalize-language", NormalizeLinguist, NormalizeExact)
}

// OnError decides what happens when a tool fails.
type OnError string

const (
	OnErrorFail OnError = "fail"
	OnErrorSkip OnError = "skip"
	OnErrorWarn OnError = "warn"
)

func (o *OnError) UnmarshalText(text []byte) error {
	return parseEnum(o, string(text), "on-error", OnErrorFail, OnErrorSkip, OnErrorWarn)
}

// OnMissing decides what happens when a language definition or tool binary is missing.
type OnMissing string

const (
	OnMissingIgnore   OnMissing = "ignore"
	OnMissingFail     OnMissing = "fail"
	OnMissingFailFast OnMissing = "fail-fast"
)

func (o *OnMissing) UnmarshalText(text []byte) error {
	return parseEnum(o, string(text), "on-missing", OnMissingIgnore, OnMissingFail, OnMissingFailFast)
}

func parseEnum[T ~string](dst *T, s, field string, allowed ...T) error {
	for _, a := range allowed {
		if string(a) == s {
			*dst = a
			return nil
		}
	}
	return errors.Wrapf(errUtils.ErrInvalidCodeBlockTools, "unknown %s value %q (expected one of %v)", field, s, allowed)
}

// LanguageTools lists the tools for one language.
type LanguageTools struct {
	Enabled bool     `mapstructure:"enabled" toml:"enabled" yaml:"enabled" json:"enabled"`
	Lint    []string `mapstructure:"lint" toml:"lint" yaml:"lint" json:"lint"`
	Format  []string `mapstructure:"format" toml:"format" yaml:"format" json:"format"`
	// OnError overrides the top-level setting when non-nil.
	OnError *OnError `mapstructure:"on-error" toml:"on-error,omitempty" yaml:"on-error,omitempty" json:"on-error,omitempty"`
}

// Tool describes how to invoke an external tool.
type Tool struct {
	Command    []string `mapstructure:"command" toml:"command" yaml:"command" json:"command"`
	Stdin      bool     `mapstructure:"stdin" toml:"stdin" yaml:"stdin" json:"stdin"`
	Stdout     bool     `mapstructure:"stdout" toml:"stdout" yaml:"stdout" json:"stdout"`
	LintArgs   []string `mapstructure:"lint-args" toml:"lint-args" yaml:"lint-args" json:"lint-args"`
	FormatArgs []string `mapstructure:"format-args" toml:"format-args" yaml:"format-args" json:"format-args"`
}

// Config is the [code-block-tools] table.
type Config struct {
	Enabled                     bool                     `mapstructure:"enabled" toml:"enabled" yaml:"enabled" json:"enabled"`
	NormalizeLanguage           NormalizeLanguage        `mapstructure:"normalize-language" toml:"normalize-language" yaml:"normalize-language" json:"normalize-language"`
	OnError                     OnError                  `mapstructure:"on-error" toml:"on-error" yaml:"on-error" json:"on-error"`
	OnMissingLanguageDefinition OnMissing                `mapstructure:"on-missing-language-definition" toml:"on-missing-language-definition" yaml:"on-missing-language-definition" json:"on-missing-language-definition"`
	OnMissingToolBinary         OnMissing                `mapstructure:"on-missing-tool-binary" toml:"on-missing-tool-binary" yaml:"on-missing-tool-binary" json:"on-missing-tool-binary"`
	Timeout                     uint64                   `mapstructure:"timeout" toml:"timeout" yaml:"timeout" json:"timeout"`
	Languages                   map[string]LanguageTools `mapstructure:"-" toml:"languages" yaml:"languages" json:"languages"`
	LanguageAliases             map[string]string        `mapstructure:"language-aliases" toml:"language-aliases" yaml:"language-aliases" json:"language-aliases"`
	Tools                       map[string]Tool          `mapstructure:"-" toml:"tools" yaml:"tools" json:"tools"`
}

// Default returns the settings used when no [code-block-tools] table is present.
func Default() Config {
	return Config{
		NormalizeLanguage:           NormalizeLinguist,
		OnError:                     OnErrorFail,
		OnMissingLanguageDefinition: OnMissingIgnore,
		OnMissingToolBinary:         OnMissingIgnore,
		Timeout:                     DefaultTimeout,
		Languages:                   map[string]LanguageTools{},
		LanguageAliases:             map[string]string{},
		Tools:                       map[string]Tool{},
	}
}

// Decode builds a Config from a decoded TOML table, filling unset fields with defaults.
func Decode(raw map[string]any) (Config, error) {
	cfg := Default()
	if err := decodeInto(raw, &cfg); err != nil {
		return Config{}, err
	}

	languages, err := subTables(raw, "languages")
	if err != nil {
		return Config{}, err
	}
	for name, table := range languages {
		lt := LanguageTools{Enabled: true}
		if err := decodeInto(table, &lt); err != nil {
			return Config{}, errors.Wrapf(err, "languages.%s", name)
		}
		cfg.Languages[name] = lt
	}

	tools, err := subTables(raw, "tools")
	if err != nil {
		return Config{}, err
	}
	for id, table := range tools {
		if _, ok := table["command"]; !ok {
			return Config{}, errors.Wrapf(errUtils.ErrInvalidCodeBlockTools, "tools.%s: missing field `command`", id)
		}
		tool := Tool{Stdin: true, Stdout: true}
		if err := decodeInto(table, &tool); err != nil {
			return Config{}, errors.Wrapf(err, "tools.%s", id)
		}
		cfg.Tools[id] = tool
	}

	return cfg, nil
}

func decodeInto(input map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.TextUnmarshallerHookFunc(),
		Result:     out,
	})
	if err != nil {
		return errors.Wrap(err, "creating decoder")
	}
	if err := decoder.Decode(input); err != nil {
		return errors.WithSecondaryError(errors.Wrapf(errUtils.ErrInvalidCodeBlockTools, "%v", err), err)
	}
	return nil
}

func subTables(raw map[string]any, key string) (map[string]map[string]any, error) {
	v, ok := raw[key]
	if !ok {
		return nil, nil
	}
	outer, ok := v.(map[string]any)
	if !ok {
		return nil, errors.Wrapf(errUtils.ErrInvalidCodeBlockTools, "%s must be a table, got %T", key, v)
	}
	out := make(map[string]map[string]any, len(outer))
	for name, inner := range outer {
		table, ok := inner.(map[string]any)
		if !ok {
			return nil, errors.Wrapf(errUtils.ErrInvalidCodeBlockTools, "%s.%s must be a table, got %T", key, name, inner)
		}
		out[name] = table
	}
	return out, nil
}

// ResolveLanguage maps a fence language through LanguageAliases.
func (c Config) ResolveLanguage(lang string) string {
	if canonical, ok := c.LanguageAliases[lang]; ok {
		return canonical
	}
	return lang
}

// EffectiveOnError returns the language override if set, else the global policy.
func (c Config) EffectiveOnError(lang string) OnError {
	if lt, ok := c.Languages[c.ResolveLanguage(lang)]; ok && lt.OnError != nil {
		return *lt.OnError
	}
	return c.OnError
}

func (c Config) String() string {
	return fmt.Sprintf("code-block-tools(enabled=%t, languages=%d, tools=%d)", c.Enabled, len(c.Languages), len(c.Tools))
}

// Clone returns a copy of c that shares no maps or slices with it.
func (c Config) Clone() Config {
	out := c
	out.Languages = make(map[string]LanguageTools, len(c.Languages))
	for name, lt := range c.Languages {
		lt.Lint = slices.Clone(lt.Lint)
		lt.Format = slices.Clone(lt.Format)
		if lt.OnError != nil {
			onError := *lt.OnError
			lt.OnError = &onError
		}
		out.Languages[name] = lt
	}
	out.LanguageAliases = maps.Clone(c.LanguageAliases)
	out.Tools = make(map[string]Tool, len(c.Tools))
	for id, tool := range c.Tools {
		tool.Command = slices.Clone(tool.Command)
		tool.LintArgs = slices.Clone(tool.LintArgs)
		tool.FormatArgs = slices.Clone(tool.FormatArgs)
		out.Tools[id] = tool
	}
	return out
}
