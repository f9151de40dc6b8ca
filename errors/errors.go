package errors

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Sentinels for errors.Is checks.
var (
	ErrConfigIO              = errors.New("failed to read config file")
	ErrConfigParse           = errors.New("failed to parse config")
	ErrConfigFileExists      = errors.New("configuration file already exists")
	ErrCircularExtends       = errors.New("circular extends reference")
	ErrExtendsDepthExceeded  = errors.New("extends chain exceeds maximum depth")
	ErrExtendsNotFound       = errors.New("extends target not found")
	ErrUnknownPreset         = errors.New("unknown preset")
	ErrUnknownFlavor         = errors.New("unknown markdown flavor")
	ErrInvalidSeverity       = errors.New("invalid severity")
	ErrInvalidCodeBlockTools = errors.New("invalid code-block-tools configuration")
	ErrLoadedConfigConsumed  = errors.New("loaded configuration has already been validated")
	ErrInvalidLogLevel       = errors.New("invalid log level")
	ErrInvalidOutputFormat   = errors.New("invalid output format")
	ErrPatternCompile        = errors.New("failed to compile pattern")
	ErrUnknownRule           = errors.New("unknown rule")
)

// IOError reports a config file that could not be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("Failed to read config file at %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrConfigIO }

// ParseError reports malformed config content. Path is empty for inline content.
type ParseError struct {
	Path    string
	Message string
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return "Failed to parse config: " + e.Message
	}
	return fmt.Sprintf("Failed to parse config: %s: %s", e.Path, e.Message)
}

func (e *ParseError) Is(target error) bool { return target == ErrConfigParse }

// FileExistsError is returned when init would overwrite a file.
type FileExistsError struct {
	Path string
}

func (e *FileExistsError) Error() string {
	return "Configuration file already exists at " + e.Path
}

func (e *FileExistsError) Is(target error) bool { return target == ErrConfigFileExists }

// CircularExtendsError reports an extends chain that revisits a file.
type CircularExtendsError struct {
	Path  string
	Chain []string
}

func (e *CircularExtendsError) Error() string {
	quoted := make([]string, len(e.Chain))
	for i, p := range e.Chain {
		quoted[i] = fmt.Sprintf("%q", p)
	}
	return fmt.Sprintf("Circular extends reference: %s already in chain [%s]", e.Path, strings.Join(quoted, ", "))
}

func (e *CircularExtendsError) Is(target error) bool { return target == ErrCircularExtends }

// ExtendsDepthError reports an extends chain longer than MaxDepth.
type ExtendsDepthError struct {
	Path     string
	MaxDepth int
}

func (e *ExtendsDepthError) Error() string {
	return fmt.Sprintf("extends chain exceeds maximum depth of %d at %s", e.MaxDepth, e.Path)
}

func (e *ExtendsDepthError) Is(target error) bool { return target == ErrExtendsDepthExceeded }

// ExtendsNotFoundError reports an extends target that does not exist.
type ExtendsNotFoundError struct {
	Path string
	From string
}

func (e *ExtendsNotFoundError) Error() string {
	return fmt.Sprintf("extends target not found: %s (referenced from %s)", e.Path, e.From)
}

func (e *ExtendsNotFoundError) Is(target error) bool { return target == ErrExtendsNotFound }

// UnknownPresetError reports an init preset that does not exist.
type UnknownPresetError struct {
	Name string
}

func (e *UnknownPresetError) Error() string {
	return fmt.Sprintf("Unknown preset: %s. Valid presets: default, google, relaxed", e.Name)
}

func (e *UnknownPresetError) Is(target error) bool { return target == ErrUnknownPreset }
