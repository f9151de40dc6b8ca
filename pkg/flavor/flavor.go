// Package flavor enumerates the markdown dialects mdlint understands.
package flavor

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	errUtils "github.com/mdlint/mdlint/errors"
)

// Flavor is a markdown dialect. The zero value is Standard.
type Flavor int

const (
	// Standard is CommonMark with GFM extensions.
	Standard Flavor = iota
	// MkDocs adds auto-references and strict list indentation.
	MkDocs
	// MDX adds JSX components and ESM blocks.
	MDX
	// Quarto covers Quarto and RMarkdown documents.
	Quarto
	// Obsidian treats #tag as a tag rather than a heading.
	Obsidian
	// Kramdown supports IALs, ALDs and extension blocks used by Jekyll.
	Kramdown
)

// All lists every flavor in declaration order.
var All = []Flavor{Standard, MkDocs, MDX, Quarto, Obsidian, Kramdown}

// Parse converts a configuration string into a Flavor. It is case-insensitive
// and accepts the aliases gfm, github, commonmark, none, qmd, rmd, rmarkdown and jekyll.
func Parse(s string) (Flavor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard", "", "none", "gfm", "github", "commonmark":
		return Standard, nil
	case "mkdocs":
		return MkDocs, nil
	case "mdx":
		return MDX, nil
	case "quarto", "qmd", "rmd", "rmarkdown":
		return Quarto, nil
	case "obsidian":
		return Obsidian, nil
	case "kramdown", "jekyll":
		return Kramdown, nil
	default:
		return Standard, errors.Wrapf(errUtils.ErrUnknownFlavor, "Unknown markdown flavor: %s", s)
	}
}

// FromExtension detects the flavor from a file extension with or without the leading dot.
func FromExtension(ext string) Flavor {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "mdx":
		return MDX
	case "qmd", "rmd":
		return Quarto
	case "kramdown":
		return Kramdown
	default:
		return Standard
	}
}

// FromPath detects the flavor from the extension of path.
func FromPath(path string) Flavor {
	return FromExtension(filepath.Ext(path))
}

func (f Flavor) String() string {
	switch f {
	case MkDocs:
		return "mkdocs"
	case MDX:
		return "mdx"
	case Quarto:
		return "quarto"
	case Obsidian:
		return "obsidian"
	case Kramdown:
		return "kramdown"
	default:
		return "standard"
	}
}

// Name returns the human-readable name.
func (f Flavor) Name() string {
	switch f {
	case MkDocs:
		return "MkDocs"
	case MDX:
		return "MDX"
	case Quarto:
		return "Quarto"
	case Obsidian:
		return "Obsidian"
	case Kramdown:
		return "Kramdown"
	default:
		return "Standard"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Flavor) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Flavor) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

func (f Flavor) SupportsESM() bool {
	return f == MDX
}

func (f Flavor) SupportsJSX() bool {
	return f == MDX
}

func (f Flavor) SupportsAutoReferences() bool {
	return f == MkDocs
}

func (f Flavor) SupportsKramdownSyntax() bool {
	return f == Kramdown
}

// RequiresStrictListIndent reports whether ordered list continuation content
// must be indented by at least four spaces, as Python-Markdown expects.
func (f Flavor) RequiresStrictListIndent() bool {
	return f == MkDocs
}
