package rules

import "github.com/samber/lo"

var catalog = []Descriptor{
	{ID: "MD001", Alias: "heading-increment", Description: "Heading levels should only increment by one level at a time"},
	{ID: "MD003", Alias: "heading-style", Description: "Heading style", Options: map[string]any{"style": "consistent"}},
	{ID: "MD004", Alias: "ul-style", Description: "Unordered list style", Options: map[string]any{"style": "consistent"}},
	{ID: "MD005", Alias: "list-indent", Description: "Inconsistent indentation for list items at the same level"},
	{ID: "MD007", Alias: "ul-indent", Description: "Unordered list indentation", Options: map[string]any{
		"indent":         int64(2),
		"start-indented": false,
		"start-indent":   int64(2),
		"style":          "text-aligned",
	}},
	{ID: "MD009", Alias: "no-trailing-spaces", Description: "Trailing spaces", Options: map[string]any{
		"br-spaces":             int64(2),
		"strict":                false,
		"list-item-empty-lines": false,
	}},
	{ID: "MD010", Alias: "no-hard-tabs", Description: "Hard tabs", Options: map[string]any{
		"spaces-per-tab": int64(4),
	}},
	{ID: "MD011", Alias: "no-reversed-links", Description: "Reversed link syntax"},
	{ID: "MD012", Alias: "no-multiple-blanks", Description: "Multiple consecutive blank lines", Options: map[string]any{
		"maximum": int64(1),
	}},
	{ID: "MD013", Alias: "line-length", Description: "Line length", Options: map[string]any{
		"line-length":            int64(80),
		"code-blocks":            true,
		"tables":                 false,
		"headings":               true,
		"paragraphs":             true,
		"strict":                 false,
		"reflow":                 false,
		"reflow-mode":            "default",
		"heading-line-length":    Unset,
		"code-block-line-length": Unset,
	}, Aliases: map[string]string{"enable_reflow": "reflow"}},
	{ID: "MD014", Alias: "commands-show-output", Description: "Dollar signs used before commands without showing output", Options: map[string]any{
		"show-output": true,
	}},
	{ID: "MD018", Alias: "no-missing-space-atx", Description: "No space after hash on atx style heading"},
	{ID: "MD019", Alias: "no-multiple-space-atx", Description: "Multiple spaces after hash on atx style heading"},
	{ID: "MD020", Alias: "no-missing-space-closed-atx", Description: "No space inside hashes on closed atx style heading"},
	{ID: "MD021", Alias: "no-multiple-space-closed-atx", Description: "Multiple spaces inside hashes on closed atx style heading"},
	{ID: "MD022", Alias: "blanks-around-headings", Description: "Headings should be surrounded by blank lines", Options: map[string]any{
		"lines-above":      int64(1),
		"lines-below":      int64(1),
		"allowed-at-start": true,
	}},
	{ID: "MD023", Alias: "heading-start-left", Description: "Headings must start at the beginning of the line"},
	{ID: "MD024", Alias: "no-duplicate-heading", Description: "Multiple headings with the same content", Options: map[string]any{
		"siblings-only":           true,
		"allow-different-nesting": false,
	}},
	{ID: "MD025", Alias: "single-title", Description: "Multiple top-level headings in the same document", Options: map[string]any{
		"level":                   int64(1),
		"front-matter-title":      "title",
		"allow-document-sections": true,
	}},
	{ID: "MD026", Alias: "no-trailing-punctuation", Description: "Trailing punctuation in heading", Options: map[string]any{
		"punctuation": ".,;:!",
	}},
	{ID: "MD027", Alias: "no-multiple-space-blockquote", Description: "Multiple spaces after blockquote symbol"},
	{ID: "MD028", Alias: "no-blanks-blockquote", Description: "Blank line inside blockquote"},
	{ID: "MD029", Alias: "ol-prefix", Description: "Ordered list item prefix", Options: map[string]any{
		"style": "one-or-ordered",
	}},
	{ID: "MD030", Alias: "list-marker-space", Description: "Spaces after list markers", Options: map[string]any{
		"ul-single": int64(1),
		"ol-single": int64(1),
		"ul-multi":  int64(1),
		"ol-multi":  int64(1),
	}},
	{ID: "MD031", Alias: "blanks-around-fences", Description: "Fenced code blocks should be surrounded by blank lines", Options: map[string]any{
		"list-items": true,
	}},
	{ID: "MD032", Alias: "blanks-around-lists", Description: "Lists should be surrounded by blank lines"},
	{ID: "MD033", Alias: "no-inline-html", Description: "Inline HTML", Options: map[string]any{
		"allowed-elements": []any{},
	}},
	{ID: "MD034", Alias: "no-bare-urls", Description: "Bare URL used"},
	{ID: "MD035", Alias: "hr-style", Description: "Horizontal rule style", Options: map[string]any{"style": "consistent"}},
	{ID: "MD036", Alias: "no-emphasis-as-heading", Description: "Emphasis used instead of a heading", Options: map[string]any{
		"punctuation": ".,;:!?",
	}},
	{ID: "MD037", Alias: "no-space-in-emphasis", Description: "Spaces inside emphasis markers"},
	{ID: "MD038", Alias: "no-space-in-code", Description: "Spaces inside code span elements"},
	{ID: "MD039", Alias: "no-space-in-links", Description: "Spaces inside link text"},
	{ID: "MD040", Alias: "fenced-code-language", Description: "Fenced code blocks should have a language specified", Options: map[string]any{
		"allowed-languages": []any{},
		"language-only":     false,
	}},
	{ID: "MD041", Alias: "first-line-heading", Description: "First line in a file should be a top-level heading", Options: map[string]any{
		"level":                      int64(1),
		"front-matter-title":         true,
		"front-matter-title-pattern": Unset,
	}},
	{ID: "MD042", Alias: "no-empty-links", Description: "No empty links"},
	{ID: "MD043", Alias: "required-headings", Description: "Required heading structure", Options: map[string]any{
		"headings":   []any{},
		"match-case": false,
	}},
	{ID: "MD044", Alias: "proper-names", Description: "Proper names should have the correct capitalization", Options: map[string]any{
		"names":         []any{},
		"code-blocks":   false,
		"html-elements": true,
		"html-comments": true,
	}},
	{ID: "MD045", Alias: "no-alt-text", Description: "Images should have alternate text"},
	{ID: "MD046", Alias: "code-block-style", Description: "Code block style", Options: map[string]any{"style": "consistent"}},
	{ID: "MD047", Alias: "single-trailing-newline", Description: "Files should end with a single newline character"},
	{ID: "MD048", Alias: "code-fence-style", Description: "Code fence style", Options: map[string]any{"style": "consistent"}},
	{ID: "MD049", Alias: "emphasis-style", Description: "Emphasis style", Options: map[string]any{"style": "consistent"}},
	{ID: "MD050", Alias: "strong-style", Description: "Strong style", Options: map[string]any{"style": "consistent"}},
	{ID: "MD051", Alias: "link-fragments", Description: "Link fragments should be valid", Options: map[string]any{
		"ignore-case": false,
	}},
	{ID: "MD052", Alias: "reference-links-images", Description: "Reference links and images should use a label that is defined", Options: map[string]any{
		"shortcut-syntax": false,
	}},
	{ID: "MD053", Alias: "link-image-reference-definitions", Description: "Link and image reference definitions should be needed", Options: map[string]any{
		"ignored-definitions": []any{"//"},
	}},
	{ID: "MD054", Alias: "link-image-style", Description: "Link and image style", Options: map[string]any{
		"autolink":   true,
		"collapsed":  true,
		"full":       true,
		"inline":     true,
		"shortcut":   true,
		"url-inline": true,
	}},
	{ID: "MD055", Alias: "table-pipe-style", Description: "Table pipe style", Options: map[string]any{"style": "consistent"}},
	{ID: "MD056", Alias: "table-column-count", Description: "Table column count"},
	{ID: "MD057", Alias: "existing-relative-links", Description: "Relative links should point to existing files", Options: map[string]any{
		"absolute-links": "ignore",
	}},
	{ID: "MD058", Alias: "blanks-around-tables", Description: "Tables should be surrounded by blank lines", Options: map[string]any{
		"minimum-before": int64(1),
		"minimum-after":  int64(1),
	}},
	{ID: "MD059", Alias: "descriptive-link-text", Description: "Link text should be descriptive", Options: map[string]any{
		"prohibited-texts": []any{"click here", "here", "link", "more"},
	}},
	{ID: "MD060", Alias: "table-format", Description: "Table formatting", OptIn: true, Options: map[string]any{
		"enabled":   false,
		"style":     "aligned",
		"max-width": int64(0),
	}},
	{ID: "MD061", Alias: "forbidden-terms", Description: "Forbidden terms", Options: map[string]any{
		"terms":          []any{},
		"case-sensitive": false,
	}},
	{ID: "MD062", Alias: "link-destination-whitespace", Description: "Link destination should not contain unencoded whitespace"},
	{ID: "MD063", Alias: "heading-capitalization", Description: "Heading capitalization", OptIn: true, Options: map[string]any{
		"style":                "title_case",
		"lowercase-words":      []any{},
		"ignore-words":         []any{},
		"preserve-cased-words": true,
		"min-level":            int64(1),
		"max-level":            int64(6),
	}},
	{ID: "MD064", Alias: "no-multiple-consecutive-spaces", Description: "Multiple consecutive spaces", Options: map[string]any{
		"allow-sentence-double-space": false,
	}},
	{ID: "MD065", Alias: "blanks-around-horizontal-rules", Description: "Horizontal rules should be surrounded by blank lines"},
	{ID: "MD066", Alias: "footnote-validation", Description: "Footnote references should have definitions"},
	{ID: "MD067", Alias: "footnote-definition-order", Description: "Footnote definitions should appear in reference order"},
	{ID: "MD068", Alias: "empty-footnote-definition", Description: "Footnote definitions should not be empty"},
	{ID: "MD069", Alias: "no-duplicate-list-markers", Description: "List items should not repeat the marker"},
	{ID: "MD070", Alias: "nested-code-fence", Description: "Nested code fences should use a longer fence"},
	{ID: "MD071", Alias: "blank-line-after-frontmatter", Description: "Front matter should be followed by a blank line"},
	{ID: "MD072", Alias: "frontmatter-key-sort", Description: "Front matter keys should be sorted", OptIn: true, Options: map[string]any{
		"enabled":   false,
		"key-order": Unset,
	}},
	{ID: "MD073", Alias: "toc-validation", Description: "Table of contents should match the headings", OptIn: true, Options: map[string]any{
		"enabled":   false,
		"min-level": int64(2),
		"max-level": int64(4),
		"indent":    int64(2),
	}},
	{ID: "MD074", Alias: "mkdocs-nav", Description: "MkDocs nav entries should point to existing files", OptIn: true},
	{ID: "MD075", Alias: "orphaned-table-rows", Description: "Table rows should belong to a table"},
	{ID: "MD076", Alias: "list-item-spacing", Description: "List item spacing", Options: map[string]any{"style": "consistent"}},
	{ID: "MD077", Alias: "list-continuation-indent", Description: "List continuation content indentation"},
}

// All returns every built-in rule in id order.
func All() []Rule {
	out := make([]Rule, len(catalog))
	for i, d := range catalog {
		out[i] = d
	}
	return out
}

// Lookup returns the descriptor for a canonical id.
func Lookup(id string) (Descriptor, bool) {
	return lo.Find(catalog, func(d Descriptor) bool { return d.ID == id })
}

// DisplayName returns the human-readable alias for a canonical id, or id itself.
func DisplayName(id string) string {
	if d, ok := Lookup(id); ok && d.Alias != "" {
		return d.Alias
	}
	return id
}

// OptIn returns the ids of rules that must be enabled explicitly.
func OptIn() map[string]struct{} {
	out := make(map[string]struct{})
	for _, d := range catalog {
		if d.OptIn {
			out[d.ID] = struct{}{}
		}
	}
	return out
}
