package registry

// aliasEntry maps one normalized rule name to its canonical id.
type aliasEntry struct {
	name string
	id   string
}

// aliasTable lists every accepted rule name. Order matters: suggestions
// break distance ties by position in this table.
var aliasTable = [...]aliasEntry{
	{"MD001", "MD001"},
	{"MD003", "MD003"},
	{"MD004", "MD004"},
	{"MD005", "MD005"},
	{"MD007", "MD007"},
	{"MD009", "MD009"},
	{"MD010", "MD010"},
	{"MD011", "MD011"},
	{"MD012", "MD012"},
	{"MD013", "MD013"},
	{"MD014", "MD014"},
	{"MD018", "MD018"},
	{"MD019", "MD019"},
	{"MD020", "MD020"},
	{"MD021", "MD021"},
	{"MD022", "MD022"},
	{"MD023", "MD023"},
	{"MD024", "MD024"},
	{"MD025", "MD025"},
	{"MD026", "MD026"},
	{"MD027", "MD027"},
	{"MD028", "MD028"},
	{"MD029", "MD029"},
	{"MD030", "MD030"},
	{"MD031", "MD031"},
	{"MD032", "MD032"},
	{"MD033", "MD033"},
	{"MD034", "MD034"},
	{"MD035", "MD035"},
	{"MD036", "MD036"},
	{"MD037", "MD037"},
	{"MD038", "MD038"},
	{"MD039", "MD039"},
	{"MD040", "MD040"},
	{"MD041", "MD041"},
	{"MD042", "MD042"},
	{"MD043", "MD043"},
	{"MD044", "MD044"},
	{"MD045", "MD045"},
	{"MD046", "MD046"},
	{"MD047", "MD047"},
	{"MD048", "MD048"},
	{"MD049", "MD049"},
	{"MD050", "MD050"},
	{"MD051", "MD051"},
	{"MD052", "MD052"},
	{"MD053", "MD053"},
	{"MD054", "MD054"},
	{"MD055", "MD055"},
	{"MD056", "MD056"},
	{"MD057", "MD057"},
	{"MD058", "MD058"},
	{"MD059", "MD059"},
	{"MD060", "MD060"},
	{"MD061", "MD061"},
	{"MD062", "MD062"},
	{"MD063", "MD063"},
	{"MD064", "MD064"},
	{"MD065", "MD065"},
	{"MD066", "MD066"},
	{"MD067", "MD067"},
	{"MD068", "MD068"},
	{"MD069", "MD069"},
	{"MD070", "MD070"},
	{"MD071", "MD071"},
	{"MD072", "MD072"},
	{"MD073", "MD073"},
	{"MD074", "MD074"},
	{"MD075", "MD075"},
	{"MD076", "MD076"},
	{"MD077", "MD077"},

	{"HEADING-INCREMENT", "MD001"},
	{"HEADING-STYLE", "MD003"},
	{"UL-STYLE", "MD004"},
	{"LIST-INDENT", "MD005"},
	{"UL-INDENT", "MD007"},
	{"NO-TRAILING-SPACES", "MD009"},
	{"NO-HARD-TABS", "MD010"},
	{"NO-REVERSED-LINKS", "MD011"},
	{"NO-MULTIPLE-BLANKS", "MD012"},
	{"LINE-LENGTH", "MD013"},
	{"COMMANDS-SHOW-OUTPUT", "MD014"},
	{"NO-MISSING-SPACE-ATX", "MD018"},
	{"NO-MULTIPLE-SPACE-ATX", "MD019"},
	{"NO-MISSING-SPACE-CLOSED-ATX", "MD020"},
	{"NO-MULTIPLE-SPACE-CLOSED-ATX", "MD021"},
	{"BLANKS-AROUND-HEADINGS", "MD022"},
	{"HEADING-START-LEFT", "MD023"},
	{"NO-DUPLICATE-HEADING", "MD024"},
	{"SINGLE-TITLE", "MD025"},
	{"SINGLE-H1", "MD025"},
	{"NO-TRAILING-PUNCTUATION", "MD026"},
	{"NO-MULTIPLE-SPACE-BLOCKQUOTE", "MD027"},
	{"NO-BLANKS-BLOCKQUOTE", "MD028"},
	{"OL-PREFIX", "MD029"},
	{"LIST-MARKER-SPACE", "MD030"},
	{"BLANKS-AROUND-FENCES", "MD031"},
	{"BLANKS-AROUND-LISTS", "MD032"},
	{"NO-INLINE-HTML", "MD033"},
	{"NO-BARE-URLS", "MD034"},
	{"HR-STYLE", "MD035"},
	{"NO-EMPHASIS-AS-HEADING", "MD036"},
	{"NO-SPACE-IN-EMPHASIS", "MD037"},
	{"NO-SPACE-IN-CODE", "MD038"},
	{"NO-SPACE-IN-LINKS", "MD039"},
	{"FENCED-CODE-LANGUAGE", "MD040"},
	{"FIRST-LINE-HEADING", "MD041"},
	{"FIRST-LINE-H1", "MD041"},
	{"NO-EMPTY-LINKS", "MD042"},
	{"REQUIRED-HEADINGS", "MD043"},
	{"PROPER-NAMES", "MD044"},
	{"NO-ALT-TEXT", "MD045"},
	{"CODE-BLOCK-STYLE", "MD046"},
	{"SINGLE-TRAILING-NEWLINE", "MD047"},
	{"CODE-FENCE-STYLE", "MD048"},
	{"EMPHASIS-STYLE", "MD049"},
	{"STRONG-STYLE", "MD050"},
	{"LINK-FRAGMENTS", "MD051"},
	{"REFERENCE-LINKS-IMAGES", "MD052"},
	{"LINK-IMAGE-REFERENCE-DEFINITIONS", "MD053"},
	{"LINK-IMAGE-STYLE", "MD054"},
	{"TABLE-PIPE-STYLE", "MD055"},
	{"TABLE-COLUMN-COUNT", "MD056"},
	{"EXISTING-RELATIVE-LINKS", "MD057"},
	{"BLANKS-AROUND-TABLES", "MD058"},
	{"DESCRIPTIVE-LINK-TEXT", "MD059"},
	{"TABLE-CELL-ALIGNMENT", "MD060"},
	{"TABLE-FORMAT", "MD060"},
	{"FORBIDDEN-TERMS", "MD061"},
	{"LINK-DESTINATION-WHITESPACE", "MD062"},
	{"HEADING-CAPITALIZATION", "MD063"},
	{"NO-MULTIPLE-CONSECUTIVE-SPACES", "MD064"},
	{"BLANKS-AROUND-HORIZONTAL-RULES", "MD065"},
	{"FOOTNOTE-VALIDATION", "MD066"},
	{"FOOTNOTE-DEFINITION-ORDER", "MD067"},
	{"EMPTY-FOOTNOTE-DEFINITION", "MD068"},
	{"NO-DUPLICATE-LIST-MARKERS", "MD069"},
	{"NESTED-CODE-FENCE", "MD070"},
	{"BLANK-LINE-AFTER-FRONTMATTER", "MD071"},
	{"FRONTMATTER-KEY-SORT", "MD072"},
	{"TOC-VALIDATION", "MD073"},
	{"MKDOCS-NAV", "MD074"},
	{"ORPHANED-TABLE-ROWS", "MD075"},
	{"LIST-ITEM-SPACING", "MD076"},
	{"LIST-CONTINUATION-INDENT", "MD077"},
}
