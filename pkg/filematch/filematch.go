// Package filematch matches file paths against the glob patterns used in
// per-file configuration tables.
//
// Two flavors exist. A Set compiles many patterns at once and reports every
// pattern a path matches; in a Set `*` also crosses directory separators. A
// Matcher is a single pattern where `*` stops at `/` and only `**` spans
// directories.
package filematch

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
	"github.com/gobwas/glob"

	errUtils "github.com/mdlint/mdlint/errors"
	log "github.com/mdlint/mdlint/pkg/logger"
	"github.com/mdlint/mdlint/pkg/patterncache"
)

// compiled is shared by every Set in the process.
var compiled = patterncache.New()

// Set is a compiled collection of patterns.
type Set struct {
	globs   []glob.Glob
	indices []int
}

// NewSet compiles patterns into a Set. Patterns that fail to compile are
// logged and left out; their positions are skipped in Matches results.
func NewSet(patterns []string) *Set {
	s := &Set{}
	for i, p := range patterns {
		g, err := compiled.Glob(p)
		if err != nil {
			log.Warn("Invalid glob pattern", "pattern", p, "error", err)
			continue
		}
		s.globs = append(s.globs, g)
		s.indices = append(s.indices, i)
	}
	return s
}

// Len reports how many patterns compiled.
func (s *Set) Len() int {
	return len(s.globs)
}

// Matches returns the positions, in the slice given to NewSet, of every
// pattern that matches path.
func (s *Set) Matches(path string) []int {
	path = filepath.ToSlash(path)
	var out []int
	for i, g := range s.globs {
		if g.Match(path) {
			out = append(out, s.indices[i])
		}
	}
	return out
}

// Matcher is a single pattern with a literal path separator.
type Matcher struct {
	pattern string
}

// NewMatcher validates pattern and returns its Matcher.
func NewMatcher(pattern string) (Matcher, error) {
	if !doublestar.ValidatePattern(pattern) {
		return Matcher{}, errors.Wrapf(errUtils.ErrPatternCompile, "invalid glob pattern %q", pattern)
	}
	return Matcher{pattern: pattern}, nil
}

// Pattern returns the source text.
func (m Matcher) Pattern() string {
	return m.pattern
}

// Match reports whether path matches. Paths use forward slashes for matching
// on every platform.
func (m Matcher) Match(path string) bool {
	ok, err := doublestar.Match(m.pattern, filepath.ToSlash(path))
	return err == nil && ok
}

// MatchAny reports whether path matches any of patterns. Invalid patterns never match.
func MatchAny(patterns []string, path string) bool {
	for _, p := range patterns {
		m, err := NewMatcher(p)
		if err != nil {
			continue
		}
		if m.Match(path) {
			return true
		}
		// A bare directory name also covers everything below it.
		if !strings.ContainsAny(p, "*?[{") && m.Match(firstSegments(path, p)) {
			return true
		}
	}
	return false
}

func firstSegments(path, pattern string) string {
	path = filepath.ToSlash(path)
	n := strings.Count(strings.Trim(pattern, "/"), "/") + 1
	parts := strings.Split(path, "/")
	if len(parts) <= n {
		return path
	}
	return strings.Join(parts[:n], "/")
}

// HasCommaWithoutBrace reports whether pattern looks like a comma separated
// list that was meant to be a brace expansion, such as "a.md,b.md".
func HasCommaWithoutBrace(pattern string) bool {
	return strings.Contains(pattern, ",") && !strings.Contains(pattern, "{")
}

// Relativizer turns query paths into paths relative to a project root.
type Relativizer struct {
	root string
	fs   fileSystem
}

// NewRelativizer returns a Relativizer for root. An empty root disables rewriting.
func NewRelativizer(root string) *Relativizer {
	return &Relativizer{root: root, fs: newDefaultFileSystem()}
}

// Rel canonicalizes path and root and returns path relative to root. When
// either cannot be canonicalized, or path is outside root, path is returned unchanged.
func (r *Relativizer) Rel(path string) string {
	if r == nil || r.root == "" {
		return path
	}
	canonicalPath, err := r.canonical(path)
	if err != nil {
		return path
	}
	canonicalRoot, err := r.canonical(r.root)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(canonicalRoot, canonicalPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

func (r *Relativizer) canonical(path string) (string, error) {
	abs, err := r.fs.Abs(path)
	if err != nil {
		return "", err
	}
	return r.fs.EvalSymlinks(abs)
}
