package config

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/samber/lo"

	errUtils "github.com/mdlint/mdlint/errors"
	log "github.com/mdlint/mdlint/pkg/logger"
	"github.com/mdlint/mdlint/pkg/provenance"
)

// LoadFile parses path and follows its extends chain, returning a single
// fragment in which the file's own settings overlay everything it inherits.
// Every fragment in the chain takes src as its source. The bool is false when
// path is a pyproject.toml without a [tool.mdlint] table.
func LoadFile(path string, src provenance.Source) (*Fragment, bool, error) {
	return loadChain(path, src, nil)
}

func loadChain(path string, src provenance.Source, chain []string) (*Fragment, bool, error) {
	canonical := canonicalPath(path)
	if lo.Contains(chain, canonical) {
		return nil, false, &errUtils.CircularExtendsError{Path: path, Chain: chain}
	}
	if len(chain) > MaxExtendsDepth {
		return nil, false, &errUtils.ExtendsDepthError{Path: path, MaxDepth: MaxExtendsDepth}
	}

	frag, found, err := ParseFile(path, src)
	if err != nil || !found {
		return nil, found, err
	}
	log.Debug("Loaded config file", "path", path, "source", src)
	if frag.Extends == "" {
		return frag, true, nil
	}

	target, err := resolveExtends(frag.Extends, path)
	if err != nil {
		return nil, false, err
	}
	log.Debug("Following extends", "from", path, "to", target, "depth", len(chain)+1)

	next := append(append([]string(nil), chain...), canonical)
	parent, found, err := loadChain(target, src, next)
	if err != nil {
		return nil, false, err
	}
	if !found {
		parent = NewFragment(src, target)
	}
	parent.overlay(frag)
	return parent, true, nil
}

// resolveExtends expands ~ and resolves ref relative to the referring file.
func resolveExtends(ref, from string) (string, error) {
	expanded, err := homedir.Expand(ref)
	if err != nil {
		return "", &errUtils.ExtendsNotFoundError{Path: ref, From: from}
	}
	if !filepath.IsAbs(expanded) {
		expanded = filepath.Join(filepath.Dir(from), expanded)
	}
	if _, err := os.Stat(expanded); err != nil {
		return "", &errUtils.ExtendsNotFoundError{Path: expanded, From: from}
	}
	return expanded, nil
}

// canonicalPath resolves symlinks so one file reached two ways compares equal.
func canonicalPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
