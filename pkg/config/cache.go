package config

import (
	"sort"

	"github.com/samber/lo"

	"github.com/mdlint/mdlint/pkg/filematch"
	"github.com/mdlint/mdlint/pkg/flavor"
	log "github.com/mdlint/mdlint/pkg/logger"
	"github.com/mdlint/mdlint/pkg/registry"
)

type ignoreCache struct {
	set   *filematch.Set
	rules [][]string
}

func newIgnoreCache(table map[string][]string) *ignoreCache {
	patterns := lo.Keys(table)
	sort.Strings(patterns)

	rulesByPattern := lo.Map(patterns, func(p string, _ int) []string {
		return lo.Map(table[p], func(name string, _ int) string {
			return registry.ResolveRuleNameOrNormalize(name)
		})
	})
	return &ignoreCache{set: filematch.NewSet(patterns), rules: rulesByPattern}
}

type flavorMatcher struct {
	matcher filematch.Matcher
	flavor  flavor.Flavor
}

type flavorCache struct {
	matchers []flavorMatcher
}

func newFlavorCache(patterns []FlavorPattern) *flavorCache {
	c := &flavorCache{}
	for _, fp := range patterns {
		m, err := filematch.NewMatcher(fp.Pattern)
		if err != nil {
			log.Warn("Invalid glob pattern in per-file-flavor", "pattern", fp.Pattern, "error", err)
			continue
		}
		c.matchers = append(c.matchers, flavorMatcher{matcher: m, flavor: fp.Flavor})
	}
	return c
}

// IgnoredRulesForFile returns the sorted canonical ids of rules that
// per-file-ignores turns off for path.
func (c *Configuration) IgnoredRulesForFile(path string) []string {
	if len(c.PerFileIgnores) == 0 {
		return nil
	}
	c.ignoreOnce.Do(func() {
		c.ignore = newIgnoreCache(c.PerFileIgnores)
	})

	var out []string
	for _, idx := range c.ignore.set.Matches(c.relativize(path)) {
		out = append(out, c.ignore.rules[idx]...)
	}
	if len(out) == 0 {
		return nil
	}
	out = lo.Uniq(out)
	sort.Strings(out)
	return out
}

// FlavorForFile returns the dialect for path: the first matching
// per-file-flavor pattern, else a non-standard global flavor, else the
// flavor implied by the file extension.
func (c *Configuration) FlavorForFile(path string) flavor.Flavor {
	if len(c.PerFileFlavor) > 0 {
		c.flavorOnce.Do(func() {
			c.flavors = newFlavorCache(c.PerFileFlavor)
		})
		rel := c.relativize(path)
		for _, m := range c.flavors.matchers {
			if m.matcher.Match(rel) {
				return m.flavor
			}
		}
	}
	if c.Global.Flavor != flavor.Standard {
		return c.Global.Flavor
	}
	return flavor.FromPath(path)
}
