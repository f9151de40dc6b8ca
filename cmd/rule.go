package cmd

import (
	"fmt"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	errUtils "github.com/mdlint/mdlint/errors"
	"github.com/mdlint/mdlint/pkg/registry"
	"github.com/mdlint/mdlint/pkg/rules"
	"github.com/mdlint/mdlint/pkg/validate"
)

func (a *app) newRuleCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rule <name>",
		Short:   "Describe a rule and its options",
		Example: "  mdlint rule MD013\n  mdlint rule line-length",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, ok := a.registry.ResolveRuleName(args[0])
			if !ok {
				return unknownRuleError(args[0])
			}
			desc, ok := rules.Lookup(id)
			if !ok {
				return unknownRuleError(args[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", desc.ID, desc.Alias)
			fmt.Fprintf(out, "  %s\n", desc.Description)
			if desc.OptIn {
				fmt.Fprintln(out, "  Opt-in: enable with extend-enable or enable")
			}

			opts := desc.DefaultOptions()
			keys := lo.Keys(opts)
			sort.Strings(keys)
			if len(keys) == 0 {
				return nil
			}
			fmt.Fprintln(out, "\nOptions:")
			for _, k := range keys {
				v := opts[k]
				if rules.IsUnset(v) {
					fmt.Fprintf(out, "  %s (unset)\n", k)
					continue
				}
				fmt.Fprintf(out, "  %s = %v\n", k, v)
			}
			return nil
		},
	}
}

func unknownRuleError(name string) error {
	b := errUtils.Build(errors.Wrapf(errUtils.ErrUnknownRule, "%s", name))
	if s, ok := validate.SuggestSimilar(name, registry.AllRuleNames()); ok {
		b = b.WithHintf("Did you mean %s?", s)
	}
	return b.Err()
}
