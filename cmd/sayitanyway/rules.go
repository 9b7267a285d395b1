package main

import (
	"os"

	"github.com/spf13/cobra"

	"sayitanyway/internal/core/rulepack"
	perr "sayitanyway/internal/platform/errors"
)

type ruleView struct {
	ID          string   `json:"id"`
	Tier        string   `json:"tier,omitempty"`
	Description string   `json:"description,omitempty"`
	Pattern     string   `json:"pattern"`
	Examples    []string `json:"examples,omitempty"`
}

type packReport struct {
	Version    int                    `json:"version"`
	Tiers      map[string]int         `json:"tiers"`
	Exclusions int                    `json:"exclusions"`
	Misses     []rulepack.ExampleMiss `json:"misses"`
}

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect and validate screening rule packs",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show [file]",
			Short: "List the compiled rules, highest tier first",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := loadPack(args)
				if err != nil {
					return err
				}
				out := struct {
					Exclusions []ruleView `json:"exclusions"`
					Rules      []ruleView `json:"rules"`
				}{viewRules(p.Exclusions), viewRules(p.Rules)}
				return printJSON(cmd.OutOrStdout(), out)
			},
		},
		&cobra.Command{
			Use:   "check [file]",
			Short: "Compile a pack and verify every rule matches its examples",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := loadPack(args)
				if err != nil {
					return err
				}
				rep := packReport{
					Version:    p.Version,
					Tiers:      map[string]int{},
					Exclusions: len(p.Exclusions),
					Misses:     p.CheckExamples(),
				}
				for _, r := range p.Rules {
					rep.Tiers[r.Tier.String()]++
				}
				if rep.Misses == nil {
					rep.Misses = []rulepack.ExampleMiss{}
				}
				if err := printJSON(cmd.OutOrStdout(), rep); err != nil {
					return err
				}
				if n := len(rep.Misses); n > 0 {
					return perr.Newf(perr.ErrorCodeValidation, "%d rule examples did not match", n)
				}
				return nil
			},
		},
	)
	return cmd
}

// loadPack reads the pack at args[0], or the embedded one when no file is given
func loadPack(args []string) (*rulepack.Pack, error) {
	if len(args) == 0 || args[0] == "" {
		return rulepack.Load()
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "read %s", args[0])
	}
	p, err := rulepack.Parse(b)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeValidation, "compile rule pack")
	}
	return p, nil
}

func viewRules(rules []rulepack.Rule) []ruleView {
	out := make([]ruleView, 0, len(rules))
	for _, r := range rules {
		v := ruleView{ID: r.ID, Description: r.Description, Pattern: r.Pattern, Examples: r.Examples}
		if r.Tier != 0 {
			v.Tier = r.Tier.String()
		}
		out = append(out, v)
	}
	return out
}
