// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathkit

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/woozymasta/pathkit"
)

// actionValue adapts pathkit.Action to pflag.Value.
type actionValue struct {
	action *pathkit.Action
}

func (v actionValue) String() string {
	if v.action == nil {
		return ""
	}

	return v.action.String()
}

func (v actionValue) Set(s string) error {
	return v.action.UnmarshalText([]byte(s))
}

func (actionValue) Type() string {
	return "action"
}

// decision is one decide command result line.
type decision struct {
	Path                string `json:"path" yaml:"path"`
	IsDir               bool   `json:"is_dir,omitempty" yaml:"is_dir,omitempty"`
	Pattern             string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	pathkit.MatchResult `yaml:",inline"`
}

func (c *cli) decideCommand() *cobra.Command {
	var (
		ruleFiles []string
		config    string
		exts      []string
		dirs      bool
		opts      = pathkit.MatcherOptions{DefaultAction: pathkit.ActionInclude}
	)

	cmd := &cobra.Command{
		Use:   "decide <path>...",
		Short: "Evaluate include/exclude rules for paths",
		Long: `Decide loads ordered rules and prints include or exclude for every path.

Rules come from a YAML rule set (--config) followed by rule files (--rules)
and extension filters (--ext). The last matching rule wins. A path ending
with "/" is treated as a directory. With --ext and no explicit default,
paths matching no rule are excluded.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var sets [][]pathkit.Rule

			defaultSet := cmd.Flags().Changed("default")
			if config != "" {
				rs, err := loadRuleSet(config)
				if err != nil {
					return err
				}

				sets = append(sets, rs.Rules)
				if !defaultSet && rs.Options.DefaultAction != pathkit.ActionUnknown {
					opts.DefaultAction = rs.Options.DefaultAction
					defaultSet = true
				}
				opts.Glob = rs.Options.Glob
				opts.CaseInsensitive = opts.CaseInsensitive || rs.Options.CaseInsensitive
			}

			fileRules, err := pathkit.LoadRulesFiles(ruleFiles...)
			if err != nil {
				return err
			}
			extRules := pathkit.ParseExtensions(exts)
			sets = append(sets, fileRules, extRules)

			// Extension filter keeps only listed extensions unless default is explicit.
			if len(extRules) > 0 && !defaultSet {
				opts.DefaultAction = pathkit.ActionExclude
			}

			rules := pathkit.MergeRules(sets...)
			m, err := pathkit.NewMatcher(rules, opts)
			if err != nil {
				return err
			}
			level.Debug(c.logger).Log("msg", "matcher ready", "rules", m.Len(), "default", opts.DefaultAction)

			out := make([]decision, 0, len(args))
			for _, arg := range args {
				isDir := dirs || strings.HasSuffix(arg, "/") || strings.HasSuffix(arg, `\`)
				res := m.Decide(arg, isDir)

				d := decision{Path: arg, IsDir: isDir, MatchResult: res}
				if res.Matched {
					d.Pattern = rules[res.RuleIndex].Pattern
				}
				level.Debug(c.logger).Log("msg", "decide", "path", arg, "dir", isDir, "included", res.Included, "rule", res.RuleIndex)

				out = append(out, d)
			}

			return c.writeValue(out, func(w io.Writer) error {
				for _, d := range out {
					action := pathkit.ActionExclude
					if d.Included {
						action = pathkit.ActionInclude
					}

					line := action.String() + "\t" + d.Path
					if d.Matched {
						line += "\t" + d.Pattern
					}
					if _, err := fmt.Fprintln(w, line); err != nil {
						return err
					}
				}

				return nil
			})
		},
	}

	fs := cmd.Flags()
	fs.StringArrayVarP(&ruleFiles, "rules", "r", nil, "Rules file, text or YAML; repeatable, applied in order")
	fs.StringVarP(&config, "config", "c", "", "YAML rule set with matcher options")
	fs.StringSliceVar(&exts, "ext", nil, "Include only these file extensions, exclude other paths unless --default is set")
	fs.BoolVar(&dirs, "dir", false, "Treat every path as a directory")
	fs.BoolVarP(&opts.CaseInsensitive, "case-insensitive", "i", false, "Match rules ignoring ASCII case")
	fs.Var(actionValue{&opts.DefaultAction}, "default", "Action when no rule matches: include or exclude")

	return cmd
}

// loadRuleSet reads YAML rule set with matcher options.
func loadRuleSet(path string) (pathkit.RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return pathkit.RuleSet{}, fmt.Errorf("open rule set: %w", err)
	}
	defer f.Close()

	rs, err := pathkit.ParseRuleSet(f)
	if err != nil {
		return pathkit.RuleSet{}, fmt.Errorf("parse rule set %s: %w", path, err)
	}

	return rs, nil
}
