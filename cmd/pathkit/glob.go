// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathkit

package main

import (
	"fmt"
	"io"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/woozymasta/pathkit"
)

// globFlags binds GlobOptions fields to command flags.
type globFlags struct {
	opts pathkit.GlobOptions
}

func (g *globFlags) register(fs *pflag.FlagSet) {
	fs.BoolVar(&g.opts.Extended, "extended", true, "Enable extglob groups, ?, bracket expressions and braces")
	fs.BoolVar(&g.opts.Globstar, "globstar", true, "Make ** match zero or more path segments")
	fs.BoolVar(&g.opts.Strict, "strict", false, "Match every separator in the glob literally")
	fs.BoolVar(&g.opts.Filepath, "filepath", true, "Build path and per-segment regexes")
}

// options returns glob options with command flavor applied.
func (g *globFlags) options(flavor pathkit.Flavor) pathkit.GlobOptions {
	opts := g.opts
	opts.Flavor = flavor

	return opts
}

// globReport is structured output of glob command.
type globReport struct {
	Glob     string   `json:"glob" yaml:"glob"`
	Regex    string   `json:"regex" yaml:"regex"`
	Path     string   `json:"path,omitempty" yaml:"path,omitempty"`
	Segments []string `json:"segments,omitempty" yaml:"segments,omitempty"`
	Globstar string   `json:"globstar,omitempty" yaml:"globstar,omitempty"`
}

func (c *cli) globCommand() *cobra.Command {
	var gf globFlags

	cmd := &cobra.Command{
		Use:   "glob <glob>",
		Short: "Print regular expressions compiled from a glob",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := pathkit.CompileGlob(args[0], gf.options(c.flavor))
			if err != nil {
				level.Error(c.logger).Log("msg", "compile glob", "glob", args[0], "err", err)
				return err
			}

			report := globReport{
				Glob:     g.Source(),
				Regex:    g.Regex(),
				Path:     g.PathRegex(),
				Segments: g.PathSegments(),
				Globstar: g.GlobstarRegex(),
			}

			return c.writeValue(report, func(w io.Writer) error {
				if _, err := fmt.Fprintf(w, "regex:    %s\n", report.Regex); err != nil {
					return err
				}
				if report.Path == "" {
					return nil
				}

				if _, err := fmt.Fprintf(w, "path:     %s\nglobstar: %s\n", report.Path, report.Globstar); err != nil {
					return err
				}
				for i, seg := range report.Segments {
					if _, err := fmt.Fprintf(w, "segment %d: %s\n", i, seg); err != nil {
						return err
					}
				}

				return nil
			})
		},
	}
	gf.register(cmd.Flags())

	return cmd
}

func (c *cli) matchCommand() *cobra.Command {
	var (
		gf    globFlags
		quiet bool
	)

	cmd := &cobra.Command{
		Use:   "match <glob> <text>...",
		Short: "Match texts against a glob",
		Long: `Match prints every text followed by "true" or "false". With --quiet
nothing is printed and the command fails unless every text matched.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := pathkit.CompileGlob(args[0], gf.options(c.flavor))
			if err != nil {
				level.Error(c.logger).Log("msg", "compile glob", "glob", args[0], "err", err)
				return err
			}

			failed := 0
			for _, text := range args[1:] {
				ok := g.MatchPath(text)
				level.Debug(c.logger).Log("msg", "match", "glob", args[0], "text", text, "matched", ok)
				if !ok {
					failed++
				}

				if quiet {
					continue
				}
				if _, err := fmt.Fprintf(c.out, "%s\t%t\n", text, ok); err != nil {
					return err
				}
			}

			if quiet && failed > 0 {
				return fmt.Errorf("%d of %d texts did not match", failed, len(args)-1)
			}

			return nil
		},
	}
	gf.register(cmd.Flags())
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print nothing, fail when any text does not match")

	return cmd
}
