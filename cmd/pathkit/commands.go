// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathkit

package main

import (
	"io"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/woozymasta/pathkit"
)

// eachArg builds command printing fn(arg) for every argument.
func (c *cli) eachArg(use string, short string, fn func(string) string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <path>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			for _, arg := range args {
				res := fn(arg)
				level.Debug(c.logger).Log("msg", use, "flavor", c.flavor, "in", arg, "out", res)
				if err := c.println(res); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func (c *cli) normalizeCommand() *cobra.Command {
	return c.eachArg("normalize", "Collapse dot segments and redundant separators", func(p string) string {
		return c.flavor.Normalize(p)
	})
}

func (c *cli) dirnameCommand() *cobra.Command {
	return c.eachArg("dirname", "Print path without its last segment", func(p string) string {
		return c.flavor.Dirname(p)
	})
}

func (c *cli) extnameCommand() *cobra.Command {
	return c.eachArg("extname", "Print extension of last segment", func(p string) string {
		return c.flavor.Extname(p)
	})
}

func (c *cli) namespacedCommand() *cobra.Command {
	return c.eachArg("namespaced", `Print Win32 long-path (\\?\) form`, func(p string) string {
		return c.flavor.ToNamespacedPathEnv(c.env(), p)
	})
}

func (c *cli) basenameCommand() *cobra.Command {
	var suffix string

	cmd := c.eachArg("basename", "Print last path segment", func(p string) string {
		return c.flavor.BasenameSuffix(p, suffix)
	})
	cmd.Flags().StringVar(&suffix, "suffix", "", "Suffix to strip from the segment")

	return cmd
}

func (c *cli) joinCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "join <part>...",
		Short: "Join parts with flavor separator and normalize",
		RunE: func(_ *cobra.Command, args []string) error {
			return c.println(c.flavor.Join(args...))
		},
	}
}

func (c *cli) resolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <part>...",
		Short: "Resolve parts into an absolute path",
		RunE: func(_ *cobra.Command, args []string) error {
			return c.println(c.flavor.ResolveEnv(c.env(), args...))
		},
	}
}

func (c *cli) relativeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "relative <from> <to>",
		Short: "Print path from one location to another",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return c.println(c.flavor.RelativeEnv(c.env(), args[0], args[1]))
		},
	}
}

func (c *cli) parseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <path>",
		Short: "Decompose path into root, dir, base, name and ext",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			pp := c.flavor.Parse(args[0])

			return c.writeValue(pp, func(w io.Writer) error {
				_, err := io.WriteString(w, joinLines(
					"root", pp.Root,
					"dir", pp.Dir,
					"base", pp.Base,
					"name", pp.Name,
					"ext", pp.Ext,
				))
				return err
			})
		},
	}
}

func (c *cli) tempdirCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tempdir",
		Short: "Print temporary directory for flavor",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.println(c.flavor.TempDir(c.env()))
		},
	}
}

func (c *cli) execdirCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "execdir",
		Short: "Print directory of the running executable",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.println(c.flavor.ExecutableDir(c.env()))
		},
	}
}

func (c *cli) appdirsCommand() *cobra.Command {
	var opts pathkit.AppDirsOptions

	cmd := &cobra.Command{
		Use:   "appdirs <name>",
		Short: "Print per-application data, config, cache, log and temp directories",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			dirs := pathkit.NewAppDirs(c.env(), args[0], opts)

			return c.writeValue(dirs, func(w io.Writer) error {
				_, err := io.WriteString(w, joinLines(
					"data", dirs.Data,
					"config", dirs.Config,
					"cache", dirs.Cache,
					"log", dirs.Log,
					"temp", dirs.Temp,
				))
				return err
			})
		},
	}
	cmd.Flags().StringVar(&opts.Suffix, "suffix", "", "Suffix appended to application name")
	cmd.Flags().StringVar(&opts.GOOS, "goos", "", "Directory layout: windows, darwin or any other GOOS for XDG")

	return cmd
}
