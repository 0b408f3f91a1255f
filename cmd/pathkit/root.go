// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathkit

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/pathkit"
)

// cli holds state shared by all subcommands.
type cli struct {
	out    io.Writer
	errOut io.Writer
	logger log.Logger

	flavor    pathkit.Flavor
	cwd       string
	logLevel  string
	logFormat string
	output    string
}

// cwdEnv is process environment with optional working directory override.
type cwdEnv struct {
	pathkit.OSEnv
	dir string
}

// Cwd returns override directory when set.
func (e cwdEnv) Cwd() string {
	if e.dir != "" {
		return e.dir
	}

	return e.OSEnv.Cwd()
}

func newRootCommand(out io.Writer, errOut io.Writer) *cobra.Command {
	c := &cli{
		out:       out,
		errOut:    errOut,
		logger:    log.NewNopLogger(),
		flavor:    pathkit.Native,
		logLevel:  "info",
		logFormat: "logfmt",
		output:    "text",
	}

	cmd := &cobra.Command{
		Use:   "pathkit",
		Short: "Path normalization and glob matching toolkit",
		Long: `pathkit normalizes POSIX and Win32 paths, compiles shell globs into
regular expressions and evaluates gitignore-like include/exclude rules.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			logger, err := newLogger(c.errOut, c.logFormat, c.logLevel)
			if err != nil {
				return err
			}
			c.logger = logger

			switch c.output {
			case "text", "json", "yaml":
				return nil
			default:
				return fmt.Errorf("unsupported output format %q", c.output)
			}
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.PersistentFlags()
	flags.Var(&c.flavor, "flavor", "Path flavor: posix, win32 or native")
	flags.StringVar(&c.cwd, "cwd", "", "Working directory used by resolve and relative, defaults to process cwd")
	flags.StringVar(&c.logLevel, "log.level", c.logLevel, "Log level: debug, info, warn or error")
	flags.StringVar(&c.logFormat, "log.format", c.logFormat, "Log format: logfmt or json")
	flags.StringVarP(&c.output, "output", "o", c.output, "Output format for structured results: text, json or yaml")

	cmd.AddCommand(
		c.normalizeCommand(),
		c.joinCommand(),
		c.resolveCommand(),
		c.relativeCommand(),
		c.dirnameCommand(),
		c.basenameCommand(),
		c.extnameCommand(),
		c.parseCommand(),
		c.namespacedCommand(),
		c.tempdirCommand(),
		c.execdirCommand(),
		c.appdirsCommand(),
		c.globCommand(),
		c.matchCommand(),
		c.decideCommand(),
	)

	return cmd
}

// env returns environment honoring --cwd.
func (c *cli) env() pathkit.Env {
	return cwdEnv{dir: c.cwd}
}

// println writes one result line.
func (c *cli) println(s string) error {
	_, err := fmt.Fprintln(c.out, s)
	return err
}

// writeValue prints v in selected structured output format; text uses
// fallback lines.
func (c *cli) writeValue(v any, text func(io.Writer) error) error {
	switch c.output {
	case "json":
		enc := json.NewEncoder(c.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

		return nil

	case "yaml":
		enc := yaml.NewEncoder(c.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return enc.Close()

	default:
		return text(c.out)
	}
}

// joinLines formats key/value pairs as aligned text lines.
func joinLines(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		fmt.Fprintf(&b, "%-9s %s\n", pairs[i]+":", pairs[i+1])
	}

	return b.String()
}
