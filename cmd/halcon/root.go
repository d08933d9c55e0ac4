package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/epichalcon/halcon-language/repl"
	"github.com/epichalcon/halcon-language/runner"
)

const (
	banner = `
    ▄▄▄▄                       ▄▄▄  ▄▄▄     ██
  ██▀▀▀▀█                      ███  ███     ▀▀
 ██         ▄████▄             ████████   ████     ▀██  ██▀
 ██  ▄▄▄▄  ██▀  ▀██            ██ ██ ██     ██       ████
 ██  ▀▀██  ██    ██   █████    ██ ▀▀ ██     ██       ▄██▄
  ██▄▄▄██  ▀██▄▄██▀            ██    ██  ▄▄▄██▄▄▄   ▄█▀▀█▄
    ▀▀▀▀     ▀▀▀▀              ▀▀    ▀▀  ▀▀▀▀▀▀▀▀  ▀▀▀  ▀▀▀
`
	version = "v0.1.0"
	author  = "epichalcon"
	line    = "----------------------------------------------------------------"
)

// NewRootCmd builds the halcon CLI: `halcon [<input>]`. With no argument it
// starts the REPL; with one, it runs that source file.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "halcon [<input>]",
		Short:   "halcon - a small expression-oriented scripting language",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				r := repl.NewRepl(banner, version, author, line)
				r.Start(os.Stdin, os.Stdout)
				return nil
			}

			code := runner.RunFile(args[0], os.Stdout, os.Stderr)
			if code != 0 {
				os.Exit(code)
			}
			return nil
		},
	}
	return cmd
}
