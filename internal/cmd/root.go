// Package cmd implements the litdoc command line.
package cmd

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

//go:embed help/root.md
var rootHelp string

// Execute runs the litdoc command with args and exits with a non-zero status
// on failure.
func Execute(args []string, stdout, stderr io.Writer) {
	if err := run(args, os.Stdin, stdout, stderr); err != nil {
		fmt.Fprintln(stderr, "litdoc:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := loadOptions()
	if err != nil {
		return err
	}

	opts.stdin = stdin

	root := rootCmd(opts)

	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return root.Execute()
}

func rootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{ //nolint:exhaustruct
		Use:   "litdoc",
		Short: "Extract and render literate documentation from source files",
		Long:  rootHelp,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.createStatus(cmd.ErrOrStderr())

			return opts.prepare()
		},

		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	syntaxFlags(root, opts)
	quietFlag(root, opts)

	root.AddCommand(extractCmd(opts), renderCmd(opts))

	return root
}
