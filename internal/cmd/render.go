package cmd

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ezerfernandes/litdoc/internal/render"
	"github.com/spf13/cobra"
)

//go:embed help/render.md
var renderHelp string

var errMissingOut = errors.New("--out is required when rendering more than one file")

type renderOptions struct {
	out   string
	title string
	hooks []string
}

func renderCmd(opts *options) *cobra.Command {
	ropts := new(renderOptions)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "render [flags] [path...]",
		Aliases: []string{"r"},
		Short:   "Render source files as literate HTML pages",
		Long:    renderHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := collect(args, opts.stdin, opts.include)
			if err != nil {
				return err
			}

			names, err := opts.rendererNames()
			if err != nil {
				return err
			}

			doc, err := render.Select(names)
			if err != nil {
				return err
			}

			opts.status("using %s renderer\n", doc.Name())

			return renderRun(cmd, inputs, doc, ropts, opts)
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().StringVarP(&ropts.out, "out", "o", "", "output file, or directory when rendering several files")
	cmd.Flags().StringVarP(&ropts.title, "title", "t", "", "page title (default: file name)")
	cmd.Flags().StringVar(&opts.Renderers, "renderers", opts.Renderers, "documentation renderers in order of preference: "+strings.Join(render.Names(), ", "))
	cmd.Flags().StringArrayVar(&ropts.hooks, "hook", nil, "shell command run after rendering, documentation HTML on stdin")

	return cmd
}

func renderRun(cmd *cobra.Command, inputs []*input, doc render.DocRenderer, ropts *renderOptions, opts *options) error {
	if len(inputs) > 1 && len(ropts.out) == 0 {
		return errMissingOut
	}

	for _, in := range inputs {
		blocks, err := extract(in, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", in.name, err)
		}

		title := ropts.title
		if len(title) == 0 {
			title = filepath.Base(in.name)
		}

		hooks := make([]render.Hook, 0, len(ropts.hooks))
		for _, scr := range ropts.hooks {
			hooks = append(hooks, shellHook(cmd.Context(), scr, title, cmd.ErrOrStderr(), opts.status))
		}

		var buff bytes.Buffer

		if err := render.New(doc, hooks...).Render(&buff, title, blocks); err != nil {
			return fmt.Errorf("%s: %w", in.name, err)
		}

		if err := writeOutput(cmd.OutOrStdout(), outputPath(in, ropts.out, len(inputs) > 1), buff.Bytes()); err != nil {
			return err
		}

		opts.status("%s: rendered %d block(s)\n", in.name, len(blocks))
	}

	return nil
}

// outputPath returns where the page for in is written; empty means stdout.
func outputPath(in *input, out string, multi bool) string {
	if !multi {
		return out
	}

	rel := in.rel
	if rel == stdinName {
		rel = "stdin"
	}

	return filepath.Join(out, filepath.FromSlash(rel)+".html")
}

func writeOutput(stdout io.Writer, name string, data []byte) error {
	if len(name) == 0 {
		_, err := stdout.Write(data)

		return err
	}

	if err := os.MkdirAll(filepath.Dir(name), dirMode); err != nil {
		return err
	}

	return os.WriteFile(name, data, fileMode)
}
