package cmd

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ezerfernandes/litdoc/internal/litdoc"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

//go:embed help/extract.md
var extractHelp string

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// record is the serialized form of a block.
type record struct {
	File      string `json:"file" yaml:"file"`
	StartLine int    `json:"startLine" yaml:"startLine"`
	LineCount int    `json:"lineCount" yaml:"lineCount"`
	CodeEnd   int    `json:"codeEnd" yaml:"codeEnd"`
	Doc       string `json:"doc" yaml:"doc"`
	Code      string `json:"code" yaml:"code"`
}

func extractCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "extract [flags] [path...]",
		Aliases: []string{"x"},
		Short:   "List the documentation blocks of source files",
		Long:    extractHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := collect(args, opts.stdin, opts.include)
			if err != nil {
				return err
			}

			return extractRun(cmd.OutOrStdout(), inputs, opts)
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", opts.Format, "output format: table, json or yaml")

	return cmd
}

func extractRun(out io.Writer, inputs []*input, opts *options) error {
	records := make([]*record, 0)

	for _, in := range inputs {
		blocks, err := extract(in, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", in.name, err)
		}

		opts.status("%s: %d block(s)\n", in.name, len(blocks))

		for _, block := range blocks {
			records = append(records, newRecord(in.name, block))
		}
	}

	switch opts.Format {
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return enc.Encode(records)
	case formatYAML:
		return yaml.NewEncoder(out).Encode(records)
	default:
		printTable(out, records)

		return nil
	}
}

func newRecord(file string, block *litdoc.Block) *record {
	return &record{
		File:      file,
		StartLine: block.StartLine,
		LineCount: block.LineCount,
		CodeEnd:   block.CodeEnd,
		Doc:       block.Doc,
		Code:      block.Code,
	}
}

func printTable(out io.Writer, records []*record) {
	tbl := table.New("File", "Line", "Lines", "Code", "Title").WithWriter(out)

	for _, rec := range records {
		tbl.AddRow(rec.File, rec.StartLine+1, rec.LineCount, codeRange(rec), title(rec.Doc))
	}

	tbl.Print()
}

// codeRange returns the one-based line range of the code, or "-" if empty.
func codeRange(rec *record) string {
	first := rec.StartLine + rec.LineCount + 1
	if first > rec.CodeEnd {
		return "-"
	}

	return fmt.Sprintf("%d-%d", first, rec.CodeEnd)
}

// maxTitle is the width of the Title column.
const maxTitle = 60

// title returns the first non-blank documentation line.
func title(doc string) string {
	for _, line := range strings.Split(doc, "\n") {
		if line = strings.TrimSpace(line); len(line) == 0 {
			continue
		}

		if len(line) > maxTitle {
			return line[:maxTitle-3] + "..."
		}

		return line
	}

	return ""
}
