package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ezerfernandes/litdoc/internal/litdoc"
	"github.com/ezerfernandes/litdoc/internal/region"
	"github.com/gobwas/glob"
)

const stdinName = "-"

// input is one source file named on the command line or found below a
// directory argument.
type input struct {
	// name is the path shown to the user.
	name string
	// rel is the slash separated path relative to the argument.
	rel    string
	source string
}

// collect reads every input named by args. No arguments means stdin.
func collect(args []string, stdin io.Reader, include glob.Glob) ([]*input, error) {
	if len(args) == 0 {
		args = []string{stdinName}
	}

	var inputs []*input

	for _, arg := range args {
		if arg == stdinName {
			data, err := io.ReadAll(stdin)
			if err != nil {
				return nil, err
			}

			inputs = append(inputs, &input{name: stdinName, rel: stdinName, source: string(data)})

			continue
		}

		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			data, err := os.ReadFile(arg)
			if err != nil {
				return nil, err
			}

			inputs = append(inputs, &input{name: arg, rel: filepath.Base(arg), source: string(data)})

			continue
		}

		found, err := walkDir(os.DirFS(arg), include)
		if err != nil {
			return nil, err
		}

		for _, in := range found {
			in.name = filepath.Join(arg, filepath.FromSlash(in.rel))
		}

		inputs = append(inputs, found...)
	}

	return inputs, nil
}

// walkDir returns the regular files of fsys whose path matches include, in
// lexical order.
func walkDir(fsys fs.FS, include glob.Glob) ([]*input, error) {
	var inputs []*input

	err := fs.WalkDir(fsys, ".", func(name string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !entry.Type().IsRegular() || !include.Match(name) {
			return nil
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return err
		}

		inputs = append(inputs, &input{name: name, rel: path.Clean(name), source: string(data)})

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(inputs, func(i, j int) bool { return inputs[i].rel < inputs[j].rel })

	return inputs, nil
}

// extract splits the input into blocks, limited to the configured region.
// Line numbers stay relative to the whole file.
func extract(in *input, opts *options) (litdoc.Blocks, error) {
	source := litdoc.Normalize(in.source)
	offset := 0

	if len(opts.Region) != 0 {
		body, line, err := region.Read(source, opts.Region)
		if errors.Is(err, region.ErrNotFound) {
			if names := region.Names(source); len(names) != 0 {
				return nil, fmt.Errorf("%w (available: %s)", err, strings.Join(names, ", "))
			}
		}

		if err != nil {
			return nil, err
		}

		source, offset = strings.TrimSuffix(body, "\n"), line
	}

	blocks := opts.syntax().Extract(source)

	for _, block := range blocks {
		block.StartLine += offset
		block.CodeEnd += offset
	}

	return blocks, nil
}
