package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ezerfernandes/litdoc/internal/render"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// shellHook returns a hook running the shell command scr with the rendered
// documentation on stdin. Failures are reported through status.
func shellHook(ctx context.Context, scr, title string, out io.Writer, status statusFunc) render.Hook {
	return func(docs []*render.Doc) {
		var stdin strings.Builder

		for _, doc := range docs {
			stdin.WriteString(string(doc.HTML))
		}

		env := append(os.Environ(),
			"LITDOC_TITLE="+title,
			fmt.Sprintf("LITDOC_BLOCKS=%d", len(docs)),
		)

		exitCode, err := runCommand(ctx, scr, strings.NewReader(stdin.String()), out, env)
		if err != nil {
			status("warning: hook %q failed: %v\n", scr, err)

			return
		}

		if exitCode != 0 {
			status("warning: hook %q exited with %d\n", scr, exitCode)
		}
	}
}

func runCommand(ctx context.Context, command string, stdin io.Reader, out io.Writer, env []string) (int, error) {
	file, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil {
		return -1, err
	}

	runner, err := interp.New(interp.StdIO(stdin, out, out), interp.Env(expand.ListEnviron(env...)))
	if err != nil {
		return -1, err
	}

	if ctx == nil {
		ctx = context.Background()
	}

	err = runner.Run(ctx, file)
	if err != nil {
		if status, ok := interp.IsExitStatus(err); ok {
			return int(status), nil
		}

		return -1, err
	}

	return 0, nil
}
