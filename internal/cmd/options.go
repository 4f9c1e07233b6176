package cmd

import (
	"fmt"
	"io"

	"github.com/ezerfernandes/litdoc/internal/litdoc"
	"github.com/go-playground/validator/v10"
	"github.com/gobwas/glob"
	"github.com/google/shlex"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

const (
	envPrefix      = "litdoc"

	dirMode  = 0o750
	fileMode = 0o600
)

type statusFunc func(format string, args ...interface{})

// options holds the settings shared by all subcommands. Exported fields are
// read from LITDOC_* environment variables and act as flag defaults.
type options struct {
	Open      string `envconfig:"OPEN" default:"/**" validate:"required"`
	Close     string `envconfig:"CLOSE" default:"*/" validate:"required"`
	Leader    string `envconfig:"LEADER" default:"*"`
	Include   string `envconfig:"INCLUDE" default:"**.{c,cc,cpp,cs,css,go,h,java,js,jsm,php,scala,swift,ts}" validate:"required"`
	Region    string `envconfig:"REGION"`
	Format    string `envconfig:"FORMAT" default:"table" validate:"oneof=table json yaml"`
	Renderers string `envconfig:"RENDERERS"`
	Quiet     bool   `envconfig:"QUIET"`

	status  statusFunc
	include glob.Glob
	stdin   io.Reader
}

func loadOptions() (*options, error) {
	opts := new(options)

	if err := envconfig.Process(envPrefix, opts); err != nil {
		return nil, err
	}

	return opts, nil
}

var validate = validator.New()

// prepare validates the options and compiles the include pattern.
func (opts *options) prepare() error {
	if err := validate.Struct(opts); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	if err := opts.syntax().Validate(); err != nil {
		return err
	}

	include, err := glob.Compile(opts.Include, '/')
	if err != nil {
		return fmt.Errorf("invalid include pattern %q: %w", opts.Include, err)
	}

	opts.include = include

	return nil
}

func (opts *options) syntax() litdoc.Syntax {
	return litdoc.Syntax{Open: opts.Open, Close: opts.Close, Leader: opts.Leader}
}

// rendererNames splits the shell-quoted renderer preference list.
func (opts *options) rendererNames() ([]string, error) {
	return shlex.Split(opts.Renderers)
}

func (opts *options) createStatus(w io.Writer) {
	if opts.Quiet {
		opts.status = func(string, ...interface{}) {}

		return
	}

	opts.status = func(format string, args ...interface{}) {
		fmt.Fprintf(w, format, args...)
	}
}

func syntaxFlags(cmd *cobra.Command, opts *options) {
	flags := cmd.PersistentFlags()

	flags.StringVar(&opts.Open, "open", opts.Open, "documentation comment opener")
	flags.StringVar(&opts.Close, "close", opts.Close, "documentation comment closer")
	flags.StringVar(&opts.Leader, "leader", opts.Leader, "prefix stripped from comment body lines")
	flags.StringVar(&opts.Include, "include", opts.Include, "glob selecting files inside directory arguments")
	flags.StringVar(&opts.Region, "region", opts.Region, "only extract the named #region of each file")
}

func quietFlag(cmd *cobra.Command, opts *options) {
	cmd.PersistentFlags().BoolVarP(&opts.Quiet, "quiet", "q", opts.Quiet, "suppress status messages")
}
