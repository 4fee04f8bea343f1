package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/ian-shakespeare/gmplus/internal/config"
	"github.com/ian-shakespeare/gmplus/internal/frontend"
	"github.com/ian-shakespeare/gmplus/internal/logs"
)

type section int

const (
	HEADER_SECTION section = 1 << iota
	TOKENS_SECTION
	TREE_SECTION
)

type options struct {
	configFile string
	strict     bool
	format     string
	indent     int
	logLevel   string
	logFile    string
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "gmplus <path>",
		Short: "Tokenize and parse a gmplus source file",
		Long: `gmplus runs the front end of the gmplus language over one source file
and prints what it produced.

Commands:
  (none)   header, tokens and syntax tree
  tokens   tokens only
  parse    syntax tree only
  version  build information`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0], HEADER_SECTION|TOKENS_SECTION|TREE_SECTION)
		},
	}

	defaults := config.Default()
	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (.toml, .yaml or .yml)")
	flags.BoolVar(&opts.strict, "strict", defaults.Strict, "strict mode (reported, not yet enforced)")
	flags.StringVar(&opts.format, "format", defaults.Format, "output format: text or yaml")
	flags.IntVar(&opts.indent, "indent", defaults.Indent, "spaces per tree level")
	flags.StringVar(&opts.logLevel, "log-level", defaults.LogLevel, "log level: debug, info, warn or error")
	flags.StringVar(&opts.logFile, "log-file", defaults.LogFile, "append JSON logs to this file")

	root.SetOut(out)
	root.SetErr(errOut)
	root.AddCommand(
		&cobra.Command{
			Use:   "tokens <path>",
			Short: "Print the tokens of a source file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, opts, args[0], TOKENS_SECTION)
			},
		},
		&cobra.Command{
			Use:   "parse <path>",
			Short: "Print the syntax tree of a source file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, opts, args[0], TREE_SECTION)
			},
		},
		newVersionCmd(),
	)

	return root
}

// settings merges the config file, if any, with the flags set explicitly.
func settings(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg := config.Default()
	if opts.configFile != "" {
		loaded, err := config.Load(opts.configFile)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("strict") {
		cfg.Strict = opts.strict
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("indent") {
		cfg.Indent = opts.indent
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}

	return cfg, cfg.Validate()
}

func run(cmd *cobra.Command, opts *options, path string, sections section) error {
	cfg, err := settings(cmd, opts)
	if err != nil {
		return err
	}

	logger, closer, err := logs.New(logs.Options{
		Level:    cfg.LogLevel,
		Terminal: cmd.ErrOrStderr(),
		File:     cfg.LogFile,
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	logger.Debug("settings", "path", path, "strict", cfg.Strict, "format", cfg.Format)

	result, err := frontend.New(logger).BuildFile(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	r := &renderer{format: cfg.Format, indent: cfg.Indent}

	if sections&HEADER_SECTION != 0 {
		if err := r.header(out, path, cfg.Strict); err != nil {
			return err
		}
	}
	if sections&TOKENS_SECTION != 0 {
		if err := r.tokens(out, result.Tokens); err != nil {
			return err
		}
	}
	if sections&TREE_SECTION != 0 {
		if err := r.tree(out, result.Program); err != nil {
			return err
		}
	}

	return r.close()
}
