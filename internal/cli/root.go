package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"array-as-struct/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
	Tag        string

	// config is resolved in PersistentPreRunE.
	config *config.Config
}

// Config returns the configuration resolved from the flags. It is only
// valid once the root command started running.
func (o *RootOptions) Config() *config.Config {
	if o.config == nil {
		return config.Default()
	}

	return o.config
}

// resolve loads the config file and applies flag overrides.
func (o *RootOptions) resolve() error {
	cfg, err := config.LoadFile(o.ConfigPath)
	if err != nil {
		return err
	}

	if o.Tag != "" {
		cfg.Tag = o.Tag
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	o.config = cfg

	return nil
}

// NewRootCommand creates the root command of arraystruct-gen.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "arraystruct-gen",
		Short: "Generate array-backed structs",
		Long: `arraystruct-gen rewrites annotated named-field structs into fixed-size
array types with named access.

Template files carry "//go:build arraystruct" and mark declarations with
"//arraystruct:generate". Each template foo.go produces foo_arraystruct.go,
built whenever the template is not.`,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // main reports errors with their exit code
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd.ErrOrStderr(), opts.Verbose)

			return opts.resolve()
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "YAML configuration file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Tag, "tag", "", "template build tag (overrides the config file)")

	cmd.AddCommand(NewGenCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewConfigCommand(opts))

	return cmd
}

// setupLogging installs the default slog logger writing text to w.
func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
