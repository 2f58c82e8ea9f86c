package cli

import "github.com/spf13/cobra"

// NewConfigCommand creates the config command.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after applying defaults, the --config file and
flag overrides. The output is a valid config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := rootOpts.Config().Marshal()
			if err != nil {
				return commandError("printing config", err)
			}

			_, err = cmd.OutOrStdout().Write(out)

			return err
		},
	}

	return cmd
}
