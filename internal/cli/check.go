package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
)

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [packages|files...]",
		Short: "Check templates and report stale outputs",
		Long: `Run the generator without writing anything. Reports every diagnostic and
every output file that is missing or differs from what gen would write,
and every leftover output whose template no longer generates anything.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, rootOpts, args)
		},
	}

	return cmd
}

func runCheck(cmd *cobra.Command, rootOpts *RootOptions, args []string) error {
	result, err := Run(cmd.Context(), rootOpts.Config(), args)
	if err != nil {
		return commandError("check failed", err)
	}

	printDiagnostics(cmd.ErrOrStderr(), result.Diagnostics)

	stale := 0
	for _, file := range result.Files {
		current, err := os.ReadFile(file.Filename)

		switch {
		case errors.Is(err, fs.ErrNotExist):
			fmt.Fprintf(cmd.OutOrStdout(), "%s: missing\n", file.Filename)
			stale++
		case err != nil:
			return commandError("reading output", err)
		case !bytes.Equal(current, file.Content):
			fmt.Fprintf(cmd.OutOrStdout(), "%s: out of date\n", file.Filename)
			stale++
		}
	}

	for _, path := range result.Orphans {
		_, err := os.Stat(path)

		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return commandError("reading output", err)
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "%s: stale, no declaration generates it\n", path)
			stale++
		}
	}

	if err := failures(result); err != nil {
		return err
	}

	if stale > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d output file(s) need regenerating", stale))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d declaration(s) up to date\n", result.Declarations)

	return nil
}
