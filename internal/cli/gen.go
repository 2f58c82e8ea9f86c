package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"array-as-struct/internal/diagnostic"
	"array-as-struct/internal/gen"
)

// GenOptions holds flags for the gen command.
type GenOptions struct {
	Stdout bool
}

// NewGenCommand creates the gen command.
func NewGenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenOptions{}

	cmd := &cobra.Command{
		Use:   "gen [packages|files...]",
		Short: "Generate array-backed structs from templates",
		Long: `Generate the output file of every template file in the given packages
or files. Arguments ending in .go are template files; anything else is a
package pattern. Without arguments the current package is used.

Each declaration is independent: one that fails is reported and left out
while the others are still generated. When every declaration of a template
fails, its previous output is removed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd, rootOpts, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.Stdout, "stdout", false, "print generated files instead of writing them")

	return cmd
}

func runGen(cmd *cobra.Command, rootOpts *RootOptions, opts *GenOptions, args []string) error {
	result, err := Run(cmd.Context(), rootOpts.Config(), args)
	if err != nil {
		return commandError("generation failed", err)
	}

	printDiagnostics(cmd.ErrOrStderr(), result.Diagnostics)

	if opts.Stdout {
		for _, file := range result.Files {
			fmt.Fprintf(cmd.OutOrStdout(), "// %s\n%s", file.Filename, file.Content)
		}
	} else if err := writeOutputs(cmd.ErrOrStderr(), result); err != nil {
		return err
	}

	return failures(result)
}

// writeOutputs writes the generated files and removes the outputs of
// templates that no longer generate anything.
func writeOutputs(w io.Writer, result *Result) error {
	if err := gen.WriteFiles(result.Files); err != nil {
		return commandError("writing output", err)
	}

	removed, err := gen.RemoveStale(result.Orphans)
	for _, path := range removed {
		fmt.Fprintf(w, "%s: removed, no declaration generated\n", path)
	}

	if err != nil {
		return commandError("removing output", err)
	}

	return nil
}

// printDiagnostics writes one line per diagnostic.
func printDiagnostics(w io.Writer, diags diagnostic.Diagnostics) {
	for _, d := range diags.Items {
		fmt.Fprintln(w, d.String())
	}
}

// failures returns an ExitFailure error when some declaration failed.
func failures(result *Result) error {
	if result.Failed == 0 {
		return nil
	}

	return NewExitError(ExitFailure,
		fmt.Sprintf("%d of %d declaration(s) failed", result.Failed, result.Declarations))
}
