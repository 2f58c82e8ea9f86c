// Package main provides the CLI entrypoint for arraystruct-gen.
//
// arraystruct-gen is a go:generate tool that:
//   - Finds struct declarations marked with //arraystruct:generate in template files
//   - Checks that every field shares one type
//   - Rewrites each into a fixed-size array type with named access
//   - Writes the result next to the template, built whenever the template is not
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"array-as-struct/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.NewRootCommand().ExecuteContext(ctx)
	stop()

	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, "arraystruct-gen:", err)

	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}

	os.Exit(cli.ExitCommandError)
}
