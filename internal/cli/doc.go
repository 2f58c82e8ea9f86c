// Package cli implements the arraystruct-gen command line: a cobra root
// command with the gen and check subcommands.
package cli
