package config

import (
	"fmt"
	"strings"
)

// DirectiveName marks a struct declaration for rewriting.
const DirectiveName = "arraystruct:generate"

// DirectivePrefix is the full comment prefix of the directive.
const DirectivePrefix = "//" + DirectiveName

// Directive holds the arguments written after the directive name.
//
// No argument is currently recognized. They are accepted so that existing
// annotations keep working once options are added.
type Directive struct {
	Args []string
}

// IsDirective reports whether a raw comment line is the generate directive.
func IsDirective(line string) bool {
	rest, ok := strings.CutPrefix(line, DirectivePrefix)
	return ok && (rest == "" || rest[0] == ' ' || rest[0] == '\t')
}

// ParseDirective parses a raw comment line such as
// "//arraystruct:generate key=value".
func ParseDirective(line string) (Directive, error) {
	if !IsDirective(line) {
		return Directive{}, fmt.Errorf("not a %s directive: %q", DirectiveName, line)
	}

	return Directive{Args: strings.Fields(strings.TrimPrefix(line, DirectivePrefix))}, nil
}

// Empty reports whether the directive carries no arguments.
func (d Directive) Empty() bool {
	return len(d.Args) == 0
}
