package diagnostic

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"array-as-struct/internal/common"
)

// Diagnostics holds the diagnostics of one or more declarations in the order
// they were reported.
type Diagnostics struct {
	Items []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Kind identifies the failure class.
	Kind Kind
	// Pos is where the diagnostic points, usually a field's type expression.
	Pos token.Position
	// Decl is the name of the declaration being rewritten.
	Decl string
	// Message is the human-readable description.
	Message string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Add appends a diagnostic.
func (d *Diagnostics) Add(diag Diagnostic) {
	d.Items = append(d.Items, diag)
}

// Errors returns the error diagnostics.
func (d Diagnostics) Errors() []Diagnostic {
	return d.filter(SeverityError)
}

// Infos returns the informational diagnostics.
func (d Diagnostics) Infos() []Diagnostic {
	return d.filter(SeverityInfo)
}

func (d Diagnostics) filter(s Severity) []Diagnostic {
	var out []Diagnostic
	for _, diag := range d.Items {
		if diag.Severity == s {
			out = append(out, diag)
		}
	}

	return out
}

// HasErrors returns true if there are any error diagnostics.
func (d Diagnostics) HasErrors() bool {
	for _, diag := range d.Items {
		if diag.Severity == SeverityError {
			return true
		}
	}

	return false
}

// Merge appends the diagnostics of other.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Items = append(d.Items, other.Items...)
}

// Len returns the number of diagnostics.
func (d Diagnostics) Len() int {
	return len(d.Items)
}

// Err returns an error joining all error diagnostics, or nil if there are none.
func (d Diagnostics) Err() error {
	if !d.HasErrors() {
		return nil
	}

	return &AbortError{Diagnostics: d}
}

// String renders one diagnostic per line.
func (d Diagnostics) String() string {
	var sb strings.Builder
	for _, diag := range d.Items {
		sb.WriteString(diag.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}

// String returns the diagnostic in the compiler's file:line:col form.
func (d Diagnostic) String() string {
	msg := fmt.Sprintf("%s: %s", d.Severity, d.Message)
	if d.Decl != "" {
		msg = fmt.Sprintf("%s (in %s)", msg, d.Decl)
	}

	if d.Pos.IsValid() {
		return d.Pos.String() + ": " + msg
	}

	return msg
}

// ErrAborted is matched by every AbortError.
var ErrAborted = errors.New("transformation aborted")

// AbortError is returned when a declaration could not be rewritten.
type AbortError struct {
	Diagnostics Diagnostics
}

func (e *AbortError) Error() string {
	errs := e.Diagnostics.Errors()
	parts := make([]string, 0, len(errs))
	for _, diag := range errs {
		parts = append(parts, diag.String())
	}

	return ErrAborted.Error() + ": " + strings.Join(parts, "; ")
}

// Is reports whether target is ErrAborted.
func (e *AbortError) Is(target error) bool {
	return target == ErrAborted
}
