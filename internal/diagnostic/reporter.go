package diagnostic

import "go/token"

// Reporter collects the diagnostics of a single declaration.
type Reporter struct {
	fset  *token.FileSet
	decl  string
	diags Diagnostics
}

// NewReporter creates a Reporter resolving positions through fset.
func NewReporter(fset *token.FileSet, decl string) *Reporter {
	return &Reporter{fset: fset, decl: decl}
}

// Emit records a diagnostic without stopping the caller. An error-severity
// diagnostic makes the reporter dirty.
func (r *Reporter) Emit(pos token.Pos, sev Severity, kind Kind, msg string) {
	r.diags.Add(Diagnostic{
		Severity: sev,
		Kind:     kind,
		Pos:      r.position(pos),
		Decl:     r.decl,
		Message:  msg,
	})
}

// Abort records an error diagnostic and returns the AbortError the caller
// must return immediately.
func (r *Reporter) Abort(pos token.Pos, kind Kind, msg string) error {
	r.Emit(pos, SeverityError, kind, msg)
	return &AbortError{Diagnostics: r.diags}
}

// AbortIfDirty returns an AbortError if any error has been emitted.
func (r *Reporter) AbortIfDirty() error {
	return r.diags.Err()
}

// Diagnostics returns everything reported so far.
func (r *Reporter) Diagnostics() Diagnostics {
	return r.diags
}

func (r *Reporter) position(pos token.Pos) token.Position {
	if r.fset == nil || !pos.IsValid() {
		return token.Position{}
	}

	return r.fset.Position(pos)
}
