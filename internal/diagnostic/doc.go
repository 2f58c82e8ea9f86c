// Package diagnostic provides the positioned errors and notes reported while
// rewriting a declaration.
//
// Key capabilities:
//   - Ordered diagnostics with file:line:col positions
//   - Reporter mirroring a compiler's abort / emit / abort-if-dirty primitives
//   - AbortError carrying every diagnostic of a failed declaration
package diagnostic
