// Package analyze finds the declarations to rewrite.
//
// A template file is a Go file guarded by the template build tag
// ("//go:build arraystruct" by default). Inside it, every type spec whose doc
// comment carries "//arraystruct:generate" becomes a Declaration. Files are
// read either directly with go/parser or through
// golang.org/x/tools/go/packages with the tag enabled.
//
// Key types:
//   - File: one template file, its syntax tree and its declarations
//   - Declaration: one annotated type spec with its doc and directive
package analyze
