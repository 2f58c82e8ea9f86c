// Package gen emits the Go source for transformed declarations.
//
// Generation approach uses text/template for the declaration bundle and
// golang.org/x/tools/imports for formatting and import pruning.
//
// For a struct X[P] with N fields of type T the bundle contains:
//   - type X[P] [N]T, the array form
//   - XValue, XRefs, XMuts and XIndex companions
//   - Val/SetVal/ToArray/SetArray/AsArray/Refs/Muts/Index methods
//   - a compile-time arraystruct.ArrayStruct assertion for non-generic X
//
// File rewrites a whole template file: annotated declarations are replaced
// by their bundles and everything else is kept.
package gen
