// Package transform turns an annotated named-field struct into the model of
// its array form.
//
// Transform runs in phases:
//  1. shape check: only named-field structs are accepted
//  2. generic normalization: declaration and reference forms of the type parameters
//  3. field unification: every field must share one type expression
//  4. name check: generated names must not be taken already
//  5. dirty check: any mismatch or collision aborts with no artifact
//  6. synthesis: the Artifact consumed by package gen
//
// Each declaration is transformed independently and deterministically.
package transform
