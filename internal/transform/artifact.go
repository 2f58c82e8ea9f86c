package transform

import (
	"go/ast"
	"go/token"
	"strconv"

	"array-as-struct/internal/common"
	"array-as-struct/internal/config"
)

// UnitType is the element type used when a struct has no fields.
const UnitType = "struct{}"

// Field is one named field of the input struct.
type Field struct {
	// Name is the field name; it also names the Index and Refs methods.
	Name string
	// NamePos is the position of the field name.
	NamePos token.Pos
	// Index is the zero-based position in the array.
	Index int
	// Doc holds the raw doc comment lines.
	Doc []string
	// Comment is the raw trailing line comment, if any.
	Comment string
	// Tag is the raw struct tag literal, backquotes included, if any.
	Tag string
	// Type is the declared type expression.
	Type ast.Expr
}

// Exported reports whether the field is exported.
func (f Field) Exported() bool {
	return common.IsExported(f.Name)
}

// Artifact describes the generated declarations for one struct.
type Artifact struct {
	// Name is the wrapper (array) type name, unchanged from the input.
	Name string
	// Doc holds prose doc lines, kept on the wrapper only.
	Doc []string
	// Attrs holds tool directive lines, repeated on every generated type.
	Attrs []string
	// Generics is the normalized type parameter list.
	Generics Generics
	// Elem is the source of the unified field type.
	Elem string
	// Fields are the named fields in declaration order.
	Fields []Field
	// Directive holds the directive arguments.
	Directive config.Directive
	// Pos is the position of the input declaration.
	Pos token.Position
}

// Len returns the array length.
func (a *Artifact) Len() int {
	return len(a.Fields)
}

// Exported reports whether the wrapper and its companions are exported.
func (a *Artifact) Exported() bool {
	return common.IsExported(a.Name)
}

// ValueName returns the name of the named-field companion.
func (a *Artifact) ValueName() string { return common.Mangle(a.Name, common.ValueSuffix) }

// RefsName returns the name of the read-only view companion.
func (a *Artifact) RefsName() string { return common.Mangle(a.Name, common.RefsSuffix) }

// MutsName returns the name of the mutable view companion.
func (a *Artifact) MutsName() string { return common.Mangle(a.Name, common.MutsSuffix) }

// IndexName returns the name of the index marker companion.
func (a *Artifact) IndexName() string { return common.Mangle(a.Name, common.IndexSuffix) }

// IndexConst returns the name of the constant holding the position of the
// named field.
func (a *Artifact) IndexConst(field string) string {
	return common.IndexConst(a.IndexName(), field)
}

// Companions returns the companion type names in declaration order.
func (a *Artifact) Companions() []string {
	return []string{a.ValueName(), a.RefsName(), a.MutsName(), a.IndexName()}
}

// ArrayType returns the source of the underlying array type, "[N]T".
func (a *Artifact) ArrayType() string {
	return "[" + strconv.Itoa(a.Len()) + "]" + a.Elem
}

// FieldIndex returns the position of the named field, or -1.
func (a *Artifact) FieldIndex(name string) int {
	for _, f := range a.Fields {
		if f.Name == name {
			return f.Index
		}
	}

	return -1
}
