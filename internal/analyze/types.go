package analyze

import (
	"go/ast"
	"go/token"

	"array-as-struct/internal/common"
	"array-as-struct/internal/config"
)

// File is a parsed template file.
type File struct {
	// Path is the file name as given to the parser.
	Path string
	// Fset resolves positions in AST.
	Fset *token.FileSet
	// AST is the parsed file, comments included.
	AST *ast.File
	// Guarded reports whether the file only builds with the template tag.
	Guarded bool
	// Decls are the annotated declarations in source order.
	Decls []*Declaration
}

// Declaration is an annotated type spec.
type Declaration struct {
	// Name is the declared type name.
	Name string
	// Gen is the enclosing type declaration.
	Gen *ast.GenDecl
	// Spec is the annotated spec inside Gen.
	Spec *ast.TypeSpec
	// Doc holds the raw doc comment lines with the directive removed.
	Doc []string
	// Directive holds the directive arguments.
	Directive config.Directive
}

// Exported reports whether the declared type is exported.
func (d *Declaration) Exported() bool {
	return common.IsExported(d.Name)
}

// Pos returns the position of the type name.
func (d *Declaration) Pos() token.Pos {
	return d.Spec.Name.Pos()
}

// TypeParams returns the declared type parameters, or nil.
func (d *Declaration) TypeParams() *ast.FieldList {
	return d.Spec.TypeParams
}

// IsAlias reports whether the spec is an alias declaration (type A = B).
func (d *Declaration) IsAlias() bool {
	return d.Spec.Assign.IsValid()
}

// Grouped reports whether the spec sits in a parenthesized type block.
func (d *Declaration) Grouped() bool {
	return d.Gen.Lparen.IsValid()
}

// Package returns the package name of the file.
func (f *File) Package() string {
	return f.AST.Name.Name
}

// HasDecls reports whether the file contains annotated declarations.
func (f *File) HasDecls() bool {
	return len(f.Decls) > 0
}

// TopLevel returns the position of every package-level identifier the file
// declares: types, constants, variables and functions without a receiver.
func (f *File) TopLevel() map[string]token.Pos {
	names := make(map[string]token.Pos)
	add := func(id *ast.Ident) {
		if id.Name != "_" {
			names[id.Name] = id.Pos()
		}
	}

	for _, decl := range f.AST.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil {
				add(d.Name)
			}
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					add(s.Name)
				case *ast.ValueSpec:
					for _, id := range s.Names {
						add(id)
					}
				}
			}
		}
	}

	return names
}
