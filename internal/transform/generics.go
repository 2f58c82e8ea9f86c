package transform

import (
	"go/ast"
	"go/token"
	"strings"

	"array-as-struct/internal/typeexpr"
)

// TypeParam is one group of a type parameter list, e.g. "K, V comparable".
type TypeParam struct {
	Names      []string
	Constraint string
}

// Generics is a normalized type parameter list.
type Generics struct {
	Params []TypeParam
}

// NormalizeGenerics flattens a type parameter list into source strings.
func NormalizeGenerics(fset *token.FileSet, list *ast.FieldList) Generics {
	var g Generics
	if list == nil {
		return g
	}

	for _, field := range list.List {
		p := TypeParam{Constraint: typeexpr.String(fset, field.Type)}
		for _, name := range field.Names {
			p.Names = append(p.Names, name.Name)
		}

		g.Params = append(g.Params, p)
	}

	return g
}

// Empty reports whether there are no type parameters.
func (g Generics) Empty() bool {
	return len(g.Params) == 0
}

// Names returns the parameter names in order.
func (g Generics) Names() []string {
	var names []string
	for _, p := range g.Params {
		names = append(names, p.Names...)
	}

	return names
}

// Decl returns the declaration form, "[K, V comparable, T any]", or "" when
// there are no parameters.
func (g Generics) Decl() string {
	if g.Empty() {
		return ""
	}

	groups := make([]string, 0, len(g.Params))
	for _, p := range g.Params {
		groups = append(groups, strings.Join(p.Names, ", ")+" "+p.Constraint)
	}

	decl := strings.Join(groups, ", ")

	// "type T[P *C] ..." parses as an array type without the comma.
	if c := g.Params[0].Constraint; len(g.Names()) == 1 &&
		(strings.HasPrefix(c, "*") || strings.HasPrefix(c, "(")) {
		decl += ","
	}

	return "[" + decl + "]"
}

// Ref returns the reference form, "[K, V, T]", or "" when there are no
// parameters.
func (g Generics) Ref() string {
	if g.Empty() {
		return ""
	}

	return "[" + strings.Join(g.Names(), ", ") + "]"
}
