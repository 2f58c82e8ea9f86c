package typeexpr

import (
	"bytes"
	"go/ast"
	"go/printer"
	"go/token"
	"go/types"
)

// Equal reports whether a and b are structurally equal type expressions.
func Equal(a, b ast.Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch x := a.(type) {
	case *ast.Ident:
		y, ok := b.(*ast.Ident)
		return ok && x.Name == y.Name

	case *ast.SelectorExpr:
		y, ok := b.(*ast.SelectorExpr)
		return ok && Equal(x.X, y.X) && x.Sel.Name == y.Sel.Name

	case *ast.StarExpr:
		y, ok := b.(*ast.StarExpr)
		return ok && Equal(x.X, y.X)

	case *ast.ParenExpr:
		y, ok := b.(*ast.ParenExpr)
		return ok && Equal(x.X, y.X)

	case *ast.ArrayType:
		// Len is nil for slices and *ast.Ellipsis for [...]T.
		y, ok := b.(*ast.ArrayType)
		return ok && Equal(x.Len, y.Len) && Equal(x.Elt, y.Elt)

	case *ast.Ellipsis:
		y, ok := b.(*ast.Ellipsis)
		return ok && Equal(x.Elt, y.Elt)

	case *ast.MapType:
		y, ok := b.(*ast.MapType)
		return ok && Equal(x.Key, y.Key) && Equal(x.Value, y.Value)

	case *ast.ChanType:
		y, ok := b.(*ast.ChanType)
		return ok && x.Dir == y.Dir && Equal(x.Value, y.Value)

	case *ast.FuncType:
		y, ok := b.(*ast.FuncType)
		return ok && fieldListsEqual(x.TypeParams, y.TypeParams) &&
			fieldListsEqual(x.Params, y.Params) &&
			fieldListsEqual(x.Results, y.Results)

	case *ast.StructType:
		y, ok := b.(*ast.StructType)
		return ok && fieldListsEqual(x.Fields, y.Fields)

	case *ast.InterfaceType:
		y, ok := b.(*ast.InterfaceType)
		return ok && fieldListsEqual(x.Methods, y.Methods)

	case *ast.IndexExpr:
		y, ok := b.(*ast.IndexExpr)
		return ok && Equal(x.X, y.X) && Equal(x.Index, y.Index)

	case *ast.IndexListExpr:
		y, ok := b.(*ast.IndexListExpr)
		return ok && Equal(x.X, y.X) && exprsEqual(x.Indices, y.Indices)

	case *ast.BasicLit:
		y, ok := b.(*ast.BasicLit)
		return ok && x.Kind == y.Kind && x.Value == y.Value

	case *ast.UnaryExpr:
		// Covers ~T terms in inline constraints and signed lengths.
		y, ok := b.(*ast.UnaryExpr)
		return ok && x.Op == y.Op && Equal(x.X, y.X)

	case *ast.BinaryExpr:
		// Covers union terms and constant length arithmetic.
		y, ok := b.(*ast.BinaryExpr)
		return ok && x.Op == y.Op && Equal(x.X, y.X) && Equal(x.Y, y.Y)

	case *ast.CallExpr:
		// Constant length expressions such as [len(names)]T.
		y, ok := b.(*ast.CallExpr)
		return ok && Equal(x.Fun, y.Fun) && exprsEqual(x.Args, y.Args) &&
			x.Ellipsis.IsValid() == y.Ellipsis.IsValid()

	default:
		return types.ExprString(a) == types.ExprString(b)
	}
}

func exprsEqual(a, b []ast.Expr) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}

	return true
}

// fieldListsEqual compares names, types and tags field by field. A group
// "a, b int" is not equal to "a int; b int".
func fieldListsEqual(a, b *ast.FieldList) bool {
	if a.NumFields() == 0 || b.NumFields() == 0 {
		return a.NumFields() == b.NumFields()
	}

	if len(a.List) != len(b.List) {
		return false
	}

	for i := range a.List {
		fa, fb := a.List[i], b.List[i]
		if len(fa.Names) != len(fb.Names) {
			return false
		}

		for j := range fa.Names {
			if fa.Names[j].Name != fb.Names[j].Name {
				return false
			}
		}

		if !Equal(fa.Type, fb.Type) || !Equal(tagExpr(fa.Tag), tagExpr(fb.Tag)) {
			return false
		}
	}

	return true
}

func tagExpr(tag *ast.BasicLit) ast.Expr {
	if tag == nil {
		return nil
	}

	return tag
}

// String renders expr as Go source. Positions in fset only affect layout;
// a nil fset is allowed.
func String(fset *token.FileSet, expr ast.Expr) string {
	if fset == nil {
		fset = token.NewFileSet()
	}

	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, expr); err != nil {
		return types.ExprString(expr)
	}

	return buf.String()
}
