package analyze

import (
	"fmt"
	"go/ast"
	"go/build/constraint"
	"go/parser"
	"go/token"
	"strings"

	"array-as-struct/internal/config"
)

// ParseSource parses src (or the file at filename when src is nil) and
// collects its annotated declarations.
func ParseSource(fset *token.FileSet, filename string, src any, tag string) (*File, error) {
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	return FromAST(fset, filename, f, tag)
}

// FromAST collects the annotated declarations of an already parsed file.
// The file must have been parsed with comments.
func FromAST(fset *token.FileSet, filename string, f *ast.File, tag string) (*File, error) {
	file := &File{
		Path:    filename,
		Fset:    fset,
		AST:     f,
		Guarded: guardedBy(f, tag),
	}

	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}

		for _, spec := range gen.Specs {
			ts := spec.(*ast.TypeSpec)

			doc := ts.Doc
			if doc == nil && !gen.Lparen.IsValid() {
				doc = gen.Doc
			}

			d, err := declaration(gen, ts, doc)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", fset.Position(ts.Pos()), err)
			}

			if d != nil {
				file.Decls = append(file.Decls, d)
			}
		}
	}

	return file, nil
}

// declaration returns nil when doc carries no directive.
func declaration(gen *ast.GenDecl, ts *ast.TypeSpec, doc *ast.CommentGroup) (*Declaration, error) {
	if doc == nil {
		return nil, nil
	}

	var (
		found     bool
		directive config.Directive
		lines     []string
	)

	for _, c := range doc.List {
		if !config.IsDirective(c.Text) {
			lines = append(lines, c.Text)
			continue
		}

		if found {
			return nil, fmt.Errorf("duplicate %s directive on %s", config.DirectiveName, ts.Name.Name)
		}

		d, err := config.ParseDirective(c.Text)
		if err != nil {
			return nil, err
		}

		found, directive = true, d
	}

	if !found {
		return nil, nil
	}

	return &Declaration{
		Name:      ts.Name.Name,
		Gen:       gen,
		Spec:      ts,
		Doc:       trimBlankDocLines(lines),
		Directive: directive,
	}, nil
}

// trimBlankDocLines drops trailing empty "//" lines left behind when the
// directive closes a doc comment.
func trimBlankDocLines(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "//" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// guardedBy reports whether f carries a //go:build constraint that holds
// with tag set and fails without it.
func guardedBy(f *ast.File, tag string) bool {
	for _, cg := range f.Comments {
		if cg.Pos() >= f.Package {
			break
		}

		for _, c := range cg.List {
			if !constraint.IsGoBuild(c.Text) {
				continue
			}

			expr, err := constraint.Parse(c.Text)
			if err != nil {
				return false
			}

			with := expr.Eval(func(t string) bool { return t == tag })
			without := expr.Eval(func(string) bool { return false })

			return with && !without
		}
	}

	return false
}

// IsBuildConstraint reports whether a raw comment line is a build
// constraint in either syntax.
func IsBuildConstraint(line string) bool {
	return constraint.IsGoBuild(line) || constraint.IsPlusBuild(line)
}
