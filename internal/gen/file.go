package gen

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/printer"
	"go/token"
	"log/slog"
	"path/filepath"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/imports"

	"array-as-struct/internal/analyze"
	"array-as-struct/internal/transform"
)

// span is a half-open source range removed from the output.
type span struct {
	from, to token.Pos
}

func (s span) contains(pos token.Pos) bool {
	return s.from <= pos && pos < s.to
}

// File rewrites a template file. Every annotated declaration of file is
// removed; the bundles of arts, which must come from file, are appended.
// A declaration that failed to transform simply has no artifact, so
// nothing replaces it.
//
// file.AST is not modified.
func (g *Generator) File(file *analyze.File, arts []*transform.Artifact) (*GeneratedFile, error) {
	outName := g.OutputName(file.Path)

	out, removed := stripDecls(file)
	out.Comments = keepComments(file.AST, removed)

	needImport := false
	for _, art := range arts {
		if needsRuntime(art) {
			needImport = true
			break
		}
	}

	if needImport {
		astutil.AddNamedImport(file.Fset, out, "", g.config.RuntimeImport)
	}

	var buf bytes.Buffer

	err := headerTemplate.Execute(&buf, map[string]string{
		"Generator": g.config.Generator,
		"Source":    filepath.Base(file.Path),
		"Tag":       g.config.Tag,
	})
	if err != nil {
		return nil, fmt.Errorf("executing header template: %w", err)
	}

	pcfg := printer.Config{Mode: printer.UseSpaces | printer.TabIndent, Tabwidth: 8}
	if err := pcfg.Fprint(&buf, file.Fset, out); err != nil {
		return nil, fmt.Errorf("printing %s: %w", file.Path, err)
	}

	for _, art := range arts {
		src, err := g.render(art)
		if err != nil {
			return nil, err
		}

		buf.WriteString("\n")
		buf.Write(src)
	}

	formatted, err := imports.Process(outName, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		// Best-effort: keep the unformatted code next to the output to aid debugging.
		if werr := writeDebugUnformatted(outName, buf.Bytes()); werr != nil {
			slog.Warn("failed to write unformatted sidecar", "file", outName, "error", werr)
		}

		return nil, fmt.Errorf("formatting %s: %w", outName, err)
	}

	return &GeneratedFile{Filename: outName, Content: formatted}, nil
}

// stripDecls returns a shallow copy of file.AST without its annotated
// specs, along with the source ranges that were dropped. Import
// declarations are copied so that adding an import leaves the input alone.
func stripDecls(file *analyze.File) (*ast.File, []span) {
	drop := make(map[*ast.TypeSpec]bool, len(file.Decls))
	for _, d := range file.Decls {
		drop[d.Spec] = true
	}

	var removed []span
	out := *file.AST
	out.Decls = nil
	out.Imports = append([]*ast.ImportSpec(nil), file.AST.Imports...)

	for _, decl := range file.AST.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok {
			out.Decls = append(out.Decls, decl)
			continue
		}

		switch gen.Tok {
		case token.IMPORT:
			cp := *gen
			cp.Specs = append([]ast.Spec(nil), gen.Specs...)
			out.Decls = append(out.Decls, &cp)
			continue
		case token.TYPE:
		default:
			out.Decls = append(out.Decls, gen)
			continue
		}

		var kept []ast.Spec
		for _, spec := range gen.Specs {
			ts := spec.(*ast.TypeSpec)
			if !drop[ts] {
				kept = append(kept, spec)
				continue
			}

			if gen.Lparen.IsValid() {
				removed = append(removed, specSpan(ts))
			}
		}

		switch {
		case len(kept) == len(gen.Specs):
			out.Decls = append(out.Decls, gen)
		case len(kept) == 0:
			removed = append(removed, declSpan(gen))
		default:
			cp := *gen
			cp.Specs = kept
			out.Decls = append(out.Decls, &cp)
		}
	}

	return &out, removed
}

func declSpan(gen *ast.GenDecl) span {
	s := span{from: gen.Pos(), to: gen.End()}
	if gen.Doc != nil {
		s.from = gen.Doc.Pos()
	}

	// An ungrouped spec owns the line comment after the declaration.
	for _, spec := range gen.Specs {
		if ts, ok := spec.(*ast.TypeSpec); ok && ts.Comment != nil && ts.Comment.End() > s.to {
			s.to = ts.Comment.End()
		}
	}

	return s
}

func specSpan(ts *ast.TypeSpec) span {
	s := span{from: ts.Pos(), to: ts.End()}
	if ts.Doc != nil {
		s.from = ts.Doc.Pos()
	}

	if ts.Comment != nil {
		s.to = ts.Comment.End()
	}

	return s
}

// keepComments drops comments inside removed ranges and the template build
// constraint, which the generated header replaces.
func keepComments(f *ast.File, removed []span) []*ast.CommentGroup {
	var kept []*ast.CommentGroup

	for _, cg := range f.Comments {
		if inSpans(cg.Pos(), removed) {
			continue
		}

		if cg.Pos() < f.Package {
			cg = withoutConstraints(cg)
			if cg == nil {
				continue
			}
		}

		kept = append(kept, cg)
	}

	return kept
}

func inSpans(pos token.Pos, spans []span) bool {
	for _, s := range spans {
		if s.contains(pos) {
			return true
		}
	}

	return false
}

// withoutConstraints returns cg minus its build constraint lines, or nil
// when nothing remains.
func withoutConstraints(cg *ast.CommentGroup) *ast.CommentGroup {
	var list []*ast.Comment
	for _, c := range cg.List {
		if !analyze.IsBuildConstraint(c.Text) {
			list = append(list, c)
		}
	}

	switch len(list) {
	case 0:
		return nil
	case len(cg.List):
		return cg
	default:
		return &ast.CommentGroup{List: list}
	}
}
