package transform

import (
	"fmt"
	"go/ast"
	"go/token"
	"log/slog"
	"strings"

	"array-as-struct/internal/analyze"
	"array-as-struct/internal/common"
	"array-as-struct/internal/diagnostic"
	"array-as-struct/internal/typeexpr"
)

// Diagnostic messages.
const (
	MsgUnsupportedShape = "only named-field structs are supported"
	MsgFutureMismatch   = "type did not match future fields"
	MsgPreviousMismatch = "type did not match previous fields"

	// Formats of name collision messages.
	msgDeclaredFmt  = "%s is generated for %s and must not be declared"
	msgReservedFmt  = "field name %s is reserved by generated code"
	msgDuplicateFmt = "fields %s and %s both need the constant %s"
)

// Transformer rewrites declarations parsed into one file set.
type Transformer struct {
	fset *token.FileSet
	// declared holds the package-level names of the file being rewritten.
	declared map[string]token.Pos
}

// New creates a Transformer resolving positions through fset. It checks
// generated names against the fields only; use NewForFile to also check
// them against the surrounding file.
func New(fset *token.FileSet) *Transformer {
	return &Transformer{fset: fset}
}

// NewForFile creates a Transformer for the declarations of file.
func NewForFile(file *analyze.File) *Transformer {
	return &Transformer{fset: file.Fset, declared: file.TopLevel()}
}

// Transform builds the artifact for decl. On failure it returns a
// *diagnostic.AbortError and no artifact; the diagnostics are returned in
// both cases.
func (t *Transformer) Transform(decl *analyze.Declaration) (*Artifact, diagnostic.Diagnostics, error) {
	rep := diagnostic.NewReporter(t.fset, decl.Name)

	st, err := checkShape(decl, rep)
	if err != nil {
		return nil, rep.Diagnostics(), err
	}

	generics := NormalizeGenerics(t.fset, decl.TypeParams())
	fields := collectFields(st)
	elem := unify(fields, rep)
	t.checkNames(decl, fields, rep)

	if err := rep.AbortIfDirty(); err != nil {
		return nil, rep.Diagnostics(), err
	}

	if !decl.Directive.Empty() {
		slog.Debug("ignoring directive arguments", "decl", decl.Name, "args", decl.Directive.Args)
	}

	doc, attrs := splitDoc(decl.Doc)
	art := &Artifact{
		Name:      decl.Name,
		Doc:       doc,
		Attrs:     attrs,
		Generics:  generics,
		Elem:      UnitType,
		Fields:    fields,
		Directive: decl.Directive,
		Pos:       t.fset.Position(decl.Pos()),
	}

	if elem != nil {
		art.Elem = typeexpr.String(t.fset, elem)
	}

	return art, rep.Diagnostics(), nil
}

// checkShape returns the struct payload of decl or aborts.
func checkShape(decl *analyze.Declaration, rep *diagnostic.Reporter) (*ast.StructType, error) {
	abort := func() error {
		return rep.Abort(decl.Pos(), diagnostic.KindUnsupportedShape, MsgUnsupportedShape)
	}

	st, ok := decl.Spec.Type.(*ast.StructType)
	if !ok || decl.IsAlias() {
		return nil, abort()
	}

	for _, field := range st.Fields.List {
		// Embedded fields are positional; blank fields cannot be addressed.
		if len(field.Names) == 0 {
			return nil, abort()
		}

		for _, name := range field.Names {
			if name.Name == "_" {
				return nil, abort()
			}
		}
	}

	return st, nil
}

// collectFields expands field groups into one Field per name.
func collectFields(st *ast.StructType) []Field {
	var fields []Field

	for _, field := range st.Fields.List {
		doc := commentLines(field.Doc)
		comment := strings.Join(commentLines(field.Comment), " ")

		tag := ""
		if field.Tag != nil {
			tag = field.Tag.Value
		}

		for _, name := range field.Names {
			fields = append(fields, Field{
				Name:    name.Name,
				NamePos: name.Pos(),
				Index:   len(fields),
				Doc:     doc,
				Comment: comment,
				Tag:     tag,
				Type:    field.Type,
			})
		}
	}

	return fields
}

// unify returns the type shared by all fields, or nil when there are none.
// Every field that disagrees with the first type gets an error; the first
// type gets a single note.
func unify(fields []Field, rep *diagnostic.Reporter) ast.Expr {
	var (
		unified ast.Expr
		noted   bool
	)

	for _, f := range fields {
		if unified == nil {
			unified = f.Type
			continue
		}

		if typeexpr.Equal(unified, f.Type) {
			continue
		}

		if !noted {
			rep.Emit(unified.Pos(), diagnostic.SeverityInfo, diagnostic.KindFieldTypeMismatch, MsgFutureMismatch)
			noted = true
		}

		rep.Emit(f.Type.Pos(), diagnostic.SeverityError, diagnostic.KindFieldTypeMismatch, MsgPreviousMismatch)
	}

	return unified
}

// checkNames reports every generated name that is already taken: companion
// types and index constants declared elsewhere in the file, fields named
// like a generated member, and fields mapping to the same index constant.
func (t *Transformer) checkNames(decl *analyze.Declaration, fields []Field, rep *diagnostic.Reporter) {
	index := common.Mangle(decl.Name, common.IndexSuffix)

	generated := []string{
		common.Mangle(decl.Name, common.ValueSuffix),
		common.Mangle(decl.Name, common.RefsSuffix),
		common.Mangle(decl.Name, common.MutsSuffix),
		index,
	}
	for _, f := range fields {
		generated = append(generated, common.IndexConst(index, f.Name))
	}

	for _, name := range generated {
		if pos, ok := t.declared[name]; ok && name != decl.Name {
			rep.Emit(pos, diagnostic.SeverityError, diagnostic.KindNameCollision,
				fmt.Sprintf(msgDeclaredFmt, name, decl.Name))
		}
	}

	owners := make(map[string]string, len(fields))
	for _, f := range fields {
		if f.Name == common.RefsArrayField || f.Name == common.ToArrayStructMethod {
			rep.Emit(f.NamePos, diagnostic.SeverityError, diagnostic.KindNameCollision,
				fmt.Sprintf(msgReservedFmt, f.Name))
		}

		c := common.IndexConst(index, f.Name)
		if prev, ok := owners[c]; ok {
			rep.Emit(f.NamePos, diagnostic.SeverityError, diagnostic.KindNameCollision,
				fmt.Sprintf(msgDuplicateFmt, prev, f.Name, c))
			continue
		}

		owners[c] = f.Name
	}
}

// splitDoc separates prose lines from tool directives. go:generate lines
// stay with the prose so they are not run once per generated type. Blank
// lines left at the end of the prose are dropped.
func splitDoc(lines []string) (doc, attrs []string) {
	for _, line := range lines {
		if common.IsDirective(line) && !strings.HasPrefix(line, "//go:generate") {
			attrs = append(attrs, line)
			continue
		}

		doc = append(doc, line)
	}

	for len(doc) > 0 && strings.TrimSpace(doc[len(doc)-1]) == "//" {
		doc = doc[:len(doc)-1]
	}

	return doc, attrs
}

func commentLines(cg *ast.CommentGroup) []string {
	if cg == nil {
		return nil
	}

	lines := make([]string, 0, len(cg.List))
	for _, c := range cg.List {
		lines = append(lines, c.Text)
	}

	return lines
}
