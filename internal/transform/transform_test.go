package transform

import (
	"errors"
	"go/token"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"array-as-struct/internal/analyze"
	"array-as-struct/internal/diagnostic"
)

func parseDecl(t *testing.T, src string) (*token.FileSet, *analyze.Declaration) {
	t.Helper()

	fset := token.NewFileSet()
	file, err := analyze.ParseSource(fset, "input.go", "package p\n\n"+src, "arraystruct")
	require.NoError(t, err)
	require.Len(t, file.Decls, 1)

	return fset, file.Decls[0]
}

func transform(t *testing.T, src string) (*Artifact, diagnostic.Diagnostics, error) {
	t.Helper()

	fset, decl := parseDecl(t, src)

	return New(fset).Transform(decl)
}

func TestTransform_Basic(t *testing.T) {
	art, diags, err := transform(t, `// Foo is a pair.
//
//arraystruct:generate
type Foo struct {
	// bar comes first.
	bar uint32 `+"`json:\"bar\"`"+` // trailing
	baz uint32
}`)
	require.NoError(t, err, spew.Sdump(diags))
	assert.Zero(t, diags.Len())

	assert.Equal(t, "Foo", art.Name)
	assert.True(t, art.Exported())
	assert.Equal(t, []string{"// Foo is a pair."}, art.Doc)
	assert.Empty(t, art.Attrs)
	assert.Equal(t, "uint32", art.Elem)
	assert.Equal(t, 2, art.Len())
	assert.Equal(t, "[2]uint32", art.ArrayType())
	assert.Equal(t, "FooValue", art.ValueName())
	assert.Equal(t, "FooRefs", art.RefsName())
	assert.Equal(t, "FooMuts", art.MutsName())
	assert.Equal(t, "FooIndex", art.IndexName())
	assert.Equal(t, 6, art.Pos.Line)

	require.Len(t, art.Fields, 2)
	bar := art.Fields[0]
	assert.Equal(t, "bar", bar.Name)
	assert.Equal(t, 0, bar.Index)
	assert.False(t, bar.Exported())
	assert.Equal(t, []string{"// bar comes first."}, bar.Doc)
	assert.Equal(t, "`json:\"bar\"`", bar.Tag)
	assert.Equal(t, "// trailing", bar.Comment)

	baz := art.Fields[1]
	assert.Equal(t, 1, baz.Index)
	assert.Empty(t, baz.Tag)
	assert.Empty(t, baz.Doc)
}

func TestTransform_IndexCorrectness(t *testing.T) {
	art, _, err := transform(t, `//arraystruct:generate
type Vec struct {
	X, Y float64
	Z    float64
	W    float64
}`)
	require.NoError(t, err)

	seen := map[int]string{}
	for i, name := range []string{"X", "Y", "Z", "W"} {
		idx := art.FieldIndex(name)
		assert.Equal(t, i, idx, name)
		assert.NotContains(t, seen, idx, "index collision")
		seen[idx] = name
	}

	assert.Equal(t, -1, art.FieldIndex("V"))
	assert.Equal(t, "[4]float64", art.ArrayType())
}

func TestTransform_ZeroFields(t *testing.T) {
	art, diags, err := transform(t, "//arraystruct:generate\ntype Empty struct{}")
	require.NoError(t, err, spew.Sdump(diags))

	assert.Equal(t, UnitType, art.Elem)
	assert.Equal(t, 0, art.Len())
	assert.Equal(t, "[0]struct{}", art.ArrayType())
	assert.Empty(t, art.Fields)
}

func TestTransform_StructuralTypes(t *testing.T) {
	art, diags, err := transform(t, `//arraystruct:generate
type M struct {
	a map[string][]time.Duration
	b map[string] []time.Duration
}`)
	require.NoError(t, err, spew.Sdump(diags))
	assert.Equal(t, "map[string][]time.Duration", art.Elem)
}

func TestTransform_FieldTypeMismatch(t *testing.T) {
	_, diags, err := transform(t, `//arraystruct:generate
type Foo struct {
	a uint32
	b uint32
	c uint16
}`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, diagnostic.ErrAborted))

	infos, errs := diags.Infos(), diags.Errors()
	require.Len(t, infos, 1, spew.Sdump(diags))
	require.Len(t, errs, 1, spew.Sdump(diags))

	// Lines: 1 package, 3 directive, 4 type, 5 a, 6 b, 7 c.
	assert.Equal(t, token.Position{Filename: "input.go", Offset: infos[0].Pos.Offset, Line: 5, Column: 4}, infos[0].Pos)
	assert.Equal(t, MsgFutureMismatch, infos[0].Message)
	assert.Equal(t, 7, errs[0].Pos.Line)
	assert.Equal(t, 4, errs[0].Pos.Column)
	assert.Equal(t, MsgPreviousMismatch, errs[0].Message)
	assert.Equal(t, diagnostic.KindFieldTypeMismatch, errs[0].Kind)

	assert.Equal(t, diagnostic.SeverityInfo, diags.Items[0].Severity, "the note comes first")
}

func TestTransform_MismatchKeepsScanning(t *testing.T) {
	_, diags, err := transform(t, `//arraystruct:generate
type Foo struct {
	a int
	b string
	c int
	d []int
}`)
	require.Error(t, err)

	assert.Len(t, diags.Infos(), 1)

	var lines []int
	for _, d := range diags.Errors() {
		lines = append(lines, d.Pos.Line)
	}
	assert.Equal(t, []int{6, 8}, lines)
}

func TestTransform_UnsupportedShape(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"interface", "//arraystruct:generate\ntype I interface{ M() }"},
		{"defined basic", "//arraystruct:generate\ntype N int"},
		{"defined array", "//arraystruct:generate\ntype A [2]int"},
		{"alias", "//arraystruct:generate\ntype S = struct{ a int }"},
		{"embedded", "//arraystruct:generate\ntype E struct {\n\ttime.Time\n\ta int\n}"},
		{"blank", "//arraystruct:generate\ntype B struct {\n\t_ int\n\ta int\n}"},
		{"embedded mismatch", "//arraystruct:generate\ntype E struct {\n\ta int\n\tb string\n\tfmt.Stringer\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			art, diags, err := transform(t, tt.src)
			require.Error(t, err)
			assert.Nil(t, art)
			assert.True(t, errors.Is(err, diagnostic.ErrAborted))

			require.Equal(t, 1, diags.Len(), "shape errors stop before any other diagnostic: %s", spew.Sdump(diags))
			assert.Equal(t, diagnostic.KindUnsupportedShape, diags.Items[0].Kind)
			assert.Equal(t, MsgUnsupportedShape, diags.Items[0].Message)
			assert.Equal(t, 4, diags.Items[0].Pos.Line, "reported at the declaration")
		})
	}
}

func TestTransform_Generics(t *testing.T) {
	art, diags, err := transform(t, `//arraystruct:generate
type Pair[T any, K, V comparable, N ~int | ~int64] struct {
	first, second T
}`)
	require.NoError(t, err, spew.Sdump(diags))

	want := Generics{Params: []TypeParam{
		{Names: []string{"T"}, Constraint: "any"},
		{Names: []string{"K", "V"}, Constraint: "comparable"},
		{Names: []string{"N"}, Constraint: "~int | ~int64"},
	}}
	if diff := cmp.Diff(want, art.Generics); diff != "" {
		t.Errorf("generics mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "T", art.Elem)
}

func TestTransform_Attrs(t *testing.T) {
	art, _, err := transform(t, `// Foo is documented.
//go:generate echo hi
//nolint:unused
//arraystruct:generate
type Foo struct{ a int }`)
	require.NoError(t, err)

	assert.Equal(t, []string{"// Foo is documented.", "//go:generate echo hi"}, art.Doc)
	assert.Equal(t, []string{"//nolint:unused"}, art.Attrs)
}

func TestTransform_AttrsAfterBlankLine(t *testing.T) {
	art, _, err := transform(t, `// Foo is documented.
//
//nolint:unused
//arraystruct:generate
type Foo struct{ a int }`)
	require.NoError(t, err)

	assert.Equal(t, []string{"// Foo is documented."}, art.Doc)
	assert.Equal(t, []string{"//nolint:unused"}, art.Attrs)
}

func TestTransform_DirectiveArgsAreKept(t *testing.T) {
	art, _, err := transform(t, "//arraystruct:generate future=1\ntype Foo struct{ a int }")
	require.NoError(t, err)
	assert.Equal(t, []string{"future=1"}, art.Directive.Args)
}

func TestTransform_Deterministic(t *testing.T) {
	src := "//arraystruct:generate\ntype Foo[T any] struct {\n\ta, b, c T `x:\"y\"`\n}"

	first, _, err := transform(t, src)
	require.NoError(t, err)

	second, _, err := transform(t, src)
	require.NoError(t, err)

	opts := cmp.Comparer(func(a, b Field) bool {
		return a.Name == b.Name && a.Index == b.Index && a.Tag == b.Tag &&
			cmp.Equal(a.Doc, b.Doc) && a.Comment == b.Comment
	})
	if diff := cmp.Diff(first, second, opts); diff != "" {
		t.Errorf("transform is not deterministic (-first +second):\n%s", diff)
	}
}

// transformFile transforms the only annotated declaration of src, checking
// generated names against the whole file.
func transformFile(t *testing.T, src string) (*Artifact, diagnostic.Diagnostics, error) {
	t.Helper()

	file, err := analyze.ParseSource(token.NewFileSet(), "input.go", "package p\n\n"+src, "arraystruct")
	require.NoError(t, err)
	require.Len(t, file.Decls, 1)

	return NewForFile(file).Transform(file.Decls[0])
}

func TestTransform_NameCollision(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		line    int
		col     int
		message string
	}{
		{
			name:    "value companion declared",
			src:     "type FooValue int\n\n//arraystruct:generate\ntype Foo struct{ a, b int }",
			line:    3,
			col:     6,
			message: "FooValue is generated for Foo and must not be declared",
		},
		{
			name:    "index companion declared as func",
			src:     "func FooIndex() {}\n\n//arraystruct:generate\ntype Foo struct{ a, b int }",
			line:    3,
			col:     6,
			message: "FooIndex is generated for Foo and must not be declared",
		},
		{
			name:    "index constant declared",
			src:     "const FooIndexB = 1\n\n//arraystruct:generate\ntype Foo struct{ a, b int }",
			line:    3,
			col:     7,
			message: "FooIndexB is generated for Foo and must not be declared",
		},
		{
			name:    "field named like the value conversion",
			src:     "//arraystruct:generate\ntype Foo struct {\n\tToArrayStruct uint32\n\tb uint32\n}",
			line:    5,
			col:     2,
			message: "field name ToArrayStruct is reserved by generated code",
		},
		{
			name:    "field named like the refs array",
			src:     "//arraystruct:generate\ntype Foo struct {\n\ta, _arrayAsStruct uint32\n}",
			line:    5,
			col:     5,
			message: "field name _arrayAsStruct is reserved by generated code",
		},
		{
			name:    "fields sharing an index constant",
			src:     "//arraystruct:generate\ntype Foo struct {\n\tbar, Bar uint32\n}",
			line:    5,
			col:     7,
			message: "fields bar and Bar both need the constant FooIndexBar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			art, diags, err := transformFile(t, tt.src)
			require.Error(t, err)
			assert.Nil(t, art)
			assert.True(t, errors.Is(err, diagnostic.ErrAborted))

			errs := diags.Errors()
			require.Len(t, errs, 1, spew.Sdump(diags))
			assert.Equal(t, diagnostic.KindNameCollision, errs[0].Kind)
			assert.Equal(t, tt.message, errs[0].Message)
			assert.Equal(t, tt.line, errs[0].Pos.Line)
			assert.Equal(t, tt.col, errs[0].Pos.Column)
		})
	}
}

func TestTransform_NameCollisionWithMismatch(t *testing.T) {
	_, diags, err := transformFile(t, "//arraystruct:generate\ntype Foo struct {\n\ta uint32\n\tToArrayStruct uint16\n}")
	require.Error(t, err)

	assert.Len(t, diags.Infos(), 1)

	var kinds []diagnostic.Kind
	for _, d := range diags.Errors() {
		kinds = append(kinds, d.Kind)
	}
	assert.Equal(t, []diagnostic.Kind{diagnostic.KindFieldTypeMismatch, diagnostic.KindNameCollision}, kinds)
}

func TestTransform_UnrelatedDeclarationsAreFine(t *testing.T) {
	art, diags, err := transformFile(t, `type Foos []int

const FooIndexed = true

func NewFoo() {}

//arraystruct:generate
type Foo struct{ a, b int }`)
	require.NoError(t, err, spew.Sdump(diags))
	assert.Equal(t, "FooIndexA", art.IndexConst("a"))
	assert.Equal(t, []string{"FooValue", "FooRefs", "FooMuts", "FooIndex"}, art.Companions())
}
