package gen

import (
	"bytes"
	"fmt"
	"go/format"

	"array-as-struct/internal/common"
	"array-as-struct/internal/config"
	"array-as-struct/internal/transform"
)

// Generator renders artifacts into Go source.
type Generator struct {
	config *config.Config
}

// NewGenerator creates a new Generator with the given configuration. A nil
// configuration means config.Default().
func NewGenerator(cfg *config.Config) *Generator {
	if cfg == nil {
		cfg = config.Default()
	}

	return &Generator{config: cfg}
}

// OutputName returns the path of the file generated from the template at path.
func (g *Generator) OutputName(path string) string {
	return g.config.OutputName(path)
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the output path, next to the template file.
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// bundleData holds everything the bundle template needs for one artifact.
type bundleData struct {
	*transform.Artifact

	// Decl and Ref are the declaration and reference forms of the type
	// parameters.
	Decl, Ref string
	// Comments enables generated doc comments.
	Comments bool
	// Runtime is the package name qualifying ArrayStruct; empty disables the
	// compile-time assertion.
	Runtime string
}

// fieldsData feeds the shared field list of the Value and Muts structs.
type fieldsData struct {
	Fields []transform.Field
	Elem   string
	Ptr    string
}

// Value returns the field list of the value struct.
func (d bundleData) Value() fieldsData {
	return fieldsData{Fields: d.Fields, Elem: d.Elem}
}

// Muts returns the field list of the pointer struct.
func (d bundleData) Muts() fieldsData {
	return fieldsData{Fields: d.Fields, Elem: d.Elem, Ptr: "*"}
}

// needsRuntime reports whether art gets a compile-time interface assertion.
// Generic types cannot be asserted without instantiating them.
func needsRuntime(art *transform.Artifact) bool {
	return art.Generics.Empty()
}

// render executes the bundle template without formatting.
func (g *Generator) render(art *transform.Artifact) ([]byte, error) {
	data := bundleData{
		Artifact: art,
		Decl:     art.Generics.Decl(),
		Ref:      art.Generics.Ref(),
		Comments: g.config.CommentsEnabled(),
	}

	if needsRuntime(art) {
		data.Runtime = common.PkgAlias(g.config.RuntimeImport)
	}

	var buf bytes.Buffer
	if err := bundleTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template for %s: %w", art.Name, err)
	}

	return buf.Bytes(), nil
}

// Render returns the formatted declarations generated for art, without a
// package clause or imports.
func (g *Generator) Render(art *transform.Artifact) ([]byte, error) {
	src, err := g.render(art)
	if err != nil {
		return nil, err
	}

	formatted, err := format.Source(src)
	if err != nil {
		return src, fmt.Errorf("formatting %s: %w (unformatted code returned)", art.Name, err)
	}

	return formatted, nil
}
