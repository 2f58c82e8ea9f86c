package analyze

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"log/slog"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages. Template files
// are only parsed; they are never type-checked because the generated file
// they replace is excluded from the same build.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedSyntax

// Loader finds template files in Go packages.
type Loader struct {
	// Tag is the build tag guarding template files.
	Tag string
	// Dir is the working directory for pattern resolution; empty means the
	// current directory.
	Dir string
}

// NewLoader creates a Loader for the given template tag.
func NewLoader(tag string) *Loader {
	return &Loader{Tag: tag}
}

// Load loads the packages matching patterns with the template tag enabled
// and returns every guarded file that carries annotated declarations.
func (l *Loader) Load(ctx context.Context, patterns ...string) ([]*File, error) {
	fset := token.NewFileSet()
	cfg := &packages.Config{
		Context:    ctx,
		Mode:       LoadMode,
		Dir:        l.Dir,
		Fset:       fset,
		BuildFlags: []string{"-tags=" + l.Tag},
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	})
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	var files []*File
	for _, pkg := range pkgs {
		pkgFiles, err := l.processPackage(fset, pkg)
		if err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}

		files = append(files, pkgFiles...)
	}

	return files, nil
}

// processPackage extracts the template files of a loaded package.
func (l *Loader) processPackage(fset *token.FileSet, pkg *packages.Package) ([]*File, error) {
	var files []*File

	for _, syntax := range pkg.Syntax {
		filename := fset.File(syntax.Pos()).Name()

		file, err := FromAST(fset, filename, syntax, l.Tag)
		if err != nil {
			return nil, err
		}

		if !file.HasDecls() {
			continue
		}

		if !file.Guarded {
			slog.Warn("skipping annotated file without template build constraint",
				"file", filename, "tag", l.Tag)
			continue
		}

		slog.Debug("found template file",
			"package", pkg.PkgPath, "file", filename, "decls", len(file.Decls))
		files = append(files, file)
	}

	return files, nil
}
