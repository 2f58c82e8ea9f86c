package cli

import (
	"context"
	"fmt"
	"go/token"
	"log/slog"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"array-as-struct/internal/analyze"
	"array-as-struct/internal/config"
	"array-as-struct/internal/diagnostic"
	"array-as-struct/internal/gen"
	"array-as-struct/internal/transform"
)

// Result is the outcome of running the generator over a set of inputs.
type Result struct {
	// Files are the generated outputs, in input order.
	Files []*gen.GeneratedFile
	// Diagnostics are all diagnostics, in input order.
	Diagnostics diagnostic.Diagnostics
	// Declarations counts the annotated declarations seen.
	Declarations int
	// Failed counts the declarations that produced no output.
	Failed int
	// Orphans are output paths of templates whose declarations all failed.
	// Whatever sits there was generated earlier and no longer holds.
	Orphans []string
}

// fileResult is the outcome for one template file.
type fileResult struct {
	out    *gen.GeneratedFile
	orphan string
	diags  diagnostic.Diagnostics
	failed int
}

// Run loads the templates named by args and generates their outputs.
// Arguments ending in ".go" are template files; anything else is a package
// pattern. No argument means the package in the current directory.
//
// Declaration failures are reported through Result, not as an error.
func Run(ctx context.Context, cfg *config.Config, args []string) (*Result, error) {
	files, err := loadTemplates(ctx, cfg.Tag, args)
	if err != nil {
		return nil, err
	}

	results := make([]fileResult, len(files))
	g := gen.NewGenerator(cfg)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for i, file := range files {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := generateFile(g, file)
			if err != nil {
				return err
			}

			results[i] = res

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	result := &Result{}
	for i, res := range results {
		result.Declarations += len(files[i].Decls)
		result.Failed += res.failed
		result.Diagnostics.Merge(res.diags)

		if res.out != nil {
			result.Files = append(result.Files, res.out)
		}

		if res.orphan != "" {
			result.Orphans = append(result.Orphans, res.orphan)
		}
	}

	return result, nil
}

// generateFile transforms every declaration of file independently and
// renders the survivors. A file whose declarations all failed has no output;
// its output path is recorded as an orphan instead.
func generateFile(g *gen.Generator, file *analyze.File) (fileResult, error) {
	var (
		res  fileResult
		arts []*transform.Artifact
	)

	tr := transform.NewForFile(file)
	for _, decl := range file.Decls {
		art, diags, err := tr.Transform(decl)
		res.diags.Merge(diags)

		if err != nil {
			slog.Debug("declaration failed", "file", file.Path, "decl", decl.Name, "error", err)
			res.failed++

			continue
		}

		arts = append(arts, art)
	}

	if len(arts) == 0 {
		if len(file.Decls) > 0 {
			res.orphan = g.OutputName(file.Path)
		}

		return res, nil
	}

	out, err := g.File(file, arts)
	if err != nil {
		return res, fmt.Errorf("generating %s: %w", file.Path, err)
	}

	slog.Info("generated", "file", out.Filename, "types", len(arts))
	res.out = out

	return res, nil
}

// loadTemplates parses the template files and packages named by args.
func loadTemplates(ctx context.Context, tag string, args []string) ([]*analyze.File, error) {
	var paths, patterns []string

	for _, arg := range args {
		if strings.HasSuffix(arg, ".go") {
			paths = append(paths, arg)
		} else {
			patterns = append(patterns, arg)
		}
	}

	if len(args) == 0 {
		patterns = []string{"."}
	}

	var files []*analyze.File

	fset := token.NewFileSet()
	for _, path := range paths {
		file, err := analyze.ParseSource(fset, path, nil, tag)
		if err != nil {
			return nil, err
		}

		if !file.HasDecls() {
			slog.Debug("no annotated declarations", "file", path)
			continue
		}

		if !file.Guarded {
			return nil, fmt.Errorf("%s: template file must be guarded by //go:build %s", path, tag)
		}

		files = append(files, file)
	}

	if len(patterns) > 0 {
		loaded, err := analyze.NewLoader(tag).Load(ctx, patterns...)
		if err != nil {
			return nil, err
		}

		files = append(files, loaded...)
	}

	return files, nil
}
