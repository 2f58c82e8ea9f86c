package analyze

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	loader := NewLoader("arraystruct")
	files, err := loader.Load(context.Background(), "array-as-struct/examples/basic", "array-as-struct/examples/generic")
	require.NoError(t, err)
	require.Len(t, files, 2)

	byName := map[string]*File{}
	for _, f := range files {
		byName[filepath.Base(f.Path)] = f
		assert.True(t, f.Guarded)
	}

	basic := byName["foo.go"]
	require.NotNil(t, basic)
	assert.Equal(t, "basic", basic.Package())

	var names []string
	for _, d := range basic.Decls {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"Foo", "Empty", "color"}, names)

	generic := byName["pair.go"]
	require.NotNil(t, generic)
	require.Len(t, generic.Decls, 1)
	assert.Equal(t, "Pair", generic.Decls[0].Name)
	assert.NotNil(t, generic.Decls[0].TypeParams())
}

func TestLoader_LoadWithoutTemplates(t *testing.T) {
	loader := NewLoader("arraystruct")
	files, err := loader.Load(context.Background(), "array-as-struct/internal/common")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestLoader_LoadMissingPackage(t *testing.T) {
	loader := NewLoader("arraystruct")
	_, err := loader.Load(context.Background(), "array-as-struct/does/not/exist")
	require.Error(t, err)
}
