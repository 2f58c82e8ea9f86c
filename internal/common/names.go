package common

import (
	"go/token"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"
)

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// Companion type suffixes appended to the wrapper name.
const (
	ValueSuffix = "Value"
	RefsSuffix  = "Refs"
	MutsSuffix  = "Muts"
	IndexSuffix = "Index"
)

// Names the generated code uses inside companion types. A field with one of
// these names would clash with them.
const (
	// RefsArrayField is the array pointer held by the Refs companion.
	RefsArrayField = "_arrayAsStruct"
	// ToArrayStructMethod is the conversion method of the Value companion.
	ToArrayStructMethod = "ToArrayStruct"
)

// Mangle returns the name of a companion type of wrapper. The companion
// keeps the wrapper's visibility since it shares its first letter.
func Mangle(wrapper, suffix string) string {
	return wrapper + suffix
}

// IndexConst returns the name of the constant holding the position of
// field. It is the Index companion name followed by the field name with its
// first letter upper-cased, so it shares the wrapper's visibility.
func IndexConst(index, field string) string {
	r, size := utf8.DecodeRuneInString(field)
	if size == 0 {
		return index
	}

	return index + string(unicode.ToUpper(r)) + field[size:]
}

// IsExported reports whether name is an exported Go identifier.
func IsExported(name string) bool {
	return token.IsExported(name)
}

// IsDirective reports whether a raw comment line is a tool directive such as
// "//go:noinline" or "//nolint:gosec". Directives have no space after the
// slashes and a lowercase name followed by a colon.
func IsDirective(line string) bool {
	rest, ok := strings.CutPrefix(line, "//")
	if !ok || rest == "" {
		return false
	}

	colon := strings.IndexByte(rest, ':')
	if colon <= 0 || colon == len(rest)-1 {
		return false
	}

	for i := 0; i < colon; i++ {
		c := rest[i]
		if !('a' <= c && c <= 'z' || '0' <= c && c <= '9') {
			return false
		}
	}

	return rest[colon+1] != ' '
}

// PkgAlias returns the identifier a file uses for an import path when the
// import carries no explicit name: its last element.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}
