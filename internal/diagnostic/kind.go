package diagnostic

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind classifies a diagnostic.
type Kind int

const (
	_ Kind = iota // zero is invalid

	// KindUnsupportedShape: the declaration is not a named-field struct.
	KindUnsupportedShape
	// KindFieldTypeMismatch: two fields declare different types.
	KindFieldTypeMismatch
	// KindNameCollision: a generated name is already taken.
	KindNameCollision
)
