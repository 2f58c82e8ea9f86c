package arraystruct

// ArrayStruct names the companion types of a generated array type and the
// conversions between them. It is implemented by *X for every generated X.
type ArrayStruct[Value, Array, Refs, Muts, Index any] interface {
	// Val returns the named-field form.
	Val() Value
	// SetVal overwrites the receiver from the named-field form.
	SetVal(Value)
	// ToArray returns a copy of the underlying array.
	ToArray() Array
	// SetArray overwrites the receiver with the given array.
	SetArray(Array)
	// AsArray returns the receiver viewed as its underlying array.
	AsArray() *Array
	// Refs returns a read-only view of the named fields.
	//
	// This is the primary way of accessing the named fields.
	Refs() Refs
	// Muts returns a view with one pointer per named field.
	Muts() Muts
	// Index returns the marker whose methods give each field's position.
	Index() Index
}

// FromVal constructs S from its named-field form.
//
//	f := arraystruct.FromVal[Foo](FooValue{Bar: 10, Baz: 15})
func FromVal[S any, P interface {
	*S
	SetVal(V)
}, V any](v V) S {
	var s S
	P(&s).SetVal(v)
	return s
}

// FromArray constructs S from its underlying array.
//
// This is the same as converting the array with S(a).
func FromArray[S any, P interface {
	*S
	SetArray(A)
}, A any](a A) S {
	var s S
	P(&s).SetArray(a)
	return s
}
