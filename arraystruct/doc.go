// Package arraystruct is the runtime side of arraystruct-gen.
//
// arraystruct-gen rewrites a named-field struct whose fields all share one
// type into a fixed-size array type. Alongside it the generator emits:
//   - XValue: the declared named-field struct
//   - XRefs: a read-only view with one getter per field
//   - XMuts: a view with one pointer per field
//   - XIndex: a marker type whose methods return each field's array position
//
// Every generated pointer type satisfies ArrayStruct, which is the only API
// this package defines beyond the FromVal and FromArray helpers.
package arraystruct
