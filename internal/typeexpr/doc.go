// Package typeexpr compares Go type expressions by syntax.
//
// Two expressions are equal when their syntax trees have the same shape
// and the same leaves, ignoring positions and comments. No name resolution
// takes place: "uint32" and an alias of it are different, as are "(int)" and
// "int".
package typeexpr
