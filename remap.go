package fragql

import "fmt"

// Remap rebuilds f under a different argument shape I, given a projection
// from I to f's shape A. Rendered SQL is unchanged; every Arg accessor is
// composed with mapper, and sequences are remapped recursively. The
// receiver is never mutated, so a fragment authored once can be embedded
// in any number of outer queries with distinct argument shapes.
func Remap[I, A any](f Fragment[A], mapper func(I) A) Fragment[I] {
	switch f := f.(type) {
	case rawFragment[A]:
		return rawFragment[I]{sql: f.sql}
	case strFragment[A]:
		return strFragment[I]{s: f.s}
	case litFragment[A]:
		return litFragment[I]{v: f.v}
	case identFragment[A]:
		return identFragment[I]{name: f.name}
	case bindFragment[A]:
		return bindFragment[I]{v: f.v}
	case argFragment[A]:
		get := f.get
		return argFragment[I]{get: func(in I) Value { return get(mapper(in)) }}
	case seqFragment[A]:
		children := make([]Fragment[I], len(f.children))
		for i, child := range f.children {
			children[i] = Remap(child, mapper)
		}
		return seqFragment[I]{children: children}
	default:
		// The variant set is closed; only this package implements Fragment.
		panic(fmt.Sprintf("fragql: unknown fragment variant %T", f))
	}
}
