package fragql

import (
	"fmt"
	"strconv"
	"strings"
)

// Escaper renders string constants, literal values, and identifiers as
// SQL-safe text. Implementations must be deterministic and must never
// emit placeholder syntax. The postgres package provides the PostgreSQL
// implementation.
type Escaper interface {
	// EscapeString renders s as a SQL string literal.
	EscapeString(s string) string

	// EscapeLiteral renders v as inline SQL: numbers bare, strings
	// quoted, nil as NULL. Unsupported Go types return an error.
	EscapeLiteral(v Value) (string, error)

	// EscapeIdentifier renders name as a quoted SQL identifier.
	EscapeIdentifier(name string) string
}

// Fragment is an immutable node of composable SQL, generic over the
// argument shape A supplied at execution time. The variant set is closed:
// Raw, Str, Lit, Ident, Bind, Arg, and Seq construct the only
// implementations. Fragments are safe for concurrent use; linearization
// takes its placeholder offset as an argument and stores nothing.
type Fragment[A any] interface {
	// build appends SQL text to sql and accessors to acc, numbering
	// placeholders start+len(acc) onward, and returns the extended
	// accessor slice.
	build(esc Escaper, start int, sql *strings.Builder, acc []Accessor[A]) ([]Accessor[A], error)

	// trace appends the human-readable debug form.
	trace(sb *strings.Builder)
}

// Linearize flattens f depth-first into final SQL text and the parallel
// accessor list. Placeholders are numbered contiguously from start; the
// k-th accessor (0-indexed) corresponds to placeholder start+k. The same
// fragment linearizes identically every time for a given escaper and
// offset.
func Linearize[A any](f Fragment[A], esc Escaper, start int) (string, []Accessor[A], error) {
	var sql strings.Builder
	acc, err := f.build(esc, start, &sql, nil)
	if err != nil {
		return "", nil, err
	}
	return sql.String(), acc, nil
}

// Raw creates a fragment of verbatim SQL text: no escaping, no
// placeholders. Never pass user-controlled input to Raw.
func Raw[A any](sql string) Fragment[A] {
	return rawFragment[A]{sql: sql}
}

// Str creates a fragment rendering s as an escaped SQL string literal
// baked into the query text rather than bound as a parameter.
func Str[A any](s string) Fragment[A] {
	return strFragment[A]{s: s}
}

// Lit creates a fragment rendering v as an escaped inline literal.
func Lit[A any](v Value) Fragment[A] {
	return litFragment[A]{v: v}
}

// Ident creates a fragment rendering name as a quoted SQL identifier.
func Ident[A any](name string) Fragment[A] {
	return identFragment[A]{name: name}
}

// Bind creates a fragment that consumes one placeholder slot and always
// binds v, regardless of the argument supplied at execution time.
func Bind[A any](v Value) Fragment[A] {
	return bindFragment[A]{v: v}
}

// Arg creates a fragment that consumes one placeholder slot and binds
// whatever get extracts from the execution-time argument.
func Arg[A any](get Accessor[A]) Fragment[A] {
	return argFragment[A]{get: get}
}

// Seq creates a fragment that renders its children in order, renumbering
// placeholders so that the combined text stays contiguous.
func Seq[A any](children ...Fragment[A]) Fragment[A] {
	return seqFragment[A]{children: children}
}

type rawFragment[A any] struct {
	sql string
}

func (f rawFragment[A]) build(_ Escaper, _ int, sql *strings.Builder, acc []Accessor[A]) ([]Accessor[A], error) {
	sql.WriteString(f.sql)
	return acc, nil
}

type strFragment[A any] struct {
	s string
}

func (f strFragment[A]) build(esc Escaper, _ int, sql *strings.Builder, acc []Accessor[A]) ([]Accessor[A], error) {
	sql.WriteString(esc.EscapeString(f.s))
	return acc, nil
}

type litFragment[A any] struct {
	v Value
}

func (f litFragment[A]) build(esc Escaper, _ int, sql *strings.Builder, acc []Accessor[A]) ([]Accessor[A], error) {
	text, err := esc.EscapeLiteral(f.v)
	if err != nil {
		return nil, fmt.Errorf("escape literal: %w", err)
	}
	sql.WriteString(text)
	return acc, nil
}

type identFragment[A any] struct {
	name string
}

func (f identFragment[A]) build(esc Escaper, _ int, sql *strings.Builder, acc []Accessor[A]) ([]Accessor[A], error) {
	sql.WriteString(esc.EscapeIdentifier(f.name))
	return acc, nil
}

type bindFragment[A any] struct {
	v Value
}

func (f bindFragment[A]) build(_ Escaper, start int, sql *strings.Builder, acc []Accessor[A]) ([]Accessor[A], error) {
	writePlaceholder(sql, start+len(acc))
	v := f.v
	return append(acc, func(A) Value { return v }), nil
}

type argFragment[A any] struct {
	get Accessor[A]
}

func (f argFragment[A]) build(_ Escaper, start int, sql *strings.Builder, acc []Accessor[A]) ([]Accessor[A], error) {
	writePlaceholder(sql, start+len(acc))
	return append(acc, f.get), nil
}

type seqFragment[A any] struct {
	children []Fragment[A]
}

func (f seqFragment[A]) build(esc Escaper, start int, sql *strings.Builder, acc []Accessor[A]) ([]Accessor[A], error) {
	var err error
	for _, child := range f.children {
		// acc carries every accessor collected so far, so each child
		// numbers its placeholders from start+len(acc).
		acc, err = child.build(esc, start, sql, acc)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func writePlaceholder(sql *strings.Builder, n int) {
	sql.WriteByte('$')
	sql.WriteString(strconv.Itoa(n))
}
