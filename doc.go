// Package fragql builds parameterized SQL text and its ordered bind-value
// list from composable fragments.
//
// A Fragment is an immutable node of a SQL expression, generic over the
// argument shape A that is supplied when the query finally runs. Fragments
// nest: embedding a fragment with two placeholders inside another at
// argument position three renders `$3` and `$4` in the surrounding text,
// with the accessor list reordered to match. Placeholder numbering is
// always contiguous and assigned at linearization time, so the same
// fragment value can be reused inside any number of outer queries.
//
// # Basic Usage
//
// Queries are written as templates of literal segments interleaved with
// embedded expressions:
//
//	type ByEmail struct {
//		Email string `db:"email"`
//	}
//
//	users := fragql.Ident[ByEmail]("users")
//	b := fragql.Template[ByEmail](
//		[]string{"SELECT id, name FROM ", " WHERE email = ", ""},
//		users, fragql.Get[ByEmail]("email"),
//	)
//	sql, accessors, err := fragql.Linearize(b.Fragment(), postgres.New(), 1)
//	// sql: SELECT id, name FROM "users" WHERE email = $1
//	// accessors[0](ByEmail{Email: "a@b.c"}) == "a@b.c"
//
// Plain embedded values always become placeholders, never inline SQL;
// inline escaping is explicit via Lit, Str, and Ident.
//
// # Argument Remapping
//
// Remap lets a fragment written against one argument shape be embedded in
// a query expecting another, given a projection between the shapes:
//
//	inner := fragql.Arg(func(name string) fragql.Value { return name })
//	outer := fragql.Remap[Filter](inner, func(f Filter) string { return f.Name })
//
// Remap never mutates; it returns a rebuilt fragment whose accessors are
// composed with the projection.
//
// # Execution
//
// The postgres subpackage provides the PostgreSQL escaping rules and a
// query executor over pgx. Bind linearizes a fragment once, attaches a
// generated statement name for prepared-statement reuse, and maps the
// accessor list over a caller argument on every invocation.
package fragql
