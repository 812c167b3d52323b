package fragql_test

import (
	"fmt"

	"github.com/zoobzio/fragql"
	"github.com/zoobzio/fragql/postgres"
)

func ExampleTemplate() {
	type byID struct {
		ID int `db:"id"`
	}

	b := fragql.Template[byID](
		[]string{"SELECT name FROM ", " WHERE id = ", ""},
		fragql.Ident[byID]("users"),
		fragql.Get[byID]("id"),
	)

	sql, accessors, _ := fragql.Linearize(b.Fragment(), postgres.New(), 1)
	fmt.Println(sql)
	fmt.Println(accessors[0](byID{ID: 7}))

	// Output:
	// SELECT name FROM "users" WHERE id = $1
	// 7
}

func ExampleRemap() {
	type pagination struct{ Limit int }
	type listRequest struct {
		Page pagination
	}

	// Authored once against the pagination shape.
	page := fragql.Template[pagination](
		[]string{"LIMIT ", ""},
		func(p pagination) fragql.Value { return p.Limit },
	)

	// Embedded in a query with a different argument shape.
	query := fragql.Template[listRequest](
		[]string{"SELECT * FROM events ", ""},
		fragql.As(page, func(r listRequest) pagination { return r.Page }),
	)

	sql, accessors, _ := fragql.Linearize(query.Fragment(), postgres.New(), 1)
	fmt.Println(sql)
	fmt.Println(accessors[0](listRequest{Page: pagination{Limit: 25}}))

	// Output:
	// SELECT * FROM events LIMIT $1
	// 25
}

func ExampleTrace() {
	b := fragql.Template[struct{}](
		[]string{"INSERT INTO ", " VALUES (", ", ", ")"},
		fragql.Ident[struct{}]("logs"),
		fragql.Lit[struct{}]("startup"),
		fragql.Get[struct{}]("at"),
	)

	fmt.Println(fragql.Trace(b.Fragment()))

	// Output:
	// INSERT INTO logs VALUES ("startup", <arg>)
}
