// Package testing provides test utilities for fragql.
package testing

import (
	"testing"

	"github.com/zoobzio/dbml"

	"github.com/zoobzio/fragql"
)

// TestSchema creates a fragql schema for testing, covering users, posts,
// and orders tables.
func TestSchema(t *testing.T) *fragql.Schema {
	t.Helper()

	schema, err := fragql.NewSchema(TestProject())
	if err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return schema
}

// BenchSchema is TestSchema for benchmarks.
func BenchSchema(b *testing.B) *fragql.Schema {
	b.Helper()

	schema, err := fragql.NewSchema(TestProject())
	if err != nil {
		b.Fatalf("Failed to create schema: %v", err)
	}
	return schema
}

// TestProject builds the DBML project backing TestSchema.
func TestProject() *dbml.Project {
	project := dbml.NewProject("test")

	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("username", "varchar"))
	users.AddColumn(dbml.NewColumn("email", "varchar"))
	users.AddColumn(dbml.NewColumn("age", "int"))
	users.AddColumn(dbml.NewColumn("active", "boolean"))
	users.AddColumn(dbml.NewColumn("created_at", "timestamp"))
	project.AddTable(users)

	posts := dbml.NewTable("posts")
	posts.AddColumn(dbml.NewColumn("id", "bigint"))
	posts.AddColumn(dbml.NewColumn("user_id", "bigint"))
	posts.AddColumn(dbml.NewColumn("title", "varchar"))
	posts.AddColumn(dbml.NewColumn("views", "int"))
	posts.AddColumn(dbml.NewColumn("published", "boolean"))
	project.AddTable(posts)

	orders := dbml.NewTable("orders")
	orders.AddColumn(dbml.NewColumn("id", "bigint"))
	orders.AddColumn(dbml.NewColumn("user_id", "bigint"))
	orders.AddColumn(dbml.NewColumn("total", "numeric"))
	orders.AddColumn(dbml.NewColumn("status", "varchar"))
	project.AddTable(orders)

	return project
}
