package fragql

import (
	"fmt"

	"github.com/zoobzio/dbml"
)

// Schema validates identifier names against a DBML project before they
// reach query text. Validated names feed Ident, so misspelled tables and
// columns fail at construction time instead of at the database.
type Schema struct {
	tables  map[string]*dbml.Table
	columns map[string]map[string]*dbml.Column
}

// NewSchema creates a Schema from a DBML project.
func NewSchema(project *dbml.Project) (*Schema, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	s := &Schema{
		tables:  make(map[string]*dbml.Table),
		columns: make(map[string]map[string]*dbml.Column),
	}

	for _, table := range project.Tables {
		s.tables[table.Name] = table
		s.columns[table.Name] = make(map[string]*dbml.Column)
		for _, col := range table.Columns {
			s.columns[table.Name][col.Name] = col
		}
	}

	return s, nil
}

// TryT returns the table name if it exists in the schema.
func (s *Schema) TryT(name string) (string, error) {
	if _, ok := s.tables[name]; !ok {
		return "", fmt.Errorf("table '%s' not found in schema", name)
	}
	return name, nil
}

// T returns a validated table name for use with Ident. Panics if the
// table is not in the schema.
func (s *Schema) T(name string) string {
	name, err := s.TryT(name)
	if err != nil {
		panic(err)
	}
	return name
}

// TryC returns the column name if the table and column exist in the
// schema.
func (s *Schema) TryC(table, column string) (string, error) {
	cols, ok := s.columns[table]
	if !ok {
		return "", fmt.Errorf("table '%s' not found in schema", table)
	}
	if _, ok := cols[column]; !ok {
		return "", fmt.Errorf("column '%s' not found in table '%s'", column, table)
	}
	return column, nil
}

// C returns a validated column name for use with Ident. Panics if the
// table or column is not in the schema.
func (s *Schema) C(table, column string) string {
	column, err := s.TryC(table, column)
	if err != nil {
		panic(err)
	}
	return column
}
