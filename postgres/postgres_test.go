package postgres

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/fragql"
)

func TestEscapeLiteral(t *testing.T) {
	tests := []struct {
		name  string
		value fragql.Value
		want  string
	}{
		{"nil", nil, "NULL"},
		{"true", true, "TRUE"},
		{"false", false, "FALSE"},
		{"int", 42, "42"},
		{"negative int64", int64(-7), "-7"},
		{"uint", uint(9), "9"},
		{"float", 3.5, "3.5"},
		{"nan", math.NaN(), "'NaN'"},
		{"infinity", math.Inf(1), "'Infinity'"},
		{"negative infinity", math.Inf(-1), "'-Infinity'"},
		{"string", "hello", "'hello'"},
		{"string with quote", "O'Brien", "'O''Brien'"},
		{"time", time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), "'2024-03-01 12:00:00Z'"},
		{"bytes", []byte{0xde, 0xad}, `'\xdead'`},
		{"array", []fragql.Value{1, "a", nil}, "ARRAY[1, 'a', NULL]"},
		{"map", map[string]fragql.Value{"a": 1}, `'{"a":1}'`},
	}

	esc := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := esc.EscapeLiteral(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEscapeLiteralUnsupported(t *testing.T) {
	_, err := New().EscapeLiteral(struct{ X int }{1})
	assert.Error(t, err)
}

func TestEscapeLiteralBadArrayElement(t *testing.T) {
	_, err := New().EscapeLiteral([]fragql.Value{1, struct{}{}})
	assert.Error(t, err)
}

func TestEscapeString(t *testing.T) {
	esc := New()
	assert.Equal(t, "'it''s'", esc.EscapeString("it's"))
	assert.Equal(t, "''", esc.EscapeString(""))
}

func TestEscapeIdentifier(t *testing.T) {
	esc := New()
	assert.Equal(t, `"users"`, esc.EscapeIdentifier("users"))
	assert.Equal(t, `"weird""name"`, esc.EscapeIdentifier(`weird"name`))
	assert.Equal(t, `"user table"`, esc.EscapeIdentifier("user table"))
}
