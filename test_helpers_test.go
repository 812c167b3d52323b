package fragql_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/zoobzio/fragql"
)

// testEscaper is a minimal deterministic escaper for unit tests. The
// real PostgreSQL rules live in the postgres package; the algebra only
// needs something pure to delegate to.
type testEscaper struct{}

func (testEscaper) EscapeString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func (testEscaper) EscapeIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (testEscaper) EscapeLiteral(v fragql.Value) (string, error) {
	switch v := v.(type) {
	case nil:
		return "NULL", nil
	case bool:
		if v {
			return "TRUE", nil
		}
		return "FALSE", nil
	case string:
		return "'" + strings.ReplaceAll(v, "'", "''") + "'", nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("unsupported literal type %T", v)
	}
}

// mustLinearize linearizes f from the given start offset, failing the
// test on error.
func mustLinearize[A any](t *testing.T, f fragql.Fragment[A], start int) (string, []fragql.Accessor[A]) {
	t.Helper()
	sql, accessors, err := fragql.Linearize(f, testEscaper{}, start)
	if err != nil {
		t.Fatalf("Linearize() error = %v", err)
	}
	return sql, accessors
}

// resolve maps the accessor list over arg in placeholder order.
func resolve[A any](accessors []fragql.Accessor[A], arg A) []fragql.Value {
	values := make([]fragql.Value, len(accessors))
	for i, get := range accessors {
		values[i] = get(arg)
	}
	return values
}

// wantValues compares resolved bind values position by position.
func wantValues(t *testing.T, got []fragql.Value, want ...fragql.Value) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d values, want %d (%v vs %v)", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d = %v, want %v", i, got[i], want[i])
		}
	}
}
