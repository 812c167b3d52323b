// Package postgres provides the PostgreSQL escaping rules and query
// executor for fragql fragments.
package postgres

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/zoobzio/fragql"
)

// timestampFormat renders time values with full precision and zone
// offset, which PostgreSQL accepts for timestamp and timestamptz.
const timestampFormat = "2006-01-02 15:04:05.999999999Z07:00"

// Escaper implements fragql.Escaper with PostgreSQL quoting rules.
type Escaper struct{}

// New creates a PostgreSQL escaper.
func New() Escaper {
	return Escaper{}
}

// EscapeString renders s as a single-quoted SQL string literal.
func (Escaper) EscapeString(s string) string {
	return pq.QuoteLiteral(s)
}

// EscapeIdentifier renders name as a double-quoted SQL identifier.
func (Escaper) EscapeIdentifier(name string) string {
	return pq.QuoteIdentifier(name)
}

// EscapeLiteral renders v as inline SQL: nil as NULL, booleans as
// TRUE/FALSE, numbers bare, strings and timestamps quoted, []byte as
// bytea hex, []fragql.Value as an ARRAY constructor, and string-keyed
// maps as quoted JSON. Unsupported Go types return an error.
func (e Escaper) EscapeLiteral(v fragql.Value) (string, error) {
	switch v := v.(type) {
	case nil:
		return "NULL", nil
	case bool:
		if v {
			return "TRUE", nil
		}
		return "FALSE", nil
	case string:
		return pq.QuoteLiteral(v), nil
	case int:
		return strconv.FormatInt(int64(v), 10), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return e.escapeFloat(float64(v))
	case float64:
		return e.escapeFloat(v)
	case time.Time:
		return pq.QuoteLiteral(v.Format(timestampFormat)), nil
	case []byte:
		return "'\\x" + hex.EncodeToString(v) + "'", nil
	case []fragql.Value:
		return e.escapeArray(v)
	case map[string]fragql.Value:
		encoded, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("encode map literal: %w", err)
		}
		return pq.QuoteLiteral(string(encoded)), nil
	default:
		return "", fmt.Errorf("unsupported literal type %T", v)
	}
}

func (e Escaper) escapeFloat(f float64) (string, error) {
	// PostgreSQL requires the quoted spellings for non-finite floats.
	switch {
	case math.IsNaN(f):
		return "'NaN'", nil
	case math.IsInf(f, 1):
		return "'Infinity'", nil
	case math.IsInf(f, -1):
		return "'-Infinity'", nil
	}
	return strconv.FormatFloat(f, 'g', -1, 64), nil
}

func (e Escaper) escapeArray(values []fragql.Value) (string, error) {
	var sb strings.Builder
	sb.WriteString("ARRAY[")
	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		text, err := e.EscapeLiteral(v)
		if err != nil {
			return "", fmt.Errorf("array element %d: %w", i, err)
		}
		sb.WriteString(text)
	}
	sb.WriteString("]")
	return sb.String(), nil
}
