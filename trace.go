package fragql

import (
	"encoding/json"
	"fmt"
	"strings"
)

// argMarker is the opaque trace form of an execution-time argument.
const argMarker = "<arg>"

// Trace renders a human-readable form of f for test assertions and
// debugging. Raw text appears verbatim, string and literal fragments show
// their JSON-encoded value, identifiers show their raw name, and
// arguments show an opaque marker. The result is never valid SQL.
func Trace[A any](f Fragment[A]) string {
	var sb strings.Builder
	f.trace(&sb)
	return sb.String()
}

func (f rawFragment[A]) trace(sb *strings.Builder) {
	sb.WriteString(f.sql)
}

func (f strFragment[A]) trace(sb *strings.Builder) {
	writeJSON(sb, f.s)
}

func (f litFragment[A]) trace(sb *strings.Builder) {
	writeJSON(sb, f.v)
}

func (f identFragment[A]) trace(sb *strings.Builder) {
	sb.WriteString(f.name)
}

func (f bindFragment[A]) trace(sb *strings.Builder) {
	writeJSON(sb, f.v)
}

func (f argFragment[A]) trace(sb *strings.Builder) {
	sb.WriteString(argMarker)
}

func (f seqFragment[A]) trace(sb *strings.Builder) {
	for _, child := range f.children {
		child.trace(sb)
	}
}

func writeJSON(sb *strings.Builder, v Value) {
	encoded, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(sb, "%v", v)
		return
	}
	sb.Write(encoded)
}
