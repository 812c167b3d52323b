package fragql

import "fmt"

// UsageError indicates a malformed construction call, such as a template
// whose segment and embed counts disagree or an argument shorthand given
// the wrong number of keys. These are programmer errors; the panicking
// constructors surface them at construction time rather than at
// execution time.
type UsageError struct {
	Op     string
	Detail string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("fragql: invalid %s usage: %s", e.Op, e.Detail)
}
