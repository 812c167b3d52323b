package fragql

// Value is a bindable SQL value. The escaping adapter and the executor
// support nil, string, bool, integer and float types, time.Time, []byte,
// []Value, and map[string]Value; anything else is rejected when escaped
// inline and passed through to the driver when bound as a placeholder.
type Value = any

// Accessor extracts one bind value from the argument supplied at
// execution time. Accessors are resolved only when the bound query runs,
// never at fragment-construction time.
type Accessor[A any] func(A) Value
