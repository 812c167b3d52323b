package fragql

import (
	"fmt"
	"reflect"
)

// TryGet creates an argument fragment whose accessor indexes the
// execution-time argument by the given key: a string map key, an exported
// struct field name, or a `db` struct tag. Exactly one key is required;
// any other arity returns a *UsageError. A key absent from the argument
// resolves to nil at execution time.
func TryGet[A any](keys ...string) (Fragment[A], error) {
	if len(keys) != 1 {
		return nil, &UsageError{
			Op:     "Get",
			Detail: fmt.Sprintf("exactly one key required, got %d", len(keys)),
		}
	}
	key := keys[0]
	return argFragment[A]{get: func(a A) Value {
		return lookupKey(reflect.ValueOf(a), key)
	}}, nil
}

// Get is like TryGet but panics on invalid arity.
func Get[A any](keys ...string) Fragment[A] {
	f, err := TryGet[A](keys...)
	if err != nil {
		panic(err)
	}
	return f
}

func lookupKey(v reflect.Value, key string) Value {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil
		}
		elem := v.MapIndex(reflect.ValueOf(key).Convert(v.Type().Key()))
		if !elem.IsValid() {
			return nil
		}
		return elem.Interface()
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			if field.Name == key || field.Tag.Get("db") == key {
				return v.Field(i).Interface()
			}
		}
	}
	return nil
}
