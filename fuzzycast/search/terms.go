package search

import (
	"fmt"
	"reflect"
)

// Terms normalizes arbitrary caller input into the list of textual search
// terms Compose expects: a string becomes a one-element list, a slice is
// converted element-wise, any other scalar is formatted as text, and nil or
// unsupported input normalizes to an empty list.
func Terms(input any) []string {
	if input == nil {
		return nil
	}
	switch v := input.(type) {
	case string:
		return []string{v}
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case fmt.Stringer:
		return []string{v.String()}
	}

	rv := reflect.ValueOf(input)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			if term, ok := text(rv.Index(i).Interface()); ok {
				out = append(out, term)
			}
		}
		return out
	default:
		if term, ok := text(input); ok {
			return []string{term}
		}
	}
	return nil
}

// text renders one scalar as a search term. Composite values (maps,
// structs, nested slices) are not terms and are dropped.
func text(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case fmt.Stringer:
		return t.String(), true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return fmt.Sprint(v), true
	}
	return "", false
}
