package here

import (
	"reflect"
	"strings"
)

// Cast converts an arbitrary option value to a bool. Nil, false, zero numbers,
// empty strings and collections, typed nil pointers, and the strings "false",
// "off", and "f" in any case are false. Everything else is true.
func Cast(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		switch strings.ToLower(x) {
		case "", "false", "off", "f":
			return false
		default:
			return true
		}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		if rv.Kind() != reflect.Array && rv.IsNil() {
			return false
		}
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface, reflect.Func:
		return !rv.IsNil()
	default:
		return true
	}
}
