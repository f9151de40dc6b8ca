package validate

import (
	"reflect"
	"time"
)

// typeName names the TOML type family of v.
func typeName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer"
	case float32, float64:
		return "float"
	case bool:
		return "boolean"
	case time.Time:
		return "datetime"
	case nil:
		return "null"
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "table"
	}
	return reflect.TypeOf(v).String()
}

// typeMatches reports whether actual has the same type family as expected.
// An integer is accepted where a float is expected.
func typeMatches(expected, actual any) bool {
	e, a := typeName(expected), typeName(actual)
	return e == a || (e == "float" && a == "integer")
}
