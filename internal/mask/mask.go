// Package mask flattens configuration structs into logger fields with
// sensitive values hidden, so the effective configuration can be logged
// at startup without leaking credentials.
package mask

import (
	"reflect"
	"strings"
)

const tagName = "mask"

const maskedValue = "*****"

// Fields returns the struct as alternating key-value pairs suitable for a
// zap-style logger. Fields tagged with `mask:"true"` have their values
// replaced. Field names are resolved by priority: json tag > yaml tag >
// struct field name. Nested structs are flattened with dotted keys, and
// fields tagged json:"-" or yaml:"-" are omitted.
func Fields(v any) []any {
	if v == nil {
		return nil
	}
	return appendFields(nil, reflect.ValueOf(v), "")
}

func appendFields(out []any, val reflect.Value, prefix string) []any {
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return append(out, prefix, nil)
		}
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		return append(out, prefix, val.Interface())
	}

	typ := val.Type()
	for i := range val.NumField() {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if !fieldType.IsExported() {
			continue
		}

		name, skip := fieldName(fieldType)
		if skip {
			continue
		}
		if prefix != "" {
			name = prefix + "." + name
		}

		switch {
		case fieldType.Tag.Get(tagName) == "true":
			out = append(out, name, maskField(field))
		case isExpandable(field):
			out = appendFields(out, field, name)
		default:
			out = append(out, name, field.Interface())
		}
	}

	return out
}

// fieldName resolves the logged name of a struct field. The second return
// value reports whether the field is excluded from output.
func fieldName(f reflect.StructField) (string, bool) {
	for _, tag := range []string{"json", "yaml"} {
		v := f.Tag.Get(tag)
		if v == "" {
			continue
		}
		name := strings.Split(v, ",")[0]
		if name == "-" {
			return "", true
		}
		if name != "" {
			return name, false
		}
	}
	return f.Name, false
}

func isExpandable(v reflect.Value) bool {
	if v.Kind() == reflect.Pointer {
		return !v.IsNil() && v.Elem().Kind() == reflect.Struct
	}
	return v.Kind() == reflect.Struct
}

func maskField(v reflect.Value) any {
	switch v.Kind() { //nolint:exhaustive // only nilable kinds need the check
	case reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	case reflect.Slice, reflect.Map:
		if v.IsNil() {
			return nil
		}
	}

	// zero values carry no secret worth hiding
	if v.IsZero() {
		return v.Interface()
	}
	return maskedValue
}
