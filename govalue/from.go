package govalue

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/variantlab/variant/jval"
)

var valueType = reflect.TypeOf(jval.Value{})

// From converts a Go value to a jval.Value.
//
// nil becomes Null. Booleans, strings, and every integer, unsigned and
// float kind map to the corresponding jval kind (all numbers become
// float64). Slices and arrays become arrays, string-keyed maps and
// structs become objects, nil pointers become Null and non-nil
// pointers are dereferenced. A jval.Value passes through unchanged.
//
// Struct fields use the field name unless a `jval` tag renames them;
// `jval:"-"` omits the field, and embedded structs are flattened into
// the parent object.
func From(v any) (jval.Value, error) {
	if v == nil {
		return jval.Null(), nil
	}
	visited := make(map[uintptr]string) // pointer address -> field path where first seen
	return fromValue(reflect.ValueOf(v), "", visited)
}

func fromValue(val reflect.Value, fieldPath string, visited map[uintptr]string) (jval.Value, error) {
	if !val.IsValid() {
		return jval.Null(), nil
	}
	typ := val.Type()
	if typ == valueType {
		return val.Interface().(jval.Value), nil
	}

	switch typ.Kind() {
	case reflect.Bool:
		return jval.Bool(val.Bool()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return jval.Number(float64(val.Int())), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return jval.Number(float64(val.Uint())), nil

	case reflect.Float32, reflect.Float64:
		return jval.Number(val.Float()), nil

	case reflect.String:
		return jval.String(val.String()), nil

	case reflect.Slice, reflect.Array:
		return fromSlice(val, fieldPath, visited)

	case reflect.Map:
		return fromMap(val, fieldPath, visited)

	case reflect.Struct:
		return fromStruct(val, fieldPath, visited)

	case reflect.Pointer:
		if val.IsNil() {
			return jval.Null(), nil
		}
		addr := val.Pointer()
		if prev, seen := visited[addr]; seen {
			return jval.Value{}, convertErrorf(fieldPath, ErrCircular,
				"circular reference, previously seen at %q", prev)
		}
		visited[addr] = fieldPath
		v, err := fromValue(val.Elem(), fieldPath, visited)
		// The same pointer may legitimately appear in sibling branches.
		delete(visited, addr)
		return v, err

	case reflect.Interface:
		if val.IsNil() {
			return jval.Null(), nil
		}
		return fromValue(val.Elem(), fieldPath, visited)

	default:
		return jval.Value{}, convertErrorf(fieldPath, ErrUnsupported,
			"cannot convert %s", typ)
	}
}

func fromSlice(val reflect.Value, fieldPath string, visited map[uintptr]string) (jval.Value, error) {
	if val.Kind() == reflect.Slice {
		if val.IsNil() {
			return jval.Null(), nil
		}
		addr := val.Pointer()
		if prev, seen := visited[addr]; seen {
			return jval.Value{}, convertErrorf(fieldPath, ErrCircular,
				"circular reference, previously seen at %q", prev)
		}
		visited[addr] = fieldPath
		defer delete(visited, addr)
	}

	elems := make([]jval.Value, val.Len())
	for i := range elems {
		e, err := fromValue(val.Index(i), fmt.Sprintf("%s[%d]", fieldPath, i), visited)
		if err != nil {
			return jval.Value{}, err
		}
		elems[i] = e
	}
	return jval.Array(elems...), nil
}

func fromMap(val reflect.Value, fieldPath string, visited map[uintptr]string) (jval.Value, error) {
	if val.IsNil() {
		return jval.Null(), nil
	}
	if kt := val.Type().Key(); kt.Kind() != reflect.String {
		return jval.Value{}, convertErrorf(fieldPath, ErrUnsupported,
			"map keys must be strings, got %s", kt)
	}

	addr := val.Pointer()
	if prev, seen := visited[addr]; seen {
		return jval.Value{}, convertErrorf(fieldPath, ErrCircular,
			"circular reference, previously seen at %q", prev)
	}
	visited[addr] = fieldPath
	defer delete(visited, addr)

	fields := make(map[string]jval.Value, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		key := iter.Key().String()
		v, err := fromValue(iter.Value(), joinPath(fieldPath, key), visited)
		if err != nil {
			return jval.Value{}, err
		}
		fields[key] = v
	}
	return jval.ObjectOf(fields), nil
}

// fromStruct converts a struct to an object, keeping fields in
// declaration order. Embedded structs are flattened into the parent.
// Struct values themselves are not cycle-tracked: only reference types
// can close a cycle.
func fromStruct(val reflect.Value, fieldPath string, visited map[uintptr]string) (jval.Value, error) {
	fields, err := structFields(val, fieldPath, visited)
	if err != nil {
		return jval.Value{}, err
	}
	return jval.Object(fields...), nil
}

func structFields(val reflect.Value, fieldPath string, visited map[uintptr]string) ([]jval.Field, error) {
	typ := val.Type()
	var fields []jval.Field
	seen := make(map[string]bool, typ.NumField())

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			embedded, err := structFields(val.Field(i), fieldPath, visited)
			if err != nil {
				return nil, err
			}
			for _, f := range embedded {
				if seen[f.Key] {
					return nil, convertErrorf(fieldPath, nil,
						"embedded field %q conflicts with an existing field", f.Key)
				}
				seen[f.Key] = true
				fields = append(fields, f)
			}
			continue
		}

		name, skip := fieldName(field)
		if skip {
			continue
		}
		if seen[name] {
			return nil, convertErrorf(fieldPath, nil,
				"field %q conflicts with an existing field", name)
		}
		seen[name] = true

		v, err := fromValue(val.Field(i), joinPath(fieldPath, name), visited)
		if err != nil {
			return nil, err
		}
		fields = append(fields, jval.F(name, v))
	}
	return fields, nil
}

// fieldName resolves a struct field's object key from its `jval` tag.
// The second result reports whether the field is omitted.
func fieldName(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get("jval")
	if tag == "" {
		return field.Name, false
	}
	name, _, _ := strings.Cut(tag, ",")
	switch name {
	case "-":
		return "", true
	case "":
		return field.Name, false
	}
	return name, false
}

func joinPath(fieldPath, key string) string {
	if fieldPath == "" {
		return key
	}
	return fieldPath + "." + key
}
