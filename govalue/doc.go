// Package govalue bridges ordinary Go values and jval values.
//
// # Usage
//
// From converts a Go value to a jval.Value:
//
//	v, err := govalue.From(map[string]any{
//	    "name": "ada",
//	    "tags": []string{"x", "y"},
//	})
//
// Structs convert field by field. The `jval` tag renames a field,
// and `jval:"-"` omits it:
//
//	type User struct {
//	    Name  string `jval:"name"`
//	    Email string `jval:"-"`
//	}
//
// To converts back to plain Go data: nil, bool, float64, string,
// []any and map[string]any. To(From(x)) therefore loses Go type
// detail (all numbers come back as float64), the same way a trip
// through generic JSON decoding would.
//
// # Errors
//
// Unsupported types (funcs, channels, complex numbers, non-string
// map keys) and circular references return a *ConvertError wrapping
// ErrUnsupported or ErrCircular.
package govalue
