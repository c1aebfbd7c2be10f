package govalue

import "github.com/variantlab/variant/jval"

// To converts a jval.Value to plain Go data.
//
// Null becomes nil, booleans bool, numbers float64, strings string,
// arrays []any and objects map[string]any. The result aliases nothing
// inside v.
func To(v jval.Value) any {
	return jval.Match(v, jval.Cases[any]{
		Null:   func() any { return nil },
		Bool:   func(b bool) any { return b },
		Number: func(f float64) any { return f },
		String: func(s string) any { return s },
		Array: func(elems []jval.Value) any {
			arr := make([]any, len(elems))
			for i, e := range elems {
				arr[i] = To(e)
			}
			return arr
		},
		Object: func(fields []jval.Field) any {
			obj := make(map[string]any, len(fields))
			for _, f := range fields {
				obj[f.Key] = To(f.Val)
			}
			return obj
		},
	})
}
