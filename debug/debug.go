// Package debug provides env-gated debug logging for the variant
// packages. Toggles are read once at process start:
//
//	VARIANT_DEBUG_MATCH     pattern matching
//	VARIANT_DEBUG_DISPATCH  clause dispatch
//	VARIANT_DEBUG_EVAL      guard expression evaluation
//
// Any value accepted by strconv.ParseBool enables a toggle.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Match    bool
	Dispatch bool
	Eval     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Match = boolEnv("VARIANT_DEBUG_MATCH")
	d.Dispatch = boolEnv("VARIANT_DEBUG_DISPATCH")
	d.Eval = boolEnv("VARIANT_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Match() bool {
	return d.Match
}
func Dispatch() bool {
	return d.Dispatch
}
func Eval() bool {
	return d.Eval
}

// Logf writes a formatted message to stderr. Map, slice and
// json.Number arguments are pretty-printed.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
