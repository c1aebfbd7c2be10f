package jval

import (
	"reflect"
	"strings"
	"testing"
)

func describeCases() Cases[string] {
	return Cases[string]{
		Null:   func() string { return "null" },
		Bool:   func(b bool) string { return "bool" },
		Number: func(f float64) string { return "number" },
		String: func(s string) string { return "string" },
		Array:  func(es []Value) string { return "array" },
		Object: func(fs []Field) string { return "object" },
	}
}

func TestMatchDispatchesByKind(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Null(), "null"},
		{Bool(true), "bool"},
		{Number(2), "number"},
		{String("x"), "string"},
		{Array(Null()), "array"},
		{Object(F("a", Null())), "object"},
	}
	cs := describeCases()
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Match(tt.v, cs); got != tt.want {
				t.Errorf("Match() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMatchPayloads(t *testing.T) {
	got := Match(Number(2.5), Cases[float64]{
		Number:  func(f float64) float64 { return f },
		Default: func(Value) float64 { return 0 },
	})
	if got != 2.5 {
		t.Errorf("number payload = %v, want 2.5", got)
	}

	keys := Match(Object(F("b", Null()), F("a", Null())), Cases[[]string]{
		Object: func(fs []Field) []string {
			var res []string
			for _, f := range fs {
				res = append(res, f.Key)
			}
			return res
		},
		Default: func(Value) []string { return nil },
	})
	if !reflect.DeepEqual(keys, []string{"b", "a"}) {
		t.Errorf("object keys = %v, want [b a]", keys)
	}
}

func TestMatchDefault(t *testing.T) {
	cs := Cases[string]{
		String:  func(s string) string { return "string" },
		Default: func(v Value) string { return "other " + v.Kind().String() },
	}
	if got := Match(String("x"), cs); got != "string" {
		t.Errorf("Match(string) = %q", got)
	}
	if got := Match(Number(1), cs); got != "other number" {
		t.Errorf("Match(number) = %q", got)
	}
}

func TestMatchUncoveredKindPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Match should panic when the active kind is uncovered")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "number") {
			t.Errorf("panic = %v, want message naming the kind", r)
		}
	}()
	Match(Number(1), Cases[string]{
		String: func(s string) string { return s },
	})
}

func TestMatchHandlerGetsACopy(t *testing.T) {
	v := Array(Number(1), Number(2))
	Match(v, Cases[struct{}]{
		Array: func(es []Value) struct{} {
			es[0] = Number(99)
			return struct{}{}
		},
		Default: func(Value) struct{} { return struct{}{} },
	})
	if !Equal(v, Array(Number(1), Number(2))) {
		t.Errorf("value mutated through handler: %s", v)
	}
}

func TestCasesMissing(t *testing.T) {
	tests := []struct {
		name string
		cs   Cases[int]
		want []Kind
	}{
		{"all missing", Cases[int]{}, []Kind{NullKind, BoolKind, NumberKind, StringKind, ArrayKind, ObjectKind}},
		{"some missing",
			Cases[int]{
				Null:   func() int { return 0 },
				Number: func(float64) int { return 0 },
				Object: func([]Field) int { return 0 },
			},
			[]Kind{BoolKind, StringKind, ArrayKind}},
		{"default covers everything",
			Cases[int]{Default: func(Value) int { return 0 }},
			nil},
		{"full coverage",
			Cases[int]{
				Null:   func() int { return 0 },
				Bool:   func(bool) int { return 0 },
				Number: func(float64) int { return 0 },
				String: func(string) int { return 0 },
				Array:  func([]Value) int { return 0 },
				Object: func([]Field) int { return 0 },
			},
			nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cs.Missing(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Missing() = %v, want %v", got, tt.want)
			}
		})
	}
}
