package jval

import (
	"math"
	"testing"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"null == null", Null(), Null(), true},
		{"null != false", Null(), Bool(false), false},
		{"false != 0", Bool(false), Number(0), false},
		{"0 != empty string", Number(0), String(""), false},
		{"bool equal", Bool(true), Bool(true), true},
		{"bool unequal", Bool(true), Bool(false), false},
		{"number equal", Number(1.5), Number(1.5), true},
		{"number unequal", Number(1), Number(2), false},
		{"string equal", String("a"), String("a"), true},
		{"string unequal", String("a"), String("b"), false},
		{"string != array of itself", String("a"), Array(String("a")), false},

		{"empty arrays", Array(), Array(), true},
		{"array equal", Array(Number(1), Number(2)), Array(Number(1), Number(2)), true},
		{"array order matters", Array(Number(1), Number(2)), Array(Number(2), Number(1)), false},
		{"array length matters", Array(Number(1)), Array(Number(1), Number(1)), false},

		{"empty objects", Object(), Object(), true},
		{"object field order irrelevant",
			Object(F("a", Number(1)), F("b", Number(2))),
			Object(F("b", Number(2)), F("a", Number(1))),
			true},
		{"object value unequal",
			Object(F("a", Number(1))),
			Object(F("a", Number(2))),
			false},
		{"object key sets differ",
			Object(F("a", Number(1))),
			Object(F("b", Number(1))),
			false},
		{"object subset is not equal",
			Object(F("a", Number(1))),
			Object(F("a", Number(1)), F("b", Number(2))),
			false},

		{"nested equal",
			Object(F("xs", Array(Number(1), Null())), F("s", String("q"))),
			Object(F("s", String("q")), F("xs", Array(Number(1), Null()))),
			true},
		{"nested unequal deep",
			Object(F("xs", Array(Number(1), Null()))),
			Object(F("xs", Array(Number(1), Bool(false)))),
			false},

		{"NaN equals NaN", Number(math.NaN()), Number(math.NaN()), true},
		{"negative zero equals zero", Number(math.Copysign(0, -1)), Number(0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%s, %s) = %t, want %t", tt.a, tt.b, got, tt.want)
			}
			// Equality is symmetric.
			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("Equal(%s, %s) = %t, want %t", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestEqualReflexive(t *testing.T) {
	vals := []Value{
		Null(),
		Bool(true),
		Number(-3.25),
		String("hello"),
		Array(Number(1), Array(String("x"))),
		Object(F("a", Number(1)), F("b", Object(F("c", Null())))),
	}
	for _, v := range vals {
		if !Equal(v, v) {
			t.Errorf("Equal(%s, %s) = false", v, v)
		}
	}
}
