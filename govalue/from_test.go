package govalue

import (
	"errors"
	"strings"
	"testing"

	"github.com/variantlab/variant/jval"
)

func TestFromScalars(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want jval.Value
	}{
		{"nil", nil, jval.Null()},
		{"true", true, jval.Bool(true)},
		{"false", false, jval.Bool(false)},
		{"int", 42, jval.Number(42)},
		{"negative int", -7, jval.Number(-7)},
		{"int8", int8(-8), jval.Number(-8)},
		{"int64", int64(1 << 40), jval.Number(1 << 40)},
		{"uint", uint(9), jval.Number(9)},
		{"uint16", uint16(65535), jval.Number(65535)},
		{"float32", float32(0.5), jval.Number(0.5)},
		{"float64", 3.25, jval.Number(3.25)},
		{"string", "hello", jval.String("hello")},
		{"empty string", "", jval.String("")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := From(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !jval.Equal(got, tt.want) {
				t.Errorf("From(%v) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromComposites(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want jval.Value
	}{
		{
			name: "int slice",
			in:   []int{1, 2, 3},
			want: jval.Array(jval.Number(1), jval.Number(2), jval.Number(3)),
		},
		{
			name: "string array",
			in:   [2]string{"a", "b"},
			want: jval.Array(jval.String("a"), jval.String("b")),
		},
		{
			name: "mixed any slice",
			in:   []any{nil, true, "x"},
			want: jval.Array(jval.Null(), jval.Bool(true), jval.String("x")),
		},
		{
			name: "empty slice",
			in:   []int{},
			want: jval.Array(),
		},
		{
			name: "nil slice",
			in:   []int(nil),
			want: jval.Null(),
		},
		{
			name: "string map",
			in:   map[string]int{"b": 2, "a": 1},
			want: jval.Object(jval.F("a", jval.Number(1)), jval.F("b", jval.Number(2))),
		},
		{
			name: "nil map",
			in:   map[string]int(nil),
			want: jval.Null(),
		},
		{
			name: "nested",
			in: map[string]any{
				"items": []any{map[string]any{"id": 1}},
			},
			want: jval.Object(
				jval.F("items", jval.Array(
					jval.Object(jval.F("id", jval.Number(1))),
				)),
			),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := From(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !jval.Equal(got, tt.want) {
				t.Errorf("From(%#v) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromPointers(t *testing.T) {
	n := 5
	pn := &n
	var nothing *int

	got, err := From(pn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := jval.Number(5); !jval.Equal(got, want) {
		t.Errorf("From(&5) = %s, want %s", got, want)
	}

	got, err = From(nothing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := jval.Null(); !jval.Equal(got, want) {
		t.Errorf("From((*int)(nil)) = %s, want %s", got, want)
	}
}

func TestFromValuePassthrough(t *testing.T) {
	orig := jval.Array(jval.Number(1), jval.String("two"))

	got, err := From(orig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !jval.Equal(got, orig) {
		t.Errorf("From(jval.Value) = %s, want %s", got, orig)
	}

	// Also inside composites.
	got, err = From([]any{orig})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := jval.Array(orig); !jval.Equal(got, want) {
		t.Errorf("From([]any{jval.Value}) = %s, want %s", got, want)
	}
}

func TestFromStruct(t *testing.T) {
	type Address struct {
		Street string `jval:"street"`
		Zip    string `jval:"zip"`
	}
	type User struct {
		Name    string `jval:"name"`
		Email   string `jval:"-"`
		Age     int
		Address *Address `jval:"address"`
		hidden  bool
	}

	u := User{
		Name:    "ada",
		Email:   "ada@example.com",
		Age:     36,
		Address: &Address{Street: "1 Analytical Way", Zip: "10001"},
		hidden:  true,
	}

	got, err := From(u)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := jval.Object(
		jval.F("name", jval.String("ada")),
		jval.F("Age", jval.Number(36)),
		jval.F("address", jval.Object(
			jval.F("street", jval.String("1 Analytical Way")),
			jval.F("zip", jval.String("10001")),
		)),
	)
	if !jval.Equal(got, want) {
		t.Errorf("From(user) = %s, want %s", got, want)
	}
}

func TestFromEmbeddedStruct(t *testing.T) {
	type Base struct {
		ID int `jval:"id"`
	}
	type Doc struct {
		Base
		Title string `jval:"title"`
	}

	got, err := From(Doc{Base: Base{ID: 7}, Title: "t"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := jval.Object(
		jval.F("id", jval.Number(7)),
		jval.F("title", jval.String("t")),
	)
	if !jval.Equal(got, want) {
		t.Errorf("From(doc) = %s, want %s", got, want)
	}
}

func TestFromEmbeddedConflict(t *testing.T) {
	type Base struct {
		Name string
	}
	type Doc struct {
		Base
		Name string
	}

	_, err := From(Doc{})
	if err == nil {
		t.Fatal("expected error for conflicting field names")
	}
	if !strings.Contains(err.Error(), "conflicts") {
		t.Errorf("expected conflict error, got: %v", err)
	}
}

func TestFromUnsupported(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"func", func() {}},
		{"chan", make(chan int)},
		{"complex", complex(1, 2)},
		{"int-keyed map", map[int]string{1: "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := From(tt.in)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrUnsupported) {
				t.Errorf("expected ErrUnsupported, got: %v", err)
			}
		})
	}
}

func TestFromErrorFieldPath(t *testing.T) {
	type Job struct {
		Callback func() `jval:"callback"`
	}
	type User struct {
		Jobs []Job `jval:"jobs"`
	}

	_, err := From(User{Jobs: make([]Job, 2)})
	if err == nil {
		t.Fatal("expected error")
	}
	var cerr *ConvertError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *ConvertError, got %T", err)
	}
	if want := "jobs[0].callback"; cerr.FieldPath != want {
		t.Errorf("FieldPath = %q, want %q", cerr.FieldPath, want)
	}
}
