package variant

import (
	"reflect"
	"testing"
)

type color int

const (
	red color = iota
	green
	blue
)

func testColors() *Set[color] {
	return NewSet[color]().
		Def(red, "red").
		Def(green, "green").
		Def(blue, "blue")
}

func TestSetName(t *testing.T) {
	colors := testColors()
	tests := []struct {
		name string
		kind color
		want string
	}{
		{name: "first", kind: red, want: "red"},
		{name: "middle", kind: green, want: "green"},
		{name: "last", kind: blue, want: "blue"},
		{name: "unknown", kind: color(42), want: "<unknown kind>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := colors.Name(tt.kind); got != tt.want {
				t.Errorf("Name(%v) = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestSetFromName(t *testing.T) {
	colors := testColors()
	tests := []struct {
		name   string
		want   color
		wantOK bool
	}{
		{name: "red", want: red, wantOK: true},
		{name: "blue", want: blue, wantOK: true},
		{name: "mauve", wantOK: false},
		{name: "", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := colors.FromName(tt.name)
			if ok != tt.wantOK {
				t.Fatalf("FromName(%q) ok = %t, want %t", tt.name, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("FromName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestSetKindsOrder(t *testing.T) {
	colors := testColors()
	want := []color{red, green, blue}
	if got := colors.Kinds(); !reflect.DeepEqual(got, want) {
		t.Errorf("Kinds() = %v, want %v", got, want)
	}
	if got := colors.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}

func TestSetKindsIsACopy(t *testing.T) {
	colors := testColors()
	ks := colors.Kinds()
	ks[0] = color(99)
	if got := colors.Kinds()[0]; got != red {
		t.Errorf("Kinds()[0] = %v after caller mutation, want %v", got, red)
	}
}

func TestSetMissing(t *testing.T) {
	colors := testColors()
	tests := []struct {
		name    string
		covered []color
		want    []color
	}{
		{name: "none covered", covered: nil, want: []color{red, green, blue}},
		{name: "partial", covered: []color{green}, want: []color{red, blue}},
		{name: "all", covered: []color{blue, red, green}, want: nil},
		{name: "non-member covered", covered: []color{color(42)}, want: []color{red, green, blue}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := colors.Missing(tt.covered...); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Missing(%v) = %v, want %v", tt.covered, got, tt.want)
			}
		})
	}
}

func TestSetHas(t *testing.T) {
	colors := testColors()
	if !colors.Has(green) {
		t.Error("Has(green) = false, want true")
	}
	if colors.Has(color(42)) {
		t.Error("Has(42) = true, want false")
	}
}

func TestSetDefDuplicateKindPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Def should panic on duplicate kind")
		}
	}()
	NewSet[color]().Def(red, "red").Def(red, "crimson")
}

func TestSetDefDuplicateNamePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Def should panic on duplicate name")
		}
	}()
	NewSet[color]().Def(red, "red").Def(green, "red")
}
