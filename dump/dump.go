// Package dump renders jval values and btree trees for humans.
//
// The output labels every value with its kind and indents nested
// structure, which makes mismatched kinds and stray fields easy to
// spot in test failures and debug logs. It is a diagnostic format,
// not a serialization format: nothing parses it back.
//
//	object {
//	  "code": number 404
//	  "tags": array [
//	    string "x"
//	  ]
//	}
//
// Output written to a terminal is colored per kind; elsewhere it is
// plain. Colors(true) and Colors(false) override the detection, and
// Indent changes the two-space default.
package dump

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/variantlab/variant/jval"
)

// Option adjusts how a dump is rendered.
type Option func(*state)

type state struct {
	indent   string
	colors   *palette
	colorSet bool
}

// Colors forces colored output on or off, overriding terminal
// detection.
func Colors(on bool) Option {
	return func(st *state) {
		st.colorSet = true
		if on {
			st.colors = newPalette()
		} else {
			st.colors = nil
		}
	}
}

// Indent sets the indentation unit. The default is two spaces.
func Indent(s string) Option {
	return func(st *state) { st.indent = s }
}

func newState(w io.Writer, opts []Option) *state {
	st := &state{indent: "  "}
	for _, opt := range opts {
		opt(st)
	}
	if !st.colorSet {
		if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			st.colors = newPalette()
		}
	}
	return st
}

// Fdump writes a kind-labeled rendering of v to w.
func Fdump(w io.Writer, v jval.Value, opts ...Option) error {
	r := &renderer{w: w, st: newState(w, opts)}
	return jval.Walk(v, r)
}

// Sdump returns the rendering of v as a string. Output is plain
// unless Colors(true) is given.
func Sdump(v jval.Value, opts ...Option) string {
	var sb strings.Builder
	r := &renderer{w: &sb, st: newState(&sb, opts)}
	jval.Walk(v, r)
	return sb.String()
}

// renderer lays out walk events one value per line. A pending object
// key keeps the following value on the key's line.
type renderer struct {
	w          io.Writer
	st         *state
	depth      int
	pendingKey bool
	empties    []bool
}

func (r *renderer) VisitNull() error {
	return r.line(r.st.colors.color(jval.NullKind, valueColor, "null"))
}

func (r *renderer) VisitBool(b bool) error {
	return r.leaf(jval.BoolKind, strconv.FormatBool(b))
}

func (r *renderer) VisitNumber(f float64) error {
	return r.leaf(jval.NumberKind, strconv.FormatFloat(f, 'g', -1, 64))
}

func (r *renderer) VisitString(s string) error {
	return r.leaf(jval.StringKind, strconv.Quote(s))
}

func (r *renderer) BeginArray(n int) error {
	return r.begin(jval.ArrayKind, n, "[", "[]")
}

func (r *renderer) EndArray() error {
	return r.end(jval.ArrayKind, "]")
}

func (r *renderer) BeginObject(n int) error {
	return r.begin(jval.ObjectKind, n, "{", "{}")
}

func (r *renderer) ObjectKey(key string) error {
	if err := r.prefix(); err != nil {
		return err
	}
	s := r.st.colors.color(jval.ObjectKind, fieldColor, strconv.Quote(key))
	if err := r.write(s + ": "); err != nil {
		return err
	}
	r.pendingKey = true
	return nil
}

func (r *renderer) EndObject() error {
	return r.end(jval.ObjectKind, "}")
}

// leaf writes "kind payload" on its own line.
func (r *renderer) leaf(k jval.Kind, payload string) error {
	label := r.st.colors.color(k, labelColor, k.String())
	return r.line(label + " " + r.st.colors.color(k, valueColor, payload))
}

func (r *renderer) begin(k jval.Kind, n int, open, empty string) error {
	label := r.st.colors.color(k, labelColor, k.String())
	if n == 0 {
		r.empties = append(r.empties, true)
		return r.line(label + " " + r.st.colors.color(k, sepColor, empty))
	}
	r.empties = append(r.empties, false)
	if err := r.line(label + " " + r.st.colors.color(k, sepColor, open)); err != nil {
		return err
	}
	r.depth++
	return nil
}

func (r *renderer) end(k jval.Kind, closing string) error {
	wasEmpty := r.empties[len(r.empties)-1]
	r.empties = r.empties[:len(r.empties)-1]
	if wasEmpty {
		return nil
	}
	r.depth--
	return r.line(r.st.colors.color(k, sepColor, closing))
}

func (r *renderer) line(s string) error {
	if err := r.prefix(); err != nil {
		return err
	}
	return r.write(s + "\n")
}

// prefix indents the current line, unless an object key already
// started it.
func (r *renderer) prefix() error {
	if r.pendingKey {
		r.pendingKey = false
		return nil
	}
	return r.write(strings.Repeat(r.st.indent, r.depth))
}

func (r *renderer) write(s string) error {
	_, err := io.WriteString(r.w, s)
	return err
}

var _ jval.Visitor = (*renderer)(nil)
