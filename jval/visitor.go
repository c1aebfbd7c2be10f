package jval

// Visitor receives the events of a depth-first walk over a value.
// Composite values are bracketed by Begin/End events; object values
// emit an ObjectKey event before each field value.
type Visitor interface {
	VisitNull() error
	VisitBool(b bool) error
	VisitNumber(f float64) error
	VisitString(s string) error

	BeginArray(n int) error
	EndArray() error

	BeginObject(n int) error
	ObjectKey(key string) error
	EndObject() error
}

type walkFrame struct {
	v       Value
	index   int
	entered bool
}

// Walk traverses v depth-first, in field and element order, calling
// the visitor for each event. It stops at the first error and
// returns it. The traversal keeps an explicit stack, so values of
// pathological depth cannot overflow the call stack.
func Walk(v Value, vis Visitor) error {
	stack := []walkFrame{{v: v}}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if !f.entered {
			f.entered = true
			var err error
			switch f.v.kind {
			case NullKind:
				err = vis.VisitNull()
			case BoolKind:
				err = vis.VisitBool(f.v.b)
			case NumberKind:
				err = vis.VisitNumber(f.v.num)
			case StringKind:
				err = vis.VisitString(f.v.str)
			case ArrayKind:
				err = vis.BeginArray(len(f.v.elems))
			case ObjectKind:
				err = vis.BeginObject(len(f.v.fields))
			}
			if err != nil {
				return err
			}
			if f.v.kind.IsLeaf() {
				stack = stack[:len(stack)-1]
			}
			continue
		}
		switch f.v.kind {
		case ArrayKind:
			if f.index < len(f.v.elems) {
				child := f.v.elems[f.index]
				f.index++
				stack = append(stack, walkFrame{v: child})
				continue
			}
			if err := vis.EndArray(); err != nil {
				return err
			}
			stack = stack[:len(stack)-1]
		case ObjectKind:
			if f.index < len(f.v.fields) {
				field := f.v.fields[f.index]
				f.index++
				if err := vis.ObjectKey(field.Key); err != nil {
					return err
				}
				stack = append(stack, walkFrame{v: field.Val})
				continue
			}
			if err := vis.EndObject(); err != nil {
				return err
			}
			stack = stack[:len(stack)-1]
		}
	}
	return nil
}
