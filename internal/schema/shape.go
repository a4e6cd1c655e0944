// Package schema checks decoded JSON against declared record shapes before
// the data reaches any state holder.
package schema

// Kind is the primitive or composite type a Shape expects.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Shape describes the expected structure of a JSON value.
// The zero value is a string shape.
type Shape struct {
	kind   Kind
	elem   *Shape
	fields []FieldShape
}

// FieldShape is one named member of an object shape.
type FieldShape struct {
	Name  string
	Shape Shape
}

// Kind reports what the shape expects at its root.
func (s Shape) Kind() Kind { return s.kind }

// Fields returns the declared object members in declaration order.
func (s Shape) Fields() []FieldShape { return s.fields }

// Elem returns the element shape of an array shape.
func (s Shape) Elem() (Shape, bool) {
	if s.elem == nil {
		return Shape{}, false
	}
	return *s.elem, true
}

func String() Shape { return Shape{kind: KindString} }
func Number() Shape { return Shape{kind: KindNumber} }
func Bool() Shape   { return Shape{kind: KindBool} }

// Array expects a JSON array whose every element matches elem.
func Array(elem Shape) Shape {
	return Shape{kind: KindArray, elem: &elem}
}

// Object expects a JSON object carrying at least the given fields.
// Members not declared here are dropped from validated output.
func Object(fields ...FieldShape) Shape {
	return Shape{kind: KindObject, fields: fields}
}

// Field declares an object member.
func Field(name string, s Shape) FieldShape {
	return FieldShape{Name: name, Shape: s}
}

// Strings declares several string members at once.
func Strings(names ...string) []FieldShape {
	out := make([]FieldShape, len(names))
	for i, n := range names {
		out[i] = Field(n, String())
	}
	return out
}

// Extend returns an object shape with extra members appended after the
// receiver's own. The receiver is not modified.
func (s Shape) Extend(fields ...FieldShape) Shape {
	merged := make([]FieldShape, 0, len(s.fields)+len(fields))
	merged = append(merged, s.fields...)
	merged = append(merged, fields...)
	return Object(merged...)
}

// Envelope wraps a data shape in the server's response envelope
// {"message": string, "data": <data>}.
func Envelope(data Shape) Shape {
	return Object(
		Field("message", String()),
		Field("data", data),
	)
}
