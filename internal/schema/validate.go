package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidJSON indicates the payload could not be decoded at all.
var ErrInvalidJSON = errors.New("invalid json payload")

// ValidationError names the first value that does not match its shape.
type ValidationError struct {
	Path string
	Want Kind
	Got  string
}

func (e *ValidationError) Error() string {
	path := e.Path
	if path == "" {
		path = "(root)"
	}
	return fmt.Sprintf("%s: expected %s, got %s", path, e.Want, e.Got)
}

// Validate checks value against s and returns a copy re-typed to the shape.
// Numbers come back as json.Number, objects keep only declared members.
// Fields are checked in declaration order so the reported mismatch is
// deterministic.
func Validate(s Shape, value any) (any, error) {
	return validate(s, value, "", true)
}

func validate(s Shape, value any, path string, present bool) (any, error) {
	if !present {
		return nil, &ValidationError{Path: path, Want: s.kind, Got: "missing"}
	}

	switch s.kind {
	case KindString:
		v, ok := value.(string)
		if !ok {
			return nil, mismatch(s, value, path)
		}
		return v, nil

	case KindNumber:
		switch v := value.(type) {
		case json.Number:
			return v, nil
		case float64:
			return json.Number(strconv.FormatFloat(v, 'f', -1, 64)), nil
		case int:
			return json.Number(strconv.Itoa(v)), nil
		}
		return nil, mismatch(s, value, path)

	case KindBool:
		v, ok := value.(bool)
		if !ok {
			return nil, mismatch(s, value, path)
		}
		return v, nil

	case KindArray:
		items, ok := value.([]any)
		if !ok {
			return nil, mismatch(s, value, path)
		}
		out := make([]any, len(items))
		for i, item := range items {
			v, err := validate(*s.elem, item, fmt.Sprintf("%s[%d]", path, i), true)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil

	case KindObject:
		obj, ok := value.(map[string]any)
		if !ok {
			return nil, mismatch(s, value, path)
		}
		out := make(map[string]any, len(s.fields))
		for _, f := range s.fields {
			raw, present := obj[f.Name]
			v, err := validate(f.Shape, raw, join(path, f.Name), present)
			if err != nil {
				return nil, err
			}
			out[f.Name] = v
		}
		return out, nil
	}

	return nil, fmt.Errorf("schema: unknown kind %d", s.kind)
}

func mismatch(s Shape, value any, path string) error {
	return &ValidationError{Path: path, Want: s.kind, Got: describe(value)}
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case json.Number, float64, int:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Parse decodes raw JSON preserving number literals.
func Parse(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return v, nil
}

// Unwrap validates raw against Envelope(data) and returns the envelope
// message together with the validated data member.
func Unwrap(data Shape, raw []byte) (string, any, error) {
	v, err := Parse(raw)
	if err != nil {
		return "", nil, err
	}
	valid, err := Validate(Envelope(data), v)
	if err != nil {
		return "", nil, err
	}
	env := valid.(map[string]any)
	return env["message"].(string), env["data"], nil
}

// Result is a decoded response envelope.
type Result[T any] struct {
	Message string
	Data    T
}

// Decode unwraps the envelope in raw, validates its data against the shape
// and re-types it into T.
func Decode[T any](data Shape, raw []byte) (Result[T], error) {
	var res Result[T]

	msg, valid, err := Unwrap(data, raw)
	if err != nil {
		return res, err
	}
	res.Message = msg

	typed, err := json.Marshal(valid)
	if err != nil {
		return res, fmt.Errorf("re-encoding validated data: %w", err)
	}
	if err := json.Unmarshal(typed, &res.Data); err != nil {
		return res, fmt.Errorf("decoding validated data: %w", err)
	}
	return res, nil
}
