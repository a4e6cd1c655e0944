package form

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrUnknownField is returned for a name no string field carries.
var ErrUnknownField = errors.New("unknown field")

// Fields lists the json names of the string fields of a record struct in
// declaration order. Embedded structs are flattened; fields tagged "-" are
// skipped.
func Fields(rec any) []string {
	var names []string
	walk(reflect.TypeOf(rec), nil, func(name string, _ []int) {
		names = append(names, name)
	})
	return names
}

// Get returns the value of the string field with the given json name.
func Get(rec any, name string) (string, bool) {
	idx, ok := lookup(reflect.TypeOf(rec), name)
	if !ok {
		return "", false
	}
	return reflect.ValueOf(rec).FieldByIndex(idx).String(), true
}

// Values returns every string field keyed by json name.
func Values(rec any) map[string]string {
	out := make(map[string]string)
	v := reflect.ValueOf(rec)
	walk(v.Type(), nil, func(name string, idx []int) {
		out[name] = v.FieldByIndex(idx).String()
	})
	return out
}

// set writes value into the named string field of *rec.
func set(rec any, name, value string) error {
	ptr := reflect.ValueOf(rec)
	if ptr.Kind() != reflect.Pointer || ptr.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("form: set needs a struct pointer, got %T", rec)
	}
	idx, ok := lookup(ptr.Elem().Type(), name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	ptr.Elem().FieldByIndex(idx).SetString(value)
	return nil
}

func lookup(t reflect.Type, name string) ([]int, bool) {
	var found []int
	walk(t, nil, func(n string, idx []int) {
		if found == nil && n == name {
			found = idx
		}
	})
	return found, found != nil
}

func walk(t reflect.Type, prefix []int, visit func(name string, idx []int)) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		idx := append(append([]int(nil), prefix...), i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			walk(f.Type, idx, visit)
			continue
		}
		if !f.IsExported() || f.Type.Kind() != reflect.String {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		visit(name, idx)
	}
}
