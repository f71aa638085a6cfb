package propaccess

import (
	"reflect"
	"strconv"
	"strings"
)

// propName returns the property name of f and whether it is visible.
func propName(f reflect.StructField) (string, bool) {
	if !f.IsExported() || f.Anonymous {
		return "", false
	}
	tag, _, _ := strings.Cut(f.Tag.Get(TagName), ",")
	switch tag {
	case "-":
		return "", false
	case "":
		return f.Name, true
	default:
		return tag, true
	}
}

// visible lists the visible fields of struct type t in declaration order.
func visible(t reflect.Type) []reflect.StructField {
	var out []reflect.StructField
	for _, f := range reflect.VisibleFields(t) {
		if _, ok := propName(f); ok {
			out = append(out, f)
		}
	}

	return out
}

// field resolves name on struct value v: tag, exact name, then
// case-insensitive name.
func field(v reflect.Value, name string) (reflect.Value, bool) {
	fields := visible(v.Type())
	for _, f := range fields {
		if tag, _ := propName(f); tag == name && f.Tag.Get(TagName) != "" {
			return fieldByIndex(v, f.Index)
		}
	}
	for _, f := range fields {
		if f.Name == name {
			return fieldByIndex(v, f.Index)
		}
	}
	for _, f := range fields {
		if strings.EqualFold(f.Name, name) {
			return fieldByIndex(v, f.Index)
		}
	}

	return reflect.Value{}, false
}

// fieldByIndex is v.FieldByIndex that reports nil embedded pointers
// instead of panicking, allocating them when v is settable.
func fieldByIndex(v reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				if !v.CanSet() {
					return reflect.Value{}, false
				}
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}

	return v, true
}

// indirect follows pointers and interfaces; ok is false on nil.
func indirect(v reflect.Value) (reflect.Value, bool) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v, false
		}
		v = v.Elem()
	}

	return v, v.IsValid()
}

// child resolves one segment below v, which must already be indirected.
func child(v reflect.Value, seg string) (reflect.Value, bool) {
	switch v.Kind() {
	case reflect.Struct:
		return field(v, seg)
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return reflect.Value{}, false
		}
		c := v.MapIndex(reflect.ValueOf(seg).Convert(v.Type().Key()))

		return c, c.IsValid()
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= v.Len() || strconv.Itoa(i) != seg {
			return reflect.Value{}, false
		}

		return v.Index(i), true
	default:
		return reflect.Value{}, false
	}
}
