package propaccess

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/katalvlaran/primext/dotarr"
)

// Get returns the value of the dotted property name on obj. ok is false
// when any segment does not resolve or crosses a nil pointer.
func Get(obj any, name string) (any, bool) {
	v, ok := resolve(reflect.ValueOf(obj), name)
	if !ok || !v.CanInterface() {
		return nil, false
	}

	return v.Interface(), true
}

// Has reports whether the dotted property name resolves on obj.
func Has(obj any, name string) bool {
	_, ok := Get(obj, name)

	return ok
}

// Names lists the top-level property names of obj in declaration order.
func Names(obj any) ([]string, error) {
	v, ok := indirect(reflect.ValueOf(obj))
	if !ok || v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %T", ErrNotStruct, obj)
	}
	fields := visible(v.Type())
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i], _ = propName(f)
	}

	return out, nil
}

// Set stores value in the dotted property name of obj, which must be a
// non-nil pointer to a struct. Nil pointers on the way are allocated.
// value is assigned directly when its type fits, converted between numeric
// kinds, and otherwise weakly decoded ("8080" into an int, a map into a
// struct).
func Set(obj any, name string, value any) error {
	root := reflect.ValueOf(obj)
	if root.Kind() != reflect.Pointer || root.IsNil() {
		return fmt.Errorf("%w: %T is not a non-nil pointer", ErrNotSettable, obj)
	}
	if root.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T", ErrNotStruct, obj)
	}

	segs := strings.Split(name, dotarr.Separator)
	v := root.Elem()
	for i, seg := range segs {
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				if !v.CanSet() {
					return fmt.Errorf("%w: %q", ErrNotSettable, strings.Join(segs[:i], dotarr.Separator))
				}
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		if v.Kind() == reflect.Map && i == len(segs)-1 {
			return setMapEntry(v, seg, value, name)
		}
		next, ok := child(v, seg)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownProperty, strings.Join(segs[:i+1], dotarr.Separator))
		}
		v = next
	}
	if !v.CanSet() {
		return fmt.Errorf("%w: %q", ErrNotSettable, name)
	}

	return assign(v, value, name)
}

// ToMap converts a struct into a dotarr.Map keyed by property names.
// Nested structs become nested Maps, slices become []any, nil pointers
// become nil. Other values are copied as they are.
func ToMap(obj any) (dotarr.Map, error) {
	v, ok := indirect(reflect.ValueOf(obj))
	if !ok || v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %T", ErrNotStruct, obj)
	}

	return structToMap(v), nil
}

// FromMap decodes m into out, a pointer to a struct, matching keys to
// property names and converting scalar types weakly.
func FromMap(m dotarr.Map, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: %T is not a non-nil pointer", ErrNotSettable, out)
	}
	if rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T", ErrNotStruct, out)
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          TagName,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("propaccess: decoder: %w", err)
	}
	if err = dec.Decode(m); err != nil {
		return fmt.Errorf("%w: %v", ErrTypeMismatch, err)
	}

	return nil
}

// resolve walks the dotted name below v.
func resolve(v reflect.Value, name string) (reflect.Value, bool) {
	v, ok := indirect(v)
	if !ok {
		return v, false
	}
	for _, seg := range strings.Split(name, dotarr.Separator) {
		if v, ok = child(v, seg); !ok {
			return v, false
		}
		if v, ok = indirect(v); !ok {
			return v, false
		}
	}

	return v, true
}

// assign stores value in the settable v.
func assign(v reflect.Value, value any, name string) error {
	if value == nil {
		v.Set(reflect.Zero(v.Type()))

		return nil
	}
	src := reflect.ValueOf(value)
	switch {
	case src.Type().AssignableTo(v.Type()):
		v.Set(src)

		return nil
	case isNumber(src.Kind()) && isNumber(v.Kind()) && src.CanConvert(v.Type()):
		v.Set(src.Convert(v.Type()))

		return nil
	}

	target := reflect.New(v.Type())
	if err := mapstructure.WeakDecode(value, target.Interface()); err != nil {
		return fmt.Errorf("%w: cannot store %T in %q (%s): %v", ErrTypeMismatch, value, name, v.Type(), err)
	}
	v.Set(target.Elem())

	return nil
}

// setMapEntry writes the final segment of a path that ends in a map.
func setMapEntry(m reflect.Value, key string, value any, name string) error {
	if m.Type().Key().Kind() != reflect.String {
		return fmt.Errorf("%w: %q has non-string keys", ErrNotSettable, name)
	}
	if m.IsNil() {
		if !m.CanSet() {
			return fmt.Errorf("%w: %q", ErrNotSettable, name)
		}
		m.Set(reflect.MakeMap(m.Type()))
	}
	elem := reflect.New(m.Type().Elem()).Elem()
	if err := assign(elem, value, name); err != nil {
		return err
	}
	m.SetMapIndex(reflect.ValueOf(key).Convert(m.Type().Key()), elem)

	return nil
}

func structToMap(v reflect.Value) dotarr.Map {
	fields := visible(v.Type())
	out := make(dotarr.Map, len(fields))
	for _, f := range fields {
		name, _ := propName(f)
		fv, ok := fieldByIndex(v, f.Index)
		if !ok {
			continue
		}
		out[name] = toNative(fv)
	}

	return out
}

// toNative converts nested structs and slices for ToMap.
func toNative(v reflect.Value) any {
	iv, ok := indirect(v)
	if !ok {
		return nil
	}
	switch iv.Kind() {
	case reflect.Struct:
		return structToMap(iv)
	case reflect.Slice, reflect.Array:
		if iv.Kind() == reflect.Slice && iv.Type().Elem().Kind() == reflect.Uint8 {
			return iv.Interface()
		}
		out := make([]any, iv.Len())
		for i := range out {
			out[i] = toNative(iv.Index(i))
		}

		return out
	default:
		return iv.Interface()
	}
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
