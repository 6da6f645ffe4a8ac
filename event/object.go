package event

import (
	"math"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/sirupsen/logrus"
)

// isObject reports whether v is a data object: a map keyed by strings, a
// struct, or a non-nil pointer to a struct. A nil map is still an object,
// just one without fields.
func isObject(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		return rv.Type().Key().Kind() == reflect.String
	case reflect.Struct:
		return true
	case reflect.Ptr:
		return !rv.IsNil() && rv.Elem().Kind() == reflect.Struct
	}
	return false
}

// objectFields flattens a data object into its own fields and reports
// whether they came from a struct. Structs go through mapstructure, so
// `mapstructure` tags rename fields and unexported fields are skipped.
func objectFields(v any) (fields map[string]any, fromStruct, ok bool) {
	if !isObject(v) {
		return nil, false, false
	}
	if m, ok := v.(map[string]any); ok {
		return m, false, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Map {
		fields = make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			fields[iter.Key().String()] = iter.Value().Interface()
		}
		return fields, false, true
	}

	if err := mapstructure.Decode(v, &fields); err != nil {
		logrus.WithField("method", "objectFields").Debugf("flatten %T: %v", v, err)
		return nil, false, false
	}
	return fields, true, true
}

// truthy follows the usual script truthiness: nil, false, numeric zero, NaN
// and "" are falsy, as are nil pointers, slices, maps, funcs and channels.
func truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.String:
		return rv.Len() != 0
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return !rv.IsNil()
	}
	return true
}

// asString accepts any value whose underlying kind is string, so named
// string types such as webidl.DOMString resolve as event types too.
func asString(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
