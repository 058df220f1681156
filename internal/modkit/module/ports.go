package module

import (
	"fmt"
	"reflect"
)

// PortsOf finds T in a module's Ports bundle. The bundle matches when it is
// a T itself or when one of its exported fields holds a T; pointers to the
// bundle are followed.
func PortsOf[T any](m Module) (T, bool) {
	var zero T
	bundle := m.Ports()
	if t, ok := bundle.(T); ok {
		return t, true
	}

	rv := reflect.ValueOf(bundle)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return zero, false
	}
	for i := range rv.NumField() {
		if !rv.Type().Field(i).IsExported() {
			continue
		}
		if t, ok := rv.Field(i).Interface().(T); ok {
			return t, true
		}
	}
	return zero, false
}

// MustPortsOf is PortsOf for wiring code, where a missing port is a programming error
func MustPortsOf[T any](m Module) T {
	t, ok := PortsOf[T](m)
	if !ok {
		panic(fmt.Sprintf("module %s exposes no %s port", m.Name(), reflect.TypeFor[T]()))
	}
	return t
}
