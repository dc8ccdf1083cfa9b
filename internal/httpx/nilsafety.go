package httpx

import (
	"errors"
	"reflect"
)

// ErrIsNil indicates that [NilSafetyErrorIfNil] was passed a nil value.
var ErrIsNil = errors.New("nil map, pointer, or slice")

// NilSafetyErrorIfNil returns [ErrIsNil] iff input is a nil map, struct, or slice.
//
// This mechanism protects us from attempting to process a literal
// JSON "null" returned by a server.
func NilSafetyErrorIfNil[Type any](value Type) (Type, error) {
	switch rv := reflect.ValueOf(value); rv.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Slice:
		if rv.IsNil() {
			var zero Type
			return zero, ErrIsNil
		}
	}
	return value, nil
}
