package check

import (
	"reflect"

	"github.com/pkg/errors"
)

var (
	// ErrNilArgument indicates a required value was nil.
	ErrNilArgument = errors.New("nil argument")

	// ErrInvalidArgument indicates a value that violates a precondition.
	ErrInvalidArgument = errors.New("invalid argument")
)

// NotNil returns v unchanged, panicking with a wrapped ErrNilArgument when v
// is nil. A typed nil (nil pointer, map, slice, channel, or function boxed in
// an interface) counts as nil. The msg names the offending parameter in the
// panic value.
func NotNil(v any, msg string) any {
	if IsNil(v) {
		panic(errors.Wrap(ErrNilArgument, msg))
	}
	return v
}

// NotEmpty returns s unchanged, panicking with a wrapped ErrInvalidArgument
// when s is empty. The msg names the offending parameter in the panic value.
func NotEmpty(s, msg string) string {
	Argument(s != "", "%s is empty", msg)
	return s
}

// Argument panics with a wrapped ErrInvalidArgument when cond is false.
func Argument(cond bool, format string, args ...any) {
	if !cond {
		panic(errors.Wrapf(ErrInvalidArgument, format, args...))
	}
}

// IsNil reports whether v is nil, looking through the interface to catch
// typed nils.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
