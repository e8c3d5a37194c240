package objects

import (
	"reflect"

	"github.com/pseudomuto/objectkit/pkg/check"
)

// Equaler is implemented by types that define their own equality. Equal
// defers to it when the left operand provides it.
type Equaler interface {
	Equal(other any) bool
}

// Equal reports whether two possibly-nil values are equal. It returns true
// when both are nil (typed nils included, per check.IsNil), false when
// exactly one is, and otherwise compares the values: operands that are the
// same instance short-circuit to true without invoking any equality
// definition, a left operand implementing Equaler is asked directly, and
// everything else falls back to reflect.DeepEqual.
//
// The short-circuit matters for types whose Equal is expensive or recursive.
func Equal(a, b any) bool {
	aNil, bNil := check.IsNil(a), check.IsNil(b)
	if aNil || bNil {
		return aNil && bNil
	}
	if sameInstance(a, b) {
		return true
	}
	if eq, ok := a.(Equaler); ok {
		return eq.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}

// sameInstance reports whether a and b wrap the same pointer. Non-pointer
// operands never share an instance.
func sameInstance(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() != reflect.Pointer || vb.Kind() != reflect.Pointer {
		return false
	}
	return va.Pointer() == vb.Pointer()
}

// FirstNonNull returns first when it is non-nil, otherwise second. Panics
// with check.ErrNilArgument when both are nil.
func FirstNonNull(first, second any) any {
	if !check.IsNil(first) {
		return first
	}
	return check.NotNil(second, "both arguments to FirstNonNull are nil")
}

// Coalesce is FirstNonNull for pointers of a known type. Panics with
// check.ErrNilArgument when both are nil.
func Coalesce[T any](first, second *T) *T {
	if first != nil {
		return first
	}
	check.NotNil(second, "both arguments to Coalesce are nil")
	return second
}
