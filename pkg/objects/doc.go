// Package objects provides null-safe helpers for the object fundamentals:
// equality, hash codes, and string rendering.
//
// Every function here is total over its inputs unless its documentation says
// otherwise; nil is a value, not an error. The exceptions are the
// precondition panics on ToStringHelper, Stringer.Add, and FirstNonNull,
// which reject absent required arguments at the call site (see pkg/check).
//
// # Equality
//
// Equal compares two possibly-nil values:
//
//	objects.Equal(nil, nil)   // true
//	objects.Equal("a", nil)   // false
//	objects.Equal(p, p)       // true, without calling p.Equal
//	objects.Equal(a, b)       // a.Equal(b) when a implements Equaler,
//	                          // reflect.DeepEqual otherwise
//
// # Hash codes
//
// HashCode folds any number of possibly-nil values into a single uint64,
// sensitive to both content and order:
//
//	func (p *Point) HashCode() uint64 {
//		return objects.HashCode(p.X, p.Y, p.Label)
//	}
//
// # String rendering
//
// ToStringHelper builds "TypeName{name=value, ...}" strings for String
// implementations:
//
//	func (p *Point) String() string {
//		return objects.ToStringHelper(p).
//			Add("x", p.X).
//			Add("y", p.Y).
//			Format()
//	}
//
//	// Point{x=1, y=2}
//
// # Coalescing
//
// FirstNonNull returns the first of two values that is present, and its
// typed sibling Coalesce does the same for pointers without boxing:
//
//	timeout := objects.Coalesce(cfg.Timeout, &defaultTimeout)
package objects
