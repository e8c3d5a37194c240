// Package compare provides typed, nil-safe equality helpers.
//
// These are the reflection-free companions to objects.Equal: when the types
// are known statically, they compare without boxing values into interfaces.
//
// Compare pointer fields:
//
//	func (p *Point) Equal(other *Point) bool {
//	    return compare.Ptr(p.X, other.X) && compare.Ptr(p.Y, other.Y)
//	}
//
// Compare with a custom equality definition:
//
//	compare.PtrFunc(a.Origin, b.Origin, func(x, y *Point) bool {
//	    return x.Equal(y)
//	})
//
// Compare slices element-wise:
//
//	compare.Slices(a.Points, b.Points, func(x, y Point) bool {
//	    return x.Equal(&y)
//	})
package compare
