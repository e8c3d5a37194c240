package compare

// Ptr reports whether two pointers are equal: both nil, or both non-nil
// with equal pointed-to values.
//
// Example:
//
//	func (p *Point) Equal(other *Point) bool {
//	    return compare.Ptr(p.X, other.X) && compare.Ptr(p.Y, other.Y)
//	}
func Ptr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// PtrFunc reports whether two pointers are equal under eq: both nil, or
// both non-nil and eq returns true. The pointers are passed to eq as-is, so
// an identity check inside eq still sees the original operands.
//
// Example:
//
//	func (s *Shape) Equal(other *Shape) bool {
//	    return compare.PtrFunc(s.Origin, other.Origin, func(a, b *Point) bool {
//	        return a.Equal(b)
//	    })
//	}
func PtrFunc[T any](a, b *T, eq func(*T, *T) bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return eq(a, b)
}

// Slices reports whether two slices are equal element-wise under eq: same
// length and every pair of corresponding elements equal. Order matters; two
// nil slices are equal, as are a nil and an empty slice.
//
// Example:
//
//	func (p *Path) Equal(other *Path) bool {
//	    return compare.Slices(p.Points, other.Points, func(a, b Point) bool {
//	        return a.Equal(&b)
//	    })
//	}
func Slices[T any](a, b []T, eq func(T, T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}
