package objects

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/mitchellh/hashstructure/v2"
)

// Polynomial accumulation over the element hashes. The seed doubles as the
// empty-input result: HashCode() == 1.
const (
	hashSeed       = 1
	hashMultiplier = 31
)

// HashCode folds the given values into a single hash code, deterministic
// over both contents and order. Sequences of equal length whose elements are
// pairwise equal (nil matching nil) hash identically. nil elements
// contribute 0.
//
// Warning: HashCode(x) aggregates a one-element sequence and does not equal
// x's own hash.
func HashCode(values ...any) uint64 {
	h := uint64(hashSeed)
	for _, v := range values {
		h = hashMultiplier*h + hashValue(v)
	}
	return h
}

// hashValue hashes a single possibly-nil value. Values hashstructure cannot
// walk (unexported-only structs with no hashable fields, etc.) still need a
// deterministic contribution, so they hash by their rendered form instead.
func hashValue(v any) uint64 {
	if v == nil {
		return 0
	}

	h, err := hashstructure.Hash(v, hashstructure.FormatV2, &hashstructure.HashOptions{
		Hasher: xxhash.New(),
	})
	if err != nil {
		return xxhash.Sum64String(fmt.Sprintf("%v", v))
	}
	return h
}
