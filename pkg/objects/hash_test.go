package objects_test

import (
	"testing"

	. "github.com/pseudomuto/objectkit/pkg/objects"
	"github.com/stretchr/testify/require"
)

func TestHashCodeEmpty(t *testing.T) {
	// The polynomial seed: empty input always hashes to 1.
	require.Equal(t, uint64(1), HashCode())
}

func TestHashCodeDeterministic(t *testing.T) {
	type point struct{ X, Y int }

	tests := []struct {
		name   string
		values []any
	}{
		{name: "primitives", values: []any{"a", 1, true}},
		{name: "with nils", values: []any{nil, "x", nil}},
		{name: "structs", values: []any{point{1, 2}, point{3, 4}}},
		{name: "slices", values: []any{[]string{"a", "b"}, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, HashCode(tt.values...), HashCode(tt.values...))
		})
	}
}

func TestHashCodePairwiseEqualSequences(t *testing.T) {
	type point struct{ X, Y int }

	// Distinct instances with equal contents must agree.
	require.Equal(t,
		HashCode(point{1, 2}, []int{3, 4}, "five"),
		HashCode(point{1, 2}, []int{3, 4}, "five"),
	)
}

func TestHashCodeOrderSensitive(t *testing.T) {
	require.NotEqual(t, HashCode("a", "b"), HashCode("b", "a"))
	require.NotEqual(t, HashCode(1, 2, 3), HashCode(3, 2, 1))
}

func TestHashCodeContentSensitive(t *testing.T) {
	require.NotEqual(t, HashCode("a"), HashCode("b"))
	require.NotEqual(t, HashCode("a"), HashCode("a", "a"))
	require.NotEqual(t, HashCode(nil), HashCode())
	require.NotEqual(t, HashCode("a", nil), HashCode("a"))
}

func TestHashCodeNilPositions(t *testing.T) {
	require.Equal(t, HashCode(nil, "x"), HashCode(nil, "x"))
	require.NotEqual(t, HashCode(nil, "x"), HashCode("x", nil))
}

func TestHashCodeUnwalkableValue(t *testing.T) {
	// Channels defeat structural hashing; the rendered-value fallback still
	// has to be deterministic per instance.
	ch := make(chan int)
	require.Equal(t, HashCode(ch), HashCode(ch))
}
