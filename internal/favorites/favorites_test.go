package favorites

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToggleAddsAndRemoves(t *testing.T) {
	var s Set
	require.Equal(t, 0, s.Len())

	s1 := s.Toggle(1)
	require.True(t, s1.Contains(1))
	require.False(t, s.Contains(1), "receiver must not change")

	s2 := s1.Toggle(1)
	require.False(t, s2.Contains(1))
	require.True(t, s1.Contains(1), "receiver must not change")
}

func TestToggleIsSelfInverse(t *testing.T) {
	sets := []Set{{}, New(), New(1), New(1, 2, 3), New(42)}
	for _, s := range sets {
		for _, id := range []int{1, 2, 42, 999, -1} {
			back := Toggle(Toggle(s, id), id)
			require.True(t, back.Equal(s), "toggle twice of %d changed %v into %v", id, s.IDs(), back.IDs())
		}
	}
}

func TestToggleAcceptsUnknownIDs(t *testing.T) {
	s := New().Toggle(123456)
	require.Equal(t, []int{123456}, s.IDs())
}

func TestIDsSorted(t *testing.T) {
	require.Equal(t, []int{1, 2, 5}, New(5, 1, 2).IDs())
	require.Empty(t, Set{}.IDs())
}

func TestEqual(t *testing.T) {
	require.True(t, New(1, 2).Equal(New(2, 1)))
	require.True(t, Set{}.Equal(New()))
	require.False(t, New(1).Equal(New(2)))
	require.False(t, New(1).Equal(New(1, 2)))
}
