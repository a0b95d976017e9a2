package sectionindex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlot(t *testing.T) {
	v, ok := Real(42).Value()
	require.True(t, ok)
	require.Equal(t, 42, v)
	require.False(t, Real(42).IsReserved())
	require.Equal(t, "42", Real(42).String())

	v, ok = Reserved[int]().Value()
	require.False(t, ok)
	require.Zero(t, v)
	require.True(t, Reserved[int]().IsReserved())
	require.Equal(t, "<reserved>", Reserved[int]().String())

	// A zero-valued element is still real.
	s, ok := Real("").Value()
	require.True(t, ok)
	require.Empty(t, s)
}

func TestParseOrder(t *testing.T) {
	for in, want := range map[string]Order{
		"":           Ascending,
		"asc":        Ascending,
		"Ascending":  Ascending,
		" desc ":     Descending,
		"DESCENDING": Descending,
	} {
		got, err := ParseOrder(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseOrder("sideways")
	require.Error(t, err)
	require.Equal(t, "desc", Descending.String())
	require.Negative(t, Descending.Compare("B", "A"))
	require.Positive(t, Ascending.Compare("B", "A"))
}

func TestErrorMessages(t *testing.T) {
	require.Equal(t, "sectionindex: section 4 out of range [0,3)", sectionOutOfRange(4, 3).Error())
	require.Equal(t, "sectionindex: row 2 of section 1 out of range [0,2)", rowOutOfRange(At(1, 2), 2).Error())
	require.Equal(t, "sectionindex: element 0 has an empty key", (&EmptyKeyError{}).Error())
}
