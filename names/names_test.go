package names

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTable_InternDeduplicates(t *testing.T) {
	tbl := NewTable()
	a := tbl.Intern("Main Street")
	b := tbl.Intern("Main Street")
	c := tbl.Intern("Oak Avenue")

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
}

func TestTable_EmptyStringIsZero(t *testing.T) {
	tbl := NewTable()
	require.Equal(t, uint32(0), uint32(tbl.Intern("")))
}

func TestTable_LookupRoundTrips(t *testing.T) {
	tbl := NewTable()
	id := tbl.Intern("Elm Street")
	s, ok := tbl.Lookup(id)
	require.True(t, ok)
	require.Equal(t, "Elm Street", s)

	_, ok = tbl.Lookup(id + 100)
	require.False(t, ok)
}

func TestTable_AllPreservesOrder(t *testing.T) {
	tbl := NewTable()
	tbl.Intern("A")
	tbl.Intern("B")
	all := tbl.All()
	require.Equal(t, []string{"", "A", "B"}, all)
}
