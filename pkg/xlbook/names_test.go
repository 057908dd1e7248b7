package xlbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNamedRange(t *testing.T) {
	wb := New()
	sheet := wb.Sheets()[0]

	require.NoError(t, wb.CreateNamedRange("Totals", sheet, "$A$1:$B$4"))

	nr, err := wb.NamedRange("Totals")
	require.NoError(t, err)
	assert.Same(t, sheet, nr.Sheet)
	assert.Equal(t, "A1:B4", nr.Reference.String())
	assert.True(t, wb.HasNamedRange("Totals"))

	require.NoError(t, wb.CreateNamedRange("Totals", sheet, "C1"), "redefining replaces")
	nr, err = wb.NamedRange("Totals")
	require.NoError(t, err)
	assert.Equal(t, "C1", nr.Reference.String())
	assert.Len(t, wb.NamedRanges(), 1)
}

func TestCreateNamedRangeErrors(t *testing.T) {
	wb := New()

	err := wb.CreateNamedRange("Totals", New().Sheets()[0], "A1")
	assert.ErrorIs(t, err, ErrNotOwned)

	err = wb.CreateNamedRange("Totals", wb.Sheets()[0], "not a range")
	assert.ErrorIs(t, err, ErrInvalidReference)
	assert.False(t, wb.HasNamedRange("Totals"))
}

func TestNamedRangeFirstMatch(t *testing.T) {
	wb := New()
	first := wb.Sheets()[0]
	second, err := wb.CreateSheet("Second")
	require.NoError(t, err)

	require.NoError(t, wb.CreateNamedRange("Shared", second, "B2"))
	require.NoError(t, wb.CreateNamedRange("Shared", first, "A1"))
	require.NoError(t, wb.CreateNamedRange("Only", second, "C3"))

	nr, err := wb.NamedRange("Shared")
	require.NoError(t, err)
	assert.Same(t, first, nr.Sheet)

	all := wb.NamedRanges()
	require.Len(t, all, 3)
	assert.Equal(t, []string{"Shared", "Shared", "Only"}, []string{all[0].Name, all[1].Name, all[2].Name})
	assert.Same(t, first, all[0].Sheet)

	require.NoError(t, wb.RemoveNamedRange("Shared"))
	nr, err = wb.NamedRange("Shared")
	require.NoError(t, err)
	assert.Same(t, second, nr.Sheet, "removal drops only the first match")

	require.NoError(t, wb.RemoveNamedRange("Shared"))
	assert.ErrorIs(t, wb.RemoveNamedRange("Shared"), ErrNotFound)
	_, err = wb.NamedRange("Shared")
	assert.ErrorIs(t, err, ErrNotFound)
}
