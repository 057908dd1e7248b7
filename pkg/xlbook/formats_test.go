package xlbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/xlbook-go/pkg/xlbook/models"
)

func customFormat(code string) models.Format {
	f := models.DefaultFormat()
	f.NumberFormat = models.CustomNumberFormat(code)
	return f
}

func TestAddFormatIdempotent(t *testing.T) {
	wb := New()
	size := len(wb.Formats())

	f := models.DefaultFormat()
	f.Font.Bold = true
	first := wb.AddFormat(f)
	second := wb.AddFormat(f)

	assert.Equal(t, first, second)
	assert.Len(t, wb.Formats(), size+1)

	assert.Equal(t, 0, wb.AddFormat(models.DefaultFormat()), "the default format is already pooled")
}

func TestAddFormatSharesCustomIDs(t *testing.T) {
	wb := New()

	plain := customFormat("0.000")
	bold := customFormat("0.000")
	bold.Font.Bold = true

	i := wb.AddFormat(plain)
	j := wb.AddFormat(bold)
	require.NotEqual(t, i, j)

	fi, err := wb.Format(i)
	require.NoError(t, err)
	fj, err := wb.Format(j)
	require.NoError(t, err)
	assert.True(t, fi.NumberFormat.HasID)
	assert.Equal(t, fi.NumberFormat.ID, fj.NumberFormat.ID)
	assert.Equal(t, models.FirstCustomNumberFormatID, fi.NumberFormat.ID)
}

func TestNextCustomFormatID(t *testing.T) {
	wb := New()
	assert.Equal(t, 164, wb.NextCustomFormatID())

	codes := []string{"0.000", "0.000", "yyyy-mm-dd", "#,##0.0", "yyyy-mm-dd"}
	expected := []int{165, 165, 166, 167, 167}
	for k, code := range codes {
		wb.AddFormat(customFormat(code))
		assert.Equal(t, expected[k], wb.NextCustomFormatID(), code)
	}

	builtin, ok := models.BuiltinNumberFormat(10)
	require.True(t, ok)
	f := models.DefaultFormat()
	f.NumberFormat = builtin
	wb.AddFormat(f)
	assert.Equal(t, 167, wb.NextCustomFormatID(), "formats with an id do not consume custom ids")
}

func TestFormatOutOfRange(t *testing.T) {
	wb := New()

	_, err := wb.Format(1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = wb.Format(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestClearFormats(t *testing.T) {
	wb := New()
	wb.AddFormat(customFormat("0.0"))

	wb.ClearFormats()
	assert.Empty(t, wb.Formats())
	assert.Equal(t, 0, wb.AddFormat(models.DefaultFormat()))
	assert.Equal(t, 165, wb.NextCustomFormatID())
}

func TestStyles(t *testing.T) {
	wb := New()

	first := wb.CreateStyle("Highlight")
	first.FormatIndex = 1
	second := wb.CreateStyle("Highlight")
	second.FormatIndex = 2
	assert.Len(t, wb.Styles(), 3)

	got, err := wb.Style("Highlight")
	require.NoError(t, err)
	assert.Same(t, first, got, "first match wins")
	assert.Equal(t, -1, got.BuiltinID)
	assert.True(t, wb.HasStyle("Normal"))

	_, err = wb.Style("Missing")
	assert.ErrorIs(t, err, ErrNotFound)

	wb.ClearStyles()
	assert.Empty(t, wb.Styles())
	assert.False(t, wb.HasStyle("Normal"))
}

func TestAddFormatExplicitCustomID(t *testing.T) {
	wb := New()

	explicit := models.DefaultFormat()
	explicit.NumberFormat = models.NumberFormat{ID: 170, HasID: true, FormatString: "0.000"}
	wb.AddFormat(explicit)
	assert.Equal(t, 171, wb.NextCustomFormatID())

	i := wb.AddFormat(customFormat("yyyy-mm-dd"))
	f, err := wb.Format(i)
	require.NoError(t, err)
	assert.Equal(t, 171, f.NumberFormat.ID)

	builtin := models.DefaultFormat()
	builtin.NumberFormat, _ = models.BuiltinNumberFormat(14)
	wb.AddFormat(builtin)
	assert.Equal(t, 172, wb.NextCustomFormatID(), "built-in ids do not move the counter")

	ids := map[int]string{}
	for _, f := range wb.Formats() {
		nf := f.NumberFormat
		if prev, ok := ids[nf.ID]; ok {
			assert.Equal(t, prev, nf.FormatString, "id %d shared by two codes", nf.ID)
		}
		ids[nf.ID] = nf.FormatString
	}
}
