package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/xlbook-go/pkg/xlbook"
	"github.com/ukaji3/xlbook-go/pkg/xlbook/models"
)

func TestSummarize(t *testing.T) {
	wb := xlbook.New()
	data, err := wb.CreateSheet("Data")
	require.NoError(t, err)
	require.NoError(t, wb.CreateNamedRange("Totals", data, "$A$1:$B$2"))
	date := models.DefaultFormat()
	date.NumberFormat = models.CustomNumberFormat("yyyy-mm-dd")
	wb.AddFormat(date)
	wb.AddSharedString(models.PlainText("hello"), false)

	s := Summarize(wb)

	require.Len(t, s.Sheets, 2)
	assert.Equal(t, "Data", s.Sheets[1].Title)
	assert.Equal(t, []NamedRangeSummary{{Name: "Totals", Reference: "A1:B2"}}, s.Sheets[1].NamedRanges)

	require.Len(t, s.Formats, 2)
	assert.Equal(t, "General", s.Formats[0].FormatString)
	assert.False(t, s.Formats[0].IsDate)
	assert.Equal(t, 164, s.Formats[1].NumFmtID)
	assert.True(t, s.Formats[1].IsDate)

	assert.Equal(t, "Normal", s.Styles[0].Name)
	assert.Equal(t, []string{"hello"}, s.SharedStrings)
	assert.Len(t, s.RootRelationships, 3)
	assert.Equal(t, "UTF-8", s.Encoding)
}

func TestToJSON(t *testing.T) {
	s := Summarize(xlbook.New())

	compact, err := ToJSON(s, false)
	require.NoError(t, err)
	assert.NotContains(t, string(compact), "\n")

	pretty, err := ToJSON(s, true)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(pretty), "\n  \"sheets\""))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(compact, &decoded))
	rels := decoded["relationships"].([]any)
	first := rels[0].(map[string]any)
	assert.Equal(t, "worksheet", first["type"], "relationship types are written by name")
}
