package xlbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/xlbook-go/pkg/xlbook/models"
)

func countSharedStringsParts(wb *Workbook) (rels, overrides int) {
	for _, r := range wb.Relationships() {
		if r.Type == models.RelationshipSharedStrings {
			rels++
		}
	}
	for _, o := range wb.Manifest().Overrides() {
		if o.PartName == "/xl/sharedStrings.xml" {
			overrides++
		}
	}
	return rels, overrides
}

func TestAddSharedStringDeduplicates(t *testing.T) {
	wb := New()

	i := wb.AddSharedString(models.PlainText("hello"), false)
	j := wb.AddSharedString(models.PlainText("hello"), false)

	assert.Equal(t, i, j)
	assert.Len(t, wb.SharedStrings(), 1)
}

func TestAddSharedStringAllowDuplicates(t *testing.T) {
	wb := New()

	i := wb.AddSharedString(models.PlainText("hello"), true)
	j := wb.AddSharedString(models.PlainText("hello"), true)

	assert.NotEqual(t, i, j)
	assert.Len(t, wb.SharedStrings(), 2)
}

func TestAddSharedStringCreatesPartOnce(t *testing.T) {
	for _, allow := range []bool{false, true} {
		wb := New()
		relCount := len(wb.Relationships())
		overrideCount := len(wb.Manifest().Overrides())

		wb.AddSharedString(models.PlainText("a"), allow)
		rels, overrides := countSharedStringsParts(wb)
		assert.Equal(t, 1, rels)
		assert.Equal(t, 1, overrides)
		assert.Len(t, wb.Relationships(), relCount+1)
		assert.Len(t, wb.Manifest().Overrides(), overrideCount+1)

		wb.AddSharedString(models.PlainText("b"), allow)
		rels, overrides = countSharedStringsParts(wb)
		assert.Equal(t, 1, rels)
		assert.Equal(t, 1, overrides)

		r, err := wb.Relationship("rId4")
		require.NoError(t, err)
		assert.Equal(t, "sharedStrings.xml", r.Target)
	}
}

func TestAddSharedStringRichText(t *testing.T) {
	wb := New()
	rich := models.Text{Runs: []models.TextRun{{Text: "hello", Properties: &models.RunProperties{Bold: true}}}}

	i := wb.AddSharedString(models.PlainText("hello"), false)
	j := wb.AddSharedString(rich, false)
	assert.NotEqual(t, i, j, "formatting is part of equality")

	got, ok := wb.SharedString(j)
	require.True(t, ok)
	assert.True(t, got.Equal(rich))

	_, ok = wb.SharedString(5)
	assert.False(t, ok)
}

func TestAddSharedStringAfterClear(t *testing.T) {
	wb := New()
	wb.AddSharedString(models.PlainText("a"), false)
	require.NoError(t, wb.Clear())

	rels, _ := countSharedStringsParts(wb)
	require.Equal(t, 0, rels)

	i := wb.AddSharedString(models.PlainText("b"), false)
	assert.Equal(t, 1, i)
	assert.Len(t, wb.SharedStrings(), 2)

	rels, overrides := countSharedStringsParts(wb)
	assert.Equal(t, 1, rels, "the shared strings relationship is restored")
	assert.Equal(t, 1, overrides)

	wb.AddSharedString(models.PlainText("c"), false)
	rels, overrides = countSharedStringsParts(wb)
	assert.Equal(t, 1, rels)
	assert.Equal(t, 1, overrides)
}
