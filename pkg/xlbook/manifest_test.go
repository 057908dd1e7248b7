package xlbook

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ukaji3/xlbook-go/pkg/xlbook/models"
)

func TestManifestUpsert(t *testing.T) {
	m := newManifest()

	m.AddDefaultType("xml", "a")
	m.AddDefaultType("rels", "b")
	m.AddDefaultType("xml", "c")
	assert.Equal(t, []models.DefaultType{
		{Extension: "xml", ContentType: "c"},
		{Extension: "rels", ContentType: "b"},
	}, m.Defaults())

	m.AddOverrideType("/xl/workbook.xml", "x")
	m.AddOverrideType("/xl/styles.xml", "y")
	m.AddOverrideType("/xl/workbook.xml", "z")
	assert.Equal(t, []models.OverrideType{
		{PartName: "/xl/workbook.xml", ContentType: "z"},
		{PartName: "/xl/styles.xml", ContentType: "y"},
	}, m.Overrides())

	ct, ok := m.DefaultType("rels")
	assert.True(t, ok)
	assert.Equal(t, "b", ct)
	assert.True(t, m.HasDefault("xml"))
	assert.False(t, m.HasDefault("png"))
}

func TestManifestRemoveOverride(t *testing.T) {
	m := newManifest()
	m.AddOverrideType("/a", "1")
	m.AddOverrideType("/b", "2")
	m.AddOverrideType("/c", "3")

	assert.True(t, m.RemoveOverrideType("/b"))
	assert.False(t, m.RemoveOverrideType("/b"))
	assert.Equal(t, []models.OverrideType{
		{PartName: "/a", ContentType: "1"},
		{PartName: "/c", ContentType: "3"},
	}, m.Overrides())
}

func TestManifestEnumerationIsACopy(t *testing.T) {
	m := newManifest()
	m.AddOverrideType("/a", "1")

	overrides := m.Overrides()
	overrides[0].ContentType = "changed"

	ct, _ := m.OverrideType("/a")
	assert.Equal(t, "1", ct)
}
