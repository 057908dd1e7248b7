package xlbook

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/xlbook-go/pkg/xlbook/models"
)

func TestNewDefaults(t *testing.T) {
	wb := New()

	assert.Equal(t, []string{"Sheet"}, wb.SheetNames())
	assert.Equal(t, []models.Relationship{
		{ID: "rId1", Target: "worksheets/sheet1.xml", Type: models.RelationshipWorksheet},
		{ID: "rId2", Target: "styles.xml", Type: models.RelationshipStyles},
		{ID: "rId3", Target: "theme/theme1.xml", Type: models.RelationshipTheme},
	}, wb.Relationships())

	assert.Equal(t, []models.DefaultType{
		{Extension: "rels", ContentType: models.ContentTypeRelationships},
		{Extension: "xml", ContentType: models.ContentTypeXML},
	}, wb.Manifest().Defaults())
	for _, part := range []string{
		"/xl/workbook.xml",
		"/xl/theme/theme1.xml",
		"/xl/styles.xml",
		"/docProps/core.xml",
		"/docProps/app.xml",
		"/xl/worksheets/sheet1.xml",
	} {
		assert.True(t, wb.Manifest().HasOverride(part), part)
	}

	normal, err := wb.Style("Normal")
	require.NoError(t, err)
	assert.Equal(t, 0, normal.BuiltinID)

	require.Len(t, wb.Formats(), 1)
	assert.Equal(t, models.DefaultFormat(), wb.Formats()[0])
	assert.Equal(t, models.FirstCustomNumberFormatID, wb.NextCustomFormatID())

	assert.Equal(t, DefaultEncoding, wb.Encoding())
	assert.Equal(t, "Microsoft Excel", wb.AppProperties().Application)
	assert.Empty(t, wb.SharedStrings())
	assert.False(t, wb.ReadOnly())
	assert.Equal(t, wb.Sheets()[0], wb.ActiveSheet())
}

func TestNewWithOptions(t *testing.T) {
	wb, err := NewWithOptions(Options{Encoding: "iso-8859-1", GuessTypes: true, DataOnly: true, ReadOnly: true})
	require.NoError(t, err)

	assert.Equal(t, "ISO-8859-1", wb.Encoding())
	assert.True(t, wb.GuessTypes())
	assert.True(t, wb.DataOnly())
	assert.True(t, wb.ReadOnly())
	assert.Equal(t, []string{"Sheet"}, wb.SheetNames(), "defaults are built before the read-only flag applies")

	_, err = NewWithOptions(Options{Encoding: "no-such-encoding"})
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestWorkbookLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	wb, err := NewWithOptions(Options{Logger: &logger})
	require.NoError(t, err)
	_, err = wb.CreateSheet("Sheet")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "sheet created")
	assert.Contains(t, buf.String(), "sheet title taken, renamed")
}

func TestFlags(t *testing.T) {
	wb := New()

	wb.SetGuessTypes(true)
	wb.SetDataOnly(true)
	wb.SetReadOnly(true)
	assert.True(t, wb.GuessTypes())
	assert.True(t, wb.DataOnly())
	assert.True(t, wb.ReadOnly())

	wb.SetReadOnly(false)
	assert.False(t, wb.ReadOnly())
}

func TestEncoding(t *testing.T) {
	wb := New()

	require.NoError(t, wb.SetEncoding("windows-1252"))
	assert.Equal(t, "windows-1252", wb.Encoding())

	s, err := wb.DecodeString([]byte{'c', 'a', 'f', 0xe9, ' ', 0x80})
	require.NoError(t, err)
	assert.Equal(t, "café €", s)

	require.NoError(t, wb.SetEncoding("latin1"))
	assert.Equal(t, "ISO-8859-1", wb.Encoding(), "aliases resolve to the preferred MIME name")
	require.NoError(t, wb.SetEncoding("WINDOWS-1252"))
	assert.Equal(t, "windows-1252", wb.Encoding())

	err = wb.SetEncoding("klingon")
	assert.ErrorIs(t, err, ErrInvalidEncoding)
	assert.Equal(t, "windows-1252", wb.Encoding(), "failed SetEncoding keeps the old value")
}

func TestPropertiesAndParts(t *testing.T) {
	wb := New()

	props := wb.Properties()
	props.Title = "Budget"
	props.Creator = "finance"
	wb.SetProperties(props)
	assert.Equal(t, "Budget", wb.Properties().Title)

	app := wb.AppProperties()
	app.Company = "ACME"
	wb.SetAppProperties(app)
	assert.Equal(t, "ACME", wb.AppProperties().Company)

	assert.False(t, wb.Theme().Loaded())
	wb.SetTheme(models.Theme{Raw: []byte("<a:theme/>")})
	assert.True(t, wb.Theme().Loaded())

	assert.Nil(t, wb.Thumbnail())
	wb.SetThumbnail([]byte{0xff, 0xd8})
	assert.Equal(t, []byte{0xff, 0xd8}, wb.Thumbnail())
}
