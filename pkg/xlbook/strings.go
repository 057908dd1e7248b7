package xlbook

import "github.com/ukaji3/xlbook-go/pkg/xlbook/models"

const sharedStringsTarget = "sharedStrings.xml"

// stringPool is the append-only shared string table.
type stringPool []models.Text

func (p stringPool) indexOf(t models.Text) int {
	for i := range p {
		if p[i].Equal(t) {
			return i
		}
	}
	return -1
}

// AddSharedString adds text to the shared string table and returns its index.
// Unless allowDuplicates is set, an equal entry is reused. The first entry
// also creates the shared strings relationship and manifest override, as does
// the first entry after Clear.
func (wb *Workbook) AddSharedString(text models.Text, allowDuplicates bool) int {
	if !wb.d.relationships.hasType(models.RelationshipSharedStrings) {
		r := wb.CreateRelationship(wb.NextRelationshipID(), sharedStringsTarget, models.RelationshipSharedStrings)
		wb.d.manifest.AddOverrideType(partName(sharedStringsTarget), models.ContentTypeSharedStrings)
		wb.log.Debug().Str("id", r.ID).Msg("shared strings part created")
	}

	if !allowDuplicates {
		if i := wb.d.strings.indexOf(text); i >= 0 {
			return i
		}
	}
	wb.d.strings = append(wb.d.strings, text)
	return len(wb.d.strings) - 1
}

// SharedString returns the entry at index i.
func (wb *Workbook) SharedString(i int) (models.Text, bool) {
	if i < 0 || i >= len(wb.d.strings) {
		return models.Text{}, false
	}
	return wb.d.strings[i], true
}

// SharedStrings returns the table in insertion order.
func (wb *Workbook) SharedStrings() []models.Text {
	return append([]models.Text(nil), wb.d.strings...)
}
