package xlbook

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/tiendc/go-deepcopy"
)

// Copy returns a deep copy of wb with a new instance id. Every sheet of the
// copy belongs to the copy. Sheet data is cloned when it implements Cloner.
func (wb *Workbook) Copy() (*Workbook, error) {
	src := wb.d
	dst := &book{
		activeSheet:       src.activeSheet,
		relationships:     src.relationships.clone(),
		rootRelationships: src.rootRelationships.clone(),
		manifest:          src.manifest.clone(),
		formats:           src.formats.clone(),
		properties:        src.properties,
		appProperties:     src.appProperties,
		encoding:          src.encoding,
		guessTypes:        src.guessTypes,
		dataOnly:          src.dataOnly,
		readOnly:          src.readOnly,
	}
	if err := deepcopy.Copy(&dst.styles, src.styles); err != nil {
		return nil, fmt.Errorf("copy styles: %w", err)
	}
	if err := deepcopy.Copy(&dst.strings, src.strings); err != nil {
		return nil, fmt.Errorf("copy shared strings: %w", err)
	}
	if err := deepcopy.Copy(&dst.theme, src.theme); err != nil {
		return nil, fmt.Errorf("copy theme: %w", err)
	}
	if err := deepcopy.Copy(&dst.thumbnail, src.thumbnail); err != nil {
		return nil, fmt.Errorf("copy thumbnail: %w", err)
	}

	out := &Workbook{id: uuid.New(), log: wb.log, d: dst}
	dst.sheets = make([]*Sheet, 0, len(src.sheets))
	for _, s := range src.sheets {
		dst.sheets = append(dst.sheets, s.clone(out.id))
	}
	return out, nil
}

// Swap exchanges the contents of a and b. Sheets move with the contents and
// are re-parented to their new workbook.
func Swap(a, b *Workbook) {
	a.d, b.d = b.d, a.d
	a.reparent()
	b.reparent()
}

func (wb *Workbook) reparent() {
	for _, s := range wb.d.sheets {
		s.parent = wb.id
	}
}
