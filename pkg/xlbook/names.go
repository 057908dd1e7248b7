package xlbook

import "github.com/ukaji3/xlbook-go/pkg/xlbook/models"

// NamedRange is a named range together with the sheet that defines it.
type NamedRange struct {
	Name      string
	Sheet     *Sheet
	Reference models.RangeReference
}

// CreateNamedRange defines name on owner, which must belong to this workbook.
// An existing name on owner is replaced.
func (wb *Workbook) CreateNamedRange(name string, owner *Sheet, ref string) error {
	if wb.indexOf(owner) < 0 {
		return opError("create named range", name, ErrNotOwned)
	}
	return owner.CreateNamedRange(name, ref)
}

// NamedRange returns name from the first sheet, in sheet order, defining it.
func (wb *Workbook) NamedRange(name string) (NamedRange, error) {
	for _, s := range wb.d.sheets {
		if nr, ok := s.NamedRange(name); ok {
			return NamedRange{Name: nr.Name, Sheet: s, Reference: nr.Reference}, nil
		}
	}
	return NamedRange{}, opError("get named range", name, ErrNotFound)
}

// HasNamedRange reports whether any sheet defines name.
func (wb *Workbook) HasNamedRange(name string) bool {
	_, err := wb.NamedRange(name)
	return err == nil
}

// RemoveNamedRange removes name from the first sheet defining it.
func (wb *Workbook) RemoveNamedRange(name string) error {
	for _, s := range wb.d.sheets {
		if s.RemoveNamedRange(name) {
			return nil
		}
	}
	return opError("remove named range", name, ErrNotFound)
}

// NamedRanges lists every sheet's named ranges, in sheet order and then in
// definition order. Names are not unique across sheets.
func (wb *Workbook) NamedRanges() []NamedRange {
	var out []NamedRange
	for _, s := range wb.d.sheets {
		for _, nr := range s.names {
			out = append(out, NamedRange{Name: nr.Name, Sheet: s, Reference: nr.Reference})
		}
	}
	return out
}
