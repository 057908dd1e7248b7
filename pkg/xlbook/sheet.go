package xlbook

import (
	"github.com/google/uuid"

	"github.com/ukaji3/xlbook-go/pkg/xlbook/models"
)

// Cloner is implemented by sheet data that must be deep-copied when the
// workbook is copied. Data without it is shared between the copies.
type Cloner interface {
	Clone() any
}

// Sheet is one worksheet of a workbook. It refers to its workbook by instance
// id only; cell storage is an opaque handle owned by the cell layer.
type Sheet struct {
	title  string
	parent uuid.UUID
	names  []models.NamedRange
	data   any
}

func newSheet(parent uuid.UUID, title string) *Sheet {
	return &Sheet{title: title, parent: parent}
}

// Title returns the sheet title. Use Workbook.RenameSheet to change it.
func (s *Sheet) Title() string {
	return s.title
}

// OwnedBy reports whether the sheet currently belongs to wb.
func (s *Sheet) OwnedBy(wb *Workbook) bool {
	return s != nil && wb != nil && s.parent == wb.id
}

// Data returns the cell storage handle.
func (s *Sheet) Data() any {
	return s.data
}

// SetData replaces the cell storage handle.
func (s *Sheet) SetData(data any) {
	s.data = data
}

// CreateNamedRange binds name to ref on this sheet, replacing an existing
// binding of the same name.
func (s *Sheet) CreateNamedRange(name, ref string) error {
	r, err := models.ParseRangeReference(ref)
	if err != nil {
		return opError("create named range", name, ErrInvalidReference)
	}
	s.setNamedRange(models.NamedRange{Name: name, Reference: r})
	return nil
}

func (s *Sheet) setNamedRange(nr models.NamedRange) {
	for i := range s.names {
		if s.names[i].Name == nr.Name {
			s.names[i] = nr
			return
		}
	}
	s.names = append(s.names, nr)
}

// HasNamedRange reports whether name is defined on this sheet.
func (s *Sheet) HasNamedRange(name string) bool {
	_, ok := s.NamedRange(name)
	return ok
}

// NamedRange returns the binding of name on this sheet.
func (s *Sheet) NamedRange(name string) (models.NamedRange, bool) {
	for _, nr := range s.names {
		if nr.Name == name {
			return nr, true
		}
	}
	return models.NamedRange{}, false
}

// RemoveNamedRange drops name from this sheet and reports whether it existed.
func (s *Sheet) RemoveNamedRange(name string) bool {
	for i := range s.names {
		if s.names[i].Name == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			return true
		}
	}
	return false
}

// NamedRanges returns the sheet's named ranges in insertion order.
func (s *Sheet) NamedRanges() []models.NamedRange {
	return append([]models.NamedRange(nil), s.names...)
}

// clone copies the sheet for another workbook.
func (s *Sheet) clone(parent uuid.UUID) *Sheet {
	out := &Sheet{
		title:  s.title,
		parent: parent,
		names:  s.NamedRanges(),
		data:   s.data,
	}
	if c, ok := s.data.(Cloner); ok {
		out.data = c.Clone()
	}
	return out
}
