package xlbook

import (
	"strconv"

	"github.com/ukaji3/xlbook-go/pkg/xlbook/models"
)

// formatPool is an append-only list of formats. Indices are the style
// references cells store, so entries never move.
type formatPool struct {
	entries      []models.Format
	index        map[models.Format]int
	nextCustomID int
}

func newFormatPool() formatPool {
	return formatPool{
		index:        make(map[models.Format]int),
		nextCustomID: models.FirstCustomNumberFormatID,
	}
}

// resolveNumberFormat gives f's number format an id. A format string already
// in the pool keeps the id it has there. An explicit id moves the custom
// counter past it.
func (p *formatPool) resolveNumberFormat(f models.Format) (models.Format, bool) {
	if f.NumberFormat.HasID {
		if f.NumberFormat.ID >= p.nextCustomID {
			p.nextCustomID = f.NumberFormat.ID + 1
		}
		return f, false
	}
	for _, e := range p.entries {
		if e.NumberFormat.FormatString == f.NumberFormat.FormatString {
			f.NumberFormat = e.NumberFormat
			return f, false
		}
	}
	f.NumberFormat.ID = p.nextCustomID
	f.NumberFormat.HasID = true
	p.nextCustomID++
	return f, true
}

func (p *formatPool) add(f models.Format) int {
	if i, ok := p.index[f]; ok {
		return i
	}
	p.entries = append(p.entries, f)
	i := len(p.entries) - 1
	p.index[f] = i
	return i
}

// load appends f without deduplication so pool indices match the package.
func (p *formatPool) load(f models.Format) int {
	p.entries = append(p.entries, f)
	i := len(p.entries) - 1
	if _, ok := p.index[f]; !ok {
		p.index[f] = i
	}
	if f.NumberFormat.HasID && f.NumberFormat.ID >= p.nextCustomID {
		p.nextCustomID = f.NumberFormat.ID + 1
	}
	return i
}

func (p *formatPool) clear() {
	p.entries = nil
	p.index = make(map[models.Format]int)
}

func (p formatPool) clone() formatPool {
	out := formatPool{
		entries:      append([]models.Format(nil), p.entries...),
		index:        make(map[models.Format]int, len(p.index)),
		nextCustomID: p.nextCustomID,
	}
	for k, v := range p.index {
		out.index[k] = v
	}
	return out
}

// AddFormat returns the pool index of format, appending it if no equal entry
// exists. A number format without an id first adopts the id of a pooled entry
// with the same format string, or is assigned the next custom id.
func (wb *Workbook) AddFormat(format models.Format) int {
	resolved, assigned := wb.d.formats.resolveNumberFormat(format)
	if assigned {
		wb.log.Debug().
			Int("id", resolved.NumberFormat.ID).
			Str("format", resolved.NumberFormat.FormatString).
			Msg("custom number format id assigned")
	}
	return wb.d.formats.add(resolved)
}

// Format returns the format at index i.
func (wb *Workbook) Format(i int) (models.Format, error) {
	if i < 0 || i >= len(wb.d.formats.entries) {
		return models.Format{}, opError("get format", strconv.Itoa(i), ErrIndexOutOfRange)
	}
	return wb.d.formats.entries[i], nil
}

// Formats returns the pool in index order.
func (wb *Workbook) Formats() []models.Format {
	return append([]models.Format(nil), wb.d.formats.entries...)
}

// NextCustomFormatID returns the id the next new custom number format gets.
func (wb *Workbook) NextCustomFormatID() int {
	return wb.d.formats.nextCustomID
}

// ClearFormats drops every format. Cells referring to pool indices are not
// updated. The custom id counter keeps counting.
func (wb *Workbook) ClearFormats() {
	wb.d.formats.clear()
}

// CreateStyle appends a style named name and returns it for configuration.
// Names are not required to be unique.
func (wb *Workbook) CreateStyle(name string) *models.Style {
	s := &models.Style{Name: name, BuiltinID: -1}
	wb.d.styles = append(wb.d.styles, s)
	return s
}

// Style returns the first style named name.
func (wb *Workbook) Style(name string) (*models.Style, error) {
	for _, s := range wb.d.styles {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, opError("get style", name, ErrNotFound)
}

// HasStyle reports whether a style named name exists.
func (wb *Workbook) HasStyle(name string) bool {
	_, err := wb.Style(name)
	return err == nil
}

// Styles returns the styles in creation order.
func (wb *Workbook) Styles() []*models.Style {
	return append([]*models.Style(nil), wb.d.styles...)
}

// ClearStyles drops every style.
func (wb *Workbook) ClearStyles() {
	wb.d.styles = nil
}
