package xlbook

import (
	"fmt"
	"path"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ukaji3/xlbook-go/pkg/xlbook/models"
)

// MaxTitleLength is the longest sheet title, in characters.
const MaxTitleLength = 31

const forbiddenTitleChars = `*:/\?[]`

// ValidateTitle checks a sheet title for length and forbidden characters.
func ValidateTitle(title string) error {
	if title == "" {
		return fmt.Errorf("%w: empty", ErrInvalidTitle)
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidTitle, MaxTitleLength)
	}
	if i := strings.IndexAny(title, forbiddenTitleChars); i >= 0 {
		return fmt.Errorf("%w: contains %q", ErrInvalidTitle, title[i])
	}
	return nil
}

// partName turns a workbook relationship target into a package part name.
func partName(target string) string {
	if strings.HasPrefix(target, "/") {
		return target
	}
	return "/xl/" + target
}

func worksheetTarget(n int) string {
	return "worksheets/sheet" + strconv.Itoa(n) + ".xml"
}

// IndexFromWorksheetFilename returns the 0-based sheet index encoded in a
// worksheet part name such as "worksheets/sheet3.xml".
func IndexFromWorksheetFilename(name string) (int, error) {
	base := path.Base(name)
	if dot := strings.IndexByte(base, '.'); dot >= 0 {
		base = base[:dot]
	}
	start := len(base)
	for start > 0 && base[start-1] >= '0' && base[start-1] <= '9' {
		start--
	}
	n, err := strconv.Atoi(base[start:])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: no sheet number in %q", ErrInvalidFormat, name)
	}
	return n - 1, nil
}

func (wb *Workbook) indexOf(s *Sheet) int {
	for i, ws := range wb.d.sheets {
		if ws == s {
			return i
		}
	}
	return -1
}

func (wb *Workbook) uniqueTitle(title string) string {
	unique := title
	for suffix := 1; wb.Contains(unique); suffix++ {
		unique = title + strconv.Itoa(suffix)
	}
	return unique
}

func (wb *Workbook) generatedTitle() string {
	title := "Sheet"
	for i := 1; wb.Contains(title); i++ {
		title = "Sheet" + strconv.Itoa(i)
	}
	return title
}

// CreateSheet appends a sheet. Without a title the first free of "Sheet",
// "Sheet1", "Sheet2", ... is used. A taken title gets the smallest numeric
// suffix that makes it unique.
func (wb *Workbook) CreateSheet(title ...string) (*Sheet, error) {
	requested := ""
	if len(title) > 0 {
		requested = title[0]
	}
	if err := wb.checkWritable("create sheet", requested); err != nil {
		return nil, err
	}

	var unique string
	if len(title) == 0 {
		unique = wb.generatedTitle()
	} else {
		if err := ValidateTitle(requested); err != nil {
			return nil, opError("create sheet", requested, err)
		}
		unique = wb.uniqueTitle(requested)
		if unique != requested {
			wb.log.Debug().Str("requested", requested).Str("title", unique).Msg("sheet title taken, renamed")
		}
	}

	target := worksheetTarget(len(wb.d.sheets) + 1)
	s := newSheet(wb.id, unique)
	wb.d.sheets = append(wb.d.sheets, s)
	wb.CreateRelationship(wb.NextRelationshipID(), target, models.RelationshipWorksheet)
	wb.d.manifest.AddOverrideType(partName(target), models.ContentTypeWorksheet)

	wb.log.Debug().Str("title", unique).Str("target", target).Msg("sheet created")
	return s, nil
}

// CreateSheetAt creates a sheet as CreateSheet does and moves it to index.
// Sheets at and after index shift one place to the right.
func (wb *Workbook) CreateSheetAt(index int, title ...string) (*Sheet, error) {
	if index < 0 || index > len(wb.d.sheets) {
		return nil, opError("create sheet", strconv.Itoa(index), ErrIndexOutOfRange)
	}
	s, err := wb.CreateSheet(title...)
	if err != nil {
		return nil, err
	}
	wb.moveLast(index)
	return s, nil
}

// moveLast moves the last sheet to index, keeping the others in order.
func (wb *Workbook) moveLast(index int) {
	last := len(wb.d.sheets) - 1
	if index >= last {
		return
	}
	s := wb.d.sheets[last]
	copy(wb.d.sheets[index+1:], wb.d.sheets[index:last])
	wb.d.sheets[index] = s
}

// RemoveSheet removes s together with the worksheet relationship and manifest
// override of the last worksheet part, so part names stay contiguous.
func (wb *Workbook) RemoveSheet(s *Sheet) error {
	subject := ""
	if s != nil {
		subject = s.title
	}
	if err := wb.checkWritable("remove sheet", subject); err != nil {
		return err
	}
	i := wb.indexOf(s)
	if i < 0 {
		return opError("remove sheet", subject, ErrNotOwned)
	}
	target := worksheetTarget(len(wb.d.sheets))
	ri := wb.d.relationships.indexOfTarget(target)
	if ri < 0 {
		return opError("remove sheet", subject, fmt.Errorf("%w: no relationship for %s", ErrInconsistentState, target))
	}

	wb.d.relationships = append(wb.d.relationships[:ri], wb.d.relationships[ri+1:]...)
	wb.d.manifest.RemoveOverrideType(partName(target))
	wb.d.sheets = append(wb.d.sheets[:i], wb.d.sheets[i+1:]...)
	s.parent = uuid.Nil

	if i < wb.d.activeSheet {
		wb.d.activeSheet--
	}
	if wb.d.activeSheet >= len(wb.d.sheets) {
		wb.d.activeSheet = max(len(wb.d.sheets)-1, 0)
	}
	wb.log.Debug().Str("title", subject).Str("target", target).Msg("sheet removed")
	return nil
}

// SheetIndex returns the position of s.
func (wb *Workbook) SheetIndex(s *Sheet) (int, error) {
	i := wb.indexOf(s)
	if i < 0 {
		subject := ""
		if s != nil {
			subject = s.title
		}
		return 0, opError("sheet index", subject, ErrNotOwned)
	}
	return i, nil
}

// SheetByName returns the sheet titled title.
func (wb *Workbook) SheetByName(title string) (*Sheet, error) {
	for _, s := range wb.d.sheets {
		if s.title == title {
			return s, nil
		}
	}
	return nil, opError("get sheet", title, ErrNotFound)
}

// SheetByIndex returns the sheet at position i.
func (wb *Workbook) SheetByIndex(i int) (*Sheet, error) {
	if i < 0 || i >= len(wb.d.sheets) {
		return nil, opError("get sheet", strconv.Itoa(i), ErrIndexOutOfRange)
	}
	return wb.d.sheets[i], nil
}

// Contains reports whether a sheet titled title exists.
func (wb *Workbook) Contains(title string) bool {
	_, err := wb.SheetByName(title)
	return err == nil
}

// Sheets returns the sheets in order.
func (wb *Workbook) Sheets() []*Sheet {
	return append([]*Sheet(nil), wb.d.sheets...)
}

// SheetNames returns the sheet titles in order.
func (wb *Workbook) SheetNames() []string {
	names := make([]string, 0, len(wb.d.sheets))
	for _, s := range wb.d.sheets {
		names = append(names, s.title)
	}
	return names
}

// ActiveSheet returns the active sheet, nil for a workbook without sheets.
func (wb *Workbook) ActiveSheet() *Sheet {
	if len(wb.d.sheets) == 0 {
		return nil
	}
	return wb.d.sheets[wb.d.activeSheet]
}

// ActiveSheetIndex returns the position of the active sheet.
func (wb *Workbook) ActiveSheetIndex() int {
	return wb.d.activeSheet
}

// SetActiveSheet makes the sheet at position i active.
func (wb *Workbook) SetActiveSheet(i int) error {
	if i < 0 || i >= len(wb.d.sheets) {
		return opError("set active sheet", strconv.Itoa(i), ErrIndexOutOfRange)
	}
	wb.d.activeSheet = i
	return nil
}

// RenameSheet gives s a new title. Unlike CreateSheet, a title used by another
// sheet is rejected.
func (wb *Workbook) RenameSheet(s *Sheet, title string) error {
	if err := wb.checkWritable("rename sheet", title); err != nil {
		return err
	}
	if wb.indexOf(s) < 0 {
		return opError("rename sheet", title, ErrNotOwned)
	}
	if err := ValidateTitle(title); err != nil {
		return opError("rename sheet", title, err)
	}
	if s.title == title {
		return nil
	}
	if wb.Contains(title) {
		return opError("rename sheet", title, fmt.Errorf("%w: already in use", ErrInvalidTitle))
	}
	s.title = title
	return nil
}

// DuplicateSheet appends a copy of s, which must belong to this workbook.
// The copy gets a unique title derived from the original.
func (wb *Workbook) DuplicateSheet(s *Sheet) (*Sheet, error) {
	if wb.indexOf(s) < 0 {
		subject := ""
		if s != nil {
			subject = s.title
		}
		return nil, opError("duplicate sheet", subject, ErrNotOwned)
	}
	dup, err := wb.CreateSheet(s.title)
	if err != nil {
		return nil, err
	}
	src := s.clone(wb.id)
	dup.names = src.names
	dup.data = src.data
	return dup, nil
}

// LoadSheet places a sheet read from a package at the position encoded in
// its relationship target. Relationships and manifest entries are loaded
// separately, so neither is touched here.
func (wb *Workbook) LoadSheet(title string, rel models.Relationship) (*Sheet, error) {
	if err := wb.checkWritable("load sheet", title); err != nil {
		return nil, err
	}
	if err := ValidateTitle(title); err != nil {
		return nil, opError("load sheet", title, err)
	}
	if wb.Contains(title) {
		return nil, opError("load sheet", title, fmt.Errorf("%w: already in use", ErrInvalidTitle))
	}
	index, err := IndexFromWorksheetFilename(rel.Target)
	if err != nil {
		return nil, opError("load sheet", title, err)
	}

	s := newSheet(wb.id, title)
	wb.d.sheets = append(wb.d.sheets, s)
	wb.moveLast(index)
	return s, nil
}

// Clear drops every sheet, the workbook relationships, the active sheet and
// the document properties. Worksheet overrides go with their relationships.
func (wb *Workbook) Clear() error {
	if err := wb.checkWritable("clear", ""); err != nil {
		return err
	}
	for _, r := range wb.d.relationships {
		if r.Type == models.RelationshipWorksheet {
			wb.d.manifest.RemoveOverrideType(partName(r.Target))
		}
	}
	for _, s := range wb.d.sheets {
		s.parent = uuid.Nil
	}
	wb.d.sheets = nil
	wb.d.relationships = nil
	wb.d.activeSheet = 0
	wb.d.properties = models.DocumentProperties{}
	return nil
}
