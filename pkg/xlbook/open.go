package xlbook

import (
	"errors"
	"os"
	"sort"

	"github.com/ukaji3/xlbook-go/pkg/xlbook/models"
	"github.com/ukaji3/xlbook-go/pkg/xlbook/parser"
)

// Open reads the workbook package at path. Sheets are placed by their part
// number, so worksheets/sheet1.xml comes first. Flags from opts are applied
// after loading.
func Open(path string, opts Options) (*Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, opError("open", path, ErrFileNotFound)
		}
		return nil, opError("open", path, err)
	}

	data, err := parser.ReadPackage(path)
	if err != nil {
		return nil, opError("open", path, err)
	}

	wb, err := FromPackage(data, opts)
	if err != nil {
		return nil, opError("open", path, err)
	}
	wb.log.Debug().
		Str("path", path).
		Int("sheets", len(wb.d.sheets)).
		Int("formats", len(wb.d.formats.entries)).
		Int("shared_strings", len(wb.d.strings)).
		Msg("package loaded")
	return wb, nil
}

// FromPackage builds a workbook from parsed package parts.
func FromPackage(data *models.PackageData, opts Options) (*Workbook, error) {
	wb := newEmpty(opts)

	for _, d := range data.Defaults {
		wb.d.manifest.AddDefaultType(d.Extension, d.ContentType)
	}
	for _, o := range data.Overrides {
		wb.d.manifest.AddOverrideType(o.PartName, o.ContentType)
	}
	wb.d.rootRelationships = append(relationshipSet(nil), data.RootRelationships...)
	wb.d.relationships = append(relationshipSet(nil), data.Relationships...)

	if err := wb.loadSheets(data); err != nil {
		return nil, err
	}
	if data.ActiveSheet >= 0 && data.ActiveSheet < len(wb.d.sheets) {
		wb.d.activeSheet = data.ActiveSheet
	}
	wb.loadDefinedNames(data)

	wb.d.strings = append(stringPool(nil), data.SharedStrings...)
	for _, f := range data.Formats {
		wb.d.formats.load(f)
	}
	for _, s := range data.Styles {
		style := s
		wb.d.styles = append(wb.d.styles, &style)
	}

	wb.d.properties = data.Properties
	wb.d.appProperties = data.AppProperties
	wb.d.theme = data.Theme
	wb.d.thumbnail = data.Thumbnail

	if err := wb.applyOptions(opts); err != nil {
		return nil, err
	}
	return wb, nil
}

func (wb *Workbook) loadSheets(data *models.PackageData) error {
	type entry struct {
		index int
		sheet models.SheetEntry
	}
	entries := make([]entry, 0, len(data.Sheets))
	for _, s := range data.Sheets {
		if s.Relationship.Type != models.RelationshipWorksheet {
			wb.log.Debug().Str("title", s.Title).Stringer("type", s.Relationship.Type).Msg("skipping non-worksheet sheet")
			continue
		}
		index, err := IndexFromWorksheetFilename(s.Relationship.Target)
		if err != nil {
			return opError("load sheet", s.Title, err)
		}
		entries = append(entries, entry{index: index, sheet: s})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].index < entries[j].index
	})

	for _, e := range entries {
		if _, err := wb.LoadSheet(e.sheet.Title, e.sheet.Relationship); err != nil {
			return err
		}
	}
	return nil
}

// loadDefinedNames attaches plain range names to their sheets. Names with a
// localSheetId belong to that sheet; others to the sheet their reference
// names. Anything that is not a single range is dropped.
func (wb *Workbook) loadDefinedNames(data *models.PackageData) {
	for _, dn := range data.DefinedNames {
		sheetName, ref, ok := parser.RangeOperand(dn.RefersTo)
		if !ok {
			wb.log.Debug().Str("name", dn.Name).Str("refers_to", dn.RefersTo).Msg("skipping non-range defined name")
			continue
		}
		if dn.LocalSheetID >= 0 && dn.LocalSheetID < len(data.Sheets) {
			sheetName = data.Sheets[dn.LocalSheetID].Title
		}
		owner, err := wb.SheetByName(sheetName)
		if err != nil {
			wb.log.Debug().Str("name", dn.Name).Str("sheet", sheetName).Msg("skipping defined name without sheet")
			continue
		}
		if err := owner.CreateNamedRange(dn.Name, ref); err != nil {
			wb.log.Debug().Err(err).Str("name", dn.Name).Msg("skipping defined name")
		}
	}
}
