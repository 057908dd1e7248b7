// Package parser reads the parts of an xlsx package into plain models.
package parser

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xlbook-go/pkg/xlbook/models"
)

// ErrInvalidFormat indicates a file that is not an xlsx package.
var ErrInvalidFormat = errors.New("invalid xlsx format")

const contentTypesPart = "[Content_Types].xml"

// ReadPackage reads the package-level parts of the workbook at xlsxPath.
func ReadPackage(xlsxPath string) (*models.PackageData, error) {
	if err := checkCompoundFile(xlsxPath); err != nil {
		return nil, err
	}

	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer r.Close()

	data, err := readParts(&r.Reader)
	if err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()
	if err := readProperties(f, data); err != nil {
		return nil, err
	}
	return data, nil
}

func readParts(r *zip.Reader) (*models.PackageData, error) {
	data := &models.PackageData{}

	types, err := readXMLPart[xlsxTypes](r, contentTypesPart)
	if err != nil {
		return nil, err
	}
	if types == nil {
		return nil, fmt.Errorf("%w: missing %s", ErrInvalidFormat, contentTypesPart)
	}
	for _, d := range types.Defaults {
		data.Defaults = append(data.Defaults, models.DefaultType{Extension: d.Extension, ContentType: d.ContentType})
	}
	for _, o := range types.Overrides {
		data.Overrides = append(data.Overrides, models.OverrideType{PartName: o.PartName, ContentType: o.ContentType})
	}

	data.RootRelationships, err = readRelationships(r, "_rels/.rels")
	if err != nil {
		return nil, err
	}
	workbookPart := "xl/workbook.xml"
	for _, rel := range data.RootRelationships {
		switch rel.Type {
		case models.RelationshipOfficeDocument:
			workbookPart = strings.TrimPrefix(rel.Target, "/")
		case models.RelationshipThumbnail:
			if data.Thumbnail, err = readZipFile(r, strings.TrimPrefix(rel.Target, "/")); err != nil {
				return nil, err
			}
		}
	}
	baseDir := path.Dir(workbookPart)

	data.Relationships, err = readRelationships(r, relationshipsPart(workbookPart))
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Relationship, len(data.Relationships))
	for _, rel := range data.Relationships {
		byID[rel.ID] = rel
	}

	wb, err := readXMLPart[xlsxWorkbook](r, workbookPart)
	if err != nil {
		return nil, err
	}
	if wb == nil {
		return nil, fmt.Errorf("%w: missing %s", ErrInvalidFormat, workbookPart)
	}
	for _, s := range wb.Sheets {
		rel, ok := byID[s.ID]
		if !ok {
			return nil, fmt.Errorf("%w: sheet %q has no relationship %q", ErrInvalidFormat, s.Name, s.ID)
		}
		data.Sheets = append(data.Sheets, models.SheetEntry{
			Title:        s.Name,
			SheetID:      s.SheetID,
			Relationship: rel,
			State:        s.State,
		})
	}
	if len(wb.BookViews) > 0 {
		data.ActiveSheet = wb.BookViews[0].ActiveTab
	}
	for _, dn := range wb.DefinedNames {
		local := -1
		if dn.LocalSheetID != nil {
			local = *dn.LocalSheetID
		}
		data.DefinedNames = append(data.DefinedNames, models.DefinedName{
			Name:         dn.Name,
			RefersTo:     strings.TrimSpace(dn.Value),
			LocalSheetID: local,
			Hidden:       dn.Hidden,
		})
	}

	for _, rel := range data.Relationships {
		if rel.TargetMode == "External" {
			continue
		}
		part := resolveRelativePath(rel.Target, baseDir)
		switch rel.Type {
		case models.RelationshipSharedStrings:
			raw, err := readZipFile(r, part)
			if err != nil {
				return nil, err
			}
			if data.SharedStrings, err = parseSharedStrings(raw); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, part, err)
			}
		case models.RelationshipStyles:
			ss, err := readXMLPart[xlsxStyleSheet](r, part)
			if err != nil {
				return nil, err
			}
			if ss != nil {
				data.Formats, data.Styles = convertStyles(ss)
			}
		case models.RelationshipTheme:
			if data.Theme.Raw, err = readZipFile(r, part); err != nil {
				return nil, err
			}
		}
	}

	return data, nil
}

// readProperties fills the document and application properties.
func readProperties(f *excelize.File, data *models.PackageData) error {
	doc, err := f.GetDocProps()
	if err != nil {
		return fmt.Errorf("%w: core properties: %v", ErrInvalidFormat, err)
	}
	data.Properties = models.DocumentProperties{
		Title:          doc.Title,
		Subject:        doc.Subject,
		Creator:        doc.Creator,
		Keywords:       doc.Keywords,
		Description:    doc.Description,
		LastModifiedBy: doc.LastModifiedBy,
		Category:       doc.Category,
		Created:        parseW3CDTF(doc.Created),
		Modified:       parseW3CDTF(doc.Modified),
	}

	app, err := f.GetAppProps()
	if err != nil {
		return fmt.Errorf("%w: app properties: %v", ErrInvalidFormat, err)
	}
	data.AppProperties = models.AppProperties{
		Application:       app.Application,
		AppVersion:        app.AppVersion,
		Company:           app.Company,
		DocSecurity:       app.DocSecurity,
		ScaleCrop:         app.ScaleCrop,
		LinksUpToDate:     app.LinksUpToDate,
		HyperlinksChanged: app.HyperlinksChanged,
	}
	return nil
}

func parseW3CDTF(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func readRelationships(r *zip.Reader, name string) ([]models.Relationship, error) {
	rels, err := readXMLPart[xlsxRelationships](r, name)
	if err != nil || rels == nil {
		return nil, err
	}
	out := make([]models.Relationship, 0, len(rels.Relationships))
	for _, rel := range rels.Relationships {
		out = append(out, models.Relationship{
			ID:         rel.ID,
			Target:     rel.Target,
			Type:       models.ParseRelationshipType(rel.Type),
			TargetMode: rel.TargetMode,
		})
	}
	return out, nil
}

// relationshipsPart returns the rels part of a part, e.g.
// xl/_rels/workbook.xml.rels for xl/workbook.xml.
func relationshipsPart(part string) string {
	return path.Join(path.Dir(part), "_rels", path.Base(part)+".rels")
}

// readXMLPart decodes a part. A missing part yields nil without error.
func readXMLPart[T any](r *zip.Reader, name string) (*T, error) {
	raw, err := readZipFile(r, name)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	v := new(T)
	if err := xml.Unmarshal(raw, v); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, name, err)
	}
	return v, nil
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

// resolveRelativePath turns a relationship target into a zip entry name.
func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join(baseDir, target))
}
