package models

// Media types declared by a new workbook package.
const (
	ContentTypeRelationships      = "application/vnd.openxmlformats-package.relationships+xml"
	ContentTypeXML                = "application/xml"
	ContentTypeWorkbook           = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"
	ContentTypeWorksheet          = "application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"
	ContentTypeTheme              = "application/vnd.openxmlformats-officedocument.theme+xml"
	ContentTypeStyles             = "application/vnd.openxmlformats-officedocument.spreadsheetml.styles+xml"
	ContentTypeSharedStrings      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sharedStrings+xml"
	ContentTypeCoreProperties     = "application/vnd.openxmlformats-package.core-properties+xml"
	ContentTypeExtendedProperties = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
)

// DefaultType maps a file extension to the media type of every part with that
// extension that has no override.
type DefaultType struct {
	// Extension is the file extension without the leading dot.
	Extension string `json:"extension"`
	// ContentType is the media type.
	ContentType string `json:"content_type"`
}

// OverrideType maps one absolute part path to its media type.
type OverrideType struct {
	// PartName is the absolute part path, e.g. /xl/workbook.xml.
	PartName string `json:"part_name"`
	// ContentType is the media type.
	ContentType string `json:"content_type"`
}
