package models

// SheetEntry is a sheet as listed in xl/workbook.xml, resolved through the
// workbook relationships.
type SheetEntry struct {
	// Title is the sheet name.
	Title string `json:"title"`
	// SheetID is the sheetId attribute.
	SheetID int `json:"sheet_id"`
	// Relationship is the workbook relationship the sheet's r:id points at.
	Relationship Relationship `json:"relationship"`
	// State is "visible", "hidden" or "veryHidden".
	State string `json:"state,omitempty"`
}

// DefinedName is a definedName element of xl/workbook.xml.
type DefinedName struct {
	// Name is the defined name.
	Name string `json:"name"`
	// RefersTo is the formula text, e.g. 'Data'!$A$1:$B$2.
	RefersTo string `json:"refers_to"`
	// LocalSheetID is the 0-based index of the scoping sheet, or -1 for
	// workbook scope.
	LocalSheetID int `json:"local_sheet_id"`
	// Hidden marks names hidden from the UI.
	Hidden bool `json:"hidden,omitempty"`
}

// PackageData is everything read from a workbook package before it is turned
// into a workbook.
type PackageData struct {
	// Defaults are the default content types.
	Defaults []DefaultType `json:"defaults"`
	// Overrides are the override content types.
	Overrides []OverrideType `json:"overrides"`
	// RootRelationships are the package-root relationships (_rels/.rels).
	RootRelationships []Relationship `json:"root_relationships"`
	// Relationships are the workbook part relationships.
	Relationships []Relationship `json:"relationships"`
	// Sheets lists the worksheets in workbook order.
	Sheets []SheetEntry `json:"sheets"`
	// ActiveSheet is the activeTab of the first workbook view.
	ActiveSheet int `json:"active_sheet"`
	// DefinedNames are the workbook's defined names.
	DefinedNames []DefinedName `json:"defined_names,omitempty"`
	// SharedStrings are the shared string table entries in index order.
	SharedStrings []Text `json:"shared_strings,omitempty"`
	// Formats are the cellXfs entries in index order.
	Formats []Format `json:"formats,omitempty"`
	// Styles are the cellStyles entries.
	Styles []Style `json:"styles,omitempty"`
	// Properties is the core properties part.
	Properties DocumentProperties `json:"properties"`
	// AppProperties is the extended properties part.
	AppProperties AppProperties `json:"app_properties"`
	// Theme is the raw theme part, if any.
	Theme Theme `json:"-"`
	// Thumbnail is the raw thumbnail image, if any.
	Thumbnail []byte `json:"-"`
}
