// Package models defines the plain data types of a workbook package.
package models

import "strings"

// RelationshipType identifies what kind of part a relationship points at.
type RelationshipType int

const (
	RelationshipUnknown RelationshipType = iota
	RelationshipWorksheet
	RelationshipSharedStrings
	RelationshipStyles
	RelationshipTheme
	RelationshipCoreProperties
	RelationshipExtendedProperties
	RelationshipCustomProperties
	RelationshipOfficeDocument
	RelationshipThumbnail
	RelationshipCalcChain
	RelationshipChartsheet
	RelationshipHyperlink
)

const (
	nsOfficeDocumentRels = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/"
	nsPackageRels        = "http://schemas.openxmlformats.org/package/2006/relationships/"
)

var relationshipTypeURIs = map[RelationshipType]string{
	RelationshipWorksheet:          nsOfficeDocumentRels + "worksheet",
	RelationshipSharedStrings:      nsOfficeDocumentRels + "sharedStrings",
	RelationshipStyles:             nsOfficeDocumentRels + "styles",
	RelationshipTheme:              nsOfficeDocumentRels + "theme",
	RelationshipCoreProperties:     nsPackageRels + "metadata/core-properties",
	RelationshipExtendedProperties: nsOfficeDocumentRels + "extended-properties",
	RelationshipCustomProperties:   nsOfficeDocumentRels + "custom-properties",
	RelationshipOfficeDocument:     nsOfficeDocumentRels + "officeDocument",
	RelationshipThumbnail:          nsPackageRels + "metadata/thumbnail",
	RelationshipCalcChain:          nsOfficeDocumentRels + "calcChain",
	RelationshipChartsheet:         nsOfficeDocumentRels + "chartsheet",
	RelationshipHyperlink:          nsOfficeDocumentRels + "hyperlink",
}

var relationshipTypeNames = map[RelationshipType]string{
	RelationshipUnknown:            "unknown",
	RelationshipWorksheet:          "worksheet",
	RelationshipSharedStrings:      "shared_strings",
	RelationshipStyles:             "styles",
	RelationshipTheme:              "theme",
	RelationshipCoreProperties:     "core_properties",
	RelationshipExtendedProperties: "extended_properties",
	RelationshipCustomProperties:   "custom_properties",
	RelationshipOfficeDocument:     "office_document",
	RelationshipThumbnail:          "thumbnail",
	RelationshipCalcChain:          "calc_chain",
	RelationshipChartsheet:         "chartsheet",
	RelationshipHyperlink:          "hyperlink",
}

// URI returns the schema URI written to the Type attribute of a relationship.
// Unknown types return an empty string.
func (t RelationshipType) URI() string {
	return relationshipTypeURIs[t]
}

func (t RelationshipType) String() string {
	if name, ok := relationshipTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// MarshalText renders the type by name so JSON output stays readable.
func (t RelationshipType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText reads a type written by MarshalText.
func (t *RelationshipType) UnmarshalText(text []byte) error {
	for rt, name := range relationshipTypeNames {
		if name == string(text) {
			*t = rt
			return nil
		}
	}
	*t = RelationshipUnknown
	return nil
}

// ParseRelationshipType maps a schema URI back to a RelationshipType.
// Strict and transitional namespaces differ only in their prefix, so the
// final path segment decides.
func ParseRelationshipType(uri string) RelationshipType {
	segment := uri[strings.LastIndex(uri, "/")+1:]
	for t, known := range relationshipTypeURIs {
		if known[strings.LastIndex(known, "/")+1:] == segment {
			return t
		}
	}
	return RelationshipUnknown
}

// Relationship is a typed pointer from the package root or from the workbook
// part to another part.
type Relationship struct {
	// ID is the relationship identifier, conventionally rId<N>.
	ID string `json:"id"`
	// Target is the part path relative to the source part.
	Target string `json:"target"`
	// Type is the relationship type.
	Type RelationshipType `json:"type"`
	// TargetMode is "External" for targets outside the package.
	TargetMode string `json:"target_mode,omitempty"`
}
