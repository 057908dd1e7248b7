// Package output renders workbook summaries as JSON.
package output

import (
	"encoding/json"

	"github.com/ukaji3/xlbook-go/pkg/xlbook"
	"github.com/ukaji3/xlbook-go/pkg/xlbook/models"
)

// Summary is the JSON view of a workbook's package structure.
type Summary struct {
	Sheets            []SheetSummary            `json:"sheets"`
	ActiveSheet       int                       `json:"active_sheet"`
	Relationships     []models.Relationship     `json:"relationships"`
	RootRelationships []models.Relationship     `json:"root_relationships"`
	Defaults          []models.DefaultType      `json:"defaults"`
	Overrides         []models.OverrideType     `json:"overrides"`
	Formats           []FormatSummary           `json:"formats"`
	Styles            []models.Style            `json:"styles"`
	SharedStrings     []string                  `json:"shared_strings,omitempty"`
	Properties        models.DocumentProperties `json:"properties"`
	AppProperties     models.AppProperties      `json:"app_properties"`
	Encoding          string                    `json:"encoding"`
	Flags             Flags                     `json:"flags"`
}

// SheetSummary describes one sheet.
type SheetSummary struct {
	Index       int                 `json:"index"`
	Title       string              `json:"title"`
	NamedRanges []NamedRangeSummary `json:"named_ranges,omitempty"`
}

// NamedRangeSummary is a named range with its reference in A1 form.
type NamedRangeSummary struct {
	Name      string `json:"name"`
	Reference string `json:"reference"`
}

// FormatSummary is one format pool entry.
type FormatSummary struct {
	Index        int    `json:"index"`
	NumFmtID     int    `json:"num_fmt_id"`
	FormatString string `json:"format_string"`
	IsDate       bool   `json:"is_date,omitempty"`
	Font         string `json:"font,omitempty"`
}

// Flags are the workbook-wide flags.
type Flags struct {
	GuessTypes bool `json:"guess_types"`
	DataOnly   bool `json:"data_only"`
	ReadOnly   bool `json:"read_only"`
}

// Summarize collects the package structure of wb.
func Summarize(wb *xlbook.Workbook) Summary {
	s := Summary{
		ActiveSheet:       wb.ActiveSheetIndex(),
		Relationships:     wb.Relationships(),
		RootRelationships: wb.RootRelationships(),
		Defaults:          wb.Manifest().Defaults(),
		Overrides:         wb.Manifest().Overrides(),
		Properties:        wb.Properties(),
		AppProperties:     wb.AppProperties(),
		Encoding:          wb.Encoding(),
		Flags: Flags{
			GuessTypes: wb.GuessTypes(),
			DataOnly:   wb.DataOnly(),
			ReadOnly:   wb.ReadOnly(),
		},
	}

	for i, sheet := range wb.Sheets() {
		ss := SheetSummary{Index: i, Title: sheet.Title()}
		for _, nr := range sheet.NamedRanges() {
			ss.NamedRanges = append(ss.NamedRanges, NamedRangeSummary{
				Name:      nr.Name,
				Reference: nr.Reference.String(),
			})
		}
		s.Sheets = append(s.Sheets, ss)
	}

	for i, f := range wb.Formats() {
		s.Formats = append(s.Formats, FormatSummary{
			Index:        i,
			NumFmtID:     f.NumberFormat.ID,
			FormatString: f.NumberFormat.FormatString,
			IsDate:       f.NumberFormat.IsDate(),
			Font:         f.Font.Name,
		})
	}
	for _, st := range wb.Styles() {
		s.Styles = append(s.Styles, *st)
	}
	for _, t := range wb.SharedStrings() {
		s.SharedStrings = append(s.SharedStrings, t.String())
	}
	return s
}

// ToJSON serializes v to JSON.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
