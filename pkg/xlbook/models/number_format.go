package models

import "github.com/xuri/nfp"

// FirstCustomNumberFormatID is the smallest id a custom number format can get.
// Lower ids are reserved for built-in formats.
const FirstCustomNumberFormatID = 164

// NumberFormat describes how a cell value is displayed.
type NumberFormat struct {
	// ID is the number format id. Only meaningful when HasID is set.
	ID int `json:"id"`
	// HasID reports whether ID has been assigned.
	HasID bool `json:"has_id"`
	// FormatString is the format code, e.g. "0.00%".
	FormatString string `json:"format_string"`
}

var builtinNumberFormats = map[int]string{
	0:  "General",
	1:  "0",
	2:  "0.00",
	3:  "#,##0",
	4:  "#,##0.00",
	9:  "0%",
	10: "0.00%",
	11: "0.00E+00",
	12: "# ?/?",
	13: "# ??/??",
	14: "mm-dd-yy",
	15: "d-mmm-yy",
	16: "d-mmm",
	17: "mmm-yy",
	18: "h:mm AM/PM",
	19: "h:mm:ss AM/PM",
	20: "h:mm",
	21: "h:mm:ss",
	22: "m/d/yy h:mm",
	37: "#,##0 ;(#,##0)",
	38: "#,##0 ;[Red](#,##0)",
	39: "#,##0.00;(#,##0.00)",
	40: "#,##0.00;[Red](#,##0.00)",
	45: "mm:ss",
	46: "[h]:mm:ss",
	47: "mmss.0",
	48: "##0.0E+0",
	49: "@",
}

// GeneralNumberFormat returns built-in format 0.
func GeneralNumberFormat() NumberFormat {
	return NumberFormat{ID: 0, HasID: true, FormatString: "General"}
}

// BuiltinNumberFormat returns the built-in format with the given id.
func BuiltinNumberFormat(id int) (NumberFormat, bool) {
	code, ok := builtinNumberFormats[id]
	if !ok {
		return NumberFormat{}, false
	}
	return NumberFormat{ID: id, HasID: true, FormatString: code}, true
}

// CustomNumberFormat returns a format without an id. The workbook assigns one
// when a format using it is added to the pool.
func CustomNumberFormat(code string) NumberFormat {
	return NumberFormat{FormatString: code}
}

// IsBuiltin reports whether the format carries a reserved built-in id.
func (n NumberFormat) IsBuiltin() bool {
	return n.HasID && n.ID < FirstCustomNumberFormatID
}

// IsDate reports whether the format code renders dates or times.
func (n NumberFormat) IsDate() bool {
	ps := nfp.NumberFormatParser()
	for _, section := range ps.Parse(n.FormatString) {
		for _, token := range section.Items {
			switch token.TType {
			case nfp.TokenTypeDateTimes, nfp.TokenTypeElapsedDateTimes:
				return true
			}
		}
	}
	return false
}
