package parser

import (
	"strings"

	"github.com/xuri/efp"
)

// RangeOperand reports whether a defined-name formula is one plain range such
// as 'My Sheet'!$A$1:$B$4, and splits it into sheet and range. Constants,
// functions and unions are rejected.
func RangeOperand(refersTo string) (sheet, ref string, ok bool) {
	ps := efp.ExcelParser()
	tokens := ps.Parse(refersTo)
	if len(tokens) != 1 {
		return "", "", false
	}
	token := tokens[0]
	if token.TType != efp.TokenTypeOperand || token.TSubType != efp.TokenSubTypeRange {
		return "", "", false
	}
	value := token.TValue
	if strings.HasPrefix(value, "#") {
		// #REF! and friends.
		return "", "", false
	}
	sheet, ref = splitSheetReference(value)
	return sheet, ref, ref != ""
}

// splitSheetReference splits 'Sheet'!A1 or Sheet!A1 at the last "!".
func splitSheetReference(value string) (string, string) {
	idx := strings.LastIndex(value, "!")
	if idx < 0 {
		return "", value
	}
	sheet := value[:idx]
	if strings.HasPrefix(sheet, "'") && strings.HasSuffix(sheet, "'") && len(sheet) >= 2 {
		sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
	}
	return sheet, value[idx+1:]
}
