package parser

import "testing"

func TestRangeOperand(t *testing.T) {
	tests := []struct {
		input string
		sheet string
		ref   string
		ok    bool
	}{
		{"Data!$A$1:$B$4", "Data", "$A$1:$B$4", true},
		{"'My Sheet'!$A$1:$B$4", "My Sheet", "$A$1:$B$4", true},
		{"Data!C3", "Data", "C3", true},
		{"=Data!C3", "Data", "C3", true},
		{"SUM(Data!A1:A3)", "", "", false},
		{"0.5", "", "", false},
		{"TRUE", "", "", false},
		{`"text"`, "", "", false},
		{"Data!$A$1,Data!$B$2", "", "", false},
		{"#REF!", "", "", false},
	}

	for _, tt := range tests {
		sheet, ref, ok := RangeOperand(tt.input)
		if ok != tt.ok || sheet != tt.sheet || ref != tt.ref {
			t.Errorf("RangeOperand(%q) = (%q, %q, %v), expected (%q, %q, %v)",
				tt.input, sheet, ref, ok, tt.sheet, tt.ref, tt.ok)
		}
	}
}

func TestSplitSheetReference(t *testing.T) {
	tests := []struct {
		input string
		sheet string
		ref   string
	}{
		{"Data!A1", "Data", "A1"},
		{"'O''Brien'!A1", "O'Brien", "A1"},
		{"A1:B2", "", "A1:B2"},
	}

	for _, tt := range tests {
		sheet, ref := splitSheetReference(tt.input)
		if sheet != tt.sheet || ref != tt.ref {
			t.Errorf("splitSheetReference(%q) = (%q, %q), expected (%q, %q)",
				tt.input, sheet, ref, tt.sheet, tt.ref)
		}
	}
}
