package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrInvalidRange is returned for reference strings that are not A1 ranges.
var ErrInvalidRange = errors.New("invalid range reference")

// RangeReference represents cell coordinate bounds of a rectangular range.
type RangeReference struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// ParseRangeReference parses "A1", "A1:D10" or "$A$1:$D$10".
// The corners are normalised so that R1<=R2 and C1<=C2.
func ParseRangeReference(ref string) (RangeReference, error) {
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")
	parts := strings.Split(ref, ":")
	if len(parts) > 2 || parts[0] == "" {
		return RangeReference{}, fmt.Errorf("%w: %q", ErrInvalidRange, ref)
	}
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return RangeReference{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, ref, err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return RangeReference{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, ref, err)
	}

	return RangeReference{
		R1: min(startRow, endRow),
		C1: min(startCol, endCol),
		R2: max(startRow, endRow),
		C2: max(startCol, endCol),
	}, nil
}

// String renders the range as "A1:D10", or "A1" for a single cell.
func (r RangeReference) String() string {
	start, err := excelize.CoordinatesToCellName(r.C1, r.R1)
	if err != nil {
		return ""
	}
	if r.R1 == r.R2 && r.C1 == r.C2 {
		return start
	}
	end, err := excelize.CoordinatesToCellName(r.C2, r.R2)
	if err != nil {
		return ""
	}
	return start + ":" + end
}

// Absolute renders the range with $ anchors, as stored in defined names.
func (r RangeReference) Absolute() string {
	start, err := excelize.CoordinatesToCellName(r.C1, r.R1, true)
	if err != nil {
		return ""
	}
	if r.R1 == r.R2 && r.C1 == r.C2 {
		return start
	}
	end, err := excelize.CoordinatesToCellName(r.C2, r.R2, true)
	if err != nil {
		return ""
	}
	return start + ":" + end
}

// NamedRange is a sheet-local name bound to a range on that sheet.
type NamedRange struct {
	// Name is the defined name.
	Name string `json:"name"`
	// Reference is the range the name points at.
	Reference RangeReference `json:"reference"`
}
