package models

// Alignment is the opaque alignment attribute set of a Format.
type Alignment struct {
	Horizontal   string `json:"horizontal,omitempty"`
	Vertical     string `json:"vertical,omitempty"`
	TextRotation int    `json:"text_rotation,omitempty"`
	Indent       int    `json:"indent,omitempty"`
	WrapText     bool   `json:"wrap_text,omitempty"`
	ShrinkToFit  bool   `json:"shrink_to_fit,omitempty"`
}

// BorderSide is one edge of a Border.
type BorderSide struct {
	Style string `json:"style,omitempty"`
	Color string `json:"color,omitempty"`
}

// Border is the opaque border attribute set of a Format.
type Border struct {
	Left         BorderSide `json:"left"`
	Right        BorderSide `json:"right"`
	Top          BorderSide `json:"top"`
	Bottom       BorderSide `json:"bottom"`
	Diagonal     BorderSide `json:"diagonal"`
	DiagonalUp   bool       `json:"diagonal_up,omitempty"`
	DiagonalDown bool       `json:"diagonal_down,omitempty"`
}

// Fill is the opaque fill attribute set of a Format.
type Fill struct {
	PatternType     string `json:"pattern_type,omitempty"`
	ForegroundColor string `json:"foreground_color,omitempty"`
	BackgroundColor string `json:"background_color,omitempty"`
}

// Font is the opaque font attribute set of a Format.
type Font struct {
	Name      string  `json:"name,omitempty"`
	Size      float64 `json:"size,omitempty"`
	Family    int     `json:"family,omitempty"`
	Bold      bool    `json:"bold,omitempty"`
	Italic    bool    `json:"italic,omitempty"`
	Underline string  `json:"underline,omitempty"`
	Strike    bool    `json:"strike,omitempty"`
	Color     string  `json:"color,omitempty"`
}

// Protection holds the cell protection flags.
type Protection struct {
	Locked bool `json:"locked"`
	Hidden bool `json:"hidden"`
}

// Format bundles everything a cell needs to be displayed. Format values are
// comparable: two formats are the same pool entry iff they are ==.
type Format struct {
	NumberFormat NumberFormat `json:"number_format"`
	Alignment    Alignment    `json:"alignment"`
	Border       Border       `json:"border"`
	Fill         Fill         `json:"fill"`
	Font         Font         `json:"font"`
	Protection   Protection   `json:"protection"`
}

// DefaultFormat is the first entry of every new workbook's format pool.
func DefaultFormat() Format {
	return Format{
		NumberFormat: GeneralNumberFormat(),
		Font:         Font{Name: "Calibri", Size: 11, Family: 2},
		Protection:   Protection{Locked: true},
	}
}

// Style is a named formatting identity.
type Style struct {
	// Name is the style name shown in the UI, e.g. "Normal".
	Name string `json:"name"`
	// FormatIndex is the style-format record (cellStyleXfs entry) the style
	// applies. It is not an index into the cell format pool.
	FormatIndex int `json:"format_index"`
	// BuiltinID is the built-in style id, -1 for custom styles.
	BuiltinID int `json:"builtin_id"`
	// Hidden hides the style from the UI.
	Hidden bool `json:"hidden,omitempty"`
}
