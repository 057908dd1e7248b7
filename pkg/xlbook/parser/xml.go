package parser

// Part structures decoded with encoding/xml. Only the attributes the
// workbook model keeps are declared.

type xlsxTypes struct {
	Defaults  []xlsxDefault  `xml:"Default"`
	Overrides []xlsxOverride `xml:"Override"`
}

type xlsxDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xlsxOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xlsxRelationships struct {
	Relationships []xlsxRelationship `xml:"Relationship"`
}

type xlsxRelationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr"`
}

type xlsxWorkbook struct {
	BookViews    []xlsxWorkbookView `xml:"bookViews>workbookView"`
	Sheets       []xlsxSheet        `xml:"sheets>sheet"`
	DefinedNames []xlsxDefinedName  `xml:"definedNames>definedName"`
}

type xlsxWorkbookView struct {
	ActiveTab int `xml:"activeTab,attr"`
}

type xlsxSheet struct {
	Name    string `xml:"name,attr"`
	SheetID int    `xml:"sheetId,attr"`
	State   string `xml:"state,attr"`
	ID      string `xml:"id,attr"`
}

type xlsxDefinedName struct {
	Name         string `xml:"name,attr"`
	LocalSheetID *int   `xml:"localSheetId,attr"`
	Hidden       bool   `xml:"hidden,attr"`
	Value        string `xml:",chardata"`
}

type xlsxValAttr struct {
	Val string `xml:"val,attr"`
}

type xlsxColor struct {
	RGB string `xml:"rgb,attr"`
}

type xlsxStyleSheet struct {
	NumFmts    []xlsxNumFmt    `xml:"numFmts>numFmt"`
	Fonts      []xlsxFont      `xml:"fonts>font"`
	Fills      []xlsxFill      `xml:"fills>fill"`
	Borders    []xlsxBorder    `xml:"borders>border"`
	CellXfs    []xlsxXf        `xml:"cellXfs>xf"`
	CellStyles []xlsxCellStyle `xml:"cellStyles>cellStyle"`
}

type xlsxNumFmt struct {
	ID   int    `xml:"numFmtId,attr"`
	Code string `xml:"formatCode,attr"`
}

type xlsxFont struct {
	B      *xlsxValAttr `xml:"b"`
	I      *xlsxValAttr `xml:"i"`
	Strike *xlsxValAttr `xml:"strike"`
	U      *xlsxValAttr `xml:"u"`
	Sz     *xlsxValAttr `xml:"sz"`
	Color  *xlsxColor   `xml:"color"`
	Name   *xlsxValAttr `xml:"name"`
	Family *xlsxValAttr `xml:"family"`
}

type xlsxFill struct {
	PatternFill *xlsxPatternFill `xml:"patternFill"`
}

type xlsxPatternFill struct {
	PatternType string     `xml:"patternType,attr"`
	FgColor     *xlsxColor `xml:"fgColor"`
	BgColor     *xlsxColor `xml:"bgColor"`
}

type xlsxBorder struct {
	DiagonalUp   bool           `xml:"diagonalUp,attr"`
	DiagonalDown bool           `xml:"diagonalDown,attr"`
	Left         xlsxBorderSide `xml:"left"`
	Right        xlsxBorderSide `xml:"right"`
	Top          xlsxBorderSide `xml:"top"`
	Bottom       xlsxBorderSide `xml:"bottom"`
	Diagonal     xlsxBorderSide `xml:"diagonal"`
}

type xlsxBorderSide struct {
	Style string     `xml:"style,attr"`
	Color *xlsxColor `xml:"color"`
}

type xlsxXf struct {
	NumFmtID   int             `xml:"numFmtId,attr"`
	FontID     int             `xml:"fontId,attr"`
	FillID     int             `xml:"fillId,attr"`
	BorderID   int             `xml:"borderId,attr"`
	Alignment  *xlsxAlignment  `xml:"alignment"`
	Protection *xlsxProtection `xml:"protection"`
}

type xlsxAlignment struct {
	Horizontal   string `xml:"horizontal,attr"`
	Vertical     string `xml:"vertical,attr"`
	TextRotation int    `xml:"textRotation,attr"`
	Indent       int    `xml:"indent,attr"`
	WrapText     bool   `xml:"wrapText,attr"`
	ShrinkToFit  bool   `xml:"shrinkToFit,attr"`
}

type xlsxProtection struct {
	Locked *bool `xml:"locked,attr"`
	Hidden bool  `xml:"hidden,attr"`
}

type xlsxCellStyle struct {
	Name      string `xml:"name,attr"`
	XfID      int    `xml:"xfId,attr"`
	BuiltinID *int   `xml:"builtinId,attr"`
	Hidden    bool   `xml:"hidden,attr"`
}

type xlsxSI struct {
	T *xlsxT  `xml:"t"`
	R []xlsxR `xml:"r"`
}

type xlsxT struct {
	Value string `xml:",chardata"`
}

type xlsxR struct {
	RPr *xlsxRPr `xml:"rPr"`
	T   xlsxT    `xml:"t"`
}

type xlsxRPr struct {
	B     *xlsxValAttr `xml:"b"`
	Sz    *xlsxValAttr `xml:"sz"`
	Color *xlsxColor   `xml:"color"`
	RFont *xlsxValAttr `xml:"rFont"`
}

// flag reads an element-valued boolean such as <b/> or <b val="0"/>.
func flag(v *xlsxValAttr) bool {
	return v != nil && v.Val != "0" && v.Val != "false"
}
