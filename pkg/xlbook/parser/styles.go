package parser

import (
	"strconv"

	"github.com/ukaji3/xlbook-go/pkg/xlbook/models"
)

// convertStyles resolves every cellXfs entry into a self-contained Format and
// lists the named cell styles. A style keeps its cellStyleXfs index.
func convertStyles(ss *xlsxStyleSheet) ([]models.Format, []models.Style) {
	custom := make(map[int]string, len(ss.NumFmts))
	for _, nf := range ss.NumFmts {
		custom[nf.ID] = nf.Code
	}

	formats := make([]models.Format, 0, len(ss.CellXfs))
	for _, xf := range ss.CellXfs {
		f := models.Format{
			NumberFormat: numberFormat(xf.NumFmtID, custom),
			Protection:   models.Protection{Locked: true},
		}
		if xf.FontID >= 0 && xf.FontID < len(ss.Fonts) {
			f.Font = convertFont(ss.Fonts[xf.FontID])
		}
		if xf.FillID >= 0 && xf.FillID < len(ss.Fills) {
			f.Fill = convertFill(ss.Fills[xf.FillID])
		}
		if xf.BorderID >= 0 && xf.BorderID < len(ss.Borders) {
			f.Border = convertBorder(ss.Borders[xf.BorderID])
		}
		if a := xf.Alignment; a != nil {
			f.Alignment = models.Alignment{
				Horizontal:   a.Horizontal,
				Vertical:     a.Vertical,
				TextRotation: a.TextRotation,
				Indent:       a.Indent,
				WrapText:     a.WrapText,
				ShrinkToFit:  a.ShrinkToFit,
			}
		}
		if p := xf.Protection; p != nil {
			f.Protection.Hidden = p.Hidden
			if p.Locked != nil {
				f.Protection.Locked = *p.Locked
			}
		}
		formats = append(formats, f)
	}

	styles := make([]models.Style, 0, len(ss.CellStyles))
	for _, cs := range ss.CellStyles {
		builtin := -1
		if cs.BuiltinID != nil {
			builtin = *cs.BuiltinID
		}
		styles = append(styles, models.Style{
			Name:        cs.Name,
			FormatIndex: cs.XfID,
			BuiltinID:   builtin,
			Hidden:      cs.Hidden,
		})
	}
	return formats, styles
}

func numberFormat(id int, custom map[int]string) models.NumberFormat {
	if code, ok := custom[id]; ok {
		return models.NumberFormat{ID: id, HasID: true, FormatString: code}
	}
	if nf, ok := models.BuiltinNumberFormat(id); ok {
		return nf
	}
	// Locale-specific built-ins have no portable code.
	return models.NumberFormat{ID: id, HasID: true}
}

func convertFont(f xlsxFont) models.Font {
	font := models.Font{
		Bold:   flag(f.B),
		Italic: flag(f.I),
		Strike: flag(f.Strike),
	}
	if f.Name != nil {
		font.Name = f.Name.Val
	}
	if f.Sz != nil {
		font.Size, _ = strconv.ParseFloat(f.Sz.Val, 64)
	}
	if f.Family != nil {
		font.Family, _ = strconv.Atoi(f.Family.Val)
	}
	if f.U != nil {
		font.Underline = f.U.Val
		if font.Underline == "" {
			font.Underline = "single"
		}
	}
	if f.Color != nil {
		font.Color = f.Color.RGB
	}
	return font
}

func convertFill(f xlsxFill) models.Fill {
	p := f.PatternFill
	if p == nil {
		return models.Fill{}
	}
	fill := models.Fill{PatternType: p.PatternType}
	if p.FgColor != nil {
		fill.ForegroundColor = p.FgColor.RGB
	}
	if p.BgColor != nil {
		fill.BackgroundColor = p.BgColor.RGB
	}
	return fill
}

func convertBorder(b xlsxBorder) models.Border {
	return models.Border{
		Left:         convertBorderSide(b.Left),
		Right:        convertBorderSide(b.Right),
		Top:          convertBorderSide(b.Top),
		Bottom:       convertBorderSide(b.Bottom),
		Diagonal:     convertBorderSide(b.Diagonal),
		DiagonalUp:   b.DiagonalUp,
		DiagonalDown: b.DiagonalDown,
	}
}

func convertBorderSide(s xlsxBorderSide) models.BorderSide {
	side := models.BorderSide{Style: s.Style}
	if s.Color != nil {
		side.Color = s.Color.RGB
	}
	return side
}
