package parser

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"

	"github.com/ukaji3/xlbook-go/pkg/xlbook/models"
)

// parseSharedStrings decodes the <si> entries of xl/sharedStrings.xml in
// order. Phonetic runs are skipped.
func parseSharedStrings(data []byte) ([]models.Text, error) {
	var result []models.Text
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "si" {
			continue
		}
		var si xlsxSI
		if err := decoder.DecodeElement(&si, &se); err != nil {
			return nil, err
		}
		result = append(result, convertSharedString(si))
	}

	return result, nil
}

func convertSharedString(si xlsxSI) models.Text {
	if len(si.R) == 0 {
		value := ""
		if si.T != nil {
			value = si.T.Value
		}
		return models.PlainText(value)
	}

	text := models.Text{Runs: make([]models.TextRun, 0, len(si.R))}
	for _, r := range si.R {
		run := models.TextRun{Text: r.T.Value}
		if p := r.RPr; p != nil {
			props := &models.RunProperties{Bold: flag(p.B)}
			if p.RFont != nil {
				props.Font = p.RFont.Val
			}
			if p.Sz != nil {
				props.Size, _ = strconv.ParseFloat(p.Sz.Val, 64)
			}
			if p.Color != nil {
				props.Color = p.Color.RGB
			}
			run.Properties = props
		}
		text.Runs = append(text.Runs, run)
	}
	return text
}
