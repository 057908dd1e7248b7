package models

import "strings"

// RunProperties holds the character formatting of a TextRun.
type RunProperties struct {
	Font  string  `json:"font,omitempty"`
	Size  float64 `json:"size,omitempty"`
	Color string  `json:"color,omitempty"`
	Bold  bool    `json:"bold,omitempty"`
}

// TextRun is a piece of text sharing one set of run properties.
// Properties is nil for plain runs.
type TextRun struct {
	Text       string         `json:"text"`
	Properties *RunProperties `json:"properties,omitempty"`
}

// Text is a shared string entry: one or more runs.
type Text struct {
	Runs []TextRun `json:"runs"`
}

// PlainText returns a single-run Text without formatting.
func PlainText(s string) Text {
	return Text{Runs: []TextRun{{Text: s}}}
}

// String concatenates the runs.
func (t Text) String() string {
	var b strings.Builder
	for _, r := range t.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Equal reports full-value equality, run properties included.
func (t Text) Equal(o Text) bool {
	if len(t.Runs) != len(o.Runs) {
		return false
	}
	for i := range t.Runs {
		a, b := t.Runs[i], o.Runs[i]
		if a.Text != b.Text {
			return false
		}
		switch {
		case a.Properties == nil && b.Properties == nil:
		case a.Properties == nil || b.Properties == nil:
			return false
		case *a.Properties != *b.Properties:
			return false
		}
	}
	return true
}
