package models

import "testing"

func TestTextEqual(t *testing.T) {
	bold := &RunProperties{Bold: true}
	alsoBold := &RunProperties{Bold: true}

	tests := []struct {
		name     string
		a, b     Text
		expected bool
	}{
		{"same plain", PlainText("x"), PlainText("x"), true},
		{"different plain", PlainText("x"), PlainText("y"), false},
		{"plain vs formatted", PlainText("x"), Text{Runs: []TextRun{{Text: "x", Properties: bold}}}, false},
		{"equal properties", Text{Runs: []TextRun{{Text: "x", Properties: bold}}}, Text{Runs: []TextRun{{Text: "x", Properties: alsoBold}}}, true},
		{"run split", PlainText("ab"), Text{Runs: []TextRun{{Text: "a"}, {Text: "b"}}}, false},
	}

	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.expected {
			t.Errorf("%s: Equal() = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}

func TestTextString(t *testing.T) {
	text := Text{Runs: []TextRun{{Text: "Hello, "}, {Text: "world", Properties: &RunProperties{Bold: true}}}}
	if got := text.String(); got != "Hello, world" {
		t.Errorf("String() = %q, expected %q", got, "Hello, world")
	}
}
