// Package xlbook keeps a spreadsheet workbook package in memory and keeps its
// parts consistent: sheets, relationships, content types, formats, styles,
// shared strings and named ranges.
package xlbook

import "github.com/rs/zerolog"

// DefaultEncoding is the encoding of a new workbook.
const DefaultEncoding = "UTF-8"

// Options configures a workbook.
type Options struct {
	// Encoding is the IANA name of the encoding used for legacy byte strings.
	// Empty means DefaultEncoding.
	Encoding string
	// GuessTypes asks the cell layer to infer value types from text input.
	GuessTypes bool
	// DataOnly asks the cell layer to keep cached values instead of formulas.
	DataOnly bool
	// ReadOnly rejects every sheet directory mutation.
	ReadOnly bool
	// Logger receives debug events. If nil, logging is disabled.
	Logger *zerolog.Logger
}

// DefaultOptions returns the options of New.
func DefaultOptions() Options {
	return Options{
		Encoding: DefaultEncoding,
	}
}

func (o Options) logger() zerolog.Logger {
	if o.Logger != nil {
		return *o.Logger
	}
	return zerolog.Nop()
}
