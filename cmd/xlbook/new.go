package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ukaji3/xlbook-go/pkg/xlbook"
	"github.com/ukaji3/xlbook-go/pkg/xlbook/models"
)

type newFlags struct {
	sheets   []string
	formats  []string
	strings  []string
	names    []string
	title    string
	creator  string
	active   int
	dataOnly bool
}

func newNewCmd() *cobra.Command {
	var f newFlags

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Build a workbook in memory and print its package structure",
		Long: `new builds a workbook from flags and prints the package structure
a serializer would write. Sheet titles and strings are decoded from
--encoding first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := buildWorkbook(f)
			if err != nil {
				return err
			}
			return writeSummary(cmd, wb)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVar(&f.sheets, "sheet", nil, "Sheet title to add (repeatable)")
	flags.StringArrayVar(&f.formats, "number-format", nil, "Custom number format code to add (repeatable)")
	flags.StringArrayVar(&f.strings, "string", nil, "Shared string to add (repeatable)")
	flags.StringArrayVar(&f.names, "name", nil, "Named range as NAME=SHEET!RANGE (repeatable)")
	flags.StringVar(&f.title, "title", "", "Document title")
	flags.StringVar(&f.creator, "creator", "", "Document creator")
	flags.IntVar(&f.active, "active", 0, "Index of the active sheet")
	flags.BoolVar(&f.dataOnly, "data-only", false, "Set the data-only flag")
	return cmd
}

func buildWorkbook(f newFlags) (*xlbook.Workbook, error) {
	opts := workbookOptions()
	opts.DataOnly = f.dataOnly
	wb, err := xlbook.NewWithOptions(opts)
	if err != nil {
		return nil, err
	}

	for _, raw := range f.sheets {
		title, err := wb.DecodeString([]byte(raw))
		if err != nil {
			return nil, err
		}
		if _, err := wb.CreateSheet(title); err != nil {
			return nil, err
		}
	}

	for _, code := range f.formats {
		format := models.DefaultFormat()
		format.NumberFormat = models.CustomNumberFormat(code)
		wb.AddFormat(format)
	}

	for _, raw := range f.strings {
		s, err := wb.DecodeString([]byte(raw))
		if err != nil {
			return nil, err
		}
		wb.AddSharedString(models.PlainText(s), false)
	}

	if err := wb.SetActiveSheet(f.active); err != nil {
		return nil, err
	}

	for _, def := range f.names {
		if err := addNamedRange(wb, def); err != nil {
			return nil, err
		}
	}

	props := wb.Properties()
	props.Title = f.title
	props.Creator = f.creator
	wb.SetProperties(props)
	return wb, nil
}

// addNamedRange parses NAME=SHEET!RANGE. Without a sheet the active sheet
// owns the name.
func addNamedRange(wb *xlbook.Workbook, def string) error {
	name, target, ok := strings.Cut(def, "=")
	if !ok || name == "" {
		return fmt.Errorf("invalid named range %q: want NAME=SHEET!RANGE", def)
	}

	owner := wb.ActiveSheet()
	ref := target
	if idx := strings.LastIndex(target, "!"); idx >= 0 {
		sheet, err := wb.SheetByName(strings.Trim(target[:idx], "'"))
		if err != nil {
			return err
		}
		owner = sheet
		ref = target[idx+1:]
	}
	return wb.CreateNamedRange(name, owner, ref)
}
