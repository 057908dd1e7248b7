package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/xlbook-go/pkg/xlbook"
)

func newInspectCmd() *cobra.Command {
	var readOnly bool

	cmd := &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "Print the package structure of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := workbookOptions()
			opts.ReadOnly = readOnly

			wb, err := xlbook.Open(args[0], opts)
			if err != nil {
				return fmt.Errorf("open failed: %w", err)
			}
			return writeSummary(cmd, wb)
		},
	}

	cmd.Flags().BoolVar(&readOnly, "read-only", true, "Open the workbook read-only")
	return cmd
}
