package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/romandom/report"
)

func newExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export CSV XLSX",
		Short: "Convert a results CSV log into an XLSX report",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := report.ReadCSV(args[0])
			if err != nil {
				return err
			}
			if err = report.WriteXLSX(args[1], recs); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d records written to %s\n", len(recs), args[1])

			return nil
		},
	}
}
