package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/romandom/store"
)

func newHistoryCommand() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "history [GRAPH]",
		Short: "List stored runs, optionally for one graph",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(path)
			if err != nil {
				return err
			}
			defer st.Close()

			var name string
			if len(args) == 1 {
				name = args[0]
			}
			runs, err := st.List(name)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tGRAPH\tFITNESS\tGENERATIONS\tREASON\tCREATED")
			for _, r := range runs {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%s\n",
					r.ID, r.Graph, r.Fitness, r.Generations, r.Reason,
					time.Unix(0, r.CreatedAt).UTC().Format(time.RFC3339))
			}

			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&path, "store", "romandom.db", "run history database")

	return cmd
}
