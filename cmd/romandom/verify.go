package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/romandom/graph"
	"github.com/katalvlaran/romandom/roman"
)

func newVerifyCommand() *cobra.Command {
	var variant string
	cmd := &cobra.Command{
		Use:   "verify GRAPH LABELS",
		Short: "Check a labeling file (whitespace-separated 0/1/2) against a graph",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := roman.Perfect
			switch variant {
			case "perfect":
			case "standard":
				v = roman.Standard
			default:
				return fmt.Errorf("unknown variant %q", variant)
			}
			g, err := graph.ReadFile(args[0])
			if err != nil {
				return err
			}
			f, err := readLabels(args[1])
			if err != nil {
				return err
			}
			if err = roman.Verify(g, f, v); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "feasible %s labeling, cost %d\n", v, f.Cost())

			return nil
		},
	}
	cmd.Flags().StringVar(&variant, "variant", "perfect", "perfect|standard")

	return cmd
}

func readLabels(path string) (roman.Labeling, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(string(raw))
	xs := make([]int, len(fields))
	for i, s := range fields {
		if xs[i], err = strconv.Atoi(s); err != nil {
			return nil, fmt.Errorf("%s: label %d: %w", path, i, err)
		}
	}
	f, err := roman.FromInts(xs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}
