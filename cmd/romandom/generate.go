package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/romandom/builder"
	"github.com/katalvlaran/romandom/graph"
)

type generateFlags struct {
	kind    string
	n       int
	n2      int
	m       int
	p       float64
	density float64
	seed    int64
	output  string
}

func newGenerateCommand() *cobra.Command {
	var gf generateFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a benchmark graph in the solver's text format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := gf.build()
			if err != nil {
				return err
			}
			if gf.output == "" {
				return graph.Write(cmd.OutOrStdout(), g)
			}

			return writeGraphFile(gf.output, g)
		},
	}
	cmd.Flags().StringVar(&gf.kind, "kind", "gnm", "topology: gnm|density|sparse|star|path|cycle|complete|empty|wheel|bipartite|grid")
	cmd.Flags().IntVarP(&gf.n, "vertices", "n", 100, "number of vertices")
	cmd.Flags().IntVar(&gf.n2, "second", 0, "second partition size (bipartite) or column count (grid)")
	cmd.Flags().IntVarP(&gf.m, "edges", "m", 0, "number of edges (gnm)")
	cmd.Flags().Float64VarP(&gf.p, "probability", "p", 0.1, "edge probability (sparse)")
	cmd.Flags().Float64Var(&gf.density, "density", 0.1, "target density (density)")
	cmd.Flags().Int64Var(&gf.seed, "seed", 1, "random seed")
	cmd.Flags().StringVarP(&gf.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func (gf generateFlags) build() (*graph.Graph, error) {
	var con builder.Constructor
	switch gf.kind {
	case "gnm":
		con = builder.RandomGNM(gf.n, gf.m)
	case "density":
		con = builder.RandomDensity(gf.n, gf.density)
	case "sparse":
		con = builder.RandomSparse(gf.n, gf.p)
	case "star":
		con = builder.Star(gf.n)
	case "path":
		con = builder.Path(gf.n)
	case "cycle":
		con = builder.Cycle(gf.n)
	case "complete":
		con = builder.Complete(gf.n)
	case "empty":
		con = builder.Empty(gf.n)
	case "wheel":
		con = builder.Wheel(gf.n)
	case "bipartite":
		con = builder.CompleteBipartite(gf.n, gf.n2)
	case "grid":
		con = builder.Grid(gf.n, gf.n2)
	default:
		return nil, fmt.Errorf("unknown graph kind %q", gf.kind)
	}

	return builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(gf.seed)}, con)
}

func writeGraphFile(path string, g *graph.Graph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return graph.Write(f, g)
}
