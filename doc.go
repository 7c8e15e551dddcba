// Package romandom searches for minimum-weight Roman and Perfect Roman
// dominating functions of undirected graphs.
//
// A Roman labeling f: V → {0,1,2} is feasible when every vertex labeled 0
// has a neighbor labeled 2; it is perfect when that neighbor is unique.
// The weight of f is the sum of its labels.
//
// Layout:
//
//	graph/    - simple undirected graph over ids 0..n-1 + text reader/writer
//	builder/  - deterministic and seeded-random graph constructors
//	roman/    - labelings, dominance counts, decoders, weight reduction, repair
//	ga/       - genetic-algorithm driver, parallel trials
//	config/   - YAML + environment configuration with validation
//	report/   - CSV result log and XLSX workbook export
//	store/    - bolthold run history (best solution per graph, warm starts)
//	metrics/  - Prometheus collectors fed from generation callbacks
//	cmd/romandom - command-line front end
//
// Quick example:
//
//	g, _ := builder.BuildGraph(nil, builder.Cycle(6))
//	res, _ := ga.Run(ctx, g, ga.DefaultOptions())
//	fmt.Println(res.Best.Cost) // 4
//
// Install the CLI:
//
//	go install github.com/katalvlaran/romandom/cmd/romandom@latest
package romandom
