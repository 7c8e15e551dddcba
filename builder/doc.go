// Package builder provides deterministic and seeded-random graph constructors
// for tests, examples and benchmark generation.
//
// All constructors append vertices to the graph being built, so composing
// them inside one BuildGraph call produces a disjoint union:
//
//	g, err := builder.BuildGraph(nil, builder.Star(4), builder.Star(3))
//	// vertices 0..3 form the first star (hub 0), 4..6 the second (hub 4)
//
// Topologies: Star, Path, Cycle, Complete, Empty, Wheel, CompleteBipartite, Grid.
// Random:     RandomSparse (G(n,p)), RandomGNM (exact m), RandomDensity.
//
// Random constructors need WithSeed or WithRand.
package builder
