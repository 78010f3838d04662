// Package mapgen assembles deterministic world map fixtures from
// composable topology constructors.
//
// Build is the single entry point: it creates a core.WorldMap, resolves
// the generation options into an immutable config, and applies the
// given constructors in order. The same options, seed and constructor
// order always produce an identical map, which makes generated maps
// usable as test fixtures and as reproducible starting terrain.
//
//	m, err := mapgen.Build(nil,
//	    []mapgen.Option{mapgen.WithSeed(7), mapgen.WithSpacing(25)},
//	    mapgen.Grid(4, 4),
//	    mapgen.Elevation(80),
//	)
//
// Constructors validate their parameters early and return sentinel
// errors; they never panic. Stochastic constructors draw from the
// config's seeded RNG only, so a frozen seed freezes the output.
package mapgen
