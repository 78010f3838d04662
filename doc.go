// Package worldmap is an in-memory world-map graph for 2D tycoon games:
// spatial nodes, capacity-carrying edges, and the queries a simulation
// layer needs: neighbors, radius lookups and shortest routes.
//
// What you get:
//
//   - Core primitives: nodes with planar coordinates and typed properties,
//     edges with throughput/flow accounting and optional one-way traversal
//   - Routing: breadth-first shortest paths with hooks, depth limits and
//     capacity-aware edge filters
//   - Persistence: a flat JSON record shape with exact round-trips,
//     ID-counter continuity included
//   - Spatial index: R-tree acceleration for radius queries on large maps
//   - Generators: deterministic grid/ring/star/random topologies plus
//     noise-driven terrain decoration
//
// Everything is organized under five subpackages:
//
//	core/    — Node, Edge and WorldMap types, CRUD and query surface
//	route/   — BFS pathfinding over a WorldMap
//	codec/   — JSON serialization of whole maps
//	spatial/ — R-tree node index for radius queries
//	mapgen/  — deterministic topology generators
//
// Quick ASCII example:
//
//	    depot───mine
//	      │       │
//	    town────mill
//
//	four nodes joined in a square; every edge carries a throughput
//	budget that routing can respect.
//
// A WorldMap instance is single-threaded by design: it owns its data
// exclusively and performs no internal locking. Wrap it yourself if you
// share one instance across goroutines.
//
//	go get github.com/tycoonlabs/worldmap
package worldmap
