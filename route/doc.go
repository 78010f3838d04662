// Package route provides breadth-first pathfinding over a core.WorldMap:
// minimum-edge-count routes, traversal hooks, depth limiting, and
// capacity-aware edge filtering.
//
// FindPath answers the everyday question: the shortest route between two
// nodes, as a slice of node IDs. BFS exposes the full traversal result
// (visit order, depths, parent links) for callers that need more than one
// destination.
//
// Traversal honors edge directionality: a one-way edge is expanded only
// in its forward direction. Neighbor expansion follows incident edge IDs
// in ascending order, so ties among equal-length routes resolve
// deterministically for a fixed insertion history.
//
// The searched map must not be mutated while a traversal is running.
package route
