// Package spatial provides an R-tree index over the nodes of a
// core.WorldMap for fast proximity queries on large maps.
//
// core.WorldMap answers NodesInRadius by scanning every node, which is
// fine up to a few thousand nodes. Index trades a little bookkeeping
// for O(log V) window queries: candidates come out of the R-tree by
// bounding box, then an exact Euclidean distance check trims the box
// corners.
//
// The index is a snapshot plus explicit maintenance. Build it with
// NewIndex and mirror later topology changes through Insert and Remove;
// it does not observe the map on its own. Like the rest of the
// module it performs no internal locking.
package spatial
