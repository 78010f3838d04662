// Package core provides the in-memory WorldMap: a container of spatial
// Nodes and capacity-carrying Edges with constant-time lookups and
// deterministic enumeration.
//
// The map M = (N, E) supports:
//
//   - Nodes with planar (x, y) coordinates, an optional name/kind, and a
//     typed property bag (Prop / PropertyMap)
//   - Edges with a positive Throughput capacity, a CurrentFlow accumulator
//     bounded to [0, Throughput], and optional one-way traversal
//   - Incidence caching: each node tracks the IDs of its incident edges,
//     maintained exclusively by the WorldMap's add/remove-edge paths
//   - Referential integrity by construction: AddEdge rejects absent
//     endpoints, RemoveNode cascades through RemoveEdge
//   - Monotonic textual ID generation ("node_0", "edge_0", ...) with
//     counters that persistence layers can snapshot and restore
//
// Configuration Options:
//
//	– WithMapID(id)          tag the map; defaults to a fresh UUID
//	– WithNodeName(name)     display name for a new Node
//	– WithNodeKind(kind)     classification ("city", "resource", ...)
//	– WithNodeProps(props)   initial property bag for a new Node
//	– WithThroughput(c)      edge capacity (must be positive and finite)
//	– WithOneWay()           directed edge: traversal From→To only
//	– WithEdgeProps(props)   initial property bag for a new Edge
//
// Failure semantics:
//
// Every expected failure (duplicate IDs, missing endpoints, capacity
// overruns) is reported to the immediate caller as a sentinel error
// (branch with errors.Is) or a comma-ok result. Nothing in this package
// panics; there are no fatal conditions in a pure in-memory structure.
//
//	ErrNilNode / ErrNilEdge         – nil record passed to Add
//	ErrEmptyNodeID / ErrEmptyEdgeID – zero-length identifier
//	ErrDuplicateNode / ErrDuplicateEdge – identifier already present
//	ErrNodeNotFound / ErrEdgeNotFound   – missing target or endpoint
//	ErrBadThroughput                – non-positive or non-finite capacity
//	ErrNegativeFlow                 – negative amount passed to a flow op
//	ErrCapacityExceeded             – AddFlow would overrun Throughput
//	ErrBadPropValue                 – unsupported JSON property value
//
// Concurrency:
//
// A WorldMap is a single-threaded structure: operations are synchronous
// in-memory mutations with no internal locking. Distinct instances may be
// used from distinct goroutines freely; sharing one instance requires
// external synchronization. Callers must not mutate the map from within a
// Nodes/Edges/Neighbors iteration.
//
// Enumeration methods (Nodes, Edges, ConnectedEdges, EdgesFrom, Neighbors,
// NodesInRadius) return results sorted by ID ascending, so downstream
// algorithms are deterministic for a fixed insertion history.
package core
