// File: methods_queries.go
// Role: Adjacency, radius and snapshot queries - EdgesFrom/Neighbors/
//       NeighborIDs/NodesInRadius/Clear/Stats.
//
// Determinism:
//   - All enumerations follow ID-ascending order; the neighbor order is
//     therefore stable for a fixed insertion history, which fixes the
//     tie-break among equal-length routes downstream.
package core

// EdgesFrom returns all edges incident on nodeID, in edge-ID order.
// The node's cached incidence set drives the lookup; IDs that no longer
// resolve in the edge catalog are skipped defensively. An unknown node
// yields nil. Complexity: O(d log d).
func (m *WorldMap) EdgesFrom(nodeID string) []*Edge {
	n, ok := m.nodes[nodeID]
	if !ok {
		return nil
	}
	out := make([]*Edge, 0, len(n.incident))
	for _, eid := range n.ConnectedEdges() {
		if e, live := m.edges[eid]; live {
			out = append(out, e)
		}
	}

	return out
}

// Neighbors returns the nodes reachable from nodeID in one hop,
// honoring directionality: a one-way edge contributes a neighbor only in
// the outward direction. Order follows the incident edge-ID order; a
// neighbor reachable over several edges appears once per edge.
// Complexity: O(d log d).
func (m *WorldMap) Neighbors(nodeID string) []*Node {
	edges := m.EdgesFrom(nodeID)
	out := make([]*Node, 0, len(edges))
	for _, e := range edges {
		otherID, ok := e.OtherEnd(nodeID)
		if !ok {
			continue
		}
		if other, live := m.nodes[otherID]; live {
			out = append(out, other)
		}
	}

	return out
}

// NeighborIDs returns the IDs of the nodes reachable from nodeID in one
// hop, deduplicated, in first-reached order.
func (m *WorldMap) NeighborIDs(nodeID string) []string {
	neighbors := m.Neighbors(nodeID)
	seen := make(map[string]struct{}, len(neighbors))
	out := make([]string, 0, len(neighbors))
	for _, n := range neighbors {
		if _, dup := seen[n.ID]; dup {
			continue
		}
		seen[n.ID] = struct{}{}
		out = append(out, n.ID)
	}

	return out
}

// NodesInRadius returns every node whose Euclidean distance from (cx, cy)
// is at most radius, boundary inclusive. Results are sorted by
// node ID. A negative radius yields no nodes.
//
// This linear scan is the canonical semantics; the spatial package offers
// an R-tree index with identical results for large maps.
// Complexity: O(V log V).
func (m *WorldMap) NodesInRadius(cx, cy, radius float64) []*Node {
	if radius < 0 {
		return nil
	}
	probe := Node{X: cx, Y: cy}
	out := make([]*Node, 0)
	for _, n := range m.Nodes() {
		if n.DistanceTo(&probe) <= radius {
			out = append(out, n)
		}
	}

	return out
}

// Clear empties both catalogs unconditionally. The map tag and ID
// counters are preserved, so generated IDs stay unique across a Clear.
func (m *WorldMap) Clear() {
	m.nodes = make(map[string]*Node)
	m.edges = make(map[string]*Edge)
}

// MapStats is a read-only snapshot of catalog sizes and edge totals.
type MapStats struct {
	NodeCount           int
	EdgeCount           int
	DirectedEdgeCount   int
	UndirectedEdgeCount int

	// TotalThroughput and TotalFlow aggregate the capacity budget and the
	// capacity currently consumed across all edges.
	TotalThroughput float64
	TotalFlow       float64
}

// Stats produces a deterministic snapshot of the map, classifying edges
// by directionality and summing capacity usage. Complexity: O(E).
func (m *WorldMap) Stats() *MapStats {
	stats := MapStats{
		NodeCount: len(m.nodes),
		EdgeCount: len(m.edges),
	}
	for _, e := range m.edges {
		if e.Bidirectional {
			stats.UndirectedEdgeCount++
		} else {
			stats.DirectedEdgeCount++
		}
		stats.TotalThroughput += e.Throughput
		stats.TotalFlow += e.CurrentFlow
	}

	return &stats
}
