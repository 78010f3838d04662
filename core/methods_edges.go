// File: methods_edges.go
// Role: Edge lifecycle & queries on WorldMap - AddEdge/Connect/RemoveEdge/
//       GetEdge/HasEdgeBetween/Edges/EdgeCount, plus GenerateEdgeID.
//
// Determinism:
//   - Edges() returns edges sorted by Edge.ID ascending.
//   - GenerateEdgeID() is monotonic and stable ("edge_" + decimal).
//
// Invariant:
//   - Incidence is registered on BOTH endpoints regardless of
//     directionality; direction only constrains traversal (OtherEnd).
package core

import (
	"math"
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix for generated edge identifiers.
const edgeIDPrefix = "edge_"

// AddEdge inserts a pre-constructed edge.
//
// Validation happens once, here: both endpoints must already exist in the
// node catalog (ErrNodeNotFound), the ID must be fresh (ErrDuplicateEdge),
// and the throughput positive and finite (ErrBadThroughput). On success
// the edge ID is registered in the incidence sets of both endpoints.
// Complexity: O(1) amortized.
func (m *WorldMap) AddEdge(e *Edge) error {
	if e == nil {
		return ErrNilEdge
	}
	if e.ID == "" {
		return ErrEmptyEdgeID
	}
	if e.From == "" || e.To == "" {
		return ErrEmptyNodeID
	}
	if e.Throughput <= 0 || math.IsInf(e.Throughput, 0) || math.IsNaN(e.Throughput) {
		return ErrBadThroughput
	}
	if _, exists := m.edges[e.ID]; exists {
		return ErrDuplicateEdge
	}
	from, ok := m.nodes[e.From]
	if !ok {
		return ErrNodeNotFound
	}
	to, ok := m.nodes[e.To]
	if !ok {
		return ErrNodeNotFound
	}
	if e.Props == nil {
		e.Props = make(PropertyMap)
	}

	m.edges[e.ID] = e
	from.addEdgeRef(e.ID)
	to.addEdgeRef(e.ID) // symmetric even for one-way edges

	return nil
}

// Connect is the factory form of AddEdge: it generates an ID, builds the
// edge from→to with the given options, and inserts it. Unlike NewNodeAt
// it can fail: the endpoints must exist and the throughput option must
// be valid.
func (m *WorldMap) Connect(from, to string, opts ...EdgeOption) (*Edge, error) {
	e := NewEdge(m.GenerateEdgeID(), from, to, opts...)
	if err := m.AddEdge(e); err != nil {
		return nil, err
	}

	return e, nil
}

// RemoveEdge deletes an edge and unregisters it from both endpoints'
// incidence sets. Fails with ErrEdgeNotFound; a second removal with the
// same ID fails the same way and leaves the map unchanged.
// Complexity: O(1).
func (m *WorldMap) RemoveEdge(id string) error {
	e, exists := m.edges[id]
	if !exists {
		return ErrEdgeNotFound
	}
	if from, ok := m.nodes[e.From]; ok {
		from.removeEdgeRef(id)
	}
	if to, ok := m.nodes[e.To]; ok {
		to.removeEdgeRef(id)
	}
	delete(m.edges, id)

	return nil
}

// GetEdge returns the edge with the given ID, or ErrEdgeNotFound.
// The returned *Edge is live; mutate flow only through its flow methods.
// Complexity: O(1).
func (m *WorldMap) GetEdge(id string) (*Edge, error) {
	e, ok := m.edges[id]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// HasEdgeBetween reports whether at least one edge connects from and to,
// in either orientation. Complexity: O(min-degree of the two endpoints).
func (m *WorldMap) HasEdgeBetween(from, to string) bool {
	n, ok := m.nodes[from]
	if !ok {
		return false
	}
	for eid := range n.incident {
		e, ok := m.edges[eid]
		if !ok {
			continue
		}
		if (e.From == from && e.To == to) || (e.From == to && e.To == from) {
			return true
		}
	}

	return false
}

// Edges returns all edges sorted by ID ascending (stable, deterministic
// order). Complexity: O(E log E).
func (m *WorldMap) Edges() []*Edge {
	out := make([]*Edge, 0, len(m.edges))
	for _, e := range m.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (m *WorldMap) EdgeCount() int { return len(m.edges) }

// GenerateEdgeID returns a fresh edge identifier: fixed prefix plus a
// monotonically incrementing counter scoped to this map instance.
func (m *WorldMap) GenerateEdgeID() string {
	buf := make([]byte, 0, len(edgeIDPrefix)+20)
	buf = append(buf, edgeIDPrefix...)
	buf = strconv.AppendUint(buf, m.edgeSeq, 10)
	m.edgeSeq++

	return string(buf)
}
