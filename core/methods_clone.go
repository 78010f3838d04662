// File: methods_clone.go
// Role: Deep copy of a WorldMap.
package core

// Clone returns a deep copy: nodes, edges, property bags, incidence sets
// and ID counters are all duplicated, so mutations on either side never
// leak to the other. The clone keeps the same map tag.
// Complexity: O(V + E) plus property sizes.
func (m *WorldMap) Clone() *WorldMap {
	c := &WorldMap{
		id:      m.id,
		nodes:   make(map[string]*Node, len(m.nodes)),
		edges:   make(map[string]*Edge, len(m.edges)),
		nodeSeq: m.nodeSeq,
		edgeSeq: m.edgeSeq,
	}
	for id, n := range m.nodes {
		c.nodes[id] = n.clone()
	}
	for id, e := range m.edges {
		c.edges[id] = e.clone()
	}

	return c
}
