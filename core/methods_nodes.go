// File: methods_nodes.go
// Role: Node lifecycle & queries on WorldMap - AddNode/NewNodeAt/
//       RemoveNode/GetNode/HasNode/Nodes/NodeIDs/NodeCount, plus
//       GenerateNodeID.
//
// Determinism:
//   - Nodes()/NodeIDs() return results sorted by ID ascending.
//   - GenerateNodeID() is monotonic and stable ("node_" + decimal).
package core

import (
	"sort"
	"strconv"
)

// nodeIDPrefix is the textual prefix for generated node identifiers,
// yielding stable human-readable IDs like "node_0", "node_1", ...
const nodeIDPrefix = "node_"

// AddNode inserts a pre-constructed node.
//
// Fails with ErrNilNode, ErrEmptyNodeID, or ErrDuplicateNode; on a
// duplicate the existing entry is left untouched. The node's property bag
// and incidence set are initialized if the caller left them nil.
// Complexity: O(1) amortized.
func (m *WorldMap) AddNode(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	if n.ID == "" {
		return ErrEmptyNodeID
	}
	if _, exists := m.nodes[n.ID]; exists {
		return ErrDuplicateNode
	}
	if n.Props == nil {
		n.Props = make(PropertyMap)
	}
	if n.incident == nil {
		n.incident = make(map[string]struct{})
	}
	m.nodes[n.ID] = n

	return nil
}

// NewNodeAt is the factory form of AddNode: it generates an ID, builds
// the node at (x, y) with the given options, inserts it, and returns it.
// Generated IDs are unique within the map instance, so insertion cannot
// fail.
func (m *WorldMap) NewNodeAt(x, y float64, opts ...NodeOption) *Node {
	n := NewNode(m.GenerateNodeID(), x, y, opts...)
	m.nodes[n.ID] = n

	return n
}

// RemoveNode deletes a node and cascades: every edge incident on it is
// removed through the regular RemoveEdge path, so the opposite endpoint's
// incidence set is unregistered too.
//
// Fails with ErrNodeNotFound; a second removal with the same ID fails the
// same way and leaves the map unchanged.
// Complexity: O(d log d) for degree d.
func (m *WorldMap) RemoveNode(id string) error {
	n, exists := m.nodes[id]
	if !exists {
		return ErrNodeNotFound
	}

	// Snapshot the incidence set first: RemoveEdge mutates it underfoot.
	for _, eid := range n.ConnectedEdges() {
		_ = m.RemoveEdge(eid)
	}
	delete(m.nodes, id)

	return nil
}

// GetNode returns the node with the given ID, or ErrNodeNotFound.
// The returned *Node is live; treat topology-related state as read-only.
// Complexity: O(1).
func (m *WorldMap) GetNode(id string) (*Node, error) {
	n, ok := m.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return n, nil
}

// HasNode reports whether the node ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (m *WorldMap) HasNode(id string) bool {
	if id == "" {
		return false
	}
	_, ok := m.nodes[id]

	return ok
}

// Nodes returns all nodes sorted by ID ascending (stable enumeration
// surface; rely on it for reproducible outputs).
// Complexity: O(V log V).
func (m *WorldMap) Nodes() []*Node {
	out := make([]*Node, 0, len(m.nodes))
	for _, n := range m.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// NodeIDs returns all node IDs sorted ascending.
// Complexity: O(V log V).
func (m *WorldMap) NodeIDs() []string {
	out := make([]string, 0, len(m.nodes))
	for id := range m.nodes {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (m *WorldMap) NodeCount() int { return len(m.nodes) }

// GenerateNodeID returns a fresh node identifier: the fixed prefix plus a
// monotonically incrementing counter scoped to this map instance. Unique
// within the instance's lifetime; persist the counters (Counters /
// RestoreCounters) to keep uniqueness across serialization round-trips.
func (m *WorldMap) GenerateNodeID() string {
	buf := make([]byte, 0, len(nodeIDPrefix)+20)
	buf = append(buf, nodeIDPrefix...)
	buf = strconv.AppendUint(buf, m.nodeSeq, 10)
	m.nodeSeq++

	return string(buf)
}
