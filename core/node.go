// File: node.go
// Role: Node accessors - position, distance, properties, incidence view.
//
// Determinism:
//   - ConnectedEdges() returns edge IDs sorted lexicographically ascending.
//
// Invariant:
//   - The incident set always equals the set of live edge IDs whose
//     endpoints include this node; only the owning WorldMap mutates it.
package core

import (
	"math"
	"sort"
)

// DistanceTo returns the Euclidean distance to another node.
// Symmetric; zero iff both nodes share coordinates.
func (n *Node) DistanceTo(other *Node) float64 {
	return math.Hypot(n.X-other.X, n.Y-other.Y)
}

// Position returns the node's coordinates.
func (n *Node) Position() (x, y float64) { return n.X, n.Y }

// SetPosition overwrites the node's coordinates unconditionally.
// If the node is held by a spatial.Index, reinsert it afterwards.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
}

// Property looks up a property value. The second result reports presence.
func (n *Node) Property(key string) (Prop, bool) {
	v, ok := n.Props[key]

	return v, ok
}

// PropertyOr looks up a property value, falling back to def when absent.
func (n *Node) PropertyOr(key string, def Prop) Prop {
	if v, ok := n.Props[key]; ok {
		return v
	}

	return def
}

// SetProperty stores a property value, overwriting any previous one.
func (n *Node) SetProperty(key string, v Prop) {
	if n.Props == nil {
		n.Props = make(PropertyMap)
	}
	n.Props[key] = v
}

// ConnectedEdges returns the IDs of all edges incident on this node,
// sorted ascending. The slice is a copy; mutating it has no effect.
// Complexity: O(d log d) for degree d.
func (n *Node) ConnectedEdges() []string {
	out := make([]string, 0, len(n.incident))
	for id := range n.incident {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Degree returns the number of edges incident on this node.
// Complexity: O(1).
func (n *Node) Degree() int { return len(n.incident) }

// addEdgeRef registers an incident edge ID. Idempotent.
// Called only by WorldMap.AddEdge to preserve the incidence invariant.
func (n *Node) addEdgeRef(edgeID string) {
	if n.incident == nil {
		n.incident = make(map[string]struct{})
	}
	n.incident[edgeID] = struct{}{}
}

// removeEdgeRef unregisters an incident edge ID, reporting whether it was
// tracked. Called only by WorldMap.RemoveEdge.
func (n *Node) removeEdgeRef(edgeID string) bool {
	if _, ok := n.incident[edgeID]; !ok {
		return false
	}
	delete(n.incident, edgeID)

	return true
}

// clone returns a deep copy of the node, incident set included.
func (n *Node) clone() *Node {
	c := &Node{
		ID:       n.ID,
		X:        n.X,
		Y:        n.Y,
		Name:     n.Name,
		Kind:     n.Kind,
		Props:    n.Props.Clone(),
		incident: make(map[string]struct{}, len(n.incident)),
	}
	if c.Props == nil {
		c.Props = make(PropertyMap)
	}
	for id := range n.incident {
		c.incident[id] = struct{}{}
	}

	return c
}
