package spatial

import (
	"errors"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/tycoonlabs/worldmap/core"
)

var (
	// ErrNilMap is returned by NewIndex for a nil map pointer.
	ErrNilMap = errors.New("spatial: world map is nil")

	// ErrNotIndexed is returned by Remove for an unknown node ID.
	ErrNotIndexed = errors.New("spatial: node not indexed")
)

// pointTol inflates a node's degenerate point rectangle so the R-tree
// accepts it; it also pads query windows against zero-area rects.
const pointTol = 1e-9

// Branching factors per tree node, same for every index.
const (
	minBranch = 25
	maxBranch = 50
)

// entry is one indexed node: its ID, exact position, and the tiny
// rectangle registered with the R-tree.
type entry struct {
	id  string
	at  orb.Point
	box rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect { return e.box }

func newEntry(n *core.Node) *entry {
	return &entry{
		id:  n.ID,
		at:  orb.Point{n.X, n.Y},
		box: rtreego.Point{n.X, n.Y}.ToRect(pointTol),
	}
}

// Index is a 2D R-tree over node positions.
type Index struct {
	tree    *rtreego.Rtree
	entries map[string]*entry
}

// NewIndex bulk-loads every node of m into a fresh index.
// Complexity: O(V log V).
func NewIndex(m *core.WorldMap) (*Index, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	nodes := m.Nodes()
	entries := make(map[string]*entry, len(nodes))
	objs := make([]rtreego.Spatial, 0, len(nodes))
	for _, n := range nodes {
		e := newEntry(n)
		entries[n.ID] = e
		objs = append(objs, e)
	}

	return &Index{
		tree:    rtreego.NewTree(2, minBranch, maxBranch, objs...),
		entries: entries,
	}, nil
}

// Len reports how many nodes are indexed.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Insert registers n's position. Re-inserting an already indexed node
// replaces its stored position, so Insert doubles as the move hook
// after Node.SetPosition.
func (ix *Index) Insert(n *core.Node) error {
	if n == nil {
		return core.ErrNilNode
	}
	if old, ok := ix.entries[n.ID]; ok {
		ix.tree.Delete(old)
	}
	e := newEntry(n)
	ix.entries[n.ID] = e
	ix.tree.Insert(e)

	return nil
}

// Remove drops a node from the index.
func (ix *Index) Remove(id string) error {
	e, ok := ix.entries[id]
	if !ok {
		return ErrNotIndexed
	}
	ix.tree.Delete(e)
	delete(ix.entries, id)

	return nil
}

// InRadius returns the IDs of indexed nodes within radius of (cx, cy),
// boundary inclusive, in ascending ID order. A negative radius matches
// nothing. Complexity: O(log V + k) for k candidates in the window.
func (ix *Index) InRadius(cx, cy, radius float64) []string {
	if radius < 0 {
		return nil
	}
	side := 2 * (radius + pointTol)
	window, err := rtreego.NewRect(
		rtreego.Point{cx - radius - pointTol, cy - radius - pointTol},
		[]float64{side, side},
	)
	if err != nil {
		return nil
	}

	center := orb.Point{cx, cy}
	var out []string
	for _, hit := range ix.tree.SearchIntersect(window) {
		e := hit.(*entry)
		// The window is square; cut the corners with the exact distance.
		if planar.Distance(center, e.at) <= radius {
			out = append(out, e.id)
		}
	}
	sort.Strings(out)

	return out
}

// Bound reports the axis-aligned bounding box of all indexed nodes and
// false when the index is empty.
func (ix *Index) Bound() (orb.Bound, bool) {
	if len(ix.entries) == 0 {
		return orb.Bound{}, false
	}
	first := true
	var b orb.Bound
	for _, e := range ix.entries {
		if first {
			b = orb.Bound{Min: e.at, Max: e.at}
			first = false
			continue
		}
		b = b.Extend(e.at)
	}

	return b, true
}
