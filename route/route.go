// Package route implements breadth-first search over a core.WorldMap,
// returning unweighted shortest routes, parent links, and visit order.
package route

import (
	"context"
	"fmt"

	"github.com/tycoonlabs/worldmap/core"
)

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable traversal state.
type walker struct {
	m       *core.WorldMap
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	target  string // early exit when non-empty
	res     *Result
}

// BFS runs breadth-first search on m starting from startID, applying any
// number of functional Options. Returns ErrMapNil or ErrStartNotFound for
// invalid input, ErrOptionViolation for bad options, or any user-supplied
// hook error. Complexity: O(V + E) for the reached component.
func BFS(m *core.WorldMap, startID string, opts ...Option) (*Result, error) {
	w, err := newWalker(m, startID, opts...)
	if err != nil {
		return nil, err
	}

	return w.res, w.loop()
}

// FindPath returns the route with the fewest edges from fromID to toID as
// a sequence of node IDs, endpoints included.
//
//   - Either ID absent → ErrStartNotFound / ErrTargetNotFound.
//   - fromID == toID → the trivial single-element route.
//   - No connection (directionality respected) → ErrNoRoute.
//
// Among equal-length routes the one following the lowest incident edge
// IDs wins, so results are deterministic for a fixed insertion history.
func FindPath(m *core.WorldMap, fromID, toID string, opts ...Option) ([]string, error) {
	if m == nil {
		return nil, ErrMapNil
	}
	if !m.HasNode(toID) {
		return nil, ErrTargetNotFound
	}
	w, err := newWalker(m, fromID, opts...)
	if err != nil {
		return nil, err
	}
	if fromID == toID {
		return []string{fromID}, nil
	}
	w.target = toID
	if err = w.loop(); err != nil {
		return nil, err
	}

	return w.res.PathTo(toID)
}

// newWalker validates inputs and seeds the frontier with the start node.
func newWalker(m *core.WorldMap, startID string, opts ...Option) (*walker, error) {
	if m == nil {
		return nil, ErrMapNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !m.HasNode(startID) {
		return nil, ErrStartNotFound
	}

	n := m.NodeCount()
	w := &walker{
		m:       m,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(startID, 0, "")

	return w, nil
}

// enqueue marks id visited at depth d, records its parent, fires
// OnEnqueue, and appends it to the frontier.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the frontier in FIFO order until empty, error,
// cancellation, or (when set) the target has been reached.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.expand(item); err != nil {
			return err
		}
		if w.target != "" && w.visited[w.target] {
			return nil // parent links to the target are complete
		}
	}

	return nil
}

// dequeue pops the first item and fires OnDequeue.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// visit records the node in Order and fires OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("route: OnVisit error at %q: %w", item.id, err)
	}

	return nil
}

// expand walks the incident edges of item (edge-ID order), applies the
// edge filter, directionality and MaxDepth, and enqueues unseen nodes.
func (w *walker) expand(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, e := range w.m.EdgesFrom(item.id) {
		// cancellation check inside edge iteration
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if !w.opts.FilterEdge(e) {
			continue
		}
		nbr, ok := e.OtherEnd(item.id)
		if !ok {
			// one-way edge pointing at us, or stale endpoint
			continue
		}
		if !w.m.HasNode(nbr) || w.visited[nbr] {
			continue
		}
		w.enqueue(nbr, nextDepth, item.id)
	}

	return nil
}
