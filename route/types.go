// Package route provides tunable options and error definitions for
// breadth-first traversal over a core.WorldMap.
package route

import (
	"context"
	"errors"
	"fmt"

	"github.com/tycoonlabs/worldmap/core"
)

// Sentinel errors for route execution.
var (
	// ErrMapNil is returned if a nil map pointer is passed.
	ErrMapNil = errors.New("route: world map is nil")

	// ErrStartNotFound is returned when the start node ID is absent.
	ErrStartNotFound = errors.New("route: start node not found")

	// ErrTargetNotFound is returned when the target node ID is absent.
	ErrTargetNotFound = errors.New("route: target node not found")

	// ErrNoRoute is returned when the search space is exhausted without
	// reaching the target.
	ErrNoRoute = errors.New("route: no route between nodes")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("route: invalid option supplied")
)

// Option configures traversal behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded internally and
// surfaced as ErrOptionViolation when the traversal is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this many hops.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterEdge can skip edges by returning false. Called once per
	// incident edge before traversal direction is even considered.
	FilterEdge func(e *core.Edge) bool

	// OnEnqueue is called when a node is enqueued, before visiting.
	OnEnqueue func(id string, depth int)

	// OnDequeue is called immediately before visiting a node.
	OnDequeue func(id string, depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// the traversal aborts and propagates that error.
	OnVisit func(id string, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all edges allowed)
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		MaxDepth:   0,
		FilterEdge: func(*core.Edge) bool { return true },
		OnEnqueue:  func(string, int) {},
		OnDequeue:  func(string, int) {},
		OnVisit:    func(string, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search at the given hop count.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterEdge skips edges when fn returns false.
func WithFilterEdge(fn func(e *core.Edge) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// WithSpareCapacity routes only over edges that can still accommodate
// amount more flow, so convoys avoid saturated roads. A negative amount
// is an option violation.
func WithSpareCapacity(amount float64) Option {
	return func(o *Options) {
		if amount < 0 {
			o.err = fmt.Errorf("%w: spare capacity cannot be negative (%g)", ErrOptionViolation, amount)
			return
		}
		o.FilterEdge = func(e *core.Edge) bool { return e.CanAccommodate(amount) }
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the traversal.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a breadth-first traversal:
//   - Order: node IDs in visit sequence.
//   - Depth: map from node ID to its distance (in edges) from the start.
//   - Parent: map from node ID to its predecessor in the BFS tree.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the start→dest path from the parent links.
// Returns ErrNoRoute if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %q unreached", ErrNoRoute, dest)
	}
	// build reversed path
	path := make([]string, 0, r.Depth[dest]+1)
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
