// Package core defines the central WorldMap, Node, and Edge types.
//
// This file declares the types themselves, their functional options,
// the package's sentinel errors, and the NewWorldMap constructor.
// Lifecycle and query methods live in the methods_*.go files.
package core

import (
	"errors"

	"github.com/google/uuid"
)

// Sentinel errors for world-map operations.
var (
	// ErrNilNode indicates a nil *Node was passed to AddNode.
	ErrNilNode = errors.New("core: node is nil")

	// ErrNilEdge indicates a nil *Edge was passed to AddEdge.
	ErrNilEdge = errors.New("core: edge is nil")

	// ErrEmptyNodeID indicates a node ID is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrEmptyEdgeID indicates an edge ID is the empty string.
	ErrEmptyEdgeID = errors.New("core: edge ID is empty")

	// ErrDuplicateNode indicates an AddNode with an ID already present.
	ErrDuplicateNode = errors.New("core: node ID already present")

	// ErrDuplicateEdge indicates an AddEdge with an ID already present.
	ErrDuplicateEdge = errors.New("core: edge ID already present")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadThroughput indicates a non-positive or non-finite edge capacity.
	ErrBadThroughput = errors.New("core: throughput must be positive and finite")

	// ErrNegativeFlow indicates a negative amount passed to AddFlow/RemoveFlow.
	ErrNegativeFlow = errors.New("core: flow amount is negative")

	// ErrCapacityExceeded indicates AddFlow would overrun the edge's throughput.
	ErrCapacityExceeded = errors.New("core: edge capacity exceeded")

	// ErrBadPropValue indicates a JSON value that no Prop kind can represent.
	ErrBadPropValue = errors.New("core: unsupported property value")
)

// Node is a point entity in the world graph.
//
// ID uniquely identifies the node within its WorldMap. X and Y are
// coordinates in an arbitrary planar space; no bounds are enforced.
// Props stores game-specific metadata.
//
// The incident-edge set is private by design: it is a cache derived from
// the owning map's edge catalog and is mutated only by the WorldMap's
// AddEdge/RemoveEdge paths, never by application code.
type Node struct {
	// ID is the unique identifier for this Node.
	ID string

	// X, Y are the node's planar coordinates.
	X, Y float64

	// Name is an optional display name.
	Name string

	// Kind is an optional classification, e.g. "city", "resource", "hub".
	Kind string

	// Props stores arbitrary game-specific metadata.
	Props PropertyMap

	// incident is the set of edge IDs currently touching this node.
	incident map[string]struct{}
}

// NodeOption configures a Node at construction time.
type NodeOption func(*Node)

// WithNodeName sets the node's display name.
func WithNodeName(name string) NodeOption {
	return func(n *Node) { n.Name = name }
}

// WithNodeKind sets the node's classification.
func WithNodeKind(kind string) NodeOption {
	return func(n *Node) { n.Kind = kind }
}

// WithNodeProps sets the node's initial property bag. The map is stored
// as-is; clone it first if the caller retains a reference.
func WithNodeProps(props PropertyMap) NodeOption {
	return func(n *Node) {
		if props != nil {
			n.Props = props
		}
	}
}

// NewNode constructs a standalone Node at (x, y). The node carries no map
// reference; attach it with WorldMap.AddNode. Coordinates are accepted
// unchecked (any finite real).
func NewNode(id string, x, y float64, opts ...NodeOption) *Node {
	n := &Node{
		ID:       id,
		X:        x,
		Y:        y,
		Props:    make(PropertyMap),
		incident: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Edge is a connection between two nodes with a flow capacity.
//
// From and To are node identifiers; the endpoints must exist in the owning
// map at insertion time. Throughput is the maximum simultaneous flow and
// must be positive. CurrentFlow is bounded to [0, Throughput]; treat it as
// read-only and mutate it via AddFlow/RemoveFlow/ResetFlow.
type Edge struct {
	// ID uniquely identifies this edge in the WorldMap.
	ID string

	// From is the source node ID.
	From string

	// To is the destination node ID.
	To string

	// Throughput is the maximum simultaneous flow (positive, finite).
	Throughput float64

	// Bidirectional marks the edge traversable in both directions.
	// When false the edge is directed: traversal is From→To only.
	Bidirectional bool

	// CurrentFlow is the capacity currently consumed, in [0, Throughput].
	CurrentFlow float64

	// Props stores arbitrary game-specific metadata.
	Props PropertyMap
}

// EdgeOption configures an Edge at construction time.
type EdgeOption func(*Edge)

// WithThroughput sets the edge's capacity. Validated by AddEdge.
func WithThroughput(c float64) EdgeOption {
	return func(e *Edge) { e.Throughput = c }
}

// WithOneWay makes the edge directed: OtherEnd(To) reports no neighbor.
func WithOneWay() EdgeOption {
	return func(e *Edge) { e.Bidirectional = false }
}

// WithEdgeProps sets the edge's initial property bag.
func WithEdgeProps(props PropertyMap) EdgeOption {
	return func(e *Edge) {
		if props != nil {
			e.Props = props
		}
	}
}

// NewEdge constructs a standalone Edge from→to with throughput 1.0,
// bidirectional traversal, and zero current flow.
func NewEdge(id, from, to string, opts ...EdgeOption) *Edge {
	e := &Edge{
		ID:            id,
		From:          from,
		To:            to,
		Throughput:    1.0,
		Bidirectional: true,
		Props:         make(PropertyMap),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// WorldMap is the in-memory world graph: a catalog of nodes, a catalog of
// edges, and the monotonic counters backing generated identifiers.
//
// The zero value is not usable; construct with NewWorldMap.
type WorldMap struct {
	// id tags the map instance. Defaults to a fresh UUID.
	id string

	// Storage: node ID → Node, edge ID → Edge.
	nodes map[string]*Node
	edges map[string]*Edge

	// ID generation state, persisted by the codec package so that
	// uniqueness survives serialization round-trips.
	nodeSeq uint64
	edgeSeq uint64
}

// MapOption configures a WorldMap before creation.
type MapOption func(*WorldMap)

// WithMapID tags the map with a caller-supplied identifier.
func WithMapID(id string) MapOption {
	return func(m *WorldMap) {
		if id != "" {
			m.id = id
		}
	}
}

// NewWorldMap creates an empty WorldMap. Unless overridden with
// WithMapID, the map is tagged with a freshly generated UUID.
// Complexity: O(1).
func NewWorldMap(opts ...MapOption) *WorldMap {
	m := &WorldMap{
		id:    uuid.NewString(),
		nodes: make(map[string]*Node),
		edges: make(map[string]*Edge),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// ID returns the map's identifier tag.
func (m *WorldMap) ID() string { return m.id }

// Counters returns the current node and edge ID counters. Persistence
// layers snapshot them so generated IDs stay unique after a reload.
func (m *WorldMap) Counters() (nodeSeq, edgeSeq uint64) {
	return m.nodeSeq, m.edgeSeq
}

// RestoreCounters overwrites the ID counters. Intended for persistence
// layers reconstructing a map; never lower a counter below the sequence
// numbers already consumed or generated IDs may collide.
func (m *WorldMap) RestoreCounters(nodeSeq, edgeSeq uint64) {
	m.nodeSeq = nodeSeq
	m.edgeSeq = edgeSeq
}
