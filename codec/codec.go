// Package codec implements the JSON persistence of core.WorldMap.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/tycoonlabs/worldmap/core"
)

// Sentinel errors for encoding/decoding.
var (
	// ErrNilMap is returned when a nil map pointer is passed to Encode.
	ErrNilMap = errors.New("codec: world map is nil")

	// ErrMalformedRecord is returned for input that cannot be decoded
	// into a consistent record (bad JSON, ID mismatches, bad capacities).
	ErrMalformedRecord = errors.New("codec: malformed world map record")

	// ErrDanglingEdge is returned when an edge record references a node
	// absent from the record's node catalog.
	ErrDanglingEdge = errors.New("codec: edge references missing node")

	// ErrFlowOutOfRange is returned when an edge record carries a flow
	// outside [0, throughput].
	ErrFlowOutOfRange = errors.New("codec: edge flow outside [0, throughput]")
)

// NodeRecord is the persisted form of a core.Node.
type NodeRecord struct {
	ID             string           `json:"id"`
	X              float64          `json:"x"`
	Y              float64          `json:"y"`
	Name           string           `json:"name,omitempty"`
	Kind           string           `json:"type,omitempty"`
	Properties     core.PropertyMap `json:"properties,omitempty"`
	ConnectedEdges []string         `json:"connected_edges"`
}

// EdgeRecord is the persisted form of a core.Edge.
type EdgeRecord struct {
	ID            string           `json:"id"`
	From          string           `json:"from"`
	To            string           `json:"to"`
	Throughput    float64          `json:"throughput"`
	Bidirectional bool             `json:"bidirectional"`
	CurrentFlow   float64          `json:"current_flow"`
	Properties    core.PropertyMap `json:"properties,omitempty"`
}

// MapRecord is the persisted form of a whole core.WorldMap.
type MapRecord struct {
	ID          string                `json:"id"`
	Nodes       map[string]NodeRecord `json:"nodes"`
	Edges       map[string]EdgeRecord `json:"edges"`
	NodeCounter uint64                `json:"node_counter"`
	EdgeCounter uint64                `json:"edge_counter"`
}

// Encode snapshots m into a MapRecord. The record owns deep copies of all
// property bags, so later map mutations do not bleed into it.
// Complexity: O(V + E) plus property sizes.
func Encode(m *core.WorldMap) (*MapRecord, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	nodeSeq, edgeSeq := m.Counters()
	rec := &MapRecord{
		ID:          m.ID(),
		Nodes:       make(map[string]NodeRecord, m.NodeCount()),
		Edges:       make(map[string]EdgeRecord, m.EdgeCount()),
		NodeCounter: nodeSeq,
		EdgeCounter: edgeSeq,
	}
	for _, n := range m.Nodes() {
		rec.Nodes[n.ID] = NodeRecord{
			ID:             n.ID,
			X:              n.X,
			Y:              n.Y,
			Name:           n.Name,
			Kind:           n.Kind,
			Properties:     n.Props.Clone(),
			ConnectedEdges: n.ConnectedEdges(),
		}
	}
	for _, e := range m.Edges() {
		rec.Edges[e.ID] = EdgeRecord{
			ID:            e.ID,
			From:          e.From,
			To:            e.To,
			Throughput:    e.Throughput,
			Bidirectional: e.Bidirectional,
			CurrentFlow:   e.CurrentFlow,
			Properties:    e.Props.Clone(),
		}
	}

	return rec, nil
}

// Decode reconstructs a WorldMap from a record: nodes first, then edges
// replayed through core.AddEdge in ID order so incidence sets are rebuilt
// and referential integrity is enforced rather than assumed.
//
// Any inconsistency aborts with a sentinel; a partially-valid map is
// never returned.
func Decode(rec *MapRecord) (*core.WorldMap, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: nil record", ErrMalformedRecord)
	}
	m := core.NewWorldMap(core.WithMapID(rec.ID))

	for _, key := range sortedKeys(rec.Nodes) {
		nr := rec.Nodes[key]
		if nr.ID != key {
			return nil, fmt.Errorf("%w: node key %q carries ID %q", ErrMalformedRecord, key, nr.ID)
		}
		n := core.NewNode(nr.ID, nr.X, nr.Y,
			core.WithNodeName(nr.Name),
			core.WithNodeKind(nr.Kind),
			core.WithNodeProps(nr.Properties.Clone()),
		)
		if err := m.AddNode(n); err != nil {
			return nil, fmt.Errorf("%w: node %q: %v", ErrMalformedRecord, key, err)
		}
	}

	for _, key := range sortedKeys(rec.Edges) {
		er := rec.Edges[key]
		if er.ID != key {
			return nil, fmt.Errorf("%w: edge key %q carries ID %q", ErrMalformedRecord, key, er.ID)
		}
		if er.CurrentFlow < 0 || er.CurrentFlow > er.Throughput {
			return nil, fmt.Errorf("%w: edge %q: flow %g, throughput %g",
				ErrFlowOutOfRange, key, er.CurrentFlow, er.Throughput)
		}
		e := core.NewEdge(er.ID, er.From, er.To,
			core.WithThroughput(er.Throughput),
			core.WithEdgeProps(er.Properties.Clone()),
		)
		e.Bidirectional = er.Bidirectional
		e.CurrentFlow = er.CurrentFlow
		if err := m.AddEdge(e); err != nil {
			if errors.Is(err, core.ErrNodeNotFound) {
				return nil, fmt.Errorf("%w: edge %q (%s→%s)", ErrDanglingEdge, key, er.From, er.To)
			}
			return nil, fmt.Errorf("%w: edge %q: %v", ErrMalformedRecord, key, err)
		}
	}

	m.RestoreCounters(rec.NodeCounter, rec.EdgeCounter)

	return m, nil
}

// Marshal encodes m straight to JSON bytes.
func Marshal(m *core.WorldMap) ([]byte, error) {
	rec, err := Encode(m)
	if err != nil {
		return nil, err
	}

	return json.Marshal(rec)
}

// Unmarshal decodes JSON bytes into a reconstructed WorldMap.
// Undecodable input is reported as ErrMalformedRecord.
func Unmarshal(data []byte) (*core.WorldMap, error) {
	var rec MapRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	return Decode(&rec)
}

// sortedKeys returns the map's keys in ascending order, for a
// deterministic decode sequence.
func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
