// Package codec serializes a core.WorldMap to and from a flat JSON
// record: a map tag, node records keyed by ID, edge records keyed by ID,
// and the ID-generation counters.
//
// The record shape:
//
//	{
//	  "id": "...",
//	  "nodes": { "<nodeID>": { "id", "x", "y", "name", "type",
//	                           "properties", "connected_edges" } },
//	  "edges": { "<edgeID>": { "id", "from", "to", "throughput",
//	                           "bidirectional", "current_flow",
//	                           "properties" } },
//	  "node_counter": 0,
//	  "edge_counter": 0
//	}
//
// Decoding reconstructs nodes first, then replays edges through
// core.AddEdge, so incidence sets and referential integrity are rebuilt
// from the ground truth rather than trusted from the input; the
// connected_edges lists in the record are informational. Malformed or
// inconsistent input yields a distinct error (ErrMalformedRecord,
// ErrDanglingEdge, ErrFlowOutOfRange) and never a partially-valid map.
//
// Round-trips are exact: coordinates, properties, flow state and the ID
// counters all survive encode/decode bit-identically.
package codec
