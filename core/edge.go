// File: edge.go
// Role: Edge queries and flow accounting.
//
// Invariant:
//   - CurrentFlow stays within [0, Throughput] under any sequence of
//     AddFlow / RemoveFlow / ResetFlow calls.
//
// Directionality:
//   - Forward traversal From→To is always legal.
//   - Backward traversal To→From is legal only when Bidirectional.
package core

// Connects reports whether nodeID is one of the edge's endpoints.
func (e *Edge) Connects(nodeID string) bool {
	return nodeID == e.From || nodeID == e.To
}

// OtherEnd returns the endpoint reachable from nodeID over this edge.
// The second result is false when nodeID is not an endpoint, or when the
// edge is directed and nodeID is its destination (no backward traversal).
func (e *Edge) OtherEnd(nodeID string) (string, bool) {
	switch {
	case nodeID == e.From:
		return e.To, true
	case nodeID == e.To && e.Bidirectional:
		return e.From, true
	}

	return "", false
}

// CapacityRemaining returns the throughput still available, never negative.
func (e *Edge) CapacityRemaining() float64 {
	if rem := e.Throughput - e.CurrentFlow; rem > 0 {
		return rem
	}

	return 0
}

// AtCapacity reports whether the edge has no spare throughput.
func (e *Edge) AtCapacity() bool { return e.CurrentFlow >= e.Throughput }

// CanAccommodate reports whether amount more flow fits under Throughput.
func (e *Edge) CanAccommodate(amount float64) bool {
	return e.CurrentFlow+amount <= e.Throughput
}

// AddFlow consumes amount of capacity. Negative amounts are rejected with
// ErrNegativeFlow (they are not an implicit RemoveFlow); an amount that
// would overrun Throughput is rejected with ErrCapacityExceeded and the
// edge is left unchanged.
func (e *Edge) AddFlow(amount float64) error {
	if amount < 0 {
		return ErrNegativeFlow
	}
	if !e.CanAccommodate(amount) {
		return ErrCapacityExceeded
	}
	e.CurrentFlow += amount

	return nil
}

// RemoveFlow releases amount of capacity, saturating at zero: removing
// more than currently flows is not an error. Negative amounts are rejected
// with ErrNegativeFlow.
func (e *Edge) RemoveFlow(amount float64) error {
	if amount < 0 {
		return ErrNegativeFlow
	}
	e.CurrentFlow -= amount
	if e.CurrentFlow < 0 {
		e.CurrentFlow = 0
	}

	return nil
}

// ResetFlow sets CurrentFlow to zero unconditionally.
func (e *Edge) ResetFlow() { e.CurrentFlow = 0 }

// clone returns a deep copy of the edge.
func (e *Edge) clone() *Edge {
	c := *e
	c.Props = e.Props.Clone()
	if c.Props == nil {
		c.Props = make(PropertyMap)
	}

	return &c
}
