// File: props.go
// Role: Typed property values for node/edge metadata.
//
// The original "anything goes" metadata contract is kept, but behind a
// small tagged union so property bags stay type-safe and serialize to
// plain JSON values (number / string / bool / nested object).
package core

import (
	"encoding/json"
	"fmt"
)

// PropKind discriminates the value stored in a Prop.
type PropKind uint8

const (
	// KindNumber holds a float64 in Prop.Num.
	KindNumber PropKind = iota
	// KindString holds a string in Prop.Str.
	KindString
	// KindBool holds a bool in Prop.Bool.
	KindBool
	// KindMap holds a nested PropertyMap in Prop.Map.
	KindMap
)

// Prop is a tagged-union property value. Exactly one payload field is
// meaningful, selected by Kind. Construct with Num, Str, Bool or Nested.
type Prop struct {
	Kind PropKind
	Num  float64
	Str  string
	Bool bool
	Map  PropertyMap
}

// Num wraps a numeric property value.
func Num(v float64) Prop { return Prop{Kind: KindNumber, Num: v} }

// Str wraps a string property value.
func Str(s string) Prop { return Prop{Kind: KindString, Str: s} }

// Bool wraps a boolean property value.
func Bool(b bool) Prop { return Prop{Kind: KindBool, Bool: b} }

// Nested wraps a nested property map.
func Nested(m PropertyMap) Prop { return Prop{Kind: KindMap, Map: m} }

// Equal reports deep equality of two property values.
func (p Prop) Equal(q Prop) bool {
	if p.Kind != q.Kind {
		return false
	}
	switch p.Kind {
	case KindNumber:
		return p.Num == q.Num
	case KindString:
		return p.Str == q.Str
	case KindBool:
		return p.Bool == q.Bool
	case KindMap:
		return p.Map.Equal(q.Map)
	}

	return false
}

// MarshalJSON encodes the payload as a bare JSON value.
func (p Prop) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case KindNumber:
		return json.Marshal(p.Num)
	case KindString:
		return json.Marshal(p.Str)
	case KindBool:
		return json.Marshal(p.Bool)
	case KindMap:
		if p.Map == nil {
			return json.Marshal(PropertyMap{})
		}
		return json.Marshal(p.Map)
	}

	return nil, fmt.Errorf("%w: unknown kind %d", ErrBadPropValue, p.Kind)
}

// UnmarshalJSON decodes a bare JSON value into the matching kind.
// Arrays and null have no Prop representation and yield ErrBadPropValue.
func (p *Prop) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrBadPropValue, err)
	}
	switch v := raw.(type) {
	case float64:
		*p = Num(v)
	case string:
		*p = Str(v)
	case bool:
		*p = Bool(v)
	case map[string]interface{}:
		// Re-decode through PropertyMap so nesting stays typed.
		var m PropertyMap
		if err := json.Unmarshal(data, &m); err != nil {
			return err
		}
		*p = Nested(m)
	default:
		return fmt.Errorf("%w: %T", ErrBadPropValue, raw)
	}

	return nil
}

// PropertyMap is an open-ended mapping from string keys to typed values.
type PropertyMap map[string]Prop

// Clone returns a deep copy; nested maps are cloned recursively.
// A nil receiver clones to nil.
func (pm PropertyMap) Clone() PropertyMap {
	if pm == nil {
		return nil
	}
	out := make(PropertyMap, len(pm))
	for k, v := range pm {
		if v.Kind == KindMap {
			v.Map = v.Map.Clone()
		}
		out[k] = v
	}

	return out
}

// Equal reports whether two maps hold the same keys and equal values.
// nil and empty maps compare equal.
func (pm PropertyMap) Equal(other PropertyMap) bool {
	if len(pm) != len(other) {
		return false
	}
	for k, v := range pm {
		w, ok := other[k]
		if !ok || !v.Equal(w) {
			return false
		}
	}

	return true
}
