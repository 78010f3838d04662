package core_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tycoonlabs/worldmap/core"
)

// TestProp_JSONRoundTrip verifies every kind survives marshal/unmarshal
// with exact payloads, nesting included.
func TestProp_JSONRoundTrip(t *testing.T) {
	cases := map[string]core.Prop{
		"number": core.Num(42.5),
		"string": core.Str("harbor"),
		"bool":   core.Bool(true),
		"nested": core.Nested(core.PropertyMap{
			"depth": core.Num(3),
			"inner": core.Nested(core.PropertyMap{"leaf": core.Str("x")}),
		}),
	}
	for name, p := range cases {
		data, err := json.Marshal(p)
		require.NoError(t, err, name)

		var back core.Prop
		require.NoError(t, json.Unmarshal(data, &back), name)
		require.True(t, p.Equal(back), "%s: %s changed across round-trip", name, data)
	}
}

// TestProp_UnmarshalRejectsUnsupported covers null and array inputs.
func TestProp_UnmarshalRejectsUnsupported(t *testing.T) {
	for _, raw := range []string{`null`, `[1,2]`} {
		var p core.Prop
		err := json.Unmarshal([]byte(raw), &p)
		require.Error(t, err, raw)
		require.True(t, errors.Is(err, core.ErrBadPropValue), "input %s: got %v", raw, err)
	}
}

// TestPropertyMap_Clone verifies deep independence of nested maps.
func TestPropertyMap_Clone(t *testing.T) {
	orig := core.PropertyMap{
		"yield": core.Num(7),
		"meta":  core.Nested(core.PropertyMap{"owner": core.Str("p1")}),
	}
	cp := orig.Clone()
	require.True(t, orig.Equal(cp))

	cp["yield"] = core.Num(8)
	cp["meta"].Map["owner"] = core.Str("p2")
	require.Equal(t, core.Num(7), orig["yield"])
	require.Equal(t, core.Str("p1"), orig["meta"].Map["owner"])
}

// TestPropertyMap_Equal treats nil and empty as equal and detects both
// key and value differences.
func TestPropertyMap_Equal(t *testing.T) {
	require.True(t, core.PropertyMap(nil).Equal(core.PropertyMap{}))
	a := core.PropertyMap{"k": core.Num(1)}
	require.False(t, a.Equal(core.PropertyMap{"k": core.Num(2)}))
	require.False(t, a.Equal(core.PropertyMap{"j": core.Num(1)}))
	require.False(t, a.Equal(core.PropertyMap{"k": core.Str("1")}))
}
