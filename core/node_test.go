package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tycoonlabs/worldmap/core"
)

// TestNode_DistanceTo checks symmetry, identity and a known 3-4-5 triangle.
func TestNode_DistanceTo(t *testing.T) {
	a := core.NewNode("a", 0, 0)
	b := core.NewNode("b", 3, 4)

	require.Equal(t, 5.0, a.DistanceTo(b))
	require.Equal(t, a.DistanceTo(b), b.DistanceTo(a), "distance must be symmetric")
	require.Zero(t, a.DistanceTo(a))

	// Zero distance for distinct nodes at the same coordinates.
	c := core.NewNode("c", 0, 0)
	require.Zero(t, a.DistanceTo(c))
}

// TestNode_Position verifies the unconditional overwrite contract.
func TestNode_Position(t *testing.T) {
	n := core.NewNode("n", 1, 2)
	x, y := n.Position()
	require.Equal(t, 1.0, x)
	require.Equal(t, 2.0, y)

	n.SetPosition(-7.5, 1e9)
	x, y = n.Position()
	require.Equal(t, -7.5, x)
	require.Equal(t, 1e9, y)
}

// TestNode_Properties covers comma-ok lookup, defaults and overwrite.
func TestNode_Properties(t *testing.T) {
	n := core.NewNode("n", 0, 0, core.WithNodeProps(core.PropertyMap{
		"population": core.Num(1200),
	}))

	v, ok := n.Property("population")
	require.True(t, ok)
	require.Equal(t, core.Num(1200), v)

	_, ok = n.Property("missing")
	require.False(t, ok)
	require.Equal(t, core.Str("fallback"), n.PropertyOr("missing", core.Str("fallback")))

	n.SetProperty("population", core.Num(1300))
	require.Equal(t, core.Num(1300), n.PropertyOr("population", core.Num(0)))
}

// TestNode_Options verifies name and kind options.
func TestNode_Options(t *testing.T) {
	n := core.NewNode("n", 0, 0, core.WithNodeName("Port Arthur"), core.WithNodeKind("city"))
	require.Equal(t, "Port Arthur", n.Name)
	require.Equal(t, "city", n.Kind)
}

// TestNode_ConnectedEdgesIsACopy ensures callers cannot corrupt the
// incidence cache through the returned slice.
func TestNode_ConnectedEdgesIsACopy(t *testing.T) {
	m := core.NewWorldMap()
	a := m.NewNodeAt(0, 0)
	b := m.NewNodeAt(1, 0)
	e, err := m.Connect(a.ID, b.ID)
	require.NoError(t, err)

	ids := a.ConnectedEdges()
	require.Equal(t, []string{e.ID}, ids)
	ids[0] = "tampered"
	require.Equal(t, []string{e.ID}, a.ConnectedEdges())
	require.Equal(t, 1, a.Degree())
}
