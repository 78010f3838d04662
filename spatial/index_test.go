package spatial_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tycoonlabs/worldmap/core"
	"github.com/tycoonlabs/worldmap/spatial"
)

// grid builds a 10x10 lattice of nodes on integer coordinates.
func grid(t *testing.T) *core.WorldMap {
	t.Helper()
	m := core.NewWorldMap()
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			m.NewNodeAt(float64(x), float64(y))
		}
	}

	return m
}

// scanIDs is the brute-force answer: map scan, IDs ascending.
func scanIDs(m *core.WorldMap, cx, cy, r float64) []string {
	nodes := m.NodesInRadius(cx, cy, r)
	ids := make([]string, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, n.ID)
	}

	return ids
}

func TestNewIndex_NilMap(t *testing.T) {
	_, err := spatial.NewIndex(nil)
	require.ErrorIs(t, err, spatial.ErrNilMap)
}

// TestInRadius_AgreesWithScan checks the index against the linear scan
// for a spread of centers and radii, boundary cases included.
func TestInRadius_AgreesWithScan(t *testing.T) {
	m := grid(t)
	ix, err := spatial.NewIndex(m)
	require.NoError(t, err)
	require.Equal(t, 100, ix.Len())

	cases := []struct {
		name       string
		cx, cy, r  float64
	}{
		{"zero radius on a node", 4, 4, 0},
		{"zero radius off grid", 4.5, 4.5, 0},
		{"unit circle", 5, 5, 1},
		{"boundary exact", 0, 0, 3}, // (3,0) and (0,3) sit on the rim
		{"diagonal rim", 0, 0, 1.4142135623730951},
		{"covers everything", 4.5, 4.5, 50},
		{"far away", 200, 200, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want := scanIDs(m, tc.cx, tc.cy, tc.r)
			got := ix.InRadius(tc.cx, tc.cy, tc.r)
			require.Equal(t, want, got)
		})
	}
}

func TestInRadius_NegativeRadius(t *testing.T) {
	m := grid(t)
	ix, err := spatial.NewIndex(m)
	require.NoError(t, err)
	require.Nil(t, ix.InRadius(0, 0, -1))
}

// TestInsertRemove exercises incremental maintenance after the bulk load.
func TestInsertRemove(t *testing.T) {
	m := core.NewWorldMap()
	a := m.NewNodeAt(0, 0)
	ix, err := spatial.NewIndex(m)
	require.NoError(t, err)

	b := m.NewNodeAt(10, 0)
	require.NoError(t, ix.Insert(b))
	require.Equal(t, 2, ix.Len())
	require.Equal(t, []string{a.ID, b.ID}, ix.InRadius(5, 0, 5))

	require.NoError(t, ix.Remove(a.ID))
	require.Equal(t, []string{b.ID}, ix.InRadius(5, 0, 5))
	require.ErrorIs(t, ix.Remove(a.ID), spatial.ErrNotIndexed)
	require.ErrorIs(t, ix.Insert(nil), core.ErrNilNode)
}

// TestInsert_Move: re-inserting after SetPosition relocates the entry
// instead of duplicating it.
func TestInsert_Move(t *testing.T) {
	m := core.NewWorldMap()
	n := m.NewNodeAt(0, 0)
	ix, err := spatial.NewIndex(m)
	require.NoError(t, err)

	n.SetPosition(100, 100)
	require.NoError(t, ix.Insert(n))
	require.Equal(t, 1, ix.Len())
	require.Empty(t, ix.InRadius(0, 0, 1))
	require.Equal(t, []string{n.ID}, ix.InRadius(100, 100, 1))
}

func TestBound(t *testing.T) {
	m := core.NewWorldMap()
	ix, err := spatial.NewIndex(m)
	require.NoError(t, err)
	_, ok := ix.Bound()
	require.False(t, ok)

	require.NoError(t, ix.Insert(m.NewNodeAt(-3, 2)))
	require.NoError(t, ix.Insert(m.NewNodeAt(7, -5)))
	b, ok := ix.Bound()
	require.True(t, ok)
	require.Equal(t, -3.0, b.Min[0])
	require.Equal(t, -5.0, b.Min[1])
	require.Equal(t, 7.0, b.Max[0])
	require.Equal(t, 2.0, b.Max[1])
}
