package mapgen

import (
	"fmt"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/tycoonlabs/worldmap/core"
)

// elevationKey is the node property written by Elevation.
const elevationKey = "elevation"

// Elevation samples seeded OpenSimplex noise at every node position and
// stores the value in the node's "elevation" property, normalized to
// [0, 1]. Larger scales give smoother terrain. Run it after the
// topology constructors so every node gets a sample. Complexity: O(V).
func Elevation(scale float64) Constructor {
	return func(m *core.WorldMap, cfg genConfig) error {
		if scale <= 0 {
			return fmt.Errorf("Elevation: scale %g: %w", scale, ErrBadScale)
		}

		noise := opensimplex.NewNormalized(cfg.seed)
		for _, n := range m.Nodes() {
			n.SetProperty(elevationKey, core.Num(noise.Eval2(n.X/scale, n.Y/scale)))
		}

		return nil
	}
}
