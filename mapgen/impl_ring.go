package mapgen

import (
	"fmt"
	"math"

	"github.com/tycoonlabs/worldmap/core"
)

// Ring builds an n-node cycle on a circle of the given radius, centered
// at the origin. Node i sits at angle 2πi/n; edges close the cycle in
// index order. Complexity: O(n).
func Ring(n int, radius float64) Constructor {
	return func(m *core.WorldMap, cfg genConfig) error {
		if n < 3 {
			return fmt.Errorf("Ring(%d): %w", n, ErrTooFewNodes)
		}
		if radius <= 0 {
			return fmt.Errorf("Ring: radius %g: %w", radius, ErrBadRadius)
		}

		ids := make([]string, n)
		for i := 0; i < n; i++ {
			angle := 2 * math.Pi * float64(i) / float64(n)
			ids[i] = m.NewNodeAt(radius*math.Cos(angle), radius*math.Sin(angle)).ID
		}
		for i := 0; i < n; i++ {
			if _, err := m.Connect(ids[i], ids[(i+1)%n], core.WithThroughput(cfg.throughput)); err != nil {
				return fmt.Errorf("Ring: %w", err)
			}
		}

		return nil
	}
}
