package mapgen

import (
	"fmt"

	"github.com/tycoonlabs/worldmap/core"
)

// RandomSparse scatters n nodes uniformly over the configured bounds
// and links each unordered pair independently with probability p.
// Placement and pair draws both come from the seeded RNG, so output is
// deterministic per seed. Complexity: O(n^2) pair checks.
func RandomSparse(n int, p float64) Constructor {
	return func(m *core.WorldMap, cfg genConfig) error {
		if n < 1 {
			return fmt.Errorf("RandomSparse(%d): %w", n, ErrTooFewNodes)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%g: %w", p, ErrInvalidProbability)
		}

		ids := make([]string, n)
		for i := 0; i < n; i++ {
			x := cfg.rng.Float64() * cfg.width
			y := cfg.rng.Float64() * cfg.height
			ids[i] = m.NewNodeAt(x, y).ID
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if _, err := m.Connect(ids[i], ids[j], core.WithThroughput(cfg.throughput)); err != nil {
					return fmt.Errorf("RandomSparse: %w", err)
				}
			}
		}

		return nil
	}
}
