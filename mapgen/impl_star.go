package mapgen

import (
	"fmt"
	"math"

	"github.com/tycoonlabs/worldmap/core"
)

// Star builds a hub node at the origin with the given number of leaves
// spread evenly on a circle of radius spacing, each linked to the hub.
// The hub is created first, so it takes the next node ID in sequence.
// Complexity: O(leaves).
func Star(leaves int) Constructor {
	return func(m *core.WorldMap, cfg genConfig) error {
		if leaves < 1 {
			return fmt.Errorf("Star(%d): %w", leaves, ErrTooFewNodes)
		}
		if cfg.spacing <= 0 {
			return fmt.Errorf("Star: spacing %g: %w", cfg.spacing, ErrBadSpacing)
		}

		hub := m.NewNodeAt(0, 0, core.WithNodeKind("hub"))
		for i := 0; i < leaves; i++ {
			angle := 2 * math.Pi * float64(i) / float64(leaves)
			leaf := m.NewNodeAt(cfg.spacing*math.Cos(angle), cfg.spacing*math.Sin(angle))
			if _, err := m.Connect(hub.ID, leaf.ID, core.WithThroughput(cfg.throughput)); err != nil {
				return fmt.Errorf("Star: %w", err)
			}
		}

		return nil
	}
}
