package mapgen

import (
	"fmt"

	"github.com/tycoonlabs/worldmap/core"
)

// Grid builds a rows×cols lattice with 4-neighborhood links. Nodes are
// created row-major at spacing intervals; each node links to its right
// and lower neighbor. Complexity: O(rows*cols).
func Grid(rows, cols int) Constructor {
	return func(m *core.WorldMap, cfg genConfig) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("Grid(%d, %d): %w", rows, cols, ErrTooFewNodes)
		}
		if cfg.spacing <= 0 {
			return fmt.Errorf("Grid: spacing %g: %w", cfg.spacing, ErrBadSpacing)
		}

		ids := make([][]string, rows)
		for r := 0; r < rows; r++ {
			ids[r] = make([]string, cols)
			for c := 0; c < cols; c++ {
				ids[r][c] = m.NewNodeAt(float64(c)*cfg.spacing, float64(r)*cfg.spacing).ID
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if _, err := m.Connect(ids[r][c], ids[r][c+1], core.WithThroughput(cfg.throughput)); err != nil {
						return fmt.Errorf("Grid: %w", err)
					}
				}
				if r+1 < rows {
					if _, err := m.Connect(ids[r][c], ids[r+1][c], core.WithThroughput(cfg.throughput)); err != nil {
						return fmt.Errorf("Grid: %w", err)
					}
				}
			}
		}

		return nil
	}
}
