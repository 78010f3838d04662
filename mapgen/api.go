package mapgen

import (
	"fmt"

	"github.com/tycoonlabs/worldmap/core"
)

// Constructor applies one deterministic topology mutation to a map
// under the resolved generation config. Constructors validate their
// parameters early, return sentinel errors and never panic; for the
// same config and call order they always produce the same map.
type Constructor func(m *core.WorldMap, cfg genConfig) error

// Build creates a new core.WorldMap with mapOpts, resolves the
// generation configuration from genOpts, and applies all constructors
// in order. The first constructor error aborts the build; no partial
// cleanup is attempted.
func Build(mapOpts []core.MapOption, genOpts []Option, cons ...Constructor) (*core.WorldMap, error) {
	m := core.NewWorldMap(mapOpts...)
	cfg := newGenConfig(genOpts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return m, nil
}

// Apply resolves opts and runs the constructors against an existing
// map, for layering generated districts onto hand-built terrain.
func Apply(m *core.WorldMap, genOpts []Option, cons ...Constructor) error {
	if m == nil {
		return fmt.Errorf("Apply: nil map: %w", ErrConstructFailed)
	}
	cfg := newGenConfig(genOpts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}
