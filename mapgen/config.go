package mapgen

import (
	"errors"
	"math/rand"
)

// Sentinel errors returned by constructors.
var (
	// ErrTooFewNodes means the requested topology needs more nodes.
	ErrTooFewNodes = errors.New("mapgen: too few nodes for topology")

	// ErrInvalidProbability means p lies outside [0, 1].
	ErrInvalidProbability = errors.New("mapgen: probability outside [0, 1]")

	// ErrBadSpacing means the configured spacing is not positive.
	ErrBadSpacing = errors.New("mapgen: spacing must be positive")

	// ErrBadRadius means the requested radius is not positive.
	ErrBadRadius = errors.New("mapgen: radius must be positive")

	// ErrBadScale means the requested noise scale is not positive.
	ErrBadScale = errors.New("mapgen: scale must be positive")

	// ErrConstructFailed flags a broken constructor pipeline, such as a
	// nil constructor passed to Build.
	ErrConstructFailed = errors.New("mapgen: construction failed")
)

// Generation defaults.
const (
	defaultSeed       = int64(1)
	defaultSpacing    = 10.0
	defaultThroughput = 1.0
	defaultWidth      = 100.0
	defaultHeight     = 100.0
)

// genConfig is the resolved, immutable generation configuration shared
// by every constructor in one Build call.
type genConfig struct {
	seed       int64
	rng        *rand.Rand
	spacing    float64
	throughput float64
	width      float64
	height     float64
}

// Option adjusts the generation configuration.
type Option func(*genConfig)

// WithSeed freezes every stochastic path, terrain noise included.
func WithSeed(seed int64) Option {
	return func(c *genConfig) { c.seed = seed }
}

// WithSpacing sets the distance between adjacent generated nodes.
func WithSpacing(d float64) Option {
	return func(c *genConfig) { c.spacing = d }
}

// WithThroughput sets the capacity of every generated edge.
func WithThroughput(tp float64) Option {
	return func(c *genConfig) { c.throughput = tp }
}

// WithBounds sets the placement area for random topologies.
func WithBounds(width, height float64) Option {
	return func(c *genConfig) { c.width, c.height = width, height }
}

// newGenConfig applies opts over the defaults and derives the RNG from
// the final seed.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		seed:       defaultSeed,
		spacing:    defaultSpacing,
		throughput: defaultThroughput,
		width:      defaultWidth,
		height:     defaultHeight,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	cfg.rng = rand.New(rand.NewSource(cfg.seed))

	return cfg
}
