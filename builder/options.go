// SPDX-License-Identifier: MIT
// Package: graphptol/builder
//
// options.go - functional options resolved into an immutable builderConfig.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/graphptol/core"
)

// DefaultSeed seeds the RNG when WithSeed is not given, so output is reproducible.
const DefaultSeed int64 = 1

// BuilderOption customizes graph construction.
type BuilderOption func(*builderConfig)

// builderConfig is resolved once per BuildGraph call and passed by value.
type builderConfig struct {
	first core.NodeID // ID of vertex index 0
	rng   *rand.Rand
}

// WithFirstID numbers vertices first, first+1, ... instead of 0, 1, ...
func WithFirstID(first core.NodeID) BuilderOption {
	return func(c *builderConfig) { c.first = first }
}

// WithSeed fixes the RNG used by random topologies.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{rng: rand.New(rand.NewSource(DefaultSeed))}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// id maps a vertex index to its NodeID.
func (c builderConfig) id(i int) core.NodeID { return c.first + core.NodeID(i) }
