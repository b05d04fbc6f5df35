// Package config loads the RenderConfig a CLI layer or TOML file
// populates: thread count, tile size, samples per pixel, integrator
// choice and its parameters, max path depth, Russian roulette
// threshold and output path. Grounded on noisetorch-NoiseTorch's use of
// github.com/BurntSushi/toml for its own persisted configuration file.
package config

import (
	"github.com/BurntSushi/toml"
)

// IntegratorConfig names which integrator variant to build and the
// parameters every variant accepts.
type IntegratorConfig struct {
	Name         string `toml:"name"`          // path, directlighting, whitted, normal
	MaxDepth     int    `toml:"max_depth"`
	RRThreshold  int    `toml:"rr_threshold"`
	LightStrategy string `toml:"light_strategy"` // uniformall, uniformone (directlighting only)
}

// AcceleratorConfig configures the BVH build.
type AcceleratorConfig struct {
	LeafSize int `toml:"leaf_size"`
	SAHBuckets int `toml:"sah_buckets"`
}

// RenderConfig is the full set of knobs a render pass needs, whether
// populated from a TOML file, CLI flags, or both (CLI flags override
// file values, per the usual precedence an external parsing layer
// would apply before handing this struct to the core).
type RenderConfig struct {
	Threads         int               `toml:"threads"`
	TileSize        int               `toml:"tile_size"`
	SamplesPerPixel int               `toml:"samples_per_pixel"`
	OutputPath      string            `toml:"output_path"`
	Integrator      IntegratorConfig  `toml:"integrator"`
	Accelerator     AcceleratorConfig `toml:"accelerator"`
}

// Default returns the documented defaults: tile size 16, leaf size 4,
// 12 SAH buckets, Russian roulette after 3 bounces, max path depth 5.
func Default() RenderConfig {
	return RenderConfig{
		Threads:         0, // 0 means runtime.NumCPU(), resolved by the render driver
		TileSize:        16,
		SamplesPerPixel: 16,
		OutputPath:      "out.png",
		Integrator: IntegratorConfig{
			Name:          "path",
			MaxDepth:      5,
			RRThreshold:   3,
			LightStrategy: "uniformone",
		},
		Accelerator: AcceleratorConfig{
			LeafSize:   4,
			SAHBuckets: 12,
		},
	}
}

// Load reads a TOML file at path, starting from Default() so any field
// the file omits keeps its documented default.
func Load(path string) (RenderConfig, error) {
	cfg := Default()
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return RenderConfig{}, err
	}
	return cfg, nil
}
