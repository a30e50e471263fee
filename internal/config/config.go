// Package config loads grid-construction parameters from JSON files. All
// fields are optional pointers so partial configs are safe: anything left
// out keeps its default through the Get* accessors.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SophiaLi20/grid/grid"
)

// GridConfig mirrors the configuration surface of the grid engine: radial
// quadrature, radial transform, angular rule and resolution, partition
// options and the store flag.
type GridConfig struct {
	// Radial params
	RadialCount    *int     `json:"radial_count,omitempty"`
	RadialRule     *string  `json:"radial_rule,omitempty"`     // trapezoid, gauss-chebyshev-1, gauss-chebyshev-2, gauss-legendre, tanh-sinh
	Transform      *string  `json:"transform,omitempty"`       // linear, power, becke, multiexp
	TransformScale *float64 `json:"transform_scale,omitempty"` // 0 selects per-element Bragg-Slater scaling

	// Angular params: exactly one of degree, size or preset drives the
	// construction; preset wins, then size, then degree.
	AngularRule   *string `json:"angular_rule,omitempty"` // lebedev, gauss-product
	AngularDegree *int    `json:"angular_degree,omitempty"`
	AngularSize   *int    `json:"angular_size,omitempty"`
	Preset        *string `json:"preset,omitempty"`

	// Partition params
	PartitionIterations *int  `json:"partition_iterations,omitempty"`
	SizeAdjust          *bool `json:"size_adjust,omitempty"`

	// Store retains the per-atom breakdown for atom-resolved integrals.
	Store *bool `json:"store,omitempty"`
}

// Load reads and validates a GridConfig from a JSON file. The path must
// have a .json extension and stay under the max file size.
func Load(path string) (*GridConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &GridConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration values are usable before any grid
// construction starts.
func (c *GridConfig) Validate() error {
	if c.RadialCount != nil && *c.RadialCount < 1 {
		return fmt.Errorf("radial_count must be positive, got %d", *c.RadialCount)
	}
	if c.RadialRule != nil {
		switch *c.RadialRule {
		case "trapezoid", "gauss-chebyshev-1", "gauss-chebyshev-2", "gauss-legendre", "tanh-sinh":
		default:
			return fmt.Errorf("unknown radial_rule %q", *c.RadialRule)
		}
	}
	if c.Transform != nil {
		switch *c.Transform {
		case "linear", "power", "becke", "multiexp":
		default:
			return fmt.Errorf("unknown transform %q", *c.Transform)
		}
	}
	if c.TransformScale != nil && *c.TransformScale < 0 {
		return fmt.Errorf("transform_scale must be non-negative, got %f", *c.TransformScale)
	}
	if c.AngularRule != nil {
		switch *c.AngularRule {
		case "lebedev", "gauss-product":
		default:
			return fmt.Errorf("unknown angular_rule %q", *c.AngularRule)
		}
	}
	if c.AngularDegree != nil && *c.AngularDegree < 0 {
		return fmt.Errorf("angular_degree must be non-negative, got %d", *c.AngularDegree)
	}
	if c.AngularSize != nil && *c.AngularSize < 1 {
		return fmt.Errorf("angular_size must be positive, got %d", *c.AngularSize)
	}
	if c.Preset != nil {
		if _, err := grid.LookupPreset(*c.Preset, 1); err != nil {
			return fmt.Errorf("invalid preset: %w", err)
		}
	}
	if c.PartitionIterations != nil && *c.PartitionIterations < 1 {
		return fmt.Errorf("partition_iterations must be positive, got %d", *c.PartitionIterations)
	}
	return nil
}

// GetRadialCount returns the radial_count value or the default.
func (c *GridConfig) GetRadialCount() int {
	if c.RadialCount == nil {
		return 75
	}
	return *c.RadialCount
}

// GetRadialRule returns the radial_rule value or the default.
func (c *GridConfig) GetRadialRule() string {
	if c.RadialRule == nil {
		return "gauss-chebyshev-2"
	}
	return *c.RadialRule
}

// GetTransform returns the transform value or the default.
func (c *GridConfig) GetTransform() string {
	if c.Transform == nil {
		return "becke"
	}
	return *c.Transform
}

// GetTransformScale returns the transform_scale value or the default.
// Zero means per-element Bragg-Slater scaling.
func (c *GridConfig) GetTransformScale() float64 {
	if c.TransformScale == nil {
		return 0
	}
	return *c.TransformScale
}

// GetAngularRule returns the angular_rule value or the default.
func (c *GridConfig) GetAngularRule() string {
	if c.AngularRule == nil {
		return "lebedev"
	}
	return *c.AngularRule
}

// GetAngularDegree returns the angular_degree value or the default.
func (c *GridConfig) GetAngularDegree() int {
	if c.AngularDegree == nil {
		return 17
	}
	return *c.AngularDegree
}

// GetAngularSize returns the angular_size value, or 0 when unset.
func (c *GridConfig) GetAngularSize() int {
	if c.AngularSize == nil {
		return 0
	}
	return *c.AngularSize
}

// GetPreset returns the preset name, or "" when unset.
func (c *GridConfig) GetPreset() string {
	if c.Preset == nil {
		return ""
	}
	return *c.Preset
}

// GetPartitionIterations returns the partition_iterations value or the default.
func (c *GridConfig) GetPartitionIterations() int {
	if c.PartitionIterations == nil {
		return 3
	}
	return *c.PartitionIterations
}

// GetSizeAdjust returns the size_adjust value or the default.
func (c *GridConfig) GetSizeAdjust() bool {
	if c.SizeAdjust == nil {
		return false
	}
	return *c.SizeAdjust
}

// GetStore returns the store value or the default.
func (c *GridConfig) GetStore() bool {
	if c.Store == nil {
		return false
	}
	return *c.Store
}
