// Package angular builds quadratures over the unit-sphere surface. A grid
// integrates spherical polynomials exactly up to its rule's degree; weights
// sum to 4π, the sphere's surface measure. Two rule families are provided:
// tabulated Lebedev grids (octahedrally symmetric, smallest point count per
// degree) and the Gauss product rule (any degree, more points per degree).
package angular

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/SophiaLi20/grid/internal/monitoring"
)

// ErrUnsupportedDegree indicates a requested degree beyond the rule's
// tabulated or constructible maximum, or a negative degree.
var ErrUnsupportedDegree = errors.New("angular: unsupported degree")

// Grid is a quadrature over the unit sphere: points on the surface and
// weights summing to 4π.
type Grid struct {
	Points  []r3.Vec
	Weights []float64

	// Degree is the polynomial exactness the grid delivers, which may
	// exceed the degree requested from the rule.
	Degree int
}

// Len returns the number of surface points.
func (g *Grid) Len() int { return len(g.Points) }

// WeightSum returns the sum of all weights, nominally 4π.
func (g *Grid) WeightSum() float64 { return floats.Sum(g.Weights) }

// Rule produces unit-sphere grids for a requested polynomial-exactness
// degree. A requested degree is rounded up to the nearest the rule supports.
type Rule interface {
	// Build returns a grid exact at least to the requested degree, or
	// ErrUnsupportedDegree if the degree exceeds MaxDegree.
	Build(degree int) (*Grid, error)
	// MaxDegree is the largest degree Build accepts.
	MaxDegree() int
	// Name identifies the rule in diagnostics and config files.
	Name() string
}

// SizeToDegree returns the smallest degree supported by rule whose grid has
// at least size points. This backs the fixed-size grid construction path,
// where callers think in point counts rather than polynomial degrees.
func SizeToDegree(rule Rule, size int) (int, error) {
	if size < 1 {
		return 0, fmt.Errorf("%w: %s size %d", ErrUnsupportedDegree, rule.Name(), size)
	}
	for deg := 0; deg <= rule.MaxDegree(); deg++ {
		g, err := rule.Build(deg)
		if err != nil {
			return 0, err
		}
		if g.Len() >= size {
			return g.Degree, nil
		}
		// Skip ahead: every degree up to g.Degree yields this same grid.
		deg = g.Degree
	}
	return 0, fmt.Errorf("%w: no %s grid has %d points (max degree %d)",
		ErrUnsupportedDegree, rule.Name(), size, rule.MaxDegree())
}

// reportNegativeWeights surfaces negative quadrature weights through the
// monitoring channel. Negative weights amplify round-off but keep every
// integral identity intact, so they are a diagnostic rather than an error.
func reportNegativeWeights(name string, degree int, weights []float64) {
	count := 0
	min := 0.0
	for _, w := range weights {
		if w < 0 {
			count++
			if w < min {
				min = w
			}
		}
	}
	if count > 0 {
		monitoring.Logf("angular: %s degree %d grid has %d negative weight(s), min %g",
			name, degree, count, min)
	}
}

// normalizeWeights scales weights in place so they sum to exactly 4π,
// absorbing the residual round-off of the tabulated coefficients.
func normalizeWeights(weights []float64) {
	sum := floats.Sum(weights)
	floats.Scale(4*math.Pi/sum, weights)
}
