package quadrature

import (
	"fmt"

	"gonum.org/v1/gonum/integrate/quad"
)

// GaussLegendre is the Gauss-Legendre rule on [-1,1]. Nodes and weights come
// from gonum's quad.Legendre, whose Newton refinement of the Tricomi initial
// guess is stable for all practical n; any non-finite output is still caught
// and reported as ErrConstruction.
type GaussLegendre struct{}

// Name implements Rule.
func (GaussLegendre) Name() string { return "gauss-legendre" }

// Domain implements Rule.
func (GaussLegendre) Domain() (float64, float64) { return -1, 1 }

// Generate implements Rule.
func (GaussLegendre) Generate(n int) (Quadrature, error) {
	if n < 1 {
		return Quadrature{}, fmt.Errorf("%w: gauss-legendre needs n >= 1, got %d", ErrInvalidSize, n)
	}
	points := make([]float64, n)
	weights := make([]float64, n)
	quad.Legendre{}.FixedLocations(points, weights, -1, 1)
	// gonum emits the nodes in descending order; flip to the canonical
	// ascending layout.
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
		weights[i], weights[j] = weights[j], weights[i]
	}
	q := Quadrature{Points: points, Weights: weights}
	if err := checkFinite("gauss-legendre", q); err != nil {
		return Quadrature{}, err
	}
	return q, nil
}
