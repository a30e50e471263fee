// Package radial maps canonical one-dimensional quadratures onto the
// physical radial coordinate [0,∞). A Transform is a monotone differentiable
// bijection; applying one to a quadrature moves each abscissa through the map
// and rescales its weight by the Jacobian |dr/dx|.
package radial

import (
	"errors"
	"fmt"
	"math"

	"github.com/SophiaLi20/grid/quadrature"
)

// ErrInvalidParameter indicates a transform parameter that would make the
// map non-monotonic or otherwise degenerate.
var ErrInvalidParameter = errors.New("radial: invalid transform parameter")

// Transform is a monotone differentiable bijection from the canonical
// quadrature domain onto the physical radial domain. Endpoints of the
// canonical domain may map to 0 or +Inf.
type Transform interface {
	// Forward maps a canonical abscissa x to a radius r.
	Forward(x float64) float64
	// Backward inverts Forward to numerical tolerance.
	Backward(r float64) float64
	// Derivative returns dr/dx at x.
	Derivative(x float64) float64
	// Validate reports whether the transform's parameters are usable.
	Validate() error
	// Name identifies the transform in diagnostics and config files.
	Name() string
}

// Grid is a radial quadrature: strictly increasing positive radii with
// Jacobian-rescaled weights, ready for composition with angular grids.
type Grid struct {
	R       []float64
	Weights []float64
}

// Len returns the number of radial shells.
func (g Grid) Len() int { return len(g.R) }

// Apply maps q through t, rescaling each weight by |dr/dx|. Canonical
// endpoints mapping to a non-finite or non-positive radius are dropped when
// they carry zero weight; a nonzero-weight point landing there is a
// parameter error, since its contribution would be lost silently.
func Apply(t Transform, q quadrature.Quadrature) (Grid, error) {
	if err := t.Validate(); err != nil {
		return Grid{}, err
	}
	r := make([]float64, 0, q.Len())
	w := make([]float64, 0, q.Len())
	for i, x := range q.Points {
		ri := t.Forward(x)
		if ri == 0 || q.Weights[i] == 0 {
			// Endpoint mapped to the origin, or a zero-weight abscissa:
			// neither can ever contribute, so the shell is dropped.
			continue
		}
		if math.IsInf(ri, 0) || math.IsNaN(ri) || ri < 0 {
			return Grid{}, fmt.Errorf("%w: %s maps x=%v (weight %v) to r=%v",
				ErrInvalidParameter, t.Name(), x, q.Weights[i], ri)
		}
		r = append(r, ri)
		w = append(w, q.Weights[i]*math.Abs(t.Derivative(x)))
	}
	return Grid{R: r, Weights: w}, nil
}
