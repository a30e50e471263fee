// Package quadrature builds one-dimensional quadrature rules on the
// canonical interval [-1,1]. A rule produces an immutable set of abscissas
// and weights approximating integrals as weighted sums; radial transforms
// (package radial) map these onto the physical radial coordinate.
package quadrature

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sentinel errors for quadrature construction. Callers match with errors.Is.
var (
	// ErrInvalidSize indicates a non-positive point count.
	ErrInvalidSize = errors.New("quadrature: invalid size")
	// ErrConstruction indicates the rule produced non-finite points or weights.
	ErrConstruction = errors.New("quadrature: construction failed")
)

// Quadrature is an immutable pair of abscissas and weights of equal length,
// with points in strictly increasing order.
type Quadrature struct {
	Points  []float64
	Weights []float64
}

// Len returns the number of quadrature points.
func (q Quadrature) Len() int { return len(q.Points) }

// WeightSum returns the sum of all weights. For a rule on [-1,1] this
// approximates the domain measure 2.
func (q Quadrature) WeightSum() float64 { return floats.Sum(q.Weights) }

// Rule produces quadratures of a requested size on its canonical domain.
// Implementations are a closed set of named rules; all current rules use
// the domain [-1,1].
type Rule interface {
	// Generate returns an n-point quadrature, or ErrInvalidSize for n < 1.
	Generate(n int) (Quadrature, error)
	// Domain returns the canonical interval the rule integrates over.
	Domain() (lo, hi float64)
	// Name identifies the rule in diagnostics and config files.
	Name() string
}

// checkFinite verifies every point and weight is a finite number and that
// points are strictly increasing. It wraps failures in ErrConstruction so
// a rule never hands back a partially valid quadrature.
func checkFinite(name string, q Quadrature) error {
	for i, x := range q.Points {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: %s point %d is %v", ErrConstruction, name, i, x)
		}
		if i > 0 && x <= q.Points[i-1] {
			return fmt.Errorf("%w: %s points not strictly increasing at %d", ErrConstruction, name, i)
		}
	}
	for i, w := range q.Weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: %s weight %d is %v", ErrConstruction, name, i, w)
		}
	}
	return nil
}
