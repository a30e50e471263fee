package angular

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/SophiaLi20/grid/quadrature"
)

// MaxProductDegree bounds the Gauss product rule. Beyond this the grid size
// (roughly degree²/2 points) stops being a sane angular resolution.
const MaxProductDegree = 1000

// GaussProduct is the spherical product rule: Gauss-Legendre abscissas in
// cosθ crossed with equispaced azimuthal angles. It is exact for spherical
// polynomials of any requested degree, at the cost of roughly twice the
// points of a Lebedev grid of equal degree, and serves the degrees the
// Lebedev tables do not reach.
type GaussProduct struct{}

// Name implements Rule.
func (GaussProduct) Name() string { return "gauss-product" }

// MaxDegree implements Rule.
func (GaussProduct) MaxDegree() int { return MaxProductDegree }

// Build implements Rule. An n-point Gauss-Legendre rule is exact through
// polynomial degree 2n-1, and m equispaced azimuthal points integrate
// trigonometric polynomials through degree m-1, so nθ = ⌈(degree+1)/2⌉ and
// nφ = degree+1 deliver the requested exactness.
func (p GaussProduct) Build(degree int) (*Grid, error) {
	if degree < 0 || degree > MaxProductDegree {
		return nil, fmt.Errorf("%w: gauss-product degree %d (max %d)",
			ErrUnsupportedDegree, degree, MaxProductDegree)
	}
	ntheta := (degree + 2) / 2
	if ntheta < 1 {
		ntheta = 1
	}
	nphi := degree + 1
	if nphi < 1 {
		nphi = 1
	}
	polar, err := quadrature.GaussLegendre{}.Generate(ntheta)
	if err != nil {
		return nil, fmt.Errorf("gauss-product degree %d: %w", degree, err)
	}
	// Every degree is directly constructible, so no round-up happens here.
	g := &Grid{
		Points:  make([]r3.Vec, 0, ntheta*nphi),
		Weights: make([]float64, 0, ntheta*nphi),
		Degree:  degree,
	}
	wphi := 2 * math.Pi / float64(nphi)
	for i, z := range polar.Points {
		sin := math.Sqrt(1 - z*z)
		w := polar.Weights[i] * wphi
		for j := 0; j < nphi; j++ {
			phi := wphi * float64(j)
			g.add(sin*math.Cos(phi), sin*math.Sin(phi), z, w)
		}
	}
	reportNegativeWeights(p.Name(), degree, g.Weights)
	return g, nil
}
