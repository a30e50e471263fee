package quadrature

import (
	"fmt"
	"math"
)

// Trapezoid is the composite trapezoidal rule on [-1,1], endpoints included.
// Endpoint weights are half the interior spacing. For n == 1 the single
// point sits at 0 and carries the full measure.
type Trapezoid struct{}

// Name implements Rule.
func (Trapezoid) Name() string { return "trapezoid" }

// Domain implements Rule.
func (Trapezoid) Domain() (float64, float64) { return -1, 1 }

// Generate implements Rule.
func (Trapezoid) Generate(n int) (Quadrature, error) {
	if n < 1 {
		return Quadrature{}, fmt.Errorf("%w: trapezoid needs n >= 1, got %d", ErrInvalidSize, n)
	}
	if n == 1 {
		return Quadrature{Points: []float64{0}, Weights: []float64{2}}, nil
	}
	h := 2.0 / float64(n-1)
	points := make([]float64, n)
	weights := make([]float64, n)
	for i := 0; i < n; i++ {
		points[i] = -1 + float64(i)*h
		weights[i] = h
	}
	weights[0] = h / 2
	weights[n-1] = h / 2
	q := Quadrature{Points: points, Weights: weights}
	if err := checkFinite("trapezoid", q); err != nil {
		return Quadrature{}, err
	}
	return q, nil
}

// GaussChebyshev is the Gauss-Chebyshev rule of the first or second kind on
// [-1,1]. The closed-form Chebyshev weights are folded with the inverse of
// the rule's weight function, so the result integrates plain functions:
//
//	kind 1: x_i = cos((2i-1)π/2n),   w_i = (π/n)·sqrt(1-x_i²)
//	kind 2: x_i = cos(iπ/(n+1)),     w_i = (π/(n+1))·sin(iπ/(n+1))
//
// Both are closed-form: no root-finding is involved, so construction cannot
// fail to converge for any n.
type GaussChebyshev struct {
	// Kind selects the Chebyshev polynomial family, 1 or 2.
	Kind int
}

// Name implements Rule.
func (g GaussChebyshev) Name() string { return fmt.Sprintf("gauss-chebyshev-%d", g.Kind) }

// Domain implements Rule.
func (GaussChebyshev) Domain() (float64, float64) { return -1, 1 }

// Generate implements Rule.
func (g GaussChebyshev) Generate(n int) (Quadrature, error) {
	if n < 1 {
		return Quadrature{}, fmt.Errorf("%w: gauss-chebyshev needs n >= 1, got %d", ErrInvalidSize, n)
	}
	if g.Kind != 1 && g.Kind != 2 {
		return Quadrature{}, fmt.Errorf("%w: gauss-chebyshev kind must be 1 or 2, got %d", ErrConstruction, g.Kind)
	}
	points := make([]float64, n)
	weights := make([]float64, n)
	switch g.Kind {
	case 1:
		for i := 0; i < n; i++ {
			theta := float64(2*i+1) * math.Pi / float64(2*n)
			// Walk theta downward so points come out increasing.
			k := n - 1 - i
			points[k] = math.Cos(theta)
			weights[k] = math.Pi / float64(n) * math.Sin(theta)
		}
	case 2:
		for i := 1; i <= n; i++ {
			theta := float64(i) * math.Pi / float64(n+1)
			k := n - i
			points[k] = math.Cos(theta)
			weights[k] = math.Pi / float64(n+1) * math.Sin(theta)
		}
	}
	q := Quadrature{Points: points, Weights: weights}
	if err := checkFinite(g.Name(), q); err != nil {
		return Quadrature{}, err
	}
	return q, nil
}

// TanhSinh is the tanh-sinh (double exponential) rule on [-1,1]:
//
//	x_k = tanh(π/2·sinh(kh)),  w_k = h·(π/2·cosh(kh)) / cosh²(π/2·sinh(kh))
//
// for k = -m..m where n = 2m+1. Even n is rounded up to the next odd count
// so the rule stays symmetric about 0. Step controls h; zero means the
// conventional h = 1/2^3 scaled to cover [-1,1] for the requested size.
type TanhSinh struct {
	// Step is the level spacing h. Zero selects 3.0/float64(m) which keeps
	// the outermost abscissas inside the representable range.
	Step float64
}

// Name implements Rule.
func (TanhSinh) Name() string { return "tanh-sinh" }

// Domain implements Rule.
func (TanhSinh) Domain() (float64, float64) { return -1, 1 }

// Generate implements Rule.
func (t TanhSinh) Generate(n int) (Quadrature, error) {
	if n < 1 {
		return Quadrature{}, fmt.Errorf("%w: tanh-sinh needs n >= 1, got %d", ErrInvalidSize, n)
	}
	m := n / 2
	if n == 1 {
		m = 0
	}
	count := 2*m + 1
	h := t.Step
	if h <= 0 {
		// 3/m places the outermost levels near tanh saturation. Small m
		// keeps the cap at 1.5 so the central weight cannot dominate the
		// domain measure.
		levels := m
		if levels < 2 {
			levels = 2
		}
		h = 3.0 / float64(levels)
	}
	points := make([]float64, count)
	weights := make([]float64, count)
	for k := -m; k <= m; k++ {
		u := float64(k) * h
		s := math.Pi / 2 * math.Sinh(u)
		points[k+m] = math.Tanh(s)
		c := math.Cosh(s)
		weights[k+m] = h * math.Pi / 2 * math.Cosh(u) / (c * c)
	}
	q := Quadrature{Points: points, Weights: weights}
	if err := checkFinite("tanh-sinh", q); err != nil {
		return Quadrature{}, err
	}
	return q, nil
}
