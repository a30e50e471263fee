package radial

import (
	"fmt"
	"math"
)

// Linear maps [-1,1] affinely onto [Rmin,Rmax].
type Linear struct {
	Rmin, Rmax float64
}

// Name implements Transform.
func (Linear) Name() string { return "linear" }

// Validate implements Transform.
func (t Linear) Validate() error {
	if t.Rmax <= t.Rmin {
		return fmt.Errorf("%w: linear needs Rmax > Rmin, got [%v,%v]", ErrInvalidParameter, t.Rmin, t.Rmax)
	}
	if t.Rmin < 0 {
		return fmt.Errorf("%w: linear needs Rmin >= 0, got %v", ErrInvalidParameter, t.Rmin)
	}
	return nil
}

// Forward implements Transform.
func (t Linear) Forward(x float64) float64 {
	return t.Rmin + (x+1)/2*(t.Rmax-t.Rmin)
}

// Backward implements Transform.
func (t Linear) Backward(r float64) float64 {
	return 2*(r-t.Rmin)/(t.Rmax-t.Rmin) - 1
}

// Derivative implements Transform.
func (t Linear) Derivative(float64) float64 {
	return (t.Rmax - t.Rmin) / 2
}

// Power maps [-1,1] onto [Rmin,Rmax] through u = (1+x)/2 and
// r = Rmin + (Rmax-Rmin)·u^Exponent. Larger exponents concentrate shells
// near Rmin, where integrands vary fastest.
type Power struct {
	Rmin, Rmax float64
	Exponent   float64
}

// Name implements Transform.
func (Power) Name() string { return "power" }

// Validate implements Transform.
func (t Power) Validate() error {
	if t.Rmax <= t.Rmin {
		return fmt.Errorf("%w: power needs Rmax > Rmin, got [%v,%v]", ErrInvalidParameter, t.Rmin, t.Rmax)
	}
	if t.Rmin < 0 {
		return fmt.Errorf("%w: power needs Rmin >= 0, got %v", ErrInvalidParameter, t.Rmin)
	}
	if t.Exponent <= 0 {
		return fmt.Errorf("%w: power needs Exponent > 0, got %v", ErrInvalidParameter, t.Exponent)
	}
	return nil
}

// Forward implements Transform.
func (t Power) Forward(x float64) float64 {
	u := (x + 1) / 2
	return t.Rmin + (t.Rmax-t.Rmin)*math.Pow(u, t.Exponent)
}

// Backward implements Transform.
func (t Power) Backward(r float64) float64 {
	u := math.Pow((r-t.Rmin)/(t.Rmax-t.Rmin), 1/t.Exponent)
	return 2*u - 1
}

// Derivative implements Transform.
func (t Power) Derivative(x float64) float64 {
	u := (x + 1) / 2
	return (t.Rmax - t.Rmin) * t.Exponent * math.Pow(u, t.Exponent-1) / 2
}

// Becke is the transform r = Scale·(1+x)/(1-x) on [-1,1], mapping x=-1 to
// the origin and x=+1 to infinity. Scale is the midpoint radius: x=0 maps
// to r=Scale.
type Becke struct {
	Scale float64
}

// Name implements Transform.
func (Becke) Name() string { return "becke" }

// Validate implements Transform.
func (t Becke) Validate() error {
	if t.Scale <= 0 {
		return fmt.Errorf("%w: becke needs Scale > 0, got %v", ErrInvalidParameter, t.Scale)
	}
	return nil
}

// Forward implements Transform.
func (t Becke) Forward(x float64) float64 {
	return t.Scale * (1 + x) / (1 - x)
}

// Backward implements Transform.
func (t Becke) Backward(r float64) float64 {
	return (r - t.Scale) / (r + t.Scale)
}

// Derivative implements Transform.
func (t Becke) Derivative(x float64) float64 {
	d := 1 - x
	return 2 * t.Scale / (d * d)
}

// MultiExp is the exponential transform r = -Scale·ln((1-x)/2) on [-1,1],
// mapping x=-1 to the origin and x=+1 to infinity with logarithmic shell
// spacing near the nucleus.
type MultiExp struct {
	Scale float64
}

// Name implements Transform.
func (MultiExp) Name() string { return "multiexp" }

// Validate implements Transform.
func (t MultiExp) Validate() error {
	if t.Scale <= 0 {
		return fmt.Errorf("%w: multiexp needs Scale > 0, got %v", ErrInvalidParameter, t.Scale)
	}
	return nil
}

// Forward implements Transform.
func (t MultiExp) Forward(x float64) float64 {
	return -t.Scale * math.Log((1-x)/2)
}

// Backward implements Transform.
func (t MultiExp) Backward(r float64) float64 {
	return 1 - 2*math.Exp(-r/t.Scale)
}

// Derivative implements Transform.
func (t MultiExp) Derivative(x float64) float64 {
	return t.Scale / (1 - x)
}
