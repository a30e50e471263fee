package grid

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/SophiaLi20/grid/angular"
	"github.com/SophiaLi20/grid/radial"
)

// AtomicGrid is a three-dimensional quadrature centered on one atom, built
// by crossing each radial shell with a unit-sphere grid. It is immutable
// once constructed; every weight already folds in the r² Jacobian of the
// spherical volume element.
type AtomicGrid struct {
	// Center is the nuclear position the grid was built around.
	Center r3.Vec
	// Points are the grid points in the molecular frame.
	Points []r3.Vec
	// Weights are w_radial · w_angular · r² per point. The angular weight
	// normalization to 4π already accounts for the sinφ surface factor.
	Weights []float64
	// ShellIndex maps each point to the radial shell it came from, for
	// degree bookkeeping and pruning diagnostics.
	ShellIndex []int
	// ShellDegrees records the angular degree used at each shell.
	ShellDegrees []int
}

// Len returns the number of grid points.
func (g *AtomicGrid) Len() int { return len(g.Points) }

// NewAtomicGrid builds an atom-centered grid from a radial quadrature, an
// angular rule and a degree-resolution strategy. Angular grids are built
// once per distinct degree and shared across the shells that use them.
func NewAtomicGrid(center r3.Vec, rad radial.Grid, rule angular.Rule, degrees DegreeSpec) (*AtomicGrid, error) {
	if rad.Len() == 0 {
		return nil, fmt.Errorf("%w: radial grid has no shells", ErrShapeMismatch)
	}
	if degrees == nil {
		return nil, fmt.Errorf("%w: nil degree specification", ErrShapeMismatch)
	}
	perShell, err := degrees.shellDegrees(rad.R, rule)
	if err != nil {
		return nil, err
	}

	cache := make(map[int]*angular.Grid)
	total := 0
	for _, deg := range perShell {
		ag, ok := cache[deg]
		if !ok {
			ag, err = rule.Build(deg)
			if err != nil {
				return nil, fmt.Errorf("shell degree %d: %w", deg, err)
			}
			cache[deg] = ag
		}
		total += ag.Len()
	}

	g := &AtomicGrid{
		Center:       center,
		Points:       make([]r3.Vec, 0, total),
		Weights:      make([]float64, 0, total),
		ShellIndex:   make([]int, 0, total),
		ShellDegrees: perShell,
	}
	for shell, r := range rad.R {
		ag := cache[perShell[shell]]
		wShell := rad.Weights[shell] * r * r
		for i, p := range ag.Points {
			g.Points = append(g.Points, r3.Add(center, r3.Scale(r, p)))
			g.Weights = append(g.Weights, wShell*ag.Weights[i])
			g.ShellIndex = append(g.ShellIndex, shell)
		}
	}
	return g, nil
}
