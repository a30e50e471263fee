package grid

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/SophiaLi20/grid/angular"
	"github.com/SophiaLi20/grid/element"
	"github.com/SophiaLi20/grid/partition"
	"github.com/SophiaLi20/grid/quadrature"
	"github.com/SophiaLi20/grid/radial"
)

// MolecularGrid unions atom-centered grids into a single quadrature over
// all of space. Each point's weight is its atomic quadrature weight
// multiplied by the owning atom's partition weight, so integrating a
// sampled field is a single weighted sum with no double counting.
type MolecularGrid struct {
	numbers []int
	points  []r3.Vec
	weights []float64
	// offsets[a]..offsets[a+1] is atom a's slice of the combined arrays.
	offsets []int

	// store gates atom-resolved queries after construction.
	store bool
}

// NewMolecularGrid combines per-atom grids with a partition weigher.
// numbers[a] is the atomic number of atomics[a]; the two must have equal
// length. store=true enables atom-resolved integration (IntegrateAtom)
// over the owning atom's slice of the combined arrays.
func NewMolecularGrid(numbers []int, atomics []*AtomicGrid, w partition.Weigher, store bool) (*MolecularGrid, error) {
	if len(numbers) != len(atomics) {
		return nil, fmt.Errorf("%w: %d atomic numbers for %d atomic grids",
			ErrShapeMismatch, len(numbers), len(atomics))
	}
	if len(atomics) == 0 {
		return nil, fmt.Errorf("%w: no atomic grids", ErrShapeMismatch)
	}
	if w == nil {
		return nil, fmt.Errorf("%w: nil partition weigher", ErrShapeMismatch)
	}
	for a, ag := range atomics {
		if ag == nil || ag.Len() == 0 {
			return nil, fmt.Errorf("%w: atomic grid %d is empty", ErrShapeMismatch, a)
		}
	}

	g := &MolecularGrid{
		numbers: append([]int(nil), numbers...),
		offsets: make([]int, len(atomics)+1),
	}
	total := 0
	for a, ag := range atomics {
		g.offsets[a] = total
		total += ag.Len()
	}
	g.offsets[len(atomics)] = total

	g.points = make([]r3.Vec, 0, total)
	centers := make([]r3.Vec, len(atomics))
	for a, ag := range atomics {
		g.points = append(g.points, ag.Points...)
		centers[a] = ag.Center
	}

	pw, err := w.Weights(g.points, centers, numbers)
	if err != nil {
		return nil, err
	}

	g.weights = make([]float64, total)
	for a, ag := range atomics {
		off := g.offsets[a]
		for i, aw := range ag.Weights {
			g.weights[off+i] = aw * pw.At(a, off+i)
		}
	}

	g.store = store
	return g, nil
}

// Len returns the total number of grid points.
func (g *MolecularGrid) Len() int { return len(g.points) }

// NumAtoms returns the number of atomic grids combined into g.
func (g *MolecularGrid) NumAtoms() int { return len(g.numbers) }

// Points returns the combined point array. The slice is owned by the grid
// and must not be modified.
func (g *MolecularGrid) Points() []r3.Vec { return g.points }

// Weights returns the combined (atomic × partition) weight array. The
// slice is owned by the grid and must not be modified.
func (g *MolecularGrid) Weights() []float64 { return g.weights }

// AtomRange returns the half-open index range of atom a's points within
// the combined arrays.
func (g *MolecularGrid) AtomRange(a int) (lo, hi int, err error) {
	if a < 0 || a >= g.NumAtoms() {
		return 0, 0, fmt.Errorf("%w: atom %d of %d", ErrShapeMismatch, a, g.NumAtoms())
	}
	return g.offsets[a], g.offsets[a+1], nil
}

// Integrate returns the weighted sum Σ wᵢ·valuesᵢ. values must hold one
// sample per grid point, in grid-point order.
func (g *MolecularGrid) Integrate(values []float64) (float64, error) {
	if len(values) != g.Len() {
		return 0, fmt.Errorf("%w: %d values for %d grid points",
			ErrShapeMismatch, len(values), g.Len())
	}
	return floats.Dot(g.weights, values), nil
}

// IntegrateAtom restricts the integral to the points owned by atom a,
// using that atom's slice of the combined weights. It requires the grid to
// have been built with store=true.
func (g *MolecularGrid) IntegrateAtom(a int, values []float64) (float64, error) {
	if !g.store {
		return 0, fmt.Errorf("grid: atom-resolved integration needs store=true")
	}
	if len(values) != g.Len() {
		return 0, fmt.Errorf("%w: %d values for %d grid points",
			ErrShapeMismatch, len(values), g.Len())
	}
	lo, hi, err := g.AtomRange(a)
	if err != nil {
		return 0, err
	}
	return floats.Dot(g.weights[lo:hi], values[lo:hi]), nil
}

// RadialSpec describes how to build the radial grid of each atom for the
// molecular convenience constructors. Zero-value fields select the
// conventional scheme: a Gauss-Chebyshev (second kind) quadrature pushed
// through a Becke transform scaled by the element's Bragg-Slater radius.
type RadialSpec struct {
	// Rule generates the canonical one-dimensional quadrature. Nil
	// selects GaussChebyshev{Kind: 2}.
	Rule quadrature.Rule
	// Transform maps the canonical domain to [0,∞). Nil selects
	// Becke{Scale: BraggSlaterRadius(z)} per element.
	Transform radial.Transform
	// Count is the number of radial shells and must be positive.
	Count int
}

func (rs RadialSpec) build(z int) (radial.Grid, error) {
	rule := rs.Rule
	if rule == nil {
		rule = quadrature.GaussChebyshev{Kind: 2}
	}
	q, err := rule.Generate(rs.Count)
	if err != nil {
		return radial.Grid{}, err
	}
	tr := rs.Transform
	if tr == nil {
		tr = radial.Becke{Scale: element.BraggSlaterRadius(z)}
	}
	return radial.Apply(tr, q)
}

// buildAtomics constructs one atomic grid per atom on a bounded worker
// pool. Construction is independent per atom with no shared mutable state.
func buildAtomics(numbers []int, centers []r3.Vec, build func(a int) (*AtomicGrid, error)) ([]*AtomicGrid, error) {
	if len(numbers) != len(centers) {
		return nil, fmt.Errorf("%w: %d atomic numbers for %d centers",
			ErrShapeMismatch, len(numbers), len(centers))
	}
	atomics := make([]*AtomicGrid, len(numbers))
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for a := range numbers {
		eg.Go(func() error {
			ag, err := build(a)
			if err != nil {
				return fmt.Errorf("atom %d (Z=%d): %w", a, numbers[a], err)
			}
			atomics[a] = ag
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return atomics, nil
}

// NewMolecularGridFromDegrees builds the molecular grid with one explicit
// angular degree per atom, applied uniformly across that atom's shells.
func NewMolecularGridFromDegrees(numbers []int, centers []r3.Vec, rs RadialSpec, rule angular.Rule, degrees []int, w partition.Weigher, store bool) (*MolecularGrid, error) {
	if len(degrees) != len(numbers) {
		return nil, fmt.Errorf("%w: %d degrees for %d atoms", ErrShapeMismatch, len(degrees), len(numbers))
	}
	atomics, err := buildAtomics(numbers, centers, func(a int) (*AtomicGrid, error) {
		rad, err := rs.build(numbers[a])
		if err != nil {
			return nil, err
		}
		return NewAtomicGrid(centers[a], rad, rule, Explicit{degrees[a]})
	})
	if err != nil {
		return nil, err
	}
	return NewMolecularGrid(numbers, atomics, w, store)
}

// NewMolecularGridFromPreset builds the molecular grid from a named preset,
// resolving radial counts and angular degrees per element row. Presets use
// the Lebedev rule.
func NewMolecularGridFromPreset(numbers []int, centers []r3.Vec, preset string, w partition.Weigher, store bool) (*MolecularGrid, error) {
	if len(numbers) != len(centers) {
		return nil, fmt.Errorf("%w: %d atomic numbers for %d centers",
			ErrShapeMismatch, len(numbers), len(centers))
	}
	// Validate the name up front so a bad preset fails before any
	// construction work happens.
	for _, z := range numbers {
		if _, err := LookupPreset(preset, z); err != nil {
			return nil, err
		}
	}
	atomics, err := buildAtomics(numbers, centers, func(a int) (*AtomicGrid, error) {
		level, err := LookupPreset(preset, numbers[a])
		if err != nil {
			return nil, err
		}
		rad, err := RadialSpec{Count: level.RadialCount}.build(numbers[a])
		if err != nil {
			return nil, err
		}
		return NewAtomicGrid(centers[a], rad, angular.Lebedev{}, Explicit{level.AngularDegree})
	})
	if err != nil {
		return nil, err
	}
	return NewMolecularGrid(numbers, atomics, w, store)
}

// NewMolecularGridFromSize builds the molecular grid with one angular grid
// size (point count) applied uniformly to every shell of every atom.
func NewMolecularGridFromSize(numbers []int, centers []r3.Vec, rs RadialSpec, rule angular.Rule, size int, w partition.Weigher, store bool) (*MolecularGrid, error) {
	atomics, err := buildAtomics(numbers, centers, func(a int) (*AtomicGrid, error) {
		rad, err := rs.build(numbers[a])
		if err != nil {
			return nil, err
		}
		return NewAtomicGrid(centers[a], rad, rule, FixedSize(size))
	})
	if err != nil {
		return nil, err
	}
	return NewMolecularGrid(numbers, atomics, w, store)
}

// NewMolecularGridFromSectors builds the molecular grid with per-atom
// sector pruning: sectors[a] prunes the angular degree of atom a by radial
// region.
func NewMolecularGridFromSectors(numbers []int, centers []r3.Vec, rs RadialSpec, rule angular.Rule, sectors []Sectors, w partition.Weigher, store bool) (*MolecularGrid, error) {
	if len(sectors) != len(numbers) {
		return nil, fmt.Errorf("%w: %d sector specs for %d atoms", ErrShapeMismatch, len(sectors), len(numbers))
	}
	atomics, err := buildAtomics(numbers, centers, func(a int) (*AtomicGrid, error) {
		rad, err := rs.build(numbers[a])
		if err != nil {
			return nil, err
		}
		return NewAtomicGrid(centers[a], rad, rule, sectors[a])
	})
	if err != nil {
		return nil, err
	}
	return NewMolecularGrid(numbers, atomics, w, store)
}
