package grid

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/SophiaLi20/grid/angular"
	"github.com/SophiaLi20/grid/internal/testutil"
	"github.com/SophiaLi20/grid/quadrature"
	"github.com/SophiaLi20/grid/radial"
)

func testRadialGrid(t *testing.T, n int, scale float64) radial.Grid {
	t.Helper()
	q, err := quadrature.GaussChebyshev{Kind: 2}.Generate(n)
	testutil.AssertNoError(t, err)
	rad, err := radial.Apply(radial.Becke{Scale: scale}, q)
	testutil.AssertNoError(t, err)
	return rad
}

func TestNewAtomicGridShape(t *testing.T) {
	rad := testRadialGrid(t, 10, 1.0)
	center := r3.Vec{X: 1, Y: -2, Z: 0.5}
	g, err := NewAtomicGrid(center, rad, angular.Lebedev{}, Explicit{7})
	testutil.AssertNoError(t, err)
	testutil.AssertAllFinite(t, g.Weights)
	// Degree 7 is the 26-point grid, on every one of the 10 shells.
	if g.Len() != 10*26 {
		t.Fatalf("got %d points, want %d", g.Len(), 10*26)
	}
	if len(g.Weights) != g.Len() || len(g.ShellIndex) != g.Len() {
		t.Fatalf("weights/shell-index length mismatch: %d, %d, %d",
			g.Len(), len(g.Weights), len(g.ShellIndex))
	}
	// Points of shell s must sit at distance rad.R[s] from the center.
	for i, p := range g.Points {
		r := r3.Norm(r3.Sub(p, center))
		want := rad.R[g.ShellIndex[i]]
		if math.Abs(r-want) > 1e-12*want {
			t.Errorf("point %d: distance %v, want %v", i, r, want)
		}
	}
}

func TestAtomicGridWeightsIncludeJacobian(t *testing.T) {
	rad := testRadialGrid(t, 4, 1.0)
	g, err := NewAtomicGrid(r3.Vec{}, rad, angular.Lebedev{}, Explicit{3})
	if err != nil {
		t.Fatal(err)
	}
	// First shell: 6 axis points each with angular weight 4π/6; total
	// shell weight must be w_radial·r²·4π.
	r0, w0 := rad.R[0], rad.Weights[0]
	var sum float64
	for i := 0; i < 6; i++ {
		sum += g.Weights[i]
	}
	want := w0 * r0 * r0 * 4 * math.Pi
	testutil.AssertInDelta(t, sum, want, 1e-12*want)
}

func TestExplicitDegreesBroadcastAndMismatch(t *testing.T) {
	rad := testRadialGrid(t, 5, 1.0)

	g, err := NewAtomicGrid(r3.Vec{}, rad, angular.Lebedev{}, Explicit{3, 3, 5, 5, 7})
	if err != nil {
		t.Fatal(err)
	}
	if g.Len() != 6+6+14+14+26 {
		t.Errorf("per-shell degrees: %d points, want %d", g.Len(), 6+6+14+14+26)
	}

	if _, err := NewAtomicGrid(r3.Vec{}, rad, angular.Lebedev{}, Explicit{3, 5}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("2 degrees for 5 shells: %v, want ErrShapeMismatch", err)
	}
}

func TestFixedSizeMapsToMinimalDegree(t *testing.T) {
	rad := testRadialGrid(t, 3, 1.0)
	// 30 points needs at least the 38-point degree-9 Lebedev grid.
	g, err := NewAtomicGrid(r3.Vec{}, rad, angular.Lebedev{}, FixedSize(30))
	if err != nil {
		t.Fatal(err)
	}
	if g.Len() != 3*38 {
		t.Errorf("size 30: %d points, want %d", g.Len(), 3*38)
	}
	for _, deg := range g.ShellDegrees {
		if deg != 9 {
			t.Errorf("shell degree = %d, want 9", deg)
		}
	}
}

func TestSectorBoundaryPolicy(t *testing.T) {
	// Pin the radii via a linear transform on a trapezoid so each shell's
	// sector is known exactly. Scale R=1: boundaries {0.5,1.0,1.5},
	// degrees [3,5,7,3].
	spec := Sectors{Scale: 1, Boundaries: []float64{0.5, 1.0, 1.5}, Degrees: []int{3, 5, 7, 3}}
	r := []float64{0.3, 0.75, 1.2, 2.0}
	got, err := spec.shellDegrees(r, angular.Lebedev{})
	if err != nil {
		t.Fatal(err)
	}
	want := []int{3, 5, 7, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("r=%v: degree %d, want %d", r[i], got[i], want[i])
		}
	}

	// Boundary values belong to the outer sector: r == R·a_k selects k+1.
	got, err = spec.shellDegrees([]float64{0.5, 1.0, 1.5}, angular.Lebedev{})
	if err != nil {
		t.Fatal(err)
	}
	want = []int{5, 7, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("boundary r=%v: degree %d, want %d", []float64{0.5, 1.0, 1.5}[i], got[i], want[i])
		}
	}
}

func TestSectorValidation(t *testing.T) {
	cases := []struct {
		name string
		s    Sectors
	}{
		{"degree count", Sectors{Scale: 1, Boundaries: []float64{0.5, 1.0}, Degrees: []int{3, 5}}},
		{"non-increasing", Sectors{Scale: 1, Boundaries: []float64{1.0, 0.5}, Degrees: []int{3, 5, 7}}},
		{"duplicate boundary", Sectors{Scale: 1, Boundaries: []float64{1.0, 1.0}, Degrees: []int{3, 5, 7}}},
		{"bad scale", Sectors{Scale: 0, Boundaries: []float64{0.5}, Degrees: []int{3, 5}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.s.shellDegrees([]float64{1, 2}, angular.Lebedev{}); !errors.Is(err, ErrInvalidSector) {
				t.Errorf("error = %v, want ErrInvalidSector", err)
			}
		})
	}
}

func TestSectorPruningReducesPoints(t *testing.T) {
	rad := testRadialGrid(t, 30, 1.0)
	pruned, err := NewAtomicGrid(r3.Vec{}, rad, angular.Lebedev{},
		Sectors{Scale: 1, Boundaries: []float64{0.3, 4.0}, Degrees: []int{7, 17, 7}})
	if err != nil {
		t.Fatal(err)
	}
	full, err := NewAtomicGrid(r3.Vec{}, rad, angular.Lebedev{}, Explicit{17})
	if err != nil {
		t.Fatal(err)
	}
	if pruned.Len() >= full.Len() {
		t.Errorf("pruned grid has %d points, full grid %d", pruned.Len(), full.Len())
	}
}

func TestNewAtomicGridRejectsEmptyRadial(t *testing.T) {
	if _, err := NewAtomicGrid(r3.Vec{}, radial.Grid{}, angular.Lebedev{}, Explicit{3}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("empty radial grid: %v, want ErrShapeMismatch", err)
	}
}

func TestNewAtomicGridPropagatesUnsupportedDegree(t *testing.T) {
	rad := testRadialGrid(t, 3, 1.0)
	if _, err := NewAtomicGrid(r3.Vec{}, rad, angular.Lebedev{}, Explicit{99}); !errors.Is(err, angular.ErrUnsupportedDegree) {
		t.Errorf("degree 99: %v, want angular.ErrUnsupportedDegree", err)
	}
}
