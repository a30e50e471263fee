package grid

import (
	"fmt"

	"github.com/SophiaLi20/grid/angular"
)

// DegreeSpec resolves the angular degree to use at each radial shell. The
// four construction strategies (explicit, preset, fixed size, pruned
// sectors) are all expressed as values of this type feeding the single
// AtomicGrid constructor; presets resolve to Explicit before construction.
type DegreeSpec interface {
	// shellDegrees returns one angular degree per entry of r.
	shellDegrees(r []float64, rule angular.Rule) ([]int, error)
}

// Explicit lists one angular degree per radial shell. A single entry
// broadcasts to every shell; any other length mismatch is rejected.
type Explicit []int

func (e Explicit) shellDegrees(r []float64, _ angular.Rule) ([]int, error) {
	switch len(e) {
	case len(r):
		out := make([]int, len(e))
		copy(out, e)
		return out, nil
	case 1:
		out := make([]int, len(r))
		for i := range out {
			out[i] = e[0]
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %d degrees for %d radial shells", ErrShapeMismatch, len(e), len(r))
	}
}

// FixedSize applies one angular grid size (point count) uniformly; the
// size is mapped to the smallest degree the rule supports with at least
// that many points.
type FixedSize int

func (s FixedSize) shellDegrees(r []float64, rule angular.Rule) ([]int, error) {
	deg, err := angular.SizeToDegree(rule, int(s))
	if err != nil {
		return nil, err
	}
	return Explicit{deg}.shellDegrees(r, rule)
}

// Sectors prunes the angular degree by radial region. Boundaries are in
// units of Scale: a shell at radius r gets Degrees[k], where k counts the
// boundaries with Scale·Boundaries[k] ≤ r. Degrees must hold exactly
// len(Boundaries)+1 entries and Boundaries must increase strictly.
type Sectors struct {
	Scale      float64
	Boundaries []float64
	Degrees    []int
}

func (s Sectors) shellDegrees(r []float64, _ angular.Rule) ([]int, error) {
	if len(s.Degrees) != len(s.Boundaries)+1 {
		return nil, fmt.Errorf("%w: %d boundaries need %d degrees, got %d",
			ErrInvalidSector, len(s.Boundaries), len(s.Boundaries)+1, len(s.Degrees))
	}
	if s.Scale <= 0 {
		return nil, fmt.Errorf("%w: scale %v must be positive", ErrInvalidSector, s.Scale)
	}
	for i := 1; i < len(s.Boundaries); i++ {
		if s.Boundaries[i] <= s.Boundaries[i-1] {
			return nil, fmt.Errorf("%w: boundaries not strictly increasing at %d (%v, %v)",
				ErrInvalidSector, i, s.Boundaries[i-1], s.Boundaries[i])
		}
	}
	out := make([]int, len(r))
	for i, ri := range r {
		k := 0
		for k < len(s.Boundaries) && ri >= s.Scale*s.Boundaries[k] {
			k++
		}
		out[i] = s.Degrees[k]
	}
	return out, nil
}
