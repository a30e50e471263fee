// Package partition apportions three-dimensional space among atomic centers.
// A Weigher assigns every (center, point) pair a smooth weight in [0,1] such
// that the weights over all centers sum to 1 at every point; multiplying a
// point's single-center quadrature weight by its partition weight turns a
// union of atom-centered grids into a molecular quadrature without double
// counting.
package partition

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrInvalidParameter indicates unusable weigher configuration or
// inconsistent centers/numbers input.
var ErrInvalidParameter = errors.New("partition: invalid parameter")

// Weigher computes the partition-weight matrix for a set of points and
// atomic centers. The returned matrix has one row per center and one column
// per point; each column sums to 1 except where every cell function
// vanished, which is reported through the monitoring channel.
type Weigher interface {
	// Weights returns the (len(centers) × len(points)) weight matrix.
	// numbers holds the atomic number of each center and must match
	// centers in length.
	Weights(points, centers []r3.Vec, numbers []int) (*mat.Dense, error)
	// Name identifies the weigher in diagnostics and config files.
	Name() string
}

func validateCenters(name string, centers []r3.Vec, numbers []int) error {
	if len(centers) == 0 {
		return fmt.Errorf("%w: %s needs at least one center", ErrInvalidParameter, name)
	}
	if len(numbers) != len(centers) {
		return fmt.Errorf("%w: %s got %d centers but %d atomic numbers",
			ErrInvalidParameter, name, len(centers), len(numbers))
	}
	for i, z := range numbers {
		if z < 1 {
			return fmt.Errorf("%w: %s center %d has atomic number %d",
				ErrInvalidParameter, name, i, z)
		}
	}
	return nil
}
