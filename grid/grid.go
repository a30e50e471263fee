// Package grid composes radial and angular quadratures into atom-centered
// three-dimensional grids, partitions space among atoms with a fuzzy-cell
// weighting scheme, and assembles the result into a single molecular
// quadrature supporting numerical integration of sampled scalar fields.
//
// The pipeline is: a one-dimensional quadrature (package quadrature) mapped
// onto [0,∞) (package radial), crossed per shell with a unit-sphere grid
// (package angular) to form an AtomicGrid, one per atom; a MolecularGrid
// unions the atomic grids with partition weights (package partition) so
// that Integrate sums each sampled value against exactly one weight.
package grid

import "errors"

// Sentinel errors for grid construction and integration. Callers match with
// errors.Is.
var (
	// ErrShapeMismatch indicates parallel arrays of inconsistent length:
	// degrees vs. radial shells, sampled values vs. grid points, atomic
	// numbers vs. centers.
	ErrShapeMismatch = errors.New("grid: shape mismatch")
	// ErrInvalidSector indicates non-increasing sector boundaries or a
	// degree list that does not have exactly one more entry than the
	// boundary list.
	ErrInvalidSector = errors.New("grid: invalid sector specification")
	// ErrUnknownPreset indicates a preset name outside the tabulated set.
	ErrUnknownPreset = errors.New("grid: unknown preset")
)
