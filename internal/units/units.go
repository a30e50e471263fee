// Package units provides shared constants and validation for length units
package units

// Unit constants
const (
	Bohr     = "bohr"
	Angstrom = "angstrom"
	NM       = "nm"
	PM       = "pm"
)

// ValidUnits contains all valid unit values
var ValidUnits = []string{Bohr, Angstrom, NM, PM}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return "bohr, angstrom, nm, pm"
}

// ToBohr converts a length in the given units to bohr, the unit all grid
// geometry is expressed in (1 bohr = 0.529177 angstrom).
func ToBohr(length float64, sourceUnits string) float64 {
	const bohrPerAngstrom = 1 / 0.529177
	switch sourceUnits {
	case Angstrom:
		return length * bohrPerAngstrom
	case NM:
		return length * 10 * bohrPerAngstrom
	case PM:
		return length * 0.01 * bohrPerAngstrom
	case Bohr:
		return length // no conversion needed
	default:
		return length // default to bohr if unknown unit
	}
}
