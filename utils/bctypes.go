package utils

import (
	"fmt"
	"strings"
)

// BCType selects the edge treatment applied to the adjoint fields at the
// rectangular domain boundary.
type BCType uint8

const (
	// BCClosed copies the adjacent interior value to the border
	// (land/closed edge).
	BCClosed BCType = iota

	// BCPeriodic wraps finite differences across the opposite edge.
	BCPeriodic
)

func (bc BCType) String() string {
	switch bc {
	case BCClosed:
		return "closed"
	case BCPeriodic:
		return "periodic"
	}
	return fmt.Sprintf("BCType(%d)", uint8(bc))
}

// Valid reports whether bc is one of the defined boundary conditions.
func (bc BCType) Valid() bool {
	return bc == BCClosed || bc == BCPeriodic
}

func ParseBCType(s string) (bc BCType, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "closed":
		bc = BCClosed
	case "periodic":
		bc = BCPeriodic
	default:
		err = fmt.Errorf("unknown boundary condition %q (want closed or periodic)", s)
	}
	return
}
