package model

import "fmt"

// InvalidDimensionError reports a rig definition field that violates the
// physical constraints: masses, radii, lengths, and densities must be
// positive, and inner radii strictly smaller than outer radii.
type InvalidDimensionError struct {
	Part  string
	Field string
	Value float64
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("invalid dimension: part %q field %q = %v", e.Part, e.Field, e.Value)
}
