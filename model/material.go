package model

// Material describes a homogeneous material used to derive part masses
// from their volumes.
type Material struct {
	Name    string
	Density float64 // kg/m^3
}

// Validate checks that the material can be used for mass derivation.
func (m Material) Validate() error {
	if m.Density <= 0 {
		return &InvalidDimensionError{Part: m.Name, Field: "density", Value: m.Density}
	}
	return nil
}
