package model

// RigDefinition ties together every sub-component of the flapper
// apparatus. The estimator walks it in a fixed order; see core.Estimate.
type RigDefinition struct {
	Name string

	// Elastic coupler between the drive and the flapper shaft.
	Flange       Flange
	AcrylicDisk  Disk
	CouplerBolts BoltCircle

	// Drive-train shafts, counted individually in the system total.
	Shafts []Shaft

	// Identical timing pulleys; PulleyCount scales one pulley's inertia.
	Pulley      Disk
	PulleyCount int

	ShaftCoupler Disk

	// The wing and the fluid it drags. The added-mass cylinder takes the
	// wing's length as its height and the wing's width as its diameter.
	Wing  Plate
	Fluid Material

	// Inertia-disk assembly: hollow disk, its tension rods, plus the
	// flange inertia reused from the elastic coupler.
	InertiaDisk     AnnularDisk
	InertiaDiskRods BoltCircle
}

// Validate checks every part of the rig definition and returns the first
// violation found, in the estimator's evaluation order.
func (r RigDefinition) Validate() error {
	if err := r.Flange.Validate(); err != nil {
		return err
	}
	if err := r.AcrylicDisk.Validate(); err != nil {
		return err
	}
	if err := r.CouplerBolts.Validate(); err != nil {
		return err
	}
	for _, s := range r.Shafts {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	if err := r.Pulley.Validate(); err != nil {
		return err
	}
	if r.PulleyCount <= 0 {
		return &InvalidDimensionError{Part: r.Pulley.Name, Field: "pulley_count", Value: float64(r.PulleyCount)}
	}
	if err := r.ShaftCoupler.Validate(); err != nil {
		return err
	}
	if err := r.Wing.Validate(); err != nil {
		return err
	}
	if err := r.Fluid.Validate(); err != nil {
		return err
	}
	if err := r.InertiaDisk.Validate(); err != nil {
		return err
	}
	return r.InertiaDiskRods.Validate()
}
