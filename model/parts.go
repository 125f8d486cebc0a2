package model

// Parts are plain measurement records. A part either carries a measured
// Mass directly, or leaves Mass at zero and derives it from its geometry
// and Material (volume times density). Radii, lengths, and heights are in
// metres; masses in kg.

// Disk is a solid disk or short cylinder rotating about its central axis.
type Disk struct {
	Name     string
	Mass     float64 // kg; zero means derive from geometry and material
	Radius   float64 // m
	Height   float64 // m; required when Mass is derived
	Material Material
}

// Validate enforces the dimensional constraints for a solid disk.
func (d Disk) Validate() error {
	if d.Radius <= 0 {
		return &InvalidDimensionError{Part: d.Name, Field: "radius", Value: d.Radius}
	}
	if d.Mass < 0 {
		return &InvalidDimensionError{Part: d.Name, Field: "mass", Value: d.Mass}
	}
	if d.Mass == 0 {
		if d.Height <= 0 {
			return &InvalidDimensionError{Part: d.Name, Field: "height", Value: d.Height}
		}
		if err := d.Material.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// AnnularDisk is a hollow disk rotating about its central axis.
type AnnularDisk struct {
	Name        string
	Mass        float64 // kg; zero means derive from geometry and material
	InnerRadius float64 // m
	OuterRadius float64 // m
	Height      float64 // m; required when Mass is derived
	Material    Material
}

// Validate enforces the dimensional constraints for an annular disk,
// including the strict inner < outer radius ordering.
func (d AnnularDisk) Validate() error {
	if d.InnerRadius < 0 {
		return &InvalidDimensionError{Part: d.Name, Field: "inner_radius", Value: d.InnerRadius}
	}
	if d.OuterRadius <= 0 || d.OuterRadius <= d.InnerRadius {
		return &InvalidDimensionError{Part: d.Name, Field: "outer_radius", Value: d.OuterRadius}
	}
	if d.Mass < 0 {
		return &InvalidDimensionError{Part: d.Name, Field: "mass", Value: d.Mass}
	}
	if d.Mass == 0 {
		if d.Height <= 0 {
			return &InvalidDimensionError{Part: d.Name, Field: "height", Value: d.Height}
		}
		if err := d.Material.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Shaft is a solid cylinder spinning about its own long axis. Its mass is
// always derived from the stock material.
type Shaft struct {
	Name     string
	Radius   float64 // m
	Length   float64 // m
	Material Material
}

// Validate enforces the dimensional constraints for a shaft.
func (s Shaft) Validate() error {
	if s.Radius <= 0 {
		return &InvalidDimensionError{Part: s.Name, Field: "radius", Value: s.Radius}
	}
	if s.Length <= 0 {
		return &InvalidDimensionError{Part: s.Name, Field: "length", Value: s.Length}
	}
	return s.Material.Validate()
}

// BoltCircle is a set of identical point masses (bolts, nuts, rods) on a
// common circle around the rotation axis.
type BoltCircle struct {
	Name     string
	Count    int
	UnitMass float64 // kg per item
	Radius   float64 // m, circle radius
}

// Validate enforces the dimensional constraints for a bolt circle.
func (b BoltCircle) Validate() error {
	if b.Count <= 0 {
		return &InvalidDimensionError{Part: b.Name, Field: "count", Value: float64(b.Count)}
	}
	if b.UnitMass <= 0 {
		return &InvalidDimensionError{Part: b.Name, Field: "unit_mass", Value: b.UnitMass}
	}
	if b.Radius <= 0 {
		return &InvalidDimensionError{Part: b.Name, Field: "radius", Value: b.Radius}
	}
	return nil
}

// Plate is a thin rectangular prism flapping about an axis through one
// end, parallel to its width edge. Length runs perpendicular to the axis;
// Width is also the diameter of the added-mass fluid cylinder.
type Plate struct {
	Name      string
	Mass      float64 // kg, measured
	Length    float64 // m
	Width     float64 // m
	Thickness float64 // m
}

// Validate enforces the dimensional constraints for a plate.
func (p Plate) Validate() error {
	if p.Mass <= 0 {
		return &InvalidDimensionError{Part: p.Name, Field: "mass", Value: p.Mass}
	}
	if p.Length <= 0 {
		return &InvalidDimensionError{Part: p.Name, Field: "length", Value: p.Length}
	}
	if p.Width <= 0 {
		return &InvalidDimensionError{Part: p.Name, Field: "width", Value: p.Width}
	}
	if p.Thickness <= 0 {
		return &InvalidDimensionError{Part: p.Name, Field: "thickness", Value: p.Thickness}
	}
	return nil
}

// Flange is the elastic coupler's aluminum flange, modelled as a hub disk
// and a plate disk. The two disks split the flange mass between the two
// radii; their inertia sum is reused by the inertia-disk assembly.
type Flange struct {
	Hub   Disk
	Plate Disk
}

// Validate enforces the dimensional constraints for both flange disks.
func (f Flange) Validate() error {
	if err := f.Hub.Validate(); err != nil {
		return err
	}
	return f.Plate.Validate()
}
