package core

import "github.com/signalsfoundry/flapper-rig/model"

// Materials used across the bench apparatus.
var (
	Steel    = model.Material{Name: "steel", Density: 7700}
	Aluminum = model.Material{Name: "aluminum", Density: 2700}
	Acrylic  = model.Material{Name: "acrylic", Density: 1180}
	Water    = model.Material{Name: "water", Density: 997}
)

// Inch is the exact inch-to-metre conversion for the imperial stock
// (shafts and couplers are imperial; everything else is metric).
const Inch = 0.0254

// Part names. The estimator and the serving layer address parts by
// these; keep them stable.
const (
	PartFlange       = "coupler-flange"
	PartAcrylicDisk  = "acrylic-disk"
	PartCouplerBolts = "coupler-bolts"
	PartShaftHalf18  = "shaft-1/2x18"
	PartShaftHalf9   = "shaft-1/2x9"
	PartShaftQtr14   = "shaft-1/4x14"
	PartPulleys      = "pulleys"
	PartShaftCoupler = "shaft-coupler"
	PartWing         = "wing"
	PartAddedMass    = "added-mass"
)

// Aggregate names reported alongside the parts.
const (
	NameElasticCoupler  = "elastic-coupler"
	NameSystemTotal     = "system-total"
	NameDiskAssembly    = "inertia-disk-assembly"
	PartInertiaDisk     = "inertia-disk"
	PartInertiaDiskRods = "inertia-disk-rods"
)

// DefaultRig returns the canonical Resonant Flapper apparatus as
// measured on the bench: dimensions from calipers, masses either from
// the scale or derived from stock density.
func DefaultRig() model.RigDefinition {
	return model.RigDefinition{
		Name: "resonant-flapper",

		Flange: model.Flange{
			Hub: model.Disk{
				Name:     PartFlange + "-hub",
				Radius:   0.012, // m
				Height:   0.008, // m
				Material: Aluminum,
			},
			Plate: model.Disk{
				Name:     PartFlange + "-plate",
				Radius:   0.030, // m
				Height:   0.008, // m
				Material: Aluminum,
			},
		},
		AcrylicDisk: model.Disk{
			Name:     PartAcrylicDisk,
			Radius:   0.055, // m
			Height:   0.005, // m
			Material: Acrylic,
		},
		CouplerBolts: model.BoltCircle{
			Name:     PartCouplerBolts,
			Count:    4,
			UnitMass: 0.0098, // kg, bolt plus nut
			Radius:   0.037,  // m
		},

		Shafts: []model.Shaft{
			{Name: PartShaftHalf18, Radius: 0.25 * Inch, Length: 18 * Inch, Material: Steel},
			{Name: PartShaftHalf9, Radius: 0.25 * Inch, Length: 9 * Inch, Material: Steel},
			{Name: PartShaftQtr14, Radius: 0.125 * Inch, Length: 14 * Inch, Material: Steel},
		},

		Pulley: model.Disk{
			Name:   PartPulleys,
			Mass:   0.3,   // kg
			Radius: 0.039, // m
		},
		PulleyCount: 3,

		ShaftCoupler: model.Disk{
			Name:   PartShaftCoupler,
			Mass:   0.24,     // kg
			Radius: 0.015875, // m, 1-1/4" OD
		},

		Wing: model.Plate{
			Name:      PartWing,
			Mass:      0.0355,      // kg
			Length:    0.100,       // m
			Width:     0.036,       // m
			Thickness: 0.25 * Inch, // m
		},
		Fluid: Water,

		InertiaDisk: model.AnnularDisk{
			Name:        PartInertiaDisk,
			InnerRadius: 0.0099, // m
			OuterRadius: 0.049,  // m
			Height:      0.010,  // m
			Material:    Steel,
		},
		InertiaDiskRods: model.BoltCircle{
			Name:     PartInertiaDiskRods,
			Count:    6,
			UnitMass: 0.0505, // kg
			Radius:   0.041,  // m
		},
	}
}
