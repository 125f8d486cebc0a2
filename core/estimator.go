package core

import (
	"fmt"

	"github.com/signalsfoundry/flapper-rig/model"
)

// Item is one named inertia value in the breakdown, in kg*m^2.
type Item struct {
	Name  string  `json:"name"`
	Value float64 `json:"inertia_kg_m2"`
}

// Breakdown holds every computed inertia in evaluation order, ending
// with the two aggregates (system total and inertia-disk assembly).
type Breakdown struct {
	items []Item
	index map[string]int
}

// Items returns the breakdown entries in evaluation order. The returned
// slice is a copy.
func (b *Breakdown) Items() []Item {
	out := make([]Item, len(b.items))
	copy(out, b.items)
	return out
}

// Value looks up a named entry.
func (b *Breakdown) Value(name string) (float64, bool) {
	i, ok := b.index[name]
	if !ok {
		return 0, false
	}
	return b.items[i].Value, true
}

// SystemInertia returns the total flapper-system inertia.
func (b *Breakdown) SystemInertia() float64 {
	v, _ := b.Value(NameSystemTotal)
	return v
}

// DiskAssemblyInertia returns the inertia-disk assembly total.
func (b *Breakdown) DiskAssemblyInertia() float64 {
	v, _ := b.Value(NameDiskAssembly)
	return v
}

func (b *Breakdown) add(name string, value float64) {
	b.index[name] = len(b.items)
	b.items = append(b.items, Item{Name: name, Value: value})
}

// diskMass resolves a solid disk's mass, deriving it from the cylinder
// volume when no measured mass is recorded.
func diskMass(d model.Disk) float64 {
	if d.Mass != 0 {
		return d.Mass
	}
	return d.Material.Density * CylinderVolume(d.Radius, d.Height)
}

func annularDiskMass(d model.AnnularDisk) float64 {
	if d.Mass != 0 {
		return d.Mass
	}
	return d.Material.Density * AnnulusVolume(d.InnerRadius, d.OuterRadius, d.Height)
}

func shaftMass(s model.Shaft) float64 {
	return s.Material.Density * CylinderVolume(s.Radius, s.Length)
}

// flangeInertia is the flange sub-term shared between the elastic
// coupler and the inertia-disk assembly: the flange mass split across
// the hub and plate radii.
func flangeInertia(f model.Flange) float64 {
	hub := SolidDiskInertia(diskMass(f.Hub), f.Hub.Radius)
	plate := SolidDiskInertia(diskMass(f.Plate), f.Plate.Radius)
	return hub + plate
}

// Estimate validates the rig definition and evaluates every component
// inertia in the fixed bench order:
//
//  1. elastic coupler (flange + acrylic disk + bolts)
//  2. the three drive shafts, individually
//  3. pulleys (one pulley times count)
//  4. shaft-to-shaft coupler
//  5. wing about its root
//  6. added-mass fluid cylinder
//  7. system total = sum of 1-6
//  8. inertia-disk assembly (hollow disk + rods + flange from step 1)
func Estimate(rig model.RigDefinition) (*Breakdown, error) {
	if err := rig.Validate(); err != nil {
		return nil, fmt.Errorf("estimate %q: %w", rig.Name, err)
	}

	b := &Breakdown{index: make(map[string]int)}

	// Step 1: elastic coupler.
	iFlange := flangeInertia(rig.Flange)
	iAcrylic := SolidDiskInertia(diskMass(rig.AcrylicDisk), rig.AcrylicDisk.Radius)
	iBolts := PointMassInertia(rig.CouplerBolts.Count, rig.CouplerBolts.UnitMass, rig.CouplerBolts.Radius)
	iCoupler := iFlange + iAcrylic + iBolts
	b.add(PartFlange, iFlange)
	b.add(NameElasticCoupler, iCoupler)

	// Step 2: shafts, each contributing individually to the total.
	system := iCoupler
	for _, s := range rig.Shafts {
		iShaft := SolidDiskInertia(shaftMass(s), s.Radius)
		b.add(s.Name, iShaft)
		system += iShaft
	}

	// Step 3: pulleys.
	iPulleys := float64(rig.PulleyCount) * SolidDiskInertia(diskMass(rig.Pulley), rig.Pulley.Radius)
	b.add(PartPulleys, iPulleys)
	system += iPulleys

	// Step 4: shaft-to-shaft coupler.
	iShaftCoupler := SolidDiskInertia(diskMass(rig.ShaftCoupler), rig.ShaftCoupler.Radius)
	b.add(PartShaftCoupler, iShaftCoupler)
	system += iShaftCoupler

	// Step 5: wing about its root end.
	iWing := PrismEndInertia(rig.Wing.Mass, rig.Wing.Length, rig.Wing.Thickness)
	b.add(PartWing, iWing)
	system += iWing

	// Step 6: added mass. The entrained fluid is approximated as a
	// cylinder of Fluid with the wing's length as height and the wing's
	// width as diameter, swung about one end.
	amRadius := rig.Wing.Width / 2
	amMass := rig.Fluid.Density * CylinderVolume(amRadius, rig.Wing.Length)
	iAddedMass := CylinderEndInertia(amMass, amRadius, rig.Wing.Length)
	b.add(PartAddedMass, iAddedMass)
	system += iAddedMass

	// Step 7: system total.
	b.add(NameSystemTotal, system)

	// Step 8: inertia-disk assembly, reusing the flange sub-term.
	iDisk := HollowDiskInertia(annularDiskMass(rig.InertiaDisk), rig.InertiaDisk.InnerRadius, rig.InertiaDisk.OuterRadius)
	iRods := PointMassInertia(rig.InertiaDiskRods.Count, rig.InertiaDiskRods.UnitMass, rig.InertiaDiskRods.Radius)
	b.add(PartInertiaDisk, iDisk)
	b.add(PartInertiaDiskRods, iRods)
	b.add(NameDiskAssembly, iDisk+iRods+iFlange)

	return b, nil
}
