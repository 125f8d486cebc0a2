package core

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/signalsfoundry/flapper-rig/model"
)

// LoadRigDefinition reads a JSON rig definition from r. Fields that are
// absent keep the canonical apparatus values from DefaultRig, so a bench
// file only needs to restate what actually changed (typically a single
// re-weighed mass). The merged definition is validated before being
// returned.
func LoadRigDefinition(r io.Reader) (model.RigDefinition, error) {
	rig := DefaultRig()

	var payload rigJSON
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		return model.RigDefinition{}, fmt.Errorf("LoadRigDefinition: decode failed: %w", err)
	}

	payload.apply(&rig)

	if err := rig.Validate(); err != nil {
		return model.RigDefinition{}, fmt.Errorf("LoadRigDefinition: %w", err)
	}
	return rig, nil
}

// JSON shapes are unexported so the file format can evolve without
// leaking into the API. Pointers distinguish "absent" from zero.
type rigJSON struct {
	Name            *string         `json:"name"`
	Flange          *flangeJSON     `json:"flange"`
	AcrylicDisk     *diskJSON       `json:"acrylic_disk"`
	CouplerBolts    *boltCircleJSON `json:"coupler_bolts"`
	Shafts          []shaftJSON     `json:"shafts"`
	Pulley          *diskJSON       `json:"pulley"`
	PulleyCount     *int            `json:"pulley_count"`
	ShaftCoupler    *diskJSON       `json:"shaft_coupler"`
	Wing            *plateJSON      `json:"wing"`
	FluidDensity    *float64        `json:"fluid_density"`
	InertiaDisk     *annularJSON    `json:"inertia_disk"`
	InertiaDiskRods *boltCircleJSON `json:"inertia_disk_rods"`
}

type diskJSON struct {
	Mass    *float64 `json:"mass"`
	Radius  *float64 `json:"radius"`
	Height  *float64 `json:"height"`
	Density *float64 `json:"density"`
}

type annularJSON struct {
	Mass        *float64 `json:"mass"`
	InnerRadius *float64 `json:"inner_radius"`
	OuterRadius *float64 `json:"outer_radius"`
	Height      *float64 `json:"height"`
	Density     *float64 `json:"density"`
}

type shaftJSON struct {
	Name    string   `json:"name"`
	Radius  *float64 `json:"radius"`
	Length  *float64 `json:"length"`
	Density *float64 `json:"density"`
}

type boltCircleJSON struct {
	Count    *int     `json:"count"`
	UnitMass *float64 `json:"unit_mass"`
	Radius   *float64 `json:"radius"`
}

type plateJSON struct {
	Mass      *float64 `json:"mass"`
	Length    *float64 `json:"length"`
	Width     *float64 `json:"width"`
	Thickness *float64 `json:"thickness"`
}

type flangeJSON struct {
	Hub   *diskJSON `json:"hub"`
	Plate *diskJSON `json:"plate"`
}

func (p *rigJSON) apply(rig *model.RigDefinition) {
	if p.Name != nil {
		rig.Name = *p.Name
	}
	if p.Flange != nil {
		if p.Flange.Hub != nil {
			p.Flange.Hub.apply(&rig.Flange.Hub)
		}
		if p.Flange.Plate != nil {
			p.Flange.Plate.apply(&rig.Flange.Plate)
		}
	}
	if p.AcrylicDisk != nil {
		p.AcrylicDisk.apply(&rig.AcrylicDisk)
	}
	if p.CouplerBolts != nil {
		p.CouplerBolts.apply(&rig.CouplerBolts)
	}
	for _, sj := range p.Shafts {
		for i := range rig.Shafts {
			if rig.Shafts[i].Name == sj.Name {
				sj.apply(&rig.Shafts[i])
			}
		}
	}
	if p.Pulley != nil {
		p.Pulley.apply(&rig.Pulley)
	}
	if p.PulleyCount != nil {
		rig.PulleyCount = *p.PulleyCount
	}
	if p.ShaftCoupler != nil {
		p.ShaftCoupler.apply(&rig.ShaftCoupler)
	}
	if p.Wing != nil {
		p.Wing.apply(&rig.Wing)
	}
	if p.FluidDensity != nil {
		rig.Fluid.Density = *p.FluidDensity
	}
	if p.InertiaDisk != nil {
		p.InertiaDisk.apply(&rig.InertiaDisk)
	}
	if p.InertiaDiskRods != nil {
		p.InertiaDiskRods.apply(&rig.InertiaDiskRods)
	}
}

func (j *diskJSON) apply(d *model.Disk) {
	if j.Mass != nil {
		d.Mass = *j.Mass
	}
	if j.Radius != nil {
		d.Radius = *j.Radius
	}
	if j.Height != nil {
		d.Height = *j.Height
	}
	if j.Density != nil {
		d.Material.Density = *j.Density
	}
}

func (j *annularJSON) apply(d *model.AnnularDisk) {
	if j.Mass != nil {
		d.Mass = *j.Mass
	}
	if j.InnerRadius != nil {
		d.InnerRadius = *j.InnerRadius
	}
	if j.OuterRadius != nil {
		d.OuterRadius = *j.OuterRadius
	}
	if j.Height != nil {
		d.Height = *j.Height
	}
	if j.Density != nil {
		d.Material.Density = *j.Density
	}
}

func (j shaftJSON) apply(s *model.Shaft) {
	if j.Radius != nil {
		s.Radius = *j.Radius
	}
	if j.Length != nil {
		s.Length = *j.Length
	}
	if j.Density != nil {
		s.Material.Density = *j.Density
	}
}

func (j *boltCircleJSON) apply(b *model.BoltCircle) {
	if j.Count != nil {
		b.Count = *j.Count
	}
	if j.UnitMass != nil {
		b.UnitMass = *j.UnitMass
	}
	if j.Radius != nil {
		b.Radius = *j.Radius
	}
}

func (j *plateJSON) apply(p *model.Plate) {
	if j.Mass != nil {
		p.Mass = *j.Mass
	}
	if j.Length != nil {
		p.Length = *j.Length
	}
	if j.Width != nil {
		p.Width = *j.Width
	}
	if j.Thickness != nil {
		p.Thickness = *j.Thickness
	}
}
