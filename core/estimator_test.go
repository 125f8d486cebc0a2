package core

import (
	"errors"
	"testing"

	"github.com/signalsfoundry/flapper-rig/model"
)

func TestEstimateRejectsInvalidDimensions(t *testing.T) {
	rig := DefaultRig()
	rig.InertiaDisk.OuterRadius = rig.InertiaDisk.InnerRadius // annulus collapses

	_, err := Estimate(rig)
	if err == nil {
		t.Fatal("Estimate accepted an annulus with inner == outer radius")
	}
	var dimErr *model.InvalidDimensionError
	if !errors.As(err, &dimErr) {
		t.Fatalf("error %v is not an InvalidDimensionError", err)
	}
	if dimErr.Field != "outer_radius" {
		t.Errorf("offending field = %q, want outer_radius", dimErr.Field)
	}
}

func TestEstimateRejectsNegativeMass(t *testing.T) {
	rig := DefaultRig()
	rig.Wing.Mass = -0.0355

	if _, err := Estimate(rig); err == nil {
		t.Fatal("Estimate accepted a negative wing mass")
	}
}

func TestBreakdownOrder(t *testing.T) {
	b := mustEstimateDefault(t)
	want := []string{
		PartFlange,
		NameElasticCoupler,
		PartShaftHalf18,
		PartShaftHalf9,
		PartShaftQtr14,
		PartPulleys,
		PartShaftCoupler,
		PartWing,
		PartAddedMass,
		NameSystemTotal,
		PartInertiaDisk,
		PartInertiaDiskRods,
		NameDiskAssembly,
	}
	items := b.Items()
	if len(items) != len(want) {
		t.Fatalf("breakdown has %d entries, want %d", len(items), len(want))
	}
	for i, name := range want {
		if items[i].Name != name {
			t.Errorf("entry %d = %q, want %q", i, items[i].Name, name)
		}
	}
}

func TestBreakdownValuesNonNegative(t *testing.T) {
	for _, it := range mustEstimateDefault(t).Items() {
		if it.Value < 0 {
			t.Errorf("%s = %v, want >= 0", it.Name, it.Value)
		}
	}
}

func TestBreakdownUnknownName(t *testing.T) {
	b := mustEstimateDefault(t)
	if _, ok := b.Value("no-such-part"); ok {
		t.Fatal("Value returned ok for an unknown entry")
	}
}

func TestMeasuredMassOverridesDerivation(t *testing.T) {
	rig := DefaultRig()
	rig.AcrylicDisk.Mass = 0.056 // re-weighed on the bench

	b, err := Estimate(rig)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	want := SolidDiskInertia(0.056, rig.AcrylicDisk.Radius)
	gotCoupler := mustValue(t, b, NameElasticCoupler)
	flange := mustValue(t, b, PartFlange)
	bolts := PointMassInertia(rig.CouplerBolts.Count, rig.CouplerBolts.UnitMass, rig.CouplerBolts.Radius)
	if got := gotCoupler - flange - bolts; !closeRel(got, want, 1e-12) {
		t.Errorf("acrylic contribution = %v, want %v", got, want)
	}
}

func mustValue(t *testing.T, b *Breakdown, name string) float64 {
	t.Helper()
	v, ok := b.Value(name)
	if !ok {
		t.Fatalf("breakdown has no entry %q", name)
	}
	return v
}

func closeRel(a, b, tol float64) bool {
	if a == b {
		return true
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	ref := b
	if ref < 0 {
		ref = -ref
	}
	return diff <= tol*ref
}
