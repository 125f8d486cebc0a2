package core

import (
	"errors"
	"strings"
	"testing"

	"github.com/signalsfoundry/flapper-rig/model"
)

func TestLoadRigDefinitionEmptyObjectKeepsDefaults(t *testing.T) {
	rig, err := LoadRigDefinition(strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("LoadRigDefinition: %v", err)
	}
	def := DefaultRig()
	if rig.Name != def.Name {
		t.Errorf("Name = %q, want %q", rig.Name, def.Name)
	}
	if rig.Pulley.Mass != def.Pulley.Mass || rig.PulleyCount != def.PulleyCount {
		t.Errorf("pulley = %+v x%d, want defaults", rig.Pulley, rig.PulleyCount)
	}

	// The merged default must reproduce the canonical totals.
	b, err := Estimate(rig)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	checkRel(t, "system total", b.SystemInertia(), 1.3602186101223704e-3)
}

func TestLoadRigDefinitionPartialOverride(t *testing.T) {
	doc := `{
		"name": "flapper-v2",
		"wing": {"mass": 0.040},
		"shafts": [{"name": "shaft-1/2x18", "length": 0.508}]
	}`
	rig, err := LoadRigDefinition(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadRigDefinition: %v", err)
	}
	if rig.Name != "flapper-v2" {
		t.Errorf("Name = %q, want flapper-v2", rig.Name)
	}
	if rig.Wing.Mass != 0.040 {
		t.Errorf("Wing.Mass = %v, want 0.040", rig.Wing.Mass)
	}
	// Untouched wing fields keep defaults.
	if rig.Wing.Length != 0.100 {
		t.Errorf("Wing.Length = %v, want 0.100", rig.Wing.Length)
	}
	if rig.Shafts[0].Length != 0.508 {
		t.Errorf("shaft length = %v, want 0.508", rig.Shafts[0].Length)
	}
	if rig.Shafts[1].Length != DefaultRig().Shafts[1].Length {
		t.Errorf("second shaft modified: %+v", rig.Shafts[1])
	}
}

func TestLoadRigDefinitionRejectsInvalidDimensions(t *testing.T) {
	doc := `{"inertia_disk": {"inner_radius": 0.050}}` // bore larger than rim
	_, err := LoadRigDefinition(strings.NewReader(doc))
	if err == nil {
		t.Fatal("LoadRigDefinition accepted inner radius >= outer radius")
	}
	var dimErr *model.InvalidDimensionError
	if !errors.As(err, &dimErr) {
		t.Fatalf("error %v is not an InvalidDimensionError", err)
	}
}

func TestLoadRigDefinitionRejectsUnknownFields(t *testing.T) {
	if _, err := LoadRigDefinition(strings.NewReader(`{"wings": {}}`)); err == nil {
		t.Fatal("LoadRigDefinition accepted an unknown field")
	}
}

func TestLoadRigDefinitionRejectsMalformedJSON(t *testing.T) {
	if _, err := LoadRigDefinition(strings.NewReader(`{`)); err == nil {
		t.Fatal("LoadRigDefinition accepted malformed JSON")
	}
}
