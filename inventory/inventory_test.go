package inventory

import (
	"strings"
	"sync"
	"testing"

	"github.com/signalsfoundry/flapper-rig/core"
)

func newTestInventory(t *testing.T) *Inventory {
	t.Helper()
	inv, err := New(core.DefaultRig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return inv
}

func TestNewRejectsInvalidRig(t *testing.T) {
	rig := core.DefaultRig()
	rig.PulleyCount = 0

	if _, err := New(rig); err == nil {
		t.Fatal("New accepted a rig with zero pulleys")
	}
}

func TestSetPartMassUpdatesRig(t *testing.T) {
	inv := newTestInventory(t)

	if err := inv.SetPartMass(core.PartWing, 0.040); err != nil {
		t.Fatalf("SetPartMass: %v", err)
	}
	if got := inv.Rig().Wing.Mass; got != 0.040 {
		t.Fatalf("Wing.Mass = %v, want 0.040", got)
	}
}

func TestSetPartMassUnknownPart(t *testing.T) {
	inv := newTestInventory(t)

	err := inv.SetPartMass("shaft-1/2x18", 1.0) // derived, not measurable
	if err == nil {
		t.Fatal("SetPartMass accepted a derived-mass part")
	}
	if !strings.Contains(err.Error(), "not found or not measurable") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSetPartMassRejectsNegative(t *testing.T) {
	inv := newTestInventory(t)

	if err := inv.SetPartMass(core.PartWing, -1); err == nil {
		t.Fatal("SetPartMass accepted a negative mass")
	}
	// The stored rig is untouched after a rejected update.
	if got := inv.Rig().Wing.Mass; got != core.DefaultRig().Wing.Mass {
		t.Fatalf("Wing.Mass = %v after rejected update", got)
	}
}

func TestSubscribeReceivesUpdates(t *testing.T) {
	inv := newTestInventory(t)

	got := make(chan Event, 1)
	inv.Subscribe(func(ev Event) { got <- ev })

	if err := inv.SetPartMass(core.PartShaftCoupler, 0.25); err != nil {
		t.Fatalf("SetPartMass: %v", err)
	}
	ev := <-got
	if ev.Type != EventRigUpdated {
		t.Fatalf("event type = %v, want EventRigUpdated", ev.Type)
	}
	if ev.Rig.ShaftCoupler.Mass != 0.25 {
		t.Fatalf("event rig mass = %v, want 0.25", ev.Rig.ShaftCoupler.Mass)
	}
}

func TestRigReturnsCopy(t *testing.T) {
	inv := newTestInventory(t)

	rig := inv.Rig()
	rig.Shafts[0].Length = 99

	if got := inv.Rig().Shafts[0].Length; got == 99 {
		t.Fatal("mutating the returned rig leaked into the inventory")
	}
}

func TestConcurrentReadersAndWriters(t *testing.T) {
	inv := newTestInventory(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = inv.Rig()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = inv.SetPartMass(core.PartWing, 0.0355)
			}
		}()
	}
	wg.Wait()

	if _, err := core.Estimate(inv.Rig()); err != nil {
		t.Fatalf("rig invalid after concurrent updates: %v", err)
	}
}

func TestMeasuredPartNamesAreSettable(t *testing.T) {
	inv := newTestInventory(t)
	for _, name := range inv.MeasuredPartNames() {
		if err := inv.SetPartMass(name, 0.123); err != nil {
			t.Errorf("SetPartMass(%q): %v", name, err)
		}
	}
}
