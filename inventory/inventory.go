package inventory

import (
	"errors"
	"fmt"
	"sync"

	"github.com/signalsfoundry/flapper-rig/core"
	"github.com/signalsfoundry/flapper-rig/model"
)

// ErrPartNotFound is returned by SetPartMass for names that do not
// correspond to a measurable part.
var ErrPartNotFound = errors.New("part not found or not measurable")

// EventType indicates what kind of change happened to the live rig.
type EventType int

const (
	EventRigUpdated EventType = iota
)

// Event is emitted to subscribers when the rig definition changes.
type Event struct {
	Type EventType
	Rig  model.RigDefinition
}

// Inventory is an in-memory, thread-safe holder for the live rig
// definition. The serving layer reads from it and the bench updates it
// when a part is re-weighed; every accepted update notifies subscribers.
type Inventory struct {
	mu   sync.RWMutex
	rig  model.RigDefinition
	subs []func(Event)
}

// New constructs an inventory around a validated rig definition.
func New(rig model.RigDefinition) (*Inventory, error) {
	if err := rig.Validate(); err != nil {
		return nil, fmt.Errorf("inventory: %w", err)
	}
	return &Inventory{rig: rig}, nil
}

// Rig returns a copy of the current rig definition. The shafts slice is
// copied so callers cannot mutate the stored state.
func (inv *Inventory) Rig() model.RigDefinition {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return copyRig(inv.rig)
}

// MeasuredPartNames lists the parts whose measured masses can be
// updated through SetPartMass, in a stable order.
func (inv *Inventory) MeasuredPartNames() []string {
	return []string{
		core.PartPulleys,
		core.PartShaftCoupler,
		core.PartWing,
		core.PartCouplerBolts,
		core.PartInertiaDiskRods,
		core.PartAcrylicDisk,
		core.PartInertiaDisk,
	}
}

// SetPartMass records a new measured mass (kg) for the named part. For
// bolt circles the mass is per item. Parts whose masses are derived
// from stock density (flange, shafts) are not settable; for the acrylic
// and inertia disks a measured mass overrides the derivation. The
// update is validated against the full rig before being accepted.
func (inv *Inventory) SetPartMass(name string, mass float64) error {
	inv.mu.Lock()

	next := copyRig(inv.rig)
	switch name {
	case core.PartPulleys:
		next.Pulley.Mass = mass
	case core.PartShaftCoupler:
		next.ShaftCoupler.Mass = mass
	case core.PartWing:
		next.Wing.Mass = mass
	case core.PartCouplerBolts:
		next.CouplerBolts.UnitMass = mass
	case core.PartInertiaDiskRods:
		next.InertiaDiskRods.UnitMass = mass
	case core.PartAcrylicDisk:
		next.AcrylicDisk.Mass = mass
	case core.PartInertiaDisk:
		next.InertiaDisk.Mass = mass
	default:
		inv.mu.Unlock()
		return fmt.Errorf("inventory: part %q: %w", name, ErrPartNotFound)
	}

	if err := next.Validate(); err != nil {
		inv.mu.Unlock()
		return fmt.Errorf("inventory: rejecting mass update for %q: %w", name, err)
	}

	inv.rig = next
	subs := make([]func(Event), len(inv.subs))
	copy(subs, inv.subs)
	ev := Event{Type: EventRigUpdated, Rig: copyRig(next)}
	inv.mu.Unlock()

	// Notify outside the lock so subscribers can read the inventory.
	for _, fn := range subs {
		fn(ev)
	}
	return nil
}

// Subscribe registers a callback invoked after every accepted update.
// Subscriptions cannot be removed; register once at startup.
func (inv *Inventory) Subscribe(fn func(Event)) {
	if fn == nil {
		return
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.subs = append(inv.subs, fn)
}

func copyRig(rig model.RigDefinition) model.RigDefinition {
	out := rig
	out.Shafts = make([]model.Shaft, len(rig.Shafts))
	copy(out.Shafts, rig.Shafts)
	return out
}
