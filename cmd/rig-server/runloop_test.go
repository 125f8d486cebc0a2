package main

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/signalsfoundry/flapper-rig/core"
	"github.com/signalsfoundry/flapper-rig/internal/logging"
	"github.com/signalsfoundry/flapper-rig/internal/observability"
	"github.com/signalsfoundry/flapper-rig/inventory"
)

func TestRunEstimationLoopUpdatesGauges(t *testing.T) {
	inv, err := inventory.New(core.DefaultRig())
	if err != nil {
		t.Fatalf("inventory.New: %v", err)
	}
	collector, err := observability.NewRigCollector(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("NewRigCollector: %v", err)
	}

	cfg := Config{TickInterval: 10 * time.Millisecond, Accelerated: false}

	ctx, cancel := context.WithCancel(context.Background())
	done := runEstimationLoop(ctx, cfg, inv, collector, logging.Noop())

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("estimation loop did not stop after cancel")
	}

	if got := testutil.ToFloat64(collector.EstimationRuns); got < 1 {
		t.Fatalf("rig_estimation_runs_total = %v, want >= 1", got)
	}
	if got := testutil.ToFloat64(collector.RigParts); got != 13 {
		t.Fatalf("rig_parts = %v, want 13", got)
	}
	want := 1.3602186101223704e-3
	if got := testutil.ToFloat64(collector.SystemInertia); math.Abs(got-want)/want > 1e-9 {
		t.Fatalf("rig_system_inertia_kg_m2 = %v, want %v within 1e-9 relative", got, want)
	}
}

func TestRecordEstimationOnMassUpdate(t *testing.T) {
	inv, err := inventory.New(core.DefaultRig())
	if err != nil {
		t.Fatalf("inventory.New: %v", err)
	}
	collector, err := observability.NewRigCollector(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("NewRigCollector: %v", err)
	}
	log := logging.Noop()

	ctx := context.Background()
	inv.Subscribe(func(ev inventory.Event) {
		recordEstimation(ctx, inv, collector, log)
	})

	if err := inv.SetPartMass(core.PartWing, 0.040); err != nil {
		t.Fatalf("SetPartMass: %v", err)
	}

	if got := testutil.ToFloat64(collector.EstimationRuns); got != 1 {
		t.Fatalf("rig_estimation_runs_total = %v, want 1", got)
	}

	baseline := 1.3602186101223704e-3
	if got := testutil.ToFloat64(collector.SystemInertia); got <= baseline {
		t.Fatalf("system inertia gauge = %v, want > %v after heavier wing", got, baseline)
	}
}
