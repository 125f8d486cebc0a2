package main

import (
	"context"
	"time"

	"github.com/signalsfoundry/flapper-rig/core"
	"github.com/signalsfoundry/flapper-rig/internal/logging"
	"github.com/signalsfoundry/flapper-rig/internal/observability"
	"github.com/signalsfoundry/flapper-rig/inventory"
	"github.com/signalsfoundry/flapper-rig/timectrl"
)

// runEstimationLoop drives periodic re-estimation off a time
// controller so the breakdown gauges stay fresh even without traffic.
// The returned channel is closed once the loop has stopped.
func runEstimationLoop(ctx context.Context, cfg Config, inv *inventory.Inventory, collector *observability.RigCollector, log logging.Logger) <-chan struct{} {
	mode := timectrl.RealTime
	if cfg.Accelerated {
		mode = timectrl.Accelerated
	}
	tc := timectrl.NewTimeController(time.Now().UTC(), cfg.TickInterval, mode)

	tc.AddListener(func(now time.Time) {
		recordEstimation(ctx, inv, collector, log)
	})

	stop := make(chan struct{})
	go func() {
		<-ctx.Done()
		close(stop)
	}()

	return tc.Start(0, stop)
}

// recordEstimation recomputes the breakdown from the current rig and
// publishes it to the metrics gauges. Each run gets its own run_id so
// log lines from one recomputation can be correlated.
func recordEstimation(ctx context.Context, inv *inventory.Inventory, collector *observability.RigCollector, log logging.Logger) {
	ctx, log = logging.WithRunLogger(ctx, log)

	rig := inv.Rig()
	b, err := core.Estimate(rig)
	if err != nil {
		log.Error(ctx, "periodic estimation failed",
			logging.String("rig", rig.Name),
			logging.String("error", err.Error()),
		)
		return
	}

	if collector != nil {
		collector.RecordEstimation(len(b.Items()), b.SystemInertia(), b.DiskAssemblyInertia())
	}

	log.Debug(ctx, "estimation run complete",
		logging.String("rig", rig.Name),
		logging.Int("parts", len(b.Items())),
		logging.Float64("system_inertia_kg_m2", b.SystemInertia()),
		logging.Float64("disk_assembly_inertia_kg_m2", b.DiskAssemblyInertia()),
	)
}
