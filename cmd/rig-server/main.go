package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/signalsfoundry/flapper-rig/core"
	"github.com/signalsfoundry/flapper-rig/internal/api"
	"github.com/signalsfoundry/flapper-rig/internal/logging"
	"github.com/signalsfoundry/flapper-rig/internal/observability"
	"github.com/signalsfoundry/flapper-rig/inventory"
	"github.com/signalsfoundry/flapper-rig/model"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Config collects the rig-server's startup settings.
type Config struct {
	GRPCAddress    string
	HTTPAddress    string
	MetricsAddress string
	RigPath        string
	LogLevel       string
	LogFormat      string
	TickInterval   time.Duration
	Accelerated    bool
}

func main() {
	cfg := Config{}
	flag.StringVar(&cfg.GRPCAddress, "grpc-addr", ":50051", "TCP address the gRPC server listens on")
	flag.StringVar(&cfg.HTTPAddress, "http-addr", ":8080", "HTTP address for the rig API")
	flag.StringVar(&cfg.MetricsAddress, "metrics-addr", ":9090", "HTTP address for Prometheus /metrics")
	flag.StringVar(&cfg.RigPath, "rig", "", "path to a JSON rig definition (defaults to the built-in resonant-flapper rig)")
	flag.StringVar(&cfg.LogLevel, "log-level", "info", "log level: debug, info, warn, error")
	flag.StringVar(&cfg.LogFormat, "log-format", "json", "log format: json or text")
	flag.DurationVar(&cfg.TickInterval, "tick", 30*time.Second, "interval between periodic re-estimation runs")
	flag.BoolVar(&cfg.Accelerated, "accelerated", false, "run the re-estimation loop without waiting out ticks (test/dev only; spins continuously)")
	flag.Parse()

	log := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	lis, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		log.Error(context.Background(), "failed to listen for gRPC", logging.String("addr", cfg.GRPCAddress), logging.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, log, lis); err != nil {
		log.Error(context.Background(), "rig-server exited", logging.String("error", err.Error()))
		os.Exit(1)
	}
}

// run wires the inventory, estimation loop, and serving surfaces, then
// blocks until ctx is cancelled and everything is shut down.
func run(ctx context.Context, cfg Config, log logging.Logger, grpcLis net.Listener) error {
	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		return fmt.Errorf("initialise tracing: %w", err)
	}
	defer observability.ShutdownWithTimeout(context.Background(), shutdownTracing, log)

	collector, err := observability.NewRigCollector(nil)
	if err != nil {
		return fmt.Errorf("initialise metrics collector: %w", err)
	}

	rig, err := loadRig(cfg.RigPath)
	if err != nil {
		return err
	}
	inv, err := inventory.New(rig)
	if err != nil {
		return err
	}

	inv.Subscribe(func(ev inventory.Event) {
		recordEstimation(ctx, inv, collector, log)
	})
	recordEstimation(ctx, inv, collector, log)

	grpcSrv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(collector.UnaryServerInterceptor()),
	)
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcSrv, healthSrv)
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	log.Info(ctx, "starting rig gRPC server", logging.String("addr", grpcLis.Addr().String()))
	go func() {
		if err := grpcSrv.Serve(grpcLis); err != nil {
			log.Error(ctx, "gRPC server exited", logging.String("error", err.Error()))
		}
	}()

	apiSrv := serveHTTP(cfg.HTTPAddress, api.NewServer(inv, log, collector).Handler(), "rig API", log)
	metricsSrv := serveMetrics(cfg.MetricsAddress, collector, log)

	loopDone := runEstimationLoop(ctx, cfg, inv, collector, log)

	<-ctx.Done()

	log.Info(context.Background(), "shutting down rig-server")
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	grpcSrv.GracefulStop()
	<-loopDone

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if apiSrv != nil {
		_ = apiSrv.Shutdown(shutdownCtx)
	}
	if metricsSrv != nil {
		_ = metricsSrv.Shutdown(shutdownCtx)
	}
	return nil
}

func serveHTTP(addr string, handler http.Handler, name string, log logging.Logger) *http.Server {
	if addr == "" || handler == nil {
		return nil
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Warn(context.Background(), name+" server exited", logging.String("error", err.Error()))
		}
	}()

	log.Info(context.Background(), "serving "+name, logging.String("addr", addr))
	return srv
}

func serveMetrics(addr string, collector *observability.RigCollector, log logging.Logger) *http.Server {
	if collector == nil {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())
	return serveHTTP(addr, mux, "Prometheus metrics", log)
}

func loadRig(path string) (model.RigDefinition, error) {
	if path == "" {
		return core.DefaultRig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return model.RigDefinition{}, fmt.Errorf("open rig definition %q: %w", path, err)
	}
	defer f.Close()

	rig, err := core.LoadRigDefinition(f)
	if err != nil {
		return model.RigDefinition{}, fmt.Errorf("load rig definition %q: %w", path, err)
	}
	return rig, nil
}
