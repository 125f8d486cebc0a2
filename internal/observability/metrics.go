package observability

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// RigCollector bundles Prometheus metrics for the rig server and
// provides helpers to wire them into its HTTP and gRPC surfaces.
type RigCollector struct {
	gatherer prometheus.Gatherer

	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec
	RPCRequests   *prometheus.CounterVec

	EstimationRuns      prometheus.Counter
	RigParts            prometheus.Gauge
	SystemInertia       prometheus.Gauge
	DiskAssemblyInertia prometheus.Gauge
}

// NewRigCollector registers rig Prometheus metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
func NewRigCollector(reg prometheus.Registerer) (*RigCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rig_http_requests_total",
		Help: "Total number of handled rig API requests, labeled by route and status code.",
	}, []string{"route", "code"})
	httpRequests, err := registerCounterVec(reg, httpRequests, "rig_http_requests_total")
	if err != nil {
		return nil, err
	}

	httpDurations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rig_http_request_duration_seconds",
		Help:    "Rig API request latency in seconds.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"route"})
	httpDurations, err = registerHistogramVec(reg, httpDurations, "rig_http_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	rpcRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rig_rpc_requests_total",
		Help: "Total number of handled rig gRPC calls, labeled by service, method, and status code.",
	}, []string{"service", "method", "code"})
	rpcRequests, err = registerCounterVec(reg, rpcRequests, "rig_rpc_requests_total")
	if err != nil {
		return nil, err
	}

	runs, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rig_estimation_runs_total",
		Help: "Number of completed inertia estimation runs.",
	}), "rig_estimation_runs_total")
	if err != nil {
		return nil, err
	}
	parts, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "rig_parts",
		Help: "Number of entries in the latest inertia breakdown.",
	}), "rig_parts")
	if err != nil {
		return nil, err
	}
	system, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "rig_system_inertia_kg_m2",
		Help: "Latest total flapper-system inertia.",
	}), "rig_system_inertia_kg_m2")
	if err != nil {
		return nil, err
	}
	assembly, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "rig_disk_assembly_inertia_kg_m2",
		Help: "Latest inertia-disk assembly inertia.",
	}), "rig_disk_assembly_inertia_kg_m2")
	if err != nil {
		return nil, err
	}

	return &RigCollector{
		gatherer:            gatherer,
		HTTPRequests:        httpRequests,
		HTTPDurations:       httpDurations,
		RPCRequests:         rpcRequests,
		EstimationRuns:      runs,
		RigParts:            parts,
		SystemInertia:       system,
		DiskAssemblyInertia: assembly,
	}, nil
}

// RecordEstimation updates the breakdown gauges after an estimation run.
func (c *RigCollector) RecordEstimation(parts int, system, assembly float64) {
	if c == nil {
		return
	}
	if c.EstimationRuns != nil {
		c.EstimationRuns.Inc()
	}
	if c.RigParts != nil {
		c.RigParts.Set(float64(parts))
	}
	if c.SystemInertia != nil {
		c.SystemInertia.Set(system)
	}
	if c.DiskAssemblyInertia != nil {
		c.DiskAssemblyInertia.Set(assembly)
	}
}

// statusRecorder captures the response code written by an HTTP handler.
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records request counts and durations for an HTTP route.
func (c *RigCollector) Middleware(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(rec, req)

		if c == nil {
			return
		}
		if c.HTTPRequests != nil {
			c.HTTPRequests.WithLabelValues(route, fmt.Sprintf("%d", rec.code)).Inc()
		}
		if c.HTTPDurations != nil {
			c.HTTPDurations.WithLabelValues(route).Observe(time.Since(start).Seconds())
		}
	})
}

// UnaryServerInterceptor records request counts for unary RPCs (health
// checks today; kept generic for any future service).
func (c *RigCollector) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		resp, err := handler(ctx, req)

		if c == nil || c.RPCRequests == nil {
			return resp, err
		}

		fullMethod := ""
		if info != nil {
			fullMethod = info.FullMethod
		}
		service, method := SplitMethod(fullMethod)
		code := status.Code(err).String()
		c.RPCRequests.WithLabelValues(service, method, code).Inc()

		return resp, err
	}
}

// Handler exposes a ready-to-use /metrics handler.
func (c *RigCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// SplitMethod parses a fully-qualified gRPC method name into service and method
// components. It tolerates empty strings and partial paths, returning
// "unknown"/"unknown" when parsing fails.
func SplitMethod(fullMethod string) (string, string) {
	if fullMethod == "" {
		return "unknown", "unknown"
	}
	fullMethod = strings.TrimPrefix(fullMethod, "/")
	parts := strings.Split(fullMethod, "/")
	if len(parts) < 2 {
		return "unknown", "unknown"
	}
	service := parts[len(parts)-2]
	method := parts[len(parts)-1]
	if dot := strings.LastIndex(service, "."); dot >= 0 && dot+1 < len(service) {
		service = service[dot+1:]
	}
	if service == "" {
		service = "unknown"
	}
	if method == "" {
		method = "unknown"
	}
	return service, method
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerCounter(reg prometheus.Registerer, c prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return c, nil
}

func registerGauge(reg prometheus.Registerer, g prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(g); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return g, nil
}
