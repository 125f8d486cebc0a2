package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/signalsfoundry/flapper-rig/core"
	"github.com/signalsfoundry/flapper-rig/internal/logging"
	"github.com/signalsfoundry/flapper-rig/internal/observability"
	"github.com/signalsfoundry/flapper-rig/inventory"
	"github.com/signalsfoundry/flapper-rig/model"
)

// Server exposes the inertia estimator over HTTP, backed by the live
// rig inventory.
type Server struct {
	inv       *inventory.Inventory
	log       logging.Logger
	collector *observability.RigCollector
}

// NewServer constructs a Server bound to the inventory. The collector
// is optional; pass nil to disable metrics recording.
func NewServer(inv *inventory.Inventory, log logging.Logger, collector *observability.RigCollector) *Server {
	if log == nil {
		log = logging.Noop()
	}
	return &Server{
		inv:       inv,
		log:       log,
		collector: collector,
	}
}

// Handler returns the mux with all API routes wired with run-ID,
// tracing, and metrics middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /v1/breakdown", s.route("/v1/breakdown", http.HandlerFunc(s.handleBreakdown)))
	mux.Handle("GET /v1/parts", s.route("/v1/parts", http.HandlerFunc(s.handleListParts)))
	mux.Handle("PUT /v1/parts/{name}/mass", s.route("/v1/parts/{name}/mass", http.HandlerFunc(s.handleSetPartMass)))
	return mux
}

func (s *Server) route(route string, next http.Handler) http.Handler {
	h := TracingMiddleware(route, next)
	h = RunIDMiddleware(s.log, route, h)
	if s.collector != nil {
		h = s.collector.Middleware(route, h)
	}
	return h
}

type breakdownResponse struct {
	Rig       string          `json:"rig"`
	Breakdown *core.Breakdown `json:"breakdown"`
}

func (s *Server) handleBreakdown(w http.ResponseWriter, r *http.Request) {
	if err := s.ensureReady(); err != nil {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}

	rig := s.inv.Rig()
	b, err := core.Estimate(rig)
	if err != nil {
		s.log.Error(r.Context(), "breakdown estimation failed", logging.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if s.collector != nil {
		s.collector.RecordEstimation(len(b.Items()), b.SystemInertia(), b.DiskAssemblyInertia())
	}

	writeJSON(w, http.StatusOK, breakdownResponse{Rig: rig.Name, Breakdown: b})
}

type partsResponse struct {
	Parts []string `json:"parts"`
}

func (s *Server) handleListParts(w http.ResponseWriter, r *http.Request) {
	if err := s.ensureReady(); err != nil {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	writeJSON(w, http.StatusOK, partsResponse{Parts: s.inv.MeasuredPartNames()})
}

type setMassRequest struct {
	MassKg *float64 `json:"mass_kg"`
}

func (s *Server) handleSetPartMass(w http.ResponseWriter, r *http.Request) {
	if err := s.ensureReady(); err != nil {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}

	name := r.PathValue("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, errors.New("part name is required"))
		return
	}

	var req setMassRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	if req.MassKg == nil {
		writeError(w, http.StatusBadRequest, errors.New("mass_kg is required"))
		return
	}

	if err := s.inv.SetPartMass(name, *req.MassKg); err != nil {
		var dimErr *model.InvalidDimensionError
		switch {
		case errors.Is(err, inventory.ErrPartNotFound):
			writeError(w, http.StatusNotFound, err)
		case errors.As(err, &dimErr):
			writeError(w, http.StatusBadRequest, err)
		default:
			s.log.Error(r.Context(), "mass update failed",
				logging.String("part", name),
				logging.String("error", err.Error()),
			)
			writeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	s.log.Info(r.Context(), "part mass updated",
		logging.String("part", name),
		logging.Float64("mass_kg", *req.MassKg),
	)
	writeJSON(w, http.StatusOK, map[string]any{"part": name, "mass_kg": *req.MassKg})
}

func (s *Server) ensureReady() error {
	if s == nil || s.inv == nil {
		return errors.New("rig inventory is not configured")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, errorResponse{Error: err.Error()})
}
