// Package server exposes the verification engine over HTTP for external
// dashboards. It holds no state: every request is one engine run.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tickmark-dev/tickmark/internal/model"
	"github.com/tickmark-dev/tickmark/internal/report"
	"github.com/tickmark-dev/tickmark/internal/runlog"
	"github.com/tickmark-dev/tickmark/internal/verify"
)

// Service wires the verifier and optional run log into HTTP handlers.
type Service struct {
	verifier      *verify.Verifier
	logger        *slog.Logger
	defaultSymbol string
	runLogPath    string // empty disables the run log
}

// Option configures a Service.
type Option func(*Service)

// WithDefaultSymbol sets the currency symbol applied when a document omits one.
func WithDefaultSymbol(symbol string) Option {
	return func(s *Service) { s.defaultSymbol = symbol }
}

// WithRunLog enables the usage run log at path.
func WithRunLog(path string) Option {
	return func(s *Service) { s.runLogPath = path }
}

// NewService creates a Service.
func NewService(verifier *verify.Verifier, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{verifier: verifier, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the HTTP routes.
func (s *Service) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Get("/healthz", s.handleHealth)
	r.Post("/api/verify", s.handleVerify)
	return r
}

// handleVerify accepts an ExtractionResult document and returns the dashboard
// report.
func (s *Service) handleVerify(w http.ResponseWriter, r *http.Request) {
	logger := s.requestLogger(r)

	var input model.ExtractionResult
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"code": "BAD_REQUEST", "message": err.Error()})
		return
	}
	if input.Currency == "" {
		input.Currency = s.defaultSymbol
	}

	res := s.verifier.Run(r.Context(), input)
	s.appendRunLog(logger, res)

	logger.Info("verified document",
		"company", res.CompanyName,
		"checks", res.KPI.TotalChecks,
		"exceptions", res.KPI.ExceptionsFound)
	writeJSON(w, http.StatusOK, report.Build(res))
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// appendRunLog records the run for usage analytics. Failures are logged and
// swallowed; the sink never affects the response.
func (s *Service) appendRunLog(logger *slog.Logger, res model.VerificationResult) {
	if s.runLogPath == "" {
		return
	}
	if err := runlog.Append(s.runLogPath, runlog.FromResult(time.Now().UTC(), res)); err != nil {
		logger.Warn("run log append failed", "error", err)
	}
}

// requestID tags each request with a correlation id, honoring one supplied by
// the caller.
func (s *Service) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		r.Header.Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

func (s *Service) requestLogger(r *http.Request) *slog.Logger {
	return s.logger.With("request_id", r.Header.Get("X-Request-ID"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
