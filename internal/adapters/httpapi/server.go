package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"ndastro/internal/ports/input"
	"ndastro/internal/ports/output"
)

// Pinger reports database liveness for the health endpoint.
// *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server is the HTTP adapter. It negotiates the response language, decodes
// requests and maps domain errors to status codes; all behaviour lives in
// the use cases behind the input ports.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
	translator output.Translator
}

// NewServer wires the use cases into the /api/v1 routes.
func NewServer(addr string, logger *zap.Logger, translator output.Translator, astroUC input.AstroUseCase, chartUC input.ChartUseCase, db Pinger) *Server {
	s := &Server{
		logger:     logger,
		translator: translator,
	}

	astroHandler := &AstroHandler{server: s, astro: astroUC}
	chartHandler := &ChartHandler{server: s, charts: chartUC}
	translationHandler := &TranslationHandler{server: s}
	healthHandler := &HealthHandler{server: s, db: db}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)
	mux.HandleFunc("GET /api/v1/languages", translationHandler.Languages)
	mux.HandleFunc("GET /api/v1/translations", translationHandler.Translations)

	mux.HandleFunc("GET /api/v1/astro/planets", astroHandler.Planets)
	mux.HandleFunc("GET /api/v1/astro/ascendant", astroHandler.Ascendant)
	mux.HandleFunc("GET /api/v1/astro/lunar-nodes", astroHandler.LunarNodes)
	mux.HandleFunc("GET /api/v1/astro/sunrise-sunset", astroHandler.SunriseSunset)
	mux.HandleFunc("GET /api/v1/astro/kattams", astroHandler.Kattams)

	mux.HandleFunc("POST /api/v1/charts", chartHandler.Create)
	mux.HandleFunc("GET /api/v1/charts", chartHandler.List)
	mux.HandleFunc("GET /api/v1/charts/{id}", chartHandler.Get)
	mux.HandleFunc("DELETE /api/v1/charts/{id}", chartHandler.Delete)
	mux.HandleFunc("GET /api/v1/charts/{id}/kattams", chartHandler.Kattams)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.logRequests(s.withLanguage(mux)),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler exposes the fully wrapped handler chain, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("http server listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
