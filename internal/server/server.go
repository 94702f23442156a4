package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/mfarrow/cyclecast/internal/calculation"
)

// Server exposes the calculation engine over HTTP. It holds no state of
// its own; every request carries its full input.
type Server struct {
	engine *calculation.Engine
	logger *logrus.Logger
}

// NewServer creates a server around an engine. A nil logger gets a
// default logrus logger.
func NewServer(engine *calculation.Engine, logger *logrus.Logger) *Server {
	if logger == nil {
		logger = logrus.New()
	}
	return &Server{engine: engine, logger: logger}
}

// Router builds the HTTP route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/cycles/next", s.handleNextCycles).Methods("POST")
	v1.HandleFunc("/income/events", s.handleIncomeEvents).Methods("POST")
	v1.HandleFunc("/projections/savings", s.handleSavingsProjection).Methods("POST")
	v1.HandleFunc("/projections/repayment", s.handleRepaymentProjection).Methods("POST")
	v1.HandleFunc("/suggestions/savings", s.handleSavingsSuggestion).Methods("POST")
	v1.HandleFunc("/suggestions/repayment", s.handleRepaymentSuggestion).Methods("POST")

	r.HandleFunc("/healthz", s.handleHealth).Methods("GET")
	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", addr).Info("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("http server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Info("request handled")
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
