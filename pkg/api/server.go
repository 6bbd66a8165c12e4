// Package api exposes the descriptor catalogue over HTTP, mirroring the
// SONATA gatekeeper package endpoints.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sonata-vnfd/pkg/catalogue"
	"sonata-vnfd/pkg/log"
)

const shutdownTimeout = 5 * time.Second

// Config holds the HTTP server configuration.
type Config struct {
	// HTTPAPIEndpoint is the address the server binds to.
	HTTPAPIEndpoint string
}

// Server serves the catalogue HTTP API.
type Server struct {
	config    *Config
	catalogue *catalogue.Service
}

// NewServer creates a catalogue API server.
func NewServer(cfg *Config, catalogueSvc *catalogue.Service) *Server {
	return &Server{
		config:    cfg,
		catalogue: catalogueSvc,
	}
}

// Router builds the HTTP routes of the server.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/api/packages", s.boardPackage).Methods(http.MethodPost)
	router.HandleFunc("/api/packages", s.listPackages).Methods(http.MethodGet)
	router.HandleFunc("/api/packages/{uuid}", s.getPackage).Methods(http.MethodGet)
	router.HandleFunc("/api/packages/{uuid}", s.deletePackage).Methods(http.MethodDelete)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	router.Use(s.logRequests)

	return router
}

// Run serves the API until the supplied context is cancelled, then shuts
// the server down gracefully.
func (s *Server) Run(ctx context.Context) error {
	logger := log.GetLogger(ctx)

	server := &http.Server{
		Addr:              s.config.HTTPAPIEndpoint,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		logger.Infof("starting catalogue HTTP server on %s", s.config.HTTPAPIEndpoint)
		errChan <- server.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutting down catalogue HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.GetLogger(r.Context()).Debugf("%s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}
