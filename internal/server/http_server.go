package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Pietzorm/nfl-prediction-tracker/internal/logging"
)

// httpServer abstracts the HTTP server implementation for easier testing.
type httpServer interface {
	ListenAndServe() error
	Shutdown(context.Context) error
	Addr() string
	Handler() http.Handler
}

type netHTTPServer struct {
	srv *http.Server
}

func (s netHTTPServer) ListenAndServe() error              { return s.srv.ListenAndServe() }
func (s netHTTPServer) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
func (s netHTTPServer) Addr() string                       { return s.srv.Addr }
func (s netHTTPServer) Handler() http.Handler              { return s.srv.Handler }

// launchServer starts a listener in the background. A listen failure other
// than a clean close is reported through onErr so the caller can stop the
// process.
func launchServer(name string, srv httpServer, logger *slog.Logger, onErr func(error)) {
	go func() {
		logging.Info(logger, name+" server listening", "addr", srv.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error(logger, name+" server failed", err)
			if onErr != nil {
				onErr(err)
			}
		}
	}()
}
