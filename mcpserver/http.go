package mcpserver

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ──────────────────────────────────────────────
// HTTP transport — POST JSON-RPC
// ──────────────────────────────────────────────

// httpMaxBodySize bounds request bodies; enhancement payloads are tiny.
const httpMaxBodySize = 1024 * 1024

// HTTPHandler returns a POST-only JSON-RPC handler. Each request gets a
// correlation ID used in logs. Notifications are acknowledged with 202 and
// an empty body.
func (s *Server) HTTPHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		reqID := uuid.NewString()
		body, err := io.ReadAll(io.LimitReader(r.Body, httpMaxBodySize))
		if err != nil {
			s.logger.Warn("http body read failed", zap.String("request_id", reqID), zap.Error(err))
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		resp := s.Handle(r.Context(), body)
		if resp == nil {
			w.WriteHeader(http.StatusAccepted)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write(resp); err != nil {
			s.logger.Warn("http write failed", zap.String("request_id", reqID), zap.Error(err))
			return
		}
		s.logger.Debug("http request served", zap.String("request_id", reqID), zap.Int("bytes", len(resp)))
	})
}

// ListenAndServe runs the HTTP transport on addr until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string, timeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.HTTPHandler(),
		ReadHeaderTimeout: timeout,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("http transport listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
