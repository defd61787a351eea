package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const metricsShutdownTimeout = 5 * time.Second

type MetricsServerOptions struct {
	Addr     string
	Registry prometheus.Gatherer
	// Listener overrides Addr when set.
	Listener net.Listener
}

// ServeMetrics exposes /metrics and /healthz until ctx is done.
func ServeMetrics(ctx context.Context, opts MetricsServerOptions, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := opts.Registry
	if registry == nil {
		registry = prometheus.DefaultGatherer
	}

	listener := opts.Listener
	if listener == nil {
		if opts.Addr == "" {
			return errors.New("metrics listen address is required")
		}
		var err error
		listener, err = net.Listen("tcp", opts.Addr)
		if err != nil {
			return fmt.Errorf("metrics server listen: %w", err)
		}
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})
	server := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("metrics server listening", zap.String("addr", listener.Addr().String()))
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("metrics server failed: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown error", zap.Error(err))
			return err
		}
		logger.Info("metrics server stopped")
		return nil
	}
}
