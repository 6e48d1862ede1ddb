package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chatstream/internal/config"
	"chatstream/internal/httpapi"
	"chatstream/internal/idgen"
	"chatstream/internal/logging"
	"chatstream/internal/metrics"
	"chatstream/internal/planner"
)

func main() {
	logging.Init()
	metrics.Init()

	appCfg := config.LoadAppConfig()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	deps := httpapi.Deps{
		Limits:  appCfg.Limits,
		Gen:     idgen.New(),
		Planner: planner.New(planner.NewHTTPClient(appCfg.Planner), planner.NewCache(), appCfg.Limits),
	}

	errCh := runHTTPServer(ctx, httpapi.NewRouter(deps), appCfg.HTTPCfg)

	if err := <-errCh; err != nil && err != context.Canceled {
		slog.Error("http server", "err", err)
	}
}

// runHTTPServer starts the server and returns a channel that receives an
// error when it exits, with a graceful shutdown on ctx cancellation.
func runHTTPServer(ctx context.Context, handler http.Handler, cfg config.HTTPServerConfig) <-chan error {
	errCh := make(chan error, 1)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			errCh <- err
			return
		}
		errCh <- ctx.Err()
	}()

	go func() {
		slog.Info("http server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	return errCh
}
