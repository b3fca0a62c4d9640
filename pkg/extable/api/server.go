package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ukaji3/extable-go/internal/logging"
)

// Serve runs an HTTP server on addr until ctx is cancelled, then shuts it
// down, waiting up to shutdownTimeout for in-flight requests.
func Serve(ctx context.Context, addr string, handler http.Handler, shutdownTimeout time.Duration, log *logging.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
