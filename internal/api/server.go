// server.go: HTTP server lifecycle for the API controller
package api

import (
	"context"
	"errors"
	"net/http"
	"time"
)

const shutdownTimeout = 10 * time.Second

// Start runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully. Blocks until the server has stopped.
func (c *Controller) Start(ctx context.Context, port string) error {
	errChan := make(chan error, 1)

	go func() {
		if err := c.Echo.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	c.apiLogger.Info("HTTP API listening", "port", port)

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	c.apiLogger.Info("Shutting down HTTP API")
	err := c.Echo.Shutdown(shutdownCtx)
	if c.closeAccessLog != nil {
		if closeErr := c.closeAccessLog(); err == nil {
			err = closeErr
		}
	}
	return err
}
