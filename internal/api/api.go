// Package api exposes the workflow operations over HTTP for the
// conversational layer. The dialogue policy calls these endpoints as tools;
// the API never formats speech output itself.
package api

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/securebank/fraudflow/internal/conf"
	"github.com/securebank/fraudflow/internal/errors"
	"github.com/securebank/fraudflow/internal/logging"
	"github.com/securebank/fraudflow/internal/workflow"
)

// Controller manages the API routes and handlers
type Controller struct {
	Echo     *echo.Echo
	Group    *echo.Group
	Facade   *workflow.Facade
	Service  *workflow.Service
	Settings *conf.Settings

	apiLogger      *slog.Logger
	closeAccessLog func() error
}

// New creates a Controller with all routes registered. When the web server
// log is enabled the request log goes to the configured rotated file;
// otherwise it shares the service-wide structured logger.
func New(settings *conf.Settings, svc *workflow.Service, facade *workflow.Facade, registry *prometheus.Registry) *Controller {
	e := echo.New()
	e.HideBanner = true

	apiLogger := logging.ForService("api")
	var closeAccessLog func() error
	if settings.WebServer.Log.Enabled && settings.WebServer.Log.Path != "" {
		fileLogger, closeFn, err := logging.NewFileLogger(settings.WebServer.Log.Path, "api", slog.LevelInfo)
		if err != nil {
			apiLogger.Warn("Failed to open access log file, using default logger",
				"path", settings.WebServer.Log.Path,
				"error", err)
		} else {
			apiLogger = fileLogger
			closeAccessLog = closeFn
		}
	}

	c := &Controller{
		Echo:           e,
		Facade:         facade,
		Service:        svc,
		Settings:       settings,
		apiLogger:      apiLogger,
		closeAccessLog: closeAccessLog,
	}

	e.Use(middleware.Recover())
	e.Use(c.loggingMiddleware())

	c.Group = e.Group("/api/v1")
	c.initWorkflowRoutes()
	c.initCaseRoutes()

	e.GET("/healthz", c.Health)
	if settings.Workflow.MetricsEnabled && registry != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	return c
}

// Health reports service liveness.
func (c *Controller) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// errorResponse is the JSON shape of every non-2xx reply.
type errorResponse struct {
	Error string `json:"error"`
}

// handleError maps categorized workflow errors onto HTTP responses. Storage
// faults surface as the generic contact-us message so the voice layer can
// end the interaction safely.
func (c *Controller) handleError(ctx echo.Context, err error) error {
	switch {
	case errors.IsNotFound(err):
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: workflow.MsgCaseNotFound})
	case workflow.IsSequenceViolation(err):
		return ctx.JSON(http.StatusConflict, errorResponse{Error: "Operation not allowed in the current conversation state."})
	case errors.IsCategory(err, errors.CategoryState):
		return ctx.JSON(http.StatusConflict, errorResponse{Error: "This case has already been resolved."})
	default:
		c.apiLogger.Error("Request failed", "error", err, "path", ctx.Path())
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: workflow.MsgStorageFailure})
	}
}
