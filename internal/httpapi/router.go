// Package httpapi serves the gateway's operations over HTTP.
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexanderramin/bidbook/internal/domain"
	"github.com/alexanderramin/bidbook/internal/gateway"
	"github.com/alexanderramin/bidbook/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

type Handler struct {
	gw *gateway.Gateway
}

func NewHandler(gw *gateway.Gateway) *Handler {
	return &Handler{gw: gw}
}

// NewRouter registers the API routes on a gin engine with panic recovery and
// slog request logging.
func NewRouter(gw *gateway.Gateway, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))

	h := NewHandler(gw)
	r.GET("/health", h.Health)
	api := r.Group("/api")
	api.GET("/operations", h.Operations)
	api.POST("/:operation", h.Invoke)
	return r
}

func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (h *Handler) Operations(c *gin.Context) {
	c.JSON(http.StatusOK, gateway.Success(h.gw.Operations()))
}

// Invoke passes the request body to the named operation and answers with the
// envelope. The status code reflects the kind of failure.
func (h *Handler) Invoke(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gateway.Failure(err))
		return
	}

	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header(requestIDHeader, requestID)

	ctx := gateway.WithRequestID(c.Request.Context(), requestID)
	data, err := h.gw.Dispatch(ctx, c.Param("operation"), json.RawMessage(body))
	if err != nil {
		c.JSON(statusFor(err), gateway.Failure(err))
		return
	}
	c.JSON(http.StatusOK, gateway.Success(data))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusBadRequest
	case errors.Is(err, gateway.ErrUnknownOperation),
		errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrConstraint),
		errors.Is(err, repository.ErrForeignKeyViolation):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if logger == nil {
			return
		}
		logger.InfoContext(c.Request.Context(), "http_request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
