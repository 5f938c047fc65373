package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nurpe/factory-records/internal/metrics"
	"github.com/nurpe/factory-records/internal/service"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	records *service.Registry
	exports *service.ExportService
	db      Pinger
	log     zerolog.Logger
}

func NewHandler(records *service.Registry, exports *service.ExportService, db Pinger, log zerolog.Logger) *Handler {
	return &Handler{records: records, exports: exports, db: db, log: log}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	router.GET("/healthz", h.health)
	router.GET("/metrics", metrics.Exposer())

	protected := router.Group("/")
	protected.Use(authMiddleware)
	registerResource(protected, "users", h.records.Users, h)
	registerResource(protected, "workshops", h.records.Workshops, h)
	registerResource(protected, "goods", h.records.Goods, h)
	registerResource(protected, "contracts", h.records.Contracts, h)
	registerResource(protected, "orders", h.records.Orders, h)
}

func (h *Handler) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.db.PingContext(ctx); err != nil {
		h.log.Error().Err(err).Msg("store ping failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) handleError(c *gin.Context, kind, operation string, err error) {
	metrics.ObserveOperation(kind, operation, outcomeOf(err))
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		var recErr *service.RecordError
		if errors.As(err, &recErr) && recErr.Cause != nil {
			h.log.Debug().Err(recErr.Cause).Str("entity", kind).Str("operation", operation).Msg("constraint violation")
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("entity", kind).Str("operation", operation).Msg("record operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, service.ErrNotFound):
		return "not_found"
	case errors.Is(err, service.ErrConflict):
		return "conflict"
	case errors.Is(err, service.ErrInvalidInput):
		return "invalid"
	default:
		return "error"
	}
}

func parseID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, service.ErrInvalidInput
	}
	return id, nil
}
