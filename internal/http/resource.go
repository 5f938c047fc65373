package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/factory-records/internal/metrics"
	"github.com/nurpe/factory-records/internal/model"
	"github.com/nurpe/factory-records/internal/service"
)

// resource exposes one RecordService under /{path}.
type resource[T any, P model.RecordPtr[T]] struct {
	records *service.RecordService[T, P]
	h       *Handler
}

func registerResource[T any, P model.RecordPtr[T]](group *gin.RouterGroup, path string, records *service.RecordService[T, P], h *Handler) {
	r := &resource[T, P]{records: records, h: h}
	g := group.Group("/" + path)
	g.GET("/:id", r.get)
	g.POST("", r.create)
	g.POST("/", r.create)
	g.PUT("/:id", r.update)
	g.DELETE("/:id", r.remove)
	g.GET("/:id/export", r.export)
}

func (r *resource[T, P]) get(c *gin.Context) {
	id, ok := r.pathID(c)
	if !ok {
		return
	}
	record, err := r.records.Get(c.Request.Context(), id)
	if err != nil {
		r.h.handleError(c, r.records.Kind(), "get", err)
		return
	}
	r.ok(c, "get", record)
}

func (r *resource[T, P]) create(c *gin.Context) {
	payload, ok := r.bind(c)
	if !ok {
		return
	}
	record, err := r.records.Create(c.Request.Context(), payload)
	if err != nil {
		r.h.handleError(c, r.records.Kind(), "create", err)
		return
	}
	r.ok(c, "create", record)
}

// update reports a missing id before it looks at the body.
func (r *resource[T, P]) update(c *gin.Context) {
	id, ok := r.pathID(c)
	if !ok {
		return
	}
	if _, err := r.records.Get(c.Request.Context(), id); err != nil {
		r.h.handleError(c, r.records.Kind(), "update", err)
		return
	}
	payload, ok := r.bind(c)
	if !ok {
		return
	}
	record, err := r.records.Update(c.Request.Context(), id, payload)
	if err != nil {
		r.h.handleError(c, r.records.Kind(), "update", err)
		return
	}
	r.ok(c, "update", record)
}

func (r *resource[T, P]) remove(c *gin.Context) {
	id, ok := r.pathID(c)
	if !ok {
		return
	}
	record, err := r.records.Delete(c.Request.Context(), id)
	if err != nil {
		r.h.handleError(c, r.records.Kind(), "delete", err)
		return
	}
	r.ok(c, "delete", record)
}

func (r *resource[T, P]) export(c *gin.Context) {
	id, ok := r.pathID(c)
	if !ok {
		return
	}
	record, err := r.records.Get(c.Request.Context(), id)
	if err != nil {
		r.h.handleError(c, r.records.Kind(), "export", err)
		return
	}
	result, err := r.h.exports.Export(record, c.Query("format"))
	if err != nil {
		r.h.handleError(c, r.records.Kind(), "export", err)
		return
	}
	metrics.ObserveOperation(r.records.Kind(), "export", "ok")

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, result.ContentType, result.Content)
}

func (r *resource[T, P]) pathID(c *gin.Context) (uint64, bool) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func (r *resource[T, P]) bind(c *gin.Context) (P, bool) {
	payload := P(new(T))
	if err := c.ShouldBindJSON(payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return payload, true
}

func (r *resource[T, P]) ok(c *gin.Context, operation string, record P) {
	metrics.ObserveOperation(r.records.Kind(), operation, "ok")
	c.JSON(http.StatusOK, record)
}
