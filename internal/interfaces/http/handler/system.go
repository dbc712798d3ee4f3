package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/po-intake/backend/internal/infrastructure/persistence"
	"github.com/po-intake/backend/internal/interfaces/http/dto"
)

// HealthChecker reports database connectivity and pool state
type HealthChecker interface {
	Ping() error
	Stats() (persistence.ConnectionStats, error)
}

// SchemaReporter produces the diagnostic schema snapshot
type SchemaReporter interface {
	Inspect(ctx context.Context) (*persistence.SchemaReport, error)
}

// SystemHandler handles system and diagnostic endpoints
type SystemHandler struct {
	BaseHandler
	db        HealthChecker
	inspector SchemaReporter
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db HealthChecker, inspector SchemaReporter) *SystemHandler {
	return &SystemHandler{
		db:        db,
		inspector: inspector,
		startTime: time.Now(),
	}
}

// RegisterRoutes registers the system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	system := rg.Group("/system")
	system.GET("/ping", h.Ping)
	system.GET("/info", h.GetSystemInfo)
	system.GET("/health", h.GetHealth)
	system.GET("/schema", h.GetSchema)
}

// SystemInfoResponse represents the system information response
type SystemInfoResponse struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

// GetSystemInfo returns basic system information.
// GET /api/v1/system/info
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	info := SystemInfoResponse{
		Name:      "Purchase Order Intake API",
		Version:   "1.0.0",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	}

	h.Success(c, info)
}

// PingResponse represents the ping response
type PingResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Ping checks if the API is responsive.
// GET /api/v1/system/ping
func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, PingResponse{
		Message:   "pong",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string                      `json:"status"`
	Database string                      `json:"database"`
	Pool     *persistence.ConnectionStats `json:"pool,omitempty"`
}

// GetHealth reports service and database health.
// GET /api/v1/system/health
func (h *SystemHandler) GetHealth(c *gin.Context) {
	resp := HealthResponse{Status: "ok", Database: "ok"}

	if err := h.db.Ping(); err != nil {
		resp.Status = "degraded"
		resp.Database = "unreachable"
		c.JSON(http.StatusServiceUnavailable, dto.NewSuccessResponse(resp))
		return
	}

	if stats, err := h.db.Stats(); err == nil {
		resp.Pool = &stats
	}

	h.Success(c, resp)
}

// GetSchema returns the diagnostic snapshot of the service schema.
// GET /api/v1/system/schema
func (h *SystemHandler) GetSchema(c *gin.Context) {
	report, err := h.inspector.Inspect(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, report)
}
