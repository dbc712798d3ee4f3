package handler

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/po-intake/backend/internal/application/intake"
	"github.com/po-intake/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// OrderHandler handles purchase order intake requests
type OrderHandler struct {
	BaseHandler
	service *intake.Service
	logger  *zap.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(service *intake.Service, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.Named("order-handler"),
	}
}

// RegisterRoutes registers the purchase order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/purchase-orders")
	orders.POST("", h.Create)
	orders.GET("/:unique_order_id", h.GetByID)
}

// Create ingests a purchase order. The body is handed to the intake
// service untouched so both accepted shapes share one endpoint.
// POST /api/v1/purchase-orders
func (h *OrderHandler) Create(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.BadRequest(c, "failed to read request body")
		return
	}
	if len(body) == 0 {
		h.Error(c, 400, dto.ErrCodeMalformedInput, "request body is empty")
		return
	}

	result, err := h.service.Ingest(c.Request.Context(), body)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, dto.NewIngestResponse(result.Order, result.Resolutions))
}

// GetByID returns a persisted purchase order by its external identifier.
// GET /api/v1/purchase-orders/:unique_order_id
func (h *OrderHandler) GetByID(c *gin.Context) {
	persisted, err := h.service.Get(c.Request.Context(), c.Param("unique_order_id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, persisted)
}
