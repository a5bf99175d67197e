package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/kradzieta/warehouse-orders/internal/domain"
	"github.com/kradzieta/warehouse-orders/internal/ports"
	"github.com/kradzieta/warehouse-orders/pkg/httpx"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Handler — HTTP-обработчики конвейера заказов.
type Handler struct {
	service ports.OrderService
	log     ports.Logger
	timeout time.Duration // таймаут на обработку одного запроса; 0 — без таймаута
}

// NewHandler - конструктор Handler.
func NewHandler(service ports.OrderService, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{service: service, log: log, timeout: timeout}
}

// NewRouter — маршруты API. otelServiceName != "" включает otelgin-трейсинг.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/orders", h.createOrder)
		api.PATCH("/orders/status", h.changeOrderStatus)
		api.DELETE("/orders", h.deleteOrder)
		api.GET("/orders", h.listOrders)
		api.GET("/orders/:id", h.getOrderDetails)
		api.GET("/orders/:id/document", h.getOrderDocument)
		api.GET("/clients/:email/orders", h.listOrdersByClientEmail)
	}

	return r
}

// requestContext — контекст запроса, при заданном таймауте — ограниченный.
func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout > 0 {
		return context.WithTimeout(c.Request.Context(), h.timeout)
	}
	return c.Request.Context(), func() {}
}

func (h *Handler) createOrder(c *gin.Context) {
	var req domain.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid body: %v", err)})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	order, err := h.service.CreateOrder(ctx, req)
	if err != nil {
		h.writeError(c, err, "CreateOrder")
		return
	}
	c.JSON(http.StatusCreated, order)
}

// statusRequest — тело PATCH /api/orders/status.
type statusRequest struct {
	OrderID   string `json:"order_id" binding:"required"`
	NewStatus string `json:"new_status" binding:"required"`
}

func (h *Handler) changeOrderStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid body: %v", err)})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.service.ChangeOrderStatus(ctx, req.OrderID, req.NewStatus); err != nil {
		h.writeError(c, err, "ChangeOrderStatus")
		return
	}
	c.JSON(http.StatusOK, gin.H{"order_id": req.OrderID, "status": req.NewStatus})
}

// deleteRequest — тело DELETE /api/orders.
type deleteRequest struct {
	OrderID string `json:"order_id" binding:"required"`
}

func (h *Handler) deleteOrder(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid body: %v", err)})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.service.DeleteOrder(ctx, req.OrderID); err != nil {
		h.writeError(c, err, "DeleteOrder")
		return
	}
	c.JSON(http.StatusOK, gin.H{"order_id": req.OrderID, "deleted": true})
}

func (h *Handler) listOrders(c *gin.Context) {
	limit, offset := httpx.ParseLimitOffset(c, defaultLimit, maxLimit)

	ctx, cancel := h.requestContext(c)
	defer cancel()

	orders, err := h.service.GetAllOrders(ctx, limit, offset)
	if err != nil {
		h.writeError(c, err, "GetAllOrders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) getOrderDetails(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty id"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	details, err := h.service.GetOrderDetails(ctx, id)
	if err != nil {
		h.writeError(c, err, "GetOrderDetails")
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *Handler) getOrderDocument(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty id"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	name, doc, err := h.service.RenderOrderDocument(ctx, id)
	if err != nil {
		h.writeError(c, err, "RenderOrderDocument")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", doc)
}

func (h *Handler) listOrdersByClientEmail(c *gin.Context) {
	email := c.Param("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty email"})
		return
	}
	limit, offset := httpx.ParseLimitOffset(c, defaultLimit, maxLimit)

	ctx, cancel := h.requestContext(c)
	defer cancel()

	orders, err := h.service.GetOrdersByClientEmail(ctx, email, limit, offset)
	if err != nil {
		h.writeError(c, err, "GetOrdersByClientEmail")
		return
	}
	c.JSON(http.StatusOK, orders)
}

// writeError — единое отображение доменных ошибок в HTTP-статусы.
// Внутренние причины не раскрываются клиенту, только в лог.
func (h *Handler) writeError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest), errors.Is(err, domain.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrProductUnavailable),
		errors.Is(err, domain.ErrInvalidStatusTransition),
		errors.Is(err, domain.ErrOrderNotDeletable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.log.Errorf(c.Request.Context(), "%s failed err=%v", op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
