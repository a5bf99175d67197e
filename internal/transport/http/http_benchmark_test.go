//go:build !integration

package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kradzieta/warehouse-orders/internal/domain"
	"github.com/kradzieta/warehouse-orders/pkg/httpx"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

func benchOrder(id string) *domain.Order {
	return &domain.Order{
		ID:        id,
		ClientID:  "bench-cli",
		Status:    domain.StatusPending,
		OrderedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Lines: []domain.OrderLine{
			{ProductID: "p-1", ProductName: "Widget", Quantity: 2, PriceAtOrder: 49.99, CurrencyAtOrder: "PLN"},
			{ProductID: "p-2", ProductName: "Gadget", Quantity: 1, PriceAtOrder: 100, CurrencyAtOrder: "PLN"},
		},
	}
}

// benchService — фиксированные ответы без БД: меряем только HTTP-слой.
type benchService struct {
	details *domain.OrderDetails
	list    []*domain.Order
}

func (s benchService) CreateOrder(context.Context, domain.CreateOrderRequest) (*domain.Order, error) {
	return nil, nil
}
func (s benchService) ChangeOrderStatus(context.Context, string, string) error { return nil }
func (s benchService) DeleteOrder(context.Context, string) error               { return nil }
func (s benchService) GetAllOrders(context.Context, int, int) ([]*domain.Order, error) {
	return s.list, nil
}
func (s benchService) GetOrdersByClient(context.Context, string, int, int) ([]*domain.Order, error) {
	return s.list, nil
}
func (s benchService) GetOrdersByClientEmail(context.Context, string, int, int) ([]*domain.Order, error) {
	return s.list, nil
}
func (s benchService) GetOrderDetails(context.Context, string) (*domain.OrderDetails, error) {
	return s.details, nil
}
func (s benchService) RenderOrderDocument(context.Context, string) (string, []byte, error) {
	return "", nil, nil
}

// makeLeanRouter — только маршруты, без middleware.
func makeLeanRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/api/orders/:id", h.getOrderDetails)
	r.GET("/api/clients/:email/orders", h.listOrdersByClientEmail)
	return r
}

// makeFullRouter — боевой набор middleware (recovery, request-id, логгер).
func makeFullRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(nopLogger{}))
	r.GET("/api/orders/:id", h.getOrderDetails)
	r.GET("/api/clients/:email/orders", h.listOrdersByClientEmail)
	return r
}

func benchServeGET(b *testing.B, r http.Handler, path string) {
	b.Helper()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK && w.Code != http.StatusNotFound {
			b.Fatalf("unexpected status %d", w.Code)
		}
		_, _ = io.Copy(io.Discard, w.Body)
	}
}

// Базовый бенч: детали заказа — LEAN vs FULL пайплайн middleware
func BenchmarkHTTP_GetOrderDetails(b *testing.B) {
	details := &domain.OrderDetails{
		Order:  *benchOrder("bench-ord"),
		Client: domain.Client{ID: "bench-cli", Name: "Bench", Email: "bench@example.com"},
	}
	h := NewHandler(benchService{details: details}, nopLogger{}, 2*time.Second)

	lean := makeLeanRouter(h)
	full := makeFullRouter(h)

	b.Run("lean/no-mw", func(b *testing.B) {
		benchServeGET(b, lean, "/api/orders/bench-ord")
	})
	b.Run("full/prod-mw", func(b *testing.B) {
		benchServeGET(b, full, "/api/orders/bench-ord")
	})
}

// Потолок без маршалинга: заранее закодированный JSON тех же деталей.
// Показывает, сколько «ест» encoding/json в хендлере.
func BenchmarkHTTP_GetOrderDetails_PreMarshaledBytes(b *testing.B) {
	raw, _ := json.Marshal(benchOrder("bench-ord"))

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/api/orders/:id", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", raw)
	})

	benchServeGET(b, r, "/api/orders/bench-ord")
}

// Пагинация: 10/50/100 — рост аллокаций и времени на размере страницы
func BenchmarkHTTP_ListByClientEmail(b *testing.B) {
	for _, n := range []int{10, 50, 100} {
		b.Run("N="+strconv.Itoa(n), func(b *testing.B) {
			list := make([]*domain.Order, 0, n)
			for i := 0; i < n; i++ {
				list = append(list, benchOrder("bench-"+strconv.Itoa(i)))
			}
			h := NewHandler(benchService{list: list}, nopLogger{}, 2*time.Second)

			lean := makeLeanRouter(h)
			benchServeGET(b, lean, "/api/clients/bench@example.com/orders?limit="+strconv.Itoa(n))
		})
	}
}

// Ошибочный путь: "цена" роутера и 404-хендлера
func BenchmarkHTTP_404(b *testing.B) {
	h := NewHandler(benchService{}, nopLogger{}, 2*time.Second)
	lean := makeLeanRouter(h)
	benchServeGET(b, lean, "/no-such-route")
}
