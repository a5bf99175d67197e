//go:build integration

package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cachemem "github.com/kradzieta/warehouse-orders/internal/cache/memory"
	"github.com/kradzieta/warehouse-orders/internal/document"
	"github.com/kradzieta/warehouse-orders/internal/domain"
	pgrepo "github.com/kradzieta/warehouse-orders/internal/repo/postgres"
	"github.com/kradzieta/warehouse-orders/internal/testutil"
	rest "github.com/kradzieta/warehouse-orders/internal/transport/http"
	"github.com/kradzieta/warehouse-orders/internal/usecase"
	"github.com/kradzieta/warehouse-orders/pkg/logger"
)

type env struct {
	ts       *httptest.Server
	clients  *pgrepo.ClientRepository
	products *pgrepo.ProductRepository
	orders   *pgrepo.OrderRepository
}

// startEnv — Postgres в контейнере + полный конвейер за httptest-сервером.
// Уведомления выключены (nil-диспетчер): их покрывает kafka-интеграционный тест.
func startEnv(t *testing.T, ctx context.Context) env {
	t.Helper()

	pg, stop, err := testutil.StartPostgresTC(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stop(context.Background()) })
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	clients := pgrepo.NewClientRepository(pg.Pool, 5)
	products := pgrepo.NewProductRepository(pg.Pool)
	orders := pgrepo.NewOrderRepository(pg.Pool)
	txm := pgrepo.NewTxManager(pg.Pool)

	pipeline := usecase.NewOrderPipeline(
		txm, orders, products, clients,
		cachemem.NewLRUCacheTTL(100, time.Minute),
		document.NewSummaryRenderer(),
		nil,
		logg,
		"PLN",
	)

	h := rest.NewHandler(pipeline, logg, 5*time.Second)
	ts := httptest.NewServer(rest.NewRouter(h, ""))
	t.Cleanup(ts.Close)

	return env{ts: ts, clients: clients, products: products, orders: orders}
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	return resp
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(method, url, bytes.NewReader(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

// Полный путь заказа: создание → детали → отмена с компенсацией → удаление
func TestHTTP_OrderLifecycle_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	e := startEnv(t, ctx)

	cli := testutil.MakeClient()
	require.NoError(t, e.clients.UpsertClient(ctx, &cli))
	prod := testutil.MakeProduct(testutil.WithStock(10))
	require.NoError(t, e.products.UpsertProduct(ctx, &prod))

	// создание: дубли позиций сливаются, остаток списывается на суммарные 3
	resp := postJSON(t, e.ts.URL+"/api/orders", map[string]any{
		"client_id": cli.ID,
		"products": []map[string]any{
			{"product_id": prod.ID, "quantity": 2},
			{"product_id": prod.ID, "quantity": 1},
		},
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created domain.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotEmpty(t, created.ID)
	require.Len(t, created.Lines, 1)
	require.Equal(t, 3, created.Lines[0].Quantity)
	require.Equal(t, prod.Price, created.Lines[0].PriceAtOrder)

	p, err := e.products.FindByID(ctx, prod.ID)
	require.NoError(t, err)
	require.Equal(t, 7, p.StockQuantity)

	c, err := e.clients.FindByID(ctx, cli.ID)
	require.NoError(t, err)
	require.Equal(t, 1, c.OrderCount)

	// детали
	resp2, err := http.Get(e.ts.URL + "/api/orders/" + created.ID)
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	var details domain.OrderDetails
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&details))
	require.Equal(t, cli.Email, details.Client.Email)

	// документ
	resp3, err := http.Get(e.ts.URL + "/api/orders/" + created.ID + "/document")
	require.NoError(t, err)
	defer resp3.Body.Close()
	require.Equal(t, http.StatusOK, resp3.StatusCode)
	doc, err := io.ReadAll(resp3.Body)
	require.NoError(t, err)
	require.Contains(t, string(doc), created.ID)

	// pending нельзя удалить
	resp4 := doJSON(t, http.MethodDelete, e.ts.URL+"/api/orders", map[string]any{"order_id": created.ID})
	defer resp4.Body.Close()
	require.Equal(t, http.StatusConflict, resp4.StatusCode)

	// отмена: остаток и счётчик восстановлены
	resp5 := doJSON(t, http.MethodPatch, e.ts.URL+"/api/orders/status",
		map[string]any{"order_id": created.ID, "new_status": "canceled"})
	defer resp5.Body.Close()
	require.Equal(t, http.StatusOK, resp5.StatusCode)

	p, err = e.products.FindByID(ctx, prod.ID)
	require.NoError(t, err)
	require.Equal(t, 10, p.StockQuantity)

	c, err = e.clients.FindByID(ctx, cli.ID)
	require.NoError(t, err)
	require.Equal(t, 0, c.OrderCount)

	// повторная отмена — 409 (терминальный источник)
	resp6 := doJSON(t, http.MethodPatch, e.ts.URL+"/api/orders/status",
		map[string]any{"order_id": created.ID, "new_status": "completed"})
	defer resp6.Body.Close()
	require.Equal(t, http.StatusConflict, resp6.StatusCode)

	// терминальный заказ удаляется
	resp7 := doJSON(t, http.MethodDelete, e.ts.URL+"/api/orders", map[string]any{"order_id": created.ID})
	defer resp7.Body.Close()
	require.Equal(t, http.StatusOK, resp7.StatusCode)

	resp8, err := http.Get(e.ts.URL + "/api/orders/" + created.ID)
	require.NoError(t, err)
	defer resp8.Body.Close()
	require.Equal(t, http.StatusNotFound, resp8.StatusCode)
}

// Недостаток остатка: 409 и никакого заказа в БД
func TestHTTP_CreateOrder_InsufficientStock_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	e := startEnv(t, ctx)

	cli := testutil.MakeClient()
	require.NoError(t, e.clients.UpsertClient(ctx, &cli))
	prod := testutil.MakeProduct(testutil.WithStock(1))
	require.NoError(t, e.products.UpsertProduct(ctx, &prod))

	resp := postJSON(t, e.ts.URL+"/api/orders", map[string]any{
		"client_id": cli.ID,
		"products":  []map[string]any{{"product_id": prod.ID, "quantity": 2}},
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	// остаток не тронут, счётчик клиента не изменился
	p, err := e.products.FindByID(ctx, prod.ID)
	require.NoError(t, err)
	require.Equal(t, 1, p.StockQuantity)

	c, err := e.clients.FindByID(ctx, cli.ID)
	require.NoError(t, err)
	require.Equal(t, 0, c.OrderCount)

	list, err := e.orders.ListByClient(ctx, cli.ID, 10, 0)
	require.NoError(t, err)
	require.Empty(t, list)
}

// Заказы клиента по email + пагинация
func TestHTTP_OrdersByEmail_Pagination_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	e := startEnv(t, ctx)

	cli := testutil.MakeClient()
	require.NoError(t, e.clients.UpsertClient(ctx, &cli))
	prod := testutil.MakeProduct(testutil.WithStock(100))
	require.NoError(t, e.products.UpsertProduct(ctx, &prod))

	for i := 0; i < 3; i++ {
		resp := postJSON(t, e.ts.URL+"/api/orders", map[string]any{
			"client_id": cli.ID,
			"products":  []map[string]any{{"product_id": prod.ID, "quantity": 1}},
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp, err := http.Get(fmt.Sprintf("%s/api/clients/%s/orders?limit=2&offset=0", e.ts.URL, cli.Email))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page []*domain.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	require.Len(t, page, 2)

	// неизвестный email — 404
	resp2, err := http.Get(e.ts.URL + "/api/clients/ghost@example.com/orders")
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusNotFound, resp2.StatusCode)
}
