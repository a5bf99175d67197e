package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/kradzieta/warehouse-orders/internal/domain"
	"github.com/kradzieta/warehouse-orders/internal/notify"
	"github.com/kradzieta/warehouse-orders/internal/ports"
	"github.com/kradzieta/warehouse-orders/internal/ports/mocks"
	"github.com/kradzieta/warehouse-orders/internal/usecase"
)

const (
	clientID  = "cli-1"
	productID = "prod-1"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

// deps — полный набор моков конвейера.
type deps struct {
	txm      *mocks.MockTxManager
	orders   *mocks.MockOrderRepository
	products *mocks.MockProductStore
	clients  *mocks.MockClientStore
	cache    *mocks.MockOrderCache
	renderer *mocks.MockDocumentRenderer
}

func newDeps(ctrl *gomock.Controller) deps {
	return deps{
		txm:      mocks.NewMockTxManager(ctrl),
		orders:   mocks.NewMockOrderRepository(ctrl),
		products: mocks.NewMockProductStore(ctrl),
		clients:  mocks.NewMockClientStore(ctrl),
		cache:    mocks.NewMockOrderCache(ctrl),
		renderer: mocks.NewMockDocumentRenderer(ctrl),
	}
}

func (d deps) pipeline(dispatcher *notify.Dispatcher) *usecase.OrderPipeline {
	return usecase.NewOrderPipeline(
		d.txm, d.orders, d.products, d.clients, d.cache, d.renderer, dispatcher, noopLogger{}, "PLN")
}

// passTx — WithinTx исполняет замыкание с мок-транзакцией и отдаёт его ошибку.
func passTx(d deps, tx ports.Tx) *gomock.Call {
	return d.txm.EXPECT().WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, ports.Tx) error) error {
			return fn(ctx, tx)
		})
}

func someClient() *domain.Client {
	return &domain.Client{ID: clientID, Name: "John", Email: "john@example.com", OrderCount: 1}
}

func someProduct() *domain.Product {
	return &domain.Product{
		ID: productID, Name: "Widget", Price: 100, Currency: "PLN",
		IsAvailable: true, StockQuantity: 10,
	}
}

func createReq(items ...domain.RequestedItem) domain.CreateOrderRequest {
	if len(items) == 0 {
		items = []domain.RequestedItem{{ProductID: productID, Quantity: 2}}
	}
	return domain.CreateOrderRequest{ClientID: clientID, Items: items}
}

func TestCreateOrder_Success_SnapshotsAndStatistics(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newDeps(ctrl)
	tx := mocks.NewMockTx(ctrl)

	promo := 79.99
	product := someProduct()
	product.PromotionalPrice = &promo
	product.IsOnSale = true
	product.Currency = "" // валюта не задана — подставится запасная

	d.clients.EXPECT().FindByID(gomock.Any(), clientID).Return(someClient(), nil)
	passTx(d, tx)
	d.products.EXPECT().FindByID(gomock.Any(), productID).Return(product, nil)
	d.products.EXPECT().DecrementStock(gomock.Any(), tx, productID, 2).Return(nil)
	var created *domain.Order
	d.orders.EXPECT().Create(gomock.Any(), tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ ports.Tx, o *domain.Order) error {
			created = o
			return nil
		})
	d.clients.EXPECT().IncrementOrderCount(gomock.Any(), tx, clientID).Return(nil)

	// пост-коммит: детали в кэш
	details := &domain.OrderDetails{Client: *someClient()}
	d.orders.EXPECT().GetDetails(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id string) (*domain.OrderDetails, error) {
			details.Order = *created
			return details, nil
		})
	d.cache.EXPECT().Set(gomock.Any(), details).Return(nil)

	p := d.pipeline(nil)
	order, err := p.CreateOrder(context.Background(), createReq())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID == "" || order.Status != domain.StatusPending {
		t.Fatalf("unexpected order: %+v", order)
	}
	if len(order.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(order.Lines))
	}
	line := order.Lines[0]
	if line.PriceAtOrder != 79.99 {
		t.Fatalf("expected promotional snapshot price, got %v", line.PriceAtOrder)
	}
	if line.CurrencyAtOrder != "PLN" {
		t.Fatalf("expected fallback currency, got %q", line.CurrencyAtOrder)
	}
	if line.ProductName != "Widget" || line.Quantity != 2 {
		t.Fatalf("unexpected line: %+v", line)
	}
}

func TestCreateOrder_MergesDuplicateItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newDeps(ctrl)
	tx := mocks.NewMockTx(ctrl)

	d.clients.EXPECT().FindByID(gomock.Any(), clientID).Return(someClient(), nil)
	passTx(d, tx)
	// дубли productID слились: одна проверка товара, одно списание на суммарное количество
	d.products.EXPECT().FindByID(gomock.Any(), productID).Return(someProduct(), nil)
	d.products.EXPECT().DecrementStock(gomock.Any(), tx, productID, 5).Return(nil)
	d.orders.EXPECT().Create(gomock.Any(), tx, gomock.Any()).Return(nil)
	d.clients.EXPECT().IncrementOrderCount(gomock.Any(), tx, clientID).Return(nil)
	d.orders.EXPECT().GetDetails(gomock.Any(), gomock.Any()).Return(nil, nil)

	p := d.pipeline(nil)
	order, err := p.CreateOrder(context.Background(), createReq(
		domain.RequestedItem{ProductID: productID, Quantity: 2},
		domain.RequestedItem{ProductID: productID, Quantity: 3},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order.Lines) != 1 || order.Lines[0].Quantity != 5 {
		t.Fatalf("expected merged line qty=5, got %+v", order.Lines)
	}
}

func TestCreateOrder_InvalidRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newDeps(ctrl)
	p := d.pipeline(nil)

	cases := []struct {
		name string
		req  domain.CreateOrderRequest
	}{
		{"no client", domain.CreateOrderRequest{Items: []domain.RequestedItem{{ProductID: productID, Quantity: 1}}}},
		{"no items", domain.CreateOrderRequest{ClientID: clientID}},
		{"zero quantity", createReq(domain.RequestedItem{ProductID: productID, Quantity: 0})},
		{"negative quantity", createReq(domain.RequestedItem{ProductID: productID, Quantity: -1})},
		{"empty product id", createReq(domain.RequestedItem{Quantity: 1})},
	}
	for _, tc := range cases {
		if _, err := p.CreateOrder(context.Background(), tc.req); !errors.Is(err, domain.ErrInvalidRequest) {
			t.Fatalf("%s: expected ErrInvalidRequest, got %v", tc.name, err)
		}
	}
}

func TestCreateOrder_UnknownStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newDeps(ctrl)
	p := d.pipeline(nil)

	req := createReq()
	req.Status = "shipped"
	if _, err := p.CreateOrder(context.Background(), req); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestCreateOrder_ClientNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newDeps(ctrl)

	d.clients.EXPECT().FindByID(gomock.Any(), clientID).Return(nil, nil)

	p := d.pipeline(nil)
	if _, err := p.CreateOrder(context.Background(), createReq()); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestCreateOrder_TypedFailuresAbortTx(t *testing.T) {
	cases := []struct {
		name    string
		product *domain.Product
		decErr  error
		wantErr error
	}{
		{"product missing", nil, nil, domain.ErrProductNotFound},
		{"product unavailable", &domain.Product{ID: productID, IsAvailable: false}, nil, domain.ErrProductUnavailable},
		{"insufficient stock", someProduct(), domain.ErrInsufficientStock, domain.ErrInsufficientStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			d := newDeps(ctrl)
			tx := mocks.NewMockTx(ctrl)

			d.clients.EXPECT().FindByID(gomock.Any(), clientID).Return(someClient(), nil)
			passTx(d, tx)
			d.products.EXPECT().FindByID(gomock.Any(), productID).Return(tc.product, nil)
			if tc.decErr != nil {
				d.products.EXPECT().DecrementStock(gomock.Any(), tx, productID, 2).Return(tc.decErr)
			}
			// orders.Create и IncrementOrderCount не вызываются — транзакция оборвана

			p := d.pipeline(nil)
			if _, err := p.CreateOrder(context.Background(), createReq()); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCreateOrder_SecondLineFailureAbortsWholeTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newDeps(ctrl)
	tx := mocks.NewMockTx(ctrl)

	other := &domain.Product{ID: "prod-2", Name: "Gadget", Price: 5, Currency: "PLN", IsAvailable: true}

	d.clients.EXPECT().FindByID(gomock.Any(), clientID).Return(someClient(), nil)
	passTx(d, tx)
	gomock.InOrder(
		d.products.EXPECT().FindByID(gomock.Any(), productID).Return(someProduct(), nil),
		d.products.EXPECT().DecrementStock(gomock.Any(), tx, productID, 1).Return(nil),
		d.products.EXPECT().FindByID(gomock.Any(), "prod-2").Return(other, nil),
		d.products.EXPECT().DecrementStock(gomock.Any(), tx, "prod-2", 4).Return(domain.ErrInsufficientStock),
	)

	p := d.pipeline(nil)
	_, err := p.CreateOrder(context.Background(), createReq(
		domain.RequestedItem{ProductID: productID, Quantity: 1},
		domain.RequestedItem{ProductID: "prod-2", Quantity: 4},
	))
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
}

func TestCreateOrder_NotifyFailureDoesNotFailOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newDeps(ctrl)
	tx := mocks.NewMockTx(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	d.clients.EXPECT().FindByID(gomock.Any(), clientID).Return(someClient(), nil)
	passTx(d, tx)
	d.products.EXPECT().FindByID(gomock.Any(), productID).Return(someProduct(), nil)
	d.products.EXPECT().DecrementStock(gomock.Any(), tx, productID, 2).Return(nil)
	d.orders.EXPECT().Create(gomock.Any(), tx, gomock.Any()).Return(nil)
	d.clients.EXPECT().IncrementOrderCount(gomock.Any(), tx, clientID).Return(nil)

	details := &domain.OrderDetails{
		Order:  domain.Order{ID: "ord-1", Status: domain.StatusPending},
		Client: *someClient(),
	}
	d.orders.EXPECT().GetDetails(gomock.Any(), gomock.Any()).Return(details, nil)
	d.cache.EXPECT().Set(gomock.Any(), details).Return(nil)

	// рендер проходит, доставка падает — заказ всё равно создан
	d.renderer.EXPECT().Render(gomock.Any(), details).Return([]byte("doc"), nil)
	notifier.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("broker down"))

	dispatcher := notify.NewDispatcher(d.renderer, notifier, noopLogger{}, time.Second)
	p := d.pipeline(dispatcher)

	order, err := p.CreateOrder(context.Background(), createReq())
	dispatcher.Wait()
	if err != nil || order == nil {
		t.Fatalf("order must succeed despite notify failure: err=%v", err)
	}
}

func TestChangeOrderStatus_CancelCompensates(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newDeps(ctrl)
	tx := mocks.NewMockTx(ctrl)

	order := &domain.Order{
		ID: "ord-1", ClientID: clientID, Status: domain.StatusPending,
		Lines: []domain.OrderLine{
			{ProductID: "p-1", Quantity: 2},
			{ProductID: "p-2", Quantity: 1},
		},
	}

	passTx(d, tx)
	gomock.InOrder(
		d.orders.EXPECT().GetByID(gomock.Any(), tx, "ord-1").Return(order, nil),
		d.products.EXPECT().IncrementStock(gomock.Any(), tx, "p-1", 2).Return(nil),
		d.products.EXPECT().IncrementStock(gomock.Any(), tx, "p-2", 1).Return(nil),
		d.clients.EXPECT().DecrementOrderCount(gomock.Any(), tx, clientID).Return(nil),
		d.orders.EXPECT().UpdateStatus(gomock.Any(), tx, "ord-1", domain.StatusCanceled).Return(nil),
	)
	d.cache.EXPECT().Invalidate(gomock.Any(), "ord-1")
	// пост-коммитное уведомление об отмене: детали перечитываются
	d.orders.EXPECT().GetDetails(gomock.Any(), "ord-1").Return(nil, nil)

	p := d.pipeline(nil)
	if err := p.ChangeOrderStatus(context.Background(), "ord-1", "canceled"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestChangeOrderStatus_CompleteSkipsCompensation(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newDeps(ctrl)
	tx := mocks.NewMockTx(ctrl)

	order := &domain.Order{
		ID: "ord-1", ClientID: clientID, Status: domain.StatusPending,
		Lines: []domain.OrderLine{{ProductID: "p-1", Quantity: 2}},
	}

	passTx(d, tx)
	gomock.InOrder(
		d.orders.EXPECT().GetByID(gomock.Any(), tx, "ord-1").Return(order, nil),
		d.orders.EXPECT().UpdateStatus(gomock.Any(), tx, "ord-1", domain.StatusCompleted).Return(nil),
	)
	d.cache.EXPECT().Invalidate(gomock.Any(), "ord-1")

	p := d.pipeline(nil)
	if err := p.ChangeOrderStatus(context.Background(), "ord-1", "completed"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestChangeOrderStatus_TerminalSourceRejected(t *testing.T) {
	for _, from := range []domain.OrderStatus{domain.StatusCompleted, domain.StatusCanceled} {
		ctrl := gomock.NewController(t)
		d := newDeps(ctrl)
		tx := mocks.NewMockTx(ctrl)

		order := &domain.Order{ID: "ord-1", ClientID: clientID, Status: from}

		passTx(d, tx)
		d.orders.EXPECT().GetByID(gomock.Any(), tx, "ord-1").Return(order, nil)

		p := d.pipeline(nil)
		err := p.ChangeOrderStatus(context.Background(), "ord-1", "canceled")
		if !errors.Is(err, domain.ErrInvalidStatusTransition) {
			t.Fatalf("from %s: expected ErrInvalidStatusTransition, got %v", from, err)
		}
	}
}

func TestChangeOrderStatus_UnknownStatusAndMissingOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newDeps(ctrl)
	tx := mocks.NewMockTx(ctrl)
	p := d.pipeline(nil)

	if err := p.ChangeOrderStatus(context.Background(), "ord-1", "shipped"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}

	passTx(d, tx)
	d.orders.EXPECT().GetByID(gomock.Any(), tx, "ord-1").Return(nil, nil)
	if err := p.ChangeOrderStatus(context.Background(), "ord-1", "canceled"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestChangeOrderStatus_CompensationFailureAbortsTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newDeps(ctrl)
	tx := mocks.NewMockTx(ctrl)

	order := &domain.Order{
		ID: "ord-1", ClientID: clientID, Status: domain.StatusPending,
		Lines: []domain.OrderLine{{ProductID: "p-1", Quantity: 2}},
	}

	passTx(d, tx)
	gomock.InOrder(
		d.orders.EXPECT().GetByID(gomock.Any(), tx, "ord-1").Return(order, nil),
		d.products.EXPECT().IncrementStock(gomock.Any(), tx, "p-1", 2).Return(errors.New("db down")),
	)
	// UpdateStatus не вызывается — компенсация сорвала транзакцию

	p := d.pipeline(nil)
	if err := p.ChangeOrderStatus(context.Background(), "ord-1", "canceled"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestDeleteOrder_OnlyTerminal(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newDeps(ctrl)
	p := d.pipeline(nil)

	// pending нельзя удалить
	d.orders.EXPECT().GetByID(gomock.Any(), nil, "ord-1").
		Return(&domain.Order{ID: "ord-1", Status: domain.StatusPending}, nil)
	if err := p.DeleteOrder(context.Background(), "ord-1"); !errors.Is(err, domain.ErrOrderNotDeletable) {
		t.Fatalf("expected ErrOrderNotDeletable, got %v", err)
	}

	// терминальный удаляется, кэш инвалидируется
	d.orders.EXPECT().GetByID(gomock.Any(), nil, "ord-2").
		Return(&domain.Order{ID: "ord-2", Status: domain.StatusCanceled}, nil)
	d.orders.EXPECT().Delete(gomock.Any(), "ord-2").Return(true, nil)
	d.cache.EXPECT().Invalidate(gomock.Any(), "ord-2")
	if err := p.DeleteOrder(context.Background(), "ord-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// отсутствующий — ErrOrderNotFound
	d.orders.EXPECT().GetByID(gomock.Any(), nil, "ord-3").Return(nil, nil)
	if err := p.DeleteOrder(context.Background(), "ord-3"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestGetOrderDetails_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newDeps(ctrl)

	details := &domain.OrderDetails{Order: domain.Order{ID: "ord-1"}}
	d.cache.EXPECT().Get(gomock.Any(), "ord-1").Return(details, true)

	p := d.pipeline(nil)
	got, err := p.GetOrderDetails(context.Background(), "ord-1")
	if err != nil || got != details {
		t.Fatalf("expected cache hit, got err=%v", err)
	}
}

func TestGetOrderDetails_CacheMiss_FetchAndCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newDeps(ctrl)

	details := &domain.OrderDetails{Order: domain.Order{ID: "ord-1"}}
	gomock.InOrder(
		d.cache.EXPECT().Get(gomock.Any(), "ord-1").Return(nil, false),
		d.orders.EXPECT().GetDetails(gomock.Any(), "ord-1").Return(details, nil),
		d.cache.EXPECT().Set(gomock.Any(), details).Return(nil),
	)

	p := d.pipeline(nil)
	got, err := p.GetOrderDetails(context.Background(), "ord-1")
	if err != nil || got != details {
		t.Fatalf("expected fetch, got err=%v", err)
	}
}

func TestGetOrderDetails_Missing(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newDeps(ctrl)

	d.cache.EXPECT().Get(gomock.Any(), "ord-1").Return(nil, false)
	d.orders.EXPECT().GetDetails(gomock.Any(), "ord-1").Return(nil, nil)

	p := d.pipeline(nil)
	if _, err := p.GetOrderDetails(context.Background(), "ord-1"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestGetOrdersByClientEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newDeps(ctrl)
	p := d.pipeline(nil)

	// клиент не найден
	d.clients.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil)
	if _, err := p.GetOrdersByClientEmail(context.Background(), "ghost@example.com", 10, 0); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}

	// найден — проксируем в репозиторий по id
	list := []*domain.Order{{ID: "ord-1"}}
	d.clients.EXPECT().FindByEmail(gomock.Any(), "john@example.com").Return(someClient(), nil)
	d.orders.EXPECT().ListByClient(gomock.Any(), clientID, 10, 0).Return(list, nil)
	got, err := p.GetOrdersByClientEmail(context.Background(), "john@example.com", 10, 0)
	if err != nil || len(got) != 1 {
		t.Fatalf("expected 1 order, got err=%v list=%v", err, got)
	}
}

func TestRenderOrderDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newDeps(ctrl)

	details := &domain.OrderDetails{Order: domain.Order{ID: "ord-1"}}
	d.cache.EXPECT().Get(gomock.Any(), "ord-1").Return(details, true)
	d.renderer.EXPECT().Render(gomock.Any(), details).Return([]byte("summary"), nil)

	p := d.pipeline(nil)
	name, doc, err := p.RenderOrderDocument(context.Background(), "ord-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "order-ord-1.txt" || string(doc) != "summary" {
		t.Fatalf("unexpected document: name=%q doc=%q", name, doc)
	}
}

func TestWarmUpCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newDeps(ctrl)
	p := d.pipeline(nil)

	// n <= 0 — не ошибка и без обращений к БД
	if err := p.WarmUpCache(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list := []*domain.OrderDetails{{Order: domain.Order{ID: "ord-1"}}}
	gomock.InOrder(
		d.orders.EXPECT().LastN(gomock.Any(), 5).Return(list, nil),
		d.cache.EXPECT().WarmUp(gomock.Any(), list).Return(nil),
	)
	if err := p.WarmUpCache(context.Background(), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
