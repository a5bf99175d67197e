package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kradzieta/warehouse-orders/internal/document"
	"github.com/kradzieta/warehouse-orders/internal/domain"
	"github.com/kradzieta/warehouse-orders/internal/notify"
	"github.com/kradzieta/warehouse-orders/internal/ports"
	"github.com/kradzieta/warehouse-orders/pkg/metrics"
)

// Проверка, что OrderPipeline удовлетворяет интерфейсу OrderService.
var _ ports.OrderService = (*OrderPipeline)(nil)

// OrderPipeline — прикладная логика конвейера заказов (без знаний о транспорте).
// Все мутации склада, статистики и заказа одного вызова идут в общей транзакции;
// уведомления и кэш — строго после коммита.
type OrderPipeline struct {
	txm      ports.TxManager
	orders   ports.OrderRepository
	products ports.ProductStore
	clients  ports.ClientStore
	cache    ports.OrderCache
	renderer ports.DocumentRenderer
	notify   *notify.Dispatcher
	log      ports.Logger

	fallbackCurrency string
}

// NewOrderPipeline — DI-конструктор.
func NewOrderPipeline(
	txm ports.TxManager,
	orders ports.OrderRepository,
	products ports.ProductStore,
	clients ports.ClientStore,
	cache ports.OrderCache,
	renderer ports.DocumentRenderer,
	dispatcher *notify.Dispatcher,
	log ports.Logger,
	fallbackCurrency string,
) *OrderPipeline {
	return &OrderPipeline{
		txm:              txm,
		orders:           orders,
		products:         products,
		clients:          clients,
		cache:            cache,
		renderer:         renderer,
		notify:           dispatcher,
		log:              log,
		fallbackCurrency: fallbackCurrency,
	}
}

// CreateOrder — создать заказ. Шаги:
//  1. валидация запроса и разбор начального статуса;
//  2. проверка клиента;
//  3. слияние дублей позиций (первый встреченный порядок);
//  4. в одной транзакции: по каждой позиции — проверка товара, условное
//     списание остатка, снимок цены/валюты; вставка заказа; счётчик клиента;
//  5. после коммита — кэш деталей и best-effort уведомление.
func (s *OrderPipeline) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	if err := validateCreateRequest(req); err != nil {
		metrics.OrdersFailed.WithLabelValues(failReason(err)).Inc()
		return nil, err
	}

	status := domain.StatusPending
	if req.Status != "" {
		parsed, err := domain.ParseStatus(req.Status)
		if err != nil {
			metrics.OrdersFailed.WithLabelValues(failReason(err)).Inc()
			return nil, err
		}
		status = parsed
	}

	orderedAt := time.Now().UTC()
	if req.OrderedAt != nil {
		orderedAt = req.OrderedAt.UTC()
	}

	client, err := s.clients.FindByID(ctx, req.ClientID)
	if err != nil {
		metrics.OrdersFailed.WithLabelValues("internal").Inc()
		return nil, fmt.Errorf("find client: %w", err)
	}
	if client == nil {
		metrics.OrdersFailed.WithLabelValues(failReason(domain.ErrClientNotFound)).Inc()
		return nil, fmt.Errorf("%w: %s", domain.ErrClientNotFound, req.ClientID)
	}

	items := domain.AggregateItems(req.Items)

	order := &domain.Order{
		ID:        uuid.NewString(),
		ClientID:  client.ID,
		Status:    status,
		OrderedAt: orderedAt,
		Lines:     make([]domain.OrderLine, 0, len(items)),
	}

	err = s.txm.WithinTx(ctx, func(ctx context.Context, tx ports.Tx) error {
		for _, item := range items {
			line, lineErr := s.reserveLine(ctx, tx, item)
			if lineErr != nil {
				return lineErr
			}
			order.Lines = append(order.Lines, *line)
		}
		if createErr := s.orders.Create(ctx, tx, order); createErr != nil {
			return fmt.Errorf("create order: %w", createErr)
		}
		return s.clients.IncrementOrderCount(ctx, tx, client.ID)
	})
	if err != nil {
		metrics.OrdersFailed.WithLabelValues(failReason(err)).Inc()
		s.log.Warnf(ctx, "order creation failed client_id=%s err=%v", client.ID, err)
		return nil, err
	}

	metrics.OrdersCreated.Inc()
	s.log.Infof(ctx, "order created id=%s client_id=%s lines=%d total=%.2f",
		order.ID, client.ID, len(order.Lines), order.Total())

	s.afterCommit(ctx, order.ID)
	return order, nil
}

// reserveLine — резерв одной позиции: проверка товара, условное списание,
// снимок цены и валюты на момент заказа.
func (s *OrderPipeline) reserveLine(ctx context.Context, tx ports.Tx, item domain.RequestedItem) (*domain.OrderLine, error) {
	product, err := s.products.FindByID(ctx, item.ProductID)
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, item.ProductID)
	}
	if !product.IsAvailable {
		return nil, fmt.Errorf("%w: %s", domain.ErrProductUnavailable, product.ID)
	}

	if err := s.products.DecrementStock(ctx, tx, product.ID, item.Quantity); err != nil {
		return nil, err
	}

	return &domain.OrderLine{
		ProductID:       product.ID,
		ProductName:     product.Name,
		Quantity:        item.Quantity,
		PriceAtOrder:    product.PriceAtOrder(),
		CurrencyAtOrder: product.CurrencyOrFallback(s.fallbackCurrency),
	}, nil
}

// ChangeOrderStatus — смена статуса заказа. Заказ блокируется на чтении
// (FOR UPDATE), переходы допустимы только из pending. Отмена компенсирует
// транзакцию: остатки возвращаются на склад, счётчик клиента уменьшается.
func (s *OrderPipeline) ChangeOrderStatus(ctx context.Context, orderID, newStatus string) error {
	next, err := domain.ParseStatus(newStatus)
	if err != nil {
		return err
	}

	err = s.txm.WithinTx(ctx, func(ctx context.Context, tx ports.Tx) error {
		order, getErr := s.orders.GetByID(ctx, tx, orderID)
		if getErr != nil {
			return fmt.Errorf("load order: %w", getErr)
		}
		if order == nil {
			return fmt.Errorf("%w: %s", domain.ErrOrderNotFound, orderID)
		}
		if !order.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidStatusTransition, order.Status, next)
		}

		if next == domain.StatusCanceled {
			for _, line := range order.Lines {
				if incErr := s.products.IncrementStock(ctx, tx, line.ProductID, line.Quantity); incErr != nil {
					return fmt.Errorf("restore stock: %w", incErr)
				}
			}
			if decErr := s.clients.DecrementOrderCount(ctx, tx, order.ClientID); decErr != nil {
				return fmt.Errorf("decrement order count: %w", decErr)
			}
		}
		return s.orders.UpdateStatus(ctx, tx, orderID, next)
	})
	if err != nil {
		s.log.Warnf(ctx, "status change failed order_id=%s to=%s err=%v", orderID, next, err)
		return err
	}

	metrics.OrderStatusChanges.WithLabelValues(string(next)).Inc()
	s.cache.Invalidate(ctx, orderID)
	s.log.Infof(ctx, "order status changed id=%s to=%s", orderID, next)

	if next == domain.StatusCanceled {
		s.afterCommit(ctx, orderID)
	}
	return nil
}

// DeleteOrder — административное удаление. Удалить можно только заказ в
// терминальном статусе: удаление не выполняет компенсаций, и живой pending
// навсегда рассинхронизировал бы склад и статистику.
func (s *OrderPipeline) DeleteOrder(ctx context.Context, orderID string) error {
	order, err := s.orders.GetByID(ctx, nil, orderID)
	if err != nil {
		return fmt.Errorf("load order: %w", err)
	}
	if order == nil {
		return fmt.Errorf("%w: %s", domain.ErrOrderNotFound, orderID)
	}
	if !order.Status.Terminal() {
		return fmt.Errorf("%w: order %s is %s", domain.ErrOrderNotDeletable, orderID, order.Status)
	}

	existed, err := s.orders.Delete(ctx, orderID)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if !existed {
		return fmt.Errorf("%w: %s", domain.ErrOrderNotFound, orderID)
	}

	s.cache.Invalidate(ctx, orderID)
	s.log.Infof(ctx, "order deleted id=%s", orderID)
	return nil
}

// GetAllOrders — страница всех заказов (пагинация уже валидирована на верхнем уровне).
func (s *OrderPipeline) GetAllOrders(ctx context.Context, limit, offset int) ([]*domain.Order, error) {
	return s.orders.ListAll(ctx, limit, offset)
}

// GetOrdersByClient — заказы клиента по id.
func (s *OrderPipeline) GetOrdersByClient(ctx context.Context, clientID string, limit, offset int) ([]*domain.Order, error) {
	return s.orders.ListByClient(ctx, clientID, limit, offset)
}

// GetOrdersByClientEmail — заказы клиента по email.
func (s *OrderPipeline) GetOrdersByClientEmail(ctx context.Context, email string, limit, offset int) ([]*domain.Order, error) {
	client, err := s.clients.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find client: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrClientNotFound, email)
	}
	return s.orders.ListByClient(ctx, client.ID, limit, offset)
}

// GetOrderDetails — детали заказа: сначала из кэша, при промахе — из БД с записью в кэш.
func (s *OrderPipeline) GetOrderDetails(ctx context.Context, orderID string) (*domain.OrderDetails, error) {
	if details, found := s.cache.Get(ctx, orderID); found {
		s.log.Infof(ctx, "cache hit for order=%s", orderID)
		return details, nil
	}
	s.log.Infof(ctx, "cache miss for order=%s", orderID)

	details, err := s.orders.GetDetails(ctx, orderID)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetDetails failed order_id=%s err=%v", orderID, err)
		return nil, err
	}
	if details == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrOrderNotFound, orderID)
	}

	if setErr := s.cache.Set(ctx, details); setErr != nil {
		s.log.Warnf(ctx, "cache.Set failed order_id=%s err=%v", orderID, setErr)
	}
	return details, nil
}

// RenderOrderDocument — сводный документ заказа: имя файла и содержимое.
func (s *OrderPipeline) RenderOrderDocument(ctx context.Context, orderID string) (string, []byte, error) {
	details, err := s.GetOrderDetails(ctx, orderID)
	if err != nil {
		return "", nil, err
	}
	doc, err := s.renderer.Render(ctx, details)
	if err != nil {
		return "", nil, fmt.Errorf("render document: %w", err)
	}
	return document.FileName(orderID), doc, nil
}

// WarmUpCache — прогрев кэша последними N заказами из БД.
// Если n <= 0, прогрев не выполняется (но это не ошибка).
func (s *OrderPipeline) WarmUpCache(ctx context.Context, n int) error {
	if n <= 0 {
		s.log.Warnf(ctx, "cache warm-up skipped: n <= 0 (n=%d)", n)
		return nil
	}

	start := time.Now()
	list, err := s.orders.LastN(ctx, n)
	if err != nil {
		s.log.Errorf(ctx, "repo.LastN failed n=%d err=%v", n, err)
		return err
	}
	if warmUpErr := s.cache.WarmUp(ctx, list); warmUpErr != nil {
		s.log.Warnf(ctx, "cache.WarmUp failed err=%v", warmUpErr)
	}
	s.log.Infof(ctx, "cache warmed with %d orders in %s", len(list), time.Since(start))
	return nil
}

// afterCommit — пост-коммитная часть: свежие детали в кэш и уведомление клиенту.
// Любой сбой здесь логируется и не влияет на результат операции.
func (s *OrderPipeline) afterCommit(ctx context.Context, orderID string) {
	details, err := s.orders.GetDetails(ctx, orderID)
	if err != nil || details == nil {
		s.log.Warnf(ctx, "post-commit details fetch failed order_id=%s err=%v", orderID, err)
		return
	}
	if setErr := s.cache.Set(ctx, details); setErr != nil {
		s.log.Warnf(ctx, "cache.Set failed order_id=%s err=%v", orderID, setErr)
	}
	if s.notify != nil {
		s.notify.Dispatch(ctx, details)
	}
}

// validateCreateRequest — структурная валидация запроса на создание.
func validateCreateRequest(req domain.CreateOrderRequest) error {
	if req.ClientID == "" {
		return fmt.Errorf("%w: client_id is required", domain.ErrInvalidRequest)
	}
	if len(req.Items) == 0 {
		return fmt.Errorf("%w: at least one product is required", domain.ErrInvalidRequest)
	}
	for _, item := range req.Items {
		if item.ProductID == "" {
			return fmt.Errorf("%w: product_id is required", domain.ErrInvalidRequest)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: quantity must be positive (product %s)", domain.ErrInvalidRequest, item.ProductID)
		}
	}
	return nil
}

// failReason — метка причины для метрики отказов конвейера.
func failReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest), errors.Is(err, domain.ErrInvalidStatus):
		return "invalid_request"
	case errors.Is(err, domain.ErrClientNotFound):
		return "client_not_found"
	case errors.Is(err, domain.ErrProductNotFound):
		return "product_not_found"
	case errors.Is(err, domain.ErrProductUnavailable):
		return "product_unavailable"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrTxAborted):
		return "tx_aborted"
	default:
		return "internal"
	}
}
