package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kradzieta/warehouse-orders/internal/domain"
	"github.com/kradzieta/warehouse-orders/internal/ports"
)

// Проверка, что OrderRepository удовлетворяет интерфейсу OrderRepository.
var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository — реализация репозитория заказов на Postgres (pgxpool).
// Мутации выполняются в транзакции конвейера (ports.Tx), чтения — через пул.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository - конструктор OrderRepository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository { return &OrderRepository{pool: pool} }

// Create — вставляет заказ вместе с позициями внутри переданной транзакции.
// Позиции пишутся через COPY (CopyFromRows); быстрее, чем INSERT в цикле.
func (r *OrderRepository) Create(ctx context.Context, tx ports.Tx, order *domain.Order) error {
	if order == nil || order.ID == "" {
		return errors.New("order is empty or id is required")
	}
	if order.ClientID == "" {
		return errors.New("client_id is required")
	}
	pgtx, ok := tx.(*Tx)
	if !ok || pgtx == nil {
		return errors.New("create requires a pipeline transaction")
	}

	if _, err := pgtx.tx.Exec(ctx, `
		INSERT INTO orders (id, client_id, status, ordered_at)
		VALUES ($1, $2, $3, $4)
	`, order.ID, order.ClientID, string(order.Status), order.OrderedAt); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	rows := make([][]any, 0, len(order.Lines))
	for idx, line := range order.Lines {
		rows = append(rows, []any{
			order.ID, idx, line.ProductID, line.ProductName,
			line.Quantity, line.PriceAtOrder, line.CurrencyAtOrder,
		})
	}
	if _, err := pgtx.tx.CopyFrom(ctx,
		pgx.Identifier{"order_items"},
		[]string{"order_id", "position", "product_id", "product_name", "quantity", "price_at_order", "currency_at_order"},
		pgx.CopyFromRows(rows),
	); err != nil {
		return fmt.Errorf("copy order items: %w", err)
	}
	return nil
}

// GetByID — заказ по id; (nil, nil), если записи нет.
// С tx != nil строка блокируется до конца транзакции (FOR UPDATE) —
// так конкурентные смены статуса сериализуются на уровне БД.
func (r *OrderRepository) GetByID(ctx context.Context, tx ports.Tx, orderID string) (*domain.Order, error) {
	q := resolve(r.pool, tx)

	query := `
		SELECT id, client_id, status, ordered_at
		FROM orders
		WHERE id = $1
	`
	if _, inTx := tx.(*Tx); inTx {
		query += " FOR UPDATE"
	}

	var order domain.Order
	var status string
	err := q.QueryRow(ctx, query, orderID).Scan(&order.ID, &order.ClientID, &status, &order.OrderedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil // отсутствие — не ошибка
	}
	if err != nil {
		return nil, fmt.Errorf("select order: %w", err)
	}
	order.Status = domain.OrderStatus(status)

	lines, err := r.loadLines(ctx, q, []string{order.ID})
	if err != nil {
		return nil, err
	}
	order.Lines = lines[order.ID]
	return &order, nil
}

// UpdateStatus — смена статуса внутри транзакции.
func (r *OrderRepository) UpdateStatus(ctx context.Context, tx ports.Tx, orderID string, status domain.OrderStatus) error {
	q := resolve(r.pool, tx)
	tag, err := q.Exec(ctx, `
		UPDATE orders SET status = $2 WHERE id = $1
	`, orderID, string(status))
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// Delete — административное удаление; позиции уходят каскадом (FK ON DELETE CASCADE).
// Возвращает true, если заказ существовал.
func (r *OrderRepository) Delete(ctx context.Context, orderID string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, orderID)
	if err != nil {
		return false, fmt.Errorf("delete order: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListByClient — заказы клиента, свежие первыми.
func (r *OrderRepository) ListByClient(ctx context.Context, clientID string, limit, offset int) ([]*domain.Order, error) {
	return r.list(ctx, `
		SELECT id, client_id, status, ordered_at
		FROM orders
		WHERE client_id = $3
		ORDER BY ordered_at DESC, id
		LIMIT $1 OFFSET $2
	`, limit, offset, clientID)
}

// ListAll — страница всех заказов, свежие первыми.
func (r *OrderRepository) ListAll(ctx context.Context, limit, offset int) ([]*domain.Order, error) {
	return r.list(ctx, `
		SELECT id, client_id, status, ordered_at
		FROM orders
		ORDER BY ordered_at DESC, id
		LIMIT $1 OFFSET $2
	`, limit, offset)
}

// list — общий код страничных выборок: базовый SELECT заказов,
// затем позиции одним запросом по всем id страницы (без N+1).
func (r *OrderRepository) list(ctx context.Context, query string, limit, offset int, extra ...any) ([]*domain.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	args := append([]any{limit, offset}, extra...)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	byID := make(map[string]*domain.Order)
	ids := make([]string, 0)
	for rows.Next() {
		var order domain.Order
		var status string
		if err := rows.Scan(&order.ID, &order.ClientID, &status, &order.OrderedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		order.Status = domain.OrderStatus(status)
		orders = append(orders, &order)
		byID[order.ID] = &order
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("orders rows: %w", err)
	}
	if len(orders) == 0 {
		return orders, nil // пустая страница
	}

	lines, err := r.loadLines(ctx, r.pool, ids)
	if err != nil {
		return nil, err
	}
	// Склейка: порядок базового SELECT сохраняется.
	for id, ls := range lines {
		if order := byID[id]; order != nil {
			order.Lines = ls
		}
	}
	return orders, nil
}

// GetDetails — заказ с разрешённым клиентом одним JOIN; (nil, nil), если записи нет.
func (r *OrderRepository) GetDetails(ctx context.Context, orderID string) (*domain.OrderDetails, error) {
	var details domain.OrderDetails
	var status string
	err := r.pool.QueryRow(ctx, `
		SELECT
			o.id, o.client_id, o.status, o.ordered_at,
			c.id, c.name, c.email, c.phone, c.address, c.order_count, c.is_regular
		FROM orders o
		JOIN clients c ON c.id = o.client_id
		WHERE o.id = $1
	`, orderID).Scan(
		&details.Order.ID, &details.Order.ClientID, &status, &details.Order.OrderedAt,
		&details.Client.ID, &details.Client.Name, &details.Client.Email, &details.Client.Phone,
		&details.Client.Address, &details.Client.OrderCount, &details.Client.IsRegular,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select order details: %w", err)
	}
	details.Order.Status = domain.OrderStatus(status)

	lines, err := r.loadLines(ctx, r.pool, []string{details.Order.ID})
	if err != nil {
		return nil, err
	}
	details.Order.Lines = lines[details.Order.ID]
	return &details, nil
}

// LastN — последние N заказов с деталями (для прогрева кэша).
// Используем подход N+1: берём только id, затем дочитываем полные детали.
func (r *OrderRepository) LastN(ctx context.Context, n int) ([]*domain.OrderDetails, error) {
	if n <= 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id
		FROM orders
		ORDER BY ordered_at DESC
		LIMIT $1
	`, n)
	if err != nil {
		return nil, fmt.Errorf("select last ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("last rows: %w", err)
	}

	var result []*domain.OrderDetails
	for _, id := range ids {
		details, err := r.GetDetails(ctx, id)
		if err != nil {
			return nil, err
		}
		if details != nil {
			result = append(result, details)
		}
	}
	return result, nil
}

// loadLines — позиции для набора заказов одним запросом (сбор в map по order_id).
// Порядок внутри заказа — порядок вставки (position).
func (r *OrderRepository) loadLines(ctx context.Context, q queryer, orderIDs []string) (map[string][]domain.OrderLine, error) {
	rows, err := q.Query(ctx, `
		SELECT order_id, product_id, product_name, quantity, price_at_order, currency_at_order
		FROM order_items
		WHERE order_id = ANY($1::text[])
		ORDER BY order_id, position
	`, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("select order items: %w", err)
	}
	defer rows.Close()

	linesByID := make(map[string][]domain.OrderLine, len(orderIDs))
	for rows.Next() {
		var orderID string
		var line domain.OrderLine
		if err := rows.Scan(
			&orderID, &line.ProductID, &line.ProductName,
			&line.Quantity, &line.PriceAtOrder, &line.CurrencyAtOrder,
		); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		linesByID[orderID] = append(linesByID[orderID], line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("order items rows: %w", err)
	}
	return linesByID, nil
}
