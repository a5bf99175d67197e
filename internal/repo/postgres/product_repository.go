package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kradzieta/warehouse-orders/internal/domain"
	"github.com/kradzieta/warehouse-orders/internal/ports"
	"github.com/kradzieta/warehouse-orders/pkg/metrics"
)

// Проверка, что ProductRepository удовлетворяет интерфейсу ProductStore.
var _ ports.ProductStore = (*ProductRepository)(nil)

// ProductRepository — каталог товаров и складской ledger на Postgres.
// Остаток меняется только условными атомарными апдейтами: инвариант
// «склад не уходит в минус» держит сама БД, а не код конвейера.
type ProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository - конструктор ProductRepository.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// FindByID — товар по id; (nil, nil), если записи нет.
func (r *ProductRepository) FindByID(ctx context.Context, productID string) (*domain.Product, error) {
	var product domain.Product
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, price, promotional_price, is_on_sale, currency, is_available, stock_quantity
		FROM products
		WHERE id = $1
	`, productID).Scan(
		&product.ID, &product.Name, &product.Price, &product.PromotionalPrice,
		&product.IsOnSale, &product.Currency, &product.IsAvailable, &product.StockQuantity,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select product: %w", err)
	}
	return &product, nil
}

// DecrementStock — атомарно списывает qty со склада внутри tx.
// Одним условным UPDATE: при конкурентных заказах на последний остаток
// побеждает ровно один, остальные получают ErrInsufficientStock.
func (r *ProductRepository) DecrementStock(ctx context.Context, tx ports.Tx, productID string, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidRequest)
	}
	q := resolve(r.pool, tx)

	tag, err := q.Exec(ctx, `
		UPDATE products
		SET stock_quantity = stock_quantity - $2
		WHERE id = $1 AND is_available AND stock_quantity >= $2
	`, productID, qty)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if tag.RowsAffected() == 1 {
		metrics.StockOps.WithLabelValues("decrement").Inc()
		return nil
	}

	// Апдейт не прошёл — различаем причину отдельным чтением внутри той же tx.
	var available bool
	var stock int
	err = q.QueryRow(ctx, `
		SELECT is_available, stock_quantity FROM products WHERE id = $1
	`, productID).Scan(&available, &stock)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", domain.ErrProductNotFound, productID)
	}
	if err != nil {
		return fmt.Errorf("inspect product: %w", err)
	}
	if !available {
		return fmt.Errorf("%w: %s", domain.ErrProductUnavailable, productID)
	}
	return fmt.Errorf("%w: product %s has %d, requested %d", domain.ErrInsufficientStock, productID, stock, qty)
}

// IncrementStock — возвращает qty на склад внутри tx (компенсация отмены).
// Товар, удалённый из каталога после заказа, — не повод ронять отмену,
// поэтому отсутствие строки здесь не ошибка.
func (r *ProductRepository) IncrementStock(ctx context.Context, tx ports.Tx, productID string, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidRequest)
	}
	q := resolve(r.pool, tx)

	if _, err := q.Exec(ctx, `
		UPDATE products
		SET stock_quantity = stock_quantity + $2
		WHERE id = $1
	`, productID, qty); err != nil {
		return fmt.Errorf("increment stock: %w", err)
	}
	metrics.StockOps.WithLabelValues("increment").Inc()
	return nil
}

// UpsertProduct — вставка/обновление записи каталога (импорт, тестовые данные).
func (r *ProductRepository) UpsertProduct(ctx context.Context, product *domain.Product) error {
	if product == nil || product.ID == "" {
		return errors.New("product is empty or id is required")
	}
	if _, err := r.pool.Exec(ctx, `
		INSERT INTO products (
			id, name, price, promotional_price, is_on_sale, currency, is_available, stock_quantity
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			price = EXCLUDED.price,
			promotional_price = EXCLUDED.promotional_price,
			is_on_sale = EXCLUDED.is_on_sale,
			currency = EXCLUDED.currency,
			is_available = EXCLUDED.is_available,
			stock_quantity = EXCLUDED.stock_quantity
	`,
		product.ID, product.Name, product.Price, product.PromotionalPrice,
		product.IsOnSale, product.Currency, product.IsAvailable, product.StockQuantity,
	); err != nil {
		return fmt.Errorf("upsert product: %w", err)
	}
	return nil
}
