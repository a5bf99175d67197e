package ports

import (
	"context"

	"github.com/kradzieta/warehouse-orders/internal/domain"
)

// ProductStore — каталог товаров + складской ledger.
// Остаток меняется только условными атомарными апдейтами под транзакцией конвейера.
type ProductStore interface {
	// FindByID — товар по id; (nil, nil), если записи нет.
	FindByID(ctx context.Context, productID string) (*domain.Product, error)

	// DecrementStock — атомарно списывает qty со склада внутри tx.
	// Ошибки: ErrProductNotFound, ErrProductUnavailable, ErrInsufficientStock.
	// Инвариант: остаток никогда не уходит в минус, даже при конкурентных заказах.
	DecrementStock(ctx context.Context, tx Tx, productID string, qty int) error

	// IncrementStock — возвращает qty на склад внутри tx (компенсация отмены).
	// Конвейер вызывает его ровно один раз на каждую позицию отменяемого заказа.
	IncrementStock(ctx context.Context, tx Tx, productID string, qty int) error

	// UpsertProduct — вставка/обновление записи каталога (импорт, тестовые данные).
	UpsertProduct(ctx context.Context, product *domain.Product) error
}
