package ports

import (
	"context"

	"github.com/kradzieta/warehouse-orders/internal/domain"
)

// OrderRepository — хранилище заказов. Мутации принимают Tx конвейера;
// методы чтения с tx == nil работают вне транзакции.
type OrderRepository interface {
	// Create — вставляет заказ вместе с позициями внутри переданной транзакции.
	Create(ctx context.Context, tx Tx, order *domain.Order) error

	// GetByID — заказ по id; (nil, nil), если записи нет.
	// С tx != nil строка блокируется до конца транзакции (FOR UPDATE).
	GetByID(ctx context.Context, tx Tx, orderID string) (*domain.Order, error)

	// UpdateStatus — смена статуса внутри транзакции.
	UpdateStatus(ctx context.Context, tx Tx, orderID string, status domain.OrderStatus) error

	// Delete — административное удаление; true, если заказ существовал.
	Delete(ctx context.Context, orderID string) (bool, error)

	ListByClient(ctx context.Context, clientID string, limit, offset int) ([]*domain.Order, error)
	ListAll(ctx context.Context, limit, offset int) ([]*domain.Order, error)

	// GetDetails — заказ с разрешённым клиентом; (nil, nil), если записи нет.
	GetDetails(ctx context.Context, orderID string) (*domain.OrderDetails, error)

	// LastN — последние N заказов с деталями (прогрев кэша).
	LastN(ctx context.Context, n int) ([]*domain.OrderDetails, error)
}
