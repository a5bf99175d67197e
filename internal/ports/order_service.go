package ports

import (
	"context"

	"github.com/kradzieta/warehouse-orders/internal/domain"
)

// OrderService — прикладной контракт конвейера заказов для транспортного слоя.
type OrderService interface {
	CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error)
	ChangeOrderStatus(ctx context.Context, orderID, newStatus string) error
	DeleteOrder(ctx context.Context, orderID string) error

	GetAllOrders(ctx context.Context, limit, offset int) ([]*domain.Order, error)
	GetOrdersByClient(ctx context.Context, clientID string, limit, offset int) ([]*domain.Order, error)
	GetOrdersByClientEmail(ctx context.Context, email string, limit, offset int) ([]*domain.Order, error)
	GetOrderDetails(ctx context.Context, orderID string) (*domain.OrderDetails, error)

	// RenderOrderDocument — детали заказа, отрисованные в сводный документ.
	RenderOrderDocument(ctx context.Context, orderID string) (string, []byte, error)
}
