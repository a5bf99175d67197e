package ports

import (
	"context"

	"github.com/kradzieta/warehouse-orders/internal/domain"
)

// OrderCache — кэш деталей заказов.
// Требования к реализации: потокобезопасность; доступ по ключу не хуже O(1); возврат копий сущности.
type OrderCache interface {
	// Get — вернуть детали заказа по id; (details, true) при попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, orderID string) (*domain.OrderDetails, bool)

	// Set — сохранить/обновить детали заказа в кэше.
	Set(ctx context.Context, details *domain.OrderDetails) error

	// Invalidate — убрать заказ из кэша (после смены статуса или удаления).
	Invalidate(ctx context.Context, orderID string)

	// WarmUp — массовая загрузка кэша (например, при старте).
	// Реализация должна поддерживать отмену контекста.
	WarmUp(ctx context.Context, orders []*domain.OrderDetails) error
}
