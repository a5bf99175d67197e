package ports

import (
	"context"

	"github.com/kradzieta/warehouse-orders/internal/domain"
)

// DocumentRenderer — рендер сводного документа заказа (внешний коллаборатор).
type DocumentRenderer interface {
	Render(ctx context.Context, details *domain.OrderDetails) ([]byte, error)
}
