package ports

import (
	"context"

	"github.com/kradzieta/warehouse-orders/internal/domain"
)

// CatalogValidator — проверка записей каталога перед импортом.
type CatalogValidator interface {
	ValidateProduct(ctx context.Context, product *domain.Product) error
	ValidateClient(ctx context.Context, client *domain.Client) error
}
