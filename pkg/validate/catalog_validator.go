package validate

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/kradzieta/warehouse-orders/internal/domain"
	"github.com/kradzieta/warehouse-orders/internal/ports"
)

// Проверка, что CatalogValidator удовлетворяет интерфейсу CatalogValidator.
var _ ports.CatalogValidator = (*CatalogValidator)(nil)

// ErrInvalidRecord — базовая (sentinel error) ошибка валидации записи каталога.
var ErrInvalidRecord = errors.New("catalog record validation failed")

// CatalogValidator — проверка записей каталога (товары, клиенты) перед импортом.
// Возвращает ErrInvalidRecord (с обёрнутой причиной) при любой проблеме.
type CatalogValidator struct{}

// NewCatalogValidator — конструктор CatalogValidator.
func NewCatalogValidator() *CatalogValidator { return &CatalogValidator{} }

// ValidateProduct — проверяет корректность полей товара.
func (v *CatalogValidator) ValidateProduct(_ context.Context, product *domain.Product) error {
	if product == nil {
		return fmt.Errorf("%w: товар не может быть nil", ErrInvalidRecord)
	}
	if product.ID == "" {
		return fmt.Errorf("%w: id обязателен", ErrInvalidRecord)
	}
	if product.Name == "" {
		return fmt.Errorf("%w: name обязателен", ErrInvalidRecord)
	}
	if product.Price < 0 {
		return fmt.Errorf("%w: price должен быть неотрицательным", ErrInvalidRecord)
	}
	if product.PromotionalPrice != nil && *product.PromotionalPrice < 0 {
		return fmt.Errorf("%w: promotional_price должен быть неотрицательным", ErrInvalidRecord)
	}
	if product.IsOnSale && product.PromotionalPrice == nil {
		return fmt.Errorf("%w: is_on_sale без promotional_price", ErrInvalidRecord)
	}
	if product.StockQuantity < 0 {
		return fmt.Errorf("%w: stock_quantity должен быть неотрицательным", ErrInvalidRecord)
	}
	return nil
}

// ValidateClient — проверяет корректность полей клиента.
func (v *CatalogValidator) ValidateClient(_ context.Context, client *domain.Client) error {
	if client == nil {
		return fmt.Errorf("%w: клиент не может быть nil", ErrInvalidRecord)
	}
	if client.ID == "" {
		return fmt.Errorf("%w: id обязателен", ErrInvalidRecord)
	}
	if client.Name == "" {
		return fmt.Errorf("%w: name обязателен", ErrInvalidRecord)
	}
	if client.Email == "" {
		return fmt.Errorf("%w: email обязателен", ErrInvalidRecord)
	}
	if _, err := mail.ParseAddress(client.Email); err != nil {
		return fmt.Errorf("%w: email некорректен", ErrInvalidRecord)
	}
	if client.OrderCount < 0 {
		return fmt.Errorf("%w: order_count должен быть неотрицательным", ErrInvalidRecord)
	}
	return nil
}
