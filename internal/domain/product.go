package domain

import "math"

// Product — товар каталога. Конвейер заказов не владеет записью целиком,
// он меняет только складской остаток через контракт ProductStore.
type Product struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Price            float64  `json:"price"`
	PromotionalPrice *float64 `json:"promotional_price,omitempty"`
	IsOnSale         bool     `json:"is_on_sale"`
	Currency         string   `json:"currency"`
	IsAvailable      bool     `json:"is_available"`
	StockQuantity    int      `json:"stock_quantity"`
}

// PriceAtOrder — цена для снимка в позиции заказа: промо-цена, если товар
// в распродаже и она задана, иначе обычная. Округляется до двух знаков.
func (p *Product) PriceAtOrder() float64 {
	price := p.Price
	if p.IsOnSale && p.PromotionalPrice != nil {
		price = *p.PromotionalPrice
	}
	return math.Round(price*100) / 100
}

// CurrencyOrFallback — валюта товара либо валюта по умолчанию, если не задана.
func (p *Product) CurrencyOrFallback(fallback string) string {
	if p.Currency == "" {
		return fallback
	}
	return p.Currency
}
