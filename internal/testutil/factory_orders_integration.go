//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/kradzieta/warehouse-orders/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeClient — мини-генератор валидного клиента.
func MakeClient(opts ...func(*domain.Client)) domain.Client {
	suffix := UniqSuffix()
	c := domain.Client{
		ID:      "cli-" + suffix,
		Name:    "John Smith",
		Email:   fmt.Sprintf("john-%s@example.com", suffix),
		Phone:   "+48-22-555-01",
		Address: "Main st 1, Metropolis",
	}
	for _, fn := range opts {
		fn(&c)
	}
	return c
}

func WithOrderCount(n int) func(*domain.Client) {
	return func(c *domain.Client) { c.OrderCount = n }
}

// MakeProduct — мини-генератор доступного товара с ненулевым остатком.
func MakeProduct(opts ...func(*domain.Product)) domain.Product {
	p := domain.Product{
		ID:            "prod-" + UniqSuffix(),
		Name:          "Widget",
		Price:         100,
		Currency:      "PLN",
		IsAvailable:   true,
		StockQuantity: 10,
	}
	for _, fn := range opts {
		fn(&p)
	}
	return p
}

func WithStock(n int) func(*domain.Product) {
	return func(p *domain.Product) { p.StockQuantity = n }
}

func WithPromo(promo float64) func(*domain.Product) {
	return func(p *domain.Product) {
		p.PromotionalPrice = &promo
		p.IsOnSale = true
	}
}

func Unavailable() func(*domain.Product) {
	return func(p *domain.Product) { p.IsAvailable = false }
}

// MakeOrder — мини-генератор заказа в статусе pending для существующего клиента.
func MakeOrder(clientID string, opts ...func(*domain.Order)) domain.Order {
	o := domain.Order{
		ID:        "ord-" + UniqSuffix(),
		ClientID:  clientID,
		Status:    domain.StatusPending,
		OrderedAt: time.Now().UTC().Truncate(time.Second),
		Lines: []domain.OrderLine{
			{
				ProductID:       "prod-" + UniqSuffix(),
				ProductName:     "Widget",
				Quantity:        1,
				PriceAtOrder:    100,
				CurrencyAtOrder: "PLN",
			},
		},
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func WithStatus(status domain.OrderStatus) func(*domain.Order) {
	return func(o *domain.Order) { o.Status = status }
}

func WithLines(lines ...domain.OrderLine) func(*domain.Order) {
	return func(o *domain.Order) { o.Lines = lines }
}
