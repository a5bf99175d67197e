package domain

import (
	"fmt"
	"time"
)

// OrderStatus — статус жизненного цикла заказа.
type OrderStatus string

const (
	// StatusPending — заказ создан и ожидает выполнения.
	StatusPending OrderStatus = "pending"
	// StatusCompleted — заказ выполнен (терминальный).
	StatusCompleted OrderStatus = "completed"
	// StatusCanceled — заказ отменён, склад и статистика восстановлены (терминальный).
	StatusCanceled OrderStatus = "canceled"
)

// ParseStatus — разбирает строку статуса; неизвестное значение → ErrInvalidStatus.
func ParseStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusPending, StatusCompleted, StatusCanceled:
		return OrderStatus(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// Terminal — true для статусов, из которых переходы запрещены.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// CanTransitionTo — допустим ли переход s → next.
// Разрешены только pending → completed и pending → canceled.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return s == StatusPending && next.Terminal()
}

// OrderLine — позиция заказа. Цена и валюта — снимок на момент создания:
// последующие изменения каталога на существующие заказы не влияют.
type OrderLine struct {
	ProductID       string  `json:"product_id"`
	ProductName     string  `json:"product_name"`
	Quantity        int     `json:"quantity"`
	PriceAtOrder    float64 `json:"price_at_order"`
	CurrencyAtOrder string  `json:"currency_at_order"`
}

// Order — заказ клиента.
type Order struct {
	ID        string      `json:"id"`
	ClientID  string      `json:"client_id"`
	Status    OrderStatus `json:"status"`
	OrderedAt time.Time   `json:"ordered_at"`
	Lines     []OrderLine `json:"lines"`
}

// Total — сумма заказа по снимкам цен.
func (o *Order) Total() float64 {
	var total float64
	for _, line := range o.Lines {
		total += float64(line.Quantity) * line.PriceAtOrder
	}
	return total
}

// OrderDetails — заказ с разрешёнными данными клиента (для документов и ответов API).
type OrderDetails struct {
	Order  Order  `json:"order"`
	Client Client `json:"client"`
}
