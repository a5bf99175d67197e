package domain

import "time"

// CreateOrderRequest — входной запрос конвейера на создание заказа.
type CreateOrderRequest struct {
	ClientID string          `json:"client_id"`
	Items    []RequestedItem `json:"products"`
	// Status — начальный статус; пустое значение → pending.
	Status string `json:"status,omitempty"`
	// OrderedAt — момент оформления; nil → текущее время.
	OrderedAt *time.Time `json:"order_date,omitempty"`
}
