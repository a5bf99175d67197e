package ports

import (
	"context"

	"github.com/kradzieta/warehouse-orders/internal/domain"
)

// ClientStore — клиенты + трекер статистики заказов.
type ClientStore interface {
	// FindByID — клиент по id; (nil, nil), если записи нет.
	FindByID(ctx context.Context, clientID string) (*domain.Client, error)

	// FindByEmail — клиент по email; (nil, nil), если записи нет.
	FindByEmail(ctx context.Context, email string) (*domain.Client, error)

	// IncrementOrderCount — атомарно увеличивает счётчик заказов на 1 внутри tx.
	// Когда счётчик превышает порог, флаг «постоянный клиент» ставится там же,
	// одним апдейтом — порог не размазан по вызывающим.
	IncrementOrderCount(ctx context.Context, tx Tx, clientID string) error

	// DecrementOrderCount — уменьшает счётчик на 1 внутри tx (отмена заказа).
	// Счётчик не уходит ниже нуля; флаг «постоянный клиент» никогда не снимается.
	DecrementOrderCount(ctx context.Context, tx Tx, clientID string) error

	// UpsertClient — вставка/обновление записи клиента (импорт, тестовые данные).
	UpsertClient(ctx context.Context, client *domain.Client) error
}
