package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kradzieta/warehouse-orders/internal/domain"
	"github.com/kradzieta/warehouse-orders/internal/ports"
)

// Проверка, что ClientRepository удовлетворяет интерфейсу ClientStore.
var _ ports.ClientStore = (*ClientRepository)(nil)

// ClientRepository — клиенты и трекер статистики заказов на Postgres.
type ClientRepository struct {
	pool *pgxpool.Pool

	// regularThreshold — порог «постоянного клиента»: флаг ставится,
	// когда счётчик заказов превышает это значение.
	regularThreshold int
}

// NewClientRepository - конструктор ClientRepository.
func NewClientRepository(pool *pgxpool.Pool, regularThreshold int) *ClientRepository {
	return &ClientRepository{pool: pool, regularThreshold: regularThreshold}
}

// FindByID — клиент по id; (nil, nil), если записи нет.
func (r *ClientRepository) FindByID(ctx context.Context, clientID string) (*domain.Client, error) {
	return r.find(ctx, `WHERE id = $1`, clientID)
}

// FindByEmail — клиент по email; (nil, nil), если записи нет.
func (r *ClientRepository) FindByEmail(ctx context.Context, email string) (*domain.Client, error) {
	return r.find(ctx, `WHERE email = $1`, email)
}

func (r *ClientRepository) find(ctx context.Context, where string, arg any) (*domain.Client, error) {
	var client domain.Client
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, email, phone, address, order_count, is_regular
		FROM clients
	`+where, arg).Scan(
		&client.ID, &client.Name, &client.Email, &client.Phone,
		&client.Address, &client.OrderCount, &client.IsRegular,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select client: %w", err)
	}
	return &client, nil
}

// IncrementOrderCount — атомарно увеличивает счётчик заказов на 1 внутри tx.
// Флаг «постоянный клиент» ставится тем же апдейтом, когда новый счётчик
// превышает порог — порог не размазан по вызывающим.
func (r *ClientRepository) IncrementOrderCount(ctx context.Context, tx ports.Tx, clientID string) error {
	q := resolve(r.pool, tx)
	tag, err := q.Exec(ctx, `
		UPDATE clients
		SET order_count = order_count + 1,
		    is_regular = is_regular OR (order_count + 1 > $2)
		WHERE id = $1
	`, clientID, r.regularThreshold)
	if err != nil {
		return fmt.Errorf("increment order count: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrClientNotFound, clientID)
	}
	return nil
}

// DecrementOrderCount — уменьшает счётчик на 1 внутри tx (отмена заказа).
// GREATEST не даёт счётчику уйти ниже нуля; флаг is_regular не трогаем —
// однажды постоянный клиент остаётся постоянным.
func (r *ClientRepository) DecrementOrderCount(ctx context.Context, tx ports.Tx, clientID string) error {
	q := resolve(r.pool, tx)
	tag, err := q.Exec(ctx, `
		UPDATE clients
		SET order_count = GREATEST(order_count - 1, 0)
		WHERE id = $1
	`, clientID)
	if err != nil {
		return fmt.Errorf("decrement order count: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrClientNotFound, clientID)
	}
	return nil
}

// UpsertClient — вставка/обновление записи клиента (импорт, тестовые данные).
func (r *ClientRepository) UpsertClient(ctx context.Context, client *domain.Client) error {
	if client == nil || client.ID == "" {
		return errors.New("client is empty or id is required")
	}
	if _, err := r.pool.Exec(ctx, `
		INSERT INTO clients (id, name, email, phone, address, order_count, is_regular)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			address = EXCLUDED.address,
			order_count = EXCLUDED.order_count,
			is_regular = EXCLUDED.is_regular
	`,
		client.ID, client.Name, client.Email, client.Phone,
		client.Address, client.OrderCount, client.IsRegular,
	); err != nil {
		return fmt.Errorf("upsert client: %w", err)
	}
	return nil
}
