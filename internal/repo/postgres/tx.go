package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kradzieta/warehouse-orders/internal/domain"
	"github.com/kradzieta/warehouse-orders/internal/ports"
)

// Проверки, что реализации удовлетворяют интерфейсам.
var (
	_ ports.Tx        = (*Tx)(nil)
	_ ports.TxManager = (*TxManager)(nil)
)

// Tx — обёртка над pgx.Tx, реализующая ports.Tx.
// Репозитории достают из неё pgx.Tx через общий helper queryer.
type Tx struct {
	tx pgx.Tx
}

// Commit — фиксирует транзакцию.
func (t *Tx) Commit(ctx context.Context) error { return t.tx.Commit(ctx) }

// Rollback — откатывает транзакцию. ErrTxClosed не считаем ошибкой:
// откат после Commit — штатная ситуация в defer.
func (t *Tx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}

// TxManager — управляет жизненным циклом транзакции над pgxpool.
type TxManager struct {
	pool *pgxpool.Pool
}

// NewTxManager - конструктор TxManager.
func NewTxManager(pool *pgxpool.Pool) *TxManager { return &TxManager{pool: pool} }

// WithinTx — выполняет fn внутри одной транзакции.
// Ошибка fn приводит к откату и возвращается как есть (для errors.Is наверху);
// ошибки begin/commit заворачиваются в domain.ErrTxAborted.
func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context, tx ports.Tx) error) error {
	pgtx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", domain.ErrTxAborted, err)
	}
	tx := &Tx{tx: pgtx}
	defer func() {
		// При уже завершённой транзакции Rollback внутри Tx — no-op.
		_ = tx.Rollback(ctx)
	}()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit: %v", domain.ErrTxAborted, err)
	}
	return nil
}

// queryer — общее подмножество pgxpool.Pool и pgx.Tx, достаточное для репозиториев.
type queryer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// resolve — возвращает исполнителя запросов: pgx.Tx из ports.Tx, если она наша,
// иначе пул (запрос вне транзакции).
func resolve(pool *pgxpool.Pool, tx ports.Tx) queryer {
	if t, ok := tx.(*Tx); ok && t != nil {
		return t.tx
	}
	return pool
}
