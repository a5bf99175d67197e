package ports

import "context"

// Tx — открытая транзакция хранилища. Конкретный тип знает только слой repo;
// конвейер лишь передаёт дескриптор между контрактами склада, статистики и заказов.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TxManager — фабрика транзакций. Одна транзакция охватывает все мутации
// одной операции конвейера (строгий all-or-nothing).
type TxManager interface {
	// WithinTx — begin → fn → commit. Любая ошибка fn или коммита → rollback.
	// Получение транзакции ограничено контекстом (bounded wait) — без вечных блокировок.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}
