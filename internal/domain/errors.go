package domain

import "errors"

// Типизированные ошибки конвейера заказов.
// Верхние слои различают их через errors.Is (HTTP-коды, метрики, ретраи).
var (
	// ErrInvalidRequest — некорректный входной запрос (нет клиента, пустой список позиций и т.п.).
	ErrInvalidRequest = errors.New("invalid order request")
	// ErrClientNotFound — клиент не найден.
	ErrClientNotFound = errors.New("client not found")
	// ErrProductNotFound — товар не найден.
	ErrProductNotFound = errors.New("product not found")
	// ErrProductUnavailable — товар снят с продажи (флаг доступности).
	ErrProductUnavailable = errors.New("product is not available")
	// ErrInsufficientStock — на складе меньше, чем запрошено.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrInvalidStatus — неизвестный статус заказа.
	ErrInvalidStatus = errors.New("invalid order status")
	// ErrInvalidStatusTransition — переход из терминального статуса запрещён.
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
	// ErrOrderNotFound — заказ не найден.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderNotDeletable — удалить можно только завершённый или отменённый заказ.
	ErrOrderNotDeletable = errors.New("order is not deletable")
	// ErrTxAborted — инфраструктурный сбой транзакции (начало/коммит).
	ErrTxAborted = errors.New("transaction aborted")
)
