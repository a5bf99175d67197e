package ports

import "context"

// Notifier — доставка уведомления с вложением (внешний коллаборатор).
// Вызывается только после коммита транзакции; сбой не откатывает заказ.
type Notifier interface {
	Send(ctx context.Context, recipient, subject, body, attachmentName string, attachment []byte) error
}
