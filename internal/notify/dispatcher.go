package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kradzieta/warehouse-orders/internal/document"
	"github.com/kradzieta/warehouse-orders/internal/domain"
	"github.com/kradzieta/warehouse-orders/internal/ports"
	"github.com/kradzieta/warehouse-orders/pkg/metrics"
)

// Dispatcher — пост-коммитные уведомления о заказе: рендерит сводку
// и отправляет её клиенту через Notifier. Строго best-effort — сбой
// логируется и считается в метриках, но никогда не влияет на заказ.
type Dispatcher struct {
	renderer ports.DocumentRenderer
	notifier ports.Notifier
	log      ports.Logger

	timeout time.Duration
	wg      sync.WaitGroup
}

// NewDispatcher - конструктор Dispatcher.
func NewDispatcher(renderer ports.DocumentRenderer, notifier ports.Notifier, log ports.Logger, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Dispatcher{renderer: renderer, notifier: notifier, log: log, timeout: timeout}
}

// Dispatch — асинхронно отправляет уведомление о заказе.
// Вызывается только после коммита транзакции; контекст запроса отвязывается,
// чтобы ответ клиенту не держал и не отменял отправку.
func (d *Dispatcher) Dispatch(ctx context.Context, details *domain.OrderDetails) {
	if details == nil || details.Client.Email == "" {
		return
	}

	detached := context.WithoutCancel(ctx)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		sendCtx, cancel := context.WithTimeout(detached, d.timeout)
		defer cancel()

		if err := d.send(sendCtx, details); err != nil {
			metrics.NotificationsFailed.Inc()
			d.log.Warnf(sendCtx, "order notification failed order_id=%s recipient=%s: %v",
				details.Order.ID, details.Client.Email, err)
			return
		}
		metrics.NotificationsSent.Inc()
	}()
}

// send — рендер сводки и отправка одним вложением.
func (d *Dispatcher) send(ctx context.Context, details *domain.OrderDetails) error {
	doc, err := d.renderer.Render(ctx, details)
	if err != nil {
		return fmt.Errorf("render summary: %w", err)
	}

	subject := fmt.Sprintf("Order %s is %s", details.Order.ID, details.Order.Status)
	body := fmt.Sprintf("Hello %s,\n\nyour order %s is now %s. The summary is attached.\n",
		details.Client.Name, details.Order.ID, details.Order.Status)

	return d.notifier.Send(ctx, details.Client.Email, subject, body, document.FileName(details.Order.ID), doc)
}

// Wait — дожидается завершения всех отправок в полёте (остановка приложения, тесты).
func (d *Dispatcher) Wait() { d.wg.Wait() }
