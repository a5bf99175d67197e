package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/kradzieta/warehouse-orders/internal/ports"
)

// Проверка, что Producer удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.Notifier = (*Producer)(nil)

// writer — минимальный контракт над kafka.Writer,
// чтобы легко подменять его моками в тестах.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Notification — полезная нагрузка уведомления в топике.
// Вложение base64-кодируется стандартным маршалингом []byte.
type Notification struct {
	Recipient      string    `json:"recipient"`
	Subject        string    `json:"subject"`
	Body           string    `json:"body"`
	AttachmentName string    `json:"attachment_name,omitempty"`
	Attachment     []byte    `json:"attachment,omitempty"`
	SentAt         time.Time `json:"sent_at"`
}

// Producer — обёртка над kafka.Writer; публикует уведомления о заказах.
// Доставку адресату выполняет отдельный почтовый воркер, читающий топик.
type Producer struct {
	writer    writer
	log       ports.Logger
	closeOnce sync.Once
}

// NewProducer — конструктор. Writer настроен на acks=all и hash-балансировку по ключу.
func NewProducer(cfg *ProducerConfig, log ports.Logger) *Producer {
	return &Producer{writer: cfg.newWriter(), log: log}
}

// Send — публикует уведомление в топик. Ключ сообщения — получатель.
func (p *Producer) Send(ctx context.Context, recipient, subject, body, attachmentName string, attachment []byte) error {
	if recipient == "" {
		return errors.New("recipient is required")
	}

	payload, err := json.Marshal(Notification{
		Recipient:      recipient,
		Subject:        subject,
		Body:           body,
		AttachmentName: attachmentName,
		Attachment:     attachment,
		SentAt:         time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(recipient),
		Value: payload,
	}); err != nil {
		p.log.Warnf(ctx, "notification write failed recipient=%s: %v", recipient, err)
		return fmt.Errorf("write notification: %w", err)
	}
	p.log.Infof(ctx, "notification published recipient=%s subject=%q", recipient, subject)
	return nil
}

// Close - закрывает writer. Вызывается при остановке приложения.
func (p *Producer) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}
