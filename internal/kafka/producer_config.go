package kafka

import (
	"time"

	"github.com/segmentio/kafka-go"
)

type ProducerConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

func (c *ProducerConfig) newWriter() *kafka.Writer {
	wt := c.WriteTimeout
	if wt <= 0 {
		wt = 5 * time.Second
	}
	return &kafka.Writer{
		Addr:  kafka.TCP(c.Brokers...),
		Topic: c.Topic,
		// Hash по ключу (получателю): уведомления одного адресата в одной партиции.
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		WriteTimeout: wt,
	}
}
