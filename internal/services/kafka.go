package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kassatech/atolWorker/internal/interfaces"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// kafkaBus — шина команд поверх Kafka. Каналы устройств отображаются в
// топики один к одному, порядок сообщений внутри канала сохраняется
// (одна партиция на канал).
type kafkaBus struct {
	broker string
	writer *kafka.Writer
	log    *zap.SugaredLogger
}

func NewKafkaBus(broker string, log *zap.SugaredLogger) interfaces.Bus {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
	}
	return &kafkaBus{broker: broker, writer: writer, log: log}
}

func (b *kafkaBus) Publish(ctx context.Context, channel string, payload []byte) error {
	err := b.writer.WriteMessages(ctx, kafka.Message{
		Topic: channel,
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("публикация в канал %s: %w", channel, err)
	}
	return nil
}

// Consume блокирующе читает канал и передаёт каждое сообщение обработчику.
// Возвращается только по отмене контекста.
func (b *kafkaBus) Consume(ctx context.Context, channel string, handle func(payload []byte)) error {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  []string{b.broker},
		Topic:    channel,
		GroupID:  "atol-worker-" + channel,
		MinBytes: 1,
		MaxBytes: 1e6,
	})
	defer reader.Close()

	b.log.Infow("📡 подписка на канал", "channel", channel)
	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return fmt.Errorf("чтение канала %s: %w", channel, err)
		}
		handle(msg.Value)
	}
}

// Close останавливает писателя шины.
func (b *kafkaBus) Close() error {
	return b.writer.Close()
}
