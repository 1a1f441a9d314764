package interfaces

import "context"

// Bus — pub/sub транспорт команд и ответов.
type Bus interface {
	// Publish отправляет payload в указанный канал.
	Publish(ctx context.Context, channel string, payload []byte) error

	// Consume блокирующе читает канал и передаёт каждое сообщение в handle.
	// Возвращается, когда ctx отменён.
	Consume(ctx context.Context, channel string, handle func(payload []byte)) error

	// Close освобождает соединения транспорта.
	Close() error
}
