package ports

import (
	"context"

	"github.com/GoArmGo/SalesTrack/internal/messaging/payloads"
)

// SaleEventPublisher определяет методы для публикации событий о продажах.
// Используется обработчиком создания продажи; публикация происходит
// синхронно в рамках запроса.
type SaleEventPublisher interface {
	PublishSaleRecorded(ctx context.Context, payload payloads.SaleRecordedPayload) error
}

// SaleEventConsumer определяет методы для потребления событий о продажах,
// используется воркером для получения задач из очереди
type SaleEventConsumer interface {
	// StartConsumingSaleEvents начинает прослушивание очереди;
	// принимает функцию-обработчик для каждого полученного сообщения
	StartConsumingSaleEvents(ctx context.Context, handler func(context.Context, payloads.SaleRecordedPayload) error) error
}
