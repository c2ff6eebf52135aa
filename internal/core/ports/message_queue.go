package ports

import (
	"context"

	"github.com/GoArmGo/PhotoBase/internal/messaging/payloads"
)

// GeocodePublisher публикует задачи на повторное геокодирование адреса.
// Используется резолвером локаций, когда точку определить не удалось
type GeocodePublisher interface {
	PublishGeocodeRequest(ctx context.Context, payload payloads.GeocodePayload) error
}

// GeocodeConsumer определяет методы для потребления задач геокодирования
// будет использоваться воркером для получения задач из очереди
type GeocodeConsumer interface {
	StartConsumingGeocodeRequests(ctx context.Context, handler func(context.Context, payloads.GeocodePayload) error) error
}
