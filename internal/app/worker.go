package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/PhotoBase/internal/core/ports"
	"github.com/GoArmGo/PhotoBase/internal/usecase"
)

// runWorker запускает потребителя RabbitMQ и обрабатывает задачи геокодирования
func runWorker(
	ctx context.Context,
	geocodeUseCase usecase.GeocodeUseCase,
	consumer ports.GeocodeConsumer,
	logger *slog.Logger,
) error {
	workerCtx, cancelWorker := context.WithCancel(ctx)
	defer cancelWorker()

	if err := consumer.StartConsumingGeocodeRequests(workerCtx, geocodeUseCase.HandleGeocodeRequest); err != nil {
		return fmt.Errorf("start RabbitMQ consumer: %w", err)
	}
	logger.Info("worker started, waiting for geocode requests")

	<-ctx.Done()
	logger.Info("shutdown signal received, stopping worker")
	return nil
}
