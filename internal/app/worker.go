package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/SalesTrack/internal/core/ports"
	"github.com/GoArmGo/SalesTrack/internal/domain"
	"github.com/GoArmGo/SalesTrack/internal/messaging/payloads"
	"github.com/GoArmGo/SalesTrack/internal/usecase"
)

// runWorker запускает потребителя RabbitMQ: на каждое событие о продаже
// пересчитывает отчет дашборда владельца
func runWorker(
	ctx context.Context,
	dashboardUseCase usecase.DashboardUseCase,
	saleEventConsumer ports.SaleEventConsumer,
	logger *slog.Logger,
) error {
	if saleEventConsumer == nil {
		return errors.New("режим worker требует настроенного RABBITMQ_URL")
	}

	logger.Info("worker started, waiting for sale events")

	workerCtx, cancelWorker := context.WithCancel(ctx)
	defer cancelWorker()

	messageHandler := func(ctx context.Context, payload payloads.SaleRecordedPayload) error {
		logger.Info("processing sale event",
			"sale_id", payload.SaleID,
			"user_id", payload.UserID,
		)

		owner := &domain.User{ID: payload.UserID}
		report, err := dashboardUseCase.Compute(ctx, owner)
		if err != nil {
			logger.Error("failed to recompute dashboard", "user_id", payload.UserID, "error", err)
			return err
		}

		logger.Info("dashboard recomputed",
			"user_id", payload.UserID,
			"days", len(report.SalesData),
			"products", len(report.SalesProductData),
		)
		return nil
	}

	if err := saleEventConsumer.StartConsumingSaleEvents(workerCtx, messageHandler); err != nil {
		return fmt.Errorf("ошибка при запуске потребителя RabbitMQ: %w", err)
	}

	<-ctx.Done()

	logger.Info("worker stopping")
	return nil
}
