package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/SalesTrack/internal/config"
	"github.com/GoArmGo/SalesTrack/internal/core/ports"
	"github.com/GoArmGo/SalesTrack/internal/database/client"
	"github.com/GoArmGo/SalesTrack/internal/handler"
	"github.com/GoArmGo/SalesTrack/internal/usecase"
)

type App struct {
	Config            *config.Config
	logger            *slog.Logger
	dbClient          *client.Client
	httpHandler       *handler.Handler
	dashboardUseCase  usecase.DashboardUseCase
	saleEventConsumer ports.SaleEventConsumer
	closers           []func() error
}

func NewApp(
	cfg *config.Config,
	logger *slog.Logger,
	dbClient *client.Client,
	httpHandler *handler.Handler,
	dashboardUseCase usecase.DashboardUseCase,
	saleEventConsumer ports.SaleEventConsumer,
	closers ...func() error,
) *App {
	return &App{
		Config:            cfg,
		logger:            logger,
		dbClient:          dbClient,
		httpHandler:       httpHandler,
		dashboardUseCase:  dashboardUseCase,
		saleEventConsumer: saleEventConsumer,
		closers:           closers,
	}
}

// LoggerIns возвращает основной логгер приложения
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

func (a *App) Run(ctx context.Context, mode *string) error {
	// канал для graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info("starting application", "mode", *mode)

	var err error

	switch *mode {
	case "server":
		err = runServer(ctx, a.Config, a.httpHandler, a.logger)

	case "worker":
		err = runWorker(ctx, a.dashboardUseCase, a.saleEventConsumer, a.logger)

	default:
		err = fmt.Errorf("неизвестный режим: %s (используйте 'server' или 'worker')", *mode)
	}

	// аккуратно закрываем ресурсы
	if closeErr := a.Shutdown(); closeErr != nil {
		a.logger.Error("shutdown error", "error", closeErr)
	}

	if err != nil {
		return err
	}

	a.logger.Info("application stopped")
	return nil
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			return err
		}
	}

	if a.dbClient != nil {
		if err := a.dbClient.Close(); err != nil {
			return fmt.Errorf("ошибка закрытия БД: %w", err)
		}
	}

	return nil
}
