package di

import (
	"fmt"

	"github.com/GoArmGo/SalesTrack/internal/adapter/storage/local"
	"github.com/GoArmGo/SalesTrack/internal/adapter/storage/minio"
	"github.com/GoArmGo/SalesTrack/internal/app"
	"github.com/GoArmGo/SalesTrack/internal/auth"
	"github.com/GoArmGo/SalesTrack/internal/config"
	"github.com/GoArmGo/SalesTrack/internal/core/ports"
	"github.com/GoArmGo/SalesTrack/internal/database/client"
	"github.com/GoArmGo/SalesTrack/internal/database/storage"
	"github.com/GoArmGo/SalesTrack/internal/handler"
	"github.com/GoArmGo/SalesTrack/internal/logger"
	"github.com/GoArmGo/SalesTrack/internal/rabbitmq"
	"github.com/GoArmGo/SalesTrack/internal/usecase"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp() (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogger := logger.NewSlog(logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. Инициализация PostgreSQL клиента (пул + миграции + gorm)
	dbClient, err := client.NewClient(cfg.DatabaseURL, slogger)
	if err != nil {
		return nil, err
	}

	// 3. Инициализация хранилищ
	userStorage := storage.NewUserStorage(dbClient.DB, slogger)
	productStorage := storage.NewProductStorage(dbClient.Gorm, slogger)
	saleStorage := storage.NewSaleStorage(dbClient.Gorm, slogger)

	// 4. Файловое хранилище изображений
	var fileStorage ports.FileStorage
	switch cfg.FileStorageBackend {
	case "s3":
		fileStorage, err = minio.NewClient(cfg, slogger)
		if err != nil {
			return nil, err
		}
	case "local":
		fileStorage, err = local.NewClient(cfg.UploadDir, slogger)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("неизвестный FILE_STORAGE: %s", cfg.FileStorageBackend)
	}

	// 5. RabbitMQ опционален: без URL события о продажах не публикуются
	var (
		salePublisher ports.SaleEventPublisher
		saleConsumer  ports.SaleEventConsumer
		closers       []func() error
	)
	if cfg.RabbitMQ.RabbitMQURL != "" {
		rabbitClient, err := rabbitmq.NewClient(cfg, slogger)
		if err != nil {
			return nil, err
		}
		salePublisher = rabbitClient
		saleConsumer = rabbitClient
		closers = append(closers, rabbitClient.Close)
	}

	// 6. Токены и бизнес-логика
	tokenIssuer := auth.NewTokenIssuer([]byte(cfg.JWTSecret), cfg.TokenTTL())

	authUseCase := usecase.NewAuthUseCase(userStorage, tokenIssuer, slogger)
	inventoryUseCase := usecase.NewInventoryUseCase(productStorage, saleStorage, salePublisher, nil, slogger)
	dashboardUseCase := usecase.NewDashboardUseCase(saleStorage, slogger)

	// 7. HTTP-обработчик
	httpHandler := handler.NewHandler(authUseCase, inventoryUseCase, dashboardUseCase, fileStorage, cfg.BaseURL, slogger)

	// 8. Сборка итогового приложения
	application := app.NewApp(
		cfg,
		slogger,
		dbClient,
		httpHandler,
		dashboardUseCase,
		saleConsumer,
		closers...,
	)

	slogger.Info("all dependencies initialized")
	return application, nil
}
