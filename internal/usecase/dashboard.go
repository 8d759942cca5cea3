package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/SalesTrack/internal/core/ports"
	"github.com/GoArmGo/SalesTrack/internal/domain"
)

// DashboardUseCase вычисляет агрегированный отчет для дашборда владельца
type DashboardUseCase interface {
	// Compute возвращает обе серии, ограниченные владельцем.
	// Владелец без продаж получает две пустые серии, не ошибку.
	// Любой сбой запроса — domain.ErrAggregationFailed, частичный
	// отчет не возвращается никогда.
	Compute(ctx context.Context, owner *domain.User) (*domain.DashboardReport, error)
}

type dashboardUseCase struct {
	sales  ports.SaleStorage
	logger *slog.Logger
}

func NewDashboardUseCase(sales ports.SaleStorage, logger *slog.Logger) DashboardUseCase {
	return &dashboardUseCase{sales: sales, logger: logger}
}

func (uc *dashboardUseCase) Compute(ctx context.Context, owner *domain.User) (*domain.DashboardReport, error) {
	salesData, err := uc.sales.SalesByDay(ctx, owner.ID)
	if err != nil {
		uc.logger.Error("dashboard aggregation failed", "user_id", owner.ID, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrAggregationFailed, err)
	}

	salesProductData, err := uc.sales.SalesByProduct(ctx, owner.ID)
	if err != nil {
		uc.logger.Error("dashboard aggregation failed", "user_id", owner.ID, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrAggregationFailed, err)
	}

	return &domain.DashboardReport{
		SalesData:        salesData,
		SalesProductData: salesProductData,
	}, nil
}
