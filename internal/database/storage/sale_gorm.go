package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/SalesTrack/internal/domain"
	"gorm.io/gorm"
)

// SaleStorage реализует ports.SaleStorage с помощью GORM,
// включая агрегационные запросы дашборда
type SaleStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewSaleStorage(db *gorm.DB, logger *slog.Logger) *SaleStorage {
	return &SaleStorage{db: db, logger: logger}
}

// ListSalesByOwner возвращает продажи владельца
func (s *SaleStorage) ListSalesByOwner(ctx context.Context, ownerID uint) ([]domain.Sale, error) {
	sales := make([]domain.Sale, 0)

	result := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("id").
		Find(&sales)
	if result.Error != nil {
		s.logger.Error("failed to list sales", "user_id", ownerID, "error", result.Error)
		return nil, fmt.Errorf("ошибка при получении списка продаж: %w", result.Error)
	}

	return sales, nil
}

// CreateSale проверяет товар и вставляет продажу в одной транзакции
// с откатом при ошибке любого шага. Товар должен существовать и
// принадлежать владельцу продажи, иначе domain.ErrValidation.
func (s *SaleStorage) CreateSale(ctx context.Context, sale *domain.Sale) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product domain.Product
		if err := tx.First(&product, "id = ? AND user_id = ?", sale.Pid, sale.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: product %d does not exist", domain.ErrValidation, sale.Pid)
			}
			return err
		}
		return tx.Create(sale).Error
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return err
		}
		s.logger.Error("failed to create sale", "pid", sale.Pid, "user_id", sale.UserID, "error", err)
		return fmt.Errorf("ошибка при сохранении продажи: %w", err)
	}

	s.logger.Info("sale created",
		"sale_id", sale.ID,
		"pid", sale.Pid,
		"user_id", sale.UserID,
		"stock_quantity", sale.StockQuantity,
	)
	return nil
}

// SalesByDay группирует продажи владельца по календарной дате created_at
// и суммирует stock_quantity * price через join с товарами.
func (s *SaleStorage) SalesByDay(ctx context.Context, ownerID uint) ([]domain.DailySales, error) {
	start := time.Now()
	rows := make([]domain.DailySales, 0)

	result := s.db.WithContext(ctx).
		Model(&domain.Sale{}).
		Select("CAST(date(sales.created_at) AS TEXT) AS date, SUM(sales.stock_quantity * products.price) AS total_sales").
		Joins("JOIN products ON products.id = sales.pid").
		Where("sales.user_id = ?", ownerID).
		Group("date(sales.created_at)").
		Order("date(sales.created_at)").
		Scan(&rows)
	if result.Error != nil {
		s.logger.Error("failed to aggregate sales by day", "user_id", ownerID, "error", result.Error)
		return nil, fmt.Errorf("ошибка агрегации продаж по дням: %w", result.Error)
	}

	s.logger.Info("sales aggregated by day",
		"user_id", ownerID,
		"groups", len(rows),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return rows, nil
}

// SalesByProduct группирует продажи владельца по имени товара.
func (s *SaleStorage) SalesByProduct(ctx context.Context, ownerID uint) ([]domain.ProductSales, error) {
	start := time.Now()
	rows := make([]domain.ProductSales, 0)

	result := s.db.WithContext(ctx).
		Model(&domain.Sale{}).
		Select("products.name AS name, SUM(sales.stock_quantity * products.price) AS sales_product").
		Joins("JOIN products ON products.id = sales.pid").
		Where("sales.user_id = ?", ownerID).
		Group("products.name").
		Order("products.name").
		Scan(&rows)
	if result.Error != nil {
		s.logger.Error("failed to aggregate sales by product", "user_id", ownerID, "error", result.Error)
		return nil, fmt.Errorf("ошибка агрегации продаж по товарам: %w", result.Error)
	}

	s.logger.Info("sales aggregated by product",
		"user_id", ownerID,
		"groups", len(rows),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return rows, nil
}
