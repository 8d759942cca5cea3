package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/SalesTrack/internal/domain"
	"gorm.io/gorm"
)

// ProductStorage реализует ports.ProductStorage с помощью GORM
type ProductStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewProductStorage(db *gorm.DB, logger *slog.Logger) *ProductStorage {
	return &ProductStorage{db: db, logger: logger}
}

// ListProductsByOwner возвращает товары владельца
func (s *ProductStorage) ListProductsByOwner(ctx context.Context, ownerID uint) ([]domain.Product, error) {
	products := make([]domain.Product, 0)

	result := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("id").
		Find(&products)
	if result.Error != nil {
		s.logger.Error("failed to list products", "user_id", ownerID, "error", result.Error)
		return nil, fmt.Errorf("ошибка при получении списка товаров: %w", result.Error)
	}

	return products, nil
}

// CreateProduct сохраняет товар и заполняет его ID
func (s *ProductStorage) CreateProduct(ctx context.Context, product *domain.Product) error {
	result := s.db.WithContext(ctx).Create(product)
	if result.Error != nil {
		s.logger.Error("failed to create product", "user_id", product.UserID, "error", result.Error)
		return fmt.Errorf("ошибка при сохранении товара: %w", result.Error)
	}

	s.logger.Info("product created", "product_id", product.ID, "user_id", product.UserID)
	return nil
}

// GetOwnedProduct получает товар владельца по ID.
// Чужой или отсутствующий товар — domain.ErrNotFound.
func (s *ProductStorage) GetOwnedProduct(ctx context.Context, ownerID, productID uint) (*domain.Product, error) {
	var product domain.Product

	result := s.db.WithContext(ctx).
		First(&product, "id = ? AND user_id = ?", productID, ownerID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		s.logger.Error("failed to get product", "product_id", productID, "error", result.Error)
		return nil, fmt.Errorf("ошибка при получении товара: %w", result.Error)
	}

	return &product, nil
}

// UpdateOwnedProduct применяет частичное обновление: только явно переданные
// (не-nil) поля перезаписывают текущие значения. Обновление без полей —
// no-op, возвращающий текущую запись.
func (s *ProductStorage) UpdateOwnedProduct(ctx context.Context, ownerID, productID uint, update domain.ProductUpdate) (*domain.Product, error) {
	fields := map[string]interface{}{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Price != nil {
		fields["price"] = *update.Price
	}
	if update.Quantity != nil {
		fields["quantity"] = *update.Quantity
	}

	if len(fields) == 0 {
		return s.GetOwnedProduct(ctx, ownerID, productID)
	}

	result := s.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id = ? AND user_id = ?", productID, ownerID).
		Updates(fields)
	if result.Error != nil {
		s.logger.Error("failed to update product", "product_id", productID, "error", result.Error)
		return nil, fmt.Errorf("ошибка при обновлении товара: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}

	s.logger.Info("product updated", "product_id", productID, "fields", len(fields))
	return s.GetOwnedProduct(ctx, ownerID, productID)
}
