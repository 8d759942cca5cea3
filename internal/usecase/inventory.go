package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/SalesTrack/internal/core/ports"
	"github.com/GoArmGo/SalesTrack/internal/domain"
	"github.com/GoArmGo/SalesTrack/internal/messaging/payloads"
)

// InventoryUseCase определяет бизнес-логику работы с товарами и продажами.
// Каждая операция получает аутентифицированного владельца явным аргументом.
type InventoryUseCase interface {
	ListProducts(ctx context.Context, owner *domain.User) ([]domain.Product, error)
	CreateProduct(ctx context.Context, owner *domain.User, name string, price float64, quantity int, image string) (*domain.Product, error)

	// UpdateProduct применяет частичное обновление товара владельца.
	UpdateProduct(ctx context.Context, owner *domain.User, productID uint, update domain.ProductUpdate) (*domain.Product, error)

	ListSales(ctx context.Context, owner *domain.User) ([]domain.Sale, error)

	// CreateSale фиксирует продажу; createdAt == nil означает текущее
	// серверное время. После сохранения публикует событие о продаже,
	// если очередь сконфигурирована.
	CreateSale(ctx context.Context, owner *domain.User, productID uint, quantity int, createdAt *time.Time) (*domain.Sale, error)
}

type inventoryUseCase struct {
	products  ports.ProductStorage
	sales     ports.SaleStorage
	publisher ports.SaleEventPublisher
	now       ports.Clock
	logger    *slog.Logger
}

// NewInventoryUseCase создает новый экземпляр InventoryUseCase.
// publisher может быть nil — тогда события о продажах не публикуются.
func NewInventoryUseCase(
	products ports.ProductStorage,
	sales ports.SaleStorage,
	publisher ports.SaleEventPublisher,
	now ports.Clock,
	logger *slog.Logger,
) InventoryUseCase {
	if now == nil {
		now = time.Now
	}
	return &inventoryUseCase{
		products:  products,
		sales:     sales,
		publisher: publisher,
		now:       now,
		logger:    logger,
	}
}

func (uc *inventoryUseCase) ListProducts(ctx context.Context, owner *domain.User) ([]domain.Product, error) {
	return uc.products.ListProductsByOwner(ctx, owner.ID)
}

func (uc *inventoryUseCase) CreateProduct(ctx context.Context, owner *domain.User, name string, price float64, quantity int, image string) (*domain.Product, error) {
	product := &domain.Product{
		Name:         name,
		Price:        price,
		Quantity:     quantity,
		UserID:       owner.ID,
		ProductImage: image,
	}
	if err := uc.products.CreateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("usecase: %w", err)
	}
	return product, nil
}

func (uc *inventoryUseCase) UpdateProduct(ctx context.Context, owner *domain.User, productID uint, update domain.ProductUpdate) (*domain.Product, error) {
	return uc.products.UpdateOwnedProduct(ctx, owner.ID, productID, update)
}

func (uc *inventoryUseCase) ListSales(ctx context.Context, owner *domain.User) ([]domain.Sale, error) {
	return uc.sales.ListSalesByOwner(ctx, owner.ID)
}

func (uc *inventoryUseCase) CreateSale(ctx context.Context, owner *domain.User, productID uint, quantity int, createdAt *time.Time) (*domain.Sale, error) {
	ts := uc.now()
	if createdAt != nil {
		ts = *createdAt
	}

	sale := &domain.Sale{
		Pid:           productID,
		StockQuantity: quantity,
		CreatedAt:     ts,
		UserID:        owner.ID,
	}
	if err := uc.sales.CreateSale(ctx, sale); err != nil {
		return nil, err
	}

	// Продажа уже зафиксирована: сбой публикации не отменяет запрос
	if uc.publisher != nil {
		payload := payloads.SaleRecordedPayload{
			SaleID:    sale.ID,
			ProductID: sale.Pid,
			UserID:    sale.UserID,
			Quantity:  sale.StockQuantity,
		}
		if err := uc.publisher.PublishSaleRecorded(ctx, payload); err != nil {
			uc.logger.Error("failed to publish sale event", "sale_id", sale.ID, "error", err)
		}
	}

	return sale, nil
}
