package ports

import (
	"context"
	"io"
	"time"

	"github.com/GoArmGo/SalesTrack/internal/domain"
)

// UserStorage определяет методы для взаимодействия с хранилищем пользователей
type UserStorage interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// ProductStorage определяет методы для взаимодействия с хранилищем товаров.
// Все выборки ограничены владельцем (owner scoping).
type ProductStorage interface {
	ListProductsByOwner(ctx context.Context, ownerID uint) ([]domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) error
	// UpdateOwnedProduct применяет только не-nil поля. Товар другого владельца
	// неотличим от отсутствующего — в обоих случаях domain.ErrNotFound.
	UpdateOwnedProduct(ctx context.Context, ownerID, productID uint, update domain.ProductUpdate) (*domain.Product, error)
	GetOwnedProduct(ctx context.Context, ownerID, productID uint) (*domain.Product, error)
}

// SaleStorage определяет методы для хранилища продаж и агрегационные
// запросы дашборда.
type SaleStorage interface {
	ListSalesByOwner(ctx context.Context, ownerID uint) ([]domain.Sale, error)
	// CreateSale проверяет товар и вставляет продажу в одной транзакции.
	CreateSale(ctx context.Context, sale *domain.Sale) error
	SalesByDay(ctx context.Context, ownerID uint) ([]domain.DailySales, error)
	SalesByProduct(ctx context.Context, ownerID uint) ([]domain.ProductSales, error)
}

// FileStorage определяет интерфейс для работы с файловым хранилищем
// изображений (локальный каталог, AWS S3, MinIO)
type FileStorage interface {
	// UploadFile загружает файл в хранилище под ключом key.
	UploadFile(ctx context.Context, key string, reader io.Reader, contentType string) error

	// GetFile возвращает содержимое файла. Отсутствующий ключ — domain.ErrNotFound.
	GetFile(ctx context.Context, key string) (io.ReadCloser, error)

	// RenameFile переименовывает файл, сохраняя содержимое.
	RenameFile(ctx context.Context, oldKey, newKey string) error

	// DeleteFile удаляет файл из хранилища по его ключу.
	DeleteFile(ctx context.Context, key string) error
}

// Clock отдает текущее время; нужен, чтобы продажи в тестах
// получали детерминированные created_at.
type Clock func() time.Time
