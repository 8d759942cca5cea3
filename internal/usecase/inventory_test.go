package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/GoArmGo/SalesTrack/internal/core/ports"
	"github.com/GoArmGo/SalesTrack/internal/database/storage"
	"github.com/GoArmGo/SalesTrack/internal/domain"
	"github.com/GoArmGo/SalesTrack/internal/messaging/payloads"
	"github.com/stretchr/testify/require"
)

type capturingPublisher struct {
	published []payloads.SaleRecordedPayload
}

func (p *capturingPublisher) PublishSaleRecorded(_ context.Context, payload payloads.SaleRecordedPayload) error {
	p.published = append(p.published, payload)
	return nil
}

func newInventoryUseCase(t *testing.T, publisher *capturingPublisher, now time.Time) InventoryUseCase {
	t.Helper()
	db := newTestGorm(t)
	products := storage.NewProductStorage(db, testLogger())
	sales := storage.NewSaleStorage(db, testLogger())

	clock := func() time.Time { return now }

	// typed nil в интерфейсе выглядел бы как настроенный publisher
	var pub ports.SaleEventPublisher
	if publisher != nil {
		pub = publisher
	}
	return NewInventoryUseCase(products, sales, pub, clock, testLogger())
}

func TestCreateSale_DefaultsToServerTime(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	publisher := &capturingPublisher{}
	uc := newInventoryUseCase(t, publisher, now)
	ctx := context.Background()
	owner := &domain.User{ID: 1, Username: "alice"}

	product, err := uc.CreateProduct(ctx, owner, "widget", 10, 5, "")
	require.NoError(t, err)

	sale, err := uc.CreateSale(ctx, owner, product.ID, 2, nil)
	require.NoError(t, err)
	require.Equal(t, now, sale.CreatedAt)
	require.Equal(t, owner.ID, sale.UserID)

	explicit := now.Add(-24 * time.Hour)
	sale, err = uc.CreateSale(ctx, owner, product.ID, 3, &explicit)
	require.NoError(t, err)
	require.Equal(t, explicit, sale.CreatedAt)
}

func TestCreateSale_PublishesEvent(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	publisher := &capturingPublisher{}
	uc := newInventoryUseCase(t, publisher, now)
	ctx := context.Background()
	owner := &domain.User{ID: 1}

	product, err := uc.CreateProduct(ctx, owner, "widget", 10, 5, "")
	require.NoError(t, err)

	sale, err := uc.CreateSale(ctx, owner, product.ID, 2, nil)
	require.NoError(t, err)

	require.Len(t, publisher.published, 1)
	require.Equal(t, payloads.SaleRecordedPayload{
		SaleID:    sale.ID,
		ProductID: product.ID,
		UserID:    owner.ID,
		Quantity:  2,
	}, publisher.published[0])
}

func TestCreateSale_UnknownProductDoesNotPublish(t *testing.T) {
	publisher := &capturingPublisher{}
	uc := newInventoryUseCase(t, publisher, time.Now())
	owner := &domain.User{ID: 1}

	_, err := uc.CreateSale(context.Background(), owner, 999, 2, nil)
	require.ErrorIs(t, err, domain.ErrValidation)
	require.Empty(t, publisher.published)
}

func TestCreateSale_NilPublisherIsFine(t *testing.T) {
	uc := newInventoryUseCase(t, nil, time.Now())
	ctx := context.Background()
	owner := &domain.User{ID: 1}

	product, err := uc.CreateProduct(ctx, owner, "widget", 10, 5, "")
	require.NoError(t, err)

	_, err = uc.CreateSale(ctx, owner, product.ID, 1, nil)
	require.NoError(t, err)
}
