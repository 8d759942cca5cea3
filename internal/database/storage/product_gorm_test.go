package storage

import (
	"context"
	"testing"

	"github.com/GoArmGo/SalesTrack/internal/domain"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string    { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int          { return &i }

func TestProductStorage_TenantIsolation(t *testing.T) {
	s := NewProductStorage(newTestGorm(t), testLogger())
	ctx := context.Background()

	require.NoError(t, s.CreateProduct(ctx, &domain.Product{Name: "widget", Price: 10, Quantity: 5, UserID: 1}))
	require.NoError(t, s.CreateProduct(ctx, &domain.Product{Name: "gadget", Price: 20, Quantity: 3, UserID: 2}))

	aProducts, err := s.ListProductsByOwner(ctx, 1)
	require.NoError(t, err)
	require.Len(t, aProducts, 1)
	require.Equal(t, "widget", aProducts[0].Name)

	bProducts, err := s.ListProductsByOwner(ctx, 2)
	require.NoError(t, err)
	require.Len(t, bProducts, 1)
	require.Equal(t, "gadget", bProducts[0].Name)
}

func TestProductStorage_ListEmpty(t *testing.T) {
	s := NewProductStorage(newTestGorm(t), testLogger())

	products, err := s.ListProductsByOwner(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, products)
	require.Empty(t, products)
}

func TestProductStorage_UpdatePartialFields(t *testing.T) {
	s := NewProductStorage(newTestGorm(t), testLogger())
	ctx := context.Background()

	product := &domain.Product{Name: "widget", Price: 10, Quantity: 5, UserID: 1}
	require.NoError(t, s.CreateProduct(ctx, product))

	// меняется только имя, остальные поля остаются прежними
	updated, err := s.UpdateOwnedProduct(ctx, 1, product.ID, domain.ProductUpdate{Name: strPtr("super widget")})
	require.NoError(t, err)
	require.Equal(t, "super widget", updated.Name)
	require.Equal(t, 10.0, updated.Price)
	require.Equal(t, 5, updated.Quantity)

	updated, err = s.UpdateOwnedProduct(ctx, 1, product.ID, domain.ProductUpdate{
		Price:    floatPtr(12.5),
		Quantity: intPtr(7),
	})
	require.NoError(t, err)
	require.Equal(t, "super widget", updated.Name)
	require.Equal(t, 12.5, updated.Price)
	require.Equal(t, 7, updated.Quantity)
}

func TestProductStorage_UpdateWithNoFieldsIsIdempotent(t *testing.T) {
	s := NewProductStorage(newTestGorm(t), testLogger())
	ctx := context.Background()

	product := &domain.Product{Name: "widget", Price: 10, Quantity: 5, UserID: 1}
	require.NoError(t, s.CreateProduct(ctx, product))

	updated, err := s.UpdateOwnedProduct(ctx, 1, product.ID, domain.ProductUpdate{})
	require.NoError(t, err)
	require.Equal(t, *product, *updated)
}

func TestProductStorage_UpdateMissingProduct(t *testing.T) {
	s := NewProductStorage(newTestGorm(t), testLogger())

	_, err := s.UpdateOwnedProduct(context.Background(), 1, 999, domain.ProductUpdate{Name: strPtr("x")})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductStorage_UpdateForeignProductLooksMissing(t *testing.T) {
	s := NewProductStorage(newTestGorm(t), testLogger())
	ctx := context.Background()

	product := &domain.Product{Name: "widget", Price: 10, UserID: 1}
	require.NoError(t, s.CreateProduct(ctx, product))

	// чужой товар неотличим от отсутствующего
	_, err := s.UpdateOwnedProduct(ctx, 2, product.ID, domain.ProductUpdate{Name: strPtr("stolen")})
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.UpdateOwnedProduct(ctx, 2, product.ID, domain.ProductUpdate{})
	require.ErrorIs(t, err, domain.ErrNotFound)
}
