package storage

import (
	"context"
	"testing"
	"time"

	"github.com/GoArmGo/SalesTrack/internal/domain"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}

func TestSaleStorage_CreateRequiresOwnedProduct(t *testing.T) {
	db := newTestGorm(t)
	products := NewProductStorage(db, testLogger())
	sales := NewSaleStorage(db, testLogger())
	ctx := context.Background()

	product := &domain.Product{Name: "widget", Price: 10, UserID: 1}
	require.NoError(t, products.CreateProduct(ctx, product))

	// несуществующий товар
	err := sales.CreateSale(ctx, &domain.Sale{Pid: 999, StockQuantity: 1, CreatedAt: time.Now(), UserID: 1})
	require.ErrorIs(t, err, domain.ErrValidation)

	// товар другого владельца
	err = sales.CreateSale(ctx, &domain.Sale{Pid: product.ID, StockQuantity: 1, CreatedAt: time.Now(), UserID: 2})
	require.ErrorIs(t, err, domain.ErrValidation)

	// свой товар
	sale := &domain.Sale{Pid: product.ID, StockQuantity: 2, CreatedAt: time.Now(), UserID: 1}
	require.NoError(t, sales.CreateSale(ctx, sale))
	require.NotZero(t, sale.ID)
}

func TestSaleStorage_ListSalesByOwner(t *testing.T) {
	db := newTestGorm(t)
	products := NewProductStorage(db, testLogger())
	sales := NewSaleStorage(db, testLogger())
	ctx := context.Background()

	p1 := &domain.Product{Name: "widget", Price: 10, UserID: 1}
	p2 := &domain.Product{Name: "gadget", Price: 20, UserID: 2}
	require.NoError(t, products.CreateProduct(ctx, p1))
	require.NoError(t, products.CreateProduct(ctx, p2))

	require.NoError(t, sales.CreateSale(ctx, &domain.Sale{Pid: p1.ID, StockQuantity: 1, CreatedAt: time.Now(), UserID: 1}))
	require.NoError(t, sales.CreateSale(ctx, &domain.Sale{Pid: p2.ID, StockQuantity: 4, CreatedAt: time.Now(), UserID: 2}))

	own, err := sales.ListSalesByOwner(ctx, 1)
	require.NoError(t, err)
	require.Len(t, own, 1)
	require.Equal(t, p1.ID, own[0].Pid)
}

func TestSaleStorage_AggregationEmptyOwner(t *testing.T) {
	sales := NewSaleStorage(newTestGorm(t), testLogger())
	ctx := context.Background()

	byDay, err := sales.SalesByDay(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, byDay)
	require.Empty(t, byDay)

	byProduct, err := sales.SalesByProduct(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, byProduct)
	require.Empty(t, byProduct)
}

func TestSaleStorage_AggregationSumsQuantityTimesPrice(t *testing.T) {
	db := newTestGorm(t)
	products := NewProductStorage(db, testLogger())
	sales := NewSaleStorage(db, testLogger())
	ctx := context.Background()

	product := &domain.Product{Name: "widget", Price: 10, UserID: 1}
	require.NoError(t, products.CreateProduct(ctx, product))

	ts := day(t, "2024-05-01T09:00:00Z")
	require.NoError(t, sales.CreateSale(ctx, &domain.Sale{Pid: product.ID, StockQuantity: 2, CreatedAt: ts, UserID: 1}))
	require.NoError(t, sales.CreateSale(ctx, &domain.Sale{Pid: product.ID, StockQuantity: 3, CreatedAt: ts.Add(4 * time.Hour), UserID: 1}))

	byDay, err := sales.SalesByDay(ctx, 1)
	require.NoError(t, err)
	require.Len(t, byDay, 1)
	require.Equal(t, "2024-05-01", byDay[0].Date)
	require.Equal(t, 50.0, byDay[0].TotalSales)

	byProduct, err := sales.SalesByProduct(ctx, 1)
	require.NoError(t, err)
	require.Len(t, byProduct, 1)
	require.Equal(t, "widget", byProduct[0].Name)
	require.Equal(t, 50.0, byProduct[0].SalesProduct)
}

func TestSaleStorage_AggregationScopedAndOrdered(t *testing.T) {
	db := newTestGorm(t)
	products := NewProductStorage(db, testLogger())
	sales := NewSaleStorage(db, testLogger())
	ctx := context.Background()

	widget := &domain.Product{Name: "widget", Price: 10, UserID: 1}
	anvil := &domain.Product{Name: "anvil", Price: 100, UserID: 1}
	foreign := &domain.Product{Name: "gadget", Price: 7, UserID: 2}
	require.NoError(t, products.CreateProduct(ctx, widget))
	require.NoError(t, products.CreateProduct(ctx, anvil))
	require.NoError(t, products.CreateProduct(ctx, foreign))

	require.NoError(t, sales.CreateSale(ctx, &domain.Sale{Pid: widget.ID, StockQuantity: 1, CreatedAt: day(t, "2024-05-02T12:00:00Z"), UserID: 1}))
	require.NoError(t, sales.CreateSale(ctx, &domain.Sale{Pid: anvil.ID, StockQuantity: 2, CreatedAt: day(t, "2024-05-01T12:00:00Z"), UserID: 1}))
	require.NoError(t, sales.CreateSale(ctx, &domain.Sale{Pid: foreign.ID, StockQuantity: 5, CreatedAt: day(t, "2024-05-01T12:00:00Z"), UserID: 2}))

	byDay, err := sales.SalesByDay(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []domain.DailySales{
		{Date: "2024-05-01", TotalSales: 200},
		{Date: "2024-05-02", TotalSales: 10},
	}, byDay)

	byProduct, err := sales.SalesByProduct(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []domain.ProductSales{
		{Name: "anvil", SalesProduct: 200},
		{Name: "widget", SalesProduct: 10},
	}, byProduct)
}
