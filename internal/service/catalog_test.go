package service_test

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariefcatur/go-catalog-orders.git/internal/domain"
	"github.com/ariefcatur/go-catalog-orders.git/internal/service"
)

func TestCreateProduct_Validation(t *testing.T) {
	svc := service.NewCatalogService(newFakeCatalog())
	ctx := t.Context()

	tests := []struct {
		name    string
		product domain.Product
	}{
		{
			name:    "empty name",
			product: domain.Product{Name: "", Price: mustDecimal("10.00")},
		},
		{
			name:    "negative price",
			product: domain.Product{Name: "tee", Price: mustDecimal("-0.01")},
		},
		{
			name: "negative size quantity",
			product: domain.Product{
				Name:  "tee",
				Price: mustDecimal("10.00"),
				Sizes: []domain.Size{{Size: "M", Quantity: -1}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateProduct(ctx, tt.product)

			var validationErr domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestCreateProduct_ZeroPriceAndDuplicateSizes(t *testing.T) {
	catalog := newFakeCatalog()
	svc := service.NewCatalogService(catalog)
	ctx := t.Context()

	// zero price is legal, and duplicate size entries are stored verbatim
	id, err := svc.CreateProduct(ctx, domain.Product{
		Name:  "sticker",
		Price: mustDecimal("0"),
		Sizes: []domain.Size{{Size: "M", Quantity: 1}, {Size: "M", Quantity: 4}},
	})
	require.NoError(t, err)

	stored, err := catalog.GetProduct(ctx, id)
	require.NoError(t, err)
	assert.Len(t, stored.Sizes, 2)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestListProducts_SizeFilterRoundTrip(t *testing.T) {
	catalog := newFakeCatalog()
	svc := service.NewCatalogService(catalog)
	ctx := t.Context()

	id, err := svc.CreateProduct(ctx, domain.Product{
		Name:  "classic tee",
		Price: mustDecimal("25.00"),
		Sizes: []domain.Size{
			{Size: "large", Quantity: 10},
			{Size: "medium", Quantity: 5},
		},
	})
	require.NoError(t, err)

	large, _, err := svc.ListProducts(ctx, domain.ProductFilter{Size: lo.ToPtr("large")}, 10, 0)
	require.NoError(t, err)
	require.Len(t, large, 1)
	assert.Equal(t, id, large[0].ID)

	small, _, err := svc.ListProducts(ctx, domain.ProductFilter{Size: lo.ToPtr("small")}, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, small)
}

func TestListProducts_NameFilterIsCaseInsensitiveSubstring(t *testing.T) {
	catalog := newFakeCatalog()
	svc := service.NewCatalogService(catalog)
	ctx := t.Context()

	_, err := svc.CreateProduct(ctx, domain.Product{Name: "Classic Tee", Price: mustDecimal("25.00")})
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, domain.Product{Name: "Hoodie", Price: mustDecimal("40.00")})
	require.NoError(t, err)

	found, _, err := svc.ListProducts(ctx, domain.ProductFilter{Name: lo.ToPtr("tee")}, 10, 0)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Classic Tee", found[0].Name)
}

func TestListProducts_Pagination(t *testing.T) {
	catalog := newFakeCatalog()
	svc := service.NewCatalogService(catalog)
	ctx := t.Context()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		_, err := catalog.InsertProduct(ctx, domain.Product{
			Name:      "tee",
			Price:     mustDecimal("10.00"),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	first, page, err := svc.ListProducts(ctx, domain.ProductFilter{}, 10, 0)
	require.NoError(t, err)
	assert.Len(t, first, 10)
	assert.Equal(t, lo.ToPtr(10), page.Next)
	assert.Nil(t, page.Previous)

	second, page, err := svc.ListProducts(ctx, domain.ProductFilter{}, 10, 10)
	require.NoError(t, err)
	assert.Len(t, second, 5)
	assert.Nil(t, page.Next)
	assert.Equal(t, lo.ToPtr(0), page.Previous)
}
