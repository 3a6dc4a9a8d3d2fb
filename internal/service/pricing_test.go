package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariefcatur/go-catalog-orders.git/internal/domain"
	"github.com/ariefcatur/go-catalog-orders.git/internal/service"
)

func TestResolve_DuplicatesResolvedPerLine(t *testing.T) {
	catalog := newFakeCatalog()
	resolver := &service.PricingResolver{Catalog: catalog}
	ctx := t.Context()

	productID := addProduct(t, catalog, "tee", "19.99")

	resolved, err := resolver.Resolve(ctx, []domain.ItemInput{
		{ProductID: productID, Qty: 1},
		{ProductID: productID, Qty: 5},
	})
	require.NoError(t, err)

	require.Len(t, resolved, 2)
	for i, line := range resolved {
		assert.Equal(t, productID, line.ProductID, "line %d", i)
		assert.Equal(t, "tee", line.Name)
		assert.True(t, mustDecimal("19.99").Equal(line.Price))
	}
	assert.Equal(t, 1, resolved[0].Qty)
	assert.Equal(t, 5, resolved[1].Qty)
}

func TestResolve_ReportsAllMissingIDs(t *testing.T) {
	catalog := newFakeCatalog()
	resolver := &service.PricingResolver{Catalog: catalog}
	ctx := t.Context()

	existing := addProduct(t, catalog, "tee", "10.00")
	missingA := uuid.New()
	missingB := uuid.New()

	// missingA appears twice but must be reported once
	_, err := resolver.Resolve(ctx, []domain.ItemInput{
		{ProductID: missingA, Qty: 1},
		{ProductID: existing, Qty: 1},
		{ProductID: missingB, Qty: 1},
		{ProductID: missingA, Qty: 2},
	})

	var notFound domain.ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, []uuid.UUID{missingA, missingB}, notFound.IDs)
}

func TestResolve_RejectsNonPositiveQty(t *testing.T) {
	catalog := newFakeCatalog()
	resolver := &service.PricingResolver{Catalog: catalog}
	ctx := t.Context()

	productID := addProduct(t, catalog, "tee", "10.00")

	for _, qty := range []int{0, -1} {
		_, err := resolver.Resolve(ctx, []domain.ItemInput{{ProductID: productID, Qty: qty}})

		var validationErr domain.ValidationError
		require.ErrorAs(t, err, &validationErr, "qty=%d", qty)
	}
}
