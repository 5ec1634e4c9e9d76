package catalog_test

import (
	"context"
	"testing"

	"go-wemall-api/internal/catalog"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func newTestRepo(t *testing.T) (catalog.Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mockDB, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { db.Close() })

	return catalog.NewRepository(db), mockDB
}

var snapshotColumns = []string{"id", "product_id", "name", "price", "stock", "is_active", "is_active"}

func TestCatalogRepository_GetSnapshot(t *testing.T) {
	repo, mockDB := newTestRepo(t)
	ctx := context.Background()

	t.Run("joins_sku_and_product", func(t *testing.T) {
		skuID := uuid.New()
		productID := uuid.New()

		mockDB.ExpectQuery(`SELECT .+ FROM skus s JOIN products p ON p.id = s.product_id WHERE s.id = \$1`).
			WithArgs(skuID).
			WillReturnRows(sqlmock.NewRows(snapshotColumns).
				AddRow(skuID, productID, "Thermal Mug", "25", int32(3), true, true))

		snap, err := repo.GetSnapshot(ctx, skuID)

		assert.NoError(t, err)
		assert.Equal(t, skuID, snap.SkuID)
		assert.Equal(t, "Thermal Mug", snap.ProductName)
		assert.Equal(t, "25", snap.Price.String())
		assert.True(t, snap.SkuActive)
		assert.True(t, snap.ProductActive)
	})
}

func TestCatalogRepository_ListSnapshots(t *testing.T) {
	repo, mockDB := newTestRepo(t)
	ctx := context.Background()

	t.Run("single_round_trip", func(t *testing.T) {
		skuA := uuid.New()
		skuB := uuid.New()
		productID := uuid.New()

		mockDB.ExpectQuery(`SELECT .+ FROM skus s JOIN products p ON p.id = s.product_id WHERE s.id = ANY\(\$1\)`).
			WithArgs(pq.Array([]string{skuA.String(), skuB.String()})).
			WillReturnRows(sqlmock.NewRows(snapshotColumns).
				AddRow(skuA, productID, "Thermal Mug", "25", int32(3), true, true).
				AddRow(skuB, productID, "Thermal Mug XL", "30", int32(0), true, true))

		snapshots, err := repo.ListSnapshots(ctx, []uuid.UUID{skuA, skuB})

		assert.NoError(t, err)
		assert.Len(t, snapshots, 2)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("empty_input_skips_query", func(t *testing.T) {
		snapshots, err := repo.ListSnapshots(ctx, nil)
		assert.NoError(t, err)
		assert.Empty(t, snapshots)
	})
}
