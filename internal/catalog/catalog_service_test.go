package catalog_test

import (
	"context"
	"database/sql"
	"testing"

	"go-wemall-api/internal/catalog"
	catalogmock "go-wemall-api/internal/mock/catalog"
	outboxmock "go-wemall-api/internal/mock/outbox"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (catalog.Service, sqlmock.Sqlmock, *catalogmock.MockRepository, *outboxmock.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	db, mockDB, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { db.Close() })

	repo := catalogmock.NewMockRepository(ctrl)
	outboxRepo := outboxmock.NewMockRepository(ctrl)
	svc := catalog.NewService(catalog.Deps{
		DB:         db,
		Repo:       repo,
		OutboxRepo: outboxRepo,
	})
	return svc, mockDB, repo, outboxRepo
}

func TestCatalogService_GetSnapshot(t *testing.T) {
	svc, _, repo, _ := newTestService(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		skuID := uuid.New()

		repo.EXPECT().GetSnapshot(ctx, skuID).Return(catalog.SkuSnapshot{
			SkuID:     skuID,
			Stock:     5,
			SkuActive: true,
		}, nil)

		snap, err := svc.GetSnapshot(ctx, skuID)
		assert.NoError(t, err)
		assert.Equal(t, int32(5), snap.Stock)
	})

	t.Run("missing_row_maps_to_not_found", func(t *testing.T) {
		skuID := uuid.New()

		repo.EXPECT().GetSnapshot(ctx, skuID).Return(catalog.SkuSnapshot{}, sql.ErrNoRows)

		_, err := svc.GetSnapshot(ctx, skuID)
		assert.ErrorIs(t, err, catalog.ErrSkuNotFound)
	})
}

func TestCatalogService_GetSnapshots(t *testing.T) {
	svc, _, repo, _ := newTestService(t)
	ctx := context.Background()

	t.Run("missing_skus_are_absent_from_map", func(t *testing.T) {
		found := uuid.New()
		gone := uuid.New()

		repo.EXPECT().ListSnapshots(ctx, []uuid.UUID{found, gone}).
			Return([]catalog.SkuSnapshot{{SkuID: found, SkuActive: true}}, nil)

		snapshots, err := svc.GetSnapshots(ctx, []uuid.UUID{found, gone})

		assert.NoError(t, err)
		assert.Len(t, snapshots, 1)
		_, ok := snapshots[gone]
		assert.False(t, ok)
	})
}

func TestCatalogService_CreateProduct(t *testing.T) {
	svc, _, repo, _ := newTestService(t)
	ctx := context.Background()

	t.Run("defaults_to_active", func(t *testing.T) {
		repo.EXPECT().CreateProduct(ctx, "Thermal Mug", true).
			Return(catalog.Product{ID: uuid.New(), Name: "Thermal Mug", IsActive: true}, nil)

		res, err := svc.CreateProduct(ctx, catalog.CreateProductRequest{Name: "Thermal Mug"})
		assert.NoError(t, err)
		assert.True(t, res.IsActive)
	})

	t.Run("empty_name_rejected", func(t *testing.T) {
		_, err := svc.CreateProduct(ctx, catalog.CreateProductRequest{})
		assert.Error(t, err)
	})
}

func TestCatalogService_CreateSku(t *testing.T) {
	svc, _, repo, _ := newTestService(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		productID := uuid.New()

		repo.EXPECT().GetProduct(ctx, productID).
			Return(catalog.Product{ID: productID, IsActive: true}, nil)
		repo.EXPECT().
			CreateSku(ctx, productID, decimal.RequireFromString("19.99"), int32(10), true).
			Return(catalog.Sku{
				ID:        uuid.New(),
				ProductID: productID,
				Price:     decimal.RequireFromString("19.99"),
				Stock:     10,
				IsActive:  true,
			}, nil)

		res, err := svc.CreateSku(ctx, catalog.CreateSkuRequest{
			ProductID: productID.String(),
			Price:     "19.99",
			Stock:     10,
		})

		assert.NoError(t, err)
		assert.Equal(t, "19.99", res.Price)
	})

	t.Run("negative_price_rejected", func(t *testing.T) {
		_, err := svc.CreateSku(ctx, catalog.CreateSkuRequest{
			ProductID: uuid.New().String(),
			Price:     "-1",
			Stock:     1,
		})
		assert.ErrorIs(t, err, catalog.ErrInvalidPrice)
	})

	t.Run("unknown_product", func(t *testing.T) {
		productID := uuid.New()

		repo.EXPECT().GetProduct(ctx, productID).Return(catalog.Product{}, sql.ErrNoRows)

		_, err := svc.CreateSku(ctx, catalog.CreateSkuRequest{
			ProductID: productID.String(),
			Price:     "5",
			Stock:     1,
		})
		assert.ErrorIs(t, err, catalog.ErrProductNotFound)
	})
}

func TestCatalogService_UpdateSku(t *testing.T) {
	svc, mockDB, repo, outboxRepo := newTestService(t)
	ctx := context.Background()

	t.Run("row_and_outbox_event_share_one_tx", func(t *testing.T) {
		skuID := uuid.New()
		productID := uuid.New()
		stock := int32(0)

		mockDB.ExpectBegin()
		mockDB.ExpectCommit()

		updated := catalog.Sku{
			ID:        skuID,
			ProductID: productID,
			Price:     decimal.NewFromInt(25),
			Stock:     0,
			IsActive:  true,
		}

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().
			UpdateSku(ctx, skuID, decimal.NullDecimal{}, sql.NullInt32{Int32: 0, Valid: true}, sql.NullBool{}).
			Return(updated, nil)

		outboxRepo.EXPECT().WithTx(gomock.Any()).Return(outboxRepo)
		outboxRepo.EXPECT().
			Create(ctx, "sku", skuID, "SKU_UPDATED", gomock.Any()).
			Return(nil)

		res, err := svc.UpdateSku(ctx, skuID.String(), catalog.UpdateSkuRequest{Stock: &stock})

		assert.NoError(t, err)
		assert.Equal(t, int32(0), res.Stock)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("outbox_failure_rolls_back", func(t *testing.T) {
		skuID := uuid.New()
		stock := int32(3)

		mockDB.ExpectBegin()
		mockDB.ExpectRollback()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().
			UpdateSku(ctx, skuID, decimal.NullDecimal{}, sql.NullInt32{Int32: 3, Valid: true}, sql.NullBool{}).
			Return(catalog.Sku{ID: skuID, Price: decimal.NewFromInt(1)}, nil)

		outboxRepo.EXPECT().WithTx(gomock.Any()).Return(outboxRepo)
		outboxRepo.EXPECT().
			Create(ctx, "sku", skuID, "SKU_UPDATED", gomock.Any()).
			Return(assert.AnError)

		_, err := svc.UpdateSku(ctx, skuID.String(), catalog.UpdateSkuRequest{Stock: &stock})

		assert.Error(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("unknown_sku", func(t *testing.T) {
		skuID := uuid.New()
		stock := int32(1)

		mockDB.ExpectBegin()
		mockDB.ExpectRollback()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().
			UpdateSku(ctx, skuID, decimal.NullDecimal{}, sql.NullInt32{Int32: 1, Valid: true}, sql.NullBool{}).
			Return(catalog.Sku{}, sql.ErrNoRows)

		_, err := svc.UpdateSku(ctx, skuID.String(), catalog.UpdateSkuRequest{Stock: &stock})
		assert.ErrorIs(t, err, catalog.ErrSkuNotFound)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("invalid_price", func(t *testing.T) {
		price := "not-a-number"
		_, err := svc.UpdateSku(ctx, uuid.New().String(), catalog.UpdateSkuRequest{Price: &price})
		assert.ErrorIs(t, err, catalog.ErrInvalidPrice)
	})
}

func TestCatalogService_SkuDetail(t *testing.T) {
	svc, _, repo, _ := newTestService(t)
	ctx := context.Background()

	t.Run("reads_live_without_cache", func(t *testing.T) {
		skuID := uuid.New()

		repo.EXPECT().GetSnapshot(ctx, skuID).Return(catalog.SkuSnapshot{
			SkuID:         skuID,
			ProductID:     uuid.New(),
			ProductName:   "Thermal Mug",
			Price:         decimal.NewFromInt(25),
			Stock:         3,
			SkuActive:     true,
			ProductActive: true,
		}, nil)

		detail, err := svc.SkuDetail(ctx, skuID.String())

		assert.NoError(t, err)
		assert.Equal(t, "Thermal Mug", detail.ProductName)
		assert.Equal(t, int32(3), detail.Stock)
	})

	t.Run("invalid_id", func(t *testing.T) {
		_, err := svc.SkuDetail(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, catalog.ErrInvalidSkuID)
	})
}
