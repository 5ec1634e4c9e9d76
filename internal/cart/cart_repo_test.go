package cart_test

import (
	"context"
	"testing"
	"time"

	"go-wemall-api/internal/cart"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestRepo(t *testing.T) (cart.Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mockDB, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { db.Close() })

	return cart.NewRepository(db), mockDB
}

func itemRows(item cart.Item) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "sku_id", "quantity", "checked", "created_at", "updated_at"}).
		AddRow(item.ID, item.UserID, item.SkuID, item.Quantity, item.Checked, item.CreatedAt, item.UpdatedAt)
}

func TestCartRepository_UpsertQuantity(t *testing.T) {
	repo, mockDB := newTestRepo(t)
	ctx := context.Background()

	userID := uuid.New()
	skuID := uuid.New()
	now := time.Now()

	t.Run("merges_on_conflict", func(t *testing.T) {
		stored := cart.Item{
			ID:        uuid.New(),
			UserID:    userID,
			SkuID:     skuID,
			Quantity:  5,
			CreatedAt: now,
			UpdatedAt: now,
		}

		mockDB.ExpectQuery(`INSERT INTO cart_items .+ ON CONFLICT \(user_id, sku_id\)`).
			WithArgs(userID, skuID, int32(3)).
			WillReturnRows(itemRows(stored))

		item, err := repo.UpsertQuantity(ctx, userID, skuID, 3)

		assert.NoError(t, err)
		assert.Equal(t, int32(5), item.Quantity)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestCartRepository_Delete(t *testing.T) {
	repo, mockDB := newTestRepo(t)
	ctx := context.Background()
	id := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		mockDB.ExpectExec(`DELETE FROM cart_items WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		deleted, err := repo.Delete(ctx, id)
		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("already_gone", func(t *testing.T) {
		mockDB.ExpectExec(`DELETE FROM cart_items WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		deleted, err := repo.Delete(ctx, id)
		assert.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestCartRepository_DeleteByUser(t *testing.T) {
	repo, mockDB := newTestRepo(t)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("full_cart", func(t *testing.T) {
		mockDB.ExpectExec(`DELETE FROM cart_items WHERE user_id = \$1$`).
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 4))

		removed, err := repo.DeleteByUser(ctx, userID, false)
		assert.NoError(t, err)
		assert.Equal(t, int64(4), removed)
	})

	t.Run("checked_only", func(t *testing.T) {
		mockDB.ExpectExec(`DELETE FROM cart_items WHERE user_id = \$1 AND checked = TRUE`).
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 2))

		removed, err := repo.DeleteByUser(ctx, userID, true)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), removed)
	})
}

func TestCartRepository_ListByUser(t *testing.T) {
	repo, mockDB := newTestRepo(t)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("paged", func(t *testing.T) {
		stored := cart.Item{ID: uuid.New(), UserID: userID, SkuID: uuid.New(), Quantity: 2}

		mockDB.ExpectQuery(`SELECT .+ FROM cart_items\s+WHERE user_id = \$1 .+ LIMIT \$3 OFFSET \$4`).
			WithArgs(userID, nil, int32(20), int32(0)).
			WillReturnRows(itemRows(stored))

		items, err := repo.ListByUser(ctx, userID, cart.ListFilter{Limit: 20})
		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, stored.ID, items[0].ID)
	})

	t.Run("unpaged_without_limit_clause", func(t *testing.T) {
		mockDB.ExpectQuery(`SELECT .+ FROM cart_items\s+WHERE user_id = \$1 .+ ORDER BY created_at DESC$`).
			WithArgs(userID, true).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "sku_id", "quantity", "checked", "created_at", "updated_at"}))

		checked := true
		items, err := repo.ListByUser(ctx, userID, cart.ListFilter{Checked: &checked})
		assert.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestCartRepository_Counters(t *testing.T) {
	repo, mockDB := newTestRepo(t)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("count_by_user", func(t *testing.T) {
		mockDB.ExpectQuery(`SELECT COUNT\(\*\) FROM cart_items`).
			WithArgs(userID, nil).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))

		count, err := repo.CountByUser(ctx, userID, nil)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("sum_quantity_empty_cart_is_zero", func(t *testing.T) {
		mockDB.ExpectQuery(`SELECT COALESCE\(SUM\(quantity\), 0\) FROM cart_items`).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(int64(0)))

		sum, err := repo.SumQuantityByUser(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), sum)
	})
}
