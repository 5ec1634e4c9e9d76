package cart

import (
	"context"
	"database/sql"

	"go-wemall-api/internal/shared/database"
	"go-wemall-api/internal/shared/database/helper"

	"github.com/google/uuid"
)

type ListFilter struct {
	Checked *bool
	Limit   int32
	Offset  int32
}

//go:generate mockgen -source=cart_repo.go -destination=../mock/cart/cart_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	// UpsertQuantity creates the (user, sku) line or adds delta to the
	// existing quantity; the unique constraint makes the merge atomic.
	UpsertQuantity(ctx context.Context, userID, skuID uuid.UUID, delta int32) (Item, error)

	GetByID(ctx context.Context, id uuid.UUID) (Item, error)
	GetByUserAndSku(ctx context.Context, userID, skuID uuid.UUID) (Item, error)

	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int32) (Item, error)
	UpdateChecked(ctx context.Context, id uuid.UUID, checked bool) (Item, error)

	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID, checkedOnly bool) (int64, error)

	ListByUser(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]Item, error)
	CountByUser(ctx context.Context, userID uuid.UUID, checked *bool) (int64, error)
	SumQuantityByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type repository struct {
	db database.DBTX
}

func NewRepository(db database.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: tx}
}

const itemColumns = "id, user_id, sku_id, quantity, checked, created_at, updated_at"

func scanItem(row *sql.Row) (Item, error) {
	var i Item
	err := row.Scan(&i.ID, &i.UserID, &i.SkuID, &i.Quantity, &i.Checked, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

func (r *repository) UpsertQuantity(ctx context.Context, userID, skuID uuid.UUID, delta int32) (Item, error) {
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO cart_items (user_id, sku_id, quantity)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, sku_id)
		 DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity,
		               updated_at = now()
		 RETURNING `+itemColumns,
		userID, skuID, delta,
	)
	return scanItem(row)
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (Item, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM cart_items WHERE id = $1`, id)
	return scanItem(row)
}

func (r *repository) GetByUserAndSku(ctx context.Context, userID, skuID uuid.UUID) (Item, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM cart_items WHERE user_id = $1 AND sku_id = $2`,
		userID, skuID)
	return scanItem(row)
}

func (r *repository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int32) (Item, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE cart_items
		 SET quantity = $2, updated_at = now()
		 WHERE id = $1
		 RETURNING `+itemColumns,
		id, quantity,
	)
	return scanItem(row)
}

func (r *repository) UpdateChecked(ctx context.Context, id uuid.UUID, checked bool) (Item, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE cart_items
		 SET checked = $2, updated_at = now()
		 WHERE id = $1
		 RETURNING `+itemColumns,
		id, checked,
	)
	return scanItem(row)
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *repository) DeleteByUser(ctx context.Context, userID uuid.UUID, checkedOnly bool) (int64, error) {
	query := `DELETE FROM cart_items WHERE user_id = $1`
	if checkedOnly {
		query += ` AND checked = TRUE`
	}

	res, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]Item, error) {
	query := `SELECT ` + itemColumns + `
	 FROM cart_items
	 WHERE user_id = $1 AND ($2::boolean IS NULL OR checked = $2)
	 ORDER BY created_at DESC`
	args := []any{userID, helper.BoolToNull(filter.Checked)}

	if filter.Limit > 0 {
		query += ` LIMIT $3 OFFSET $4`
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var i Item
		if err := rows.Scan(&i.ID, &i.UserID, &i.SkuID, &i.Quantity, &i.Checked, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

func (r *repository) CountByUser(ctx context.Context, userID uuid.UUID, checked *bool) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM cart_items
		 WHERE user_id = $1 AND ($2::boolean IS NULL OR checked = $2)`,
		userID, helper.BoolToNull(checked),
	).Scan(&count)
	return count, err
}

func (r *repository) SumQuantityByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var sum int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(quantity), 0) FROM cart_items WHERE user_id = $1`,
		userID,
	).Scan(&sum)
	return sum, err
}
